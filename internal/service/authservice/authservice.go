package authservice

import (
	"context"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type UserRepo interface {
	FindByKey(ctx context.Context, key string) (*domain.User, error)
}

type AdminRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Admin, error)
	FindByLogin(ctx context.Context, login string) (*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}

type Service struct {
	userRepo    UserRepo
	adminRepo   AdminRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, adminRepo AdminRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// LoginUser authenticates a user by the opaque access key. Blocked users are
// rejected even with a valid key.
func (s *Service) LoginUser(ctx context.Context, key string) (string, *domain.User, error) {
	user, err := s.userRepo.FindByKey(ctx, key)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.IsBlocked {
		zap.L().Info("blocked user login attempt", zap.Int64("user_id", user.ID))
		return "", nil, domain.ErrUserBlocked
	}

	token, err := s.jwtService.GenerateClientToken(user.ID)
	if err != nil {
		zap.L().Error("can't generate client token", zap.Error(err))
		return "", nil, err
	}
	return token, user, nil
}

// LoginAdmin authenticates an admin by login and password.
func (s *Service) LoginAdmin(ctx context.Context, login, password string) (string, *domain.Admin, error) {
	admin, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil {
		return "", nil, err
	}
	if admin == nil || !s.hashService.ComparePassword(admin.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAdminToken(admin.ID)
	if err != nil {
		zap.L().Error("can't generate admin token", zap.Error(err))
		return "", nil, err
	}
	return token, admin, nil
}

// RegisterAdmin creates an admin account with a unique login. Only a super
// admin may register new admins; the one exception is the very first account,
// which may be created anonymously (actorID 0) and becomes the super admin.
func (s *Service) RegisterAdmin(ctx context.Context, actorID int64, in dto.AdminRegisterRequestDTO) (*domain.Admin, error) {
	bootstrap := false
	if actorID == 0 {
		total, err := s.adminRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if total > 0 {
			return nil, domain.ErrSuperAdminRequired
		}
		bootstrap = true
	} else {
		actor, err := s.adminRepo.FindByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if actor == nil {
			return nil, domain.ErrAdminNotFound
		}
		if !actor.IsSuperAdmin {
			return nil, domain.ErrSuperAdminRequired
		}
	}

	existing, err := s.adminRepo.FindByLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAdminLoginTaken
	}

	hash, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	return s.adminRepo.Create(ctx, &domain.Admin{
		Login:        in.Login,
		PasswordHash: hash,
		Name:         in.Name,
		IsSuperAdmin: bootstrap,
	})
}
