package adminservice

import (
	"context"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=adminservice.go -destination=adminservice_mock.go -package=adminservice

type Repo interface {
	FindByID(ctx context.Context, id int64) (*domain.Admin, error)
	FindByLogin(ctx context.Context, login string) (*domain.Admin, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo        Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{repo: repo, hashService: hashService}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrAdminNotFound
	}
	return admin, nil
}

// List returns all admin accounts. Super admins only.
func (s *Service) List(ctx context.Context, actorID int64) ([]dto.AdminResponseDTO, error) {
	actor, err := s.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin {
		return nil, domain.ErrSuperAdminRequired
	}

	admins, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminResponseDTO, 0, len(admins))
	for _, a := range admins {
		out = append(out, ToAdminDTO(&a))
	}
	return out, nil
}

// Update edits an admin account. Admins may edit themselves; editing anyone
// else, or touching the super admin flag, requires super admin rights.
func (s *Service) Update(ctx context.Context, actorID, id int64, in dto.UpdateAdminRequestDTO) (*domain.Admin, error) {
	actor, err := s.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actorID != id && !actor.IsSuperAdmin {
		return nil, domain.ErrSuperAdminRequired
	}
	if in.IsSuperAdmin != nil && !actor.IsSuperAdmin {
		return nil, domain.ErrSuperAdminRequired
	}

	admin, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Login != nil && *in.Login != admin.Login {
		existing, err := s.repo.FindByLogin(ctx, *in.Login)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrAdminLoginTaken
		}
		admin.Login = *in.Login
	}
	if in.Password != nil {
		hash, err := s.hashService.HashPassword(*in.Password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return nil, err
		}
		admin.PasswordHash = hash
	}
	if in.Name != nil {
		admin.Name = *in.Name
	}
	if in.IsSuperAdmin != nil {
		admin.IsSuperAdmin = *in.IsSuperAdmin
	}

	return s.repo.Update(ctx, admin)
}

// Delete removes an admin account. Super admins only; self-deletion and
// deleting the last remaining account are refused.
func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	actor, err := s.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsSuperAdmin {
		return domain.ErrSuperAdminRequired
	}
	if actorID == id {
		return domain.ErrSelfDelete
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if total <= 1 {
		return domain.ErrLastAdmin
	}

	return s.repo.Delete(ctx, id)
}

func ToAdminDTO(a *domain.Admin) dto.AdminResponseDTO {
	return dto.AdminResponseDTO{
		ID:           a.ID,
		Login:        a.Login,
		Name:         a.Name,
		IsSuperAdmin: a.IsSuperAdmin,
	}
}
