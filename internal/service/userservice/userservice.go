package userservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
)

//go:generate mockgen -source=userservice.go -destination=userservice_mock.go -package=userservice

type Repo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindWithStats(ctx context.Context) ([]domain.UserWithStats, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	AddSavedCompany(ctx context.Context, userID, companyID int64) error
	RemoveSavedCompany(ctx context.Context, userID, companyID int64) error
	FindSavedCompanies(ctx context.Context, userID int64) ([]domain.Company, error)
}

type CompanyRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
}

type ApplicationRepo interface {
	FindByUserID(ctx context.Context, userID int64) ([]domain.ApplicationWithRefs, error)
}

type Service struct {
	repo        Repo
	companyRepo CompanyRepo
	appRepo     ApplicationRepo
}

func New(repo Repo, companyRepo CompanyRepo, appRepo ApplicationRepo) *Service {
	return &Service{repo: repo, companyRepo: companyRepo, appRepo: appRepo}
}

// Register creates a user with a generated access key. Names are unique.
func (s *Service) Register(ctx context.Context, in dto.RegisterUserRequestDTO) (*domain.User, error) {
	existing, err := s.repo.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserNameTaken
	}

	return s.repo.Create(ctx, &domain.User{
		Name:    in.Name,
		Key:     uuid.NewString(),
		CanSave: in.CanSave,
	})
}

func (s *Service) List(ctx context.Context) ([]dto.UserListItemDTO, error) {
	users, err := s.repo.FindWithStats(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserListItemDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserListItemDTO{
			ID:                 u.ID,
			Name:               u.Name,
			Key:                u.Key,
			CanSave:            u.CanSave,
			IsBlocked:          u.IsBlocked,
			TotalApplications:  u.TotalApplications,
			ActiveApplications: u.ActiveApplications,
		})
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in dto.UpdateUserRequestDTO) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != nil && *in.Name != user.Name {
		existing, err := s.repo.FindByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrUserNameTaken
		}
		user.Name = *in.Name
	}
	if in.CanSave != nil {
		user.CanSave = *in.CanSave
	}
	if in.IsBlocked != nil {
		user.IsBlocked = *in.IsBlocked
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return s.repo.Delete(ctx, id)
}

// GetInfo returns the user with application counters derived from their
// applications.
func (s *Service) GetInfo(ctx context.Context, id int64) (*dto.UserInfoResponseDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	apps, err := s.appRepo.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, app := range apps {
		if app.IsActive() {
			active++
		}
	}

	return &dto.UserInfoResponseDTO{
		User: dto.UserResponseDTO{
			ID:        user.ID,
			Name:      user.Name,
			CanSave:   user.CanSave,
			IsBlocked: user.IsBlocked,
		},
		TotalApplications:  len(apps),
		ActiveApplications: active,
	}, nil
}

// SavedCompanies lists the companies the user pinned for reuse.
func (s *Service) SavedCompanies(ctx context.Context, userID int64) ([]dto.CompanyShortDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	companies, err := s.repo.FindSavedCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyShortDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.CompanyShortDTO{ID: c.ID, Name: c.Name, INN: c.INN})
	}
	return out, nil
}

// SaveCompany pins a company to the user's saved set. Requires the canSave
// permission; saving an already pinned company is a no-op.
func (s *Service) SaveCompany(ctx context.Context, userID, companyID int64) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !user.CanSave {
		return domain.ErrSaveNotAllowed
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}

	return s.repo.AddSavedCompany(ctx, userID, companyID)
}

func (s *Service) RemoveSavedCompany(ctx context.Context, userID, companyID int64) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return s.repo.RemoveSavedCompany(ctx, userID, companyID)
}
