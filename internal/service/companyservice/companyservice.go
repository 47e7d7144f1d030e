package companyservice

import (
	"context"
	"fmt"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/utils"
	"github.com/checkplatform/checkdesk/pkg/validate"
)

//go:generate mockgen -source=companyservice.go -destination=companyservice_mock.go -package=companyservice

type Repo interface {
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	FindByINN(ctx context.Context, inn string) (*domain.Company, error)
	FindWithStats(ctx context.Context, search string, limit, offset int) ([]domain.CompanyWithStats, error)
	Count(ctx context.Context, search string) (int64, error)
	Statistics(ctx context.Context, companyID int64) (*domain.CompanyStatistics, error)
	Update(ctx context.Context, company *domain.Company) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

const defaultPageLimit = 10

// List returns companies with their application counters, optionally matched
// by name or inn.
func (s *Service) List(ctx context.Context, search string, page, limit int) (*dto.CompanyListResponseDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	total, err := s.repo.Count(ctx, search)
	if err != nil {
		return nil, err
	}
	companies, err := s.repo.FindWithStats(ctx, search, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	out := &dto.CompanyListResponseDTO{
		Companies: make([]dto.CompanyListItemDTO, 0, len(companies)),
		Total:     total,
		Page:      page,
		Pages:     int((total + int64(limit) - 1) / int64(limit)),
	}
	for _, c := range companies {
		out.Companies = append(out.Companies, dto.CompanyListItemDTO{
			ID:                 c.ID,
			Name:               c.Name,
			INN:                c.INN,
			TotalApplications:  c.TotalApplications,
			ActiveApplications: c.ActiveApplications,
		})
	}
	return out, nil
}

// GetDetails returns the company with aggregate application statistics.
func (s *Service) GetDetails(ctx context.Context, id int64) (*dto.CompanyDetailsResponseDTO, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	stats, err := s.repo.Statistics(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CompanyDetailsResponseDTO{
		ID:   company.ID,
		Name: company.Name,
		INN:  company.INN,
		Statistics: dto.CompanyStatisticsDTO{
			TotalApplications:  stats.TotalApplications,
			ActiveApplications: stats.ActiveApplications,
			TotalAmount:        utils.FormatMoney(stats.TotalAmount),
			ActiveAmount:       utils.FormatMoney(stats.ActiveAmount),
		},
	}, nil
}

// Update changes the company's name or inn. A new inn must be valid and not
// belong to another company.
func (s *Service) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequestDTO) (*domain.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	if in.INN != nil && *in.INN != company.INN {
		if !validate.IsINN(*in.INN) {
			return nil, fmt.Errorf("%q: %w", *in.INN, domain.ErrBadINN)
		}
		existing, err := s.repo.FindByINN(ctx, *in.INN)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrCompanyINNTaken
		}
		company.INN = *in.INN
	}
	if in.Name != nil {
		company.Name = *in.Name
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
