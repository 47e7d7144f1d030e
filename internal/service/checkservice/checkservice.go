package checkservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/internal/pg"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=checkservice.go -destination=checkservice_mock.go -package=checkservice

type Repo interface {
	Create(ctx context.Context, check *domain.Check) (*domain.Check, error)
	FindByID(ctx context.Context, id int64) (*domain.Check, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Check, error)
	Update(ctx context.Context, check *domain.Check) error
	Delete(ctx context.Context, id int64) error
	FindFiltered(ctx context.Context, q domain.CheckQuery, limit, offset int) ([]domain.CheckWithRefs, error)
	FindAllFiltered(ctx context.Context, q domain.CheckQuery) ([]domain.CheckWithRefs, error)
	CountFiltered(ctx context.Context, q domain.CheckQuery) (int64, error)
}

type ApplicationRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.ApplicationWithRefs, error)
}

// ApplicationService recomputes derived totals after any check mutation.
type ApplicationService interface {
	RecomputeTotals(ctx context.Context, applicationID int64) (float64, int, error)
}

type CounterRepo interface {
	Next(ctx context.Context, name string) (int64, error)
}

type Service struct {
	repo        Repo
	appRepo     ApplicationRepo
	appService  ApplicationService
	counterRepo CounterRepo
	txManager   pg.TXManager
}

func New(repo Repo, appRepo ApplicationRepo, appService ApplicationService, counterRepo CounterRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		appRepo:     appRepo,
		appService:  appService,
		counterRepo: counterRepo,
		txManager:   txManager,
	}
}

const defaultPageLimit = 10

// Create adds a check to an existing application and refreshes its totals in
// the same transaction.
func (s *Service) Create(ctx context.Context, in dto.CreateCheckRequestDTO) (*domain.Check, error) {
	app, err := s.appRepo.FindByID(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	date, err := utils.ParseCheckDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", in.Date, domain.ErrBadCheckDate)
	}

	check := &domain.Check{
		ApplicationID: in.ApplicationID,
		Date:          date,
		Product:       in.Product,
		Quantity:      in.Quantity,
		PricePerUnit:  in.PricePerUnit,
		Unit:          in.Unit,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		check.CheckNumber, err = s.counterRepo.Next(ctx, domain.CounterCheckNumber)
		if err != nil {
			return err
		}
		if _, err := s.repo.Create(ctx, check); err != nil {
			return err
		}
		_, _, err := s.appService.RecomputeTotals(ctx, in.ApplicationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return check, nil
}

// Update edits a check's fields and refreshes the owning application's totals.
func (s *Service) Update(ctx context.Context, id int64, in dto.UpdateCheckRequestDTO) (*domain.Check, error) {
	check, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, domain.ErrCheckNotFound
	}

	if in.Date != nil {
		date, err := utils.ParseCheckDate(*in.Date)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", *in.Date, domain.ErrBadCheckDate)
		}
		check.Date = date
	}
	if in.Product != nil {
		check.Product = *in.Product
	}
	if in.Quantity != nil {
		check.Quantity = *in.Quantity
	}
	if in.PricePerUnit != nil {
		check.PricePerUnit = *in.PricePerUnit
	}
	if in.Unit != nil {
		check.Unit = *in.Unit
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, check); err != nil {
			return err
		}
		_, _, err := s.appService.RecomputeTotals(ctx, check.ApplicationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return check, nil
}

// Delete removes a check and recomputes the application's totals inside the
// same transaction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	check, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if check == nil {
		return domain.ErrCheckNotFound
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		_, _, err := s.appService.RecomputeTotals(ctx, check.ApplicationID)
		return err
	})
}

// ListForApplication returns an application's checks newest first.
func (s *Service) ListForApplication(ctx context.Context, applicationID int64) ([]dto.CheckResponseDTO, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	checks, err := s.repo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].Date.After(checks[j].Date) })

	out := make([]dto.CheckResponseDTO, 0, len(checks))
	for _, c := range checks {
		out = append(out, dto.CheckResponseDTO{
			ID:           c.ID,
			CheckNumber:  c.CheckNumber,
			Date:         utils.FormatDate(c.Date),
			Product:      c.Product,
			Quantity:     c.Quantity,
			PricePerUnit: c.PricePerUnit,
			Unit:         c.Unit,
			LineTotal:    utils.FormatMoney(c.Quantity * c.PricePerUnit),
		})
	}
	return out, nil
}

// List is the cross-application check listing. Every predicate, including
// the line total range, is pushed to the store.
func (s *Service) List(ctx context.Context, f dto.CheckFilterDTO) (*dto.CheckListResponseDTO, error) {
	q, err := buildQuery(f)
	if err != nil {
		return nil, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}

	total, err := s.repo.CountFiltered(ctx, q)
	if err != nil {
		return nil, err
	}
	checks, err := s.repo.FindFiltered(ctx, q, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &dto.CheckListResponseDTO{
		Checks: toListItemDTOs(checks),
		Total:  total,
		Page:   page,
		Pages:  int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// Export returns the full filtered set without pagination.
func (s *Service) Export(ctx context.Context, f dto.CheckFilterDTO) ([]dto.CheckListItemDTO, error) {
	q, err := buildQuery(f)
	if err != nil {
		return nil, err
	}
	checks, err := s.repo.FindAllFiltered(ctx, q)
	if err != nil {
		return nil, err
	}
	return toListItemDTOs(checks), nil
}

func buildQuery(f dto.CheckFilterDTO) (domain.CheckQuery, error) {
	q := domain.CheckQuery{
		Search:     f.Search,
		CompanyIDs: f.CompanyIDs,
		SellerIDs:  f.SellerIDs,
		SumFrom:    f.SumFrom,
		SumTo:      f.SumTo,
	}
	if f.DateFrom != "" {
		t, err := utils.ParseFilterDate(f.DateFrom)
		if err != nil {
			return q, fmt.Errorf("%q: %w", f.DateFrom, domain.ErrValidation)
		}
		q.DateFrom = &t
	}
	if f.DateTo != "" {
		t, err := utils.ParseFilterDate(f.DateTo)
		if err != nil {
			return q, fmt.Errorf("%q: %w", f.DateTo, domain.ErrValidation)
		}
		end := utils.EndOfDay(t)
		q.DateTo = &end
	}
	return q, nil
}

func toListItemDTOs(checks []domain.CheckWithRefs) []dto.CheckListItemDTO {
	out := make([]dto.CheckListItemDTO, 0, len(checks))
	for _, c := range checks {
		out = append(out, dto.CheckListItemDTO{
			ID:            c.ID,
			CheckNumber:   c.CheckNumber,
			ApplicationID: c.ApplicationID,
			Date:          utils.FormatDate(c.Date),
			Product:       c.Product,
			Quantity:      c.Quantity,
			PricePerUnit:  c.PricePerUnit,
			Unit:          c.Unit,
			LineTotal:     utils.FormatMoney(c.Quantity * c.PricePerUnit),
			Company:       dto.CompanyShortDTO{ID: c.Company.ID, Name: c.Company.Name, INN: c.Company.INN},
			Seller:        dto.SellerShortDTO{ID: c.Seller.ID, Name: c.Seller.Name, INN: c.Seller.INN, TGLink: c.Seller.TGLink, Type: c.Seller.Type},
		})
	}
	return out
}
