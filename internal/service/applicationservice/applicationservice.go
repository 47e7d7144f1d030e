package applicationservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/internal/notify"
	"github.com/checkplatform/checkdesk/internal/pg"
	"github.com/checkplatform/checkdesk/pkg/utils"
	"github.com/checkplatform/checkdesk/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=applicationservice.go -destination=applicationservice_mock.go -package=applicationservice

type Repo interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id int64) (*domain.ApplicationWithRefs, error)
	FindFiltered(ctx context.Context, q domain.ApplicationQuery) ([]domain.ApplicationWithRefs, error)
	UpdateStatus(ctx context.Context, id int64, status []string) error
	Update(ctx context.Context, id int64, companyID, sellerID *int64, commission *float64) error
	UpdateTotals(ctx context.Context, id int64, totalAmount float64, checksCount int) error
	CountActive(ctx context.Context) (int64, error)
	AppendHistory(ctx context.Context, e *domain.HistoryEntry) error
	FindHistory(ctx context.Context, applicationID int64) ([]domain.HistoryEntry, error)
}

type CheckRepo interface {
	Create(ctx context.Context, check *domain.Check) (*domain.Check, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Check, error)
	FindByApplicationIDs(ctx context.Context, applicationIDs []int64) ([]domain.Check, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type CompanyRepo interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByINN(ctx context.Context, inn string) (*domain.Company, error)
	FindMatching(ctx context.Context, search string) ([]int64, error)
	FindSelectors(ctx context.Context) ([]domain.Selector, error)
}

type SellerRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Seller, error)
	FindMatching(ctx context.Context, search string) ([]int64, error)
	FindSelectors(ctx context.Context) ([]domain.Selector, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindMatching(ctx context.Context, search string) ([]int64, error)
	FindSelectors(ctx context.Context) ([]domain.Selector, error)
	AddSavedCompany(ctx context.Context, userID, companyID int64) error
}

type CounterRepo interface {
	Next(ctx context.Context, name string) (int64, error)
}

type Notifier interface {
	ApplicationCreated(ctx context.Context, e notify.ApplicationCreated)
}

type Service struct {
	repo        Repo
	checkRepo   CheckRepo
	companyRepo CompanyRepo
	sellerRepo  SellerRepo
	userRepo    UserRepo
	counterRepo CounterRepo
	txManager   pg.TXManager
	notifier    Notifier
}

func New(
	repo Repo,
	checkRepo CheckRepo,
	companyRepo CompanyRepo,
	sellerRepo SellerRepo,
	userRepo UserRepo,
	counterRepo CounterRepo,
	txManager pg.TXManager,
	notifier Notifier,
) *Service {
	return &Service{
		repo:        repo,
		checkRepo:   checkRepo,
		companyRepo: companyRepo,
		sellerRepo:  sellerRepo,
		userRepo:    userRepo,
		counterRepo: counterRepo,
		txManager:   txManager,
		notifier:    notifier,
	}
}

const (
	defaultCommission = 10
	vatRate           = 0.2
)

// Create registers a new application for the user inside one transaction:
// find-or-create the buyer company, optionally link it to the user's saved
// set, assign a fresh application number, bulk-insert the checks and compute
// the totals. The operator chat is notified after the commit.
func (s *Service) Create(ctx context.Context, userID int64, in dto.CreateApplicationRequestDTO) (*domain.Application, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	seller, err := s.sellerRepo.FindByID(ctx, in.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}

	checks, err := parseChecks(in.Checks)
	if err != nil {
		return nil, err
	}

	var (
		app     *domain.Application
		company *domain.Company
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		company, err = s.resolveCompany(ctx, in.CompanyName, in.CompanyINN)
		if err != nil {
			return err
		}

		if in.SaveCompany {
			if !user.CanSave {
				return domain.ErrSaveNotAllowed
			}
			if err := s.userRepo.AddSavedCompany(ctx, userID, company.ID); err != nil {
				return err
			}
		}

		number, err := s.counterRepo.Next(ctx, domain.CounterApplicationNumber)
		if err != nil {
			return err
		}

		app = &domain.Application{
			ApplicationNumber: number,
			UserID:            userID,
			CompanyID:         company.ID,
			SellerID:          seller.ID,
			Status:            []string{domain.StatusCreated},
			Commission:        defaultCommission,
		}
		if _, err := s.repo.Create(ctx, app); err != nil {
			return err
		}

		if err := s.insertChecks(ctx, app.ID, checks); err != nil {
			return err
		}

		app.TotalAmount, app.ChecksCount, err = s.RecomputeTotals(ctx, app.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	go s.notifier.ApplicationCreated(context.WithoutCancel(ctx), notify.ApplicationCreated{
		ApplicationID:     app.ID,
		ApplicationNumber: app.ApplicationNumber,
		UserName:          user.Name,
		CompanyName:       company.Name,
		CompanyINN:        company.INN,
		ChecksCount:       app.ChecksCount,
	})

	return app, nil
}

// RecomputeTotals sums quantity×price over the application's checks and
// persists the result. An empty check set resets the totals to zero.
func (s *Service) RecomputeTotals(ctx context.Context, applicationID int64) (float64, int, error) {
	checks, err := s.checkRepo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return 0, 0, err
	}

	var total float64
	for _, c := range checks {
		total += lineTotal(c)
	}

	if err := s.repo.UpdateTotals(ctx, applicationID, total, len(checks)); err != nil {
		return 0, 0, err
	}
	return total, len(checks), nil
}

// SetStatus replaces the application's status set and records one history
// entry per changed tag. Setting the current set again is a no-op.
func (s *Service) SetStatus(ctx context.Context, id, adminID int64, target []string) error {
	if len(target) == 0 {
		return domain.ErrEmptyStatusSet
	}
	for _, tag := range target {
		if !domain.KnownStatus(tag) {
			return fmt.Errorf("%q: %w", tag, domain.ErrUnknownStatus)
		}
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		app, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrApplicationNotFound
		}

		added, removed := statusDiff(app.Status, target)
		if len(added) == 0 && len(removed) == 0 {
			return nil
		}

		if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
			return err
		}

		for _, tag := range added {
			err := s.repo.AppendHistory(ctx, &domain.HistoryEntry{
				ApplicationID: id,
				AdminID:       adminID,
				Kind:          domain.HistoryKindStatus,
				Message:       "Status added",
				Status:        tag,
				Action:        domain.HistoryActionAdd,
			})
			if err != nil {
				return err
			}
		}
		for _, tag := range removed {
			err := s.repo.AppendHistory(ctx, &domain.HistoryEntry{
				ApplicationID: id,
				AdminID:       adminID,
				Kind:          domain.HistoryKindStatus,
				Message:       "Status removed",
				Status:        tag,
				Action:        domain.HistoryActionRemove,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Update edits an application: removes and adds checks, changes the buyer
// company, seller or commission, recomputes totals and appends a single
// field-change history entry counting the check changes.
func (s *Service) Update(ctx context.Context, id, adminID int64, in dto.UpdateApplicationRequestDTO) error {
	if in.Commission != nil && (*in.Commission < 0 || *in.Commission > 100) {
		return domain.ErrBadCommission
	}

	newChecks, err := parseChecks(in.NewChecks)
	if err != nil {
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		app, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrApplicationNotFound
		}

		companyID, err := s.resolveCompanyChange(ctx, &app.Company, in.CompanyName, in.CompanyINN)
		if err != nil {
			return err
		}
		if err := s.checkSellerChange(ctx, in.SellerID); err != nil {
			return err
		}

		if len(in.RemoveCheckIDs) > 0 {
			if err := s.checkRepo.DeleteByIDs(ctx, in.RemoveCheckIDs); err != nil {
				return err
			}
		}
		if err := s.insertChecks(ctx, id, newChecks); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, id, companyID, in.SellerID, in.Commission); err != nil {
			return err
		}
		if _, _, err := s.RecomputeTotals(ctx, id); err != nil {
			return err
		}

		message := "Application changed"
		if len(newChecks) > 0 || len(in.RemoveCheckIDs) > 0 {
			message = fmt.Sprintf("Application changed: %d checks added, %d checks removed",
				len(newChecks), len(in.RemoveCheckIDs))
		}
		return s.repo.AppendHistory(ctx, &domain.HistoryEntry{
			ApplicationID: id,
			AdminID:       adminID,
			Kind:          domain.HistoryKindChange,
			Message:       message,
		})
	})
}

// UpdateInfo edits company, seller or commission without touching checks.
// A history entry is recorded only when something was submitted.
func (s *Service) UpdateInfo(ctx context.Context, id, adminID int64, in dto.UpdateApplicationInfoRequestDTO) error {
	if in.Commission != nil && (*in.Commission < 0 || *in.Commission > 100) {
		return domain.ErrBadCommission
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		app, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrApplicationNotFound
		}

		companyID, err := s.resolveCompanyChange(ctx, &app.Company, in.CompanyName, in.CompanyINN)
		if err != nil {
			return err
		}
		if err := s.checkSellerChange(ctx, in.SellerID); err != nil {
			return err
		}
		if companyID == nil && in.SellerID == nil && in.Commission == nil {
			return nil
		}

		if err := s.repo.Update(ctx, id, companyID, in.SellerID, in.Commission); err != nil {
			return err
		}
		return s.repo.AppendHistory(ctx, &domain.HistoryEntry{
			ApplicationID: id,
			AdminID:       adminID,
			Kind:          domain.HistoryKindChange,
			Message:       "Application changed",
		})
	})
}

func (s *Service) GetHistory(ctx context.Context, id int64) ([]dto.HistoryEntryDTO, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	entries, err := s.repo.FindHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHistoryDTOs(entries), nil
}

func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

// resolveCompany finds the company by inn or creates it. Reusing an inn under
// a different name is a conflict.
func (s *Service) resolveCompany(ctx context.Context, name, inn string) (*domain.Company, error) {
	if !validate.IsINN(inn) {
		return nil, fmt.Errorf("%q: %w", inn, domain.ErrBadINN)
	}

	company, err := s.companyRepo.FindByINN(ctx, inn)
	if err != nil {
		return nil, err
	}
	if company != nil {
		if company.Name != name {
			zap.L().Info("inn reuse with different name",
				zap.String("inn", inn), zap.String("have", company.Name), zap.String("want", name))
			return nil, domain.ErrCompanyNameMismatch
		}
		return company, nil
	}
	return s.companyRepo.Create(ctx, &domain.Company{Name: name, INN: inn})
}

func (s *Service) resolveCompanyChange(ctx context.Context, current *domain.Company, name, inn *string) (*int64, error) {
	if inn == nil {
		return nil, nil
	}
	newName := current.Name
	if name != nil {
		newName = *name
	}
	company, err := s.resolveCompany(ctx, newName, *inn)
	if err != nil {
		return nil, err
	}
	return &company.ID, nil
}

func (s *Service) checkSellerChange(ctx context.Context, sellerID *int64) error {
	if sellerID == nil {
		return nil
	}
	seller, err := s.sellerRepo.FindByID(ctx, *sellerID)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrSellerNotFound
	}
	return nil
}

func (s *Service) insertChecks(ctx context.Context, applicationID int64, checks []domain.Check) error {
	for i := range checks {
		number, err := s.counterRepo.Next(ctx, domain.CounterCheckNumber)
		if err != nil {
			return err
		}
		checks[i].CheckNumber = number
		checks[i].ApplicationID = applicationID
		if _, err := s.checkRepo.Create(ctx, &checks[i]); err != nil {
			return err
		}
	}
	return nil
}

func parseChecks(in []dto.CheckInputDTO) ([]domain.Check, error) {
	checks := make([]domain.Check, 0, len(in))
	for _, c := range in {
		date, err := utils.ParseCheckDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", c.Date, domain.ErrBadCheckDate)
		}
		checks = append(checks, domain.Check{
			Date:         date,
			Product:      c.Product,
			Quantity:     c.Quantity,
			PricePerUnit: c.PricePerUnit,
			Unit:         c.Unit,
		})
	}
	return checks, nil
}

// lineTotal guards against NaN and infinities leaking into stored sums.
func lineTotal(c domain.Check) float64 {
	v := c.Quantity * c.PricePerUnit
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func statusDiff(current, target []string) (added, removed []string) {
	cur := make(map[string]bool, len(current))
	for _, tag := range current {
		cur[tag] = true
	}
	tgt := make(map[string]bool, len(target))
	for _, tag := range target {
		tgt[tag] = true
		if !cur[tag] {
			added = append(added, tag)
		}
	}
	for _, tag := range current {
		if !tgt[tag] {
			removed = append(removed, tag)
		}
	}
	return added, removed
}

func toHistoryDTOs(entries []domain.HistoryEntry) []dto.HistoryEntryDTO {
	out := make([]dto.HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HistoryEntryDTO{
			ID:        e.ID,
			Kind:      e.Kind,
			Message:   e.Message,
			Status:    e.Status,
			Action:    e.Action,
			AdminName: e.AdminName,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
