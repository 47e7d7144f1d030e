package applicationservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

const defaultPageLimit = 10

// listItem is one application with its checks and derived quantities, the
// in-memory stage of the listing pipeline.
type listItem struct {
	app     domain.ApplicationWithRefs
	checks  []domain.Check
	total   float64
	minDate time.Time
	maxDate time.Time
}

// List is the admin-wide listing: free-text search covers companies, sellers
// and users.
func (s *Service) List(ctx context.Context, f dto.ApplicationFilterDTO) (*dto.ApplicationListResponseDTO, error) {
	q, err := s.buildQuery(ctx, f, true)
	if err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, q)
	if err != nil {
		return nil, err
	}
	return paginate(filterSum(items, f.SumFrom, f.SumTo), f.Page, f.Limit), nil
}

// ListForUser lists the user's own applications; search covers companies and
// sellers only.
func (s *Service) ListForUser(ctx context.Context, userID int64, f dto.ApplicationFilterDTO) (*dto.ApplicationListResponseDTO, error) {
	f.UserIDs = []int64{userID}
	q, err := s.buildQuery(ctx, f, false)
	if err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, q)
	if err != nil {
		return nil, err
	}
	return paginate(filterSum(items, f.SumFrom, f.SumTo), f.Page, f.Limit), nil
}

// ListForCompany lists one company's applications. Only the company id is
// pushed to the store; status, seller, user and check-date-range filters are
// applied in memory over the derived items.
func (s *Service) ListForCompany(ctx context.Context, companyID int64, f dto.ApplicationFilterDTO) (*dto.ApplicationListResponseDTO, error) {
	for _, tag := range f.Statuses {
		if !domain.KnownStatus(tag) {
			return nil, fmt.Errorf("%q: %w", tag, domain.ErrUnknownStatus)
		}
	}

	items, err := s.loadItems(ctx, domain.ApplicationQuery{CompanyIDs: []int64{companyID}})
	if err != nil {
		return nil, err
	}

	var dateFrom, dateTo *time.Time
	if f.DateFrom != "" {
		t, err := utils.ParseFilterDate(f.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f.DateFrom, domain.ErrValidation)
		}
		dateFrom = &t
	}
	if f.DateTo != "" {
		t, err := utils.ParseFilterDate(f.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f.DateTo, domain.ErrValidation)
		}
		end := utils.EndOfDay(t)
		dateTo = &end
	}

	filtered := items[:0:0]
	for _, it := range items {
		if len(f.Statuses) > 0 && !statusOverlap(it.app.Status, f.Statuses) {
			continue
		}
		if f.ActiveOnly && len(f.Statuses) == 0 && !it.app.IsActive() {
			continue
		}
		if len(f.SellerIDs) > 0 && !containsID(f.SellerIDs, it.app.SellerID) {
			continue
		}
		if len(f.UserIDs) > 0 && !containsID(f.UserIDs, it.app.Application.UserID) {
			continue
		}
		// Check-date ranges intersect: newest check on or after the lower
		// bound, oldest check on or before the upper one.
		if dateFrom != nil && it.maxDate.Before(*dateFrom) {
			continue
		}
		if dateTo != nil && it.minDate.After(*dateTo) {
			continue
		}
		filtered = append(filtered, it)
	}

	return paginate(filterSum(filtered, f.SumFrom, f.SumTo), f.Page, f.Limit), nil
}

// Export returns the full filtered set without pagination, with status tags
// rendered as human-readable labels.
func (s *Service) Export(ctx context.Context, f dto.ApplicationFilterDTO) ([]dto.ApplicationExportRowDTO, error) {
	q, err := s.buildQuery(ctx, f, true)
	if err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, q)
	if err != nil {
		return nil, err
	}
	items = filterSum(items, f.SumFrom, f.SumTo)

	rows := make([]dto.ApplicationExportRowDTO, 0, len(items))
	for _, it := range items {
		rows = append(rows, dto.ApplicationExportRowDTO{
			ApplicationNumber: it.app.ApplicationNumber,
			CreatedDate:       utils.FormatDate(it.app.Application.CreatedAt),
			CompanyName:       it.app.Company.Name,
			CompanyINN:        it.app.Company.INN,
			SellerName:        it.app.Seller.Name,
			UserName:          it.app.User.Name,
			Status:            statusLabels(it.app.Status),
			TotalAmount:       utils.FormatMoney(it.total),
			ChecksCount:       len(it.checks),
		})
	}
	return rows, nil
}

// GetDetails assembles the full application view: checks sorted by date,
// formatted totals, VAT, commission, history and reference summaries.
func (s *Service) GetDetails(ctx context.Context, id int64) (*dto.ApplicationDetailsResponseDTO, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}

	checks, err := s.checkRepo.FindByApplicationID(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.FindHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	var total float64
	checkDTOs := make([]dto.CheckResponseDTO, 0, len(checks))
	for _, c := range checks {
		total += lineTotal(c)
		checkDTOs = append(checkDTOs, dto.CheckResponseDTO{
			ID:           c.ID,
			CheckNumber:  c.CheckNumber,
			Date:         utils.FormatDate(c.Date),
			Product:      c.Product,
			Quantity:     c.Quantity,
			PricePerUnit: c.PricePerUnit,
			Unit:         c.Unit,
			LineTotal:    utils.FormatMoney(lineTotal(c)),
		})
	}

	out := &dto.ApplicationDetailsResponseDTO{
		ID:                app.ID,
		ApplicationNumber: app.ApplicationNumber,
		Status:            app.Status,
		TotalAmount:       utils.FormatMoney(total),
		VAT:               utils.FormatMoney(total * vatRate),
		// The percentage is shown as entered; only the derived amount gets
		// the two-decimal money rendering.
		Commission: dto.CommissionDTO{
			Percentage: utils.FormatNumber(app.Commission),
			Amount:     utils.FormatMoney(total * app.Commission / 100),
		},
		ChecksCount: len(checks),
		Checks:      checkDTOs,
		CreatedDate: utils.FormatDate(app.Application.CreatedAt),
		Company:     toCompanyShort(app.Company),
		Seller:      toSellerShort(app.Seller),
		User:        toUserShort(app.User),
		History:     toHistoryDTOs(history),
	}
	if len(checks) > 0 {
		// FindByApplicationID returns checks date ascending.
		out.CheckDateFrom = utils.FormatDate(checks[0].Date)
		out.CheckDateTo = utils.FormatDate(checks[len(checks)-1].Date)
	}
	return out, nil
}

// Selectors returns the id/name/inn lists that populate filter dropdowns.
func (s *Service) Selectors(ctx context.Context) (*dto.SelectorsResponseDTO, error) {
	var companies, sellers, users []domain.Selector

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		companies, err = s.companyRepo.FindSelectors(gctx)
		return err
	})
	g.Go(func() (err error) {
		sellers, err = s.sellerRepo.FindSelectors(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.userRepo.FindSelectors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.SelectorsResponseDTO{
		Companies: toSelectorDTOs(companies),
		Sellers:   toSelectorDTOs(sellers),
		Users:     toSelectorDTOs(users),
	}, nil
}

// buildQuery turns the filter into store predicates, resolving the free-text
// search into company/seller(/user) id sets in parallel.
func (s *Service) buildQuery(ctx context.Context, f dto.ApplicationFilterDTO, searchUsers bool) (domain.ApplicationQuery, error) {
	q := domain.ApplicationQuery{
		CompanyIDs: f.CompanyIDs,
		SellerIDs:  f.SellerIDs,
		UserIDs:    f.UserIDs,
		ActiveOnly: f.ActiveOnly,
	}

	for _, tag := range f.Statuses {
		if !domain.KnownStatus(tag) {
			return q, fmt.Errorf("%q: %w", tag, domain.ErrUnknownStatus)
		}
	}
	q.Statuses = f.Statuses

	if f.DateFrom != "" {
		t, err := utils.ParseFilterDate(f.DateFrom)
		if err != nil {
			return q, fmt.Errorf("%q: %w", f.DateFrom, domain.ErrValidation)
		}
		q.CreatedFrom = &t
	}
	if f.DateTo != "" {
		t, err := utils.ParseFilterDate(f.DateTo)
		if err != nil {
			return q, fmt.Errorf("%q: %w", f.DateTo, domain.ErrValidation)
		}
		end := utils.EndOfDay(t)
		q.CreatedTo = &end
	}

	if f.Search != "" {
		q.SearchResolved = true
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			q.SearchCompanyIDs, err = s.companyRepo.FindMatching(gctx, f.Search)
			return err
		})
		g.Go(func() (err error) {
			q.SearchSellerIDs, err = s.sellerRepo.FindMatching(gctx, f.Search)
			return err
		})
		if searchUsers {
			g.Go(func() (err error) {
				q.SearchUserIDs, err = s.userRepo.FindMatching(gctx, f.Search)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return q, err
		}
	}

	return q, nil
}

// loadItems fetches applications and their checks and derives per-application
// totals and check-date bounds. Zero-check applications are dropped here:
// a listing row without checks has nothing to show.
func (s *Service) loadItems(ctx context.Context, q domain.ApplicationQuery) ([]listItem, error) {
	apps, err := s.repo.FindFiltered(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	checks, err := s.checkRepo.FindByApplicationIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byApp := make(map[int64][]domain.Check, len(apps))
	for _, c := range checks {
		byApp[c.ApplicationID] = append(byApp[c.ApplicationID], c)
	}

	items := make([]listItem, 0, len(apps))
	for _, app := range apps {
		appChecks := byApp[app.ID]
		if !hasChecks(appChecks) {
			continue
		}

		it := listItem{app: app, checks: appChecks}
		for i, c := range appChecks {
			it.total += lineTotal(c)
			if i == 0 || c.Date.Before(it.minDate) {
				it.minDate = c.Date
			}
			if i == 0 || c.Date.After(it.maxDate) {
				it.maxDate = c.Date
			}
		}
		items = append(items, it)
	}
	return items, nil
}

func hasChecks(checks []domain.Check) bool {
	return len(checks) > 0
}

func filterSum(items []listItem, from, to *float64) []listItem {
	if from == nil && to == nil {
		return items
	}
	out := items[:0:0]
	for _, it := range items {
		if from != nil && it.total < *from {
			continue
		}
		if to != nil && it.total > *to {
			continue
		}
		out = append(out, it)
	}
	return out
}

// paginate slices the filtered items and reports the post-filter total.
func paginate(items []listItem, page, limit int) *dto.ApplicationListResponseDTO {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	total := len(items)
	pages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := &dto.ApplicationListResponseDTO{
		Applications: make([]dto.ApplicationListItemDTO, 0, end-start),
		Total:        total,
		Page:         page,
		Pages:        pages,
	}
	for _, it := range items[start:end] {
		out.Applications = append(out.Applications, toListItemDTO(it))
	}
	return out
}

func toListItemDTO(it listItem) dto.ApplicationListItemDTO {
	return dto.ApplicationListItemDTO{
		ID:                it.app.ID,
		ApplicationNumber: it.app.ApplicationNumber,
		Status:            it.app.Status,
		TotalAmount:       utils.FormatMoney(it.total),
		ChecksCount:       len(it.checks),
		CheckDateFrom:     utils.FormatDate(it.minDate),
		CheckDateTo:       utils.FormatDate(it.maxDate),
		CreatedDate:       utils.FormatDate(it.app.Application.CreatedAt),
		Company:           toCompanyShort(it.app.Company),
		Seller:            toSellerShort(it.app.Seller),
		User:              toUserShort(it.app.User),
	}
}

func toCompanyShort(c domain.Company) dto.CompanyShortDTO {
	return dto.CompanyShortDTO{ID: c.ID, Name: c.Name, INN: c.INN}
}

func toSellerShort(s domain.Seller) dto.SellerShortDTO {
	return dto.SellerShortDTO{ID: s.ID, Name: s.Name, INN: s.INN, TGLink: s.TGLink, Type: s.Type}
}

func toUserShort(u domain.User) dto.UserShortDTO {
	return dto.UserShortDTO{ID: u.ID, Name: u.Name}
}

func toSelectorDTOs(in []domain.Selector) []dto.SelectorDTO {
	out := make([]dto.SelectorDTO, 0, len(in))
	for _, s := range in {
		out = append(out, dto.SelectorDTO{ID: s.ID, Name: s.Name, INN: s.INN})
	}
	return out
}

func statusOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func statusLabels(tags []string) string {
	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		if label, ok := domain.StatusLabels[tag]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, tag)
		}
	}
	return strings.Join(labels, ", ")
}
