package applicationrepo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const refColumns = `
        a.id, a.application_number, a.user_id, a.company_id, a.seller_id,
        a.status, a.commission, a.total_amount, a.checks_count, a.created_at,
        c.id, c.name, c.inn, c.created_at,
        s.id, s.name, s.inn, s.tg_link, s.type, s.created_at,
        u.id, u.name, u.key, u.can_save, u.is_blocked, u.created_at`

const refJoins = `
        FROM applications a
        JOIN companies c ON c.id = a.company_id
        JOIN sellers s ON s.id = a.seller_id
        JOIN users u ON u.id = a.user_id`

func scanWithRefs(row pgx.Row) (*domain.ApplicationWithRefs, error) {
	var app domain.ApplicationWithRefs
	err := row.Scan(
		&app.ID, &app.ApplicationNumber, &app.Application.UserID, &app.CompanyID, &app.SellerID,
		&app.Status, &app.Commission, &app.TotalAmount, &app.ChecksCount, &app.Application.CreatedAt,
		&app.Company.ID, &app.Company.Name, &app.Company.INN, &app.Company.CreatedAt,
		&app.Seller.ID, &app.Seller.Name, &app.Seller.INN, &app.Seller.TGLink, &app.Seller.Type, &app.Seller.CreatedAt,
		&app.User.ID, &app.User.Name, &app.User.Key, &app.User.CanSave, &app.User.IsBlocked, &app.User.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *Repository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `
        INSERT INTO applications (application_number, user_id, company_id, seller_id, status, commission)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		app.ApplicationNumber, app.UserID, app.CompanyID, app.SellerID, app.Status, app.Commission,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		zap.L().Error("can't create application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.ApplicationWithRefs, error) {
	query := `SELECT` + refColumns + refJoins + `
        WHERE a.id = $1
    `
	app, err := scanWithRefs(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find application", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return app, nil
}

// FindFiltered fetches applications matching every store-expressible
// predicate, newest first. Sum-range filtering and pagination are applied by
// the caller after totals are computed, so no LIMIT appears here.
func (r *Repository) FindFiltered(ctx context.Context, q domain.ApplicationQuery) ([]domain.ApplicationWithRefs, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q.SearchResolved {
		conds = append(conds, "(a.company_id = ANY("+arg(q.SearchCompanyIDs)+
			") OR a.seller_id = ANY("+arg(q.SearchSellerIDs)+
			") OR a.user_id = ANY("+arg(q.SearchUserIDs)+"))")
	}
	if len(q.CompanyIDs) > 0 {
		conds = append(conds, "a.company_id = ANY("+arg(q.CompanyIDs)+")")
	}
	if len(q.SellerIDs) > 0 {
		conds = append(conds, "a.seller_id = ANY("+arg(q.SellerIDs)+")")
	}
	if len(q.UserIDs) > 0 {
		conds = append(conds, "a.user_id = ANY("+arg(q.UserIDs)+")")
	}
	// An explicit status filter overrides the active-only predicate.
	if len(q.Statuses) > 0 {
		conds = append(conds, "a.status && "+arg(q.Statuses))
	} else if q.ActiveOnly {
		conds = append(conds, "NOT (a.status @> ARRAY['us_paid'])")
	}
	if q.CreatedFrom != nil {
		conds = append(conds, "a.created_at >= "+arg(*q.CreatedFrom))
	}
	if q.CreatedTo != nil {
		conds = append(conds, "a.created_at <= "+arg(*q.CreatedTo))
	}

	query := `SELECT` + refColumns + refJoins
	if len(conds) > 0 {
		query += "\n        WHERE " + strings.Join(conds, " AND ")
	}
	query += "\n        ORDER BY a.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.ApplicationWithRefs
	for rows.Next() {
		app, err := scanWithRefs(rows)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status []string) error {
	query := `
        UPDATE applications
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update application status", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Update changes only the fields that are non-nil.
func (r *Repository) Update(ctx context.Context, id int64, companyID, sellerID *int64, commission *float64) error {
	var (
		sets []string
		args []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if companyID != nil {
		sets = append(sets, "company_id = "+arg(*companyID))
	}
	if sellerID != nil {
		sets = append(sets, "seller_id = "+arg(*sellerID))
	}
	if commission != nil {
		sets = append(sets, "commission = "+arg(*commission))
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE applications SET " + strings.Join(sets, ", ") + " WHERE id = " + arg(id)
	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't update application", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateTotals(ctx context.Context, id int64, totalAmount float64, checksCount int) error {
	query := `
        UPDATE applications
        SET total_amount = $1, checks_count = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, totalAmount, checksCount, id)
	if err != nil {
		zap.L().Error("can't update application totals", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM applications
        WHERE NOT (status @> ARRAY['us_paid'])
    `
	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("can't count active applications", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindByUserID powers the user detail view: all applications of one user
// with references, newest first.
func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]domain.ApplicationWithRefs, error) {
	return r.FindFiltered(ctx, domain.ApplicationQuery{UserIDs: []int64{userID}})
}
