package checkrepo

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

const checkColumns = `ch.id, ch.check_number, ch.application_id, ch.date, ch.product, ch.quantity, ch.price_per_unit, ch.unit`

func (r *Repository) Create(ctx context.Context, check *domain.Check) (*domain.Check, error) {
	query := `
        INSERT INTO checks (check_number, application_id, date, product, quantity, price_per_unit, unit)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		check.CheckNumber, check.ApplicationID, check.Date, check.Product, check.Quantity, check.PricePerUnit, check.Unit,
	).Scan(&check.ID)
	if err != nil {
		zap.L().Error("can't create check", zap.Error(err))
		return nil, err
	}
	return check, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Check, error) {
	query := `
        SELECT ` + checkColumns + `
        FROM checks ch
        WHERE ch.id = $1
    `
	var check domain.Check
	err := r.db.QueryRow(ctx, query, id).Scan(
		&check.ID, &check.CheckNumber, &check.ApplicationID, &check.Date,
		&check.Product, &check.Quantity, &check.PricePerUnit, &check.Unit,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find check", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &check, nil
}

func (r *Repository) scanChecks(rows pgx.Rows) ([]domain.Check, error) {
	defer rows.Close()

	var checks []domain.Check
	for rows.Next() {
		var check domain.Check
		err := rows.Scan(
			&check.ID, &check.CheckNumber, &check.ApplicationID, &check.Date,
			&check.Product, &check.Quantity, &check.PricePerUnit, &check.Unit,
		)
		if err != nil {
			zap.L().Error("can't scan check row", zap.Error(err))
			return nil, err
		}
		checks = append(checks, check)
	}
	return checks, rows.Err()
}

// FindByApplicationID returns the application's checks sorted by date
// ascending, the order the detail view presents them in.
func (r *Repository) FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Check, error) {
	query := `
        SELECT ` + checkColumns + `
        FROM checks ch
        WHERE ch.application_id = $1
        ORDER BY ch.date ASC
    `
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		zap.L().Error("can't get application checks", zap.Error(err))
		return nil, err
	}
	return r.scanChecks(rows)
}

// FindByApplicationIDs batch-fetches the checks of a listing result set so
// totals can be computed in memory with a single round trip.
func (r *Repository) FindByApplicationIDs(ctx context.Context, applicationIDs []int64) ([]domain.Check, error) {
	query := `
        SELECT ` + checkColumns + `
        FROM checks ch
        WHERE ch.application_id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, applicationIDs)
	if err != nil {
		zap.L().Error("can't batch get checks", zap.Error(err))
		return nil, err
	}
	return r.scanChecks(rows)
}

func (r *Repository) Update(ctx context.Context, check *domain.Check) error {
	query := `
        UPDATE checks
        SET date = $1, product = $2, quantity = $3, price_per_unit = $4, unit = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, check.Date, check.Product, check.Quantity, check.PricePerUnit, check.Unit, check.ID)
	if err != nil {
		zap.L().Error("can't update check", zap.Int64("id", check.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM checks WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete check", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) error {
	query := `DELETE FROM checks WHERE id = ANY($1)`
	_, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't delete checks", zap.Error(err))
		return err
	}
	return nil
}

func buildCheckQuery(q domain.CheckQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		conds = append(conds, "(c.name ILIKE "+arg(pattern)+" OR s.name ILIKE "+arg(pattern)+")")
	}
	if len(q.CompanyIDs) > 0 {
		conds = append(conds, "a.company_id = ANY("+arg(q.CompanyIDs)+")")
	}
	if len(q.SellerIDs) > 0 {
		conds = append(conds, "a.seller_id = ANY("+arg(q.SellerIDs)+")")
	}
	if q.DateFrom != nil {
		conds = append(conds, "ch.date >= "+arg(*q.DateFrom))
	}
	if q.DateTo != nil {
		conds = append(conds, "ch.date <= "+arg(*q.DateTo))
	}
	// The line total is derivable per row, so unlike application sums it is
	// pushed down to the store.
	if q.SumFrom != nil {
		conds = append(conds, "ch.quantity * ch.price_per_unit >= "+arg(*q.SumFrom))
	}
	if q.SumTo != nil {
		conds = append(conds, "ch.quantity * ch.price_per_unit <= "+arg(*q.SumTo))
	}

	where := ""
	if len(conds) > 0 {
		where = "\n        WHERE " + strings.Join(conds, " AND ")
	}
	return where, args
}

const checkRefJoins = `
        FROM checks ch
        JOIN applications a ON a.id = ch.application_id
        JOIN companies c ON c.id = a.company_id
        JOIN sellers s ON s.id = a.seller_id`

func (r *Repository) scanChecksWithRefs(rows pgx.Rows) ([]domain.CheckWithRefs, error) {
	defer rows.Close()

	var checks []domain.CheckWithRefs
	for rows.Next() {
		var check domain.CheckWithRefs
		err := rows.Scan(
			&check.ID, &check.CheckNumber, &check.ApplicationID, &check.Date,
			&check.Product, &check.Quantity, &check.PricePerUnit, &check.Unit,
			&check.ApplicationTotalAmount, &check.ApplicationChecksCount,
			&check.Company.ID, &check.Company.Name, &check.Company.INN, &check.Company.CreatedAt,
			&check.Seller.ID, &check.Seller.Name, &check.Seller.INN, &check.Seller.TGLink, &check.Seller.Type, &check.Seller.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan check row", zap.Error(err))
			return nil, err
		}
		checks = append(checks, check)
	}
	return checks, rows.Err()
}

// FindFiltered lists checks across applications with company and seller
// references, newest first, paginated at the store.
func (r *Repository) FindFiltered(ctx context.Context, q domain.CheckQuery, limit, offset int) ([]domain.CheckWithRefs, error) {
	where, args := buildCheckQuery(q)
	query := `SELECT ` + checkColumns + `,
        a.total_amount, a.checks_count,
        c.id, c.name, c.inn, c.created_at,
        s.id, s.name, s.inn, s.tg_link, s.type, s.created_at` +
		checkRefJoins + where + `
        ORDER BY ch.date DESC
        LIMIT ` + strconv.Itoa(limit) + ` OFFSET ` + strconv.Itoa(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get checks", zap.Error(err))
		return nil, err
	}
	return r.scanChecksWithRefs(rows)
}

// FindAllFiltered is the export variant: same predicates, no pagination.
func (r *Repository) FindAllFiltered(ctx context.Context, q domain.CheckQuery) ([]domain.CheckWithRefs, error) {
	where, args := buildCheckQuery(q)
	query := `SELECT ` + checkColumns + `,
        a.total_amount, a.checks_count,
        c.id, c.name, c.inn, c.created_at,
        s.id, s.name, s.inn, s.tg_link, s.type, s.created_at` +
		checkRefJoins + where + `
        ORDER BY ch.date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get checks for export", zap.Error(err))
		return nil, err
	}
	return r.scanChecksWithRefs(rows)
}

func (r *Repository) CountFiltered(ctx context.Context, q domain.CheckQuery) (int64, error) {
	where, args := buildCheckQuery(q)
	query := `SELECT COUNT(*)` + checkRefJoins + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		zap.L().Error("can't count checks", zap.Error(err))
		return 0, err
	}
	return count, nil
}
