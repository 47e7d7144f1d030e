package companyrepo

import (
	"context"
	"errors"

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

func (r *Repository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query := `
        INSERT INTO companies (name, inn)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, company.Name, company.INN).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		zap.L().Error("can't create company", zap.Error(err))
		return nil, err
	}
	return company, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `
        SELECT id, name, inn, created_at
        FROM companies
        WHERE id = $1
    `
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.INN, &company.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find company", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &company, nil
}

func (r *Repository) FindByINN(ctx context.Context, inn string) (*domain.Company, error) {
	query := `
        SELECT id, name, inn, created_at
        FROM companies
        WHERE inn = $1
    `
	var company domain.Company
	err := r.db.QueryRow(ctx, query, inn).Scan(&company.ID, &company.Name, &company.INN, &company.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find company by inn", zap.String("inn", inn), zap.Error(err))
		return nil, err
	}
	return &company, nil
}

// FindMatching returns ids of companies whose name or inn contains the
// search term, case-insensitively. Used to resolve free-text search before
// the primary application fetch.
func (r *Repository) FindMatching(ctx context.Context, search string) ([]int64, error) {
	query := `
        SELECT id
        FROM companies
        WHERE name ILIKE $1 OR inn ILIKE $1
    `
	rows, err := r.db.Query(ctx, query, "%"+search+"%")
	if err != nil {
		zap.L().Error("can't search companies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// FindWithStats lists companies with their application counters, paginated.
func (r *Repository) FindWithStats(ctx context.Context, search string, limit, offset int) ([]domain.CompanyWithStats, error) {
	query := `
        SELECT c.id, c.name, c.inn, c.created_at,
               COUNT(a.id) AS total_applications,
               COUNT(a.id) FILTER (WHERE NOT (a.status @> ARRAY['us_paid'])) AS active_applications
        FROM companies c
        LEFT JOIN applications a ON a.company_id = c.id
        WHERE c.name ILIKE $1 OR c.inn ILIKE $1
        GROUP BY c.id
        ORDER BY c.created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, "%"+search+"%", limit, offset)
	if err != nil {
		zap.L().Error("can't get companies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var companies []domain.CompanyWithStats
	for rows.Next() {
		var c domain.CompanyWithStats
		err := rows.Scan(&c.ID, &c.Name, &c.INN, &c.CreatedAt, &c.TotalApplications, &c.ActiveApplications)
		if err != nil {
			zap.L().Error("can't scan company row", zap.Error(err))
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *Repository) Count(ctx context.Context, search string) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM companies
        WHERE name ILIKE $1 OR inn ILIKE $1
    `
	var count int64
	if err := r.db.QueryRow(ctx, query, "%"+search+"%").Scan(&count); err != nil {
		zap.L().Error("can't count companies", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Statistics aggregates a company's applications and their check sums for
// the detail view.
func (r *Repository) Statistics(ctx context.Context, companyID int64) (*domain.CompanyStatistics, error) {
	query := `
        SELECT COUNT(DISTINCT a.id),
               COUNT(DISTINCT a.id) FILTER (WHERE NOT (a.status @> ARRAY['us_paid'])),
               COALESCE(SUM(ch.quantity * ch.price_per_unit), 0),
               COALESCE(SUM(ch.quantity * ch.price_per_unit) FILTER (WHERE NOT (a.status @> ARRAY['us_paid'])), 0)
        FROM applications a
        LEFT JOIN checks ch ON ch.application_id = a.id
        WHERE a.company_id = $1
    `
	var stats domain.CompanyStatistics
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&stats.TotalApplications, &stats.ActiveApplications, &stats.TotalAmount, &stats.ActiveAmount,
	)
	if err != nil {
		zap.L().Error("can't get company statistics", zap.Int64("id", companyID), zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) Update(ctx context.Context, company *domain.Company) error {
	query := `
        UPDATE companies
        SET name = $1, inn = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, company.Name, company.INN, company.ID)
	if err != nil {
		zap.L().Error("can't update company", zap.Int64("id", company.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindSelectors(ctx context.Context) ([]domain.Selector, error) {
	query := `SELECT id, name, inn FROM companies ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get company selectors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var selectors []domain.Selector
	for rows.Next() {
		var s domain.Selector
		if err := rows.Scan(&s.ID, &s.Name, &s.INN); err != nil {
			return nil, err
		}
		selectors = append(selectors, s)
	}
	return selectors, rows.Err()
}
