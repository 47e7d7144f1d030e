package userrepo

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

const userColumns = `id, name, key, can_save, is_blocked, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Key, &u.CanSave, &u.IsBlocked, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (name, key, can_save)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Name, user.Key, user.CanSave).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE name = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by name", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByKey resolves the opaque access key users log in with.
func (r *Repository) FindByKey(ctx context.Context, key string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE key = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by key", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindWithStats lists users with their application counters.
func (r *Repository) FindWithStats(ctx context.Context) ([]domain.UserWithStats, error) {
	query := `
        SELECT u.id, u.name, u.key, u.can_save, u.is_blocked, u.created_at,
               COUNT(a.id) AS total_applications,
               COUNT(a.id) FILTER (WHERE NOT (a.status @> ARRAY['us_paid'])) AS active_applications
        FROM users u
        LEFT JOIN applications a ON a.user_id = u.id
        GROUP BY u.id
        ORDER BY u.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserWithStats
	for rows.Next() {
		var u domain.UserWithStats
		err := rows.Scan(&u.ID, &u.Name, &u.Key, &u.CanSave, &u.IsBlocked, &u.CreatedAt,
			&u.TotalApplications, &u.ActiveApplications)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *Repository) FindMatching(ctx context.Context, search string) ([]int64, error) {
	query := `
        SELECT id
        FROM users
        WHERE name ILIKE $1
    `
	rows, err := r.db.Query(ctx, query, "%"+search+"%")
	if err != nil {
		zap.L().Error("can't search users", zap.Error(err))
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

func (r *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET name = $1, can_save = $2, is_blocked = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, user.Name, user.CanSave, user.IsBlocked, user.ID)
	if err != nil {
		zap.L().Error("can't update user", zap.Int64("id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// AddSavedCompany links a company to the user's saved set. Re-adding an
// already saved company is a no-op.
func (r *Repository) AddSavedCompany(ctx context.Context, userID, companyID int64) error {
	query := `
        INSERT INTO user_saved_companies (user_id, company_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID, companyID)
	if err != nil {
		zap.L().Error("can't save company for user", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RemoveSavedCompany(ctx context.Context, userID, companyID int64) error {
	query := `DELETE FROM user_saved_companies WHERE user_id = $1 AND company_id = $2`
	_, err := r.db.Exec(ctx, query, userID, companyID)
	if err != nil {
		zap.L().Error("can't remove saved company", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// FindSavedCompanies returns the user's saved companies in the order they
// were added.
func (r *Repository) FindSavedCompanies(ctx context.Context, userID int64) ([]domain.Company, error) {
	query := `
        SELECT c.id, c.name, c.inn, c.created_at
        FROM user_saved_companies sc
        JOIN companies c ON c.id = sc.company_id
        WHERE sc.user_id = $1
        ORDER BY sc.created_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get saved companies", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.INN, &c.CreatedAt); err != nil {
			zap.L().Error("can't scan saved company row", zap.Error(err))
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *Repository) FindSelectors(ctx context.Context) ([]domain.Selector, error) {
	query := `SELECT id, name, '' FROM users ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get user selectors", zap.Error(err))
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
