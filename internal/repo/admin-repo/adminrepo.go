package adminrepo

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

const adminColumns = `id, login, password_hash, name, is_super_admin, created_at`

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Name, &a.IsSuperAdmin, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query := `
        INSERT INTO admins (login, password_hash, name, is_super_admin)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, admin.Login, admin.PasswordHash, admin.Name, admin.IsSuperAdmin).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		zap.L().Error("can't create admin", zap.Error(err))
		return nil, err
	}
	return admin, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find admin", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return admin, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE login = $1`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, login))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find admin by login", zap.Error(err))
		return nil, err
	}
	return admin, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get admins", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		var a domain.Admin
		err := rows.Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Name, &a.IsSuperAdmin, &a.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan admin row", zap.Error(err))
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count admins", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Update(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query := `
        UPDATE admins
        SET login = $1, password_hash = $2, name = $3, is_super_admin = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, admin.Login, admin.PasswordHash, admin.Name, admin.IsSuperAdmin, admin.ID)
	if err != nil {
		zap.L().Error("can't update admin", zap.Int64("id", admin.ID), zap.Error(err))
		return nil, err
	}
	return admin, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM admins WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete admin", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
