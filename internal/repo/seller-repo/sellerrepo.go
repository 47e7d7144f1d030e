package sellerrepo

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

const sellerColumns = `id, name, inn, tg_link, type, created_at`

func scanSeller(row pgx.Row) (*domain.Seller, error) {
	var s domain.Seller
	err := row.Scan(&s.ID, &s.Name, &s.INN, &s.TGLink, &s.Type, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	query := `
        INSERT INTO sellers (name, inn, tg_link, type)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, seller.Name, seller.INN, seller.TGLink, seller.Type).
		Scan(&seller.ID, &seller.CreatedAt)
	if err != nil {
		zap.L().Error("can't create seller", zap.Error(err))
		return nil, err
	}
	return seller, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`
	seller, err := scanSeller(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find seller", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return seller, nil
}

func (r *Repository) FindByINN(ctx context.Context, inn string) (*domain.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE inn = $1`
	seller, err := scanSeller(r.db.QueryRow(ctx, query, inn))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find seller by inn", zap.String("inn", inn), zap.Error(err))
		return nil, err
	}
	return seller, nil
}

func (r *Repository) FindAll(ctx context.Context, types []string, search string) ([]domain.Seller, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(types) > 0 {
		conds = append(conds, "type = ANY("+arg(types)+")")
	}
	if search != "" {
		p := arg("%" + search + "%")
		conds = append(conds, "(name ILIKE "+p+" OR inn ILIKE "+p+")")
	}

	query := `SELECT ` + sellerColumns + ` FROM sellers`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get sellers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sellers []domain.Seller
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			zap.L().Error("can't scan seller row", zap.Error(err))
			return nil, err
		}
		sellers = append(sellers, *seller)
	}
	return sellers, rows.Err()
}

func (r *Repository) FindMatching(ctx context.Context, search string) ([]int64, error) {
	query := `
        SELECT id
        FROM sellers
        WHERE name ILIKE $1 OR inn ILIKE $1
    `
	rows, err := r.db.Query(ctx, query, "%"+search+"%")
	if err != nil {
		zap.L().Error("can't search sellers", zap.Error(err))
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

func (r *Repository) Update(ctx context.Context, seller *domain.Seller) error {
	query := `
        UPDATE sellers
        SET name = $1, inn = $2, tg_link = $3, type = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, seller.Name, seller.INN, seller.TGLink, seller.Type, seller.ID)
	if err != nil {
		zap.L().Error("can't update seller", zap.Int64("id", seller.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sellers WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete seller", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindSelectors(ctx context.Context) ([]domain.Selector, error) {
	query := `SELECT id, name, inn FROM sellers ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get seller selectors", zap.Error(err))
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
