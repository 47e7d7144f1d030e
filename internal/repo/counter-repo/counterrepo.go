package counterrepo

import (
	"context"

	"github.com/checkplatform/checkdesk/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Next increments the named sequence and returns the new value. The upsert
// and increment happen in one statement, so concurrent callers never receive
// equal numbers.
func (r *Repository) Next(ctx context.Context, name string) (int64, error) {
	query := `
        INSERT INTO counters (name, seq)
        VALUES ($1, 1)
        ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
        RETURNING seq
    `
	var seq int64
	err := r.db.QueryRow(ctx, query, name).Scan(&seq)
	if err != nil {
		zap.L().Error("can't advance counter", zap.String("name", name), zap.Error(err))
		return 0, err
	}
	return seq, nil
}
