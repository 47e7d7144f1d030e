package applicationrepo

import (
	"context"

	"github.com/checkplatform/checkdesk/internal/domain"
	"go.uber.org/zap"
)

// History rows are append-only: there is no update or delete path, and reads
// preserve insertion order.

func (r *Repository) AppendHistory(ctx context.Context, e *domain.HistoryEntry) error {
	query := `
        INSERT INTO application_history (application_id, admin_id, kind, message, status, action)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, e.ApplicationID, e.AdminID, e.Kind, e.Message, e.Status, e.Action)
	if err != nil {
		zap.L().Error("can't append history entry", zap.Int64("application_id", e.ApplicationID), zap.Error(err))
		return err
	}
	return nil
}

// FindHistory returns the application's history in insertion order. The
// author's name is joined at read time, so renaming an admin changes how old
// entries are attributed.
func (r *Repository) FindHistory(ctx context.Context, applicationID int64) ([]domain.HistoryEntry, error) {
	query := `
        SELECT h.id, h.application_id, h.admin_id, h.kind, h.message, h.status, h.action, h.created_at, ad.name
        FROM application_history h
        JOIN admins ad ON ad.id = h.admin_id
        WHERE h.application_id = $1
        ORDER BY h.id ASC
    `
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		zap.L().Error("can't get history", zap.Int64("application_id", applicationID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		err := rows.Scan(&e.ID, &e.ApplicationID, &e.AdminID, &e.Kind, &e.Message, &e.Status, &e.Action, &e.CreatedAt, &e.AdminName)
		if err != nil {
			zap.L().Error("can't scan history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
