package commentrepo

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

func fileArgs(f *domain.CommentFile) (originalName, name, path, mimeType *string) {
	if f == nil {
		return nil, nil, nil, nil
	}
	return &f.OriginalName, &f.Filename, &f.Path, &f.MimeType
}

func scanComment(row pgx.Row, extra ...any) (*domain.Comment, error) {
	var c domain.Comment
	var originalName, name, path, mimeType *string
	dest := []any{
		&c.ID, &c.ApplicationID, &c.AuthorID, &c.AuthorType, &c.Text,
		&originalName, &name, &path, &mimeType, &c.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if name != nil {
		c.File = &domain.CommentFile{Filename: *name}
		if originalName != nil {
			c.File.OriginalName = *originalName
		}
		if path != nil {
			c.File.Path = *path
		}
		if mimeType != nil {
			c.File.MimeType = *mimeType
		}
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	query := `
        INSERT INTO comments (application_id, author_id, author_type, text,
                              file_original_name, file_name, file_path, file_mime_type)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	originalName, name, path, mimeType := fileArgs(comment.File)
	err := r.db.QueryRow(ctx, query,
		comment.ApplicationID, comment.AuthorID, comment.AuthorType, comment.Text,
		originalName, name, path, mimeType,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		zap.L().Error("can't create comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query := `
        SELECT id, application_id, author_id, author_type, text,
               file_original_name, file_name, file_path, file_mime_type, created_at
        FROM comments
        WHERE id = $1
    `
	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find comment", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return comment, nil
}

// FindByApplicationID returns the application's comments oldest first with
// the author name resolved against whichever table the author lives in.
func (r *Repository) FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Comment, error) {
	query := `
        SELECT c.id, c.application_id, c.author_id, c.author_type, c.text,
               c.file_original_name, c.file_name, c.file_path, c.file_mime_type, c.created_at,
               COALESCE(ad.name, u.name, '') AS author_name
        FROM comments c
        LEFT JOIN admins ad ON c.author_type = 'Admin' AND ad.id = c.author_id
        LEFT JOIN users u ON c.author_type = 'User' AND u.id = c.author_id
        WHERE c.application_id = $1
        ORDER BY c.id ASC
    `
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		zap.L().Error("can't get comments", zap.Int64("application_id", applicationID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var authorName string
		comment, err := scanComment(rows, &authorName)
		if err != nil {
			zap.L().Error("can't scan comment row", zap.Error(err))
			return nil, err
		}
		comment.AuthorName = authorName
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete comment", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// FindFilePaths lists the stored attachment paths for an application, used
// to clean up disk files when the application goes away.
func (r *Repository) FindFilePaths(ctx context.Context, applicationID int64) ([]string, error) {
	query := `
        SELECT file_path
        FROM comments
        WHERE application_id = $1 AND file_path IS NOT NULL
    `
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		zap.L().Error("can't get comment files", zap.Int64("application_id", applicationID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
