package commentservice

import (
	"context"
	"io"
	"time"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"go.uber.org/zap"
)

//go:generate mockgen -source=commentservice.go -destination=commentservice_mock.go -package=commentservice

type Repo interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) error
	FindFilePaths(ctx context.Context, applicationID int64) ([]string, error)
}

type ApplicationRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.ApplicationWithRefs, error)
}

type FileStore interface {
	Save(originalName string, r io.Reader) (name, path string, err error)
	Delete(path string)
}

// Attachment is an uploaded file accompanying a comment.
type Attachment struct {
	OriginalName string
	MimeType     string
	Reader       io.Reader
}

type Service struct {
	repo      Repo
	appRepo   ApplicationRepo
	fileStore FileStore
}

func New(repo Repo, appRepo ApplicationRepo, fileStore FileStore) *Service {
	return &Service{repo: repo, appRepo: appRepo, fileStore: fileStore}
}

// ListForApplication returns the application's comments, oldest first.
func (s *Service) ListForApplication(ctx context.Context, applicationID int64) ([]dto.CommentResponseDTO, error) {
	if err := s.checkApplication(ctx, applicationID); err != nil {
		return nil, err
	}

	comments, err := s.repo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommentResponseDTO, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentDTO(&comments[i]))
	}
	return out, nil
}

// Create adds a comment, storing the attachment blob first when one is given.
func (s *Service) Create(ctx context.Context, applicationID, authorID int64, authorType, text string, attachment *Attachment) (*dto.CommentResponseDTO, error) {
	if err := s.checkApplication(ctx, applicationID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ApplicationID: applicationID,
		AuthorID:      authorID,
		AuthorType:    authorType,
		Text:          text,
	}

	if attachment != nil {
		name, path, err := s.fileStore.Save(attachment.OriginalName, attachment.Reader)
		if err != nil {
			zap.L().Error("can't store attachment", zap.Error(err))
			return nil, err
		}
		comment.File = &domain.CommentFile{
			OriginalName: attachment.OriginalName,
			Filename:     name,
			Path:         path,
			MimeType:     attachment.MimeType,
		}
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		if comment.File != nil {
			s.fileStore.Delete(comment.File.Path)
		}
		return nil, err
	}

	result := toCommentDTO(created)
	return &result, nil
}

// Delete removes a comment. Admins may delete any comment; users only their
// own. The attachment blob is removed best-effort.
func (s *Service) Delete(ctx context.Context, id, actorID int64, actorType string) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.ErrCommentNotFound
	}
	if actorType != domain.AuthorTypeAdmin &&
		(comment.AuthorType != actorType || comment.AuthorID != actorID) {
		return domain.ErrNotCommentAuthor
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if comment.File != nil {
		s.fileStore.Delete(comment.File.Path)
	}
	return nil
}

// ClearForApplication drops every comment of an application along with the
// stored attachments.
func (s *Service) ClearForApplication(ctx context.Context, applicationID int64) error {
	if err := s.checkApplication(ctx, applicationID); err != nil {
		return err
	}

	paths, err := s.repo.FindFilePaths(ctx, applicationID)
	if err != nil {
		return err
	}

	comments, err := s.repo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return err
	}
	for i := range comments {
		if err := s.repo.Delete(ctx, comments[i].ID); err != nil {
			return err
		}
	}

	for _, p := range paths {
		s.fileStore.Delete(p)
	}
	return nil
}

func (s *Service) checkApplication(ctx context.Context, applicationID int64) error {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func toCommentDTO(c *domain.Comment) dto.CommentResponseDTO {
	out := dto.CommentResponseDTO{
		ID:         c.ID,
		Text:       c.Text,
		AuthorType: c.AuthorType,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
	if c.File != nil {
		out.File = &dto.CommentFileDTO{
			OriginalName: c.File.OriginalName,
			Path:         c.File.Path,
			MimeType:     c.File.MimeType,
		}
	}
	return out
}
