package comments

import (
	"context"
	"net/http"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/internal/service/commentservice"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/checkplatform/checkdesk/pkg/utils"
)

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=comments

// maxUploadSize bounds the multipart form, attachment included.
const maxUploadSize = 20 << 20

type Service interface {
	ListForApplication(ctx context.Context, applicationID int64) ([]dto.CommentResponseDTO, error)
	Create(ctx context.Context, applicationID, authorID int64, authorType, text string, attachment *commentservice.Attachment) (*dto.CommentResponseDTO, error)
	Delete(ctx context.Context, id, actorID int64, actorType string) error
	ClearForApplication(ctx context.Context, applicationID int64) error
}

type CommentHandler struct {
	commentService Service
}

func New(commentService Service) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// actor resolves who is talking from the auth context. Admin identity wins
// when both keys are somehow present.
func actor(r *http.Request) (int64, string, bool) {
	if adminID, ok := r.Context().Value(auth.AdminIDKey).(int64); ok {
		return adminID, domain.AuthorTypeAdmin, true
	}
	if userID, ok := r.Context().Value(auth.UserIDKey).(int64); ok {
		return userID, domain.AuthorTypeUser, true
	}
	return 0, "", false
}

// List godoc
//
//	@Summary		Comments of an application
//	@Description	Full comment thread of one application, oldest first
//	@Tags			Comments
//	@Produce		json
//	@Param			id	path	int	true	"Application id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CommentResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	applicationID, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	comments, err := h.commentService.ListForApplication(r.Context(), applicationID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, comments)
}

// Create godoc
//
//	@Summary		Add a comment
//	@Description	Post a comment to an application, optionally with one file attachment (multipart/form-data, fields "text" and "file")
//	@Tags			Comments
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		int		true	"Application id"
//	@Param			text	formData	string	false	"Comment text"
//	@Param			file	formData	file	false	"Attachment"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CommentResponseDTO
//	@Failure		400	{object}	utils.Response	"Empty comment"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, actorType, ok := actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	applicationID, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	text := r.FormValue("text")

	var attachment *commentservice.Attachment
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		attachment = &commentservice.Attachment{
			OriginalName: header.Filename,
			MimeType:     header.Header.Get("Content-Type"),
			Reader:       file,
		}
	} else if err != http.ErrMissingFile {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid attachment")
		return
	}

	if text == "" && attachment == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment text or attachment is required")
		return
	}

	comment, err := h.commentService.Create(r.Context(), applicationID, actorID, actorType, text, attachment)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, comment)
}

// Delete godoc
//
//	@Summary		Delete a comment
//	@Description	Admins delete any comment, clients only their own
//	@Tags			Comments
//	@Produce		json
//	@Param			id	path	int	true	"Comment id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Comment deleted"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Not the comment author"
//	@Failure		404	{object}	utils.Response	"Comment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, actorType, ok := actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.commentService.Delete(r.Context(), id, actorID, actorType); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Comment deleted"})
}

// Clear godoc
//
//	@Summary		Clear a comment thread
//	@Description	Remove every comment of an application along with stored attachments
//	@Tags			Comments
//	@Produce		json
//	@Param			id	path	int	true	"Application id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Comments cleared"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/comments [delete]
func (h *CommentHandler) Clear(w http.ResponseWriter, r *http.Request) {
	applicationID, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := h.commentService.ClearForApplication(r.Context(), applicationID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Comments cleared"})
}
