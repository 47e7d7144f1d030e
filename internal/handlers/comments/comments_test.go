package comments

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/internal/service/commentservice"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CommentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func asUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func asAdmin(r *http.Request, adminID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.AdminIDKey, adminID))
}

func withIDParam(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func multipartBody(t *testing.T, text, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if text != "" {
		require.NoError(t, writer.WriteField("text", text))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestListComments(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListForApplication(gomock.Any(), int64(3)).Return([]dto.CommentResponseDTO{
		{ID: 1, Text: "please recheck the vat", AuthorType: domain.AuthorTypeAdmin, AuthorName: "Root"},
	}, nil)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/applications/3/comments", nil), 1)
	req = withIDParam(req, "3")
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recheck")
}

func TestCreateComment(t *testing.T) {
	t.Run("Admin text comment", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().Create(gomock.Any(), int64(3), int64(1), domain.AuthorTypeAdmin, "looks fine", nil).
			Return(&dto.CommentResponseDTO{ID: 10, Text: "looks fine", AuthorType: domain.AuthorTypeAdmin}, nil)

		body, contentType := multipartBody(t, "looks fine", "", "")
		req := httptest.NewRequest(http.MethodPost, "/api/applications/3/comments", body)
		req.Header.Set("Content-Type", contentType)
		req = asAdmin(req, 1)
		req = withIDParam(req, "3")
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Client comment with attachment", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().Create(gomock.Any(), int64(3), int64(7), domain.AuthorTypeUser, "scan attached", gomock.Any()).
			DoAndReturn(func(ctx context.Context, applicationID, authorID int64, authorType, text string, attachment *commentservice.Attachment) (*dto.CommentResponseDTO, error) {
				require.NotNil(t, attachment)
				assert.Equal(t, "receipt.pdf", attachment.OriginalName)
				return &dto.CommentResponseDTO{ID: 11, Text: text, AuthorType: authorType}, nil
			})

		body, contentType := multipartBody(t, "scan attached", "receipt.pdf", "%PDF-1.4 fake")
		req := httptest.NewRequest(http.MethodPost, "/api/applications/3/comments", body)
		req.Header.Set("Content-Type", contentType)
		req = asUser(req, 7)
		req = withIDParam(req, "3")
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Empty comment rejected", func(t *testing.T) {
		handler, _ := NewMock(t)

		body, contentType := multipartBody(t, "", "", "")
		req := httptest.NewRequest(http.MethodPost, "/api/applications/3/comments", body)
		req.Header.Set("Content-Type", contentType)
		req = asUser(req, 7)
		req = withIDParam(req, "3")
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No auth context", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := httptest.NewRequest(http.MethodPost, "/api/applications/3/comments", strings.NewReader(""))
		req = withIDParam(req, "3")
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Application missing", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().Create(gomock.Any(), int64(99), int64(1), domain.AuthorTypeAdmin, "hello", nil).
			Return(nil, domain.ErrApplicationNotFound)

		body, contentType := multipartBody(t, "hello", "", "")
		req := httptest.NewRequest(http.MethodPost, "/api/applications/99/comments", body)
		req.Header.Set("Content-Type", contentType)
		req = asAdmin(req, 1)
		req = withIDParam(req, "99")
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteComment(t *testing.T) {
	tests := []struct {
		name           string
		authorize      func(*http.Request) *http.Request
		prepareMock    func(*MockService)
		expectedStatus int
	}{
		{
			name:      "Admin deletes any comment",
			authorize: func(r *http.Request) *http.Request { return asAdmin(r, 1) },
			prepareMock: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), int64(10), int64(1), domain.AuthorTypeAdmin).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "Client deletes a foreign comment",
			authorize: func(r *http.Request) *http.Request { return asUser(r, 7) },
			prepareMock: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), int64(10), int64(7), domain.AuthorTypeUser).
					Return(domain.ErrNotCommentAuthor)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "No auth context",
			authorize:      func(r *http.Request) *http.Request { return r },
			prepareMock:    func(*MockService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodDelete, "/api/comments/10", nil)
			req = tt.authorize(req)
			req = withIDParam(req, "10")
			w := httptest.NewRecorder()
			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestClearComments(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ClearForApplication(gomock.Any(), int64(3)).Return(nil)

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/applications/3/comments", nil), 1)
	req = withIDParam(req, "3")
	w := httptest.NewRecorder()
	handler.Clear(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
