package admins

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func asAdmin(r *http.Request, adminID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.AdminIDKey, adminID))
}

func withIDParam(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestMe(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful profile", func(t *testing.T) {
		service.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Admin{
			ID: 1, Login: "root", Name: "Root", IsSuperAdmin: true,
		}, nil)

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admins/me", nil), 1)
		w := httptest.NewRecorder()
		handler.Me(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"isSuperAdmin":true`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("No auth context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admins/me", nil)
		w := httptest.NewRecorder()
		handler.Me(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListAdmins(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Super admin lists accounts", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), int64(1)).Return([]dto.AdminResponseDTO{
			{ID: 1, Login: "root", Name: "Root", IsSuperAdmin: true},
			{ID: 2, Login: "manager", Name: "Manager"},
		}, nil)

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admins", nil), 1)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "manager")
	})

	t.Run("Regular admin is refused", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), int64(2)).Return(nil, domain.ErrSuperAdminRequired)

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admins", nil), 2)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No auth context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admins", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateAdmin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		actorID        int64
		id             string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name:    "Successful update",
			actorID: 1,
			id:      "2",
			body:    `{"name":"Lead Manager"}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), int64(1), int64(2), gomock.Any()).
					Return(&domain.Admin{ID: 2, Login: "manager", Name: "Lead Manager"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Super admin required",
			actorID: 2,
			id:      "1",
			body:    `{"name":"Other"}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), int64(2), int64(1), gomock.Any()).
					Return(nil, domain.ErrSuperAdminRequired)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "Login taken",
			actorID: 1,
			id:      "2",
			body:    `{"login":"root"}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), int64(1), int64(2), gomock.Any()).
					Return(nil, domain.ErrAdminLoginTaken)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPut, "/api/admins/"+tt.id, bytes.NewBufferString(tt.body))
			req = asAdmin(req, tt.actorID)
			req = withIDParam(req, tt.id)
			w := httptest.NewRecorder()
			handler.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDeleteAdmin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		actorID        int64
		id             string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name:    "Successful delete",
			actorID: 1,
			id:      "2",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Self delete refused",
			actorID: 1,
			id:      "1",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), int64(1), int64(1)).Return(domain.ErrSelfDelete)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "Last admin",
			actorID: 1,
			id:      "2",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(domain.ErrLastAdmin)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/admins/"+tt.id, nil)
			req = asAdmin(req, tt.actorID)
			req = withIDParam(req, tt.id)
			w := httptest.NewRecorder()
			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
