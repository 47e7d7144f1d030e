package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	pkgauth "github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestUserLogin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Successful login",
			body: `{"key":"2b1b44a2-8a10-4c0e-92d5-4f0c6e6b43f1"}`,
			prepareMock: func() {
				service.EXPECT().LoginUser(gomock.Any(), "2b1b44a2-8a10-4c0e-92d5-4f0c6e6b43f1").Return("client-token", &domain.User{
					ID:      1,
					Name:    "Ivan Petrov",
					CanSave: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp dto.UserLoginResponseDTO
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "client-token", resp.Token)
				assert.Equal(t, "Ivan Petrov", resp.User.Name)
				assert.Empty(t, resp.User.Key)
			},
		},
		{
			name:           "Malformed body",
			body:           `{not json`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing key",
			body:           `{}`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown key",
			body: `{"key":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().LoginUser(gomock.Any(), "wrong").Return("", nil, domain.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Blocked user",
			body: `{"key":"blocked"}`,
			prepareMock: func() {
				service.EXPECT().LoginUser(gomock.Any(), "blocked").Return("", nil, domain.ErrUserBlocked)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.UserLogin(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestAdminLogin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful login",
			body: `{"login":"root","password":"strongpassword"}`,
			prepareMock: func() {
				service.EXPECT().LoginAdmin(gomock.Any(), "root", "strongpassword").Return("admin-token", &domain.Admin{
					ID: 1, Login: "root", Name: "Root", IsSuperAdmin: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"root","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().LoginAdmin(gomock.Any(), "root", "wrong").Return("", nil, domain.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing password",
			body:           `{"login":"root"}`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.AdminLogin(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAdminRegister(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		ctx            context.Context
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Super admin registers an admin",
			body: `{"login":"manager","password":"strongpassword","name":"Manager"}`,
			ctx:  context.WithValue(context.Background(), pkgauth.AdminIDKey, int64(1)),
			prepareMock: func() {
				service.EXPECT().RegisterAdmin(gomock.Any(), int64(1), dto.AdminRegisterRequestDTO{
					Login: "manager", Password: "strongpassword", Name: "Manager",
				}).Return(&domain.Admin{ID: 2, Login: "manager", Name: "Manager"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Anonymous bootstrap",
			body: `{"login":"root","password":"strongpassword","name":"Root"}`,
			ctx:  context.Background(),
			prepareMock: func() {
				service.EXPECT().RegisterAdmin(gomock.Any(), int64(0), dto.AdminRegisterRequestDTO{
					Login: "root", Password: "strongpassword", Name: "Root",
				}).Return(&domain.Admin{ID: 1, Login: "root", Name: "Root", IsSuperAdmin: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Anonymous registration after bootstrap",
			body: `{"login":"intruder","password":"strongpassword","name":"Intruder"}`,
			ctx:  context.Background(),
			prepareMock: func() {
				service.EXPECT().RegisterAdmin(gomock.Any(), int64(0), gomock.Any()).Return(nil, domain.ErrSuperAdminRequired)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Login taken",
			body: `{"login":"root","password":"strongpassword","name":"Another"}`,
			ctx:  context.WithValue(context.Background(), pkgauth.AdminIDKey, int64(1)),
			prepareMock: func() {
				service.EXPECT().RegisterAdmin(gomock.Any(), int64(1), gomock.Any()).Return(nil, domain.ErrAdminLoginTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Missing name",
			body:           `{"login":"manager","password":"strongpassword"}`,
			ctx:            context.Background(),
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/register", bytes.NewBufferString(tt.body))
			req = req.WithContext(tt.ctx)
			w := httptest.NewRecorder()
			handler.AdminRegister(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
