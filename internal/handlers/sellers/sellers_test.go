package sellers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SellerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withIDParam(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateSeller(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful creation",
			body: `{"name":"BuildSupply","inn":"7830002293","tgLink":"https://t.me/buildsupply","type":"elite"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), dto.CreateSellerRequestDTO{
					Name: "BuildSupply", INN: "7830002293", TGLink: "https://t.me/buildsupply", Type: "elite",
				}).Return(&domain.Seller{ID: 2, Name: "BuildSupply", INN: "7830002293", TGLink: "https://t.me/buildsupply", Type: "elite"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "INN taken",
			body: `{"name":"Another","inn":"7830002293"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrSellerINNTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Bad type",
			body: `{"name":"Another","inn":"7830002293","type":"gold"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrBadSellerType)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing INN",
			body:           `{"name":"Another"}`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/sellers", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestListSellers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), []string{"white", "elite"}, "supply").Return([]domain.Seller{
		{ID: 1, Name: "WhiteSupply", INN: "7707083893", Type: "white"},
		{ID: 2, Name: "BuildSupply", INN: "7830002293", Type: "elite"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sellers?types=white,elite&search=supply", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BuildSupply")
}

func TestUpdateSeller(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id int64, in dto.UpdateSellerRequestDTO) (*domain.Seller, error) {
			assert.Equal(t, "white", *in.Type)
			return &domain.Seller{ID: 2, Type: "white"}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/sellers/2", bytes.NewBufferString(`{"type":"white"}`))
	req = withIDParam(req, "2")
	w := httptest.NewRecorder()
	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteSeller(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		id             string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful delete",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Seller missing",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), int64(99)).Return(domain.ErrSellerNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/sellers/"+tt.id, nil)
			req = withIDParam(req, tt.id)
			w := httptest.NewRecorder()
			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
