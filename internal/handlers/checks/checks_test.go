package checks

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

func NewMock(t *testing.T) (*CheckHandler, *MockService) {
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

func TestCreateCheck(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful creation",
			body: `{"applicationId":3,"date":"09/12/2024","product":"Cement","quantity":10,"pricePerUnit":20,"unit":"bag"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), dto.CreateCheckRequestDTO{
					ApplicationID: 3, Date: "09/12/2024", Product: "Cement", Quantity: 10, PricePerUnit: 20, Unit: "bag",
				}).Return(&domain.Check{ID: 7, CheckNumber: 2007}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing product",
			body:           `{"applicationId":3}`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Application missing",
			body: `{"applicationId":99,"date":"09/12/2024","product":"Cement"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Bad date",
			body: `{"applicationId":3,"date":"2024-12-09","product":"Cement"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrBadCheckDate)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/checks", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUpdateCheck(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id int64, in dto.UpdateCheckRequestDTO) (*domain.Check, error) {
			assert.Equal(t, "Sand", *in.Product)
			assert.Nil(t, in.Quantity)
			return &domain.Check{ID: 7}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/checks/7", bytes.NewBufferString(`{"product":"Sand"}`))
	req = withIDParam(req, "7")
	w := httptest.NewRecorder()
	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteCheck(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		id             string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful delete",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Check missing",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), int64(99)).Return(domain.ErrCheckNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed id",
			id:             "abc",
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/checks/"+tt.id, nil)
			req = withIDParam(req, tt.id)
			w := httptest.NewRecorder()
			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestListChecks(t *testing.T) {
	handler, service := NewMock(t)

	sumTo := 5000.0
	service.EXPECT().List(gomock.Any(), dto.CheckFilterDTO{
		Search:     "cement",
		CompanyIDs: []int64{1, 2},
		SumTo:      &sumTo,
		Page:       1,
		Limit:      10,
	}).Return(&dto.CheckListResponseDTO{Total: 3, Page: 1, Pages: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/checks?search=cement&companyIds=1,2&sumTo=5000&page=1&limit=10", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":3`)
}

func TestListForApplication(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListForApplication(gomock.Any(), int64(3)).Return([]dto.CheckResponseDTO{
		{ID: 2, Date: "10/12/2024", LineTotal: "300.00"},
		{ID: 1, Date: "09/12/2024", LineTotal: "200.00"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/3/checks", nil)
	req = withIDParam(req, "3")
	w := httptest.NewRecorder()
	handler.ListForApplication(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"300.00"`)
}
