package checkservice

import (
	"context"
	"testing"
	"time"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo        *MockRepo
	appRepo     *MockApplicationRepo
	appService  *MockApplicationService
	counterRepo *MockCounterRepo
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:        NewMockRepo(ctrl),
		appRepo:     NewMockApplicationRepo(ctrl),
		appService:  NewMockApplicationService(ctrl),
		counterRepo: NewMockCounterRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.appRepo, m.appService, m.counterRepo, m.txManager)
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestCreateCheck(t *testing.T) {
	app := &domain.ApplicationWithRefs{Application: domain.Application{ID: 10}}

	t.Run("creates and recomputes totals", func(t *testing.T) {
		service, m := NewMock(t)
		m.appRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(app, nil)
		passthroughTx(m)
		m.counterRepo.EXPECT().Next(gomock.Any(), domain.CounterCheckNumber).Return(int64(55), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Check) (*domain.Check, error) {
				return c, nil
			})
		m.appService.EXPECT().RecomputeTotals(gomock.Any(), int64(10)).Return(200.0, 1, nil)

		check, err := service.Create(context.Background(), dto.CreateCheckRequestDTO{
			ApplicationID: 10,
			Date:          "09/12/2024",
			Product:       "cement",
			Quantity:      2,
			PricePerUnit:  100,
			Unit:          "bag",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(55), check.CheckNumber)
		assert.Equal(t, time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC), check.Date)
	})

	t.Run("missing application", func(t *testing.T) {
		service, m := NewMock(t)
		m.appRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(nil, nil)

		_, err := service.Create(context.Background(), dto.CreateCheckRequestDTO{ApplicationID: 11, Date: "09/12/2024"})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("bad date", func(t *testing.T) {
		service, m := NewMock(t)
		m.appRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(app, nil)

		_, err := service.Create(context.Background(), dto.CreateCheckRequestDTO{ApplicationID: 10, Date: "12-09-2024"})
		assert.ErrorIs(t, err, domain.ErrBadCheckDate)
	})
}

func TestUpdateCheck(t *testing.T) {
	service, m := NewMock(t)
	existing := &domain.Check{ID: 5, ApplicationID: 10, Product: "cement", Quantity: 2, PricePerUnit: 100}
	m.repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(existing, nil)
	passthroughTx(m)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.Check) error {
			assert.Equal(t, 3.0, c.Quantity)
			assert.Equal(t, "cement", c.Product)
			return nil
		})
	m.appService.EXPECT().RecomputeTotals(gomock.Any(), int64(10)).Return(300.0, 1, nil)

	quantity := 3.0
	check, err := service.Update(context.Background(), 5, dto.UpdateCheckRequestDTO{Quantity: &quantity})
	assert.NoError(t, err)
	assert.Equal(t, 3.0, check.Quantity)
}

func TestDeleteCheck(t *testing.T) {
	t.Run("deletes and recomputes inside the transaction", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&domain.Check{ID: 5, ApplicationID: 10}, nil)
		passthroughTx(m)
		m.repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
		m.appService.EXPECT().RecomputeTotals(gomock.Any(), int64(10)).Return(0.0, 0, nil)

		assert.NoError(t, service.Delete(context.Background(), 5))
	})

	t.Run("missing check", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(6)).Return(nil, nil)

		assert.ErrorIs(t, service.Delete(context.Background(), 6), domain.ErrCheckNotFound)
	})
}

func TestListChecks(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().CountFiltered(gomock.Any(), gomock.Any()).Return(int64(25), nil)
	m.repo.EXPECT().FindFiltered(gomock.Any(), gomock.Any(), 10, 10).Return([]domain.CheckWithRefs{
		{
			Check:   domain.Check{ID: 1, CheckNumber: 7, ApplicationID: 3, Date: time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC), Quantity: 2, PricePerUnit: 100.5},
			Company: domain.Company{ID: 4, Name: "Acme"},
			Seller:  domain.Seller{ID: 6, Name: "seller"},
		},
	}, nil)

	out, err := service.List(context.Background(), dto.CheckFilterDTO{Page: 2, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(25), out.Total)
	assert.Equal(t, 3, out.Pages)
	assert.Len(t, out.Checks, 1)
	assert.Equal(t, "201.00", out.Checks[0].LineTotal)
	assert.Equal(t, "09/12/2024", out.Checks[0].Date)
}

func TestListForApplication(t *testing.T) {
	service, m := NewMock(t)
	m.appRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&domain.ApplicationWithRefs{
		Application: domain.Application{ID: 3},
	}, nil)
	m.repo.EXPECT().FindByApplicationID(gomock.Any(), int64(3)).Return([]domain.Check{
		{ID: 1, Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Date: time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC)},
	}, nil)

	out, err := service.ListForApplication(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	// newest first
	assert.Equal(t, int64(2), out[0].ID)
}
