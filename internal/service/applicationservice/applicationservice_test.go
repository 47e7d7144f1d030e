package applicationservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/internal/notify"
	"github.com/checkplatform/checkdesk/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

// stubNotifier records calls without gomock so the post-commit goroutine
// cannot race the controller shutdown.
type stubNotifier struct {
	mu     sync.Mutex
	events []notify.ApplicationCreated
}

func (n *stubNotifier) ApplicationCreated(_ context.Context, e notify.ApplicationCreated) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

type mocks struct {
	repo        *MockRepo
	checkRepo   *MockCheckRepo
	companyRepo *MockCompanyRepo
	sellerRepo  *MockSellerRepo
	userRepo    *MockUserRepo
	counterRepo *MockCounterRepo
	txManager   *pg.MockTXManager
	notifier    *stubNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:        NewMockRepo(ctrl),
		checkRepo:   NewMockCheckRepo(ctrl),
		companyRepo: NewMockCompanyRepo(ctrl),
		sellerRepo:  NewMockSellerRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		counterRepo: NewMockCounterRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		notifier:    &stubNotifier{},
	}
	service := New(m.repo, m.checkRepo, m.companyRepo, m.sellerRepo, m.userRepo, m.counterRepo, m.txManager, m.notifier)
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestCreate(t *testing.T) {
	user := &domain.User{ID: 7, Name: "buyer", CanSave: false}
	seller := &domain.Seller{ID: 3, Name: "seller"}
	company := &domain.Company{ID: 5, Name: "Acme", INN: "7707083893"}

	tests := []struct {
		name          string
		in            dto.CreateApplicationRequestDTO
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "creates application with checks and notifies",
			in: dto.CreateApplicationRequestDTO{
				CompanyName: "Acme",
				CompanyINN:  "7707083893",
				SellerID:    3,
				Checks: []dto.CheckInputDTO{
					{Date: "09/12/24", Product: "cement", Quantity: 2, PricePerUnit: 100, Unit: "bag"},
				},
			},
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
				m.sellerRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(seller, nil)
				passthroughTx(m)
				m.companyRepo.EXPECT().FindByINN(gomock.Any(), "7707083893").Return(company, nil)
				m.counterRepo.EXPECT().Next(gomock.Any(), domain.CounterApplicationNumber).Return(int64(41), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, app *domain.Application) (*domain.Application, error) {
						app.ID = 10
						return app, nil
					})
				m.counterRepo.EXPECT().Next(gomock.Any(), domain.CounterCheckNumber).Return(int64(101), nil)
				m.checkRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Check) (*domain.Check, error) {
						return c, nil
					})
				m.checkRepo.EXPECT().FindByApplicationID(gomock.Any(), int64(10)).Return([]domain.Check{
					{ApplicationID: 10, Quantity: 2, PricePerUnit: 100},
				}, nil)
				m.repo.EXPECT().UpdateTotals(gomock.Any(), int64(10), 200.0, 1).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "inn reuse under a different name is a conflict",
			in: dto.CreateApplicationRequestDTO{
				CompanyName: "Other name",
				CompanyINN:  "7707083893",
				SellerID:    3,
			},
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
				m.sellerRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(seller, nil)
				passthroughTx(m)
				m.companyRepo.EXPECT().FindByINN(gomock.Any(), "7707083893").Return(company, nil)
			},
			expectedError: domain.ErrCompanyNameMismatch,
		},
		{
			name: "save company without permission",
			in: dto.CreateApplicationRequestDTO{
				CompanyName: "Acme",
				CompanyINN:  "7707083893",
				SellerID:    3,
				SaveCompany: true,
			},
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
				m.sellerRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(seller, nil)
				passthroughTx(m)
				m.companyRepo.EXPECT().FindByINN(gomock.Any(), "7707083893").Return(company, nil)
			},
			expectedError: domain.ErrSaveNotAllowed,
		},
		{
			name: "malformed inn",
			in: dto.CreateApplicationRequestDTO{
				CompanyName: "Acme",
				CompanyINN:  "1234567890",
				SellerID:    3,
			},
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
				m.sellerRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(seller, nil)
				passthroughTx(m)
			},
			expectedError: domain.ErrBadINN,
		},
		{
			name: "unknown seller",
			in: dto.CreateApplicationRequestDTO{
				CompanyName: "Acme",
				CompanyINN:  "7707083893",
				SellerID:    99,
			},
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
				m.sellerRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, nil)
			},
			expectedError: domain.ErrSellerNotFound,
		},
		{
			name: "bad check date",
			in: dto.CreateApplicationRequestDTO{
				CompanyName: "Acme",
				CompanyINN:  "7707083893",
				SellerID:    3,
				Checks:      []dto.CheckInputDTO{{Date: "2024-12-09"}},
			},
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
				m.sellerRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(seller, nil)
			},
			expectedError: domain.ErrBadCheckDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			app, err := service.Create(context.Background(), 7, tt.in)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, app)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(41), app.ApplicationNumber)
			assert.Equal(t, []string{domain.StatusCreated}, app.Status)
			assert.Equal(t, float64(defaultCommission), app.Commission)
			assert.Equal(t, 200.0, app.TotalAmount)
		})
	}
}

func TestSetStatus(t *testing.T) {
	app := &domain.ApplicationWithRefs{
		Application: domain.Application{ID: 1, Status: []string{domain.StatusCreated, domain.StatusIssued}},
	}

	tests := []struct {
		name          string
		target        []string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "records one entry per changed tag",
			target: []string{domain.StatusIssued, domain.StatusClientPaid},
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(app, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), []string{domain.StatusIssued, domain.StatusClientPaid}).Return(nil)
				m.repo.EXPECT().AppendHistory(gomock.Any(), &domain.HistoryEntry{
					ApplicationID: 1,
					AdminID:       2,
					Kind:          domain.HistoryKindStatus,
					Message:       "Status added",
					Status:        domain.StatusClientPaid,
					Action:        domain.HistoryActionAdd,
				}).Return(nil)
				m.repo.EXPECT().AppendHistory(gomock.Any(), &domain.HistoryEntry{
					ApplicationID: 1,
					AdminID:       2,
					Kind:          domain.HistoryKindStatus,
					Message:       "Status removed",
					Status:        domain.StatusCreated,
					Action:        domain.HistoryActionRemove,
				}).Return(nil)
			},
		},
		{
			name:   "same set is a no-op",
			target: []string{domain.StatusCreated, domain.StatusIssued},
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(app, nil)
			},
		},
		{
			name:          "unknown tag",
			target:        []string{"paid_maybe"},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrUnknownStatus,
		},
		{
			name:          "empty set",
			target:        nil,
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrEmptyStatusSet,
		},
		{
			name:   "missing application",
			target: []string{domain.StatusIssued},
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: domain.ErrApplicationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.SetStatus(context.Background(), 1, 2, tt.target)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecomputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		checks        []domain.Check
		expectedTotal float64
		expectedCount int
	}{
		{
			name: "sums quantity times price",
			checks: []domain.Check{
				{Quantity: 2, PricePerUnit: 100},
				{Quantity: 1.5, PricePerUnit: 4},
			},
			expectedTotal: 206,
			expectedCount: 2,
		},
		{
			name:          "empty set resets to zero",
			checks:        nil,
			expectedTotal: 0,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.checkRepo.EXPECT().FindByApplicationID(gomock.Any(), int64(9)).Return(tt.checks, nil)
			m.repo.EXPECT().UpdateTotals(gomock.Any(), int64(9), tt.expectedTotal, tt.expectedCount).Return(nil)

			total, count, err := service.RecomputeTotals(context.Background(), 9)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, total)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestUpdate(t *testing.T) {
	app := &domain.ApplicationWithRefs{
		Application: domain.Application{ID: 4, Status: []string{domain.StatusCreated}},
		Company:     domain.Company{ID: 5, Name: "Acme", INN: "7707083893"},
	}

	t.Run("removes and adds checks with one history entry", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(app, nil)
		m.checkRepo.EXPECT().DeleteByIDs(gomock.Any(), []int64{11, 12}).Return(nil)
		m.counterRepo.EXPECT().Next(gomock.Any(), domain.CounterCheckNumber).Return(int64(102), nil)
		m.checkRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Check) (*domain.Check, error) {
				assert.Equal(t, int64(102), c.CheckNumber)
				assert.Equal(t, int64(4), c.ApplicationID)
				return c, nil
			})
		m.repo.EXPECT().Update(gomock.Any(), int64(4), nil, nil, nil).Return(nil)
		m.checkRepo.EXPECT().FindByApplicationID(gomock.Any(), int64(4)).Return([]domain.Check{
			{Quantity: 3, PricePerUnit: 10},
		}, nil)
		m.repo.EXPECT().UpdateTotals(gomock.Any(), int64(4), 30.0, 1).Return(nil)
		m.repo.EXPECT().AppendHistory(gomock.Any(), &domain.HistoryEntry{
			ApplicationID: 4,
			AdminID:       2,
			Kind:          domain.HistoryKindChange,
			Message:       "Application changed: 1 checks added, 2 checks removed",
		}).Return(nil)

		err := service.Update(context.Background(), 4, 2, dto.UpdateApplicationRequestDTO{
			RemoveCheckIDs: []int64{11, 12},
			NewChecks: []dto.CheckInputDTO{
				{Date: "01/02/2025", Product: "sand", Quantity: 3, PricePerUnit: 10, Unit: "kg"},
			},
		})
		assert.NoError(t, err)
	})

	t.Run("commission out of range", func(t *testing.T) {
		service, _ := NewMock(t)
		bad := 101.0
		err := service.Update(context.Background(), 4, 2, dto.UpdateApplicationRequestDTO{Commission: &bad})
		assert.ErrorIs(t, err, domain.ErrBadCommission)
	})

	t.Run("missing application", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(nil, nil)
		err := service.Update(context.Background(), 4, 2, dto.UpdateApplicationRequestDTO{})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}

func TestStatusDiff(t *testing.T) {
	added, removed := statusDiff(
		[]string{domain.StatusCreated, domain.StatusIssued},
		[]string{domain.StatusIssued, domain.StatusUsPaid},
	)
	assert.Equal(t, []string{domain.StatusUsPaid}, added)
	assert.Equal(t, []string{domain.StatusCreated}, removed)

	added, removed = statusDiff([]string{domain.StatusCreated}, []string{domain.StatusCreated})
	assert.Empty(t, added)
	assert.Empty(t, removed)
}

func TestGetHistory(t *testing.T) {
	service, m := NewMock(t)
	created := time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.ApplicationWithRefs{
		Application: domain.Application{ID: 1},
	}, nil)
	m.repo.EXPECT().FindHistory(gomock.Any(), int64(1)).Return([]domain.HistoryEntry{
		{ID: 1, Kind: domain.HistoryKindStatus, Message: "Status added", Status: domain.StatusIssued, Action: domain.HistoryActionAdd, AdminName: "root", CreatedAt: created},
	}, nil)

	history, err := service.GetHistory(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "root", history[0].AdminName)
	assert.Equal(t, "2024-12-09T16:09:57Z", history[0].CreatedAt)
}

func TestCountActive(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().CountActive(gomock.Any()).Return(int64(12), nil)

	count, err := service.CountActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)

	service, m = NewMock(t)
	m.repo.EXPECT().CountActive(gomock.Any()).Return(int64(0), errors.New("boom"))
	_, err = service.CountActive(context.Background())
	assert.Error(t, err)
}
