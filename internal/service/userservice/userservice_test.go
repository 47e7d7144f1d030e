package userservice

import (
	"context"
	"testing"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo        *MockRepo
	companyRepo *MockCompanyRepo
	appRepo     *MockApplicationRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:        NewMockRepo(ctrl),
		companyRepo: NewMockCompanyRepo(ctrl),
		appRepo:     NewMockApplicationRepo(ctrl),
	}
	return New(m.repo, m.companyRepo, m.appRepo), m
}

func TestRegister(t *testing.T) {
	t.Run("generates an access key", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByName(gomock.Any(), "buyer").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) (*domain.User, error) {
				u.ID = 1
				return u, nil
			})

		user, err := service.Register(context.Background(), dto.RegisterUserRequestDTO{Name: "buyer", CanSave: true})
		assert.NoError(t, err)
		assert.True(t, user.CanSave)
		_, err = uuid.Parse(user.Key)
		assert.NoError(t, err)
	})

	t.Run("name taken", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByName(gomock.Any(), "buyer").Return(&domain.User{ID: 2}, nil)

		_, err := service.Register(context.Background(), dto.RegisterUserRequestDTO{Name: "buyer"})
		assert.ErrorIs(t, err, domain.ErrUserNameTaken)
	})
}

func TestUpdateUser(t *testing.T) {
	service, m := NewMock(t)
	blocked := true
	m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Name: "buyer"}, nil)
	m.repo.EXPECT().Update(gomock.Any(), &domain.User{ID: 1, Name: "buyer", IsBlocked: true}).Return(nil)

	user, err := service.Update(context.Background(), 1, dto.UpdateUserRequestDTO{IsBlocked: &blocked})
	assert.NoError(t, err)
	assert.True(t, user.IsBlocked)
}

func TestGetInfo(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Name: "buyer"}, nil)
	m.appRepo.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return([]domain.ApplicationWithRefs{
		{Application: domain.Application{ID: 1, Status: []string{domain.StatusCreated}}},
		{Application: domain.Application{ID: 2, Status: []string{domain.StatusUsPaid}}},
	}, nil)

	info, err := service.GetInfo(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, info.TotalApplications)
	assert.Equal(t, 1, info.ActiveApplications)
}

func TestSaveCompany(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "saves for permitted user",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, CanSave: true}, nil)
				m.companyRepo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&domain.Company{ID: 5}, nil)
				m.repo.EXPECT().AddSavedCompany(gomock.Any(), int64(1), int64(5)).Return(nil)
			},
		},
		{
			name: "forbidden without canSave",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
			},
			expectedError: domain.ErrSaveNotAllowed,
		},
		{
			name: "missing company",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, CanSave: true}, nil)
				m.companyRepo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, nil)
			},
			expectedError: domain.ErrCompanyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.SaveCompany(context.Background(), 1, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
