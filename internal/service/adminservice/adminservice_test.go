package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)

	service := New(repo, hashService)
	return service, repo, hashService
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestGetByID(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		id            int64
		prepareMock   func()
		expectedAdmin *domain.Admin
		expectedError error
	}{
		{
			name: "Admin found",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(1)).Return(&domain.Admin{ID: 1, Login: "root"}, nil)
			},
			expectedAdmin: &domain.Admin{ID: 1, Login: "root"},
		},
		{
			name: "Admin not found",
			id:   99,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(99)).Return(nil, nil)
			},
			expectedError: domain.ErrAdminNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			admin, err := service.GetByID(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, admin)
			}
		})
	}
}

func TestUpdateAdmin(t *testing.T) {
	service, repo, passwordHasher := NewMock(t)

	superAdmin := func() *domain.Admin {
		return &domain.Admin{ID: 1, Login: "root", Name: "Root", IsSuperAdmin: true}
	}
	plainAdmin := func() *domain.Admin {
		return &domain.Admin{ID: 2, Login: "manager", Name: "Manager"}
	}

	tests := []struct {
		name          string
		actorID       int64
		id            int64
		in            dto.UpdateAdminRequestDTO
		prepareMock   func()
		check         func(t *testing.T, admin *domain.Admin)
		expectedError error
	}{
		{
			name:    "Self update name",
			actorID: 2,
			id:      2,
			in:      dto.UpdateAdminRequestDTO{Name: strPtr("New Name")},
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(plainAdmin(), nil).Times(2)
				repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
					return admin, nil
				})
			},
			check: func(t *testing.T, admin *domain.Admin) {
				assert.Equal(t, "New Name", admin.Name)
			},
		},
		{
			name:    "Plain admin cannot edit others",
			actorID: 2,
			id:      1,
			in:      dto.UpdateAdminRequestDTO{Name: strPtr("Hijack")},
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(plainAdmin(), nil)
			},
			expectedError: domain.ErrSuperAdminRequired,
		},
		{
			name:    "Plain admin cannot grant super admin",
			actorID: 2,
			id:      2,
			in:      dto.UpdateAdminRequestDTO{IsSuperAdmin: boolPtr(true)},
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(plainAdmin(), nil)
			},
			expectedError: domain.ErrSuperAdminRequired,
		},
		{
			name:    "Super admin grants the flag",
			actorID: 1,
			id:      2,
			in:      dto.UpdateAdminRequestDTO{IsSuperAdmin: boolPtr(true)},
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(1)).Return(superAdmin(), nil)
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(plainAdmin(), nil)
				repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
					return admin, nil
				})
			},
			check: func(t *testing.T, admin *domain.Admin) {
				assert.True(t, admin.IsSuperAdmin)
			},
		},
		{
			name:    "Login already taken",
			actorID: 2,
			id:      2,
			in:      dto.UpdateAdminRequestDTO{Login: strPtr("root")},
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(plainAdmin(), nil).Times(2)
				repo.EXPECT().FindByLogin(context.Background(), "root").Return(superAdmin(), nil)
			},
			expectedError: domain.ErrAdminLoginTaken,
		},
		{
			name:    "Password change rehashes",
			actorID: 2,
			id:      2,
			in:      dto.UpdateAdminRequestDTO{Password: strPtr("newpassword")},
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(plainAdmin(), nil).Times(2)
				passwordHasher.EXPECT().HashPassword("newpassword").Return("newhash", nil)
				repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
					return admin, nil
				})
			},
			check: func(t *testing.T, admin *domain.Admin) {
				assert.Equal(t, "newhash", admin.PasswordHash)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			admin, err := service.Update(context.Background(), tt.actorID, tt.id, tt.in)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				tt.check(t, admin)
			}
		})
	}
}

func TestDeleteAdmin(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		actorID       int64
		id            int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Successful delete",
			actorID: 1,
			id:      2,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(1)).Return(&domain.Admin{ID: 1, IsSuperAdmin: true}, nil)
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(&domain.Admin{ID: 2}, nil)
				repo.EXPECT().Count(context.Background()).Return(int64(3), nil)
				repo.EXPECT().Delete(context.Background(), int64(2)).Return(nil)
			},
		},
		{
			name:    "Plain admin cannot delete",
			actorID: 2,
			id:      3,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(&domain.Admin{ID: 2}, nil)
			},
			expectedError: domain.ErrSuperAdminRequired,
		},
		{
			name:    "Self delete refused",
			actorID: 1,
			id:      1,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(1)).Return(&domain.Admin{ID: 1, IsSuperAdmin: true}, nil)
			},
			expectedError: domain.ErrSelfDelete,
		},
		{
			name:    "Last admin survives",
			actorID: 1,
			id:      2,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(1)).Return(&domain.Admin{ID: 1, IsSuperAdmin: true}, nil)
				repo.EXPECT().FindByID(context.Background(), int64(2)).Return(&domain.Admin{ID: 2}, nil)
				repo.EXPECT().Count(context.Background()).Return(int64(1), nil)
			},
			expectedError: domain.ErrLastAdmin,
		},
		{
			name:    "Target not found",
			actorID: 1,
			id:      99,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), int64(1)).Return(&domain.Admin{ID: 1, IsSuperAdmin: true}, nil)
				repo.EXPECT().FindByID(context.Background(), int64(99)).Return(nil, nil)
			},
			expectedError: domain.ErrAdminNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), tt.actorID, tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListAdmins(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Super admin sees all accounts", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), int64(1)).Return(&domain.Admin{ID: 1, IsSuperAdmin: true}, nil)
		repo.EXPECT().FindAll(context.Background()).Return([]domain.Admin{
			{ID: 1, Login: "root", Name: "Root", IsSuperAdmin: true},
			{ID: 2, Login: "manager", Name: "Manager"},
		}, nil)

		list, err := service.List(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, []dto.AdminResponseDTO{
			{ID: 1, Login: "root", Name: "Root", IsSuperAdmin: true},
			{ID: 2, Login: "manager", Name: "Manager"},
		}, list)
	})

	t.Run("Regular admin is refused", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), int64(2)).Return(&domain.Admin{ID: 2}, nil)

		_, err := service.List(context.Background(), 2)
		assert.ErrorIs(t, err, domain.ErrSuperAdminRequired)
	})
}

func TestDeleteAdminLastAdminError(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().FindByID(context.Background(), int64(1)).Return(&domain.Admin{ID: 1, IsSuperAdmin: true}, nil)
	repo.EXPECT().FindByID(context.Background(), int64(2)).Return(&domain.Admin{ID: 2}, nil)
	repo.EXPECT().Count(context.Background()).Return(int64(0), errors.New("database error"))

	err := service.Delete(context.Background(), 1, 2)
	assert.EqualError(t, err, "database error")
}
