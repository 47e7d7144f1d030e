package service

import (
	"testing"

	"github.com/checkplatform/checkdesk/internal/config"
	"github.com/checkplatform/checkdesk/internal/pg"
	"github.com/checkplatform/checkdesk/internal/repo"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repos := repo.New(mockPool)
	txManager := pg.NewMockTXManager(ctrl)
	cfg := &config.Config{
		ClientJWTSecret: "client-secret",
		AdminJWTSecret:  "admin-secret",
		UploadDir:       t.TempDir(),
	}

	services, err := New(repos, txManager, cfg)
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ApplicationService)
	assert.NotNil(t, services.CheckService)
	assert.NotNil(t, services.CompanyService)
	assert.NotNil(t, services.SellerService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.CommentService)
}
