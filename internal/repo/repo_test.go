package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.NotNil(t, repo.ApplicationRepo)
	assert.NotNil(t, repo.CheckRepo)
	assert.NotNil(t, repo.CompanyRepo)
	assert.NotNil(t, repo.SellerRepo)
	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.AdminRepo)
	assert.NotNil(t, repo.CommentRepo)
	assert.NotNil(t, repo.CounterRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
