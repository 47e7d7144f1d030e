package applicationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkplatform/checkdesk/internal/domain"
)

func newMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var refRowColumns = []string{
	"id", "application_number", "user_id", "company_id", "seller_id",
	"status", "commission", "total_amount", "checks_count", "created_at",
	"c_id", "c_name", "c_inn", "c_created_at",
	"s_id", "s_name", "s_inn", "s_tg_link", "s_type", "s_created_at",
	"u_id", "u_name", "u_key", "u_can_save", "u_is_blocked", "u_created_at",
}

func addRefRow(rows *pgxmock.Rows, id, number int64, status []string, total float64) *pgxmock.Rows {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id, number, int64(7), int64(2), int64(4),
		status, 10.0, total, 2, created,
		int64(2), "Romashka", "7707083893", created,
		int64(4), "WhiteSupply", "7830002293", "https://t.me/ws", "white", created,
		int64(7), "ivan", "a1b2c3", true, false, created,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mockDB := newMock(t)
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful insert", func(t *testing.T) {
		app := &domain.Application{
			ApplicationNumber: 12,
			UserID:            7,
			CompanyID:         2,
			SellerID:          4,
			Status:            []string{"created"},
			Commission:        10,
		}
		mockDB.ExpectQuery(regexp.QuoteMeta(`INSERT INTO applications`)).
			WithArgs(int64(12), int64(7), int64(2), int64(4), []string{"created"}, 10.0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), created))

		got, err := repo.Create(context.Background(), app)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, created, got.CreatedAt)
	})

	t.Run("Insert failure", func(t *testing.T) {
		mockDB.ExpectQuery(regexp.QuoteMeta(`INSERT INTO applications`)).
			WillReturnError(errors.New("insert failed"))

		_, err := repo.Create(context.Background(), &domain.Application{})
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mockDB := newMock(t)

	t.Run("Found with references", func(t *testing.T) {
		rows := addRefRow(pgxmock.NewRows(refRowColumns), 3, 12, []string{"created", "docs_missing"}, 3505)
		mockDB.ExpectQuery(`FROM applications a`).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		app, err := repo.FindByID(context.Background(), 3)
		assert.NoError(t, err)
		require.NotNil(t, app)
		assert.Equal(t, int64(12), app.ApplicationNumber)
		assert.Equal(t, []string{"created", "docs_missing"}, app.Status)
		assert.Equal(t, "Romashka", app.Company.Name)
		assert.Equal(t, "ivan", app.User.Name)
	})

	t.Run("Missing returns nil", func(t *testing.T) {
		mockDB.ExpectQuery(`FROM applications a`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows(refRowColumns))

		app, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, app)
	})
}

func TestRepository_FindFiltered(t *testing.T) {
	repo, mockDB := newMock(t)

	t.Run("Status overlap filter", func(t *testing.T) {
		rows := addRefRow(pgxmock.NewRows(refRowColumns), 3, 12, []string{"created"}, 3505)
		mockDB.ExpectQuery(`FROM applications a`).
			WithArgs([]string{"created", "paid_to_seller"}).
			WillReturnRows(rows)

		apps, err := repo.FindFiltered(context.Background(), domain.ApplicationQuery{
			Statuses: []string{"created", "paid_to_seller"},
		})
		assert.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, int64(3), apps[0].ID)
	})

	t.Run("Active only filter carries no args", func(t *testing.T) {
		rows := addRefRow(pgxmock.NewRows(refRowColumns), 3, 12, []string{"created"}, 3505)
		mockDB.ExpectQuery(`NOT \(a.status @> ARRAY\['us_paid'\]\)`).
			WillReturnRows(rows)

		apps, err := repo.FindFiltered(context.Background(), domain.ApplicationQuery{ActiveOnly: true})
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("Query failure", func(t *testing.T) {
		mockDB.ExpectQuery(`FROM applications a`).
			WillReturnError(errors.New("query failed"))

		_, err := repo.FindFiltered(context.Background(), domain.ApplicationQuery{})
		assert.Error(t, err)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mockDB := newMock(t)

	mockDB.ExpectExec(regexp.QuoteMeta(`UPDATE applications`)).
		WithArgs([]string{"approved", "paid_to_seller"}, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), 3, []string{"approved", "paid_to_seller"})
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mockDB := newMock(t)

	t.Run("Partial update", func(t *testing.T) {
		sellerID := int64(5)
		commission := 12.5
		mockDB.ExpectExec(regexp.QuoteMeta(`UPDATE applications SET seller_id = $1, commission = $2 WHERE id = $3`)).
			WithArgs(int64(5), 12.5, int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), 3, nil, &sellerID, &commission)
		assert.NoError(t, err)
	})

	t.Run("Nothing to change is a no-op", func(t *testing.T) {
		err := repo.Update(context.Background(), 3, nil, nil, nil)
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_UpdateTotals(t *testing.T) {
	repo, mockDB := newMock(t)

	mockDB.ExpectExec(regexp.QuoteMeta(`UPDATE applications`)).
		WithArgs(5905.0, 3, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateTotals(context.Background(), 3, 5905, 3)
	assert.NoError(t, err)
}

func TestRepository_CountActive(t *testing.T) {
	repo, mockDB := newMock(t)

	mockDB.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mockDB := newMock(t)

	rows := addRefRow(pgxmock.NewRows(refRowColumns), 3, 12, []string{"created"}, 3505)
	mockDB.ExpectQuery(`FROM applications a`).
		WithArgs([]int64{7}).
		WillReturnRows(rows)

	apps, err := repo.FindByUserID(context.Background(), 7)
	assert.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, int64(7), apps[0].Application.UserID)
}
