package counterrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

const nextQuery = `
        INSERT INTO counters (name, seq)
        VALUES ($1, 1)
        ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
        RETURNING seq
    `

func TestRepository_Next(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	repo := New(mockDB)

	tests := []struct {
		name      string
		counter   string
		mockSetup func()
		expectErr bool
		result    int64
	}{
		{
			name:    "First increment",
			counter: "applicationNumber",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"seq"}).AddRow(int64(1))
				mockDB.ExpectQuery(regexp.QuoteMeta(nextQuery)).
					WithArgs("applicationNumber").
					WillReturnRows(rows)
			},
			result: 1,
		},
		{
			name:    "Subsequent increment",
			counter: "checkNumber",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"seq"}).AddRow(int64(42))
				mockDB.ExpectQuery(regexp.QuoteMeta(nextQuery)).
					WithArgs("checkNumber").
					WillReturnRows(rows)
			},
			result: 42,
		},
		{
			name:    "Database error",
			counter: "applicationNumber",
			mockSetup: func() {
				mockDB.ExpectQuery(regexp.QuoteMeta(nextQuery)).
					WithArgs("applicationNumber").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			seq, err := repo.Next(context.Background(), tt.counter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, seq)
			}
		})
	}
}
