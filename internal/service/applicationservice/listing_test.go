package applicationservice

import (
	"context"
	"testing"
	"time"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var listingCreatedAt = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func listingApp(id, number int64, status ...string) domain.ApplicationWithRefs {
	if len(status) == 0 {
		status = []string{domain.StatusCreated}
	}
	return domain.ApplicationWithRefs{
		Application: domain.Application{
			ID:                id,
			ApplicationNumber: number,
			UserID:            7,
			CompanyID:         2,
			SellerID:          4,
			Status:            status,
			Commission:        10,
			CreatedAt:         listingCreatedAt,
		},
		Company: domain.Company{ID: 2, Name: "Romashka", INN: "7707083893"},
		Seller:  domain.Seller{ID: 4, Name: "WhiteSupply", INN: "7830002293", Type: "white"},
		User:    domain.User{ID: 7, Name: "ivan"},
	}
}

func listingCheck(appID int64, qty, price float64, date time.Time) domain.Check {
	return domain.Check{ApplicationID: appID, Quantity: qty, PricePerUnit: price, Date: date}
}

func TestList(t *testing.T) {
	checkDate := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Derives totals and drops applications without checks", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).
			Return([]domain.ApplicationWithRefs{listingApp(1, 11), listingApp(2, 12), listingApp(3, 13)}, nil)
		m.checkRepo.EXPECT().FindByApplicationIDs(gomock.Any(), []int64{1, 2, 3}).
			Return([]domain.Check{
				listingCheck(1, 2, 100, checkDate),
				listingCheck(1, 1, 50, checkDate.AddDate(0, 0, 5)),
				listingCheck(3, 4, 250, checkDate),
			}, nil)

		out, err := service.List(context.Background(), dto.ApplicationFilterDTO{})
		require.NoError(t, err)

		// application 2 has no checks and never reaches the page
		require.Len(t, out.Applications, 2)
		assert.Equal(t, 2, out.Total)
		assert.Equal(t, int64(1), out.Applications[0].ID)
		assert.Equal(t, "250.00", out.Applications[0].TotalAmount)
		assert.Equal(t, 2, out.Applications[0].ChecksCount)
		assert.Equal(t, "20/01/2026", out.Applications[0].CheckDateFrom)
		assert.Equal(t, "25/01/2026", out.Applications[0].CheckDateTo)
		assert.Equal(t, "01/02/2026", out.Applications[0].CreatedDate)
		assert.Equal(t, "1000.00", out.Applications[1].TotalAmount)
	})

	t.Run("Sum range applies before pagination and drives the total", func(t *testing.T) {
		service, m := NewMock(t)
		apps := []domain.ApplicationWithRefs{
			listingApp(1, 11), listingApp(2, 12), listingApp(3, 13), listingApp(4, 14), listingApp(5, 15),
		}
		// totals 100, 200, 300, 400, 500
		checks := make([]domain.Check, 0, 5)
		for i := int64(1); i <= 5; i++ {
			checks = append(checks, listingCheck(i, 1, float64(i)*100, checkDate))
		}
		m.repo.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).Return(apps, nil)
		m.checkRepo.EXPECT().FindByApplicationIDs(gomock.Any(), gomock.Any()).Return(checks, nil)

		sumFrom := 150.0
		out, err := service.List(context.Background(), dto.ApplicationFilterDTO{
			SumFrom: &sumFrom,
			Page:    2,
			Limit:   2,
		})
		require.NoError(t, err)

		assert.Equal(t, 4, out.Total)
		assert.Equal(t, 2, out.Pages)
		assert.Equal(t, 2, out.Page)
		require.Len(t, out.Applications, 2)
		assert.Equal(t, "400.00", out.Applications[0].TotalAmount)
		assert.Equal(t, "500.00", out.Applications[1].TotalAmount)
	})

	t.Run("Status filter is pushed to the store", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, q domain.ApplicationQuery) ([]domain.ApplicationWithRefs, error) {
				assert.Equal(t, []string{domain.StatusIssued}, q.Statuses)
				return nil, nil
			})

		out, err := service.List(context.Background(), dto.ApplicationFilterDTO{Statuses: []string{domain.StatusIssued}})
		require.NoError(t, err)
		assert.Equal(t, 0, out.Total)
		assert.Empty(t, out.Applications)
	})

	t.Run("Unknown status tag", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.List(context.Background(), dto.ApplicationFilterDTO{Statuses: []string{"shipped"}})
		assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	})

	t.Run("Search resolves companies, sellers and users", func(t *testing.T) {
		service, m := NewMock(t)
		m.companyRepo.EXPECT().FindMatching(gomock.Any(), "roma").Return([]int64{2}, nil)
		m.sellerRepo.EXPECT().FindMatching(gomock.Any(), "roma").Return(nil, nil)
		m.userRepo.EXPECT().FindMatching(gomock.Any(), "roma").Return(nil, nil)
		m.repo.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, q domain.ApplicationQuery) ([]domain.ApplicationWithRefs, error) {
				assert.True(t, q.SearchResolved)
				assert.Equal(t, []int64{2}, q.SearchCompanyIDs)
				return nil, nil
			})

		_, err := service.List(context.Background(), dto.ApplicationFilterDTO{Search: "roma"})
		assert.NoError(t, err)
	})
}

func TestListForCompany(t *testing.T) {
	service, m := NewMock(t)

	early := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	paid := listingApp(2, 12, domain.StatusUsPaid)
	otherSeller := listingApp(3, 13)
	otherSeller.Application.SellerID = 9
	outOfRange := listingApp(4, 14)

	m.repo.EXPECT().FindFiltered(gomock.Any(), domain.ApplicationQuery{CompanyIDs: []int64{2}}).
		Return([]domain.ApplicationWithRefs{listingApp(1, 11), paid, otherSeller, outOfRange}, nil)
	m.checkRepo.EXPECT().FindByApplicationIDs(gomock.Any(), []int64{1, 2, 3, 4}).
		Return([]domain.Check{
			listingCheck(1, 1, 100, late),
			listingCheck(2, 1, 200, late),
			listingCheck(3, 1, 300, late),
			listingCheck(4, 1, 400, early),
		}, nil)

	// status, seller and check-date filters are applied in memory
	out, err := service.ListForCompany(context.Background(), 2, dto.ApplicationFilterDTO{
		Statuses:  []string{domain.StatusCreated},
		SellerIDs: []int64{4},
		DateFrom:  "2026-01-10",
	})
	require.NoError(t, err)

	require.Len(t, out.Applications, 1)
	assert.Equal(t, int64(1), out.Applications[0].ID)
	assert.Equal(t, 1, out.Total)
}

func TestExport(t *testing.T) {
	service, m := NewMock(t)

	app := listingApp(1, 11, domain.StatusCreated, domain.StatusIssued)
	m.repo.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).Return([]domain.ApplicationWithRefs{app}, nil)
	m.checkRepo.EXPECT().FindByApplicationIDs(gomock.Any(), []int64{1}).
		Return([]domain.Check{listingCheck(1, 2, 100, listingCreatedAt)}, nil)

	rows, err := service.Export(context.Background(), dto.ApplicationFilterDTO{})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(11), rows[0].ApplicationNumber)
	assert.Equal(t, "200.00", rows[0].TotalAmount)
	assert.Equal(t,
		domain.StatusLabels[domain.StatusCreated]+", "+domain.StatusLabels[domain.StatusIssued],
		rows[0].Status)
}

func TestGetDetails(t *testing.T) {
	t.Run("Full view with derived amounts", func(t *testing.T) {
		service, m := NewMock(t)

		app := listingApp(1, 11)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&app, nil)
		m.checkRepo.EXPECT().FindByApplicationID(gomock.Any(), int64(1)).Return([]domain.Check{
			listingCheck(1, 2, 100, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)),
			listingCheck(1, 1, 50, time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)),
		}, nil)
		m.repo.EXPECT().FindHistory(gomock.Any(), int64(1)).Return([]domain.HistoryEntry{
			{ID: 1, ApplicationID: 1, Kind: domain.HistoryKindStatus, Message: "Status added", AdminName: "root"},
		}, nil)

		out, err := service.GetDetails(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, "250.00", out.TotalAmount)
		assert.Equal(t, "50.00", out.VAT)
		assert.Equal(t, "10", out.Commission.Percentage)
		assert.Equal(t, "25.00", out.Commission.Amount)
		assert.Equal(t, 2, out.ChecksCount)
		assert.Equal(t, "20/01/2026", out.CheckDateFrom)
		assert.Equal(t, "25/01/2026", out.CheckDateTo)
		assert.Equal(t, "01/02/2026", out.CreatedDate)
		assert.Equal(t, "200.00", out.Checks[0].LineTotal)
		require.Len(t, out.History, 1)
		assert.Equal(t, "root", out.History[0].AdminName)
	})

	t.Run("Zero checks is still addressable", func(t *testing.T) {
		service, m := NewMock(t)

		app := listingApp(1, 11)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&app, nil)
		m.checkRepo.EXPECT().FindByApplicationID(gomock.Any(), int64(1)).Return(nil, nil)
		m.repo.EXPECT().FindHistory(gomock.Any(), int64(1)).Return(nil, nil)

		out, err := service.GetDetails(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, "0.00", out.TotalAmount)
		assert.Equal(t, "0.00", out.VAT)
		assert.Empty(t, out.CheckDateFrom)
	})

	t.Run("Missing application", func(t *testing.T) {
		service, m := NewMock(t)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := service.GetDetails(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}
