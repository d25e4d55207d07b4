// internal/core/services/report_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/core/services"
	"github.com/ammerola/pos-be/test/helpers"
	"github.com/ammerola/pos-be/test/mocks"
)

func newReportService(t *testing.T, cache ports.CacheRepository) (*services.ReportService, *mocks.MockReportRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	svc := services.NewReportService(repo, cache, services.ReportServiceConfig{
		RestockThreshold: 20,
		ExcessRatio:      0.10,
		CacheTTL:         time.Minute,
		Location:         time.UTC,
	}, helpers.TestLogger())
	return svc, repo
}

func TestReportService_SalesReport(t *testing.T) {
	svc, repo := newReportService(t, redis_a.NoopCache{})
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	repo.EXPECT().Sales(gomock.Any(), start, end).Return([]domain.SalesLine{
		{MenuItemID: 1, Name: "Taco", UnitsSold: 10, Revenue: decimal.RequireFromString("35.00")},
		{MenuItemID: 2, Name: "Quesadilla", UnitsSold: 2, Revenue: decimal.RequireFromString("8.50")},
	}, nil)

	report, err := svc.SalesReport(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, report.Lines, 2)
	assert.True(t, report.TotalRevenue.Equal(decimal.RequireFromString("43.50")), report.TotalRevenue.String())
}

func TestReportService_SalesReport_InvalidRange(t *testing.T) {
	svc, _ := newReportService(t, redis_a.NoopCache{})
	now := time.Now()

	_, err := svc.SalesReport(context.Background(), now, now)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_SalesReport_Cached(t *testing.T) {
	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, helpers.TestLogger())
	svc, repo := newReportService(t, cache)

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	repo.EXPECT().Sales(gomock.Any(), start, end).
		Return([]domain.SalesLine{{MenuItemID: 1, Name: "Taco", UnitsSold: 1, Revenue: decimal.NewFromInt(3)}}, nil).
		Times(1)

	first, err := svc.SalesReport(context.Background(), start, end)
	require.NoError(t, err)
	second, err := svc.SalesReport(context.Background(), start, end)
	require.NoError(t, err)

	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
	assert.Equal(t, first.Lines[0].Name, second.Lines[0].Name)

	keys := tr.Server.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "report:sales:")
}

func TestReportService_RestockReport(t *testing.T) {
	tests := []struct {
		name        string
		minimum     int
		expectQuery int
		expectedErr error
	}{
		{name: "explicit_minimum", minimum: 5, expectQuery: 5},
		{name: "zero_uses_threshold", minimum: 0, expectQuery: 20},
		{name: "negative_rejected", minimum: -1, expectedErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newReportService(t, redis_a.NoopCache{})
			if tt.expectedErr == nil {
				repo.EXPECT().BelowQuantity(gomock.Any(), tt.expectQuery).
					Return([]domain.RestockLine{{InventoryID: 3, Name: "Cheese", Quantity: 2}}, nil)
			}

			report, err := svc.RestockReport(context.Background(), tt.minimum)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectQuery, report.MinimumQty)
			assert.Len(t, report.Items, 1)
		})
	}
}

func TestReportService_ExcessReport(t *testing.T) {
	svc, repo := newReportService(t, redis_a.NoopCache{})
	since := time.Now().Add(-48 * time.Hour)

	repo.EXPECT().ConsumptionSince(gomock.Any(), since).Return([]domain.ExcessLine{
		{InventoryID: 1, Name: "Tortilla", Quantity: 50, Consumed: 50},
		{InventoryID: 2, Name: "Saffron", Quantity: 95, Consumed: 5},
		{InventoryID: 3, Name: "Salt", Quantity: 100, Consumed: 0},
		{InventoryID: 4, Name: "Limes", Quantity: 0, Consumed: 0},
		{InventoryID: 5, Name: "Cumin", Quantity: 90, Consumed: 10},
	}, nil)

	report, err := svc.ExcessReport(context.Background(), since)
	require.NoError(t, err)

	names := make([]string, 0, len(report.Items))
	for _, item := range report.Items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Saffron", "Salt"}, names)
	assert.InDelta(t, 0.05, report.Items[0].ConsumedRatio, 1e-9)
	assert.Equal(t, 0.10, report.Ratio)
}

func TestReportService_ExcessReport_FutureSince(t *testing.T) {
	svc, _ := newReportService(t, redis_a.NoopCache{})

	_, err := svc.ExcessReport(context.Background(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_XReport(t *testing.T) {
	svc, repo := newReportService(t, redis_a.NoopCache{})

	repo.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time) (*domain.RegisterReport, error) {
			assert.Equal(t, 0, start.Hour())
			assert.Equal(t, 0, start.Minute())
			assert.Equal(t, time.UTC, start.Location())
			assert.True(t, end.After(start))
			assert.True(t, end.Sub(start) <= 24*time.Hour)
			return &domain.RegisterReport{Day: start, Through: end, OrderCount: 3}, nil
		})

	report, err := svc.XReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RegisterReportX, report.Kind)
	assert.Equal(t, int64(3), report.OrderCount)
}

func TestReportService_ZReport(t *testing.T) {
	svc, repo := newReportService(t, redis_a.NoopCache{})
	day := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Register(gomock.Any(), start, start.AddDate(0, 0, 1)).
		Return(&domain.RegisterReport{Day: start, Through: start.AddDate(0, 0, 1), OrderCount: 12,
			Total: decimal.RequireFromString("120.00")}, nil)

	report, err := svc.ZReport(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, domain.RegisterReportZ, report.Kind)
	assert.Equal(t, int64(12), report.OrderCount)
}

func TestReportService_ZReport_FutureDay(t *testing.T) {
	svc, _ := newReportService(t, redis_a.NoopCache{})

	_, err := svc.ZReport(context.Background(), time.Now().AddDate(0, 0, 2))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_StorageErrorPropagates(t *testing.T) {
	svc, repo := newReportService(t, redis_a.NoopCache{})
	repo.EXPECT().BelowQuantity(gomock.Any(), 20).
		Return(nil, domain.NewError(domain.KindStorageUnavailable, "report.restock", "database unavailable", nil))

	_, err := svc.RestockReport(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
