package workers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/workers"
	"github.com/ammerola/pos-be/test/helpers"
	"github.com/ammerola/pos-be/test/mocks"
)

func TestCleanupProcessor_CleanupExports(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	fs := mocks.NewMockFileStorage(ctrl)

	fs.EXPECT().List(gomock.Any(), workers.ExportsPrefix).Return([]ports.StoredFile{
		{Key: "exports/old.xlsx", LastModified: now.AddDate(0, 0, -8)},
		{Key: "exports/new.xlsx", LastModified: now.AddDate(0, 0, -1)},
		{Key: "exports/locked.xlsx", LastModified: now.AddDate(0, 0, -30)},
	}, nil)
	fs.EXPECT().List(gomock.Any(), workers.DeliveriesPrefix).Return([]ports.StoredFile{
		{Key: "deliveries/old.pdf", LastModified: now.AddDate(0, 0, -9)},
	}, nil)

	fs.EXPECT().Delete(gomock.Any(), "exports/old.xlsx").Return(nil)
	fs.EXPECT().Delete(gomock.Any(), "exports/locked.xlsx").Return(errors.New("access denied"))
	fs.EXPECT().Delete(gomock.Any(), "deliveries/old.pdf").Return(nil)

	p := workers.NewCleanupProcessor(fs, 7*24*time.Hour, helpers.TestLogger())
	workers.SetClock(p, func() time.Time { return now })

	require.NoError(t, p.CleanupExports(context.Background(), asynq.NewTask(workers.TypeCleanupExports, nil)))
}

func TestCleanupProcessor_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := mocks.NewMockFileStorage(ctrl)
	fs.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("bucket unreachable"))

	p := workers.NewCleanupProcessor(fs, 0, helpers.TestLogger())
	err := p.CleanupExports(context.Background(), asynq.NewTask(workers.TypeCleanupExports, nil))
	assert.ErrorContains(t, err, "bucket unreachable")
}

func TestLowStockProcessor_ProcessLowStockScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportService(ctrl)
	reports.EXPECT().RestockReport(gomock.Any(), 25).Return(&domain.RestockReport{
		MinimumQty: 25,
		Items:      []domain.RestockLine{{InventoryID: 1, Name: "Cheese", Quantity: 3}},
	}, nil)

	p := workers.NewLowStockProcessor(reports, 25, helpers.TestLogger())
	require.NoError(t, p.ProcessLowStockScan(context.Background(), asynq.NewTask(workers.TypeLowStockScan, nil)))
}

func TestLowStockProcessor_ReportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportService(ctrl)
	reports.EXPECT().RestockReport(gomock.Any(), 0).
		Return(nil, domain.NewError(domain.KindStorageUnavailable, "report.restock", "database unavailable", nil))

	p := workers.NewLowStockProcessor(reports, 0, helpers.TestLogger())
	err := p.ProcessLowStockScan(context.Background(), asynq.NewTask(workers.TypeLowStockScan, nil))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
