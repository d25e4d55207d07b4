// internal/workers/low_stock_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/pos-be/internal/core/ports"
)

// LowStockProcessor warns about inventory below the restock threshold
type LowStockProcessor struct {
	reports   ports.ReportService
	threshold int
	logger    *slog.Logger
}

// NewLowStockProcessor creates a new low stock processor. A zero threshold
// defers to the report service default.
func NewLowStockProcessor(reports ports.ReportService, threshold int, logger *slog.Logger) *LowStockProcessor {
	return &LowStockProcessor{
		reports:   reports,
		threshold: threshold,
		logger:    logger.With(slog.String("processor", "low_stock")),
	}
}

// ProcessLowStockScan logs one warning per item below the threshold
func (p *LowStockProcessor) ProcessLowStockScan(ctx context.Context, t *asynq.Task) error {
	report, err := p.reports.RestockReport(ctx, p.threshold)
	if err != nil {
		return fmt.Errorf("failed to build restock report: %w", err)
	}

	for _, item := range report.Items {
		p.logger.WarnContext(ctx, "inventory below restock threshold",
			slog.Int64("inventory_id", item.InventoryID),
			slog.String("name", item.Name),
			slog.Int("quantity", item.Quantity),
			slog.Int("threshold", report.MinimumQty))
	}

	p.logger.InfoContext(ctx, "low stock scan completed",
		slog.Int("items_below_threshold", len(report.Items)))
	return nil
}
