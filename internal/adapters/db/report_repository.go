// internal/adapters/db/report_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// reportRepository implements ports.ReportRepository. It never writes.
type reportRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *Database, logger *slog.Logger) ports.ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "report")),
	}
}

var snapshotTx = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// Sales aggregates order lines per menu item for orders placed in [start, end)
func (r *reportRepository) Sales(ctx context.Context, start, end time.Time) ([]domain.SalesLine, error) {
	const op = "report.sales"

	sql, args, err := psql.
		Select("m.id", "m.name", "SUM(mo.quantity) AS units", "SUM(mo.quantity * m.price) AS revenue").
		From("menu_order mo").
		Join("orders o ON o.id = mo.order_id").
		Join("menu_items m ON m.id = mo.menu_item_id").
		Where(squirrel.GtOrEq{"o.placed_at": start}).
		Where(squirrel.Lt{"o.placed_at": end}).
		GroupBy("m.id", "m.name").
		OrderBy("revenue DESC", "m.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sales query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classifyError(op, err)
	}
	defer rows.Close()

	lines := make([]domain.SalesLine, 0)
	for rows.Next() {
		var l domain.SalesLine
		if err := rows.Scan(&l.MenuItemID, &l.Name, &l.UnitsSold, &l.Revenue); err != nil {
			return nil, classifyError(op, fmt.Errorf("failed to scan sales row: %w", err))
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(op, err)
	}
	return lines, nil
}

// BelowQuantity lists inventory items with quantity under minimum
func (r *reportRepository) BelowQuantity(ctx context.Context, minimum int) ([]domain.RestockLine, error) {
	const op = "report.restock"

	rows, err := r.db.Query(ctx, `
		SELECT id, name, quantity, unit
		FROM inventory
		WHERE quantity < $1
		ORDER BY quantity ASC, id ASC`, minimum)
	if err != nil {
		return nil, classifyError(op, err)
	}
	defer rows.Close()

	items := make([]domain.RestockLine, 0)
	for rows.Next() {
		var l domain.RestockLine
		if err := rows.Scan(&l.InventoryID, &l.Name, &l.Quantity, &l.Unit); err != nil {
			return nil, classifyError(op, fmt.Errorf("failed to scan restock row: %w", err))
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(op, err)
	}
	return items, nil
}

// ConsumptionSince returns, for every inventory item, the amount consumed by
// orders placed at or after since. ConsumedRatio is left for the caller.
func (r *reportRepository) ConsumptionSince(ctx context.Context, since time.Time) ([]domain.ExcessLine, error) {
	const op = "report.excess"

	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.name, i.quantity, COALESCE(c.consumed, 0)
		FROM inventory i
		LEFT JOIN (
			SELECT im.inventory_id, SUM(im.quantity::BIGINT * mo.quantity)::BIGINT AS consumed
			FROM menu_order mo
			JOIN orders o ON o.id = mo.order_id
			JOIN inventory_menu im ON im.menu_item_id = mo.menu_item_id
			WHERE o.placed_at >= $1
			GROUP BY im.inventory_id
		) c ON c.inventory_id = i.id
		ORDER BY i.id`, since)
	if err != nil {
		return nil, classifyError(op, err)
	}
	defer rows.Close()

	items := make([]domain.ExcessLine, 0)
	for rows.Next() {
		var l domain.ExcessLine
		if err := rows.Scan(&l.InventoryID, &l.Name, &l.Quantity, &l.Consumed); err != nil {
			return nil, classifyError(op, fmt.Errorf("failed to scan consumption row: %w", err))
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(op, err)
	}
	return items, nil
}

// Register totals orders placed in [start, end) from one snapshot so the
// order count, items sold and per staff totals agree with each other.
func (r *reportRepository) Register(ctx context.Context, start, end time.Time) (*domain.RegisterReport, error) {
	const op = "report.register"

	report := &domain.RegisterReport{
		Day:     start,
		Through: end,
		Total:   decimal.Zero,
		ByStaff: []domain.StaffTotal{},
	}

	err := r.db.TransactionWithOptions(ctx, snapshotTx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*), COALESCE(SUM(total_cost), 0)
			FROM orders
			WHERE placed_at >= $1 AND placed_at < $2`, start, end,
		).Scan(&report.OrderCount, &report.Total)
		if err != nil {
			return fmt.Errorf("failed to total orders: %w", err)
		}

		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(mo.quantity), 0)
			FROM menu_order mo
			JOIN orders o ON o.id = mo.order_id
			WHERE o.placed_at >= $1 AND o.placed_at < $2`, start, end,
		).Scan(&report.ItemsSold)
		if err != nil {
			return fmt.Errorf("failed to total items: %w", err)
		}

		rows, err := tx.Query(ctx, `
			SELECT staff_id, COUNT(*), SUM(total_cost)
			FROM orders
			WHERE placed_at >= $1 AND placed_at < $2
			GROUP BY staff_id
			ORDER BY staff_id`, start, end)
		if err != nil {
			return fmt.Errorf("failed to total staff: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var s domain.StaffTotal
			if err := rows.Scan(&s.StaffID, &s.OrderCount, &s.Total); err != nil {
				return fmt.Errorf("failed to scan staff total: %w", err)
			}
			report.ByStaff = append(report.ByStaff, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, classifyError(op, err)
	}

	return report, nil
}
