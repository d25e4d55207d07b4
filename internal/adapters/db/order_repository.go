// internal/adapters/db/order_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// orderRepository implements ports.OrderRepository
type orderRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *Database, logger *slog.Logger) ports.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "order")),
	}
}

// PlaceOrder creates the order, its lines and the inventory deductions as one
// unit of work and returns the new order id with the deductions applied.
//
// Menu references are resolved before the first write. Deductions are
// aggregated per inventory item and applied in ascending id order, each as a
// guarded decrement that only succeeds when enough stock remains. Any failure
// rolls back the order, its lines and every decrement.
func (r *orderRepository) PlaceOrder(ctx context.Context, req *domain.PlaceOrderRequest) (int64, []domain.Deduction, error) {
	const op = "order.place"

	var (
		orderID    int64
		deductions []domain.Deduction
	)

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		recipes, err := resolveRecipes(ctx, tx, req.MenuItemIDs())
		if err != nil {
			return err
		}

		deductions, err = domain.AggregateDeductions(req.Lines, recipes)
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO orders (total_cost, placed_at, customer_id, staff_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			req.TotalCost, req.PlacedAt, req.CustomerID, req.StaffID,
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		if len(req.Lines) > 0 {
			batch := &pgx.Batch{}
			for _, l := range req.Lines {
				batch.Queue(`INSERT INTO menu_order (order_id, menu_item_id, quantity) VALUES ($1, $2, $3)`,
					orderID, l.MenuItemID, l.Quantity)
			}
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("failed to insert order lines: %w", err)
			}
		}

		for _, d := range deductions {
			if err := guardedDecrement(ctx, tx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, classifyError(op, err)
	}

	r.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", orderID),
		slog.Int("lines", len(req.Lines)),
		slog.Int("deductions", len(deductions)))

	return orderID, deductions, nil
}

// resolveRecipes reads the recipe of every referenced menu item in one query.
// A menu item with no recipe rows still resolves, with an empty recipe.
func resolveRecipes(ctx context.Context, tx pgx.Tx, menuItemIDs []int64) (map[int64][]domain.RecipeEntry, error) {
	const op = "order.resolve_recipes"
	recipes := make(map[int64][]domain.RecipeEntry, len(menuItemIDs))
	if len(menuItemIDs) == 0 {
		return recipes, nil
	}

	rows, err := tx.Query(ctx, `
		SELECT m.id, im.inventory_id, im.quantity
		FROM menu_items m
		LEFT JOIN inventory_menu im ON im.menu_item_id = m.id
		WHERE m.id = ANY($1)`, menuItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			menuItemID  int64
			inventoryID *int64
			quantity    *int
		)
		if err := rows.Scan(&menuItemID, &inventoryID, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		entries := recipes[menuItemID]
		if inventoryID != nil && quantity != nil {
			entries = append(entries, domain.RecipeEntry{InventoryID: *inventoryID, Quantity: *quantity})
		}
		recipes[menuItemID] = entries
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	var missing []int64
	for _, id := range menuItemIDs {
		if _, ok := recipes[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.Errorf(domain.KindReference, op, "menu items not found: %v", missing)
	}
	return recipes, nil
}

// guardedDecrement subtracts d.Amount only when the row keeps a non-negative
// quantity. Zero affected rows means the stock was short.
func guardedDecrement(ctx context.Context, tx pgx.Tx, d domain.Deduction) error {
	const op = "order.decrement"

	tag, err := tx.Exec(ctx, `
		UPDATE inventory
		SET quantity = quantity - $1, updated_at = NOW()
		WHERE id = $2 AND quantity >= $1`,
		d.Amount, d.InventoryID)
	if err != nil {
		return fmt.Errorf("failed to decrement inventory %d: %w", d.InventoryID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	shortage := domain.StockShortage{InventoryID: d.InventoryID, Required: d.Amount}
	err = tx.QueryRow(ctx, `SELECT quantity FROM inventory WHERE id = $1`, d.InventoryID).Scan(&shortage.Available)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Errorf(domain.KindReference, op, "inventory item %d not found", d.InventoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to read inventory %d: %w", d.InventoryID, err)
	}
	return domain.Errorf(domain.KindInsufficientStock, op, "insufficient stock: %s", shortage)
}

// RemoveOrder deletes the order lines and then the order. Inventory is not
// restored.
func (r *orderRepository) RemoveOrder(ctx context.Context, orderID int64) error {
	const op = "order.remove"

	var lines int64
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&locked)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Errorf(domain.KindNotFound, op, "order %d not found", orderID)
		}
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM menu_order WHERE order_id = $1`, orderID)
		if err != nil {
			return fmt.Errorf("failed to delete order lines: %w", err)
		}
		lines = tag.RowsAffected()

		if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return classifyError(op, err)
	}

	r.logger.InfoContext(ctx, "order removed",
		slog.Int64("order_id", orderID),
		slog.Int64("lines", lines))
	return nil
}

// FindByID returns an order with its lines
func (r *orderRepository) FindByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	const op = "order.find_by_id"

	orders, err := r.selectOrders(ctx, orderSelect().Where(squirrel.Eq{"o.id": orderID}))
	if err != nil {
		return nil, classifyError(op, err)
	}
	if len(orders) == 0 {
		return nil, domain.Errorf(domain.KindNotFound, op, "order %d not found", orderID)
	}
	return &orders[0], nil
}

// List returns orders matching filter, newest first
func (r *orderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	q := orderSelect().OrderBy("o.id DESC")

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"o.customer_id": *filter.CustomerID})
	}
	if filter.StaffID != nil {
		q = q.Where(squirrel.Eq{"o.staff_id": *filter.StaffID})
	}
	if filter.MenuItemID != nil {
		q = q.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM menu_order mo WHERE mo.order_id = o.id AND mo.menu_item_id = ?)",
			*filter.MenuItemID))
	}
	if filter.Date != nil {
		start := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, filter.Date.Location())
		q = q.Where(squirrel.GtOrEq{"o.placed_at": start}).
			Where(squirrel.Lt{"o.placed_at": start.AddDate(0, 0, 1)})
	}
	if filter.Since != nil {
		q = q.Where(squirrel.GtOrEq{"o.placed_at": *filter.Since})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	orders, err := r.selectOrders(ctx, q)
	if err != nil {
		return nil, classifyError("order.list", err)
	}
	return orders, nil
}

// MenuItemsForOrder returns the menu items on an order
func (r *orderRepository) MenuItemsForOrder(ctx context.Context, orderID int64) ([]domain.MenuItem, error) {
	const op = "order.menu_items"

	exists, err := r.exists(ctx, orderID)
	if err != nil {
		return nil, classifyError(op, err)
	}
	if !exists {
		return nil, domain.Errorf(domain.KindNotFound, op, "order %d not found", orderID)
	}

	items, err := queryMenuItems(ctx, r.db, `
		SELECT id, name, price, type, created_at, updated_at
		FROM menu_items
		WHERE id IN (SELECT menu_item_id FROM menu_order WHERE order_id = $1)
		ORDER BY id`, orderID)
	if err != nil {
		return nil, classifyError(op, err)
	}
	return items, nil
}

func (r *orderRepository) exists(ctx context.Context, orderID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	return exists, err
}

func orderSelect() squirrel.SelectBuilder {
	return psql.Select("o.id", "o.total_cost", "o.placed_at", "o.customer_id", "o.staff_id", "o.created_at").
		From("orders o")
}

// selectOrders runs q and attaches the lines of every returned order with a
// single extra query.
func (r *orderRepository) selectOrders(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Order, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.TotalCost, &o.PlacedAt, &o.CustomerID, &o.StaffID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.Lines = []domain.OrderLine{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	lineRows, err := r.db.Query(ctx, `
		SELECT order_id, menu_item_id, quantity
		FROM menu_order
		WHERE order_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID int64
		var l domain.OrderLine
		if err := lineRows.Scan(&orderID, &l.MenuItemID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		i := index[orderID]
		orders[i].Lines = append(orders[i].Lines, l)
	}
	return orders, lineRows.Err()
}
