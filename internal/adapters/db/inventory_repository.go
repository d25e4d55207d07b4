// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

const inventoryColumns = `id, name, quantity, unit, created_at, updated_at`

// inventoryRepository implements ports.InventoryRepository
type inventoryRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *Database, logger *slog.Logger) ports.InventoryRepository {
	return &inventoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new inventory item and returns its id
func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) (int64, error) {
	const op = "inventory.create"

	query := `
		INSERT INTO inventory (name, quantity, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		item.Name, item.Quantity, item.Unit, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return 0, classifyError(op, fmt.Errorf("failed to insert inventory item: %w", err))
	}

	r.logger.DebugContext(ctx, "inventory item created",
		slog.Int64("inventory_id", item.ID),
		slog.String("name", item.Name))

	return item.ID, nil
}

// FindByID retrieves an inventory item by id
func (r *inventoryRepository) FindByID(ctx context.Context, inventoryID int64) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`

	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, inventoryID))
	if err != nil {
		return nil, classifyError("inventory.find_by_id", err)
	}
	return item, nil
}

// FindByName retrieves an inventory item by its unique name
func (r *inventoryRepository) FindByName(ctx context.Context, name string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE name = $1`

	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, classifyError("inventory.find_by_name", err)
	}
	return item, nil
}

// List returns every inventory item ordered by id
func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory ORDER BY id`)
	if err != nil {
		return nil, classifyError("inventory.list", err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, classifyError("inventory.list", fmt.Errorf("failed to scan inventory row: %w", err))
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("inventory.list", err)
	}
	return items, nil
}

// Restock increments one item in a single statement
func (r *inventoryRepository) Restock(ctx context.Context, inventoryID int64, amount int) (*domain.InventoryItem, error) {
	query := `
		UPDATE inventory SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + inventoryColumns

	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, amount, inventoryID))
	if err != nil {
		return nil, classifyError("inventory.restock", err)
	}

	r.logger.InfoContext(ctx, "inventory restocked",
		slog.Int64("inventory_id", inventoryID),
		slog.Int("amount", amount),
		slog.Int("quantity", item.Quantity))

	return item, nil
}

// RestockBatch applies increments by name in one transaction. An unknown
// name rolls back the whole batch.
func (r *inventoryRepository) RestockBatch(ctx context.Context, restocks []domain.Restock) error {
	const op = "inventory.restock_batch"
	if len(restocks) == 0 {
		return nil
	}

	totals := make(map[string]int, len(restocks))
	for _, rs := range restocks {
		totals[rs.Name] += rs.Amount
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, name := range names {
			batch.Queue(`UPDATE inventory SET quantity = quantity + $1, updated_at = NOW() WHERE name = $2`,
				totals[name], name)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		var missing []string
		for _, name := range names {
			tag, err := br.Exec()
			if err != nil {
				return fmt.Errorf("failed to restock %q: %w", name, err)
			}
			if tag.RowsAffected() == 0 {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return domain.Errorf(domain.KindReference, op, "unknown inventory items: %v", missing)
		}
		return nil
	})
	if err != nil {
		return classifyError(op, err)
	}

	r.logger.InfoContext(ctx, "inventory batch restocked", slog.Int("items", len(names)))
	return nil
}
