// internal/adapters/db/menu_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// menuRepository implements ports.MenuRepository
type menuRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *Database, logger *slog.Logger) ports.MenuRepository {
	return &menuRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "menu")),
	}
}

// Create inserts the menu item and its recipe in one transaction. Recipe
// references are checked before the insert so a missing inventory item
// leaves nothing behind.
func (r *menuRepository) Create(ctx context.Context, item *domain.NewMenuItem) (int64, error) {
	const op = "menu.create"
	var id int64

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if ids := item.InventoryIDs(); len(ids) > 0 {
			missing, err := missingIDs(ctx, tx, "inventory", ids)
			if err != nil {
				return fmt.Errorf("failed to verify recipe inventory: %w", err)
			}
			if len(missing) > 0 {
				return domain.Errorf(domain.KindReference, op, "inventory items not found: %v", missing)
			}
		}

		err := tx.QueryRow(ctx,
			`INSERT INTO menu_items (name, price, type) VALUES ($1, $2, $3) RETURNING id`,
			item.Name, item.Price, item.Type,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert menu item: %w", err)
		}

		if len(item.Recipe) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, e := range item.Recipe {
			batch.Queue(`INSERT INTO inventory_menu (menu_item_id, inventory_id, quantity) VALUES ($1, $2, $3)`,
				id, e.InventoryID, e.Quantity)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, classifyError(op, err)
	}

	r.logger.InfoContext(ctx, "menu item created",
		slog.Int64("menu_item_id", id),
		slog.String("name", item.Name),
		slog.Int("recipe_entries", len(item.Recipe)))

	return id, nil
}

// Remove deletes a menu item and its recipe. Items referenced by any order
// line are kept and a ConstraintViolation is returned.
func (r *menuRepository) Remove(ctx context.Context, menuItemID int64) error {
	const op = "menu.remove"

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM menu_items WHERE id = $1 FOR UPDATE`, menuItemID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.Errorf(domain.KindNotFound, op, "menu item %d not found", menuItemID)
			}
			return fmt.Errorf("failed to lock menu item: %w", err)
		}

		var orders int64
		err = tx.QueryRow(ctx,
			`SELECT COUNT(DISTINCT order_id) FROM menu_order WHERE menu_item_id = $1`, menuItemID,
		).Scan(&orders)
		if err != nil {
			return fmt.Errorf("failed to count order references: %w", err)
		}
		if orders > 0 {
			return domain.Errorf(domain.KindConstraintViolation, op,
				"menu item %d referenced by %d orders", menuItemID, orders)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM inventory_menu WHERE menu_item_id = $1`, menuItemID); err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, menuItemID); err != nil {
			return fmt.Errorf("failed to delete menu item: %w", err)
		}
		return nil
	})
	if err != nil {
		return classifyError(op, err)
	}

	r.logger.InfoContext(ctx, "menu item removed", slog.Int64("menu_item_id", menuItemID))
	return nil
}

// UpdatePriceByID sets the price of one menu item
func (r *menuRepository) UpdatePriceByID(ctx context.Context, menuItemID int64, price decimal.Decimal) error {
	const op = "menu.update_price_by_id"

	tag, err := r.db.Exec(ctx,
		`UPDATE menu_items SET price = $1, updated_at = NOW() WHERE id = $2`, price, menuItemID)
	if err != nil {
		return classifyError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.KindNotFound, op, "menu item %d not found", menuItemID)
	}
	return nil
}

// UpdatePriceByName sets the price of the menu item with the given name
func (r *menuRepository) UpdatePriceByName(ctx context.Context, name string, price decimal.Decimal) error {
	const op = "menu.update_price_by_name"

	tag, err := r.db.Exec(ctx,
		`UPDATE menu_items SET price = $1, updated_at = NOW() WHERE name = $2`, price, name)
	if err != nil {
		return classifyError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.KindNotFound, op, "menu item %q not found", name)
	}
	return nil
}

// FindByID returns a menu item with its recipe
func (r *menuRepository) FindByID(ctx context.Context, menuItemID int64) (*domain.MenuItem, error) {
	return r.findOne(ctx, "menu.find_by_id", squirrel.Eq{"id": menuItemID})
}

// FindByName returns a menu item with its recipe
func (r *menuRepository) FindByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	return r.findOne(ctx, "menu.find_by_name", squirrel.Eq{"name": name})
}

func (r *menuRepository) findOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.MenuItem, error) {
	items, err := r.selectMenu(ctx, op, menuSelect().Where(where).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.Errorf(domain.KindNotFound, op, "menu item not found")
	}
	return &items[0], nil
}

// List returns menu items, filtered by type when menuType is set
func (r *menuRepository) List(ctx context.Context, menuType string) ([]domain.MenuItem, error) {
	q := menuSelect().OrderBy("id")
	if menuType != "" {
		q = q.Where(squirrel.Eq{"type": menuType})
	}
	return r.selectMenu(ctx, "menu.list", q)
}

// FindByInventoryID returns menu items whose recipe uses the inventory item
func (r *menuRepository) FindByInventoryID(ctx context.Context, inventoryID int64) ([]domain.MenuItem, error) {
	q := menuSelect().
		Where(squirrel.Expr("id IN (SELECT menu_item_id FROM inventory_menu WHERE inventory_id = ?)", inventoryID)).
		OrderBy("id")
	return r.selectMenu(ctx, "menu.find_by_inventory", q)
}

func menuSelect() squirrel.SelectBuilder {
	return psql.Select("id", "name", "price", "type", "created_at", "updated_at").From("menu_items")
}

// selectMenu runs q and attaches recipes with a single extra query.
func (r *menuRepository) selectMenu(ctx context.Context, op string, q squirrel.SelectBuilder) ([]domain.MenuItem, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	items, err := queryMenuItems(ctx, r.db, sql, args...)
	if err != nil {
		return nil, classifyError(op, err)
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	recipes, err := loadRecipes(ctx, r.db, ids)
	if err != nil {
		return nil, classifyError(op, err)
	}
	for i := range items {
		items[i].Recipe = recipes[items[i].ID]
		if items[i].Recipe == nil {
			items[i].Recipe = []domain.RecipeEntry{}
		}
	}
	return items, nil
}

func queryMenuItems(ctx context.Context, q querier, sql string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Type, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// loadRecipes returns the recipe entries of the given menu items keyed by
// menu item id.
func loadRecipes(ctx context.Context, q querier, menuItemIDs []int64) (map[int64][]domain.RecipeEntry, error) {
	rows, err := q.Query(ctx, `
		SELECT menu_item_id, inventory_id, quantity
		FROM inventory_menu
		WHERE menu_item_id = ANY($1)
		ORDER BY menu_item_id, inventory_id`, menuItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	defer rows.Close()

	recipes := make(map[int64][]domain.RecipeEntry, len(menuItemIDs))
	for rows.Next() {
		var menuItemID int64
		var e domain.RecipeEntry
		if err := rows.Scan(&menuItemID, &e.InventoryID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan recipe entry: %w", err)
		}
		recipes[menuItemID] = append(recipes[menuItemID], e)
	}
	return recipes, rows.Err()
}

// missingIDs returns the ids from want that have no row in table.
func missingIDs(ctx context.Context, q querier, table string, want []int64) ([]int64, error) {
	rows, err := q.Query(ctx, `SELECT id FROM `+table+` WHERE id = ANY($1)`, want)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(want))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []int64
	for _, id := range want {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
