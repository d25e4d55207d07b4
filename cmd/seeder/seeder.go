// cmd/seeder/seeder.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// Summary counts what a seeding run did
type Summary struct {
	InventoryCreated int
	InventorySkipped int
	MenuCreated      int
	MenuSkipped      int
	OrdersPlaced     int
	Failures         []string
}

// Seeder loads a catalog through the services so every row passes the
// same validation as the API. Existing names are left untouched, which
// makes reruns safe.
type Seeder struct {
	inventory ports.InventoryService
	menu      ports.MenuService
	orders    ports.OrderService
	logger    *slog.Logger
	dryRun    bool
	rng       *rand.Rand
}

// NewSeeder creates a seeder
func NewSeeder(inventory ports.InventoryService, menu ports.MenuService, orders ports.OrderService, dryRun bool, logger *slog.Logger) *Seeder {
	return &Seeder{
		inventory: inventory,
		menu:      menu,
		orders:    orders,
		logger:    logger,
		dryRun:    dryRun,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedCatalog creates missing inventory items first, then menu items whose
// recipes are resolved by inventory name.
func (s *Seeder) SeedCatalog(ctx context.Context, catalog *Catalog) (*Summary, error) {
	summary := &Summary{}
	inventoryIDs := make(map[string]int64, len(catalog.Inventory))

	for _, row := range catalog.Inventory {
		existing, err := s.inventory.GetInventoryItemByName(ctx, row.Name)
		switch {
		case err == nil:
			inventoryIDs[row.Name] = existing.ID
			summary.InventorySkipped++
			continue
		case domain.KindOf(err) != domain.KindNotFound:
			return summary, fmt.Errorf("failed to look up inventory %q: %w", row.Name, err)
		}

		if s.dryRun {
			s.logger.Info("would create inventory item", slog.String("name", row.Name), slog.Int("quantity", row.Quantity))
			summary.InventoryCreated++
			continue
		}

		id, err := s.inventory.CreateInventoryItem(ctx, domain.InventoryItem{Name: row.Name, Quantity: row.Quantity, Unit: row.Unit})
		if err != nil {
			summary.Failures = append(summary.Failures, fmt.Sprintf("inventory %q: %v", row.Name, err))
			continue
		}
		inventoryIDs[row.Name] = id
		summary.InventoryCreated++
	}

	for _, row := range catalog.Menu {
		_, err := s.menu.GetMenuItemByName(ctx, row.Name)
		if err == nil {
			summary.MenuSkipped++
			continue
		}
		if domain.KindOf(err) != domain.KindNotFound {
			return summary, fmt.Errorf("failed to look up menu item %q: %w", row.Name, err)
		}

		recipe, err := s.resolveRecipe(ctx, row.Recipe, inventoryIDs)
		if err != nil {
			summary.Failures = append(summary.Failures, fmt.Sprintf("menu %q: %v", row.Name, err))
			continue
		}

		if s.dryRun {
			s.logger.Info("would create menu item", slog.String("name", row.Name), slog.String("price", row.Price.StringFixed(2)))
			summary.MenuCreated++
			continue
		}

		if _, err := s.menu.AddMenuItem(ctx, domain.NewMenuItem{Name: row.Name, Price: row.Price, Type: row.Type, Recipe: recipe}); err != nil {
			summary.Failures = append(summary.Failures, fmt.Sprintf("menu %q: %v", row.Name, err))
			continue
		}
		summary.MenuCreated++
	}

	return summary, nil
}

func (s *Seeder) resolveRecipe(ctx context.Context, rows []RecipeRow, known map[string]int64) ([]domain.RecipeEntry, error) {
	recipe := make([]domain.RecipeEntry, 0, len(rows))
	for _, r := range rows {
		id, ok := known[r.Inventory]
		if !ok {
			item, err := s.inventory.GetInventoryItemByName(ctx, r.Inventory)
			if err != nil {
				if s.dryRun && domain.KindOf(err) == domain.KindNotFound {
					// Created earlier in this dry run
					continue
				}
				return nil, fmt.Errorf("recipe references %q: %w", r.Inventory, err)
			}
			id = item.ID
			known[r.Inventory] = id
		}
		recipe = append(recipe, domain.RecipeEntry{InventoryID: id, Quantity: r.Quantity})
	}
	return recipe, nil
}

// PlaceDemoOrders places n orders of one to three random menu lines, spread
// over the previous week. Orders refused for stock are counted as failures
// and do not stop the run.
func (s *Seeder) PlaceDemoOrders(ctx context.Context, n int, summary *Summary) error {
	if n <= 0 {
		return nil
	}
	items, err := s.menu.ListMenuItems(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list menu: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("menu is empty, nothing to order")
	}

	now := time.Now()
	for i := 0; i < n; i++ {
		req := s.randomOrder(items, now)
		if s.dryRun {
			summary.OrdersPlaced++
			continue
		}
		id, err := s.orders.PlaceOrder(ctx, req)
		if err != nil {
			summary.Failures = append(summary.Failures, fmt.Sprintf("order %d: %v", i+1, err))
			continue
		}
		s.logger.Debug("demo order placed", slog.Int64("order_id", id))
		summary.OrdersPlaced++
	}
	return nil
}

func (s *Seeder) randomOrder(items []domain.MenuItem, now time.Time) domain.PlaceOrderRequest {
	quantities := make(map[int64]int)
	total := decimal.Zero
	lines := 1 + s.rng.Intn(3)
	for j := 0; j < lines; j++ {
		item := items[s.rng.Intn(len(items))]
		quantities[item.ID]++
		total = total.Add(item.Price)
	}

	req := domain.PlaceOrderRequest{
		TotalCost:  total,
		PlacedAt:   now.Add(-time.Duration(s.rng.Int63n(int64(7 * 24 * time.Hour)))),
		CustomerID: 1 + s.rng.Int63n(50),
		StaffID:    1 + s.rng.Int63n(5),
	}
	for id, qty := range quantities {
		req.Lines = append(req.Lines, domain.OrderLine{MenuItemID: id, Quantity: qty})
	}
	return req
}
