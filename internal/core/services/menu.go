// internal/core/services/menu.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// MenuService manages the menu catalog
type MenuService struct {
	repo   ports.MenuRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

var _ ports.MenuService = (*MenuService)(nil)

// NewMenuService creates a new menu service
func NewMenuService(repo ports.MenuRepository, cache ports.CacheRepository, logger *slog.Logger) *MenuService {
	return &MenuService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "menu")),
	}
}

// AddMenuItem stores a menu item together with its recipe. The repository
// verifies every recipe inventory id inside the insert transaction.
func (s *MenuService) AddMenuItem(ctx context.Context, item domain.NewMenuItem) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}
	item.PrepareForStorage()

	id, err := s.repo.Create(ctx, &item)
	if err != nil {
		return 0, fmt.Errorf("failed to add menu item: %w", err)
	}

	s.logger.InfoContext(ctx, "added menu item",
		slog.Int64("menu_item_id", id),
		slog.String("name", item.Name),
		slog.Int("recipe_entries", len(item.Recipe)))
	return id, nil
}

// RemoveMenuItem deletes a menu item and its recipe. Items that appear on
// any order cannot be removed.
func (s *MenuService) RemoveMenuItem(ctx context.Context, menuItemID int64) error {
	if err := s.repo.Remove(ctx, menuItemID); err != nil {
		return fmt.Errorf("failed to remove menu item: %w", err)
	}
	s.logger.InfoContext(ctx, "removed menu item", slog.Int64("menu_item_id", menuItemID))
	return nil
}

// UpdateMenuPriceByID sets the price of one menu item
func (s *MenuService) UpdateMenuPriceByID(ctx context.Context, menuItemID int64, price decimal.Decimal) error {
	if err := domain.ValidatePrice(price); err != nil {
		return err
	}
	if err := s.repo.UpdatePriceByID(ctx, menuItemID, price.Round(2)); err != nil {
		return fmt.Errorf("failed to update menu price: %w", err)
	}

	s.logger.InfoContext(ctx, "updated menu price",
		slog.Int64("menu_item_id", menuItemID),
		slog.String("price", price.StringFixed(2)))
	s.invalidateReports(ctx)
	return nil
}

// UpdateMenuPriceByName sets the price of the menu item with the given name
func (s *MenuService) UpdateMenuPriceByName(ctx context.Context, name string, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Errorf(domain.KindValidation, "menu.price", "name is required")
	}
	if err := domain.ValidatePrice(price); err != nil {
		return err
	}
	if err := s.repo.UpdatePriceByName(ctx, name, price.Round(2)); err != nil {
		return fmt.Errorf("failed to update menu price: %w", err)
	}

	s.logger.InfoContext(ctx, "updated menu price",
		slog.String("name", name),
		slog.String("price", price.StringFixed(2)))
	s.invalidateReports(ctx)
	return nil
}

// GetMenuItem returns a menu item with its recipe
func (s *MenuService) GetMenuItem(ctx context.Context, menuItemID int64) (*domain.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

// GetMenuItemByName returns a menu item with its recipe
func (s *MenuService) GetMenuItemByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	item, err := s.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

// ListMenuItems returns all menu items, or those of menuType when set
func (s *MenuService) ListMenuItems(ctx context.Context, menuType string) ([]domain.MenuItem, error) {
	items, err := s.repo.List(ctx, strings.ToLower(strings.TrimSpace(menuType)))
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// MenuItemsUsingInventory lists menu items whose recipe uses inventoryID
func (s *MenuService) MenuItemsUsingInventory(ctx context.Context, inventoryID int64) ([]domain.MenuItem, error) {
	items, err := s.repo.FindByInventoryID(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items for inventory: %w", err)
	}
	return items, nil
}

func (s *MenuService) invalidateReports(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, reportCachePattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate report cache",
			slog.String("error", err.Error()))
	}
}
