package main

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/test/helpers"
	"github.com/ammerola/pos-be/test/mocks"
)

func notFound(name string) error {
	return domain.Errorf(domain.KindNotFound, "lookup", "%q not found", name)
}

func TestSeeder_SeedCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := &Catalog{
		Inventory: []InventoryRow{
			{Name: "Tortilla", Quantity: 10, Unit: "each"},
			{Name: "Beef", Quantity: 5, Unit: "portion"},
		},
		Menu: []MenuRow{
			{Name: "Taco", Price: decimal.RequireFromString("3.50"), Type: "entree",
				Recipe: []RecipeRow{{"Tortilla", 1}, {"Beef", 1}}},
			{Name: "Quesadilla", Price: decimal.RequireFromString("5"), Type: "entree"},
		},
	}

	t.Run("creates_missing_and_skips_existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inventory := mocks.NewMockInventoryService(ctrl)
		menu := mocks.NewMockMenuService(ctrl)

		inventory.EXPECT().GetInventoryItemByName(gomock.Any(), "Tortilla").
			Return(&domain.InventoryItem{ID: 1, Name: "Tortilla"}, nil)
		inventory.EXPECT().GetInventoryItemByName(gomock.Any(), "Beef").Return(nil, notFound("Beef"))
		inventory.EXPECT().CreateInventoryItem(gomock.Any(), domain.InventoryItem{Name: "Beef", Quantity: 5, Unit: "portion"}).
			Return(int64(2), nil)

		menu.EXPECT().GetMenuItemByName(gomock.Any(), "Taco").Return(nil, notFound("Taco"))
		menu.EXPECT().AddMenuItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item domain.NewMenuItem) (int64, error) {
				assert.Equal(t, []domain.RecipeEntry{{InventoryID: 1, Quantity: 1}, {InventoryID: 2, Quantity: 1}}, item.Recipe)
				return 10, nil
			})
		menu.EXPECT().GetMenuItemByName(gomock.Any(), "Quesadilla").Return(&domain.MenuItem{ID: 4}, nil)

		s := NewSeeder(inventory, menu, nil, false, helpers.TestLogger())
		summary, err := s.SeedCatalog(ctx, catalog)
		require.NoError(t, err)

		assert.Equal(t, 1, summary.InventoryCreated)
		assert.Equal(t, 1, summary.InventorySkipped)
		assert.Equal(t, 1, summary.MenuCreated)
		assert.Equal(t, 1, summary.MenuSkipped)
		assert.Empty(t, summary.Failures)
	})

	t.Run("dry_run_writes_nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inventory := mocks.NewMockInventoryService(ctrl)
		menu := mocks.NewMockMenuService(ctrl)

		inventory.EXPECT().GetInventoryItemByName(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, name string) (*domain.InventoryItem, error) {
				return nil, notFound(name)
			}).AnyTimes()
		menu.EXPECT().GetMenuItemByName(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, name string) (*domain.MenuItem, error) {
				return nil, notFound(name)
			}).Times(2)

		s := NewSeeder(inventory, menu, nil, true, helpers.TestLogger())
		summary, err := s.SeedCatalog(ctx, catalog)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.InventoryCreated)
		assert.Equal(t, 2, summary.MenuCreated)
	})

	t.Run("storage_failure_aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inventory := mocks.NewMockInventoryService(ctrl)
		menu := mocks.NewMockMenuService(ctrl)

		inventory.EXPECT().GetInventoryItemByName(gomock.Any(), "Tortilla").
			Return(nil, domain.NewError(domain.KindStorageUnavailable, "inventory.find", "pool closed", errors.New("closed")))

		s := NewSeeder(inventory, menu, nil, false, helpers.TestLogger())
		_, err := s.SeedCatalog(ctx, catalog)
		assert.Equal(t, domain.KindStorageUnavailable, domain.KindOf(err))
	})

	t.Run("rejected_menu_item_is_a_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inventory := mocks.NewMockInventoryService(ctrl)
		menu := mocks.NewMockMenuService(ctrl)

		inventory.EXPECT().GetInventoryItemByName(gomock.Any(), "Tortilla").Return(&domain.InventoryItem{ID: 1}, nil)
		inventory.EXPECT().GetInventoryItemByName(gomock.Any(), "Beef").Return(&domain.InventoryItem{ID: 2}, nil)
		menu.EXPECT().GetMenuItemByName(gomock.Any(), "Taco").Return(nil, notFound("Taco"))
		menu.EXPECT().AddMenuItem(gomock.Any(), gomock.Any()).
			Return(int64(0), domain.Errorf(domain.KindReference, "menu.create", "unknown inventory items [2]"))
		menu.EXPECT().GetMenuItemByName(gomock.Any(), "Quesadilla").Return(&domain.MenuItem{ID: 4}, nil)

		s := NewSeeder(inventory, menu, nil, false, helpers.TestLogger())
		summary, err := s.SeedCatalog(ctx, catalog)
		require.NoError(t, err)
		require.Len(t, summary.Failures, 1)
		assert.Contains(t, summary.Failures[0], "Taco")
	})
}

func TestSeeder_PlaceDemoOrders(t *testing.T) {
	ctx := context.Background()
	items := []domain.MenuItem{
		{ID: 1, Name: "Taco", Price: decimal.RequireFromString("3.50")},
		{ID: 2, Name: "Horchata", Price: decimal.RequireFromString("2.50")},
	}

	t.Run("places_orders_and_counts_refusals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		menu := mocks.NewMockMenuService(ctrl)
		orders := mocks.NewMockOrderService(ctrl)

		menu.EXPECT().ListMenuItems(gomock.Any(), "").Return(items, nil)

		calls := 0
		orders.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.PlaceOrderRequest) (int64, error) {
				calls++
				require.NoError(t, req.Validate())
				assert.NotEmpty(t, req.Lines)
				assert.True(t, req.TotalCost.IsPositive())
				if calls == 3 {
					return 0, &domain.OrderCreationFailed{Cause: domain.Errorf(domain.KindInsufficientStock, "order.place", "not enough Tortilla")}
				}
				return int64(calls), nil
			}).Times(4)

		s := NewSeeder(nil, menu, orders, false, helpers.TestLogger())
		summary := &Summary{}
		require.NoError(t, s.PlaceDemoOrders(ctx, 4, summary))
		assert.Equal(t, 3, summary.OrdersPlaced)
		assert.Len(t, summary.Failures, 1)
	})

	t.Run("empty_menu", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		menu := mocks.NewMockMenuService(ctrl)
		menu.EXPECT().ListMenuItems(gomock.Any(), "").Return(nil, nil)

		s := NewSeeder(nil, menu, nil, false, helpers.TestLogger())
		assert.Error(t, s.PlaceDemoOrders(ctx, 2, &Summary{}))
	})

	t.Run("zero_orders_is_noop", func(t *testing.T) {
		s := NewSeeder(nil, nil, nil, false, helpers.TestLogger())
		assert.NoError(t, s.PlaceDemoOrders(ctx, 0, &Summary{}))
	})
}
