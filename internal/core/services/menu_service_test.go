// internal/core/services/menu_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/services"
	"github.com/ammerola/pos-be/test/helpers"
	"github.com/ammerola/pos-be/test/mocks"
)

func TestMenuService_AddMenuItem(t *testing.T) {
	tests := []struct {
		name        string
		item        domain.NewMenuItem
		setupMocks  func(*mocks.MockMenuRepository)
		expectedErr error
	}{
		{
			name: "normalizes_and_stores",
			item: domain.NewMenuItem{
				Name:   "  Taco ",
				Price:  decimal.RequireFromString("3.499"),
				Type:   "Entree",
				Recipe: []domain.RecipeEntry{{InventoryID: 1, Quantity: 1}, {InventoryID: 2, Quantity: 2}},
			},
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *domain.NewMenuItem) (int64, error) {
						assert.Equal(t, "Taco", item.Name)
						assert.Equal(t, "entree", item.Type)
						assert.True(t, item.Price.Equal(decimal.RequireFromString("3.50")))
						return 11, nil
					})
			},
		},
		{
			name: "missing_name",
			item: domain.NewMenuItem{Price: decimal.NewFromInt(1), Type: "side"},
			setupMocks: func(m *mocks.MockMenuRepository) {
			},
			expectedErr: domain.ErrValidation,
		},
		{
			name: "duplicate_recipe_inventory",
			item: domain.NewMenuItem{
				Name:   "Burrito",
				Price:  decimal.NewFromInt(5),
				Type:   "entree",
				Recipe: []domain.RecipeEntry{{InventoryID: 1, Quantity: 1}, {InventoryID: 1, Quantity: 2}},
			},
			setupMocks:  func(m *mocks.MockMenuRepository) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name: "unknown_inventory_in_recipe",
			item: domain.NewMenuItem{
				Name:   "Taco",
				Price:  decimal.NewFromInt(3),
				Type:   "entree",
				Recipe: []domain.RecipeEntry{{InventoryID: 7, Quantity: 1}},
			},
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), domain.Errorf(domain.KindReference, "menu.create", "unknown inventory items [7]"))
			},
			expectedErr: domain.ErrReference,
		},
		{
			name: "duplicate_name",
			item: domain.NewMenuItem{Name: "Taco", Price: decimal.NewFromInt(3), Type: "entree"},
			setupMocks: func(m *mocks.MockMenuRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), domain.Errorf(domain.KindConstraintViolation, "menu.create", "menu item Taco already exists"))
			},
			expectedErr: domain.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMenuRepository(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setupMocks(repo)

			service := services.NewMenuService(repo, cache, helpers.TestLogger())
			id, err := service.AddMenuItem(context.Background(), tt.item)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), id)
		})
	}
}

func TestMenuService_RemoveMenuItem(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		expectedErr error
	}{
		{name: "removes_unreferenced_item"},
		{
			name:        "missing_item",
			repoErr:     domain.Errorf(domain.KindNotFound, "menu.remove", "menu item 3 not found"),
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "referenced_by_orders",
			repoErr:     domain.Errorf(domain.KindConstraintViolation, "menu.remove", "menu item referenced by 2 orders"),
			expectedErr: domain.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMenuRepository(ctrl)
			repo.EXPECT().Remove(gomock.Any(), int64(3)).Return(tt.repoErr)

			service := services.NewMenuService(repo, mocks.NewMockCacheRepository(ctrl), helpers.TestLogger())
			err := service.RemoveMenuItem(context.Background(), 3)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMenuService_UpdatePrice(t *testing.T) {
	t.Run("by_id_invalidates_reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockMenuRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)

		repo.EXPECT().UpdatePriceByID(gomock.Any(), int64(1), decimal.RequireFromString("4.25")).Return(nil)
		cache.EXPECT().DeletePattern(gomock.Any(), "report:*").Return(nil)

		service := services.NewMenuService(repo, cache, helpers.TestLogger())
		require.NoError(t, service.UpdateMenuPriceByID(context.Background(), 1, decimal.RequireFromString("4.25")))
	})

	t.Run("by_name_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockMenuRepository(ctrl)

		repo.EXPECT().
			UpdatePriceByName(gomock.Any(), "Nachos", gomock.Any()).
			Return(domain.Errorf(domain.KindNotFound, "menu.price", "menu item Nachos not found"))

		service := services.NewMenuService(repo, mocks.NewMockCacheRepository(ctrl), helpers.TestLogger())
		err := service.UpdateMenuPriceByName(context.Background(), " Nachos ", decimal.NewFromInt(2))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := services.NewMenuService(mocks.NewMockMenuRepository(ctrl), mocks.NewMockCacheRepository(ctrl), helpers.TestLogger())

		err := service.UpdateMenuPriceByID(context.Background(), 1, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, domain.ErrValidation)

		err = service.UpdateMenuPriceByName(context.Background(), "Taco", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("blank_name_rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := services.NewMenuService(mocks.NewMockMenuRepository(ctrl), mocks.NewMockCacheRepository(ctrl), helpers.TestLogger())

		err := service.UpdateMenuPriceByName(context.Background(), "  ", decimal.NewFromInt(1))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestMenuService_ListMenuItems_NormalizesType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), "drink").Return([]domain.MenuItem{{ID: 4, Type: "drink"}}, nil)

	service := services.NewMenuService(repo, mocks.NewMockCacheRepository(ctrl), helpers.TestLogger())
	items, err := service.ListMenuItems(context.Background(), " Drink ")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMenuService_MenuItemsUsingInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	repo.EXPECT().FindByInventoryID(gomock.Any(), int64(2)).Return([]domain.MenuItem{{ID: 1}, {ID: 3}}, nil)

	service := services.NewMenuService(repo, mocks.NewMockCacheRepository(ctrl), helpers.TestLogger())
	items, err := service.MenuItemsUsingInventory(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
