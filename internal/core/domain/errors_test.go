package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/pos-be/internal/core/domain"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := domain.Errorf(domain.KindInsufficientStock, "order.place", "inventory %d short", 7)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	wrapped := fmt.Errorf("failed to place order: %w", err)
	assert.ErrorIs(t, wrapped, domain.ErrInsufficientStock)
	assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(wrapped))
}

func TestError_Message(t *testing.T) {
	cause := errors.New("connection reset")
	err := domain.NewError(domain.KindStorageUnavailable, "order.place", "database unreachable", cause)

	assert.Equal(t, "order.place: database unreachable: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &domain.Error{Kind: domain.KindNotFound}
	assert.Equal(t, "not_found", bare.Error())
}

func TestOrderCreationFailed(t *testing.T) {
	cause := domain.Errorf(domain.KindReference, "order.place", "menu items not found: [9]")
	err := error(&domain.OrderCreationFailed{Cause: cause})

	var ocf *domain.OrderCreationFailed
	require.ErrorAs(t, err, &ocf)
	assert.Equal(t, domain.KindReference, ocf.Kind())
	assert.ErrorIs(t, err, domain.ErrReference)
	assert.Contains(t, err.Error(), "order creation failed")
}

func TestKindOf_Unknown(t *testing.T) {
	assert.Equal(t, domain.KindUnknown, domain.KindOf(errors.New("boom")))
	assert.Equal(t, domain.KindUnknown, domain.KindOf(nil))
}

func TestErrorKind_String(t *testing.T) {
	kinds := map[domain.ErrorKind]string{
		domain.KindValidation:          "validation",
		domain.KindReference:           "reference_error",
		domain.KindInsufficientStock:   "insufficient_stock",
		domain.KindStorageUnavailable:  "storage_unavailable",
		domain.KindConstraintViolation: "constraint_violation",
		domain.KindNotFound:            "not_found",
		domain.KindUnknown:             "unknown",
	}
	for k, want := range kinds {
		assert.Equal(t, want, k.String())
	}
}

func TestNewMenuItem_Validate(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.NewMenuItem
		errorMsg string
	}{
		{
			name: "valid_item",
			item: domain.NewMenuItem{
				Name: "Taco", Price: decimal.RequireFromString("3.50"), Type: "entree",
				Recipe: []domain.RecipeEntry{{InventoryID: 1, Quantity: 1}},
			},
		},
		{
			name: "empty_recipe_allowed",
			item: domain.NewMenuItem{Name: "Water", Price: decimal.Zero, Type: "drink"},
		},
		{
			name:     "missing_name",
			item:     domain.NewMenuItem{Price: decimal.NewFromInt(1), Type: "side"},
			errorMsg: "name is required",
		},
		{
			name:     "negative_price",
			item:     domain.NewMenuItem{Name: "Chips", Price: decimal.NewFromInt(-1), Type: "side"},
			errorMsg: "price cannot be negative",
		},
		{
			name:     "missing_type",
			item:     domain.NewMenuItem{Name: "Chips", Price: decimal.NewFromInt(1)},
			errorMsg: "type is required",
		},
		{
			name: "non_positive_recipe_quantity",
			item: domain.NewMenuItem{
				Name: "Chips", Price: decimal.NewFromInt(1), Type: "side",
				Recipe: []domain.RecipeEntry{{InventoryID: 1, Quantity: 0}},
			},
			errorMsg: "must be positive",
		},
		{
			name: "recipe_quantity_past_column_max",
			item: domain.NewMenuItem{
				Name: "Chips", Price: decimal.NewFromInt(1), Type: "side",
				Recipe: []domain.RecipeEntry{{InventoryID: 1, Quantity: domain.MaxQuantity + 1}},
			},
			errorMsg: "exceeds",
		},
		{
			name: "duplicate_inventory",
			item: domain.NewMenuItem{
				Name: "Chips", Price: decimal.NewFromInt(1), Type: "side",
				Recipe: []domain.RecipeEntry{{InventoryID: 1, Quantity: 1}, {InventoryID: 1, Quantity: 2}},
			},
			errorMsg: "listed twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.errorMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestNewMenuItem_PrepareForStorage(t *testing.T) {
	item := domain.NewMenuItem{Name: " Taco ", Type: " Entree", Price: decimal.RequireFromString("3.499")}

	item.PrepareForStorage()

	assert.Equal(t, "Taco", item.Name)
	assert.Equal(t, "entree", item.Type)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("3.50")))
}
