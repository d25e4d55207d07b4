package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/pos-be/internal/core/domain"
)

func TestAggregateDeductions(t *testing.T) {
	const (
		tortilla = int64(1)
		beef     = int64(2)
		cheese   = int64(3)
		cup      = int64(4)
	)
	const (
		taco    = int64(10)
		burrito = int64(11)
		soda    = int64(12)
		water   = int64(13)
	)

	recipes := map[int64][]domain.RecipeEntry{
		taco:    {{InventoryID: tortilla, Quantity: 1}, {InventoryID: beef, Quantity: 2}, {InventoryID: cheese, Quantity: 1}},
		burrito: {{InventoryID: tortilla, Quantity: 2}, {InventoryID: beef, Quantity: 3}},
		soda:    {{InventoryID: cup, Quantity: 1}},
		water:   nil,
	}

	tests := []struct {
		name  string
		lines []domain.OrderLine
		want  []domain.Deduction
	}{
		{
			name:  "empty_order",
			lines: nil,
			want:  []domain.Deduction{},
		},
		{
			name:  "single_line_multiplies_recipe",
			lines: []domain.OrderLine{{MenuItemID: taco, Quantity: 3}},
			want: []domain.Deduction{
				{InventoryID: tortilla, Amount: 3},
				{InventoryID: beef, Amount: 6},
				{InventoryID: cheese, Amount: 3},
			},
		},
		{
			name: "shared_inventory_is_summed_once",
			lines: []domain.OrderLine{
				{MenuItemID: taco, Quantity: 2},
				{MenuItemID: burrito, Quantity: 1},
				{MenuItemID: soda, Quantity: 2},
			},
			want: []domain.Deduction{
				{InventoryID: tortilla, Amount: 4},
				{InventoryID: beef, Amount: 7},
				{InventoryID: cheese, Amount: 2},
				{InventoryID: cup, Amount: 2},
			},
		},
		{
			name: "repeated_menu_item_lines_accumulate",
			lines: []domain.OrderLine{
				{MenuItemID: soda, Quantity: 1},
				{MenuItemID: soda, Quantity: 4},
			},
			want: []domain.Deduction{{InventoryID: cup, Amount: 5}},
		},
		{
			name:  "menu_item_without_recipe",
			lines: []domain.OrderLine{{MenuItemID: water, Quantity: 2}},
			want:  []domain.Deduction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.AggregateDeductions(tt.lines, recipes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregateDeductions_SumMatchesLines(t *testing.T) {
	recipes := map[int64][]domain.RecipeEntry{
		1: {{InventoryID: 100, Quantity: 2}},
	}
	lines := []domain.OrderLine{{MenuItemID: 1, Quantity: 3}}

	got, err := domain.AggregateDeductions(lines, recipes)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 6, got[0].Amount)
}

func TestAggregateDeductions_BeyondStockableQuantity(t *testing.T) {
	const big = domain.MaxQuantity

	tests := []struct {
		name    string
		recipes map[int64][]domain.RecipeEntry
		lines   []domain.OrderLine
		want    []domain.Deduction
		wantErr bool
	}{
		{
			name:    "product_past_column_range",
			recipes: map[int64][]domain.RecipeEntry{1: {{InventoryID: 7, Quantity: 100000}}},
			lines:   []domain.OrderLine{{MenuItemID: 1, Quantity: 100000}},
			wantErr: true,
		},
		{
			name:    "products_that_would_wrap_int64",
			recipes: map[int64][]domain.RecipeEntry{1: {{InventoryID: 7, Quantity: big}}},
			lines: []domain.OrderLine{
				{MenuItemID: 1, Quantity: big},
				{MenuItemID: 1, Quantity: big},
				{MenuItemID: 1, Quantity: big},
			},
			wantErr: true,
		},
		{
			name:    "sum_of_lines_past_column_range",
			recipes: map[int64][]domain.RecipeEntry{1: {{InventoryID: 7, Quantity: 1}}},
			lines: []domain.OrderLine{
				{MenuItemID: 1, Quantity: big},
				{MenuItemID: 1, Quantity: 1},
			},
			wantErr: true,
		},
		{
			name:    "line_quantity_out_of_range",
			recipes: map[int64][]domain.RecipeEntry{1: {{InventoryID: 7, Quantity: 1}}},
			lines:   []domain.OrderLine{{MenuItemID: 1, Quantity: big + 1}},
			wantErr: true,
		},
		{
			name:    "exactly_max_is_allowed",
			recipes: map[int64][]domain.RecipeEntry{1: {{InventoryID: 7, Quantity: 1}}},
			lines:   []domain.OrderLine{{MenuItemID: 1, Quantity: big}},
			want:    []domain.Deduction{{InventoryID: 7, Amount: big}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.AggregateDeductions(tt.lines, tt.recipes)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaceOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       domain.PlaceOrderRequest
		wantError bool
	}{
		{
			name:      "empty_lines_allowed",
			req:       domain.PlaceOrderRequest{TotalCost: decimal.Zero},
			wantError: false,
		},
		{
			name: "valid_lines",
			req: domain.PlaceOrderRequest{
				TotalCost: decimal.RequireFromString("10.50"),
				Lines:     []domain.OrderLine{{MenuItemID: 1, Quantity: 2}},
			},
			wantError: false,
		},
		{
			name:      "negative_total",
			req:       domain.PlaceOrderRequest{TotalCost: decimal.NewFromInt(-1)},
			wantError: true,
		},
		{
			name: "zero_quantity_line",
			req: domain.PlaceOrderRequest{
				Lines: []domain.OrderLine{{MenuItemID: 1, Quantity: 0}},
			},
			wantError: true,
		},
		{
			name: "quantity_at_column_max",
			req: domain.PlaceOrderRequest{
				Lines: []domain.OrderLine{{MenuItemID: 1, Quantity: domain.MaxQuantity}},
			},
			wantError: false,
		},
		{
			name: "quantity_past_column_max",
			req: domain.PlaceOrderRequest{
				Lines: []domain.OrderLine{{MenuItemID: 1, Quantity: domain.MaxQuantity + 1}},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlaceOrderRequest_MenuItemIDs(t *testing.T) {
	req := domain.PlaceOrderRequest{
		Lines: []domain.OrderLine{
			{MenuItemID: 5, Quantity: 1},
			{MenuItemID: 3, Quantity: 1},
			{MenuItemID: 5, Quantity: 2},
		},
	}

	assert.Equal(t, []int64{5, 3}, req.MenuItemIDs())
}

func BenchmarkAggregateDeductions(b *testing.B) {
	recipes := make(map[int64][]domain.RecipeEntry)
	lines := make([]domain.OrderLine, 0, 20)
	for i := int64(1); i <= 20; i++ {
		recipes[i] = []domain.RecipeEntry{
			{InventoryID: i % 7, Quantity: 1},
			{InventoryID: i % 5, Quantity: 2},
		}
		lines = append(lines, domain.OrderLine{MenuItemID: i, Quantity: int(i%3) + 1})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = domain.AggregateDeductions(lines, recipes)
	}
}
