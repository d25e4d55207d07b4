// test/benchmarks/helpers.go
package benchmarks

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
)

// syntheticMenu builds menuSize menu items, each using recipeSize of the
// inventoryCount inventory items.
func syntheticMenu(menuSize, recipeSize, inventoryCount int) map[int64][]domain.RecipeEntry {
	rng := rand.New(rand.NewSource(42))
	recipes := make(map[int64][]domain.RecipeEntry, menuSize)
	for m := 1; m <= menuSize; m++ {
		entries := make([]domain.RecipeEntry, 0, recipeSize)
		seen := map[int64]bool{}
		for len(entries) < recipeSize {
			inv := int64(1 + rng.Intn(inventoryCount))
			if seen[inv] {
				continue
			}
			seen[inv] = true
			entries = append(entries, domain.RecipeEntry{InventoryID: inv, Quantity: 1 + rng.Intn(3)})
		}
		recipes[int64(m)] = entries
	}
	return recipes
}

// syntheticOrder builds a request with lineCount lines over menuSize items
func syntheticOrder(lineCount, menuSize int) domain.PlaceOrderRequest {
	rng := rand.New(rand.NewSource(7))
	req := domain.PlaceOrderRequest{
		TotalCost:  decimal.RequireFromString("42.50"),
		CustomerID: 1,
		StaffID:    1,
	}
	for i := 0; i < lineCount; i++ {
		req.Lines = append(req.Lines, domain.OrderLine{
			MenuItemID: int64(1 + rng.Intn(menuSize)),
			Quantity:   1 + rng.Intn(4),
		})
	}
	return req
}
