// internal/core/domain/menu.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Menu item types used by the front of house. Other values are accepted.
const (
	MenuTypeEntree  = "entree"
	MenuTypeSide    = "side"
	MenuTypeDrink   = "drink"
	MenuTypeDessert = "dessert"
)

// RecipeEntry is one inventory item consumed per unit of a menu item.
type RecipeEntry struct {
	InventoryID int64 `json:"inventory_id"`
	Quantity    int   `json:"quantity"`
}

// MenuItem is a sellable item and its recipe.
type MenuItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Type      string          `json:"type"`
	Recipe    []RecipeEntry   `json:"recipe"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewMenuItem is the input for adding a menu item to the catalog.
type NewMenuItem struct {
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Type   string          `json:"type"`
	Recipe []RecipeEntry   `json:"recipe"`
}

// Validate checks fields and recipe shape. Existence of the referenced
// inventory items is checked by storage inside the insert transaction.
func (m *NewMenuItem) Validate() error {
	const op = "menu.validate"
	if strings.TrimSpace(m.Name) == "" {
		return Errorf(KindValidation, op, "name is required")
	}
	if m.Price.IsNegative() {
		return Errorf(KindValidation, op, "price cannot be negative")
	}
	if strings.TrimSpace(m.Type) == "" {
		return Errorf(KindValidation, op, "type is required")
	}

	seen := make(map[int64]struct{}, len(m.Recipe))
	for _, e := range m.Recipe {
		if e.Quantity <= 0 {
			return Errorf(KindValidation, op, "recipe quantity for inventory %d must be positive", e.InventoryID)
		}
		if e.Quantity > MaxQuantity {
			return Errorf(KindValidation, op, "recipe quantity for inventory %d exceeds %d", e.InventoryID, MaxQuantity)
		}
		if _, dup := seen[e.InventoryID]; dup {
			return Errorf(KindValidation, op, "inventory %d listed twice in recipe", e.InventoryID)
		}
		seen[e.InventoryID] = struct{}{}
	}
	return nil
}

// PrepareForStorage normalizes fields before insert
func (m *NewMenuItem) PrepareForStorage() {
	m.Name = strings.TrimSpace(m.Name)
	m.Type = strings.ToLower(strings.TrimSpace(m.Type))
	m.Price = m.Price.Round(2)
}

// InventoryIDs returns the distinct inventory ids referenced by the recipe.
func (m *NewMenuItem) InventoryIDs() []int64 {
	ids := make([]int64, 0, len(m.Recipe))
	for _, e := range m.Recipe {
		ids = append(ids, e.InventoryID)
	}
	return ids
}

// ValidatePrice checks a price update.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return Errorf(KindValidation, "menu.price", "price cannot be negative")
	}
	return nil
}
