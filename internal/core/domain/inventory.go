// internal/core/domain/inventory.go
package domain

import (
	"math"
	"strings"
	"time"
)

// MaxQuantity bounds every stored quantity. The columns are INTEGER.
const MaxQuantity = math.MaxInt32

// InventoryItem is one ingredient or supply tracked by the ledger.
type InventoryItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the item before it is stored
func (i *InventoryItem) Validate() error {
	const op = "inventory.validate"
	if strings.TrimSpace(i.Name) == "" {
		return Errorf(KindValidation, op, "name is required")
	}
	if i.Quantity < 0 {
		return Errorf(KindValidation, op, "quantity cannot be negative")
	}
	if i.Quantity > MaxQuantity {
		return Errorf(KindValidation, op, "quantity exceeds %d", MaxQuantity)
	}
	if strings.TrimSpace(i.Unit) == "" {
		return Errorf(KindValidation, op, "unit is required")
	}
	return nil
}

// PrepareForStorage normalizes fields before insert
func (i *InventoryItem) PrepareForStorage() {
	i.Name = strings.TrimSpace(i.Name)
	i.Unit = strings.ToLower(strings.TrimSpace(i.Unit))
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
}

// Restock is a stock increment addressed by inventory item name.
type Restock struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// Validate checks the restock amount
func (r Restock) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return Errorf(KindValidation, "restock.validate", "name is required")
	}
	if r.Amount <= 0 {
		return Errorf(KindValidation, "restock.validate", "amount for %q must be positive", r.Name)
	}
	if r.Amount > MaxQuantity {
		return Errorf(KindValidation, "restock.validate", "amount for %q exceeds %d", r.Name, MaxQuantity)
	}
	return nil
}
