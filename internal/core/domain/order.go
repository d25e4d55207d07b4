// internal/core/domain/order.go
package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine links an order to one menu item with an ordered quantity.
type OrderLine struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// Order is a placed order and its lines.
type Order struct {
	ID         int64           `json:"id"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	PlacedAt   time.Time       `json:"placed_at"`
	CustomerID int64           `json:"customer_id"`
	StaffID    int64           `json:"staff_id"`
	Lines      []OrderLine     `json:"lines"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PlaceOrderRequest is the input of order placement.
type PlaceOrderRequest struct {
	TotalCost  decimal.Decimal
	PlacedAt   time.Time
	CustomerID int64
	StaffID    int64
	Lines      []OrderLine
}

// Validate checks the request shape. An empty line list is allowed.
func (r *PlaceOrderRequest) Validate() error {
	const op = "order.validate"
	if r.TotalCost.IsNegative() {
		return Errorf(KindValidation, op, "total cost cannot be negative")
	}
	for _, l := range r.Lines {
		if l.Quantity <= 0 {
			return Errorf(KindValidation, op, "quantity for menu item %d must be positive", l.MenuItemID)
		}
		if l.Quantity > MaxQuantity {
			return Errorf(KindValidation, op, "quantity for menu item %d exceeds %d", l.MenuItemID, MaxQuantity)
		}
	}
	return nil
}

// MenuItemIDs returns the distinct menu item ids referenced by the lines.
func (r *PlaceOrderRequest) MenuItemIDs() []int64 {
	seen := make(map[int64]struct{}, len(r.Lines))
	ids := make([]int64, 0, len(r.Lines))
	for _, l := range r.Lines {
		if _, ok := seen[l.MenuItemID]; ok {
			continue
		}
		seen[l.MenuItemID] = struct{}{}
		ids = append(ids, l.MenuItemID)
	}
	return ids
}

// Deduction is the total amount to take from one inventory item.
type Deduction struct {
	InventoryID int64 `json:"inventory_id"`
	Amount      int   `json:"amount"`
}

// AggregateDeductions sums recipe quantity times ordered quantity per
// inventory item across all lines. Every line's menu item must be present
// in recipes. The result is sorted by inventory id so that row locks are
// always taken in the same order.
//
// No stock level can exceed MaxQuantity, so a total above it fails with
// KindInsufficientStock before anything is written.
func AggregateDeductions(lines []OrderLine, recipes map[int64][]RecipeEntry) ([]Deduction, error) {
	const op = "order.aggregate"

	totals := make(map[int64]int64)
	for _, l := range lines {
		for _, e := range recipes[l.MenuItemID] {
			amount, ok := mulQuantity(e.Quantity, l.Quantity)
			if ok {
				amount += totals[e.InventoryID]
			}
			if !ok || amount > MaxQuantity {
				return nil, Errorf(KindInsufficientStock, op,
					"order needs more of inventory item %d than can be stocked", e.InventoryID)
			}
			totals[e.InventoryID] = amount
		}
	}

	out := make([]Deduction, 0, len(totals))
	for id, amount := range totals {
		if amount == 0 {
			continue
		}
		out = append(out, Deduction{InventoryID: id, Amount: int(amount)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InventoryID < out[j].InventoryID })
	return out, nil
}

// mulQuantity multiplies two quantities, reporting false when either is
// outside 0..MaxQuantity. Within that range the product fits in int64.
func mulQuantity(a, b int) (int64, bool) {
	if a < 0 || b < 0 || a > MaxQuantity || b > MaxQuantity {
		return 0, false
	}
	return int64(a) * int64(b), true
}

// OrderFilter narrows order listings. Zero values are ignored.
type OrderFilter struct {
	CustomerID *int64
	StaffID    *int64
	MenuItemID *int64
	Date       *time.Time
	Since      *time.Time
	Limit      int
}
