// internal/core/domain/report.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesLine is the sales of one menu item over a period.
type SalesLine struct {
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitsSold  int64           `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// SalesReport aggregates order lines between two instants, end exclusive.
type SalesReport struct {
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	Lines        []SalesLine     `json:"lines"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// RestockLine is an inventory item below the restock threshold.
type RestockLine struct {
	InventoryID int64  `json:"inventory_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
}

// RestockReport lists inventory items whose quantity is below MinimumQty.
type RestockReport struct {
	MinimumQty  int           `json:"minimum_qty"`
	Items       []RestockLine `json:"items"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// ExcessLine is an inventory item that sold little since a point in time.
type ExcessLine struct {
	InventoryID   int64   `json:"inventory_id"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Consumed      int64   `json:"consumed"`
	ConsumedRatio float64 `json:"consumed_ratio"`
}

// ExcessReport lists items whose consumption since Since is below Ratio of
// the stock they had at that time (current quantity plus consumption).
type ExcessReport struct {
	Since       time.Time    `json:"since"`
	Ratio       float64      `json:"ratio"`
	Items       []ExcessLine `json:"items"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// StaffTotal is the takings attributed to one staff member.
type StaffTotal struct {
	StaffID    int64           `json:"staff_id"`
	OrderCount int64           `json:"order_count"`
	Total      decimal.Decimal `json:"total"`
}

// RegisterReport is the X or Z report for a business day.
type RegisterReport struct {
	Kind        string          `json:"kind"`
	Day         time.Time       `json:"day"`
	Through     time.Time       `json:"through"`
	OrderCount  int64           `json:"order_count"`
	ItemsSold   int64           `json:"items_sold"`
	Total       decimal.Decimal `json:"total"`
	ByStaff     []StaffTotal    `json:"by_staff"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Register report kinds
const (
	RegisterReportX = "x"
	RegisterReportZ = "z"
)
