// internal/core/domain/events.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order event types
const (
	EventOrderPlaced  = "order.placed"
	EventOrderRemoved = "order.removed"
)

// OrderEvent is published after an order transaction commits.
type OrderEvent struct {
	Type       string          `json:"type"`
	OrderID    int64           `json:"order_id"`
	TotalCost  decimal.Decimal `json:"total_cost,omitempty"`
	CustomerID int64           `json:"customer_id,omitempty"`
	StaffID    int64           `json:"staff_id,omitempty"`
	Lines      []OrderLine     `json:"lines,omitempty"`
	Deductions []Deduction     `json:"deductions,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
