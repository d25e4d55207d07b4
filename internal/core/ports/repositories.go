// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
)

// OrderRepository is the persistence port for orders. PlaceOrder and
// RemoveOrder each run as one atomic unit of work.
type OrderRepository interface {
	PlaceOrder(ctx context.Context, req *domain.PlaceOrderRequest) (int64, []domain.Deduction, error)
	RemoveOrder(ctx context.Context, orderID int64) error
	FindByID(ctx context.Context, orderID int64) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	MenuItemsForOrder(ctx context.Context, orderID int64) ([]domain.MenuItem, error)
}

// MenuRepository is the persistence port for the menu catalog.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.NewMenuItem) (int64, error)
	Remove(ctx context.Context, menuItemID int64) error
	UpdatePriceByID(ctx context.Context, menuItemID int64, price decimal.Decimal) error
	UpdatePriceByName(ctx context.Context, name string, price decimal.Decimal) error
	FindByID(ctx context.Context, menuItemID int64) (*domain.MenuItem, error)
	FindByName(ctx context.Context, name string) (*domain.MenuItem, error)
	List(ctx context.Context, menuType string) ([]domain.MenuItem, error)
	FindByInventoryID(ctx context.Context, inventoryID int64) ([]domain.MenuItem, error)
}

// InventoryRepository is the persistence port for the inventory ledger.
// It has no decrement; stock only goes down through order placement.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (int64, error)
	FindByID(ctx context.Context, inventoryID int64) (*domain.InventoryItem, error)
	FindByName(ctx context.Context, name string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Restock(ctx context.Context, inventoryID int64, amount int) (*domain.InventoryItem, error)
	RestockBatch(ctx context.Context, restocks []domain.Restock) error
}

// ReportRepository runs read-only aggregate queries.
type ReportRepository interface {
	Sales(ctx context.Context, start, end time.Time) ([]domain.SalesLine, error)
	BelowQuantity(ctx context.Context, minimum int) ([]domain.RestockLine, error)
	ConsumptionSince(ctx context.Context, since time.Time) ([]domain.ExcessLine, error)
	Register(ctx context.Context, start, end time.Time) (*domain.RegisterReport, error)
}
