// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
)

// OrderService is the application port for the order transaction manager.
type OrderService interface {
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (int64, error)
	RemoveOrder(ctx context.Context, orderID int64) error
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	RecentOrders(ctx context.Context) ([]domain.Order, error)
	MenuItemsForOrder(ctx context.Context, orderID int64) ([]domain.MenuItem, error)
}

// MenuService is the application port for the menu catalog.
type MenuService interface {
	AddMenuItem(ctx context.Context, item domain.NewMenuItem) (int64, error)
	RemoveMenuItem(ctx context.Context, menuItemID int64) error
	UpdateMenuPriceByID(ctx context.Context, menuItemID int64, price decimal.Decimal) error
	UpdateMenuPriceByName(ctx context.Context, name string, price decimal.Decimal) error
	GetMenuItem(ctx context.Context, menuItemID int64) (*domain.MenuItem, error)
	GetMenuItemByName(ctx context.Context, name string) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context, menuType string) ([]domain.MenuItem, error)
	MenuItemsUsingInventory(ctx context.Context, inventoryID int64) ([]domain.MenuItem, error)
}

// InventoryService is the application port for the inventory ledger.
type InventoryService interface {
	GetInventoryItem(ctx context.Context, inventoryID int64) (*domain.InventoryItem, error)
	GetInventoryItemByName(ctx context.Context, name string) (*domain.InventoryItem, error)
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	CreateInventoryItem(ctx context.Context, item domain.InventoryItem) (int64, error)
	Restock(ctx context.Context, inventoryID int64, amount int) (*domain.InventoryItem, error)
	RestockBatch(ctx context.Context, restocks []domain.Restock) error
}

// ReportService is the read-only reporting facade.
type ReportService interface {
	SalesReport(ctx context.Context, start, end time.Time) (*domain.SalesReport, error)
	RestockReport(ctx context.Context, minimumQty int) (*domain.RestockReport, error)
	ExcessReport(ctx context.Context, since time.Time) (*domain.ExcessReport, error)
	XReport(ctx context.Context) (*domain.RegisterReport, error)
	ZReport(ctx context.Context, day time.Time) (*domain.RegisterReport, error)
}
