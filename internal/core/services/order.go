// internal/core/services/order.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/pkg/logger"
)

// OrderService places and removes orders. Each placement is one atomic unit
// of work in the repository; the service adds validation, the deadline and
// post-commit side effects.
type OrderService struct {
	repo        ports.OrderRepository
	events      ports.EventPublisher
	cache       ports.CacheRepository
	logger      *slog.Logger
	timeout     time.Duration
	recentLimit int
	now         func() time.Time
}

var _ ports.OrderService = (*OrderService)(nil)

// OrderServiceConfig holds tunables for order handling
type OrderServiceConfig struct {
	OrderTimeout      time.Duration
	RecentOrdersLimit int
}

// NewOrderService creates a new order service
func NewOrderService(
	repo ports.OrderRepository,
	events ports.EventPublisher,
	cache ports.CacheRepository,
	cfg OrderServiceConfig,
	logger *slog.Logger,
) *OrderService {
	timeout := cfg.OrderTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	limit := cfg.RecentOrdersLimit
	if limit <= 0 {
		limit = 50
	}
	return &OrderService{
		repo:        repo,
		events:      events,
		cache:       cache,
		logger:      logger.With(slog.String("service", "order")),
		timeout:     timeout,
		recentLimit: limit,
		now:         time.Now,
	}
}

// PlaceOrder validates the request and records the order, its lines and the
// stock deductions atomically. Any failure is returned as
// *domain.OrderCreationFailed and leaves storage unchanged. The call is not
// idempotent and is never retried here.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, &domain.OrderCreationFailed{Cause: err}
	}
	if req.PlacedAt.IsZero() {
		req.PlacedAt = s.now()
	}

	txCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	orderID, deductions, err := s.repo.PlaceOrder(txCtx, &req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && domain.KindOf(err) == domain.KindUnknown {
			err = domain.NewError(domain.KindStorageUnavailable, "order.place", "order timed out", err)
		}
		s.logger.WarnContext(ctx, "order placement failed",
			slog.String("kind", domain.KindOf(err).String()),
			slog.Int("lines", len(req.Lines)),
			slog.String("error", err.Error()))
		return 0, &domain.OrderCreationFailed{Cause: err}
	}

	ctx = logger.WithOrderID(ctx, orderID)
	s.logger.InfoContext(ctx, "order placed",
		slog.Int("lines", len(req.Lines)),
		slog.Int("deductions", len(deductions)),
		slog.String("total_cost", req.TotalCost.StringFixed(2)))

	s.publish(ctx, domain.OrderEvent{
		Type:       domain.EventOrderPlaced,
		OrderID:    orderID,
		TotalCost:  req.TotalCost,
		CustomerID: req.CustomerID,
		StaffID:    req.StaffID,
		Lines:      req.Lines,
		Deductions: deductions,
		OccurredAt: s.now(),
	})
	s.invalidateReports(ctx)

	return orderID, nil
}

// RemoveOrder deletes an order and its lines. Inventory is not restored.
func (s *OrderService) RemoveOrder(ctx context.Context, orderID int64) error {
	if err := s.repo.RemoveOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to remove order: %w", err)
	}

	ctx = logger.WithOrderID(ctx, orderID)
	s.logger.InfoContext(ctx, "order removed")

	s.publish(ctx, domain.OrderEvent{
		Type:       domain.EventOrderRemoved,
		OrderID:    orderID,
		OccurredAt: s.now(),
	})
	s.invalidateReports(ctx)
	return nil
}

// GetOrder returns an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListOrders returns orders matching filter, newest first
func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// RecentOrders returns the most recent orders up to the configured limit
func (s *OrderService) RecentOrders(ctx context.Context) ([]domain.Order, error) {
	return s.ListOrders(ctx, domain.OrderFilter{Limit: s.recentLimit})
}

// MenuItemsForOrder lists the menu items that appear on an order
func (s *OrderService) MenuItemsForOrder(ctx context.Context, orderID int64) ([]domain.MenuItem, error) {
	items, err := s.repo.MenuItemsForOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items for order: %w", err)
	}
	return items, nil
}

// publish is best effort; the order is already committed.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.String("type", event.Type),
			slog.String("error", err.Error()))
	}
}

func (s *OrderService) invalidateReports(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, reportCachePattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate report cache",
			slog.String("error", err.Error()))
	}
}
