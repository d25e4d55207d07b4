// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// InventoryService handles inventory business logic
type InventoryService struct {
	repo   ports.InventoryRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(repo ports.InventoryRepository, cache ports.CacheRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "inventory")),
	}
}

// GetInventoryItem retrieves an inventory item by ID
func (s *InventoryService) GetInventoryItem(ctx context.Context, inventoryID int64) (*domain.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// GetInventoryItemByName retrieves an inventory item by its unique name
func (s *InventoryService) GetInventoryItemByName(ctx context.Context, name string) (*domain.InventoryItem, error) {
	item, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// ListInventory returns every inventory item ordered by id
func (s *InventoryService) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// CreateInventoryItem validates and stores a new inventory item
func (s *InventoryService) CreateInventoryItem(ctx context.Context, item domain.InventoryItem) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}
	item.PrepareForStorage()

	id, err := s.repo.Create(ctx, &item)
	if err != nil {
		return 0, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.logger.InfoContext(ctx, "created inventory item",
		slog.Int64("inventory_id", id),
		slog.String("name", item.Name),
		slog.Int("quantity", item.Quantity))

	s.invalidateReports(ctx)
	return id, nil
}

// Restock adds amount to a single item
func (s *InventoryService) Restock(ctx context.Context, inventoryID int64, amount int) (*domain.InventoryItem, error) {
	if amount <= 0 {
		return nil, domain.Errorf(domain.KindValidation, "inventory.restock", "amount must be positive")
	}
	if amount > domain.MaxQuantity {
		return nil, domain.Errorf(domain.KindValidation, "inventory.restock", "amount exceeds %d", domain.MaxQuantity)
	}

	item, err := s.repo.Restock(ctx, inventoryID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to restock item: %w", err)
	}

	s.logger.InfoContext(ctx, "restocked inventory item",
		slog.Int64("inventory_id", inventoryID),
		slog.Int("amount", amount),
		slog.Int("quantity", item.Quantity))

	s.invalidateReports(ctx)
	return item, nil
}

// RestockBatch applies a set of restocks by name in one transaction. The
// whole batch is rejected if any entry is invalid or names an unknown item.
func (s *InventoryService) RestockBatch(ctx context.Context, restocks []domain.Restock) error {
	if len(restocks) == 0 {
		s.logger.InfoContext(ctx, "no restocks to apply")
		return nil
	}

	for _, r := range restocks {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if err := s.repo.RestockBatch(ctx, restocks); err != nil {
		return fmt.Errorf("failed to apply restock batch: %w", err)
	}

	s.logger.InfoContext(ctx, "applied restock batch", slog.Int("count", len(restocks)))

	s.invalidateReports(ctx)
	return nil
}

func (s *InventoryService) invalidateReports(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, reportCachePattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate report cache",
			slog.String("error", err.Error()))
	}
}
