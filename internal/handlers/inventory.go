// internal/handlers/inventory.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	service ports.InventoryService
	menu    ports.MenuService
	logger  *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, menu ports.MenuService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		menu:    menu,
		logger:  logger.With(slog.String("handler", "inventory")),
	}
}

// CreateInventoryRequest is the body of POST /api/v1/inventory
type CreateInventoryRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// ToDomain converts the request to a domain model
func (r *CreateInventoryRequest) ToDomain() domain.InventoryItem {
	return domain.InventoryItem{
		Name:     r.Name,
		Quantity: r.Quantity,
		Unit:     r.Unit,
	}
}

// RestockRequest is the body of POST /api/v1/inventory/{id}/restock
type RestockRequest struct {
	Amount int `json:"amount"`
}

// GetInventory handles GET /api/v1/inventory/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid inventory ID format")
		return
	}

	item, err := h.service.GetInventoryItem(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to retrieve inventory item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// GetInventoryByName handles GET /api/v1/inventory/search?name=
func (h *InventoryHandler) GetInventoryByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		badRequest(w, "name is required")
		return
	}

	item, err := h.service.GetInventoryItemByName(r.Context(), name)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to retrieve inventory item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// ListInventory handles GET /api/v1/inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListInventory(r.Context())
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to list inventory items", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// CreateInventory handles POST /api/v1/inventory
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	id, err := h.service.CreateInventoryItem(r.Context(), req.ToDomain())
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to create inventory item", err)
		return
	}

	h.logger.InfoContext(r.Context(), "inventory item created",
		slog.Int64("inventory_id", id),
		slog.String("name", req.Name))

	respondJSON(w, http.StatusCreated, map[string]int64{"inventory_id": id})
}

// Restock handles POST /api/v1/inventory/{id}/restock
func (h *InventoryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid inventory ID format")
		return
	}

	var req RestockRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.Restock(r.Context(), id, req.Amount)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to restock inventory item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// MenuItemsUsingInventory handles GET /api/v1/inventory/{id}/menu-items
func (h *InventoryHandler) MenuItemsUsingInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid inventory ID format")
		return
	}

	items, err := h.menu.MenuItemsUsingInventory(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to list menu items", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}
