// internal/handlers/menu.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// MenuHandler handles menu catalog requests
type MenuHandler struct {
	service ports.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service ports.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "menu")),
	}
}

// UpdatePriceRequest is the body of the price update endpoints
type UpdatePriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// AddMenuItem handles POST /api/v1/menu
func (h *MenuHandler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	var req domain.NewMenuItem
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	id, err := h.service.AddMenuItem(r.Context(), req)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to add menu item", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"menu_item_id": id})
}

// RemoveMenuItem handles DELETE /api/v1/menu/{id}
func (h *MenuHandler) RemoveMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid menu item ID")
		return
	}

	if err := h.service.RemoveMenuItem(r.Context(), id); err != nil {
		respondDomainError(w, r, h.logger, "Failed to remove menu item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMenuItem handles GET /api/v1/menu/{id}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid menu item ID")
		return
	}

	item, err := h.service.GetMenuItem(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to retrieve menu item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// GetMenuItemByName handles GET /api/v1/menu/by-name/{name}
func (h *MenuHandler) GetMenuItemByName(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetMenuItemByName(r.Context(), r.PathValue("name"))
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to retrieve menu item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// ListMenuItems handles GET /api/v1/menu
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenuItems(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to list menu items", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// UpdatePriceByID handles PATCH /api/v1/menu/{id}/price
func (h *MenuHandler) UpdatePriceByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid menu item ID")
		return
	}

	price, ok := h.decodePrice(w, r)
	if !ok {
		return
	}

	if err := h.service.UpdateMenuPriceByID(r.Context(), id, price); err != nil {
		respondDomainError(w, r, h.logger, "Failed to update price", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdatePriceByName handles PATCH /api/v1/menu/by-name/{name}/price
func (h *MenuHandler) UpdatePriceByName(w http.ResponseWriter, r *http.Request) {
	price, ok := h.decodePrice(w, r)
	if !ok {
		return
	}

	if err := h.service.UpdateMenuPriceByName(r.Context(), r.PathValue("name"), price); err != nil {
		respondDomainError(w, r, h.logger, "Failed to update price", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) decodePrice(w http.ResponseWriter, r *http.Request) (decimal.Decimal, bool) {
	var req UpdatePriceRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return decimal.Zero, false
	}
	if req.Price == nil {
		badRequest(w, "price is required")
		return decimal.Zero, false
	}
	return *req.Price, true
}
