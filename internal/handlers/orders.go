// internal/handlers/orders.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// OrderHandler handles order placement, removal and lookups
type OrderHandler struct {
	service ports.OrderService
	loc     *time.Location
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler. Plain dates in query
// parameters are interpreted in loc.
func NewOrderHandler(service ports.OrderService, loc *time.Location, logger *slog.Logger) *OrderHandler {
	if loc == nil {
		loc = time.Local
	}
	return &OrderHandler{
		service: service,
		loc:     loc,
		logger:  logger.With(slog.String("handler", "orders")),
	}
}

// PlaceOrderRequest is the body of POST /api/v1/orders
type PlaceOrderRequest struct {
	TotalCost  decimal.Decimal    `json:"total_cost"`
	PlacedAt   *time.Time         `json:"placed_at,omitempty"`
	CustomerID int64              `json:"customer_id"`
	StaffID    int64              `json:"staff_id"`
	Lines      []domain.OrderLine `json:"lines"`
}

// ToDomain converts the request body to the service input
func (r *PlaceOrderRequest) ToDomain() domain.PlaceOrderRequest {
	req := domain.PlaceOrderRequest{
		TotalCost:  r.TotalCost,
		CustomerID: r.CustomerID,
		StaffID:    r.StaffID,
		Lines:      r.Lines,
	}
	if r.PlacedAt != nil {
		req.PlacedAt = *r.PlacedAt
	}
	return req
}

// PlaceOrder handles POST /api/v1/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	orderID, err := h.service.PlaceOrder(r.Context(), req.ToDomain())
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to place order", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"order_id": orderID})
}

// RemoveOrder handles DELETE /api/v1/orders/{id}
func (h *OrderHandler) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid order ID")
		return
	}

	if err := h.service.RemoveOrder(r.Context(), orderID); err != nil {
		respondDomainError(w, r, h.logger, "Failed to remove order", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid order ID")
		return
	}

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to retrieve order", err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		respondDomainError(w, r, h.logger, "Invalid query parameters", err)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to list orders", err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// RecentOrders handles GET /api/v1/orders/recent
func (h *OrderHandler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.RecentOrders(r.Context())
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to list recent orders", err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// MenuItemsForOrder handles GET /api/v1/orders/{id}/menu-items
func (h *OrderHandler) MenuItemsForOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "Invalid order ID")
		return
	}

	items, err := h.service.MenuItemsForOrder(r.Context(), orderID)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to list menu items for order", err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *OrderHandler) parseFilter(r *http.Request) (domain.OrderFilter, error) {
	var (
		filter domain.OrderFilter
		err    error
	)
	q := r.URL.Query()

	if filter.CustomerID, err = queryInt64(r, "customer_id"); err != nil {
		return filter, errInvalidParam("customer_id")
	}
	if filter.StaffID, err = queryInt64(r, "staff_id"); err != nil {
		return filter, errInvalidParam("staff_id")
	}
	if filter.MenuItemID, err = queryInt64(r, "menu_item_id"); err != nil {
		return filter, errInvalidParam("menu_item_id")
	}

	if v := q.Get("date"); v != "" {
		d, err := time.ParseInLocation(time.DateOnly, v, h.loc)
		if err != nil {
			return filter, errInvalidParam("date")
		}
		filter.Date = &d
	}
	if v := q.Get("since"); v != "" {
		s, err := parseTime(v, h.loc)
		if err != nil {
			return filter, errInvalidParam("since")
		}
		filter.Since = &s
	}

	return filter, nil
}

func errInvalidParam(name string) error {
	return domain.Errorf(domain.KindValidation, "http.query", "invalid %s parameter", name)
}
