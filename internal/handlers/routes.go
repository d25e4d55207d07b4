// internal/handlers/routes.go
package handlers

import "net/http"

const apiV1 = "/api/v1"

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Orders     *OrderHandler
	Menu       *MenuHandler
	Inventory  *InventoryHandler
	Reports    *ReportHandler
	Exports    *ExportHandler
	Deliveries *DeliveryHandler
	Health     *HealthHandler
}

// Register adds every route to mux. Nil handlers are skipped.
func (h *Handlers) Register(mux *http.ServeMux) {
	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Health)
		mux.HandleFunc("GET /health/live", h.Health.Liveness)
		mux.HandleFunc("GET /health/ready", h.Health.Readiness)
	}

	if o := h.Orders; o != nil {
		mux.HandleFunc("POST "+apiV1+"/orders", o.PlaceOrder)
		mux.HandleFunc("GET "+apiV1+"/orders", o.ListOrders)
		mux.HandleFunc("GET "+apiV1+"/orders/recent", o.RecentOrders)
		mux.HandleFunc("GET "+apiV1+"/orders/{id}", o.GetOrder)
		mux.HandleFunc("GET "+apiV1+"/orders/{id}/menu-items", o.MenuItemsForOrder)
		mux.HandleFunc("DELETE "+apiV1+"/orders/{id}", o.RemoveOrder)
	}

	if m := h.Menu; m != nil {
		mux.HandleFunc("POST "+apiV1+"/menu", m.AddMenuItem)
		mux.HandleFunc("GET "+apiV1+"/menu", m.ListMenuItems)
		mux.HandleFunc("GET "+apiV1+"/menu/{id}", m.GetMenuItem)
		mux.HandleFunc("GET "+apiV1+"/menu/by-name/{name}", m.GetMenuItemByName)
		mux.HandleFunc("DELETE "+apiV1+"/menu/{id}", m.RemoveMenuItem)
		mux.HandleFunc("PATCH "+apiV1+"/menu/{id}/price", m.UpdatePriceByID)
		mux.HandleFunc("PATCH "+apiV1+"/menu/by-name/{name}/price", m.UpdatePriceByName)
	}

	if i := h.Inventory; i != nil {
		mux.HandleFunc("GET "+apiV1+"/inventory", i.ListInventory)
		mux.HandleFunc("POST "+apiV1+"/inventory", i.CreateInventory)
		mux.HandleFunc("GET "+apiV1+"/inventory/{id}", i.GetInventory)
		mux.HandleFunc("GET "+apiV1+"/inventory/search", i.GetInventoryByName)
		mux.HandleFunc("GET "+apiV1+"/inventory/{id}/menu-items", i.MenuItemsUsingInventory)
		mux.HandleFunc("POST "+apiV1+"/inventory/{id}/restock", i.Restock)
	}

	if rp := h.Reports; rp != nil {
		mux.HandleFunc("GET "+apiV1+"/reports/sales", rp.SalesReport)
		mux.HandleFunc("GET "+apiV1+"/reports/restock", rp.RestockReport)
		mux.HandleFunc("GET "+apiV1+"/reports/excess", rp.ExcessReport)
		mux.HandleFunc("GET "+apiV1+"/reports/x", rp.XReport)
		mux.HandleFunc("GET "+apiV1+"/reports/z", rp.ZReport)
	}

	if e := h.Exports; e != nil {
		mux.HandleFunc("POST "+apiV1+"/reports/exports", e.QueueExport)
		mux.HandleFunc("GET "+apiV1+"/reports/exports/{job_id}", e.ExportStatus)
	}

	if d := h.Deliveries; d != nil {
		mux.HandleFunc("POST "+apiV1+"/deliveries", d.UploadDeliveryNote)
	}
}
