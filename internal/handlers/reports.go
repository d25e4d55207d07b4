// internal/handlers/reports.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/pos-be/internal/core/ports"
)

// ReportHandler serves the read-only reports
type ReportHandler struct {
	service ports.ReportService
	loc     *time.Location
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler. Plain dates are
// interpreted in loc.
func NewReportHandler(service ports.ReportService, loc *time.Location, logger *slog.Logger) *ReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReportHandler{
		service: service,
		loc:     loc,
		logger:  logger.With(slog.String("handler", "reports")),
	}
}

// SalesReport handles GET /api/v1/reports/sales?start=&end=
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := parseTime(q.Get("start"), h.loc)
	if err != nil {
		badRequest(w, "start must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}
	end, err := parseTime(q.Get("end"), h.loc)
	if err != nil {
		badRequest(w, "end must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}

	report, err := h.service.SalesReport(r.Context(), start, end)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to build sales report", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// RestockReport handles GET /api/v1/reports/restock?minimum_qty=
func (h *ReportHandler) RestockReport(w http.ResponseWriter, r *http.Request) {
	minimum := 0
	if v := r.URL.Query().Get("minimum_qty"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(w, "minimum_qty must be an integer")
			return
		}
		minimum = n
	}

	report, err := h.service.RestockReport(r.Context(), minimum)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to build restock report", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// ExcessReport handles GET /api/v1/reports/excess?since=
func (h *ReportHandler) ExcessReport(w http.ResponseWriter, r *http.Request) {
	since, err := parseTime(r.URL.Query().Get("since"), h.loc)
	if err != nil {
		badRequest(w, "since must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}

	report, err := h.service.ExcessReport(r.Context(), since)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to build excess report", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// XReport handles GET /api/v1/reports/x
func (h *ReportHandler) XReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.XReport(r.Context())
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to build X report", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// ZReport handles GET /api/v1/reports/z?date=YYYY-MM-DD
func (h *ReportHandler) ZReport(w http.ResponseWriter, r *http.Request) {
	day, err := time.ParseInLocation(time.DateOnly, r.URL.Query().Get("date"), h.loc)
	if err != nil {
		badRequest(w, "date must be YYYY-MM-DD")
		return
	}

	report, err := h.service.ZReport(r.Context(), day)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to build Z report", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
