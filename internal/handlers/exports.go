// internal/handlers/exports.go
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/workers"
)

const exportLinkExpiry = 15 * time.Minute

// ExportHandler queues spreadsheet exports and hands out download links
type ExportHandler struct {
	tasks   ports.TaskEnqueuer
	storage ports.FileStorage
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(tasks ports.TaskEnqueuer, storage ports.FileStorage, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		tasks:   tasks,
		storage: storage,
		logger:  logger.With(slog.String("handler", "exports")),
	}
}

// ExportRequest is the optional body of POST /api/v1/reports/exports.
// Zero values fall back to the last day and the configured threshold.
type ExportRequest struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	MinimumQty int       `json:"minimum_qty"`
}

// QueueExport handles POST /api/v1/reports/exports
func (h *ExportHandler) QueueExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExportRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, "Invalid request body")
		return
	}
	if !req.Start.IsZero() && !req.End.IsZero() && !req.Start.Before(req.End) {
		badRequest(w, "start must be before end")
		return
	}
	if req.MinimumQty < 0 {
		badRequest(w, "minimum_qty cannot be negative")
		return
	}

	jobID, err := h.tasks.EnqueueReportExport(ctx, ports.ReportExportPayload{
		JobID:      uuid.New().String(),
		Start:      req.Start,
		End:        req.End,
		MinimumQty: req.MinimumQty,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue export", slog.String("error", err.Error()))
		respondError(w, http.StatusServiceUnavailable, domain.KindStorageUnavailable, "Failed to queue export job")
		return
	}

	h.logger.InfoContext(ctx, "report export queued", slog.String("job_id", jobID))

	respondJSON(w, http.StatusAccepted, map[string]string{
		"job_id": jobID,
		"status": "queued",
	})
}

// ExportStatus handles GET /api/v1/reports/exports/{job_id}
func (h *ExportHandler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID := r.PathValue("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		badRequest(w, "Invalid job ID")
		return
	}
	key := workers.ExportKey(jobID)

	files, err := h.storage.List(ctx, key)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to look up export", err)
		return
	}
	if len(files) == 0 {
		respondJSON(w, http.StatusOK, map[string]string{
			"job_id": jobID,
			"status": "pending",
		})
		return
	}

	url, err := h.storage.PresignedURL(ctx, key, exportLinkExpiry)
	if err != nil {
		respondDomainError(w, r, h.logger, "Failed to sign export link", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"job_id":     jobID,
		"status":     "completed",
		"url":        url,
		"size":       files[0].Size,
		"expires_at": time.Now().Add(exportLinkExpiry).UTC(),
	})
}
