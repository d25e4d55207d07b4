// internal/handlers/deliveries.go
package handlers

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/workers"
)

const defaultMaxUploadSize = 10 << 20

// DeliveryHandler accepts supplier delivery notes and queues the restock
type DeliveryHandler struct {
	tasks       ports.TaskEnqueuer
	storage     ports.FileStorage
	maxFileSize int64
	logger      *slog.Logger
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(tasks ports.TaskEnqueuer, storage ports.FileStorage, maxFileSize int64, logger *slog.Logger) *DeliveryHandler {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxUploadSize
	}
	return &DeliveryHandler{
		tasks:       tasks,
		storage:     storage,
		maxFileSize: maxFileSize,
		logger:      logger.With(slog.String("handler", "deliveries")),
	}
}

// UploadDeliveryNote handles POST /api/v1/deliveries
func (h *DeliveryHandler) UploadDeliveryNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		badRequest(w, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "File is required")
		return
	}
	defer file.Close()

	if header.Header.Get("Content-Type") != "application/pdf" && path.Ext(header.Filename) != ".pdf" {
		badRequest(w, "Only PDF files are allowed")
		return
	}

	jobID := uuid.New().String()
	key := workers.DeliveriesPrefix + jobID + ".pdf"

	if _, err := h.storage.Upload(ctx, key, file, "application/pdf"); err != nil {
		h.logger.ErrorContext(ctx, "failed to store delivery note",
			slog.String("key", key),
			slog.String("error", err.Error()))
		respondError(w, http.StatusServiceUnavailable, domain.KindStorageUnavailable, "Failed to save upload")
		return
	}

	if _, err := h.tasks.EnqueueDeliveryRestock(ctx, ports.DeliveryRestockPayload{
		JobID:   jobID,
		FileKey: key,
	}); err != nil {
		if delErr := h.storage.Delete(ctx, key); delErr != nil {
			h.logger.WarnContext(ctx, "failed to remove orphaned delivery note",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}
		h.logger.ErrorContext(ctx, "failed to enqueue delivery restock", slog.String("error", err.Error()))
		respondError(w, http.StatusServiceUnavailable, domain.KindStorageUnavailable, "Failed to queue restock job")
		return
	}

	h.logger.InfoContext(ctx, "delivery note queued",
		slog.String("job_id", jobID),
		slog.String("file_name", header.Filename),
		slog.Int64("size", header.Size))

	respondJSON(w, http.StatusAccepted, map[string]string{
		"job_id":   jobID,
		"file_key": key,
		"status":   "queued",
	})
}
