// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
	"time"
)

// FileStorage stores report exports and uploaded delivery notes.
type FileStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]StoredFile, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// StoredFile describes one object in FileStorage.
type StoredFile struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// TaskEnqueuer schedules background jobs.
type TaskEnqueuer interface {
	EnqueueReportExport(ctx context.Context, payload ReportExportPayload) (string, error)
	EnqueueDeliveryRestock(ctx context.Context, payload DeliveryRestockPayload) (string, error)
}

// ReportExportPayload describes a spreadsheet export job.
type ReportExportPayload struct {
	JobID      string    `json:"job_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	MinimumQty int       `json:"minimum_qty"`
}

// DeliveryRestockPayload points at an uploaded supplier delivery note.
type DeliveryRestockPayload struct {
	JobID   string `json:"job_id"`
	FileKey string `json:"file_key"`
}
