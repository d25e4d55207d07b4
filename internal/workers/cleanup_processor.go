// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/pos-be/internal/core/ports"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	storage   ports.FileStorage
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(storage ports.FileStorage, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	if retention <= 0 {
		retention = 7 * 24 * time.Hour
	}
	return &CleanupProcessor{
		storage:   storage,
		retention: retention,
		logger:    logger.With(slog.String("processor", "cleanup")),
		now:       time.Now,
	}
}

// CleanupExports removes exported workbooks and processed delivery notes
// older than the retention period
func (p *CleanupProcessor) CleanupExports(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up old files", slog.Duration("retention", p.retention))

	cutoff := p.now().Add(-p.retention)
	var deletedCount, failedCount int

	for _, prefix := range []string{ExportsPrefix, DeliveriesPrefix} {
		files, err := p.storage.List(ctx, prefix)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", prefix, err)
		}

		for _, f := range files {
			if !f.LastModified.Before(cutoff) {
				continue
			}
			if err := p.storage.Delete(ctx, f.Key); err != nil {
				failedCount++
				p.logger.WarnContext(ctx, "failed to delete file",
					slog.String("key", f.Key),
					slog.String("error", err.Error()))
				continue
			}
			deletedCount++
		}
	}

	p.logger.InfoContext(ctx, "old files cleaned up",
		slog.Int("files_deleted", deletedCount),
		slog.Int("files_failed", failedCount))
	return nil
}
