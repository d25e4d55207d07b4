// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ammerola/pos-be/internal/core/ports"
)

// Task types. None of them places orders: order placement is not idempotent
// and is never run through the queue.
const (
	TypeReportExport    = "report:export"
	TypeDeliveryRestock = "inventory:restock_delivery"
	TypeLowStockScan    = "inventory:low_stock_scan"
	TypeCleanupExports  = "cleanup:exports"
)

// Queue names
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// ExportsPrefix is the storage prefix of generated report workbooks
const ExportsPrefix = "exports/"

// DeliveriesPrefix is the storage prefix of uploaded delivery notes
const DeliveriesPrefix = "deliveries/"

// ExportKey returns the storage key of an export job's workbook
func ExportKey(jobID string) string {
	return ExportsPrefix + jobID + ".xlsx"
}

// taskClient is the subset of *asynq.Client used for enqueueing
type taskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer implements ports.TaskEnqueuer on top of asynq
type Enqueuer struct {
	client   taskClient
	maxRetry int
	logger   *slog.Logger
}

var _ ports.TaskEnqueuer = (*Enqueuer)(nil)

// NewEnqueuer creates an enqueuer. client is usually an *asynq.Client.
func NewEnqueuer(client taskClient, maxRetry int, logger *slog.Logger) *Enqueuer {
	if maxRetry <= 0 {
		maxRetry = 3
	}
	return &Enqueuer{
		client:   client,
		maxRetry: maxRetry,
		logger:   logger.With(slog.String("component", "enqueuer")),
	}
}

// EnqueueReportExport schedules a workbook export and returns its job id
func (e *Enqueuer) EnqueueReportExport(ctx context.Context, payload ports.ReportExportPayload) (string, error) {
	if payload.JobID == "" {
		payload.JobID = uuid.New().String()
	}
	err := e.enqueue(ctx, TypeReportExport, payload.JobID, payload,
		asynq.Queue(QueueLow),
		asynq.Timeout(5*time.Minute),
		asynq.Retention(24*time.Hour))
	if err != nil {
		return "", err
	}
	return payload.JobID, nil
}

// EnqueueDeliveryRestock schedules a restock from an uploaded delivery note
func (e *Enqueuer) EnqueueDeliveryRestock(ctx context.Context, payload ports.DeliveryRestockPayload) (string, error) {
	if payload.JobID == "" {
		payload.JobID = uuid.New().String()
	}
	err := e.enqueue(ctx, TypeDeliveryRestock, payload.JobID, payload,
		asynq.Queue(QueueDefault),
		asynq.Timeout(2*time.Minute))
	if err != nil {
		return "", err
	}
	return payload.JobID, nil
}

func (e *Enqueuer) enqueue(ctx context.Context, taskType, jobID string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}

	// The job id doubles as the task id so duplicate submissions collapse.
	opts = append(opts, asynq.TaskID(jobID), asynq.MaxRetry(e.maxRetry))

	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(taskType, data), opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}

	e.logger.InfoContext(ctx, "task enqueued",
		slog.String("type", taskType),
		slog.String("job_id", jobID),
		slog.String("queue", info.Queue))
	return nil
}

// periodicRegistrar is the subset of *asynq.Scheduler used for cron tasks
type periodicRegistrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

// RegisterPeriodicTasks registers the low stock scan and the export cleanup
func RegisterPeriodicTasks(s periodicRegistrar, lowStockCron string) error {
	if lowStockCron == "" {
		lowStockCron = "0 6 * * *"
	}
	if _, err := s.Register(lowStockCron, asynq.NewTask(TypeLowStockScan, nil), asynq.Queue(QueueLow)); err != nil {
		return fmt.Errorf("failed to register %s: %w", TypeLowStockScan, err)
	}
	if _, err := s.Register("@daily", asynq.NewTask(TypeCleanupExports, nil), asynq.Queue(QueueLow)); err != nil {
		return fmt.Errorf("failed to register %s: %w", TypeCleanupExports, err)
	}
	return nil
}

// skipRetry marks err as permanent so asynq archives the task at once.
func skipRetry(err error) error {
	return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
}
