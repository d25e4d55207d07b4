// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/pkg/config"
)

// QueueInspector is the subset of *asynq.Inspector used by health checks
type QueueInspector interface {
	Queues() ([]string, error)
	GetQueueInfo(queue string) (*asynq.QueueInfo, error)
	Servers() ([]*asynq.ServerInfo, error)
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db        ports.Database
	cache     ports.CacheRepository
	asynq     QueueInspector
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler. The queue inspector is
// optional.
func NewHealthHandler(
	database ports.Database,
	cache ports.CacheRepository,
	inspector QueueInspector,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:        database,
		cache:     cache,
		asynq:     inspector,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus represents the health status of the application
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	System      SystemInfo             `json:"system"`
}

// ServiceInfo represents the status of a service dependency
type ServiceInfo struct {
	Status       string                 `json:"status"`
	Message      string                 `json:"message,omitempty"`
	ResponseTime string                 `json:"response_time,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SystemInfo represents system-level information
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
	NumGC         uint32 `json:"num_gc"`
}

// Health handles GET /health. The database is required; the cache and
// queue only degrade the status since orders never depend on them.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:    "healthy",
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now(),
		Services:  make(map[string]ServiceInfo),
		System:    h.getSystemInfo(),
	}
	if h.config != nil {
		health.Version = h.config.App.Version
		health.Environment = h.config.App.Environment
	}

	statusCode := http.StatusOK

	dbStatus := h.checkDatabase(ctx)
	health.Services["database"] = dbStatus
	if dbStatus.Status != "healthy" {
		health.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		cacheStatus := h.checkCache(ctx)
		health.Services["redis"] = cacheStatus
		if cacheStatus.Status != "healthy" && health.Status == "healthy" {
			health.Status = "degraded"
		}
	}

	if h.asynq != nil {
		asynqStatus := h.checkAsynq(ctx)
		health.Services["asynq"] = asynqStatus
		if asynqStatus.Status != "healthy" && health.Status == "healthy" {
			health.Status = "degraded"
		}
	}

	h.writeNoCache(ctx, w, statusCode, health)
}

// Liveness handles GET /health/live
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	h.writeNoCache(r.Context(), w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := true
	details := make(map[string]string)

	if err := h.db.Ping(ctx); err != nil {
		ready = false
		details["database"] = "not ready"
	} else {
		details["database"] = "ready"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			details["redis"] = "not ready"
		} else {
			details["redis"] = "ready"
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeNoCache(ctx, w, statusCode, map[string]interface{}{
		"ready":   ready,
		"details": details,
	})
}

func (h *HealthHandler) writeNoCache(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response",
			slog.String("error", err.Error()))
	}
}

// checkDatabase checks the health of the database connection
func (h *HealthHandler) checkDatabase(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{
		Status:  "healthy",
		Details: make(map[string]interface{}),
	}

	if err := h.db.Ping(ctx); err != nil {
		info.Status = "unhealthy"
		info.Message = err.Error()
		h.logger.ErrorContext(ctx, "database health check failed",
			slog.String("error", err.Error()))
		return info
	}

	for k, v := range h.db.Health(ctx) {
		info.Details[k] = v
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

func (h *HealthHandler) checkCache(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{Status: "healthy"}

	if err := h.cache.Ping(ctx); err != nil {
		info.Status = "unhealthy"
		info.Message = err.Error()
		h.logger.WarnContext(ctx, "redis health check failed",
			slog.String("error", err.Error()))
		return info
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

// checkAsynq checks the health of the Asynq queue system
func (h *HealthHandler) checkAsynq(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{
		Status:  "healthy",
		Details: make(map[string]interface{}),
	}

	queues, err := h.asynq.Queues()
	if err != nil {
		info.Status = "unhealthy"
		info.Message = err.Error()
		h.logger.WarnContext(ctx, "asynq health check failed",
			slog.String("error", err.Error()))
		return info
	}

	queueStats := make(map[string]interface{})
	for _, queue := range queues {
		qInfo, err := h.asynq.GetQueueInfo(queue)
		if err != nil {
			continue
		}
		queueStats[queue] = map[string]interface{}{
			"size":      qInfo.Size,
			"active":    qInfo.Active,
			"pending":   qInfo.Pending,
			"scheduled": qInfo.Scheduled,
			"retry":     qInfo.Retry,
			"archived":  qInfo.Archived,
		}
	}
	info.Details["queues"] = queueStats

	if servers, err := h.asynq.Servers(); err == nil {
		info.Details["servers"] = len(servers)
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

func (h *HealthHandler) getSystemInfo() SystemInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAllocMB: memStats.Alloc / 1024 / 1024,
		NumGC:         memStats.NumGC,
	}
}
