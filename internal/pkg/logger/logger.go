// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeyRequestID  ContextKey = "request_id"
	ContextKeyTraceID    ContextKey = "trace_id"
	ContextKeyClientIP   ContextKey = "client_ip"
	ContextKeyUserAgent  ContextKey = "user_agent"
	ContextKeyMethod     ContextKey = "method"
	ContextKeyPath       ContextKey = "path"
	ContextKeyStatusCode ContextKey = "status_code"
	ContextKeyDuration   ContextKey = "duration_ms"
	ContextKeyOrderID    ContextKey = "order_id"
	ContextKeyStaffID    ContextKey = "staff_id"
	ContextKeyJobID      ContextKey = "job_id"
	ContextKeyTaskType   ContextKey = "task_type"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string
	Format         string // json, text
	Output         io.Writer
	AddSource      bool
	Environment    string
	ServiceName    string
	ServiceVersion string
}

// SetupLogger builds the process logger and installs it as the slog default
func SetupLogger(level string, format string) *slog.Logger {
	logger := NewLogger(&LogConfig{
		Level:          level,
		Format:         format,
		Output:         os.Stdout,
		AddSource:      level == "debug",
		ServiceName:    os.Getenv("SERVICE_NAME"),
		ServiceVersion: os.Getenv("SERVICE_VERSION"),
		Environment:    os.Getenv("APP_ENV"),
	})
	slog.SetDefault(logger)
	return logger
}

// NewLogger creates a logger that adds context values to every record and
// redacts sensitive attributes
func NewLogger(config *LogConfig) *slog.Logger {
	if config == nil {
		config = &LogConfig{Level: "info", Format: "json"}
	}
	w := config.Output
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(config.Level),
		AddSource: config.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return replaceAttr(config, groups, a)
		},
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = NewPrettyTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	handler = NewContextHandler(handler)
	handler = NewSanitizationHandler(handler)

	var attrs []slog.Attr
	if config.ServiceName != "" {
		attrs = append(attrs, slog.String("service", config.ServiceName))
	}
	if config.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", config.ServiceVersion))
	}
	if config.Environment != "" {
		attrs = append(attrs, slog.String("env", config.Environment))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID stores the request id for later log records
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// WithOrderID stores the order id for later log records
func WithOrderID(ctx context.Context, orderID int64) context.Context {
	return context.WithValue(ctx, ContextKeyOrderID, orderID)
}

// WithJob stores a background job's id and task type
func WithJob(ctx context.Context, jobID, taskType string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyJobID, jobID)
	return context.WithValue(ctx, ContextKeyTaskType, taskType)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

func contextKeys() []ContextKey {
	return []ContextKey{
		ContextKeyRequestID,
		ContextKeyTraceID,
		ContextKeyClientIP,
		ContextKeyMethod,
		ContextKeyPath,
		ContextKeyOrderID,
		ContextKeyStaffID,
		ContextKeyJobID,
		ContextKeyTaskType,
	}
}

func extractContextAttrs(ctx context.Context, keys []ContextKey) []slog.Attr {
	var attrs []slog.Attr

	for _, key := range keys {
		val := ctx.Value(key)
		if val == nil {
			continue
		}
		keyStr := string(key)
		switch v := val.(type) {
		case string:
			if v != "" {
				attrs = append(attrs, slog.String(keyStr, v))
			}
		case int:
			attrs = append(attrs, slog.Int(keyStr, v))
		case int64:
			attrs = append(attrs, slog.Int64(keyStr, v))
		case time.Duration:
			attrs = append(attrs, slog.Duration(keyStr, v))
		case uuid.UUID:
			attrs = append(attrs, slog.String(keyStr, v.String()))
		default:
			attrs = append(attrs, slog.Any(keyStr, v))
		}
	}

	return attrs
}

func replaceAttr(config *LogConfig, _ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
		}
	}

	if a.Key == slog.LevelKey && config.Format != "text" {
		a.Key = "severity"
	}

	if strings.HasSuffix(a.Key, "_ms") {
		if d, ok := a.Value.Any().(time.Duration); ok {
			a.Value = slog.Float64Value(float64(d.Microseconds()) / 1000)
		}
	}

	return a
}
