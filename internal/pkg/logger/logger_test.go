// internal/pkg/logger/logger_test.go
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewLogger_AddsContextValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&LogConfig{Level: "info", Format: "json", Output: &buf})

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithOrderID(ctx, 42)
	log.InfoContext(ctx, "order placed")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "order placed", entry["msg"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, float64(42), entry["order_id"])
}

func TestNewLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&LogConfig{Level: "info", Format: "json", Output: &buf})

	log.Info("connecting password=hunter2", slog.String("db_password", "hunter2"), slog.String("name", "taco"))

	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry["msg"], "hunter2")
	assert.Equal(t, "***REDACTED***", entry["db_password"])
	assert.Equal(t, "taco", entry["name"])
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&LogConfig{Level: "warn", Format: "json", Output: &buf})

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&LogConfig{Level: "debug", Format: "text", Output: &buf, ServiceName: "pos-api"})

	log.WithGroup("ignored").Debug("restocked", slog.Int("amount", 5))

	out := buf.String()
	assert.Contains(t, out, "restocked")
	assert.Contains(t, out, "amount")
	assert.Contains(t, out, "pos-api")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}
