package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/pos-be/internal/handlers"
	"github.com/ammerola/pos-be/test/helpers"
	"github.com/ammerola/pos-be/test/mocks"
)

type fakeInspector struct {
	err error
}

func (f fakeInspector) Queues() ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"default", "low"}, nil
}

func (f fakeInspector) GetQueueInfo(queue string) (*asynq.QueueInfo, error) {
	return &asynq.QueueInfo{Queue: queue, Size: 2, Pending: 2}, nil
}

func (f fakeInspector) Servers() ([]*asynq.ServerInfo, error) {
	return []*asynq.ServerInfo{{}}, nil
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		dbErr          error
		cacheErr       error
		inspector      handlers.QueueInspector
		expectedStatus int
		expectedHealth string
	}{
		{
			name:           "all_healthy",
			inspector:      fakeInspector{},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
		},
		{
			name:           "cache_down_degrades",
			cacheErr:       errors.New("connection refused"),
			expectedStatus: http.StatusOK,
			expectedHealth: "degraded",
		},
		{
			name:           "queue_down_degrades",
			inspector:      fakeInspector{err: errors.New("redis down")},
			expectedStatus: http.StatusOK,
			expectedHealth: "degraded",
		},
		{
			name:           "database_down",
			dbErr:          errors.New("pool closed"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := mocks.NewMockDatabase(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)

			db.EXPECT().Ping(gomock.Any()).Return(tt.dbErr)
			if tt.dbErr == nil {
				db.EXPECT().Health(gomock.Any()).Return(map[string]interface{}{"total_conns": 3})
			}
			cache.EXPECT().Ping(gomock.Any()).Return(tt.cacheErr)

			h := handlers.NewHealthHandler(db, cache, tt.inspector, helpers.LoadTestConfig(), helpers.TestLogger())

			w := httptest.NewRecorder()
			h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))

			var status handlers.HealthStatus
			decodeBody(t, w, &status)
			assert.Equal(t, tt.expectedHealth, status.Status)
			assert.Contains(t, status.Services, "database")
			assert.NotEmpty(t, status.System.GoVersion)
		})
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabase(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	db.EXPECT().Ping(gomock.Any()).Return(errors.New("timeout"))
	cache.EXPECT().Ping(gomock.Any()).Return(nil)

	h := handlers.NewHealthHandler(db, cache, nil, nil, helpers.TestLogger())

	w := httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp struct {
		Ready   bool              `json:"ready"`
		Details map[string]string `json:"details"`
	}
	decodeBody(t, w, &resp)
	assert.False(t, resp.Ready)
	assert.Equal(t, "not ready", resp.Details["database"])
	assert.Equal(t, "ready", resp.Details["redis"])
}

func TestHealthHandler_Liveness(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handlers.NewHealthHandler(mocks.NewMockDatabase(ctrl), nil, nil, nil, helpers.TestLogger())

	w := httptest.NewRecorder()
	h.Liveness(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}
