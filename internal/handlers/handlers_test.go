package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/pos-be/internal/handlers"
	"github.com/ammerola/pos-be/test/helpers"
	"github.com/ammerola/pos-be/test/mocks"
)

type fixture struct {
	orders    *mocks.MockOrderService
	menu      *mocks.MockMenuService
	inventory *mocks.MockInventoryService
	reports   *mocks.MockReportService
	tasks     *mocks.MockTaskEnqueuer
	storage   *mocks.MockFileStorage
	mux       *http.ServeMux
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := helpers.TestLogger()

	f := &fixture{
		orders:    mocks.NewMockOrderService(ctrl),
		menu:      mocks.NewMockMenuService(ctrl),
		inventory: mocks.NewMockInventoryService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		tasks:     mocks.NewMockTaskEnqueuer(ctrl),
		storage:   mocks.NewMockFileStorage(ctrl),
		mux:       http.NewServeMux(),
	}

	h := &handlers.Handlers{
		Orders:     handlers.NewOrderHandler(f.orders, time.UTC, logger),
		Menu:       handlers.NewMenuHandler(f.menu, logger),
		Inventory:  handlers.NewInventoryHandler(f.inventory, f.menu, logger),
		Reports:    handlers.NewReportHandler(f.reports, time.UTC, logger),
		Exports:    handlers.NewExportHandler(f.tasks, f.storage, logger),
		Deliveries: handlers.NewDeliveryHandler(f.tasks, f.storage, 1<<20, logger),
	}
	h.Register(f.mux)

	return f
}

func (f *fixture) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.mux.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}
