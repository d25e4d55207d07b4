//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ammerola/pos-be/internal/adapters/db"
	"github.com/ammerola/pos-be/internal/adapters/events"
	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/core/services"
	"github.com/ammerola/pos-be/internal/handlers"
	"github.com/ammerola/pos-be/internal/handlers/middleware"
	"github.com/ammerola/pos-be/test/helpers"
)

type OrderE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *OrderE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *OrderE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *OrderE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *OrderE2ESuite) TestOrderLifecycle() {
	// 1. Stock the kitchen
	tortilla := s.createInventory("Tortilla", 10)
	beef := s.createInventory("Ground Beef", 10)

	// 2. A taco uses one of each
	resp := s.makeRequest(http.MethodPost, "/menu", map[string]interface{}{
		"name":  "Taco",
		"price": "3.50",
		"type":  "entree",
		"recipe": []map[string]int64{
			{"inventory_id": tortilla, "quantity": 1},
			{"inventory_id": beef, "quantity": 1},
		},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var created map[string]int64
	s.decodeResponse(resp, &created)
	taco := created["menu_item_id"]

	// 3. Three tacos
	orderID := s.placeOrder(taco, 3, "10.50", http.StatusCreated)

	resp = s.makeRequest(http.MethodGet, fmt.Sprintf("/inventory/%d", tortilla), nil)
	var item map[string]interface{}
	s.decodeResponse(resp, &item)
	s.EqualValues(7, item["quantity"])

	// 4. Eight more is more than is left
	resp = s.makeRequest(http.MethodPost, "/orders", orderBody(taco, 8, "28.00"))
	s.Equal(http.StatusConflict, resp.StatusCode)
	var failure map[string]string
	s.decodeResponse(resp, &failure)
	s.Equal("insufficient_stock", failure["kind"])
	s.Equal(7, helpers.InventoryQuantity(s.T(), s.testDB.PgxPool, tortilla))

	// 5. Sales report sees the first order only
	day := time.Now().UTC().Format(time.DateOnly)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(time.DateOnly)
	resp = s.makeRequest(http.MethodGet, "/reports/sales?start="+day+"&end="+tomorrow, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var sales struct {
		Lines []struct {
			UnitsSold int64 `json:"units_sold"`
		} `json:"lines"`
	}
	s.decodeResponse(resp, &sales)
	s.Require().Len(sales.Lines, 1)
	s.Equal(int64(3), sales.Lines[0].UnitsSold)

	// 6. Remove the order twice
	resp = s.makeRequest(http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Stock is not given back
	s.Equal(7, helpers.InventoryQuantity(s.T(), s.testDB.PgxPool, tortilla))
}

func (s *OrderE2ESuite) TestMenuItemWithMissingInventory() {
	tortilla := s.createInventory("Tortilla", 10)

	resp := s.makeRequest(http.MethodPost, "/menu", map[string]interface{}{
		"name":  "Taco",
		"price": "3.50",
		"type":  "entree",
		"recipe": []map[string]int64{
			{"inventory_id": tortilla, "quantity": 1},
			{"inventory_id": tortilla + 100, "quantity": 1},
		},
	})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodGet, "/menu/by-name/Taco", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *OrderE2ESuite) TestConcurrentOrdersNeverOversell() {
	tortilla := s.createInventory("Tortilla", 5)
	resp := s.makeRequest(http.MethodPost, "/menu", map[string]interface{}{
		"name":   "Tostada",
		"price":  "2.00",
		"type":   "entree",
		"recipe": []map[string]int64{{"inventory_id": tortilla, "quantity": 1}},
	})
	var created map[string]int64
	s.decodeResponse(resp, &created)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = map[int]int{}
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := s.makeRequest(http.MethodPost, "/orders", orderBody(created["menu_item_id"], 1, "2.00"))
			resp.Body.Close()
			mu.Lock()
			statuses[resp.StatusCode]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(5, statuses[http.StatusCreated])
	s.Equal(7, statuses[http.StatusConflict])
	s.Equal(0, helpers.InventoryQuantity(s.T(), s.testDB.PgxPool, tortilla))
}

func (s *OrderE2ESuite) TestHealth() {
	resp, err := s.client.Get(s.server.URL + "/health/ready")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Header.Get("X-Request-ID"))
}

func (s *OrderE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()
	database := s.testDB.Database
	cache := redis_a.NewCache(s.testRedis.Client, logger)

	orderService := services.NewOrderService(db.NewOrderRepository(database, logger), events.NoopPublisher{}, cache,
		services.OrderServiceConfig{OrderTimeout: cfg.POS.OrderTimeout, RecentOrdersLimit: cfg.POS.RecentOrdersLimit}, logger)
	menuService := services.NewMenuService(db.NewMenuRepository(database, logger), cache, logger)
	inventoryService := services.NewInventoryService(db.NewInventoryRepository(database, logger), cache, logger)
	reportService := services.NewReportService(db.NewReportRepository(database, logger), cache,
		services.ReportServiceConfig{Location: time.UTC}, logger)

	h := &handlers.Handlers{
		Orders:    handlers.NewOrderHandler(orderService, time.UTC, logger),
		Menu:      handlers.NewMenuHandler(menuService, logger),
		Inventory: handlers.NewInventoryHandler(inventoryService, menuService, logger),
		Reports:   handlers.NewReportHandler(reportService, time.UTC, logger),
		Health:    handlers.NewHealthHandler(database, cache, nil, cfg, logger),
	}
	mux := http.NewServeMux()
	h.Register(mux)

	return httptest.NewServer(middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	))
}

func (s *OrderE2ESuite) createInventory(name string, quantity int) int64 {
	resp := s.makeRequest(http.MethodPost, "/inventory", map[string]interface{}{
		"name":     name,
		"quantity": quantity,
		"unit":     "each",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var created map[string]int64
	s.decodeResponse(resp, &created)
	return created["inventory_id"]
}

func (s *OrderE2ESuite) placeOrder(menuItemID int64, quantity int, total string, expected int) int64 {
	resp := s.makeRequest(http.MethodPost, "/orders", orderBody(menuItemID, quantity, total))
	s.Require().Equal(expected, resp.StatusCode)
	var created map[string]int64
	s.decodeResponse(resp, &created)
	return created["order_id"]
}

func orderBody(menuItemID int64, quantity int, total string) map[string]interface{} {
	return map[string]interface{}{
		"total_cost":  total,
		"customer_id": 1,
		"staff_id":    2,
		"lines":       []map[string]interface{}{{"menu_item_id": menuItemID, "quantity": quantity}},
	}
}

func (s *OrderE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *OrderE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestOrderE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(OrderE2ESuite))
}
