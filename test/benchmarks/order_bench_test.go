package benchmarks

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/handlers/middleware"
	"github.com/ammerola/pos-be/test/helpers"
)

func BenchmarkAggregateDeductions(b *testing.B) {
	recipes := syntheticMenu(200, 6, 80)

	for _, lines := range []int{1, 10, 50} {
		req := syntheticOrder(lines, 200)
		b.Run(fmt.Sprintf("lines_%d", lines), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = domain.AggregateDeductions(req.Lines, recipes)
			}
		})
	}
}

func BenchmarkPlaceOrderRequest_Validate(b *testing.B) {
	req := syntheticOrder(25, 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = req.Validate()
		_ = req.MenuItemIDs()
	}
}

func BenchmarkReportCache(b *testing.B) {
	mr := miniredis.RunT(b)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := redis_a.NewCache(client, helpers.TestLogger())
	ctx := context.Background()
	key := redis_a.BuildKey(redis_a.PrefixSales, "2026-01-01", "2026-01-08")

	report := &domain.SalesReport{Lines: make([]domain.SalesLine, 50)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var dest domain.SalesReport
		_ = cache.GetOrSet(ctx, key, &dest, func() (interface{}, error) {
			return report, nil
		}, time.Minute)
	}
}

func BenchmarkMiddlewareChain(b *testing.B) {
	logger := helpers.TestLogger()
	handler := middleware.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS([]string{"*"}),
		middleware.SecureHeaders,
	)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`))
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
