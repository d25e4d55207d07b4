package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/test/helpers"
)

func newTestCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis_a.NewCache(client, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	report := domain.SalesReport{
		Lines: []domain.SalesLine{
			{MenuItemID: 1, Name: "taco", UnitsSold: 3, Revenue: decimal.RequireFromString("10.50")},
		},
		TotalRevenue: decimal.RequireFromString("10.50"),
	}

	require.NoError(t, cache.SetWithTTL(ctx, "report:sales:test", report, time.Minute))

	var got domain.SalesReport
	require.NoError(t, cache.Get(ctx, "report:sales:test", &got))
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "taco", got.Lines[0].Name)
	assert.True(t, report.TotalRevenue.Equal(got.TotalRevenue))
}

func TestCache_SetWithTTL_Expires(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond))

	var result string
	require.NoError(t, cache.Get(ctx, "ttl:test", &result))
	assert.Equal(t, "value", result)

	mr.FastForward(200 * time.Millisecond)

	err := cache.Get(ctx, "ttl:test", &result)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	keysToDelete := []string{
		redis_a.BuildKey(redis_a.PrefixSales, "2026-01-01", "2026-01-02"),
		redis_a.BuildKey(redis_a.PrefixRegister, "z", "2026-01-01"),
	}
	keysToKeep := []string{"session:1", "other:2"}

	for _, key := range append(keysToDelete, keysToKeep...) {
		require.NoError(t, cache.SetWithTTL(ctx, key, "value", time.Minute))
	}

	require.NoError(t, cache.DeletePattern(ctx, redis_a.ReportPattern))

	for _, key := range keysToDelete {
		var result string
		assert.ErrorIs(t, cache.Get(ctx, key, &result), redis_a.ErrCacheMiss, key)
	}
	for _, key := range keysToKeep {
		var result string
		require.NoError(t, cache.Get(ctx, key, &result))
		assert.Equal(t, "value", result)
	}
}

func TestCache_DeletePattern_NoMatches(t *testing.T) {
	cache, _ := newTestCache(t)
	assert.NoError(t, cache.DeletePattern(context.Background(), "report:*"))
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	fetchCount := 0
	fetch := func() (interface{}, error) {
		fetchCount++
		return domain.RegisterReport{Kind: domain.RegisterReportX, OrderCount: 4}, nil
	}

	var first domain.RegisterReport
	require.NoError(t, cache.GetOrSet(ctx, "report:register:x", &first, fetch, time.Minute))
	assert.Equal(t, int64(4), first.OrderCount)
	assert.Equal(t, 1, fetchCount)

	var second domain.RegisterReport
	require.NoError(t, cache.GetOrSet(ctx, "report:register:x", &second, fetch, time.Minute))
	assert.Equal(t, int64(4), second.OrderCount)
	assert.Equal(t, 1, fetchCount)
}

func TestCache_GetOrSet_FetchErrorNotCached(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	boom := domain.NewError(domain.KindStorageUnavailable, "report.sales", "db down", nil)
	var dest domain.SalesReport
	err := cache.GetOrSet(ctx, "report:sales:x", &dest, func() (interface{}, error) {
		return nil, boom
	}, time.Minute)

	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
	assert.False(t, mr.Exists("report:sales:x"))
}

func TestCache_GetOrSet_RedisDown(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	mr.Close()

	var dest string
	err := cache.GetOrSet(ctx, "report:sales:x", &dest, func() (interface{}, error) {
		return "computed", nil
	}, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "computed", dest)
	assert.Error(t, cache.Ping(ctx))
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	var c redis_a.NoopCache

	var dest int
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), redis_a.ErrCacheMiss)
	require.NoError(t, c.GetOrSet(ctx, "k", &dest, func() (interface{}, error) { return 7, nil }, time.Minute))
	assert.Equal(t, 7, dest)
}

func TestCache_BuildKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   redis_a.CacheKeyPrefix
		parts    []string
		expected string
	}{
		{
			name:     "sales_range",
			prefix:   redis_a.PrefixSales,
			parts:    []string{"2026-01-01", "2026-01-31"},
			expected: "report:sales:2026-01-01:2026-01-31",
		},
		{
			name:     "register_day",
			prefix:   redis_a.PrefixRegister,
			parts:    []string{"z", "2026-01-01"},
			expected: "report:register:z:2026-01-01",
		},
		{
			name:     "no_parts",
			prefix:   redis_a.PrefixSales,
			parts:    []string{},
			expected: "report:sales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redis_a.BuildKey(tt.prefix, tt.parts...))
		})
	}
}
