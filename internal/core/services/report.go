// internal/core/services/report.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

const reportCachePattern = redis_a.ReportPattern

// ReportService computes read-only reports. Sales and closed-day register
// reports are cached; anything carrying live stock levels is always read
// from storage.
type ReportService struct {
	repo   ports.ReportRepository
	cache  ports.CacheRepository
	logger *slog.Logger
	cfg    ReportServiceConfig
	now    func() time.Time
}

var _ ports.ReportService = (*ReportService)(nil)

// ReportServiceConfig holds report tunables
type ReportServiceConfig struct {
	RestockThreshold int
	ExcessRatio      float64
	CacheTTL         time.Duration
	Location         *time.Location
}

// NewReportService creates a new report service
func NewReportService(repo ports.ReportRepository, cache ports.CacheRepository, cfg ReportServiceConfig, logger *slog.Logger) *ReportService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.RestockThreshold <= 0 {
		cfg.RestockThreshold = 20
	}
	if cfg.ExcessRatio <= 0 || cfg.ExcessRatio >= 1 {
		cfg.ExcessRatio = 0.10
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &ReportService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "report")),
		cfg:    cfg,
		now:    time.Now,
	}
}

// SalesReport aggregates sales per menu item in [start, end)
func (s *ReportService) SalesReport(ctx context.Context, start, end time.Time) (*domain.SalesReport, error) {
	if !start.Before(end) {
		return nil, domain.Errorf(domain.KindValidation, "report.sales", "start must be before end")
	}

	key := redis_a.BuildKey(redis_a.PrefixSales, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))

	var report domain.SalesReport
	err := s.cache.GetOrSet(ctx, key, &report, func() (interface{}, error) {
		lines, err := s.repo.Sales(ctx, start, end)
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Revenue)
		}
		return &domain.SalesReport{
			Start:        start,
			End:          end,
			Lines:        lines,
			TotalRevenue: total,
			GeneratedAt:  s.now(),
		}, nil
	}, s.cfg.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to build sales report: %w", err)
	}
	return &report, nil
}

// RestockReport lists inventory below minimumQty. Zero uses the configured
// threshold.
func (s *ReportService) RestockReport(ctx context.Context, minimumQty int) (*domain.RestockReport, error) {
	if minimumQty < 0 {
		return nil, domain.Errorf(domain.KindValidation, "report.restock", "minimum quantity cannot be negative")
	}
	if minimumQty == 0 {
		minimumQty = s.cfg.RestockThreshold
	}

	items, err := s.repo.BelowQuantity(ctx, minimumQty)
	if err != nil {
		return nil, fmt.Errorf("failed to build restock report: %w", err)
	}
	return &domain.RestockReport{
		MinimumQty:  minimumQty,
		Items:       items,
		GeneratedAt: s.now(),
	}, nil
}

// ExcessReport lists items whose consumption since the given time is below
// the configured share of the stock they held at that time.
func (s *ReportService) ExcessReport(ctx context.Context, since time.Time) (*domain.ExcessReport, error) {
	now := s.now()
	if since.After(now) {
		return nil, domain.Errorf(domain.KindValidation, "report.excess", "since cannot be in the future")
	}

	lines, err := s.repo.ConsumptionSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to build excess report: %w", err)
	}

	items := make([]domain.ExcessLine, 0, len(lines))
	for _, l := range lines {
		held := int64(l.Quantity) + l.Consumed
		if held <= 0 {
			continue
		}
		l.ConsumedRatio = float64(l.Consumed) / float64(held)
		if l.ConsumedRatio < s.cfg.ExcessRatio {
			items = append(items, l)
		}
	}

	return &domain.ExcessReport{
		Since:       since,
		Ratio:       s.cfg.ExcessRatio,
		Items:       items,
		GeneratedAt: now,
	}, nil
}

// XReport summarizes the current business day so far. It is never cached.
func (s *ReportService) XReport(ctx context.Context) (*domain.RegisterReport, error) {
	now := s.now().In(s.cfg.Location)
	start := startOfDay(now)

	report, err := s.repo.Register(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build x report: %w", err)
	}
	report.Kind = domain.RegisterReportX
	report.GeneratedAt = now
	return report, nil
}

// ZReport summarizes the whole business day containing day. It only reads.
func (s *ReportService) ZReport(ctx context.Context, day time.Time) (*domain.RegisterReport, error) {
	now := s.now().In(s.cfg.Location)
	start := startOfDay(day.In(s.cfg.Location))
	if start.After(now) {
		return nil, domain.Errorf(domain.KindValidation, "report.z", "day %s is in the future", start.Format(time.DateOnly))
	}
	end := start.AddDate(0, 0, 1)

	key := redis_a.BuildKey(redis_a.PrefixRegister, domain.RegisterReportZ, start.Format(time.DateOnly))

	var report domain.RegisterReport
	err := s.cache.GetOrSet(ctx, key, &report, func() (interface{}, error) {
		r, err := s.repo.Register(ctx, start, end)
		if err != nil {
			return nil, err
		}
		r.Kind = domain.RegisterReportZ
		r.GeneratedAt = now
		return r, nil
	}, s.cfg.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to build z report: %w", err)
	}

	s.logger.DebugContext(ctx, "z report built",
		slog.String("day", start.Format(time.DateOnly)),
		slog.Int64("orders", report.OrderCount))
	return &report, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
