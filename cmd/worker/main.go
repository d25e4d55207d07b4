// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/pos-be/internal/adapters/db"
	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/adapters/storage"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/core/services"
	"github.com/ammerola/pos-be/internal/pkg/config"
	"github.com/ammerola/pos-be/internal/pkg/logger"
	"github.com/ammerola/pos-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()
	database, err := initDatabase(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	cache := initCache(ctx, cfg, slogger)

	fileStorage, err := initStorage(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize file storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inventoryService := services.NewInventoryService(db.NewInventoryRepository(database, slogger), cache, slogger)
	reportService := services.NewReportService(db.NewReportRepository(database, slogger), cache, services.ReportServiceConfig{
		RestockThreshold: cfg.POS.RestockThreshold,
		ExcessRatio:      cfg.POS.ExcessRatio,
		CacheTTL:         cfg.POS.ReportCacheTTL,
		Location:         cfg.POS.BusinessLocation,
	}, slogger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
		RetryDelayFunc:  exponentialBackoff,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: healthCheck,
		Logger:          newAsynqLogger(slogger),
	})

	mux := asynq.NewServeMux()

	exportProcessor := workers.NewExportProcessor(reportService, fileStorage, slogger)
	mux.HandleFunc(workers.TypeReportExport, exportProcessor.ProcessReportExport)

	deliveryProcessor := workers.NewDeliveryProcessor(inventoryService, fileStorage, slogger)
	mux.HandleFunc(workers.TypeDeliveryRestock, deliveryProcessor.ProcessDeliveryNote)

	lowStockProcessor := workers.NewLowStockProcessor(reportService, cfg.POS.RestockThreshold, slogger)
	mux.HandleFunc(workers.TypeLowStockScan, lowStockProcessor.ProcessLowStockScan)

	cleanupProcessor := workers.NewCleanupProcessor(fileStorage, cfg.POS.ExportRetention, slogger)
	mux.HandleFunc(workers.TypeCleanupExports, cleanupProcessor.CleanupExports)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: cfg.POS.BusinessLocation,
		Logger:   newAsynqLogger(slogger),
	})
	if err := workers.RegisterPeriodicTasks(scheduler, cfg.POS.LowStockScanCron); err != nil {
		slogger.Error("failed to register periodic tasks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start does not trap signals; main owns shutdown of both
	if err := srv.Start(mux); err != nil {
		slogger.Error("failed to start worker server", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := scheduler.Start(); err != nil {
		slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
		srv.Shutdown()
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.String("low_stock_cron", cfg.POS.LowStockScanCron))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	dbConfig := &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     10, // Fewer connections for worker
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}

	return db.NewDatabase(ctx, dbConfig, logger)
}

func initCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) ports.CacheRepository {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis cache unavailable", slog.String("error", err.Error()))
		client.Close()
		return redis_a.NoopCache{}
	}
	return redis_a.NewCache(client, logger)
}

func initStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.FileStorage, error) {
	if cfg.Storage.Backend == "s3" {
		return storage.NewS3Storage(ctx, &storage.S3Config{
			Region:          cfg.AWS.Region,
			Bucket:          cfg.AWS.S3Bucket,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.S3Endpoint,
			UsePathStyle:    cfg.AWS.UsePathStyle,
		}, logger)
	}
	return storage.NewLocalStorage(cfg.Storage.LocalPath, logger)
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.Int("retry", retried),
		slog.Int("max_retry", maxRetry),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
