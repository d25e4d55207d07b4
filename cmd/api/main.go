// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/pos-be/internal/adapters/db"
	"github.com/ammerola/pos-be/internal/adapters/events"
	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/adapters/storage"
	"github.com/ammerola/pos-be/internal/core/ports"
	"github.com/ammerola/pos-be/internal/core/services"
	"github.com/ammerola/pos-be/internal/handlers"
	"github.com/ammerola/pos-be/internal/handlers/middleware"
	"github.com/ammerola/pos-be/internal/pkg/config"
	"github.com/ammerola/pos-be/internal/pkg/logger"
	"github.com/ammerola/pos-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting restaurant point of sale api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("business_location", cfg.POS.BusinessLocation.String()),
	)

	ctx := context.Background()

	// Schema must exist before repositories prepare anything against it
	if !cfg.IsProduction() {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup(slogger)

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		// In-flight placements finish their transaction before the pool closes
		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	cache          ports.CacheRepository
	publisher      ports.EventPublisher
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	handlers       handlers.Handlers
}

func (d *dependencies) cleanup(logger *slog.Logger) {
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", slog.String("error", err.Error()))
		}
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.asynqClient != nil {
		if err := d.asynqClient.Close(); err != nil {
			logger.Error("failed to close Asynq client", slog.String("error", err.Error()))
		}
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	// Reports degrade to uncached reads when Redis is down; orders never depend on it
	deps.redisClient, deps.cache = connectCache(ctx, cfg, logger)

	if cfg.Kafka.Enabled {
		logger.Info("publishing order events to kafka",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.Topic),
		)
		deps.publisher = events.NewKafkaPublisher(events.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logger)
	} else {
		deps.publisher = events.NoopPublisher{}
	}

	fileStorage, err := newFileStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)
	enqueuer := workers.NewEnqueuer(deps.asynqClient, cfg.Asynq.RetryMax, logger)

	// Repositories
	orderRepo := db.NewOrderRepository(database, logger)
	menuRepo := db.NewMenuRepository(database, logger)
	inventoryRepo := db.NewInventoryRepository(database, logger)
	reportRepo := db.NewReportRepository(database, logger)

	// Services
	orderService := services.NewOrderService(orderRepo, deps.publisher, deps.cache, services.OrderServiceConfig{
		OrderTimeout:      cfg.POS.OrderTimeout,
		RecentOrdersLimit: cfg.POS.RecentOrdersLimit,
	}, logger)
	menuService := services.NewMenuService(menuRepo, deps.cache, logger)
	inventoryService := services.NewInventoryService(inventoryRepo, deps.cache, logger)
	reportService := services.NewReportService(reportRepo, deps.cache, services.ReportServiceConfig{
		RestockThreshold: cfg.POS.RestockThreshold,
		ExcessRatio:      cfg.POS.ExcessRatio,
		CacheTTL:         cfg.POS.ReportCacheTTL,
		Location:         cfg.POS.BusinessLocation,
	}, logger)

	loc := cfg.POS.BusinessLocation
	maxUpload := int64(cfg.POS.MaxUploadSizeMB) * 1024 * 1024

	var inspector handlers.QueueInspector = deps.asynqInspector
	deps.handlers = handlers.Handlers{
		Orders:     handlers.NewOrderHandler(orderService, loc, logger),
		Menu:       handlers.NewMenuHandler(menuService, logger),
		Inventory:  handlers.NewInventoryHandler(inventoryService, menuService, logger),
		Reports:    handlers.NewReportHandler(reportService, loc, logger),
		Exports:    handlers.NewExportHandler(enqueuer, fileStorage, logger),
		Deliveries: handlers.NewDeliveryHandler(enqueuer, fileStorage, maxUpload, logger),
		Health:     handlers.NewHealthHandler(database, deps.cache, inspector, cfg, logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func databaseConfig(cfg *config.Config) *db.Config {
	return &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}
}

func connectCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, ports.CacheRepository) {
	logger.Info("connecting to Redis", slog.String("addr", cfg.Redis.Addr()))

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, report caching disabled", slog.String("error", err.Error()))
		client.Close()
		return nil, redis_a.NoopCache{}
	}
	return client, redis_a.NewCache(client, logger)
}

func newFileStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.FileStorage, error) {
	switch cfg.Storage.Backend {
	case "s3":
		s3, err := storage.NewS3Storage(ctx, &storage.S3Config{
			Region:          cfg.AWS.Region,
			Bucket:          cfg.AWS.S3Bucket,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.S3Endpoint,
			UsePathStyle:    cfg.AWS.UsePathStyle,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		return s3, nil
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.LocalPath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return local, nil
	}
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	deps.handlers.Register(mux)

	mws := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration),
		middleware.CORS(cfg.Security.AllowedOrigins),
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	mws = append(mws, middleware.Timeout(cfg.Server.RequestTimeout))

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, mws...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, logger, 3)
}
