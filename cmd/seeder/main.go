// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ammerola/pos-be/internal/adapters/db"
	"github.com/ammerola/pos-be/internal/adapters/events"
	redis_a "github.com/ammerola/pos-be/internal/adapters/redis_adapter"
	"github.com/ammerola/pos-be/internal/core/services"
	"github.com/ammerola/pos-be/internal/pkg/config"
	"github.com/ammerola/pos-be/internal/pkg/logger"
)

func main() {
	var (
		catalogFile = flag.String("catalog", "", "Excel workbook with Inventory and Menu sheets")
		demo        = flag.Bool("demo", false, "Seed the built-in demo menu")
		orders      = flag.Int("orders", 0, "Number of random demo orders to place after seeding")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun      = flag.Bool("dry-run", false, "Preview changes without modifying database")
		migrate     = flag.Bool("migrate", true, "Apply schema migrations before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "text")

	var catalog *Catalog
	switch {
	case *catalogFile != "":
		c, err := LoadCatalog(*catalogFile)
		if err != nil {
			slogger.Error("failed to load catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
		catalog = c
	case *demo:
		catalog = demoCatalog()
	default:
		fmt.Fprintln(os.Stderr, "one of -catalog or -demo is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if *migrate && !*dryRun {
		if err := db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
			DatabaseURL: cfg.GetDatabaseURL(),
			TableName:   "schema_migrations",
			SchemaName:  "public",
		}, slogger, 3); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:              cfg.Database.Host,
		Port:              cfg.Database.Port,
		User:              cfg.Database.User,
		Password:          cfg.Database.Password,
		Database:          cfg.Database.Name,
		SSLMode:           cfg.Database.SSLMode,
		MaxConnections:    4,
		MinConnections:    1,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
		ConnectTimeout:    cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	// Seeding bypasses the cache and the event stream
	cache := redis_a.NoopCache{}
	seeder := NewSeeder(
		services.NewInventoryService(db.NewInventoryRepository(database, slogger), cache, slogger),
		services.NewMenuService(db.NewMenuRepository(database, slogger), cache, slogger),
		services.NewOrderService(db.NewOrderRepository(database, slogger), events.NoopPublisher{}, cache,
			services.OrderServiceConfig{OrderTimeout: cfg.POS.OrderTimeout}, slogger),
		*dryRun,
		slogger,
	)

	summary, err := seeder.SeedCatalog(ctx, catalog)
	if err != nil {
		slogger.Error("seeding aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := seeder.PlaceDemoOrders(ctx, *orders, summary); err != nil {
		slogger.Error("failed to place demo orders", slog.String("error", err.Error()))
	}

	printSummary(summary, *dryRun)

	slogger.Info("seed operation completed",
		slog.Int("inventory_created", summary.InventoryCreated),
		slog.Int("menu_created", summary.MenuCreated),
		slog.Int("orders_placed", summary.OrdersPlaced),
		slog.Int("failures", len(summary.Failures)))

	if len(summary.Failures) > 0 {
		os.Exit(1)
	}
}

func printSummary(s *Summary, dryRun bool) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Inventory created: %d (existing: %d)\n", s.InventoryCreated, s.InventorySkipped)
	fmt.Printf("Menu items created: %d (existing: %d)\n", s.MenuCreated, s.MenuSkipped)
	fmt.Printf("Demo orders placed: %d\n", s.OrdersPlaced)

	if len(s.Failures) > 0 {
		fmt.Printf("\nFailures (%d):\n", len(s.Failures))
		for _, f := range s.Failures {
			fmt.Printf("  - %s\n", f)
		}
	}

	if dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}
