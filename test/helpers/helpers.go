// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/pos-be/internal/adapters/db"
	"github.com/ammerola/pos-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests and
// applies the embedded migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_pos",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_pos",
		SSLMode:            "disable",
		MaxConnections:     25,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: dbConfig.DSN(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}
	err = db.RunMigrationsWithRetry(context.Background(), migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates an in-memory Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database/sql handle for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-pos",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		POS: config.POSConfig{
			OrderTimeout:      5 * time.Second,
			RecentOrdersLimit: 50,
			RestockThreshold:  20,
			ExcessRatio:       0.10,
			ReportCacheTTL:    time.Minute,
			BusinessLocation:  time.UTC,
			ExportRetention:   7 * 24 * time.Hour,
			LowStockScanCron:  "0 6 * * *",
			MaxUploadSizeMB:   5,
		},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Port:           "5432",
			User:           "test",
			Password:       "test",
			Name:           "test_pos",
			SSLMode:        "disable",
			MaxConnections: 10,
			MinConnections: 2,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			PoolSize: 10,
		},
		Storage: config.StorageConfig{
			Backend:   "local",
			LocalPath: os.TempDir(),
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:           "localhost",
			Port:           "8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
	}
}

// SeedInventory inserts an inventory item and returns its id
func SeedInventory(t *testing.T, pool *pgxpool.Pool, name string, quantity int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO inventory (name, quantity, unit) VALUES ($1, $2, 'unit') RETURNING id`,
		name, quantity).Scan(&id)
	require.NoError(t, err, "Failed to seed inventory %s", name)
	return id
}

// SeedMenuItem inserts a menu item with its recipe (inventory id -> quantity)
func SeedMenuItem(t *testing.T, pool *pgxpool.Pool, name, price string, recipe map[int64]int) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO menu_items (name, price, type) VALUES ($1, $2, 'entree') RETURNING id`,
		name, decimal.RequireFromString(price)).Scan(&id)
	require.NoError(t, err, "Failed to seed menu item %s", name)

	for invID, qty := range recipe {
		_, err := pool.Exec(ctx,
			`INSERT INTO inventory_menu (menu_item_id, inventory_id, quantity) VALUES ($1, $2, $3)`,
			id, invID, qty)
		require.NoError(t, err, "Failed to seed recipe for %s", name)
	}
	return id
}

// Catalog is a small seeded catalog shared by integration tests
type Catalog struct {
	Tortilla   int64
	Beef       int64
	Cheese     int64
	Taco       int64
	Quesadilla int64
}

// SeedCatalog seeds tortillas, beef and cheese plus two menu items using them
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) Catalog {
	t.Helper()

	var c Catalog
	c.Tortilla = SeedInventory(t, pool, "Tortilla", 100)
	c.Beef = SeedInventory(t, pool, "Beef", 50)
	c.Cheese = SeedInventory(t, pool, "Cheese", 10)
	c.Taco = SeedMenuItem(t, pool, "Taco", "3.50", map[int64]int{c.Tortilla: 1, c.Beef: 1})
	c.Quesadilla = SeedMenuItem(t, pool, "Quesadilla", "4.25", map[int64]int{c.Tortilla: 2, c.Cheese: 1})
	return c
}

// InventoryQuantity reads the current quantity of an inventory item
func InventoryQuantity(t *testing.T, pool *pgxpool.Pool, id int64) int {
	t.Helper()

	var qty int
	err := pool.QueryRow(context.Background(), `SELECT quantity FROM inventory WHERE id = $1`, id).Scan(&qty)
	require.NoError(t, err)
	return qty
}

// CountRows counts the rows of a table
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
	require.NoError(t, err)
	return n
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"menu_order",
		"orders",
		"inventory_menu",
		"menu_items",
		"inventory",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp(t.TempDir(), fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	require.NoError(t, file.Close())
	return file.Name()
}
