// internal/core/ports/database.go
package ports

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the storage handle injected into repositories. Every
// multi-statement write goes through Transaction or TransactionWithOptions.
type Database interface {
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]interface{}
	Transaction(ctx context.Context, fn func(pgx.Tx) error) error
	TransactionWithOptions(ctx context.Context, opts pgx.TxOptions, fn func(pgx.Tx) error) error
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}
