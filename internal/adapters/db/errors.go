// internal/adapters/db/errors.go
package db

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/pos-be/internal/core/domain"
)

// Postgres SQLSTATE codes the repositories care about.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgAdminShutdown       = "57P01"
	pgQueryCanceled       = "57014"
	pgDeadlockDetected    = "40P01"
	pgSerialization       = "40001"
)

// stockFloorConstraint is the CHECK on inventory.quantity.
const stockFloorConstraint = "inventory_quantity_non_negative"

// classifyError converts a storage error into a typed domain error.
// Errors that are already typed pass through untouched.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewError(domain.KindNotFound, op, "record not found", err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.NewError(domain.KindStorageUnavailable, op, "operation aborted", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgForeignKeyViolation:
			return domain.NewError(domain.KindReference, op, "referenced record does not exist", err)
		case pgErr.Code == pgCheckViolation && pgErr.ConstraintName == stockFloorConstraint:
			return domain.NewError(domain.KindInsufficientStock, op, "stock would go negative", err)
		case strings.HasPrefix(pgErr.Code, "23"):
			return domain.NewError(domain.KindConstraintViolation, op, constraintMessage(pgErr), err)
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == pgAdminShutdown,
			pgErr.Code == pgQueryCanceled,
			pgErr.Code == pgDeadlockDetected,
			pgErr.Code == pgSerialization:
			return domain.NewError(domain.KindStorageUnavailable, op, "database unavailable", err)
		}
		return domain.NewError(domain.KindConstraintViolation, op, pgErr.Message, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return domain.NewError(domain.KindStorageUnavailable, op, "database unavailable", err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return domain.NewError(domain.KindStorageUnavailable, op, "database unavailable", err)
	}

	return err
}

func constraintMessage(pgErr *pgconn.PgError) string {
	if pgErr.Code == pgUniqueViolation {
		return "duplicate value violates " + pgErr.ConstraintName
	}
	if pgErr.ConstraintName != "" {
		return "constraint " + pgErr.ConstraintName + " violated"
	}
	return pgErr.Message
}
