// internal/core/ports/events.go
package ports

import (
	"context"

	"github.com/ammerola/pos-be/internal/core/domain"
)

// EventPublisher delivers committed order events to downstream consumers.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
	Close() error
}
