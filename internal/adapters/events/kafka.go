// internal/adapters/events/kafka.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// messageWriter is the subset of *kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events to a Kafka topic keyed by order id, so
// all events of one order land on the same partition in commit order.
type KafkaPublisher struct {
	writer  messageWriter
	topic   string
	timeout time.Duration
	logger  *slog.Logger
}

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// KafkaConfig holds publisher settings
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// NewKafkaPublisher creates a publisher with a long lived writer
func NewKafkaPublisher(cfg KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, cfg, logger)
}

func newKafkaPublisher(w messageWriter, cfg KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &KafkaPublisher{
		writer:  w,
		topic:   cfg.Topic,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "kafka_publisher")),
	}
}

// PublishOrderEvent serializes the event as JSON and writes it synchronously
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event.Type, p.topic, err)
	}

	p.logger.DebugContext(ctx, "order event published",
		slog.String("type", event.Type),
		slog.Int64("order_id", event.OrderID))
	return nil
}

// Close flushes pending messages and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. It is used when Kafka is disabled.
type NoopPublisher struct{}

var _ ports.EventPublisher = NoopPublisher{}

func (NoopPublisher) PublishOrderEvent(context.Context, domain.OrderEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
