package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/test/helpers"
)

type recordingWriter struct {
	msgs     []kafka.Message
	err      error
	closed   bool
	deadline bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, KafkaConfig{Topic: "pos.orders"}, helpers.TestLogger())

	event := domain.OrderEvent{
		Type:       domain.EventOrderPlaced,
		OrderID:    17,
		TotalCost:  decimal.RequireFromString("12.50"),
		StaffID:    3,
		Lines:      []domain.OrderLine{{MenuItemID: 1, Quantity: 2}},
		Deductions: []domain.Deduction{{InventoryID: 5, Amount: 4}},
		OccurredAt: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishOrderEvent(context.Background(), event))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "17", string(msg.Key))
	assert.True(t, w.deadline)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, domain.EventOrderPlaced, string(msg.Headers[0].Value))

	var decoded domain.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, int64(17), decoded.OrderID)
	assert.Equal(t, []domain.Deduction{{InventoryID: 5, Amount: 4}}, decoded.Deductions)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker unreachable")}
	p := newKafkaPublisher(w, KafkaConfig{Topic: "pos.orders"}, helpers.TestLogger())

	err := p.PublishOrderEvent(context.Background(), domain.OrderEvent{Type: domain.EventOrderRemoved, OrderID: 1})
	assert.ErrorContains(t, err, "broker unreachable")
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.PublishOrderEvent(context.Background(), domain.OrderEvent{}))
	assert.NoError(t, p.Close())
}
