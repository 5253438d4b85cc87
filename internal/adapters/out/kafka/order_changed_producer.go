// Package kafka publishes order state changes to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderChangedEventType is carried in the event-type header of every message.
const OrderChangedEventType = "order.changed"

// publishBatchTimeout caps how long a synchronous write waits for a batch to fill.
// Events are written one at a time right after commit.
const publishBatchTimeout = 10 * time.Millisecond

// OrderChangedEvent is the JSON payload of the order-changed topic.
type OrderChangedEvent struct {
	EventID         string    `json:"eventId"`
	OrderID         string    `json:"orderId"`
	TrackingID      string    `json:"trackingId"`
	CustomerID      string    `json:"customerId"`
	RestaurantID    string    `json:"restaurantId"`
	Status          string    `json:"status"`
	Price           string    `json:"price"`
	FailureMessages []string  `json:"failureMessages"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// NewOrderChangedEvent snapshots the current state of an order.
func NewOrderChangedEvent(aggregate *order.Order, occurredAt time.Time) (OrderChangedEvent, error) {
	if err := aggregate.Validate(); err != nil {
		return OrderChangedEvent{}, err
	}
	if aggregate.ID().IsZero() {
		return OrderChangedEvent{}, errs.NewValueIsRequiredError("orderID")
	}

	messages := aggregate.FailureMessages()
	if messages == nil {
		messages = []string{}
	}

	return OrderChangedEvent{
		EventID:         uuid.NewString(),
		OrderID:         aggregate.ID().String(),
		TrackingID:      aggregate.TrackingID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		RestaurantID:    aggregate.RestaurantID().String(),
		Status:          aggregate.Status().String(),
		Price:           aggregate.Price().String(),
		FailureMessages: messages,
		OccurredAt:      occurredAt.UTC(),
	}, nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedProducer implements ports.OrderEventPublisher.
// Messages are keyed by order id so all changes of one order land on one partition
// in the order they were committed.
type OrderChangedProducer struct {
	writer messageWriter
	now    func() time.Time
}

// NewOrderChangedProducer wraps a writer that is already bound to the topic.
func NewOrderChangedProducer(writer messageWriter) *OrderChangedProducer {
	return &OrderChangedProducer{
		writer: writer,
		now:    time.Now,
	}
}

// NewWriter creates a hash-balanced writer for topic. brokers is a comma-separated list.
func NewWriter(brokers, topic string) (*kafka.Writer, error) {
	addrs := make([]string, 0)
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           publishBatchTimeout,
	}, nil
}

// PublishOrderChanged writes one order-changed event.
func (p *OrderChangedProducer) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	event, err := NewOrderChangedEvent(aggregate, p.now())
	if err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(OrderChangedEventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("write order %s changed event: %w", event.OrderID, err)
	}

	return nil
}

// Close flushes pending messages and releases the writer.
func (p *OrderChangedProducer) Close() error {
	return p.writer.Close()
}
