// Package kafka publishes order events to a Kafka topic, keyed by order id so
// that the events of one order stay in one partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"marketplace/internal/core/domain/model/order"
)

type orderEventMessage struct {
	Kind       string    `json:"kind"`
	OrderID    string    `json:"order_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	PartnerID  string    `json:"partner_id,omitempty"`
	Refund     string    `json:"refund,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderEventPublisher connects an idempotent producer to the brokers.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewOrderEventPublisherWithProducer(producer, topic, logger), nil
}

func NewOrderEventPublisherWithProducer(
	producer sarama.SyncProducer,
	topic string,
	logger *slog.Logger,
) *OrderEventPublisher {
	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_order_events"),
	}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("failed to marshal %s event: %w", e.Kind, err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic:     p.topic,
			Key:       sarama.StringEncoder(e.OrderID.String()),
			Value:     sarama.ByteEncoder(payload),
			Timestamp: e.OccurredAt,
		})
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		p.logger.ErrorContext(ctx, "failed to send order events", "topic", p.topic, "count", len(msgs), "error", err)
		return fmt.Errorf("failed to send order events: %w", err)
	}

	p.logger.DebugContext(ctx, "order events sent", "topic", p.topic, "count", len(msgs))
	return nil
}

func (p *OrderEventPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

func toMessage(e order.Event) orderEventMessage {
	msg := orderEventMessage{
		Kind:       string(e.Kind),
		OrderID:    e.OrderID.String(),
		To:         e.To.String(),
		OccurredAt: e.OccurredAt,
	}
	if e.Kind != order.EventOrderPlaced {
		msg.From = e.From.String()
	}
	if e.PartnerID != nil {
		msg.PartnerID = e.PartnerID.String()
	}
	if e.Refund != "" {
		msg.Refund = e.Refund.String()
	}
	return msg
}
