package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic keyed by order id
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return &kafkaPublisher{writer: writer, logger: logger}
}

// PublishOrderPlaced writes the event with the order id as message key
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	attributes := orderAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	msg := kafka.Message{
		Key:     []byte(event.OrderID),
		Value:   value,
		Headers: headers,
		Time:    time.UnixMilli(event.CreatedAt),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to write message to kafka")
	}

	p.logger.Info("[Kafka] Order event published", slog.String("order_id", event.OrderID))

	return nil
}

// Close flushes pending writes and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
