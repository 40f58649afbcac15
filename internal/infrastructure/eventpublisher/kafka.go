package eventpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/iho/goloan/internal/domain"
)

// messageWriter is the part of kafka-go's Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaConfig holds Kafka producer settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher publishes outbox events to a single Kafka topic, keyed by
// aggregate ID so every event for one payment lands on one partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher creates a KafkaPublisher backed by a kafka-go Writer.
func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	return newKafkaPublisher(&kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireAll,
	}, cfg.Topic)
}

func newKafkaPublisher(w messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic}
}

// Publish sends one event.
func (p *KafkaPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	msg, err := toKafkaMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("closing kafka writer: %w", err)
	}
	return nil
}

func toKafkaMessage(event *domain.OutboxEvent) (kafkago.Message, error) {
	value, err := json.Marshal(event.Payload)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("encode event %s: %w", event.ID, err)
	}

	return kafkago.Message{
		Key:   []byte(event.AggregateID),
		Value: value,
		Time:  event.CreatedAt,
		Headers: []kafkago.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}, nil
}
