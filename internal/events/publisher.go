package events

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher is the outbound event port of the application services.
type Publisher interface {
	// PublishEvent delivers a CloudEvent to the given topic.
	PublishEvent(ctx context.Context, topic string, event CloudEvent) error

	// Close releases the underlying transport.
	Close() error
}

// KafkaPublisher publishes CloudEvents with a shared kafka-go writer.
type KafkaPublisher struct {
	writer *kafkago.Writer
	log    *zap.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers.
func NewKafkaPublisher(brokers []string, log *zap.Logger) *KafkaPublisher {
	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer, log: log}
}

// PublishEvent writes the event to the topic, keyed by the event id so
// ordering is stable per event stream.
func (p *KafkaPublisher) PublishEvent(ctx context.Context, topic string, event CloudEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(event.ID),
		Value: value,
	})
	if err != nil {
		return err
	}
	p.log.Debug("event published",
		zap.String("topic", topic),
		zap.String("type", event.Type),
	)
	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event. It is wired when no brokers are
// configured.
type NopPublisher struct{}

// PublishEvent discards the event.
func (NopPublisher) PublishEvent(context.Context, string, CloudEvent) error { return nil }

// Close is a no-op.
func (NopPublisher) Close() error { return nil }
