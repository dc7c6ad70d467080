// Package kafka publishes resolution lifecycle events. Publishing is
// best-effort: a broker outage must never fail a lookup, so all errors
// are logged and swallowed at the call site boundary.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
)

// EventEnvelope is the uniform wire format for every published event.
type EventEnvelope struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Publisher emits resolution events. The nop implementation is used when
// no brokers are configured.
type Publisher interface {
	// Publish marshals payload into an EventEnvelope and writes it to
	// topic, keyed by key for partition affinity.
	Publish(ctx context.Context, topic, key string, payload interface{}) error

	Close() error
}

type producer struct {
	writer *kafkago.Writer
	logger logging.Logger
}

// NewProducer constructs a kafka-backed Publisher from cfg. RequireOne
// acknowledgement balances durability against lookup latency.
func NewProducer(cfg config.KafkaConfig, logger logging.Logger) Publisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Balancer:     &kafkago.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafkago.RequireOne,
		Async:        true,
	}
	return &producer{writer: writer, logger: logger.Named("kafka")}
}

func (p *producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	envelope := EventEnvelope{
		EventID:   uuid.NewString(),
		EventType: topic,
		Source:    "courtdata",
		Timestamp: time.Now().UTC(),
		Payload:   body,
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		p.logger.Warn("event publish failed",
			logging.String("topic", topic),
			logging.Err(err))
		return err
	}
	return nil
}

func (p *producer) Close() error { return p.writer.Close() }

type nopPublisher struct{}

func (nopPublisher) Publish(_ context.Context, _, _ string, _ interface{}) error { return nil }
func (nopPublisher) Close() error                                                { return nil }

// NewNopPublisher returns a Publisher that discards every event. Used
// when kafka is not configured and in tests.
func NewNopPublisher() Publisher { return nopPublisher{} }
