package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopfront/internal/config"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Event types emitted by the order workflow.
const (
	TypeOrderCreated     = "order_created"
	TypePaymentProcessed = "payment_processed"
)

// OrderCreated is published after an order commits.
type OrderCreated struct {
	OrderID             int64   `json:"order_id"`
	OrderNumber         string  `json:"order_number"`
	TotalAmount         float64 `json:"total_amount"`
	AffiliateCode       string  `json:"affiliate_code,omitempty"`
	AffiliateCommission float64 `json:"affiliate_commission"`
	ItemCount           int     `json:"item_count"`
}

// PaymentProcessed is published after a payment attempt commits.
type PaymentProcessed struct {
	OrderID       int64   `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
}

type envelope struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Publisher emits workflow events. Publishing is best-effort; callers log
// failures and never fail the request over them.
type Publisher interface {
	PublishEvent(ctx context.Context, eventType, key string, payload any) error
	Close() error
}

// kafkaPublisher writes events to a single Kafka topic, keyed so events for
// one order stay on one partition.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewKafkaPublisher creates a Kafka-backed publisher from config.
func NewKafkaPublisher(cfg config.KafkaConfig, logger zerolog.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}

	logger = logger.With().Str("component", "kafka-publisher").Logger()
	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("kafka publisher created")

	return &kafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishEvent marshals the payload into an envelope and writes one message.
func (p *kafkaPublisher) PublishEvent(ctx context.Context, eventType, key string, payload any) error {
	data, err := json.Marshal(envelope{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("kafka: write message: %w", err)
	}

	p.logger.Debug().
		Str("event_type", eventType).
		Str("key", key).
		Msg("event published")

	return nil
}

// Close flushes and closes the underlying writer.
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// nopPublisher discards all events. Used when event publishing is disabled.
type nopPublisher struct{}

// NewNopPublisher creates a publisher that discards all events.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishEvent(ctx context.Context, eventType, key string, payload any) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}
