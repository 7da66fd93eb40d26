package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voice-bridge/internal/observability"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Call lifecycle event types
const (
	EventCallEnded                     = "call.ended"
	EventCallCompleted                 = "call.completed"
	EventBillingReconciliationRequired = "billing.reconciliation_required"
	EventCreditsRecharged              = "billing.credits_recharged"
)

// Producer handles publishing events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr: kafka.TCP(config.Brokers...),
		// Keyed by call sid so every event of a call lands on one partition
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		Async:        false,
		Compression:  kafka.Snappy,
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage represents an event message structure
type EventMessage struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	AccountID string          `json:"account_id"`
	CallSid   string          `json:"call_sid,omitempty"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// NewEventMessage builds an event with a fresh id and JSON encoded payload
func NewEventMessage(eventType, accountID, callSid string, data any) (EventMessage, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return EventMessage{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		AccountID: accountID,
		CallSid:   callSid,
		Data:      payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}

// DecodeData unmarshals the event payload into v
func (e EventMessage) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("event %s has no payload", e.ID)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
	}
	return nil
}

func (e EventMessage) partitionKey() []byte {
	if e.CallSid != "" {
		return []byte(e.CallSid)
	}
	return []byte(e.AccountID)
}

// PublishEvent publishes an event to Kafka
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "call_sid", Value: event.CallSid},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   event.partitionKey(),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "account_id", Value: []byte(event.AccountID)},
		},
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
