package workers

import (
	"context"

	kafka "voice-bridge/internal/clients/kafka"
)

// EventMessage is an alias for the Kafka event message type so processors do
// not import the Kafka client directly.
type EventMessage = kafka.EventMessage

// EventProcessor handles call and billing events. Implementations must be
// idempotent because events are redelivered when Process fails.
type EventProcessor interface {
	Process(ctx context.Context, event EventMessage) error
	Name() string
}

// EventConsumer reads events from Kafka and fans them out to workers.
type EventConsumer interface {
	// Start blocks until Stop is called.
	Start(ctx context.Context) error
	// Stop drains in-flight events and returns after shutdown.
	Stop()
}

// WorkerPool runs an EventProcessor over events submitted in-process.
type WorkerPool interface {
	Start(ctx context.Context) error
	// Submit blocks while the queue is full until ctx is done or the pool
	// starts shutting down.
	Submit(ctx context.Context, event EventMessage) error
	// Drain stops accepting events and waits for queued ones to finish.
	Drain(ctx context.Context) error
	Stop()
}
