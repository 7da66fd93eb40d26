package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"voice-bridge/internal/observability"

	kafkago "github.com/segmentio/kafka-go"
)

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	Brokers       []string
	ConsumerGroup string
	Topic         string
	NumWorkers    int
	QueueSize     int
	// DrainTimeout bounds how long Stop waits for in-flight events.
	DrainTimeout time.Duration
	Retry        RetryPolicy
}

// DefaultConsumerConfig returns defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:       brokers,
		ConsumerGroup: consumerGroup,
		Topic:         topic,
		NumWorkers:    4,
		QueueSize:     100,
		DrainTimeout:  30 * time.Second,
		Retry:         DefaultRetryPolicy(),
	}
}

// messageCommitter commits consumed offsets. Satisfied by *kafkago.Reader.
type messageCommitter interface {
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// eventWithMsg pairs an event with its Kafka message for offset tracking.
type eventWithMsg struct {
	event EventMessage
	msg   kafkago.Message
}

type consumer struct {
	config    ConsumerConfig
	reader    *kafkago.Reader
	committer messageCommitter
	processor EventProcessor
	logger    *observability.Logger

	eventCh chan eventWithMsg

	cancelFetch context.CancelFunc
	doneCh      chan struct{}
	stopping    atomic.Bool
	stopOnce    sync.Once
}

// NewConsumer creates a Kafka consumer feeding processor from a worker pool.
func NewConsumer(config ConsumerConfig, processor EventProcessor, logger *observability.Logger) EventConsumer {
	defaults := DefaultConsumerConfig(config.Brokers, config.ConsumerGroup, config.Topic)
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}
	if config.Retry.MaxAttempts <= 0 {
		config.Retry = defaults.Retry
	}

	c := &consumer{
		config:    config,
		processor: processor,
		logger:    logger,
		eventCh:   make(chan eventWithMsg, config.QueueSize),
		doneCh:    make(chan struct{}),
	}

	c.reader = kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        500 * time.Millisecond,
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0,
	})
	c.committer = c.reader

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "processor", Value: processor.Name()},
		observability.Field{Key: "consumer_group", Value: config.ConsumerGroup},
		observability.Field{Key: "topic", Value: config.Topic},
	)
	logger.Info(ctx, fmt.Sprintf("Initialized consumer for %s processor", processor.Name()))

	return c
}

func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancelFetch = cancel
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)

	c.logger.Info(ctx, fmt.Sprintf("Starting consumer for %s with %d workers",
		c.processor.Name(), c.config.NumWorkers))

	var workerWg sync.WaitGroup
	for i := 0; i < c.config.NumWorkers; i++ {
		workerWg.Add(1)
		go c.worker(&workerWg, i, ctx)
	}

	c.fetchLoop(ctx)
	close(c.eventCh)

	done := make(chan struct{})
	go func() {
		workerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info(ctx, "All workers finished processing")
	case <-time.After(c.config.DrainTimeout):
		c.logger.Warn(ctx, "Drain timeout - some events may not have completed")
	}

	if err := c.reader.Close(); err != nil {
		c.logger.Error(ctx, "Failed to close Kafka reader", err)
	}
	c.logger.Info(ctx, fmt.Sprintf("Consumer stopped for %s", c.processor.Name()))
	return nil
}

func (c *consumer) fetchLoop(ctx context.Context) {
	for !c.stopping.Load() {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "Failed to fetch message from Kafka", err)
			time.Sleep(time.Second)
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error(ctx, "Failed to unmarshal event, skipping", err)
			_ = c.committer.CommitMessages(ctx, msg)
			continue
		}

		select {
		case c.eventCh <- eventWithMsg{event: event, msg: msg}:
		case <-ctx.Done():
			return
		}
	}
}

// worker processes events until the channel is closed. Successful events are
// committed; failed ones stay uncommitted for redelivery after a restart.
func (c *consumer) worker(wg *sync.WaitGroup, id int, ctx context.Context) {
	defer wg.Done()

	ctx = observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: id})

	for e := range c.eventCh {
		eventCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_id", Value: e.event.ID},
			observability.Field{Key: "event_type", Value: e.event.Type},
			observability.Field{Key: "call_sid", Value: e.event.CallSid},
		)

		// In-flight events finish even while stopping
		err := processWithRetry(context.WithoutCancel(eventCtx), c.processor, e.event, c.config.Retry, c.logger)
		if err != nil {
			c.logger.Error(eventCtx, "Failed to process event", err)
			continue
		}
		if c.committer != nil {
			if commitErr := c.committer.CommitMessages(context.Background(), e.msg); commitErr != nil {
				c.logger.Error(eventCtx, "Failed to commit offset", commitErr)
			}
		}
	}
}

// Stop signals the fetch loop, waits for in-flight events, and returns after
// full shutdown.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		c.logger.Info(context.Background(), fmt.Sprintf("Stopping consumer for %s", c.processor.Name()))
		c.stopping.Store(true)
		if c.cancelFetch != nil {
			c.cancelFetch()
		}
		<-c.doneCh
	})
}
