package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"voice-bridge/internal/observability"
)

var (
	ErrPoolNotStarted   = errors.New("worker pool not started")
	ErrPoolShuttingDown = errors.New("worker pool is shutting down")
)

// ProcessingResult is reported to OnResult after each event.
type ProcessingResult struct {
	Event EventMessage
	Error error
}

type ResultCallback func(result ProcessingResult)

// WorkerPoolConfig holds configuration for the worker pool.
type WorkerPoolConfig struct {
	NumWorkers int
	// QueueSize bounds queued events; Submit blocks when it is full until
	// its ctx is done or the pool shuts down.
	QueueSize    int
	DrainTimeout time.Duration
	Retry        RetryPolicy
	OnResult     ResultCallback
}

// DefaultWorkerPoolConfig returns defaults sized for call finalization.
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		NumWorkers:   4,
		QueueSize:    256,
		DrainTimeout: 30 * time.Second,
		Retry:        DefaultRetryPolicy(),
	}
}

type pool struct {
	config    WorkerPoolConfig
	processor EventProcessor
	logger    *observability.Logger

	eventChan chan EventMessage
	// quit wakes submitters blocked on a full queue once shutdown begins
	quit       chan struct{}
	wg         sync.WaitGroup
	submitters sync.WaitGroup

	mu       sync.Mutex
	started  bool
	draining bool
	stopped  bool
	cancelFn context.CancelFunc
}

// NewWorkerPool creates a pool running processor over submitted events.
func NewWorkerPool(config WorkerPoolConfig, processor EventProcessor, logger *observability.Logger) WorkerPool {
	defaults := DefaultWorkerPoolConfig()
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

	return &pool{
		config:    config,
		processor: processor,
		logger:    logger,
		eventChan: make(chan EventMessage, config.QueueSize),
		quit:      make(chan struct{}),
	}
}

func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	if p.stopped {
		return ErrPoolShuttingDown
	}

	// Workers outlive the caller's context; only Stop cancels them
	workerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancelFn = cancel
	p.started = true

	for i := 0; i < p.config.NumWorkers; i++ {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}

	p.logger.Info(ctx, fmt.Sprintf("Started %d workers for %s processor",
		p.config.NumWorkers, p.processor.Name()))
	return nil
}

func (p *pool) Submit(ctx context.Context, event EventMessage) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return ErrPoolNotStarted
	}
	if p.draining || p.stopped {
		p.mu.Unlock()
		return ErrPoolShuttingDown
	}
	p.submitters.Add(1)
	p.mu.Unlock()
	defer p.submitters.Done()

	// Block until event can be queued, ctx is done or the pool shuts down
	select {
	case p.eventChan <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolShuttingDown
	}
}

func (p *pool) Drain(ctx context.Context) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return ErrPoolNotStarted
	}
	if p.draining || p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.draining = true
	close(p.quit)
	p.mu.Unlock()

	// Nothing sends once blocked submitters have returned
	p.submitters.Wait()
	close(p.eventChan)

	p.logger.Info(ctx, fmt.Sprintf("Draining %s worker pool with %d queued events",
		p.processor.Name(), len(p.eventChan)))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	drainCtx, cancel := context.WithTimeout(ctx, p.config.DrainTimeout)
	defer cancel()

	select {
	case <-done:
		p.logger.Info(ctx, fmt.Sprintf("Drained %s worker pool", p.processor.Name()))
		return nil
	case <-drainCtx.Done():
		p.logger.Warn(ctx, fmt.Sprintf("Drain timeout exceeded for %s processor, forcing shutdown",
			p.processor.Name()))
		p.Stop()
		return fmt.Errorf("drain timeout exceeded")
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true

	if p.cancelFn != nil {
		p.cancelFn()
	}
	if p.draining {
		return
	}
	close(p.quit)
	go func() {
		p.submitters.Wait()
		close(p.eventChan)
	}()
}

func (p *pool) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()

	workerCtx := observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: workerID},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-p.eventChan:
			if !ok {
				return
			}

			eventCtx := observability.WithFields(workerCtx,
				observability.Field{Key: "event_id", Value: event.ID},
				observability.Field{Key: "event_type", Value: event.Type},
				observability.Field{Key: "account_id", Value: event.AccountID},
				observability.Field{Key: "call_sid", Value: event.CallSid},
			)

			err := processWithRetry(eventCtx, p.processor, event, p.config.Retry, p.logger)
			if err != nil {
				p.logger.Error(eventCtx, "failed to process event", err)
			}

			if p.config.OnResult != nil {
				p.config.OnResult(ProcessingResult{Event: event, Error: err})
			}
		}
	}
}
