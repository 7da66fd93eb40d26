package processor

import (
	"context"
	"fmt"
	"time"

	"voice-bridge/internal/billing"
	"voice-bridge/internal/clients/kafka"
	"voice-bridge/internal/workers"
)

// reconcileTimeout bounds the fallback publish when the pool refuses a call
const reconcileTimeout = 10 * time.Second

// Reconciler settles calls the finalizer pool could not accept
type Reconciler interface {
	RequestReconciliation(ctx context.Context, rec billing.CallRecord, cause error)
}

// Finalizer queues finished calls for settlement on a worker pool so call
// teardown never waits on the ledger.
type Finalizer struct {
	pool       workers.WorkerPool
	reconciler Reconciler
}

func NewFinalizer(pool workers.WorkerPool, reconciler Reconciler) *Finalizer {
	return &Finalizer{pool: pool, reconciler: reconciler}
}

// Submit enqueues a call.ended event for the record. When the pool is full
// or shutting down the call is handed to reconciliation instead.
func (f *Finalizer) Submit(ctx context.Context, rec billing.CallRecord) error {
	event, err := kafka.NewEventMessage(kafka.EventCallEnded, rec.AccountID.String(), rec.CallSid, rec)
	if err != nil {
		return err
	}
	if err := f.pool.Submit(ctx, event); err != nil {
		err = fmt.Errorf("failed to queue call finalization: %w", err)
		if f.reconciler != nil {
			// ctx may be the expired submit deadline
			rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reconcileTimeout)
			defer cancel()
			f.reconciler.RequestReconciliation(rctx, rec, err)
		}
		return err
	}
	return nil
}
