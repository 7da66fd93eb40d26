package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	billingProcessor "voice-bridge/internal/billing/processor"
	"voice-bridge/internal/jobs"
	"voice-bridge/internal/observability"

	"github.com/hibiken/asynq"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=billing_worker.go -destination=mocks_test.go -package=workers

// BillingJobs is the billing work run on a schedule
type BillingJobs interface {
	ChargePhoneNumberFees(ctx context.Context, month time.Time) (billingProcessor.FeeSummary, error)
	RunAutoRechargeSweep(ctx context.Context) (int, error)
}

// BillingWorker handles scheduled billing tasks
type BillingWorker struct {
	billing BillingJobs
	logger  *observability.Logger
	now     func() time.Time
}

// NewBillingWorker creates a new billing worker
func NewBillingWorker(billing BillingJobs, logger *observability.Logger) *BillingWorker {
	return &BillingWorker{
		billing: billing,
		logger:  logger,
		now:     time.Now,
	}
}

// ProcessPhoneNumberFeeTask charges the monthly fee for every active number
func (w *BillingWorker) ProcessPhoneNumberFeeTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.PhoneNumberFeeJobPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal phone number fee job payload", err)
			// A payload that cannot be decoded never will be
			return fmt.Errorf("failed to unmarshal phone number fee job payload: %w: %w", err, asynq.SkipRetry)
		}
	}
	month := payload.Month
	if month.IsZero() {
		month = w.now()
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "billing_month", Value: month.Format("2006-01")})
	summary, err := w.billing.ChargePhoneNumberFees(ctx, month)
	if err != nil {
		w.logger.Error(ctx, "failed to charge phone number fees", err)
		return fmt.Errorf("failed to charge phone number fees: %w", err)
	}

	w.logger.Metrics(ctx,
		observability.MetricField{Key: "phone_fees_charged", Value: summary.Charged},
		observability.MetricField{Key: "phone_fees_already_charged", Value: summary.AlreadyCharged},
		observability.MetricField{Key: "phone_fees_failed", Value: summary.Failed},
	)
	if summary.Failed > 0 {
		// Retrying only charges the numbers that failed
		return fmt.Errorf("failed to charge %d phone numbers", summary.Failed)
	}
	return nil
}

// ProcessAutoRechargeSweepTask recharges accounts below the threshold
func (w *BillingWorker) ProcessAutoRechargeSweepTask(ctx context.Context, task *asynq.Task) error {
	recharged, err := w.billing.RunAutoRechargeSweep(ctx)
	if err != nil {
		w.logger.Error(ctx, "auto-recharge sweep failed", err)
		return fmt.Errorf("auto-recharge sweep failed: %w", err)
	}
	w.logger.Metrics(ctx, observability.MetricField{Key: "accounts_recharged", Value: recharged})
	return nil
}
