package processor

import (
	"context"
	"fmt"

	"voice-bridge/internal/billing"
	"voice-bridge/internal/clients/kafka"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/workers"
)

// Process settles call lifecycle events. It implements workers.EventProcessor.
func (p *BillingProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	switch event.Type {
	case kafka.EventCallEnded:
		var rec billing.CallRecord
		if err := event.DecodeData(&rec); err != nil {
			// Undecodable payloads can never succeed, so do not redeliver
			p.logger.Error(ctx, "dropping malformed call event", err)
			return nil
		}
		if _, err := p.Finalize(ctx, rec); err != nil {
			p.RequestReconciliation(ctx, rec, err)
		}
		return nil

	case kafka.EventBillingReconciliationRequired:
		var rec billing.CallRecord
		if err := event.DecodeData(&rec); err != nil {
			p.logger.Error(ctx, "dropping malformed reconciliation event", err)
			return nil
		}
		if _, err := p.Finalize(ctx, rec); err != nil {
			return fmt.Errorf("failed to reconcile call %s: %w", rec.CallSid, err)
		}
		p.logger.Info(ctx, "call reconciled")
		return nil

	case kafka.EventCallCompleted:
		var quote billing.Quote
		if err := event.DecodeData(&quote); err != nil {
			p.logger.Warn(ctx, fmt.Sprintf("failed to decode call completion: %v", err))
			return nil
		}
		p.logger.Metrics(ctx,
			observability.MetricField{Key: "completed_call_seconds", Value: quote.DurationSeconds},
			observability.MetricField{Key: "completed_call_revenue_usd", Value: quote.Charge},
			observability.MetricField{Key: "completed_call_profit_usd", Value: quote.Profit},
		)
		return nil

	default:
		p.logger.Debug(ctx, fmt.Sprintf("ignoring event type %s", event.Type))
		return nil
	}
}

// Name identifies the processor in worker logs
func (p *BillingProcessor) Name() string {
	return "billing"
}

// RequestReconciliation hands a failed finalization to the reconciler and
// alerts operators.
func (p *BillingProcessor) RequestReconciliation(ctx context.Context, rec billing.CallRecord, cause error) {
	p.logger.Error(ctx, "call finalization failed, requesting reconciliation", cause)
	p.publish(ctx, kafka.EventBillingReconciliationRequired, rec, rec)

	if p.alerts == nil || p.cfg.AlertTo == "" {
		return
	}
	subject := fmt.Sprintf("Billing reconciliation required for call %s", rec.CallSid)
	body := fmt.Sprintf(
		"<p>Call <b>%s</b> for account %s could not be settled.</p><p>Duration: %ds</p><p>Error: %s</p>",
		rec.CallSid, rec.AccountID, rec.DurationSeconds(), cause.Error())
	if _, err := p.alerts.SendEmail(ctx, p.cfg.AlertFrom, p.cfg.AlertTo, subject, body); err != nil {
		p.logger.Error(ctx, "failed to send reconciliation alert", err)
	}
}
