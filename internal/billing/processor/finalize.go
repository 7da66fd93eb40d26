package processor

import (
	"context"
	"errors"
	"fmt"

	"voice-bridge/internal/billing"
	"voice-bridge/internal/clients/kafka"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"
)

// FinalizeResult is the outcome of settling one call
type FinalizeResult struct {
	Quote        billing.Quote
	BalanceAfter float64
	Charged      bool
	Recharged    bool
}

// Finalize prices a finished call, debits the prepaid balance, and records
// usage. It is idempotent per call sid so redelivered events never charge twice.
func (p *BillingProcessor) Finalize(ctx context.Context, rec billing.CallRecord) (FinalizeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: rec.CallSid},
		observability.Field{Key: "account_id", Value: rec.AccountID},
	)

	quote := p.cfg.Rates.Quote(rec.DurationSeconds())
	result := FinalizeResult{Quote: quote}

	if rec.Status != store.CallStatusCompleted {
		// Declined and failed calls are metered but never charged
		if err := p.recordUsage(ctx, rec, billing.Quote{DurationSeconds: quote.DurationSeconds}, rec.Status); err != nil {
			return result, err
		}
		return result, nil
	}

	if quote.Charge > 0 {
		entry, err := p.charge(ctx, rec, quote)
		switch {
		case err == nil:
			result.Charged = true
			result.BalanceAfter = entry.BalanceAfter
		case errors.Is(err, store.ErrAlreadyRecorded):
			p.logger.Info(ctx, "call already charged, skipping ledger entry")
			result.Charged = true
		case errors.Is(err, store.ErrInsufficientFunds):
			// One auto-recharge attempt before giving up on the charge
			if _, rerr := p.AutoRecharge(ctx, rec.AccountID); rerr == nil {
				result.Recharged = true
				entry, err = p.charge(ctx, rec, quote)
			}
			if err != nil && !errors.Is(err, store.ErrAlreadyRecorded) {
				return result, p.pendingSettlement(ctx, rec, quote, err)
			}
			result.Charged = true
			result.BalanceAfter = entry.BalanceAfter
		default:
			return result, p.pendingSettlement(ctx, rec, quote, err)
		}
	}

	if err := p.recordUsage(ctx, rec, quote, store.CallStatusCompleted); err != nil {
		return result, fmt.Errorf("%w: %v", ErrFinalization, err)
	}

	p.logger.Metrics(ctx,
		observability.MetricField{Key: "call_duration_seconds", Value: quote.DurationSeconds},
		observability.MetricField{Key: "call_charge_usd", Value: quote.Charge},
		observability.MetricField{Key: "call_cost_usd", Value: quote.Cost},
		observability.MetricField{Key: "balance_after", Value: result.BalanceAfter},
	)

	p.publish(ctx, kafka.EventCallCompleted, rec, quote)

	if result.Charged && !result.Recharged && result.BalanceAfter > 0 && result.BalanceAfter < p.cfg.AutoRechargeThreshold {
		if _, err := p.AutoRecharge(ctx, rec.AccountID); err == nil {
			result.Recharged = true
		} else if !errors.Is(err, ErrAutoRechargeSkipped) {
			p.logger.Error(ctx, "auto-recharge after call failed", err)
		}
	}

	return result, nil
}

func (p *BillingProcessor) charge(ctx context.Context, rec billing.CallRecord, quote billing.Quote) (store.CreditTransaction, error) {
	return p.store.ApplyCreditTransaction(ctx, store.CreditTransactionParams{
		AccountID:   rec.AccountID,
		Amount:      -quote.Charge,
		Type:        store.CreditTransactionTypeCallCharge,
		Description: fmt.Sprintf("Call %s (%ds)", rec.CallSid, quote.DurationSeconds),
		Reference:   rec.CallSid,
	})
}

// pendingSettlement records the usage as unsettled so the reconciler can retry
func (p *BillingProcessor) pendingSettlement(ctx context.Context, rec billing.CallRecord, quote billing.Quote, cause error) error {
	p.logger.Error(ctx, "failed to charge call", cause)
	if err := p.recordUsage(ctx, rec, quote, store.CallStatusPendingSettlement); err != nil {
		p.logger.Error(ctx, "failed to record unsettled usage", err)
	}
	return fmt.Errorf("%w: %v", ErrFinalization, cause)
}

func (p *BillingProcessor) recordUsage(ctx context.Context, rec billing.CallRecord, quote billing.Quote, status store.CallStatus) error {
	_, err := p.store.RecordCallUsage(ctx, store.CallUsage{
		AccountID:       rec.AccountID,
		AgentID:         rec.AgentID,
		CallSid:         rec.CallSid,
		DurationSeconds: quote.DurationSeconds,
		CostUSD:         quote.Cost,
		RevenueUSD:      quote.Charge,
		ProfitUSD:       quote.Profit,
		InboundAudioMs:  rec.InboundAudioMs,
		OutboundAudioMs: rec.OutboundAudioMs,
		ToolCalls:       rec.ToolCalls,
		Status:          status,
		StartedAt:       rec.StartedAt,
		EndedAt:         rec.EndedAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record call usage", err)
		return fmt.Errorf("failed to record call usage: %w", err)
	}
	return nil
}

func (p *BillingProcessor) publish(ctx context.Context, eventType string, rec billing.CallRecord, data any) {
	if p.publisher == nil {
		return
	}
	event, err := kafka.NewEventMessage(eventType, rec.AccountID.String(), rec.CallSid, data)
	if err != nil {
		p.logger.Error(ctx, "failed to build event", err)
		return
	}
	if err := p.publisher.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, fmt.Sprintf("failed to publish %s", eventType), err)
	}
}
