package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"
)

// FeeSummary reports the outcome of a phone number fee run
type FeeSummary struct {
	Charged        int
	AlreadyCharged int
	Failed         int
}

// ChargePhoneNumberFees debits the monthly fee for every active agent number.
// Each number is charged at most once per month.
func (p *BillingProcessor) ChargePhoneNumberFees(ctx context.Context, month time.Time) (FeeSummary, error) {
	var summary FeeSummary
	if p.cfg.PhoneNumberMonthlyFee <= 0 {
		return summary, nil
	}

	agents, err := p.store.ListActiveAgents(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list active agents: %w", err)
	}

	period := month.UTC().Format("2006-01")
	for _, agent := range agents {
		agentCtx := observability.WithFields(ctx,
			observability.Field{Key: "account_id", Value: agent.AccountID},
			observability.Field{Key: "agent_id", Value: agent.ID},
			observability.Field{Key: "phone_number", Value: agent.PhoneNumber},
		)

		_, err := p.store.ApplyCreditTransaction(agentCtx, store.CreditTransactionParams{
			AccountID:   agent.AccountID,
			Amount:      -p.cfg.PhoneNumberMonthlyFee,
			Type:        store.CreditTransactionTypePhoneFee,
			Description: fmt.Sprintf("Phone number %s for %s", agent.PhoneNumber, period),
			Reference:   fmt.Sprintf("%s:%s", agent.ID, period),
		})
		switch {
		case err == nil:
			summary.Charged++
		case errors.Is(err, store.ErrAlreadyRecorded):
			summary.AlreadyCharged++
		default:
			summary.Failed++
			p.logger.Error(agentCtx, "failed to charge phone number fee", err)
		}
	}

	p.logger.Info(ctx, fmt.Sprintf("phone number fees for %s: %d charged, %d already charged, %d failed",
		period, summary.Charged, summary.AlreadyCharged, summary.Failed))
	return summary, nil
}
