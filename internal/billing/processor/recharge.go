package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-bridge/internal/billing"
	"voice-bridge/internal/clients/kafka"
	"voice-bridge/internal/clients/payments"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"

	"github.com/google/uuid"
)

// AutoRecharge tops up an account from its saved card. Accounts without
// auto-recharge enabled or without a saved card return ErrAutoRechargeSkipped.
func (p *BillingProcessor) AutoRecharge(ctx context.Context, accountID uuid.UUID) (store.CreditTransaction, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID})

	credits, err := p.store.GetAccountCredits(ctx, accountID)
	if err != nil {
		return store.CreditTransaction{}, fmt.Errorf("failed to load account credits: %w", err)
	}
	if !credits.AutoRechargeEnabled || credits.StripeCustomerID == "" || credits.StripePaymentMethodID == "" {
		return store.CreditTransaction{}, ErrAutoRechargeSkipped
	}
	if p.payments == nil || p.cfg.AutoRechargeAmount <= 0 {
		return store.CreditTransaction{}, ErrAutoRechargeSkipped
	}

	// One recharge per account per hour keeps retries from charging the card twice
	reference := fmt.Sprintf("%s:%s", accountID, time.Now().UTC().Format("2006-01-02T15"))
	paymentIntentID, err := p.payments.ChargeSavedCard(ctx, payments.ChargeRequest{
		CustomerID:      credits.StripeCustomerID,
		PaymentMethodID: credits.StripePaymentMethodID,
		AmountCents:     payments.DollarsToCents(p.cfg.AutoRechargeAmount),
		Description:     fmt.Sprintf("Auto-recharge: $%.2f credits", p.cfg.AutoRechargeAmount),
		IdempotencyKey:  "auto-recharge:" + reference,
		Metadata:        map[string]string{"account_id": accountID.String(), "purpose": "auto_recharge"},
	})
	if err != nil {
		p.logger.Error(ctx, "auto-recharge charge failed", err)
		return store.CreditTransaction{}, fmt.Errorf("failed to charge saved card: %w", err)
	}

	entry, err := p.store.ApplyCreditTransaction(ctx, store.CreditTransactionParams{
		AccountID:   accountID,
		Amount:      p.cfg.AutoRechargeAmount,
		Type:        store.CreditTransactionTypeAutoRecharge,
		Description: fmt.Sprintf("Auto-recharge via %s", paymentIntentID),
		Reference:   reference,
	})
	if err != nil && !errors.Is(err, store.ErrAlreadyRecorded) {
		p.logger.Error(ctx, "failed to credit auto-recharge", err)
		return store.CreditTransaction{}, fmt.Errorf("failed to credit auto-recharge: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("auto-recharged $%.2f", p.cfg.AutoRechargeAmount))
	p.publish(ctx, kafka.EventCreditsRecharged, billing.CallRecord{AccountID: accountID}, entry)
	return entry, nil
}

// RunAutoRechargeSweep recharges every enabled account under the threshold.
// It returns the number of accounts recharged.
func (p *BillingProcessor) RunAutoRechargeSweep(ctx context.Context) (int, error) {
	candidates, err := p.store.ListAutoRechargeCandidates(ctx, p.cfg.AutoRechargeThreshold)
	if err != nil {
		return 0, fmt.Errorf("failed to list auto-recharge candidates: %w", err)
	}

	recharged := 0
	for _, account := range candidates {
		if _, err := p.AutoRecharge(ctx, account.AccountID); err != nil {
			if !errors.Is(err, ErrAutoRechargeSkipped) {
				p.logger.Error(observability.WithFields(ctx,
					observability.Field{Key: "account_id", Value: account.AccountID}), "sweep recharge failed", err)
			}
			continue
		}
		recharged++
	}

	p.logger.Info(ctx, fmt.Sprintf("auto-recharge sweep recharged %d of %d accounts", recharged, len(candidates)))
	return recharged, nil
}
