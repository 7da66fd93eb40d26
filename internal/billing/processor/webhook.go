package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"voice-bridge/internal/billing"
	"voice-bridge/internal/clients/kafka"
	"voice-bridge/internal/clients/payments"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
)

const purposeCreditPurchase = "credit_purchase"

// HandleWebhook applies Stripe events that move money into an account.
// Events it does not care about are acknowledged and ignored.
func (p *BillingProcessor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_event_id", Value: event.ID},
		observability.Field{Key: "stripe_event_type", Value: string(event.Type)},
	)

	switch event.Type {
	case "checkout.session.completed":
		if event.Data == nil {
			return fmt.Errorf("checkout event %s has no data", event.ID)
		}
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			p.logger.Error(ctx, "failed to unmarshal checkout session", err)
			return err
		}
		return p.CreditCheckoutSession(ctx, session)
	default:
		p.logger.Debug(ctx, "ignoring stripe event")
		return nil
	}
}

// CreditCheckoutSession credits a paid credit-purchase checkout to its
// account. The session id is the ledger reference so redelivery is harmless.
func (p *BillingProcessor) CreditCheckoutSession(ctx context.Context, session stripe.CheckoutSession) error {
	if session.Metadata["purpose"] != purposeCreditPurchase {
		return nil
	}
	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		p.logger.Info(ctx, fmt.Sprintf("checkout session %s not paid yet", session.ID))
		return nil
	}

	accountID, err := uuid.Parse(session.Metadata["account_id"])
	if err != nil {
		// Retrying cannot fix a bad account id
		p.logger.Error(ctx, "checkout session has invalid account_id", err)
		return nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID})

	amount := store.RoundMoney(float64(session.AmountTotal) / 100)
	entry, err := p.store.ApplyCreditTransaction(ctx, store.CreditTransactionParams{
		AccountID:   accountID,
		Amount:      amount,
		Type:        store.CreditTransactionTypePurchase,
		Description: fmt.Sprintf("Credit purchase $%.2f", amount),
		Reference:   session.ID,
	})
	switch {
	case errors.Is(err, store.ErrAlreadyRecorded):
		p.logger.Info(ctx, "checkout session already credited")
		return nil
	case err != nil:
		p.logger.Error(ctx, "failed to credit purchase", err)
		return fmt.Errorf("failed to credit purchase: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("credited $%.2f, balance now $%.4f", amount, entry.BalanceAfter))
	p.publish(ctx, kafka.EventCreditsRecharged, billing.CallRecord{AccountID: accountID}, entry)
	return nil
}

// NotifyDeclined emails the agent owner a top-up link after a call was
// refused for lack of balance.
func (p *BillingProcessor) NotifyDeclined(ctx context.Context, agent store.Agent, callSid string) error {
	if agent.NotifyEmail == "" || p.payments == nil || p.alerts == nil || p.cfg.AutoRechargeAmount <= 0 {
		return nil
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: agent.AccountID},
		observability.Field{Key: "agent_id", Value: agent.ID},
	)

	link, err := p.payments.CreatePaymentLink(ctx, payments.LinkRequest{
		AmountCents: payments.DollarsToCents(p.cfg.AutoRechargeAmount),
		Description: fmt.Sprintf("Voice agent credits for %s", agent.PhoneNumber),
		SuccessURL:  p.cfg.WebAppURI + "/billing?topup=success",
		CancelURL:   p.cfg.WebAppURI + "/billing?topup=cancelled",
		Metadata: map[string]string{
			"purpose":    purposeCreditPurchase,
			"account_id": agent.AccountID.String(),
		},
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create top-up link", err)
		return fmt.Errorf("failed to create top-up link: %w", err)
	}

	subject := fmt.Sprintf("A call to %s was declined: balance empty", agent.PhoneNumber)
	body := fmt.Sprintf(
		"<p>Your agent <b>%s</b> could not answer call %s because your prepaid balance is empty.</p>"+
			"<p><a href=\"%s\">Add $%.2f in credits</a></p>",
		agent.Name, callSid, link, p.cfg.AutoRechargeAmount)
	if _, err := p.alerts.SendEmail(ctx, p.cfg.AlertFrom, agent.NotifyEmail, subject, body); err != nil {
		p.logger.Error(ctx, "failed to send top-up email", err)
		return fmt.Errorf("failed to send top-up email: %w", err)
	}
	return nil
}
