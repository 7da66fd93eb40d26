package capabilities

import (
	"context"
	"encoding/json"
	"fmt"

	"voice-bridge/internal/clients/payments"
)

type paymentToolset struct {
	links     PaymentLinks
	sms       SMSSender
	returnURL string
}

type paymentLinkArgs struct {
	Amount      float64 `json:"amount" validate:"required,gt=0,lte=10000"`
	Description string  `json:"description" validate:"required,max=250"`
}

func paymentTools(links PaymentLinks, sms SMSSender, returnURL string) []Tool {
	t := &paymentToolset{links: links, sms: sms, returnURL: returnURL}
	return []Tool{{
		Name: "send_payment_link",
		Description: "Text the caller a secure card payment link. Never ask for card numbers over the phone; " +
			"use this instead.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"amount":      map[string]any{"type": "number", "description": "Amount in US dollars"},
				"description": map[string]any{"type": "string", "description": "What the caller is paying for"},
			},
			"required": []string{"amount", "description"},
		},
		Handler: t.sendPaymentLink,
	}}
}

func (t *paymentToolset) sendPaymentLink(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[paymentLinkArgs](raw)
	if err != nil {
		return nil, err
	}
	if call.CallerNumber == "" {
		return nil, errNoRecipient
	}

	url, err := t.links.CreatePaymentLink(ctx, payments.LinkRequest{
		AmountCents: payments.DollarsToCents(args.Amount),
		Description: args.Description,
		SuccessURL:  t.returnURL + "/payment/success",
		CancelURL:   t.returnURL + "/payment/cancelled",
		Metadata: map[string]string{
			"purpose":    "caller_payment",
			"account_id": call.AccountID.String(),
			"agent_id":   call.AgentID.String(),
			"call_sid":   call.CallSid,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	body := fmt.Sprintf("Pay $%.2f for %s: %s", args.Amount, args.Description, url)
	if _, err := t.sms.SendSMS(ctx, call.DialedNumber, call.CallerNumber, body); err != nil {
		return nil, fmt.Errorf("failed to text payment link: %w", err)
	}
	return map[string]any{
		"sent":    true,
		"message": fmt.Sprintf("A payment link for $%.2f was texted to the caller", args.Amount),
	}, nil
}
