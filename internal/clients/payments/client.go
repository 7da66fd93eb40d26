// Package payments creates Stripe checkout links and charges saved cards.
package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"voice-bridge/internal/observability"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrCardDeclined  = errors.New("card declined")
)

// LinkRequest describes a one-off payment collected through a hosted page
type LinkRequest struct {
	AmountCents int64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// ChargeRequest charges a saved card without the customer present
type ChargeRequest struct {
	CustomerID      string
	PaymentMethodID string
	AmountCents     int64
	Currency        string
	Description     string
	IdempotencyKey  string
	Metadata        map[string]string
}

// stripeAPI is the subset of Stripe resources used by the client
type stripeAPI interface {
	NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	NewPaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeResources struct{}

func (stripeResources) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return checkoutsession.New(params)
}

func (stripeResources) NewPaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

type Client struct {
	api    stripeAPI
	logger *observability.Logger
}

func NewClient(secretKey string, logger *observability.Logger) *Client {
	stripe.Key = secretKey
	return &Client{api: stripeResources{}, logger: logger}
}

// DollarsToCents converts a dollar amount to whole cents
func DollarsToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreatePaymentLink opens a Checkout session and returns its hosted URL
func (c *Client) CreatePaymentLink(ctx context.Context, req LinkRequest) (string, error) {
	if req.AmountCents <= 0 {
		return "", ErrInvalidAmount
	}
	if req.Currency == "" {
		req.Currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
	}
	if req.CancelURL != "" {
		params.CancelURL = stripe.String(req.CancelURL)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sess, err := c.api.NewCheckoutSession(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create checkout session", err)
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}

// ChargeSavedCard confirms an off-session payment intent and returns its id
func (c *Client) ChargeSavedCard(ctx context.Context, req ChargeRequest) (string, error) {
	if req.AmountCents <= 0 {
		return "", ErrInvalidAmount
	}
	if req.Currency == "" {
		req.Currency = string(stripe.CurrencyUSD)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_customer_id", Value: req.CustomerID},
		observability.Field{Key: "amount_cents", Value: req.AmountCents},
	)

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(req.Currency),
		Customer:      stripe.String(req.CustomerID),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
		Description:   stripe.String(req.Description),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.Context = ctx

	pi, err := c.api.NewPaymentIntent(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			c.logger.Warn(ctx, fmt.Sprintf("card declined: %s", stripeErr.Msg))
			return "", fmt.Errorf("%w: %s", ErrCardDeclined, stripeErr.Msg)
		}
		c.logger.Error(ctx, "failed to create payment intent", err)
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("%w: payment intent status %s", ErrCardDeclined, pi.Status)
	}

	c.logger.Info(ctx, "saved card charged")
	return pi.ID, nil
}
