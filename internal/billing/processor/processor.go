package processor

import (
	"context"
	"errors"
	"fmt"

	"voice-bridge/internal/billing"
	"voice-bridge/internal/clients/kafka"
	"voice-bridge/internal/clients/payments"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrFinalization        = errors.New("billing finalization failed")
	ErrAutoRechargeSkipped = errors.New("auto-recharge not configured for account")
)

// BillingStore is the persistence used by billing
type BillingStore interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (float64, error)
	GetAccountCredits(ctx context.Context, accountID uuid.UUID) (store.AccountCredits, error)
	ApplyCreditTransaction(ctx context.Context, params store.CreditTransactionParams) (store.CreditTransaction, error)
	HasCreditTransaction(ctx context.Context, txType store.CreditTransactionType, reference string) (bool, error)
	ListAutoRechargeCandidates(ctx context.Context, threshold float64) ([]store.AccountCredits, error)
	RecordCallUsage(ctx context.Context, usage store.CallUsage) (store.CallUsage, error)
	ListActiveAgents(ctx context.Context) ([]store.Agent, error)
}

// PaymentGateway charges saved cards and creates top-up links
type PaymentGateway interface {
	ChargeSavedCard(ctx context.Context, req payments.ChargeRequest) (string, error)
	CreatePaymentLink(ctx context.Context, req payments.LinkRequest) (string, error)
}

// EventPublisher publishes billing events
type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// AlertSender emails operators about billing problems
type AlertSender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// Config holds the billing rules
type Config struct {
	Rates                 billing.Rates
	AutoRechargeThreshold float64
	AutoRechargeAmount    float64
	PhoneNumberMonthlyFee float64
	AlertFrom             string
	AlertTo               string
	// WebAppURI is where customers land after buying credits
	WebAppURI string
}

type BillingProcessor struct {
	cfg       Config
	store     BillingStore
	payments  PaymentGateway
	publisher EventPublisher
	alerts    AlertSender
	logger    *observability.Logger
}

func New(cfg Config, store BillingStore, payments PaymentGateway, publisher EventPublisher,
	alerts AlertSender, logger *observability.Logger) *BillingProcessor {
	return &BillingProcessor{
		cfg:       cfg,
		store:     store,
		payments:  payments,
		publisher: publisher,
		alerts:    alerts,
		logger:    logger,
	}
}

// CheckBalance returns the prepaid balance, failing with ErrInsufficientBalance
// when it is zero or negative.
func (p *BillingProcessor) CheckBalance(ctx context.Context, accountID uuid.UUID) (float64, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID})

	balance, err := p.store.GetBalance(ctx, accountID)
	if err != nil {
		p.logger.Error(ctx, "failed to get balance", err)
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance <= 0 {
		p.logger.Info(ctx, fmt.Sprintf("balance %.4f too low to take call", balance))
		return balance, ErrInsufficientBalance
	}
	return balance, nil
}
