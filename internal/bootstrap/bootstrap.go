package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-bridge/internal/billing"
	billingHandler "voice-bridge/internal/billing/handler"
	billingProcessor "voice-bridge/internal/billing/processor"
	"voice-bridge/internal/callregistry"
	"voice-bridge/internal/callsession"
	"voice-bridge/internal/capabilities"
	"voice-bridge/internal/clients/calendar"
	kafkaClient "voice-bridge/internal/clients/kafka"
	"voice-bridge/internal/clients/mail"
	"voice-bridge/internal/clients/openai"
	"voice-bridge/internal/clients/payments"
	redisClient "voice-bridge/internal/clients/redis"
	"voice-bridge/internal/clients/telephony"
	"voice-bridge/internal/config"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"
	voiceCallHandler "voice-bridge/internal/voicecall/handler"
	"voice-bridge/internal/voicecall/streamtoken"
	"voice-bridge/internal/workers"
)

// streamTokenTTL covers the gap between answering the webhook and Twilio
// opening the media stream.
const streamTokenTTL = 2 * time.Minute

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	VoiceCallHandler voiceCallHandler.Handler
	// BillingHandler is nil when no Stripe webhook secret is configured
	BillingHandler *billingHandler.Handler

	// Live calls and the pool that settles them
	Sessions      *callsession.Factory
	FinalizerPool workers.WorkerPool

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	Redis         *redisClient.Client
}

// Clients are the external service clients shared by every binary
type Clients struct {
	Mail     *mail.ResendClient
	Payments *payments.Client
	Kafka    *kafkaClient.Producer
}

// NewClients connects the clients billing needs
func NewClients(cfg *config.Config, logger *observability.Logger) (Clients, error) {
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return Clients{}, fmt.Errorf("failed to create resend client: %w", err)
	}
	producer := kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: strings.Split(cfg.Kafka.Brokers, ","),
		Topic:   cfg.Kafka.Topic,
	}, logger)

	return Clients{
		Mail:     mailClient,
		Payments: payments.NewClient(cfg.Services.StripeSecretKey, logger),
		Kafka:    producer,
	}, nil
}

// NewBillingProcessor builds the billing processor from configuration
func NewBillingProcessor(cfg *config.Config, dataStore *store.Store, clients Clients, logger *observability.Logger) *billingProcessor.BillingProcessor {
	return billingProcessor.New(billingProcessor.Config{
		Rates: billing.Rates{
			CostPerMinute: cfg.Billing.CostPerMinute,
			Markup:        cfg.Billing.Markup,
		},
		AutoRechargeThreshold: cfg.Billing.AutoRechargeThreshold,
		AutoRechargeAmount:    cfg.Billing.AutoRechargeAmount,
		PhoneNumberMonthlyFee: cfg.Billing.PhoneNumberMonthlyFee,
		AlertFrom:             cfg.Services.DefaultEmailSender,
		AlertTo:               cfg.Billing.ReconciliationEmail,
		WebAppURI:             cfg.Services.WebAppURI,
	}, dataStore, clients.Payments, clients.Kafka, clients.Mail, logger)
}

// Initialize sets up all API server dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	clients, err := NewClients(cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.KafkaProducer = clients.Kafka

	telephonyClient, err := telephony.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create twilio client: %w", err)
	}

	realtimeClient, err := openai.NewRealtimeClient(openai.RealtimeConfig{
		APIKey: cfg.Realtime.APIKey,
		URL:    cfg.Realtime.URL,
		Model:  cfg.Realtime.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create realtime client: %w", err)
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	registry := callregistry.New(deps.Redis, logger)

	// Initialize billing: the processor settles calls on an in-process pool
	billingProc := NewBillingProcessor(cfg, &deps.Store, clients, logger)
	poolConfig := workers.DefaultWorkerPoolConfig()
	poolConfig.NumWorkers = cfg.WorkerPool.FinalizerWorkers
	deps.FinalizerPool = workers.NewWorkerPool(poolConfig, billingProc, logger)

	if cfg.Services.StripeWebhookSecret != "" {
		h := billingHandler.New(billingProc, cfg.Services.StripeWebhookSecret, logger)
		deps.BillingHandler = &h
	}

	// Initialize capabilities
	dispatcher, err := newDispatcher(ctx, cfg, &deps.Store, clients, telephonyClient, logger)
	if err != nil {
		return nil, err
	}

	// Initialize stream tokens
	var tokens *streamtoken.Issuer
	if cfg.Auth.StreamTokenSecret != "" {
		tokens, err = streamtoken.NewIssuer(cfg.Auth.StreamTokenSecret, streamTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create stream token issuer: %w", err)
		}
	} else {
		logger.Warn(ctx, "STREAM_TOKEN_SECRET not set, media streams are not authenticated")
	}

	// Initialize call sessions
	sessionDeps := callsession.Dependencies{
		Agents:    &deps.Store,
		Billing:   billingProc,
		Finalizer: billingProcessor.NewFinalizer(deps.FinalizerPool, billingProc),
		Dialer:    callsession.RealtimeDialer{Client: realtimeClient},
		Tools:     dispatcher,
		Control:   telephonyClient,
		Registry:  registry,
	}
	var minter voiceCallHandler.TokenMinter
	if tokens != nil {
		sessionDeps.Tokens = tokens
		minter = tokens
	}
	deps.Sessions = callsession.NewFactory(callsession.Config{
		VADThreshold:        cfg.Realtime.VADThreshold,
		PrefixPaddingMs:     cfg.Realtime.PrefixPaddingMs,
		SilenceDurationMs:   cfg.Realtime.SilenceDurationMs,
		DefaultVoice:        cfg.Realtime.DefaultVoice,
		DefaultInstructions: cfg.Realtime.DefaultInstructions,
		TranscriptionModel:  callsession.DefaultConfig().TranscriptionModel,
		ReconnectAttempts:   callsession.DefaultConfig().ReconnectAttempts,
	}, sessionDeps, logger)

	deps.VoiceCallHandler = voiceCallHandler.New(voiceCallHandler.Config{
		PublicHost:         cfg.Server.PublicHost,
		AuthToken:          cfg.Twilio.AuthToken,
		ValidateSignatures: cfg.Twilio.ValidateSignatures,
	}, &deps.Store, minter, deps.Sessions, logger)

	return deps, nil
}

// newDispatcher registers the built-in tools whose backends are configured
func newDispatcher(ctx context.Context, cfg *config.Config, dataStore *store.Store, clients Clients,
	sms *telephony.Client, logger *observability.Logger) (*capabilities.Dispatcher, error) {
	toolDeps := capabilities.Dependencies{
		SMS:         sms,
		Email:       clients.Mail,
		EmailFrom:   cfg.Services.DefaultEmailSender,
		Payments:    clients.Payments,
		PaymentsURL: cfg.Services.WebAppURI,
		Catalog:     dataStore,
		DefaultTZ:   cfg.Tools.DefaultTimezone,
	}

	calendarClient, err := calendar.NewClient(ctx, cfg.Tools.GoogleCredentialsJSON, logger)
	switch {
	case err == nil:
		toolDeps.Calendar = calendarClient
	case errors.Is(err, calendar.ErrNotConfigured):
		logger.Info(ctx, "calendar credentials not set, calendar tools disabled")
	default:
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}

	dispatcher := capabilities.NewDispatcher(cfg.Tools.Timeout, logger)
	if err := dispatcher.Register(capabilities.BuiltinTools(toolDeps)...); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	logger.Info(ctx, fmt.Sprintf("registered tools: %s", strings.Join(dispatcher.Names(), ", ")))
	return dispatcher, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
	d.Store.Close()
}
