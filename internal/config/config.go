package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Realtime   RealtimeConfig
	Twilio     TwilioConfig
	Billing    BillingConfig
	Tools      ToolsConfig
	Services   ServicesConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	Auth       AuthConfig
	WorkerPool WorkerPoolConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// PublicHost is the externally reachable host Twilio connects the media stream to.
	PublicHost string
}

// RealtimeConfig holds the speech-AI backend connection and session defaults
type RealtimeConfig struct {
	APIKey              string
	URL                 string
	Model               string
	VADThreshold        float64
	PrefixPaddingMs     int
	SilenceDurationMs   int
	DefaultVoice        string
	DefaultInstructions string
}

// TwilioConfig holds Twilio REST credentials
type TwilioConfig struct {
	AccountSID         string
	AuthToken          string
	ValidateSignatures bool
}

// BillingConfig holds metering rates and prepaid balance rules
type BillingConfig struct {
	CostPerMinute         float64
	Markup                float64
	AutoRechargeThreshold float64
	AutoRechargeAmount    float64
	PhoneNumberMonthlyFee float64
	ReconciliationEmail   string
}

// ToolsConfig holds capability dispatcher settings
type ToolsConfig struct {
	Timeout               time.Duration
	GoogleCredentialsJSON string
	// DefaultTimezone applies to agents without a timezone of their own
	DefaultTimezone string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	ResendAPIKey        string
	DefaultEmailSender  string
	WebAppURI           string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       string
	Topic         string
	ConsumerGroup string
}

// RedisConfig holds Redis connection settings for the live call registry
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig holds media stream authentication settings
type AuthConfig struct {
	StreamTokenSecret string
}

// WorkerPoolConfig holds worker pool sizes
type WorkerPoolConfig struct {
	FinalizerWorkers  int // Number of workers finalizing call billing in the API process
	ReconcilerWorkers int // Number of workers retrying failed finalizations
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", "5050"); err != nil {
		return nil, err
	}
	if cfg.Server.PublicHost, err = requireEnv("PUBLIC_HOST"); err != nil {
		return nil, err
	}

	// Realtime configuration
	if cfg.Realtime.APIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Realtime.URL = getEnvWithDefault("REALTIME_URL", "wss://api.openai.com/v1/realtime")
	cfg.Realtime.Model = getEnvWithDefault("REALTIME_MODEL", "gpt-realtime")
	if cfg.Realtime.VADThreshold, err = floatEnv("REALTIME_VAD_THRESHOLD", "0.7"); err != nil {
		return nil, err
	}
	if cfg.Realtime.PrefixPaddingMs, err = intEnv("REALTIME_PREFIX_PADDING_MS", "300"); err != nil {
		return nil, err
	}
	if cfg.Realtime.SilenceDurationMs, err = intEnv("REALTIME_SILENCE_DURATION_MS", "800"); err != nil {
		return nil, err
	}
	cfg.Realtime.DefaultVoice = getEnvWithDefault("REALTIME_DEFAULT_VOICE", "alloy")
	cfg.Realtime.DefaultInstructions = getEnvWithDefault("REALTIME_DEFAULT_INSTRUCTIONS",
		"You are a helpful and friendly phone assistant. Keep answers short and conversational.")

	// Twilio configuration
	if cfg.Twilio.AccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Twilio.AuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Twilio.ValidateSignatures, err = boolEnv("TWILIO_VALIDATE_SIGNATURES", "true"); err != nil {
		return nil, err
	}

	// Billing configuration
	if cfg.Billing.CostPerMinute, err = floatEnv("BILLING_COST_PER_MINUTE", "0.05"); err != nil {
		return nil, err
	}
	if cfg.Billing.Markup, err = floatEnv("BILLING_MARKUP", "2.0"); err != nil {
		return nil, err
	}
	if cfg.Billing.AutoRechargeThreshold, err = floatEnv("BILLING_AUTO_RECHARGE_THRESHOLD", "2.00"); err != nil {
		return nil, err
	}
	if cfg.Billing.AutoRechargeAmount, err = floatEnv("BILLING_AUTO_RECHARGE_AMOUNT", "10.00"); err != nil {
		return nil, err
	}
	if cfg.Billing.PhoneNumberMonthlyFee, err = floatEnv("BILLING_PHONE_NUMBER_MONTHLY_FEE", "1.15"); err != nil {
		return nil, err
	}
	cfg.Billing.ReconciliationEmail = os.Getenv("BILLING_RECONCILIATION_EMAIL")

	// Tools configuration
	toolTimeout := getEnvWithDefault("TOOL_TIMEOUT", "9s")
	cfg.Tools.Timeout, err = time.ParseDuration(toolTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOOL_TIMEOUT: %w", err)
	}
	cfg.Tools.GoogleCredentialsJSON = os.Getenv("GOOGLE_CALENDAR_CREDENTIALS_JSON")
	cfg.Tools.DefaultTimezone = getEnvWithDefault("TOOLS_DEFAULT_TIMEZONE", "America/New_York")

	// Services configuration
	if cfg.Services.StripeSecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	// Without a webhook secret the top-up webhook is not mounted
	cfg.Services.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "call-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "billing-reconciler")

	// Redis configuration
	if cfg.Redis.Enabled, err = boolEnv("REDIS_ENABLED", "false"); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Auth configuration
	cfg.Auth.StreamTokenSecret = os.Getenv("STREAM_TOKEN_SECRET")

	// Worker pool configuration
	if cfg.WorkerPool.FinalizerWorkers, err = intEnv("FINALIZER_WORKERS", "4"); err != nil {
		return nil, err
	}
	if cfg.WorkerPool.ReconcilerWorkers, err = intEnv("RECONCILER_WORKERS", "4"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// RedisAddr returns the host:port address of the Redis server
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	value, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func floatEnv(key, defaultValue string) (float64, error) {
	value, err := strconv.ParseFloat(getEnvWithDefault(key, defaultValue), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func boolEnv(key, defaultValue string) (bool, error) {
	value, err := strconv.ParseBool(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}
