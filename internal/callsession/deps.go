package callsession

import (
	"context"
	"time"

	"voice-bridge/internal/billing"
	"voice-bridge/internal/callregistry"
	"voice-bridge/internal/capabilities"
	"voice-bridge/internal/clients/openai"
	"voice-bridge/internal/store"
	"voice-bridge/internal/voicecall/streamtoken"
	"voice-bridge/internal/voicecall/twilio"

	"github.com/google/uuid"
	oairealtime "github.com/openai/openai-go/v3/realtime"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=deps.go -destination=mocks_test.go -package=callsession

// CallerStream is the telephony leg of the call
type CallerStream interface {
	ReadEvent() (twilio.StreamEvent, error)
	SendMedia(streamSid, payload string) error
	SendMark(streamSid, name string) error
	SendClear(streamSid string) error
	Close() error
}

// AIConn is one realtime speech-AI connection
type AIConn interface {
	Send(ctx context.Context, event any) error
	ReadEvent() (openai.ServerEvent, error)
	Close() error
}

// AIDialer opens realtime connections
type AIDialer interface {
	Dial(ctx context.Context) (AIConn, error)
}

// AgentResolver maps a dialed number to its agent
type AgentResolver interface {
	GetAgentByPhoneNumber(ctx context.Context, phoneNumber string) (store.Agent, error)
}

// BillingGate checks the prepaid balance before a call is taken
type BillingGate interface {
	CheckBalance(ctx context.Context, accountID uuid.UUID) (float64, error)
	NotifyDeclined(ctx context.Context, agent store.Agent, callSid string) error
}

// Finalizer settles a finished call out of band
type Finalizer interface {
	Submit(ctx context.Context, rec billing.CallRecord) error
}

// ToolDispatcher runs model tool calls
type ToolDispatcher interface {
	Definitions(names []string) oairealtime.RealtimeToolsConfigParam
	Dispatch(ctx context.Context, name string, arguments string, call capabilities.CallContext) capabilities.Result
}

// CallControl speaks to the caller outside the media stream
type CallControl interface {
	SayAndHangup(ctx context.Context, callSid, message string) error
}

// LiveCalls tracks calls in progress
type LiveCalls interface {
	Register(ctx context.Context, entry callregistry.Entry) error
	Unregister(ctx context.Context, callSid, accountID string) error
}

// TokenVerifier checks the stream token minted into the TwiML
type TokenVerifier interface {
	Verify(token string) (streamtoken.Claims, error)
}

// Dependencies are shared by every session built by a Factory. Registry and
// Tokens are optional.
type Dependencies struct {
	Agents    AgentResolver
	Billing   BillingGate
	Finalizer Finalizer
	Dialer    AIDialer
	Tools     ToolDispatcher
	Control   CallControl
	Registry  LiveCalls
	Tokens    TokenVerifier
}

// Config holds the model session defaults for every call
type Config struct {
	VADThreshold        float64
	PrefixPaddingMs     int
	SilenceDurationMs   int
	DefaultVoice        string
	DefaultInstructions string
	TranscriptionModel  string
	// ReconnectAttempts is how many times a dropped model connection is
	// re-dialed before the call is ended.
	ReconnectAttempts int
	MaxPendingMarks   int
	EventBuffer       int
	// FinalizeTimeout bounds how long a closing call waits to queue billing
	FinalizeTimeout time.Duration
}

// DefaultConfig returns the session defaults
func DefaultConfig() Config {
	return Config{
		VADThreshold:        0.7,
		PrefixPaddingMs:     300,
		SilenceDurationMs:   800,
		DefaultVoice:        "alloy",
		DefaultInstructions: "You are a helpful and friendly phone assistant. Keep answers short and conversational.",
		TranscriptionModel:  "whisper-1",
		ReconnectAttempts:   1,
		MaxPendingMarks:     512,
		EventBuffer:         256,
		FinalizeTimeout:     2 * time.Second,
	}
}

// Spoken messages
const (
	MessageAgentNotFound = "No agent is configured on this number."
	MessageDeclined      = "We're sorry, this line is temporarily unavailable. Please try again later. Goodbye."
	MessageApology       = "We're sorry, we're having technical difficulties. Please call back later. Goodbye."
)

// RealtimeDialer adapts the realtime client to AIDialer
type RealtimeDialer struct {
	Client *openai.RealtimeClient
}

func (d RealtimeDialer) Dial(ctx context.Context) (AIConn, error) {
	conn, err := d.Client.Dial(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type clock func() time.Time
