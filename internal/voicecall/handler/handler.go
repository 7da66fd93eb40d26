package handler

import (
	"context"
	"net/http"

	"voice-bridge/internal/callsession"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"

	"github.com/gorilla/websocket"
	"github.com/twilio/twilio-go/client"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

// ConnectingPrompt is spoken while the media stream is set up
const ConnectingPrompt = "Please wait while we connect your call."

type AgentResolver interface {
	GetAgentByPhoneNumber(ctx context.Context, phoneNumber string) (store.Agent, error)
}

// TokenMinter issues the token carried into the media stream
type TokenMinter interface {
	Mint(callSid, dialedNumber, callerNumber string) (string, error)
}

// Sessions runs one call session per media stream
type Sessions interface {
	Serve(ctx context.Context, stream callsession.CallerStream) error
}

type Config struct {
	PublicHost         string
	AuthToken          string
	ValidateSignatures bool
}

type Handler struct {
	agents     AgentResolver
	tokens     TokenMinter
	sessions   Sessions
	validator  *client.RequestValidator
	publicHost string
	logger     *observability.Logger
}

// New builds the voice call handler. tokens may be nil, in which case the
// stream carries no token.
func New(cfg Config, agents AgentResolver, tokens TokenMinter, sessions Sessions, logger *observability.Logger) Handler {
	h := Handler{
		agents:     agents,
		tokens:     tokens,
		sessions:   sessions,
		publicHost: cfg.PublicHost,
		logger:     logger,
	}
	if cfg.ValidateSignatures {
		validator := client.NewRequestValidator(cfg.AuthToken)
		h.validator = &validator
	}
	return h
}

// upgrader is a shared WebSocket upgrader. Twilio does not send an Origin
// header.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
