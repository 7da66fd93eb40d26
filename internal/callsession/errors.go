package callsession

import (
	"errors"
	"fmt"
)

// Kind classifies why a call did not end normally
type Kind int

const (
	KindAgentNotFound Kind = iota + 1
	KindInsufficientBalance
	KindAIConnection
	KindToolDispatch
	KindBillingFinalization
)

var (
	ErrAgentNotFound        = errors.New("no agent configured for dialed number")
	ErrInsufficientBalance  = errors.New("insufficient prepaid balance")
	ErrAIConnection         = errors.New("speech AI connection failed")
	ErrToolDispatch         = errors.New("tool dispatch failed")
	ErrBillingFinalization  = errors.New("billing finalization failed")
	ErrMissingStartEvent    = errors.New("media stream ended before start event")
	ErrInvalidStreamRequest = errors.New("media stream start rejected")
	ErrShuttingDown         = errors.New("call sessions are shutting down")
)

var kindSentinels = map[Kind]error{
	KindAgentNotFound:       ErrAgentNotFound,
	KindInsufficientBalance: ErrInsufficientBalance,
	KindAIConnection:        ErrAIConnection,
	KindToolDispatch:        ErrToolDispatch,
	KindBillingFinalization: ErrBillingFinalization,
}

func (k Kind) String() string {
	switch k {
	case KindAgentNotFound:
		return "AgentNotFound"
	case KindInsufficientBalance:
		return "InsufficientBalance"
	case KindAIConnection:
		return "AIConnectionError"
	case KindToolDispatch:
		return "ToolDispatchFailure"
	case KindBillingFinalization:
		return "BillingFinalizationFailure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a call session failure tagged with its Kind. errors.Is matches
// both the kind's sentinel and the wrapped cause.
type Error struct {
	Kind Kind
	Err  error
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}
