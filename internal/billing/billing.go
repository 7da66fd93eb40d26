// Package billing holds the metering types shared by the call session and the
// billing processor.
package billing

import (
	"time"

	"voice-bridge/internal/store"

	"github.com/google/uuid"
)

// CallRecord is what a finished call session hands to billing
type CallRecord struct {
	CallSid         string           `json:"call_sid"`
	StreamSid       string           `json:"stream_sid"`
	AccountID       uuid.UUID        `json:"account_id"`
	AgentID         uuid.UUID        `json:"agent_id"`
	StartedAt       time.Time        `json:"started_at"`
	EndedAt         time.Time        `json:"ended_at"`
	InboundAudioMs  int64            `json:"inbound_audio_ms"`
	OutboundAudioMs int64            `json:"outbound_audio_ms"`
	ToolCalls       int              `json:"tool_calls"`
	Interruptions   int              `json:"interruptions"`
	Status          store.CallStatus `json:"status"`
}

// DurationSeconds is the billable length of the call in whole seconds
func (r CallRecord) DurationSeconds() int {
	if r.StartedAt.IsZero() || r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return int(r.EndedAt.Sub(r.StartedAt).Seconds())
}

// Rates are the per-minute provider cost and the resale markup
type Rates struct {
	CostPerMinute float64
	Markup        float64
}

// Quote is the priced outcome of a call
type Quote struct {
	DurationSeconds int
	Cost            float64
	Charge          float64
	Profit          float64
}

// Quote prices a call of the given length. Charge is
// round((seconds/60) * cost_per_minute * markup, 4).
func (r Rates) Quote(durationSeconds int) Quote {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	minutes := float64(durationSeconds) / 60
	cost := store.RoundMoney(minutes * r.CostPerMinute)
	charge := store.RoundMoney(minutes * r.CostPerMinute * r.Markup)
	return Quote{
		DurationSeconds: durationSeconds,
		Cost:            cost,
		Charge:          charge,
		Profit:          store.RoundMoney(charge - cost),
	}
}
