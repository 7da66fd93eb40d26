package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CallStatus string

const (
	CallStatusCompleted         CallStatus = "completed"
	CallStatusDeclined          CallStatus = "declined"
	CallStatusFailed            CallStatus = "failed"
	CallStatusPendingSettlement CallStatus = "pending_settlement"
)

// CallUsage is the metering record of one finished call
type CallUsage struct {
	ID              uuid.UUID  `db:"id"`
	AccountID       uuid.UUID  `db:"account_id"`
	AgentID         uuid.UUID  `db:"agent_id"`
	CallSid         string     `db:"call_sid"`
	DurationSeconds int        `db:"duration_seconds"`
	CostUSD         float64    `db:"cost_usd"`
	RevenueUSD      float64    `db:"revenue_usd"`
	ProfitUSD       float64    `db:"profit_usd"`
	InboundAudioMs  int64      `db:"inbound_audio_ms"`
	OutboundAudioMs int64      `db:"outbound_audio_ms"`
	ToolCalls       int        `db:"tool_calls"`
	Status          CallStatus `db:"status"`
	StartedAt       time.Time  `db:"started_at"`
	EndedAt         time.Time  `db:"ended_at"`
	CreatedAt       time.Time  `db:"created_at"`
}

const callUsageColumns = `id, account_id, agent_id, call_sid, duration_seconds, cost_usd, revenue_usd, profit_usd,
inbound_audio_ms, outbound_audio_ms, tool_calls, status, started_at, ended_at, created_at`

const sqlInsertCallUsage = `
INSERT INTO call_usage (account_id, agent_id, call_sid, duration_seconds, cost_usd, revenue_usd, profit_usd,
                        inbound_audio_ms, outbound_audio_ms, tool_calls, status, started_at, ended_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (call_sid) DO UPDATE SET status = EXCLUDED.status
RETURNING ` + callUsageColumns + `
`

const sqlUpsertMonthlyUsage = `
INSERT INTO monthly_usage (account_id, month, total_calls, total_seconds, total_cost, total_revenue)
VALUES ($1, date_trunc('month', $2::timestamptz)::date, 1, $3, $4, $5)
ON CONFLICT (account_id, month) DO UPDATE SET
    total_calls = monthly_usage.total_calls + 1,
    total_seconds = monthly_usage.total_seconds + EXCLUDED.total_seconds,
    total_cost = monthly_usage.total_cost + EXCLUDED.total_cost,
    total_revenue = monthly_usage.total_revenue + EXCLUDED.total_revenue
`

// RecordCallUsage stores the call metering row and rolls it into the monthly
// aggregate. Recording the same call again only updates its status.
func (s *Store) RecordCallUsage(ctx context.Context, usage CallUsage) (CallUsage, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return CallUsage{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	var existing bool
	err = tx.GetContext(ctx, &existing, `SELECT EXISTS (SELECT 1 FROM call_usage WHERE call_sid = $1)`, usage.CallSid)
	if err != nil {
		s.logger.Error(ctx, "failed to check call usage", err)
		return CallUsage{}, fmt.Errorf("failed to check call usage: %w", err)
	}

	var stored CallUsage
	err = tx.GetContext(ctx, &stored, sqlInsertCallUsage,
		usage.AccountID,
		usage.AgentID,
		usage.CallSid,
		usage.DurationSeconds,
		usage.CostUSD,
		usage.RevenueUSD,
		usage.ProfitUSD,
		usage.InboundAudioMs,
		usage.OutboundAudioMs,
		usage.ToolCalls,
		usage.Status,
		usage.StartedAt,
		usage.EndedAt,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to insert call usage", err)
		return CallUsage{}, fmt.Errorf("failed to insert call usage: %w", err)
	}

	if !existing {
		_, err = tx.ExecContext(ctx, sqlUpsertMonthlyUsage,
			usage.AccountID,
			usage.StartedAt,
			usage.DurationSeconds,
			usage.CostUSD,
			usage.RevenueUSD,
		)
		if err != nil {
			s.logger.Error(ctx, "failed to upsert monthly usage", err)
			return CallUsage{}, fmt.Errorf("failed to upsert monthly usage: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return CallUsage{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return stored, nil
}
