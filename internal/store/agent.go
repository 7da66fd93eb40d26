package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ToolNames is the list of capability names enabled for an agent, stored as a JSON array.
type ToolNames []string

// Scan implements sql.Scanner
func (t *ToolNames) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tool names type %T", src)
	}
	return json.Unmarshal(raw, (*[]string)(t))
}

// Value implements driver.Valuer
func (t ToolNames) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Agent is the per-phone-number AI agent configuration
type Agent struct {
	ID           uuid.UUID `db:"id"`
	AccountID    uuid.UUID `db:"account_id"`
	PhoneNumber  string    `db:"phone_number"`
	Name         string    `db:"name"`
	SystemPrompt string    `db:"system_prompt"`
	Voice        string    `db:"voice"`
	Tools        ToolNames `db:"tools"`
	FirstMessage string    `db:"first_message"`
	CalendarID   string    `db:"calendar_id"`
	Timezone     string    `db:"timezone"`
	NotifyEmail  string    `db:"notify_email"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const agentColumns = `id, account_id, phone_number, name, system_prompt, voice, tools, first_message,
calendar_id, timezone, notify_email, active, created_at, updated_at`

const sqlGetAgentByPhoneNumber = `
SELECT ` + agentColumns + `
FROM agents
WHERE phone_number = $1 AND active = TRUE
`

// GetAgentByPhoneNumber resolves the active agent configured on a dialed number
func (s *Store) GetAgentByPhoneNumber(ctx context.Context, phoneNumber string) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlGetAgentByPhoneNumber, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get agent by phone number", err)
		return Agent{}, fmt.Errorf("failed to get agent by phone number: %w", err)
	}
	return agent, nil
}

const sqlGetAgentByID = `
SELECT ` + agentColumns + `
FROM agents
WHERE id = $1
`

// GetAgentByID retrieves an agent by ID regardless of its active flag
func (s *Store) GetAgentByID(ctx context.Context, agentID uuid.UUID) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlGetAgentByID, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		return Agent{}, fmt.Errorf("failed to get agent by id: %w", err)
	}
	return agent, nil
}

const sqlListActiveAgents = `
SELECT ` + agentColumns + `
FROM agents
WHERE active = TRUE
ORDER BY created_at
`

// ListActiveAgents returns every active agent, one per provisioned phone number
func (s *Store) ListActiveAgents(ctx context.Context) ([]Agent, error) {
	var agents []Agent
	err := s.db.SelectContext(ctx, &agents, sqlListActiveAgents)
	if err != nil {
		s.logger.Error(ctx, "failed to list active agents", err)
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}
	return agents, nil
}
