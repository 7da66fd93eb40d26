package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypePhoneNumberFee    = "billing:phone_number_fee"
	TypeAutoRechargeSweep = "billing:auto_recharge_sweep"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
)

// Schedules, in asynq cron syntax
const (
	PhoneNumberFeeSchedule    = "0 6 1 * *"
	AutoRechargeSweepSchedule = "@hourly"
)

// PhoneNumberFeeJobPayload selects the billing month. A zero Month means the
// month the task runs in.
type PhoneNumberFeeJobPayload struct {
	Month time.Time `json:"month,omitempty"`
}

// NewPhoneNumberFeeTask creates a monthly phone number fee task
func NewPhoneNumberFeeTask(payload PhoneNumberFeeJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal phone number fee payload: %w", err)
	}
	// Fees are idempotent per month, so retries are safe
	return asynq.NewTask(TypePhoneNumberFee, data, asynq.Queue(QueueDefault), asynq.MaxRetry(5)), nil
}

// NewAutoRechargeSweepTask creates a low-balance recharge sweep task. A
// missed sweep is picked up by the next one, so it is never retried.
func NewAutoRechargeSweepTask() *asynq.Task {
	return asynq.NewTask(TypeAutoRechargeSweep, nil, asynq.Queue(QueueHigh), asynq.MaxRetry(0))
}
