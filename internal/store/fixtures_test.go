package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestAccount(t *testing.T, testDB *TestDB, balance float64) uuid.UUID {
	t.Helper()

	var accountID uuid.UUID
	err := testDB.GetDB().Get(&accountID,
		`INSERT INTO accounts (name, email) VALUES ($1, $2) RETURNING id`,
		"Test Account", "owner+"+uuid.New().String()[:8]+"@example.com")
	require.NoError(t, err, "failed to create test account")

	testDB.MustExec(t, `INSERT INTO account_credits (account_id, balance) VALUES ($1, $2)`, accountID, balance)
	return accountID
}

func createTestAgent(t *testing.T, testDB *TestDB, accountID uuid.UUID, phoneNumber string, active bool) uuid.UUID {
	t.Helper()

	var agentID uuid.UUID
	err := testDB.GetDB().Get(&agentID,
		`INSERT INTO agents (account_id, phone_number, name, system_prompt, voice, tools, first_message, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		accountID, phoneNumber, "Front Desk", "You answer calls for a dental office.", "alloy",
		`["check_availability","create_appointment"]`, "Thanks for calling!", active)
	require.NoError(t, err, "failed to create test agent")
	return agentID
}

func uniquePhoneNumber() string {
	return "+1555" + uuid.New().String()[:7]
}
