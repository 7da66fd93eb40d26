package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreditTransactionType string

const (
	CreditTransactionTypeCallCharge   CreditTransactionType = "call_charge"
	CreditTransactionTypeAutoRecharge CreditTransactionType = "auto_recharge"
	CreditTransactionTypePhoneFee     CreditTransactionType = "phone_fee"
	CreditTransactionTypePurchase     CreditTransactionType = "purchase"
)

// AccountCredits is the prepaid balance of an account
type AccountCredits struct {
	AccountID             uuid.UUID `db:"account_id"`
	Balance               float64   `db:"balance"`
	TotalPurchased        float64   `db:"total_purchased"`
	TotalUsed             float64   `db:"total_used"`
	AutoRechargeEnabled   bool      `db:"auto_recharge_enabled"`
	StripeCustomerID      string    `db:"stripe_customer_id"`
	StripePaymentMethodID string    `db:"stripe_payment_method_id"`
	UpdatedAt             time.Time `db:"updated_at"`
}

// CreditTransaction is one ledger entry recording a balance movement
type CreditTransaction struct {
	ID            uuid.UUID             `db:"id"`
	AccountID     uuid.UUID             `db:"account_id"`
	Amount        float64               `db:"amount"`
	Type          CreditTransactionType `db:"type"`
	Description   string                `db:"description"`
	Reference     string                `db:"reference"`
	BalanceBefore float64               `db:"balance_before"`
	BalanceAfter  float64               `db:"balance_after"`
	CreatedAt     time.Time             `db:"created_at"`
}

// CreditTransactionParams describes a balance movement. Amount is negative for
// debits. Reference must be unique per Type so retries never double-apply.
type CreditTransactionParams struct {
	AccountID   uuid.UUID
	Amount      float64
	Type        CreditTransactionType
	Description string
	Reference   string
}

const accountCreditsColumns = `account_id, balance, total_purchased, total_used, auto_recharge_enabled,
stripe_customer_id, stripe_payment_method_id, updated_at`

const sqlGetAccountCredits = `
SELECT ` + accountCreditsColumns + `
FROM account_credits
WHERE account_id = $1
`

// GetAccountCredits retrieves the prepaid balance record of an account
func (s *Store) GetAccountCredits(ctx context.Context, accountID uuid.UUID) (AccountCredits, error) {
	var credits AccountCredits
	err := s.db.GetContext(ctx, &credits, sqlGetAccountCredits, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccountCredits{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get account credits", err)
		return AccountCredits{}, fmt.Errorf("failed to get account credits: %w", err)
	}
	return credits, nil
}

// GetBalance returns the current prepaid balance; accounts without a credits row have a zero balance
func (s *Store) GetBalance(ctx context.Context, accountID uuid.UUID) (float64, error) {
	credits, err := s.GetAccountCredits(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return credits.Balance, nil
}

const sqlLockAccountCredits = `
SELECT ` + accountCreditsColumns + `
FROM account_credits
WHERE account_id = $1
FOR UPDATE
`

const sqlInsertCreditTransaction = `
INSERT INTO credit_transactions (account_id, amount, type, description, reference, balance_before, balance_after)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (type, reference) DO NOTHING
RETURNING id, account_id, amount, type, description, reference, balance_before, balance_after, created_at
`

const sqlUpdateAccountBalance = `
UPDATE account_credits
SET balance = $2,
    total_used = total_used + $3,
    total_purchased = total_purchased + $4,
    updated_at = NOW()
WHERE account_id = $1
`

// ApplyCreditTransaction moves an account balance and records the ledger entry
// with the balance before and after, atomically. Debits that would take the
// balance below zero fail with ErrInsufficientFunds; a repeated reference fails
// with ErrAlreadyRecorded.
func (s *Store) ApplyCreditTransaction(ctx context.Context, params CreditTransactionParams) (CreditTransaction, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return CreditTransaction{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	var credits AccountCredits
	err = tx.GetContext(ctx, &credits, sqlLockAccountCredits, params.AccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CreditTransaction{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock account credits", err)
		return CreditTransaction{}, fmt.Errorf("failed to lock account credits: %w", err)
	}

	balanceAfter := RoundMoney(credits.Balance + params.Amount)
	if params.Amount < 0 && balanceAfter < 0 {
		return CreditTransaction{}, ErrInsufficientFunds
	}

	var entry CreditTransaction
	err = tx.GetContext(ctx, &entry, sqlInsertCreditTransaction,
		params.AccountID,
		params.Amount,
		params.Type,
		params.Description,
		params.Reference,
		credits.Balance,
		balanceAfter,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CreditTransaction{}, ErrAlreadyRecorded
		}
		s.logger.Error(ctx, "failed to insert credit transaction", err)
		return CreditTransaction{}, fmt.Errorf("failed to insert credit transaction: %w", err)
	}

	var used, purchased float64
	if params.Amount < 0 {
		used = -params.Amount
	} else {
		purchased = params.Amount
	}
	if _, err = tx.ExecContext(ctx, sqlUpdateAccountBalance, params.AccountID, balanceAfter, used, purchased); err != nil {
		s.logger.Error(ctx, "failed to update account balance", err)
		return CreditTransaction{}, fmt.Errorf("failed to update account balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return CreditTransaction{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return entry, nil
}

const sqlHasCreditTransaction = `
SELECT EXISTS (SELECT 1 FROM credit_transactions WHERE type = $1 AND reference = $2)
`

// HasCreditTransaction reports whether a ledger entry with the given type and reference exists
func (s *Store) HasCreditTransaction(ctx context.Context, txType CreditTransactionType, reference string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlHasCreditTransaction, txType, reference)
	if err != nil {
		s.logger.Error(ctx, "failed to check credit transaction", err)
		return false, fmt.Errorf("failed to check credit transaction: %w", err)
	}
	return exists, nil
}

const sqlListAutoRechargeCandidates = `
SELECT ` + accountCreditsColumns + `
FROM account_credits
WHERE auto_recharge_enabled = TRUE
  AND balance < $1
  AND stripe_customer_id <> ''
  AND stripe_payment_method_id <> ''
`

// ListAutoRechargeCandidates returns accounts with auto-recharge configured whose balance is under threshold
func (s *Store) ListAutoRechargeCandidates(ctx context.Context, threshold float64) ([]AccountCredits, error) {
	var accounts []AccountCredits
	err := s.db.SelectContext(ctx, &accounts, sqlListAutoRechargeCandidates, threshold)
	if err != nil {
		s.logger.Error(ctx, "failed to list auto recharge candidates", err)
		return nil, fmt.Errorf("failed to list auto recharge candidates: %w", err)
	}
	return accounts, nil
}
