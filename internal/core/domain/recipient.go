package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipient is an email-addressed payout recipient. The normalized email
// is the sole identity key; NormalizeEmail must be applied on every read
// and write path.
type Recipient struct {
	ID                   uuid.UUID  `json:"id"`
	Email                string     `json:"email"`
	WalletAddress        string     `json:"wallet_address"`
	DisplayName          *string    `json:"display_name,omitempty"`
	AuthToken            *string    `json:"-"` // One-time magic-link token, never expose
	AuthTokenExpiresAt   *time.Time `json:"-"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	AutoWithdraw         bool       `json:"auto_withdraw"`
	TotalReceived        int64      `json:"total_received"`
	TotalPayouts         int64      `json:"total_payouts"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	LastPayoutAt         *time.Time `json:"last_payout_at,omitempty"`
}

// CanAutoDeliver reports whether a payout to this recipient may skip the
// manual claim-link flow and deliver straight to the wallet on file.
func (r *Recipient) CanAutoDeliver() bool {
	return r.AutoWithdraw && r.WalletAddress != ""
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BalanceTransactionType represents the kind of recipient balance movement.
type BalanceTransactionType string

const (
	BalanceTypeCredit     BalanceTransactionType = "credit"
	BalanceTypeDebit      BalanceTransactionType = "debit"
	BalanceTypeWithdrawal BalanceTransactionType = "withdrawal"
)

// RecipientBalance holds funds credited to a recipient instead of being
// delivered on-chain. Balance is int64 cents and never negative.
type RecipientBalance struct {
	ID          uuid.UUID `json:"id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Currency    string    `json:"currency"`
	Balance     int64     `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BalanceTransaction is an immutable audit-log entry for a recipient
// balance mutation; same contract as TreasuryTransaction.
type BalanceTransaction struct {
	ID           uuid.UUID              `json:"id"`
	RecipientID  uuid.UUID              `json:"recipient_id"`
	Type         BalanceTransactionType `json:"type"`
	Amount       int64                  `json:"amount"`
	Currency     string                 `json:"currency"`
	PayoutID     *uuid.UUID             `json:"payout_id,omitempty"`
	TxSignature  *string                `json:"tx_signature,omitempty"`
	BalanceAfter int64                  `json:"balance_after"`
	CreatedAt    time.Time              `json:"created_at"`
}
