package domain

import (
	"time"

	"github.com/google/uuid"
)

// TreasuryTransactionType represents the kind of treasury money movement.
type TreasuryTransactionType string

const (
	TreasuryTypeDeposit        TreasuryTransactionType = "deposit"
	TreasuryTypePayoutReserved TreasuryTransactionType = "payout_reserved"
	TreasuryTypePayoutReleased TreasuryTransactionType = "payout_released"
	TreasuryTypePayoutRefund   TreasuryTransactionType = "payout_refund"
	TreasuryTypeFeeDeducted    TreasuryTransactionType = "fee_deducted"
	TreasuryTypeWithdrawal     TreasuryTransactionType = "withdrawal"
)

// MerchantBalance tracks a merchant's treasury funds for one currency.
// All amounts are int64 cents. Invariant: Available >= 0 and Reserved >= 0
// at all times; mutations happen only through the treasury ledger.
type MerchantBalance struct {
	ID             uuid.UUID `json:"id"`
	MerchantID     uuid.UUID `json:"merchant_id"`
	Currency       string    `json:"currency"`
	Available      int64     `json:"available"`
	Pending        int64     `json:"pending"`
	Reserved       int64     `json:"reserved"`
	TotalDeposited int64     `json:"total_deposited"`
	TotalWithdrawn int64     `json:"total_withdrawn"`
	TotalPayouts   int64     `json:"total_payouts"`
	TotalFees      int64     `json:"total_fees"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CanReserve reports whether available funds cover amount plus fee.
func (b *MerchantBalance) CanReserve(amount, fee int64) bool {
	return b.Available >= amount+fee
}

// TreasuryTransaction is an immutable audit-log entry for a treasury
// balance mutation. Every balance change emits exactly one entry
// (a release emits two: principal and fee are logged separately).
type TreasuryTransaction struct {
	ID           uuid.UUID               `json:"id"`
	MerchantID   uuid.UUID               `json:"merchant_id"`
	Type         TreasuryTransactionType `json:"type"`
	Amount       int64                   `json:"amount"`
	Currency     string                  `json:"currency"`
	PayoutID     *uuid.UUID              `json:"payout_id,omitempty"`
	TxSignature  *string                 `json:"tx_signature,omitempty"`
	Description  *string                 `json:"description,omitempty"`
	BalanceAfter int64                   `json:"balance_after"`
	CreatedAt    time.Time               `json:"created_at"`
}
