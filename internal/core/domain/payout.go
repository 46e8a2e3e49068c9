package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayoutStatus represents the lifecycle state of a payout.
// pending -> funded -> sent -> {claimed | expired | failed}.
// Payouts backed by a successful treasury reservation are created
// directly in sent.
type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusFunded  PayoutStatus = "funded"
	PayoutStatusSent    PayoutStatus = "sent"
	PayoutStatusClaimed PayoutStatus = "claimed"
	PayoutStatusExpired PayoutStatus = "expired"
	PayoutStatusFailed  PayoutStatus = "failed"
)

// Payout ties a merchant's intent to pay an email address to a claim
// token and a treasury reservation. Never deleted; retained for audit.
type Payout struct {
	ID              uuid.UUID    `json:"id"`
	MerchantID      uuid.UUID    `json:"merchant_id"`
	MerchantWallet  string       `json:"merchant_wallet"`
	Email           string       `json:"email"` // Normalized
	Amount          int64        `json:"amount"`
	Fee             int64        `json:"fee"`
	Currency        string       `json:"currency"`
	Memo            *string      `json:"memo,omitempty"`
	Metadata        *string      `json:"metadata,omitempty"` // Raw JSON, opaque to the engine
	Status          PayoutStatus `json:"status"`
	ClaimToken      string       `json:"-"` // Sole claim capability, never expose in listings
	ClaimURL        string       `json:"claim_url"`
	RecipientWallet *string      `json:"recipient_wallet,omitempty"` // Set only on claim
	TxSignature     *string      `json:"tx_signature,omitempty"`     // Set only on claim
	BatchID         *uuid.UUID   `json:"batch_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	FundedAt        *time.Time   `json:"funded_at,omitempty"`
	ClaimedAt       *time.Time   `json:"claimed_at,omitempty"`
	ExpiredAt       *time.Time   `json:"expired_at,omitempty"`
	ExpiresAt       time.Time    `json:"expires_at"`
}

// IsTerminal returns true if the payout is in a final state.
func (p *Payout) IsTerminal() bool {
	return p.Status == PayoutStatusClaimed ||
		p.Status == PayoutStatusExpired ||
		p.Status == PayoutStatusFailed
}

// IsClaimable returns true if a claim attempt may proceed.
func (p *Payout) IsClaimable(now time.Time) bool {
	return p.Status == PayoutStatusSent && now.Before(p.ExpiresAt)
}

// BatchStatus aggregates member-payout outcomes of a batch.
type BatchStatus string

const (
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusPartial    BatchStatus = "partial"
	BatchStatusFailed     BatchStatus = "failed"
)

// PayoutBatch groups payouts created in one call. Partial failure of a
// member does not roll back the others.
type PayoutBatch struct {
	ID          uuid.UUID   `json:"id"`
	MerchantID  uuid.UUID   `json:"merchant_id"`
	TotalAmount int64       `json:"total_amount"`
	Count       int         `json:"count"`
	Status      BatchStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// AggregateBatchStatus derives the batch status from member outcomes.
func AggregateBatchStatus(succeeded, failed int) BatchStatus {
	switch {
	case failed == 0:
		return BatchStatusCompleted
	case succeeded == 0:
		return BatchStatusFailed
	default:
		return BatchStatusPartial
	}
}
