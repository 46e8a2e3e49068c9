package dto

import (
	"time"

	"settlr/internal/core/domain"
)

// --- Merchant auth ---

// RegisterRequest is the request body for merchant registration.
type RegisterRequest struct {
	Username      string  `json:"username" binding:"required,min=3,max=50"`
	Password      string  `json:"password" binding:"required,min=8,max=128"`
	MerchantName  string  `json:"merchant_name" binding:"required,min=1,max=100"`
	WalletAddress string  `json:"wallet_address" binding:"required"`
	WebhookURL    *string `json:"webhook_url,omitempty" binding:"omitempty,safe_url"`
}

// LoginRequest is the request body for merchant login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
// The API key and webhook secret are shown exactly once.
type RegisterResponse struct {
	MerchantID    string `json:"merchant_id"`
	APIKey        string `json:"api_key"`
	WebhookSecret string `json:"webhook_secret"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// --- Treasury ---

// DepositRequest is the request body for a treasury deposit.
type DepositRequest struct {
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency,omitempty"`
	TxSignature *string `json:"tx_signature,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BalanceResponse is the response body for treasury balance queries.
type BalanceResponse struct {
	Currency       string `json:"currency"`
	Available      int64  `json:"available"`
	Reserved       int64  `json:"reserved"`
	TotalDeposited int64  `json:"total_deposited"`
	TotalPayouts   int64  `json:"total_payouts"`
	TotalFees      int64  `json:"total_fees"`
}

// TreasuryTxResponse is one treasury audit-log entry.
type TreasuryTxResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	PayoutID     *string `json:"payout_id,omitempty"`
	BalanceAfter int64   `json:"balance_after"`
	CreatedAt    string  `json:"created_at"`
}

// --- Payouts ---

// CreatePayoutRequest is the request body for a single payout.
type CreatePayoutRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Amount   int64   `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency,omitempty"`
	Memo     *string `json:"memo,omitempty" binding:"omitempty,max=200"`
	Metadata *string `json:"metadata,omitempty"`
}

// BatchItemRequest is one member of a batch payout request.
type BatchItemRequest struct {
	Email  string  `json:"email" binding:"required,email"`
	Amount int64   `json:"amount" binding:"required,gt=0"`
	Memo   *string `json:"memo,omitempty" binding:"omitempty,max=200"`
}

// CreateBatchRequest is the request body for a batch of payouts.
type CreateBatchRequest struct {
	Currency string             `json:"currency,omitempty"`
	Items    []BatchItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

// ClaimRequest is the request body for claiming a payout.
type ClaimRequest struct {
	RecipientWallet string `json:"recipient_wallet" binding:"required"`
	TxSignature     string `json:"tx_signature" binding:"required"`
}

// PayoutResponse is the serialized payout. The claim token itself never
// appears; only the claim URL handed to the creating merchant does.
type PayoutResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Amount          int64   `json:"amount"`
	Fee             int64   `json:"fee"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	Memo            *string `json:"memo,omitempty"`
	ClaimURL        string  `json:"claim_url,omitempty"`
	RecipientWallet *string `json:"recipient_wallet,omitempty"`
	TxSignature     *string `json:"tx_signature,omitempty"`
	BatchID         *string `json:"batch_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ClaimedAt       *string `json:"claimed_at,omitempty"`
	ExpiresAt       string  `json:"expires_at"`
}

// ClaimInfoResponse is the public view of a payout behind a claim link.
// Exposes only what the claim page needs.
type ClaimInfoResponse struct {
	Amount    int64   `json:"amount"`
	Fee       int64   `json:"fee"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	Memo      *string `json:"memo,omitempty"`
	ExpiresAt string  `json:"expires_at"`
}

// BatchResponse is the response body for batch creation.
type BatchResponse struct {
	BatchID     string           `json:"batch_id"`
	Status      string           `json:"status"`
	TotalAmount int64            `json:"total_amount"`
	Count       int              `json:"count"`
	Payouts     []PayoutResponse `json:"payouts"`
	Failed      []BatchItemFail  `json:"failed,omitempty"`
}

// BatchItemFail records a member payout that could not be created.
type BatchItemFail struct {
	Index int    `json:"index"`
	Email string `json:"email"`
	Error string `json:"error"`
}

// PayoutListResponse wraps a paginated payout list.
type PayoutListResponse struct {
	Items  []PayoutResponse `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// --- Recipient auth + dashboard ---

// AuthTokenRequest is the request body for a magic-link token.
type AuthTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ValidateTokenRequest is the request body for magic-link validation.
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// SessionResponse is the response body for a redeemed magic link.
type SessionResponse struct {
	Token     string            `json:"token"`
	Expiry    int64             `json:"expiry"` // Unix timestamp
	Recipient RecipientResponse `json:"recipient"`
}

// RecipientResponse is the serialized recipient profile.
type RecipientResponse struct {
	ID                   string  `json:"id"`
	Email                string  `json:"email"`
	WalletAddress        string  `json:"wallet_address"`
	DisplayName          *string `json:"display_name,omitempty"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
	AutoWithdraw         bool    `json:"auto_withdraw"`
	TotalReceived        int64   `json:"total_received"`
	TotalPayouts         int64   `json:"total_payouts"`
	LastPayoutAt         *string `json:"last_payout_at,omitempty"`
}

// UpdateRecipientRequest is a partial recipient profile update.
type UpdateRecipientRequest struct {
	WalletAddress        *string `json:"wallet_address,omitempty"`
	DisplayName          *string `json:"display_name,omitempty" binding:"omitempty,max=100"`
	AutoWithdraw         *bool   `json:"auto_withdraw,omitempty"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
}

// WithdrawRequest is the request body for a recipient balance withdrawal.
type WithdrawRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Currency    string `json:"currency,omitempty"`
	TxSignature string `json:"tx_signature" binding:"required"`
}

// RecipientBalanceResponse is the recipient ledger balance view.
type RecipientBalanceResponse struct {
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

// BalanceTxResponse is one recipient ledger audit-log entry.
type BalanceTxResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	PayoutID     *string `json:"payout_id,omitempty"`
	TxSignature  *string `json:"tx_signature,omitempty"`
	BalanceAfter int64   `json:"balance_after"`
	CreatedAt    string  `json:"created_at"`
}

// --- Converters ---

// FromPayout converts a domain payout to its API representation.
func FromPayout(p *domain.Payout) PayoutResponse {
	resp := PayoutResponse{
		ID:              p.ID.String(),
		Email:           p.Email,
		Amount:          p.Amount,
		Fee:             p.Fee,
		Currency:        p.Currency,
		Status:          string(p.Status),
		Memo:            p.Memo,
		ClaimURL:        p.ClaimURL,
		RecipientWallet: p.RecipientWallet,
		TxSignature:     p.TxSignature,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		ExpiresAt:       p.ExpiresAt.Format(time.RFC3339),
	}
	if p.BatchID != nil {
		s := p.BatchID.String()
		resp.BatchID = &s
	}
	if p.ClaimedAt != nil {
		s := p.ClaimedAt.Format(time.RFC3339)
		resp.ClaimedAt = &s
	}
	return resp
}

// FromRecipient converts a domain recipient to its API representation.
func FromRecipient(r *domain.Recipient) RecipientResponse {
	resp := RecipientResponse{
		ID:                   r.ID.String(),
		Email:                r.Email,
		WalletAddress:        r.WalletAddress,
		DisplayName:          r.DisplayName,
		NotificationsEnabled: r.NotificationsEnabled,
		AutoWithdraw:         r.AutoWithdraw,
		TotalReceived:        r.TotalReceived,
		TotalPayouts:         r.TotalPayouts,
	}
	if r.LastPayoutAt != nil {
		s := r.LastPayoutAt.Format(time.RFC3339)
		resp.LastPayoutAt = &s
	}
	return resp
}

// FromBalance converts a domain merchant balance to its API representation.
func FromBalance(b *domain.MerchantBalance) BalanceResponse {
	return BalanceResponse{
		Currency:       b.Currency,
		Available:      b.Available,
		Reserved:       b.Reserved,
		TotalDeposited: b.TotalDeposited,
		TotalPayouts:   b.TotalPayouts,
		TotalFees:      b.TotalFees,
	}
}

// FromTreasuryTx converts a treasury log entry to its API representation.
func FromTreasuryTx(t *domain.TreasuryTransaction) TreasuryTxResponse {
	resp := TreasuryTxResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		Amount:       t.Amount,
		Currency:     t.Currency,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.PayoutID != nil {
		s := t.PayoutID.String()
		resp.PayoutID = &s
	}
	return resp
}

// FromBalanceTx converts a recipient ledger entry to its API representation.
func FromBalanceTx(t *domain.BalanceTransaction) BalanceTxResponse {
	resp := BalanceTxResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		Amount:       t.Amount,
		Currency:     t.Currency,
		TxSignature:  t.TxSignature,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.PayoutID != nil {
		s := t.PayoutID.String()
		resp.PayoutID = &s
	}
	return resp
}
