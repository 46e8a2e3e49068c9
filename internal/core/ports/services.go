package ports

import (
	"context"
	"time"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
)

// --- Infrastructure Ports ---

// EncryptionService handles AES-256-GCM encryption/decryption of secrets
// at rest (merchant webhook secrets).
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing of webhook payloads.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenKind distinguishes merchant dashboard sessions from recipient
// magic-link sessions.
type TokenKind string

const (
	TokenKindMerchant  TokenKind = "merchant"
	TokenKindRecipient TokenKind = "recipient"
)

// TokenService handles JWT session token operations.
type TokenService interface {
	Generate(subject uuid.UUID, kind TokenKind, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject uuid.UUID
	Kind    TokenKind
	Email   string // Set for recipient tokens
}

// ClaimCache is the Redis fast path for claim replays (webhook retries,
// double-click): the first successful claim result is cached by claim
// token and returned verbatim on replay.
type ClaimCache interface {
	Get(ctx context.Context, claimToken string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, claimToken string, value []byte, ttl time.Duration) error
}

// --- Treasury Ledger ---

// CreditRequest holds validated input for a treasury deposit.
type CreditRequest struct {
	MerchantID  uuid.UUID
	Amount      int64
	Currency    string
	TxSignature *string
	Description *string
}

// ReserveResult is the typed outcome of a reservation attempt.
// Insufficient balance is a value, not an error, so callers can react.
type ReserveResult struct {
	OK      bool
	Error   string // "Insufficient balance" when !OK
	Balance *domain.MerchantBalance
}

// TreasuryService owns merchant balance state and the treasury audit log.
// All mutations are atomic per (merchantID, currency) key.
type TreasuryService interface {
	GetOrCreateBalance(ctx context.Context, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error)
	Credit(ctx context.Context, req CreditRequest) (*domain.MerchantBalance, error)
	Reserve(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID) (*ReserveResult, error)
	Release(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID) (*domain.MerchantBalance, error)
	Refund(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID) (*domain.MerchantBalance, error)
	GetTransactions(ctx context.Context, merchantID uuid.UUID, params TreasuryTxListParams) ([]domain.TreasuryTransaction, error)
}

// --- Recipient Directory ---

// RegisterRecipientRequest holds input for recipient registration.
type RegisterRecipientRequest struct {
	Email         string
	WalletAddress string
	DisplayName   *string
}

// UpdateRecipientRequest holds a partial recipient update.
type UpdateRecipientRequest struct {
	WalletAddress        *string
	DisplayName          *string
	AutoWithdraw         *bool
	NotificationsEnabled *bool
}

// RecipientService owns the email -> wallet directory used for the
// auto-delivery decision.
type RecipientService interface {
	// RegisterIfAbsent creates the recipient if absent, otherwise returns
	// the existing record unchanged. Safe under concurrent registration.
	RegisterIfAbsent(ctx context.Context, req RegisterRecipientRequest) (*domain.Recipient, error)
	GetByEmail(ctx context.Context, email string) (*domain.Recipient, error)
	// Update applies a partial update; returns nil if the recipient is absent.
	Update(ctx context.Context, email string, req UpdateRecipientRequest) (*domain.Recipient, error)
	// UpdateStats is called once per delivered payout.
	UpdateStats(ctx context.Context, email string, amount int64) error
	// AutoDeliveryTarget returns the wallet on file and true when the payout
	// can skip the manual claim flow.
	AutoDeliveryTarget(ctx context.Context, email string) (string, bool, error)
}

// --- Recipient Ledger ---

// RecipientLedgerService mirrors the treasury ledger, scoped to a
// recipient. Used only for the credit-instead-of-deliver path and its
// withdrawal flow.
type RecipientLedgerService interface {
	GetOrCreateBalance(ctx context.Context, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error)
	CreditBalance(ctx context.Context, recipientID uuid.UUID, currency string, amount int64, payoutID uuid.UUID) (*domain.RecipientBalance, error)
	DebitBalance(ctx context.Context, recipientID uuid.UUID, currency string, amount int64, txSignature string) (*domain.RecipientBalance, error)
	GetTransactions(ctx context.Context, recipientID uuid.UUID, limit int) ([]domain.BalanceTransaction, error)
}

// --- Payout Lifecycle ---

// CreatePayoutRequest holds validated input for payout creation.
type CreatePayoutRequest struct {
	MerchantID     uuid.UUID
	MerchantWallet string
	Email          string
	Amount         int64
	Currency       string
	Memo           *string
	Metadata       *string
	BatchID        *uuid.UUID
}

// BatchItem is one member of a batch creation request.
type BatchItem struct {
	Email  string
	Amount int64
	Memo   *string
}

// CreateBatchRequest holds validated input for batch creation.
type CreateBatchRequest struct {
	MerchantID     uuid.UUID
	MerchantWallet string
	Currency       string
	Items          []BatchItem
}

// BatchResult aggregates member-payout outcomes.
type BatchResult struct {
	Batch   *domain.PayoutBatch
	Payouts []domain.Payout
	Failed  []BatchItemError
}

// BatchItemError records a member payout that could not be created.
type BatchItemError struct {
	Index int    `json:"index"`
	Email string `json:"email"`
	Error string `json:"error"`
}

// ClaimPayoutRequest holds validated input for a claim attempt.
type ClaimPayoutRequest struct {
	ClaimToken      string
	RecipientWallet string
	TxSignature     string
}

// PayoutService is the payout lifecycle state machine.
type PayoutService interface {
	CreatePayout(ctx context.Context, req CreatePayoutRequest) (*domain.Payout, error)
	CreateBatch(ctx context.Context, req CreateBatchRequest) (*BatchResult, error)
	GetByClaimToken(ctx context.Context, claimToken string) (*domain.Payout, error)
	// ClaimPayout transitions sent -> claimed, releases the treasury
	// reservation and bumps recipient stats. A second claim with the same
	// token is rejected with an already-claimed conflict and never
	// overwrites the first claim; the HTTP layer serves retried callers
	// the original response from the claim cache.
	ClaimPayout(ctx context.Context, req ClaimPayoutRequest) (*domain.Payout, error)
	// ExpirePayout transitions sent -> expired and refunds the reservation.
	// Entry point for the external expiry sweeper.
	ExpirePayout(ctx context.Context, merchantID, payoutID uuid.UUID) (*domain.Payout, error)
	// FailPayout transitions sent -> failed and refunds the reservation.
	FailPayout(ctx context.Context, merchantID, payoutID uuid.UUID) (*domain.Payout, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]domain.Payout, int64, error)
	ListByRecipientEmail(ctx context.Context, email string, limit, offset int) ([]domain.Payout, int64, error)
}

// --- Auth ---

// AuthTokenResult is the issued magic-link token. The engine stores it;
// the email collaborator delivers it.
type AuthTokenResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthSession is the outcome of a successful magic-link validation.
type AuthSession struct {
	Recipient    *domain.Recipient
	SessionToken string
	ExpiresAt    time.Time
}

// AuthTokenService issues and validates one-time magic-link tokens.
type AuthTokenService interface {
	// CreateAuthToken returns nil (no error) when no recipient exists for
	// the email; it never creates one as a side effect.
	CreateAuthToken(ctx context.Context, email string) (*AuthTokenResult, error)
	// ValidateAuthToken consumes the token on first use and mints a
	// recipient session JWT. A second call with the same token returns nil.
	ValidateAuthToken(ctx context.Context, token string) (*AuthSession, error)
}

// MerchantAuthService defines merchant account authentication.
type MerchantAuthService interface {
	Register(ctx context.Context, req RegisterMerchantRequest) (*RegisterMerchantResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterMerchantRequest holds input for merchant registration.
type RegisterMerchantRequest struct {
	Username      string
	Password      string
	MerchantName  string
	WalletAddress string
	WebhookURL    *string
}

// RegisterMerchantResponse holds the registration result shown once.
type RegisterMerchantResponse struct {
	MerchantID    uuid.UUID
	APIKey        string
	WebhookSecret string // Plaintext, shown only at registration
}

// --- Webhooks ---

// Payout webhook event types.
const (
	EventPayoutSent    = "payout.sent"
	EventPayoutClaimed = "payout.claimed"
	EventPayoutExpired = "payout.expired"
	EventPayoutFailed  = "payout.failed"
)

// WebhookService defines async webhook delivery for payout state
// transitions.
type WebhookService interface {
	EnqueuePayoutEvent(ctx context.Context, event string, payout *domain.Payout) error
}
