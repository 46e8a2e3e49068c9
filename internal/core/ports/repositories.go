package ports

import (
	"context"
	"time"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepository defines persistence operations for merchants.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Merchant, error)
	Update(ctx context.Context, merchant *domain.Merchant) error
}

// BalanceRepository defines persistence for merchant treasury balances.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking; every read-modify-write of a balance row goes
// through GetForUpdate.
type BalanceRepository interface {
	// CreateIfAbsent inserts a zeroed balance row unless one already exists
	// for (merchantID, currency). Safe to call concurrently; never creates
	// a duplicate row.
	CreateIfAbsent(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency string) error
	Get(ctx context.Context, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error)
	Update(ctx context.Context, tx pgx.Tx, balance *domain.MerchantBalance) error
}

// TreasuryTransactionRepository defines persistence for the treasury
// audit log. Entries are append-only.
type TreasuryTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.TreasuryTransaction) error
	List(ctx context.Context, merchantID uuid.UUID, params TreasuryTxListParams) ([]domain.TreasuryTransaction, error)
	// ExistsForPayout reports whether an entry of the given type was already
	// appended for payoutID. Called inside the balance-row lock to reject
	// reserve/release/refund replays.
	ExistsForPayout(ctx context.Context, tx pgx.Tx, payoutID uuid.UUID, entryType domain.TreasuryTransactionType) (bool, error)
}

// TreasuryTxListParams holds filter + pagination for the treasury log.
type TreasuryTxListParams struct {
	Type  *domain.TreasuryTransactionType
	Limit int
}

// RecipientRepository defines persistence operations for recipients.
type RecipientRepository interface {
	// CreateIfAbsent inserts the recipient unless one already exists for its
	// normalized email, and returns the stored record either way. Never
	// creates a duplicate row, never overwrites an existing record.
	CreateIfAbsent(ctx context.Context, recipient *domain.Recipient) (*domain.Recipient, error)
	GetByEmail(ctx context.Context, email string) (*domain.Recipient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error)
	Update(ctx context.Context, recipient *domain.Recipient) error
	// IncrementStats applies the delivered-payout stat bump:
	// total_received += amount, total_payouts += 1, last_payout_at = now.
	IncrementStats(ctx context.Context, email string, amount int64, at time.Time) error
	SetAuthToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	// ConsumeAuthToken atomically clears a stored, unexpired auth token and
	// returns its recipient. Returns nil if the token is unknown, expired,
	// or already consumed.
	ConsumeAuthToken(ctx context.Context, token string, now time.Time) (*domain.Recipient, error)
}

// RecipientBalanceRepository defines persistence for recipient balances.
type RecipientBalanceRepository interface {
	CreateIfAbsent(ctx context.Context, tx pgx.Tx, recipientID uuid.UUID, currency string) error
	Get(ctx context.Context, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error)
	Update(ctx context.Context, tx pgx.Tx, balance *domain.RecipientBalance) error
}

// BalanceTransactionRepository defines persistence for the recipient
// balance audit log. Entries are append-only.
type BalanceTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.BalanceTransaction) error
	List(ctx context.Context, recipientID uuid.UUID, limit int) ([]domain.BalanceTransaction, error)
}

// PayoutRepository defines persistence operations for payouts.
type PayoutRepository interface {
	Create(ctx context.Context, payout *domain.Payout) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error)
	GetByClaimToken(ctx context.Context, claimToken string) (*domain.Payout, error)
	// Claim conditionally transitions sent -> claimed, recording the
	// recipient wallet and transaction signature. Returns nil (no error) if
	// the payout was not in sent state; the original claim is never
	// overwritten.
	Claim(ctx context.Context, id uuid.UUID, recipientWallet, txSignature string, claimedAt time.Time) (*domain.Payout, error)
	// UpdateStatus conditionally transitions sent -> expired or
	// sent -> failed. Returns false if the payout was no longer in sent.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, at time.Time) (bool, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]domain.Payout, int64, error)
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]domain.Payout, int64, error)
}

// BatchRepository defines persistence operations for payout batches.
type BatchRepository interface {
	Create(ctx context.Context, batch *domain.PayoutBatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutBatch, error)
	// UpdateStatus records the aggregate outcome and the summed amount of
	// the members that succeeded.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, totalAmount int64) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
