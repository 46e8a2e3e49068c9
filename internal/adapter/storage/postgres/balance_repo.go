package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

const balanceColumns = `id, merchant_id, currency, available, pending, reserved, total_deposited, total_withdrawn, total_payouts, total_fees, created_at, updated_at`

// CreateIfAbsent inserts a zeroed balance row unless one already exists.
// ON CONFLICT DO NOTHING makes concurrent first-touch calls race-safe.
func (r *BalanceRepo) CreateIfAbsent(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency string) error {
	query := `INSERT INTO merchant_balances (id, merchant_id, currency, available, pending, reserved, total_deposited, total_withdrawn, total_payouts, total_fees, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, 0, 0, 0, 0, 0, NOW(), NOW())
		ON CONFLICT (merchant_id, currency) DO NOTHING`

	_, err := tx.Exec(ctx, query, uuid.New(), merchantID, currency)
	if err != nil {
		return fmt.Errorf("insert merchant balance: %w", err)
	}
	return nil
}

// Get fetches a balance without locking.
func (r *BalanceRepo) Get(ctx context.Context, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM merchant_balances WHERE merchant_id = $1 AND currency = $2`
	return scanBalance(r.pool.QueryRow(ctx, query, merchantID, currency))
}

// GetForUpdate fetches a balance row with pessimistic locking.
// This MUST be called within a transaction.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM merchant_balances WHERE merchant_id = $1 AND currency = $2 FOR UPDATE`
	return scanBalance(tx.QueryRow(ctx, query, merchantID, currency))
}

// Update writes back a mutated balance row within a transaction.
func (r *BalanceRepo) Update(ctx context.Context, tx pgx.Tx, b *domain.MerchantBalance) error {
	query := `UPDATE merchant_balances
		SET available = $1, pending = $2, reserved = $3, total_deposited = $4, total_withdrawn = $5, total_payouts = $6, total_fees = $7, updated_at = NOW()
		WHERE id = $8`

	tag, err := tx.Exec(ctx, query,
		b.Available, b.Pending, b.Reserved,
		b.TotalDeposited, b.TotalWithdrawn, b.TotalPayouts, b.TotalFees,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("update merchant balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant balance not found: %s", b.ID)
	}
	return nil
}

func scanBalance(row pgx.Row) (*domain.MerchantBalance, error) {
	b := &domain.MerchantBalance{}
	err := row.Scan(
		&b.ID, &b.MerchantID, &b.Currency,
		&b.Available, &b.Pending, &b.Reserved,
		&b.TotalDeposited, &b.TotalWithdrawn, &b.TotalPayouts, &b.TotalFees,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan merchant balance: %w", err)
	}
	return b, nil
}
