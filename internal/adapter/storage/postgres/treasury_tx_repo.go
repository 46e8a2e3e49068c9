package postgres

import (
	"context"
	"fmt"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TreasuryTxRepo implements ports.TreasuryTransactionRepository.
// The treasury log is append-only; there is no update or delete path.
type TreasuryTxRepo struct {
	pool Pool
}

// NewTreasuryTxRepo creates a new TreasuryTxRepo.
func NewTreasuryTxRepo(pool Pool) *TreasuryTxRepo {
	return &TreasuryTxRepo{pool: pool}
}

const treasuryTxColumns = `id, merchant_id, type, amount, currency, payout_id, tx_signature, description, balance_after, created_at`

// Create appends a treasury log entry within a database transaction.
func (r *TreasuryTxRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.TreasuryTransaction) error {
	query := `INSERT INTO treasury_transactions (id, merchant_id, type, amount, currency, payout_id, tx_signature, description, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.MerchantID, t.Type, t.Amount, t.Currency,
		t.PayoutID, t.TxSignature, t.Description, t.BalanceAfter, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert treasury transaction: %w", err)
	}
	return nil
}

// List returns the most recent treasury entries for a merchant, newest
// first, optionally filtered by entry type.
func (r *TreasuryTxRepo) List(ctx context.Context, merchantID uuid.UUID, params ports.TreasuryTxListParams) ([]domain.TreasuryTransaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if params.Type != nil {
		query := `SELECT ` + treasuryTxColumns + ` FROM treasury_transactions
			WHERE merchant_id = $1 AND type = $2 ORDER BY created_at DESC LIMIT $3`
		rows, err = r.pool.Query(ctx, query, merchantID, *params.Type, params.Limit)
	} else {
		query := `SELECT ` + treasuryTxColumns + ` FROM treasury_transactions
			WHERE merchant_id = $1 ORDER BY created_at DESC LIMIT $2`
		rows, err = r.pool.Query(ctx, query, merchantID, params.Limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list treasury transactions: %w", err)
	}
	defer rows.Close()

	var entries []domain.TreasuryTransaction
	for rows.Next() {
		var t domain.TreasuryTransaction
		if err := rows.Scan(
			&t.ID, &t.MerchantID, &t.Type, &t.Amount, &t.Currency,
			&t.PayoutID, &t.TxSignature, &t.Description, &t.BalanceAfter, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan treasury transaction: %w", err)
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}

// ExistsForPayout reports whether an entry of the given type was already
// appended for a payout. Called while the balance row is locked, so the
// answer cannot go stale before commit.
func (r *TreasuryTxRepo) ExistsForPayout(ctx context.Context, tx pgx.Tx, payoutID uuid.UUID, entryType domain.TreasuryTransactionType) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM treasury_transactions WHERE payout_id = $1 AND type = $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, payoutID, entryType).Scan(&exists); err != nil {
		return false, fmt.Errorf("check treasury entry exists: %w", err)
	}
	return exists, nil
}
