package postgres

import (
	"context"
	"fmt"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceTxRepo implements ports.BalanceTransactionRepository.
// Append-only, like the treasury log.
type BalanceTxRepo struct {
	pool Pool
}

// NewBalanceTxRepo creates a new BalanceTxRepo.
func NewBalanceTxRepo(pool Pool) *BalanceTxRepo {
	return &BalanceTxRepo{pool: pool}
}

const balanceTxColumns = `id, recipient_id, type, amount, currency, payout_id, tx_signature, balance_after, created_at`

// Create appends a balance log entry within a database transaction.
func (r *BalanceTxRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.BalanceTransaction) error {
	query := `INSERT INTO balance_transactions (id, recipient_id, type, amount, currency, payout_id, tx_signature, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.RecipientID, t.Type, t.Amount, t.Currency,
		t.PayoutID, t.TxSignature, t.BalanceAfter, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert balance transaction: %w", err)
	}
	return nil
}

// List returns the most recent balance entries for a recipient, newest first.
func (r *BalanceTxRepo) List(ctx context.Context, recipientID uuid.UUID, limit int) ([]domain.BalanceTransaction, error) {
	query := `SELECT ` + balanceTxColumns + ` FROM balance_transactions
		WHERE recipient_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list balance transactions: %w", err)
	}
	defer rows.Close()

	var entries []domain.BalanceTransaction
	for rows.Next() {
		var t domain.BalanceTransaction
		if err := rows.Scan(
			&t.ID, &t.RecipientID, &t.Type, &t.Amount, &t.Currency,
			&t.PayoutID, &t.TxSignature, &t.BalanceAfter, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan balance transaction: %w", err)
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}
