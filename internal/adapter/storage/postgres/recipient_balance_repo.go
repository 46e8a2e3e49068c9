package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecipientBalanceRepo implements ports.RecipientBalanceRepository.
// Same locking contract as BalanceRepo: every read-modify-write goes
// through GetForUpdate inside a transaction.
type RecipientBalanceRepo struct {
	pool Pool
}

// NewRecipientBalanceRepo creates a new RecipientBalanceRepo.
func NewRecipientBalanceRepo(pool Pool) *RecipientBalanceRepo {
	return &RecipientBalanceRepo{pool: pool}
}

const recipientBalanceColumns = `id, recipient_id, currency, balance, created_at, updated_at`

// CreateIfAbsent inserts a zeroed balance row unless one already exists.
func (r *RecipientBalanceRepo) CreateIfAbsent(ctx context.Context, tx pgx.Tx, recipientID uuid.UUID, currency string) error {
	query := `INSERT INTO recipient_balances (id, recipient_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, 0, NOW(), NOW())
		ON CONFLICT (recipient_id, currency) DO NOTHING`

	_, err := tx.Exec(ctx, query, uuid.New(), recipientID, currency)
	if err != nil {
		return fmt.Errorf("insert recipient balance: %w", err)
	}
	return nil
}

// Get fetches a balance without locking.
func (r *RecipientBalanceRepo) Get(ctx context.Context, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error) {
	query := `SELECT ` + recipientBalanceColumns + ` FROM recipient_balances WHERE recipient_id = $1 AND currency = $2`
	return scanRecipientBalance(r.pool.QueryRow(ctx, query, recipientID, currency))
}

// GetForUpdate fetches a balance row with pessimistic locking.
// This MUST be called within a transaction.
func (r *RecipientBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error) {
	query := `SELECT ` + recipientBalanceColumns + ` FROM recipient_balances WHERE recipient_id = $1 AND currency = $2 FOR UPDATE`
	return scanRecipientBalance(tx.QueryRow(ctx, query, recipientID, currency))
}

// Update writes back a mutated balance row within a transaction.
func (r *RecipientBalanceRepo) Update(ctx context.Context, tx pgx.Tx, b *domain.RecipientBalance) error {
	query := `UPDATE recipient_balances SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, b.Balance, b.ID)
	if err != nil {
		return fmt.Errorf("update recipient balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipient balance not found: %s", b.ID)
	}
	return nil
}

func scanRecipientBalance(row pgx.Row) (*domain.RecipientBalance, error) {
	b := &domain.RecipientBalance{}
	err := row.Scan(&b.ID, &b.RecipientID, &b.Currency, &b.Balance, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan recipient balance: %w", err)
	}
	return b, nil
}
