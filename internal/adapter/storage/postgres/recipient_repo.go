package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecipientRepo implements ports.RecipientRepository.
type RecipientRepo struct {
	pool Pool
}

// NewRecipientRepo creates a new RecipientRepo.
func NewRecipientRepo(pool Pool) *RecipientRepo {
	return &RecipientRepo{pool: pool}
}

const recipientColumns = `id, email, wallet_address, display_name, auth_token, auth_token_expires_at, notifications_enabled, auto_withdraw, total_received, total_payouts, created_at, updated_at, last_payout_at`

// CreateIfAbsent inserts the recipient unless the email is already
// registered, then reads back the stored row. The unique index on email
// arbitrates concurrent first registrations; the loser's insert is a
// no-op and both callers observe the same stored record.
func (r *RecipientRepo) CreateIfAbsent(ctx context.Context, rec *domain.Recipient) (*domain.Recipient, error) {
	insert := `INSERT INTO recipients (id, email, wallet_address, display_name, notifications_enabled, auto_withdraw, total_received, total_payouts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0, $7, $8)
		ON CONFLICT (email) DO NOTHING`

	_, err := r.pool.Exec(ctx, insert,
		rec.ID, rec.Email, rec.WalletAddress, rec.DisplayName,
		rec.NotificationsEnabled, rec.AutoWithdraw,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert recipient: %w", err)
	}

	stored, err := r.GetByEmail(ctx, rec.Email)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("recipient vanished after upsert: %s", rec.Email)
	}
	return stored, nil
}

// GetByEmail fetches a recipient by normalized email.
func (r *RecipientRepo) GetByEmail(ctx context.Context, email string) (*domain.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM recipients WHERE email = $1`
	return scanRecipient(r.pool.QueryRow(ctx, query, email))
}

// GetByID fetches a recipient by its UUID.
func (r *RecipientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM recipients WHERE id = $1`
	return scanRecipient(r.pool.QueryRow(ctx, query, id))
}

// Update writes back mutable recipient fields.
func (r *RecipientRepo) Update(ctx context.Context, rec *domain.Recipient) error {
	query := `UPDATE recipients
		SET wallet_address = $1, display_name = $2, notifications_enabled = $3, auto_withdraw = $4, updated_at = NOW()
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query,
		rec.WalletAddress, rec.DisplayName, rec.NotificationsEnabled, rec.AutoWithdraw, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update recipient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipient not found: %s", rec.ID)
	}
	return nil
}

// IncrementStats applies the delivered-payout stat bump in one statement
// so concurrent claims never lose an increment.
func (r *RecipientRepo) IncrementStats(ctx context.Context, email string, amount int64, at time.Time) error {
	query := `UPDATE recipients
		SET total_received = total_received + $1, total_payouts = total_payouts + 1, last_payout_at = $2, updated_at = NOW()
		WHERE email = $3`

	tag, err := r.pool.Exec(ctx, query, amount, at, email)
	if err != nil {
		return fmt.Errorf("increment recipient stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipient not found: %s", email)
	}
	return nil
}

// SetAuthToken stores a fresh one-time login token, replacing any token
// still outstanding.
func (r *RecipientRepo) SetAuthToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	query := `UPDATE recipients
		SET auth_token = $1, auth_token_expires_at = $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, token, expiresAt, id)
	if err != nil {
		return fmt.Errorf("set recipient auth token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipient not found: %s", id)
	}
	return nil
}

// ConsumeAuthToken clears a stored, unexpired token and returns its
// recipient in a single conditional UPDATE, so a token can never be
// redeemed twice even under concurrent attempts.
func (r *RecipientRepo) ConsumeAuthToken(ctx context.Context, token string, now time.Time) (*domain.Recipient, error) {
	query := `UPDATE recipients
		SET auth_token = NULL, auth_token_expires_at = NULL, updated_at = NOW()
		WHERE auth_token = $1 AND auth_token_expires_at > $2
		RETURNING ` + recipientColumns

	return scanRecipient(r.pool.QueryRow(ctx, query, token, now))
}

func scanRecipient(row pgx.Row) (*domain.Recipient, error) {
	rec := &domain.Recipient{}
	err := row.Scan(
		&rec.ID, &rec.Email, &rec.WalletAddress, &rec.DisplayName,
		&rec.AuthToken, &rec.AuthTokenExpiresAt,
		&rec.NotificationsEnabled, &rec.AutoWithdraw,
		&rec.TotalReceived, &rec.TotalPayouts,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.LastPayoutAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan recipient: %w", err)
	}
	return rec, nil
}
