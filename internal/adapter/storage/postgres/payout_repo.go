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

// PayoutRepo implements ports.PayoutRepository.
type PayoutRepo struct {
	pool Pool
}

// NewPayoutRepo creates a new PayoutRepo.
func NewPayoutRepo(pool Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

const payoutColumns = `id, merchant_id, merchant_wallet, email, amount, fee, currency, memo, metadata, status, claim_token, claim_url, recipient_wallet, tx_signature, batch_id, created_at, funded_at, claimed_at, expired_at, expires_at`

// Create inserts a new payout.
func (r *PayoutRepo) Create(ctx context.Context, p *domain.Payout) error {
	query := `INSERT INTO payouts (id, merchant_id, merchant_wallet, email, amount, fee, currency, memo, metadata, status, claim_token, claim_url, recipient_wallet, tx_signature, batch_id, created_at, funded_at, claimed_at, expired_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.MerchantID, p.MerchantWallet, p.Email,
		p.Amount, p.Fee, p.Currency, p.Memo, p.Metadata,
		p.Status, p.ClaimToken, p.ClaimURL,
		p.RecipientWallet, p.TxSignature, p.BatchID,
		p.CreatedAt, p.FundedAt, p.ClaimedAt, p.ExpiredAt, p.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout: %w", err)
	}
	return nil
}

// GetByID fetches a payout by its UUID.
func (r *PayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`
	return scanPayout(r.pool.QueryRow(ctx, query, id))
}

// GetByClaimToken fetches a payout by its claim token.
func (r *PayoutRepo) GetByClaimToken(ctx context.Context, claimToken string) (*domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE claim_token = $1`
	return scanPayout(r.pool.QueryRow(ctx, query, claimToken))
}

// Claim transitions sent -> claimed and records the destination wallet
// and settlement signature. The WHERE status = 'sent' guard makes the
// transition first-writer-wins; a caller that lost the race gets nil and
// the stored claim is never overwritten.
func (r *PayoutRepo) Claim(ctx context.Context, id uuid.UUID, recipientWallet, txSignature string, claimedAt time.Time) (*domain.Payout, error) {
	query := `UPDATE payouts
		SET status = $1, recipient_wallet = $2, tx_signature = $3, claimed_at = $4
		WHERE id = $5 AND status = $6
		RETURNING ` + payoutColumns

	return scanPayout(r.pool.QueryRow(ctx, query,
		domain.PayoutStatusClaimed, recipientWallet, txSignature, claimedAt,
		id, domain.PayoutStatusSent,
	))
}

// UpdateStatus transitions sent -> expired or sent -> failed. Returns
// false when the payout had already left sent.
func (r *PayoutRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, at time.Time) (bool, error) {
	query := `UPDATE payouts SET status = $1, expired_at = $2 WHERE id = $3 AND status = $4`

	tag, err := r.pool.Exec(ctx, query, status, at, id, domain.PayoutStatusSent)
	if err != nil {
		return false, fmt.Errorf("update payout status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByMerchant returns a page of a merchant's payouts, newest first,
// plus the total count for pagination.
func (r *PayoutRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]domain.Payout, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payouts WHERE merchant_id = $1`, merchantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payouts by merchant: %w", err)
	}

	query := `SELECT ` + payoutColumns + ` FROM payouts
		WHERE merchant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	payouts, err := r.listPayouts(ctx, query, merchantID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return payouts, total, nil
}

// ListByEmail returns a page of payouts addressed to an email, newest
// first, plus the total count.
func (r *PayoutRepo) ListByEmail(ctx context.Context, email string, limit, offset int) ([]domain.Payout, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payouts WHERE email = $1`, email).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payouts by email: %w", err)
	}

	query := `SELECT ` + payoutColumns + ` FROM payouts
		WHERE email = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	payouts, err := r.listPayouts(ctx, query, email, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return payouts, total, nil
}

func (r *PayoutRepo) listPayouts(ctx context.Context, query string, args ...any) ([]domain.Payout, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		if err := rows.Scan(
			&p.ID, &p.MerchantID, &p.MerchantWallet, &p.Email,
			&p.Amount, &p.Fee, &p.Currency, &p.Memo, &p.Metadata,
			&p.Status, &p.ClaimToken, &p.ClaimURL,
			&p.RecipientWallet, &p.TxSignature, &p.BatchID,
			&p.CreatedAt, &p.FundedAt, &p.ClaimedAt, &p.ExpiredAt, &p.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("scan payout: %w", err)
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	p := &domain.Payout{}
	err := row.Scan(
		&p.ID, &p.MerchantID, &p.MerchantWallet, &p.Email,
		&p.Amount, &p.Fee, &p.Currency, &p.Memo, &p.Metadata,
		&p.Status, &p.ClaimToken, &p.ClaimURL,
		&p.RecipientWallet, &p.TxSignature, &p.BatchID,
		&p.CreatedAt, &p.FundedAt, &p.ClaimedAt, &p.ExpiredAt, &p.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payout: %w", err)
	}
	return p, nil
}
