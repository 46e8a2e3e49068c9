package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BatchRepo implements ports.BatchRepository.
type BatchRepo struct {
	pool Pool
}

// NewBatchRepo creates a new BatchRepo.
func NewBatchRepo(pool Pool) *BatchRepo {
	return &BatchRepo{pool: pool}
}

// Create inserts a new payout batch.
func (r *BatchRepo) Create(ctx context.Context, b *domain.PayoutBatch) error {
	query := `INSERT INTO payout_batches (id, merchant_id, total_amount, count, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.MerchantID, b.TotalAmount, b.Count, b.Status, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout batch: %w", err)
	}
	return nil
}

// GetByID fetches a batch by its UUID.
func (r *BatchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutBatch, error) {
	query := `SELECT id, merchant_id, total_amount, count, status, created_at
		FROM payout_batches WHERE id = $1`

	b := &domain.PayoutBatch{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.MerchantID, &b.TotalAmount, &b.Count, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout batch: %w", err)
	}
	return b, nil
}

// UpdateStatus records the batch's aggregate outcome and final total.
func (r *BatchRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, totalAmount int64) error {
	query := `UPDATE payout_batches SET status = $1, total_amount = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, status, totalAmount, id)
	if err != nil {
		return fmt.Errorf("update payout batch status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payout batch not found: %s", id)
	}
	return nil
}
