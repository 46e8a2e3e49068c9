package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

const merchantColumns = `id, username, password_hash, merchant_name, api_key, wallet_address, webhook_url, webhook_secret_enc, status, created_at, updated_at`

// Create inserts a new merchant into the database.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (id, username, password_hash, merchant_name, api_key, wallet_address, webhook_url, webhook_secret_enc, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Username, m.PasswordHash, m.MerchantName,
		m.APIKey, m.WalletAddress, m.WebhookURL, m.WebhookSecretEnc,
		m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by its UUID.
func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, id), "id")
}

// GetByAPIKey fetches a merchant by its API key.
func (r *MerchantRepo) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE api_key = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, apiKey), "api_key")
}

// GetByUsername fetches a merchant by username.
func (r *MerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE username = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, username), "username")
}

// Update updates a merchant record.
func (r *MerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	query := `UPDATE merchants
		SET merchant_name=$1, wallet_address=$2, webhook_url=$3, webhook_secret_enc=$4, api_key=$5, status=$6, updated_at=NOW()
		WHERE id=$7`
	_, err := r.pool.Exec(ctx, query,
		m.MerchantName, m.WalletAddress, m.WebhookURL, m.WebhookSecretEnc, m.APIKey, m.Status, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update merchant: %w", err)
	}
	return nil
}

func (r *MerchantRepo) scanMerchant(row pgx.Row, by string) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := row.Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.MerchantName,
		&m.APIKey, &m.WalletAddress, &m.WebhookURL, &m.WebhookSecretEnc,
		&m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by %s: %w", by, err)
	}
	return m, nil
}
