package postgres

import (
	"context"
	"testing"
	"time"

	"settlr/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMerchant() *domain.Merchant {
	return &domain.Merchant{
		ID:               uuid.New(),
		Username:         "test_user",
		PasswordHash:     "$argon2id$v=19$m=65536,t=1,p=4$salt$hash",
		MerchantName:     "Test Shop",
		APIKey:           "ak_" + uuid.New().String()[:16],
		WalletAddress:    "So11111111111111111111111111111111111111112",
		WebhookURL:       strPtr("https://example.com/webhook"),
		WebhookSecretEnc: strPtr("encrypted_webhook_secret"),
		Status:           domain.MerchantStatusActive,
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}
}

func strPtr(s string) *string { return &s }

func merchantTestColumns() []string {
	return []string{"id", "username", "password_hash", "merchant_name", "api_key", "wallet_address", "webhook_url", "webhook_secret_enc", "status", "created_at", "updated_at"}
}

func merchantRow(m *domain.Merchant) *pgxmock.Rows {
	return pgxmock.NewRows(merchantTestColumns()).AddRow(
		m.ID, m.Username, m.PasswordHash, m.MerchantName,
		m.APIKey, m.WalletAddress, m.WebhookURL, m.WebhookSecretEnc,
		m.Status, m.CreatedAt, m.UpdatedAt,
	)
}

func TestMerchantRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectExec("INSERT INTO merchants").
		WithArgs(m.ID, m.Username, m.PasswordHash, m.MerchantName,
			m.APIKey, m.WalletAddress, m.WebhookURL, m.WebhookSecretEnc,
			m.Status, m.CreatedAt, m.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), m)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByAPIKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE api_key").
		WithArgs(m.APIKey).
		WillReturnRows(merchantRow(m))

	result, err := repo.GetByAPIKey(context.Background(), m.APIKey)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, m.ID, result.ID)
	assert.Equal(t, m.APIKey, result.APIKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(merchantTestColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE username").
		WithArgs(m.Username).
		WillReturnRows(merchantRow(m))

	result, err := repo.GetByUsername(context.Background(), m.Username)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, m.Username, result.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectExec("UPDATE merchants").
		WithArgs(m.MerchantName, m.WalletAddress, m.WebhookURL, m.WebhookSecretEnc, m.APIKey, m.Status, m.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Update(context.Background(), m)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
