package service

import (
	"context"
	"testing"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/core/ports/mocks"
	"settlr/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc          *AuthServiceImpl
	merchantRepo *mocks.MockMerchantRepository
	hashSvc      *mocks.MockHashService
	encSvc       *mocks.MockEncryptionService
	tokenSvc     *mocks.MockTokenService
	ctrl         *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		merchantRepo: mocks.NewMockMerchantRepository(ctrl),
		hashSvc:      mocks.NewMockHashService(ctrl),
		encSvc:       mocks.NewMockEncryptionService(ctrl),
		tokenSvc:     mocks.NewMockTokenService(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewAuthService(d.merchantRepo, d.hashSvc, d.encSvc, d.tokenSvc)
	return d
}

func TestAuthService_Register_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.RegisterMerchantRequest{
		Username:      "acme",
		Password:      "p@ssword",
		MerchantName:  "ACME Corp",
		WalletAddress: testMerchantWallet,
	}

	d.merchantRepo.EXPECT().GetByUsername(ctx, "acme").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("p@ssword").Return("hashed", nil)
	d.encSvc.EXPECT().Encrypt(gomock.Any()).Return("enc-secret", nil)
	d.merchantRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Merchant) error {
			assert.Equal(t, "hashed", m.PasswordHash)
			assert.Equal(t, domain.MerchantStatusActive, m.Status)
			assert.Len(t, m.APIKey, 64)
			require.NotNil(t, m.WebhookSecretEnc)
			assert.Equal(t, "enc-secret", *m.WebhookSecretEnc)
			return nil
		})

	resp, err := d.svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Len(t, resp.APIKey, 64)
	assert.Len(t, resp.WebhookSecret, 64)
}

func TestAuthService_Register_UsernameExists(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.merchantRepo.EXPECT().GetByUsername(ctx, "acme").Return(&domain.Merchant{}, nil)

	_, err := d.svc.Register(ctx, ports.RegisterMerchantRequest{
		Username:      "acme",
		Password:      "p",
		WalletAddress: testMerchantWallet,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestAuthService_Register_InvalidWallet(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Register(context.Background(), ports.RegisterMerchantRequest{
		Username:      "acme",
		Password:      "p",
		WalletAddress: "bogus",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_005", appErr.Code)
}

func TestAuthService_Login_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := &domain.Merchant{
		ID:           uuid.New(),
		Username:     "acme",
		PasswordHash: "hashed",
		Status:       domain.MerchantStatusActive,
	}
	expiry := time.Now().Add(time.Hour)

	d.merchantRepo.EXPECT().GetByUsername(ctx, "acme").Return(merchant, nil)
	d.hashSvc.EXPECT().Verify("p@ssword", "hashed").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(merchant.ID, ports.TokenKindMerchant, "").Return("jwt", expiry, nil)

	token, exp, err := d.svc.Login(ctx, "acme", "p@ssword")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := &domain.Merchant{ID: uuid.New(), PasswordHash: "hashed", Status: domain.MerchantStatusActive}

	d.merchantRepo.EXPECT().GetByUsername(ctx, "acme").Return(merchant, nil)
	d.hashSvc.EXPECT().Verify("wrong", "hashed").Return(false, nil)

	_, _, err := d.svc.Login(ctx, "acme", "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.merchantRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	_, _, err := d.svc.Login(ctx, "ghost", "p")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_Suspended(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := &domain.Merchant{ID: uuid.New(), PasswordHash: "hashed", Status: domain.MerchantStatusSuspended}

	d.merchantRepo.EXPECT().GetByUsername(ctx, "acme").Return(merchant, nil)
	d.hashSvc.EXPECT().Verify("p", "hashed").Return(true, nil)

	_, _, err := d.svc.Login(ctx, "acme", "p")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_004", appErr.Code)
}
