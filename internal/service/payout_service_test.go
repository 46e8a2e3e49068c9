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
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testMerchantWallet  = "So11111111111111111111111111111111111111112"
	testRecipientWallet = "11111111111111111111111111111111"
)

type payoutTestDeps struct {
	svc          *PayoutServiceImpl
	payoutRepo   *mocks.MockPayoutRepository
	batchRepo    *mocks.MockBatchRepository
	treasurySvc  *mocks.MockTreasuryService
	recipientSvc *mocks.MockRecipientService
	ledgerSvc    *mocks.MockRecipientLedgerService
	webhookSvc   *mocks.MockWebhookService
	ctrl         *gomock.Controller
}

func setupPayoutService(t *testing.T) *payoutTestDeps {
	ctrl := gomock.NewController(t)
	d := &payoutTestDeps{
		payoutRepo:   mocks.NewMockPayoutRepository(ctrl),
		batchRepo:    mocks.NewMockBatchRepository(ctrl),
		treasurySvc:  mocks.NewMockTreasuryService(ctrl),
		recipientSvc: mocks.NewMockRecipientService(ctrl),
		ledgerSvc:    mocks.NewMockRecipientLedgerService(ctrl),
		webhookSvc:   mocks.NewMockWebhookService(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewPayoutService(
		d.payoutRepo, d.batchRepo, d.treasurySvc, d.recipientSvc, d.ledgerSvc, d.webhookSvc,
		"https://pay.example.com", 7*24*time.Hour, "USDC", zerolog.Nop(),
	)
	return d
}

// ==================== CreatePayout Tests ====================

func TestPayoutService_CreatePayout_Success(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()

	d.treasurySvc.EXPECT().
		Reserve(ctx, merchantID, "USDC", int64(10000), int64(100), gomock.Any()).
		Return(&ports.ReserveResult{OK: true}, nil)
	d.payoutRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.recipientSvc.EXPECT().AutoDeliveryTarget(ctx, "alice@example.com").Return("", false, nil)
	d.webhookSvc.EXPECT().EnqueuePayoutEvent(ctx, ports.EventPayoutSent, gomock.Any()).Return(nil)

	payout, err := d.svc.CreatePayout(ctx, ports.CreatePayoutRequest{
		MerchantID:     merchantID,
		MerchantWallet: testMerchantWallet,
		Email:          "  Alice@Example.COM ",
		Amount:         10000,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", payout.Email)
	assert.Equal(t, domain.PayoutStatusSent, payout.Status)
	assert.Equal(t, int64(100), payout.Fee)
	assert.Equal(t, "USDC", payout.Currency)
	assert.Len(t, payout.ClaimToken, 64)
	assert.Contains(t, payout.ClaimURL, payout.ClaimToken)
	assert.True(t, payout.ExpiresAt.After(payout.CreatedAt))
}

func TestPayoutService_CreatePayout_DistinctTokens(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()

	d.treasurySvc.EXPECT().
		Reserve(ctx, merchantID, "USDC", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.ReserveResult{OK: true}, nil).Times(2)
	d.payoutRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	d.recipientSvc.EXPECT().AutoDeliveryTarget(ctx, gomock.Any()).Return("", false, nil).Times(2)
	d.webhookSvc.EXPECT().EnqueuePayoutEvent(ctx, ports.EventPayoutSent, gomock.Any()).Return(nil).Times(2)

	first, err := d.svc.CreatePayout(ctx, ports.CreatePayoutRequest{
		MerchantID: merchantID, MerchantWallet: testMerchantWallet,
		Email: "bob@example.com", Amount: 5000,
	})
	require.NoError(t, err)
	second, err := d.svc.CreatePayout(ctx, ports.CreatePayoutRequest{
		MerchantID: merchantID, MerchantWallet: testMerchantWallet,
		Email: "bob@example.com", Amount: 7500,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.ClaimToken, second.ClaimToken)
}

func TestPayoutService_CreatePayout_InsufficientBalance(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()

	d.treasurySvc.EXPECT().
		Reserve(ctx, merchantID, "USDC", int64(10000), int64(100), gomock.Any()).
		Return(&ports.ReserveResult{OK: false, Error: "Insufficient balance"}, nil)
	// No payout persisted, no webhook.

	_, err := d.svc.CreatePayout(ctx, ports.CreatePayoutRequest{
		MerchantID:     merchantID,
		MerchantWallet: testMerchantWallet,
		Email:          "alice@example.com",
		Amount:         10000,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_001", appErr.Code)
}

func TestPayoutService_CreatePayout_PersistFailureRefunds(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()

	d.treasurySvc.EXPECT().
		Reserve(ctx, merchantID, "USDC", int64(10000), int64(100), gomock.Any()).
		Return(&ports.ReserveResult{OK: true}, nil)
	d.payoutRepo.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError)
	d.treasurySvc.EXPECT().
		Refund(ctx, merchantID, "USDC", int64(10000), int64(100), gomock.Any()).
		Return(&domain.MerchantBalance{}, nil)

	_, err := d.svc.CreatePayout(ctx, ports.CreatePayoutRequest{
		MerchantID:     merchantID,
		MerchantWallet: testMerchantWallet,
		Email:          "alice@example.com",
		Amount:         10000,
	})
	require.Error(t, err)
}

func TestPayoutService_CreatePayout_InvalidWallet(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreatePayout(context.Background(), ports.CreatePayoutRequest{
		MerchantID:     uuid.New(),
		MerchantWallet: "not-a-wallet",
		Email:          "alice@example.com",
		Amount:         10000,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_005", appErr.Code)
}

// ==================== ClaimPayout Tests ====================

func sentPayout(merchantID uuid.UUID) *domain.Payout {
	now := time.Now().UTC()
	return &domain.Payout{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Email:      "alice@example.com",
		Amount:     10000,
		Fee:        100,
		Currency:   "USDC",
		Status:     domain.PayoutStatusSent,
		ClaimToken: "tok",
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}
}

func TestPayoutService_ClaimPayout_Success(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payout := sentPayout(merchantID)

	claimed := *payout
	claimed.Status = domain.PayoutStatusClaimed
	wallet := testRecipientWallet
	sig := "sig-123"
	claimed.RecipientWallet = &wallet
	claimed.TxSignature = &sig

	d.payoutRepo.EXPECT().GetByClaimToken(ctx, "tok").Return(payout, nil)
	d.payoutRepo.EXPECT().Claim(ctx, payout.ID, testRecipientWallet, "sig-123", gomock.Any()).Return(&claimed, nil)
	d.treasurySvc.EXPECT().Release(ctx, merchantID, "USDC", int64(10000), int64(100), payout.ID).Return(&domain.MerchantBalance{}, nil)
	d.recipientSvc.EXPECT().RegisterIfAbsent(ctx, ports.RegisterRecipientRequest{
		Email:         "alice@example.com",
		WalletAddress: testRecipientWallet,
	}).Return(&domain.Recipient{Email: "alice@example.com", AutoWithdraw: true}, nil)
	d.recipientSvc.EXPECT().UpdateStats(ctx, "alice@example.com", int64(10000)).Return(nil)
	d.webhookSvc.EXPECT().EnqueuePayoutEvent(ctx, ports.EventPayoutClaimed, gomock.Any()).Return(nil)

	result, err := d.svc.ClaimPayout(ctx, ports.ClaimPayoutRequest{
		ClaimToken:      "tok",
		RecipientWallet: testRecipientWallet,
		TxSignature:     "sig-123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutStatusClaimed, result.Status)
	require.NotNil(t, result.RecipientWallet)
	assert.Equal(t, testRecipientWallet, *result.RecipientWallet)
}

func TestPayoutService_ClaimPayout_AutoWithdrawOff_CreditsLedger(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payout := sentPayout(merchantID)

	claimed := *payout
	claimed.Status = domain.PayoutStatusClaimed
	wallet := testRecipientWallet
	sig := "sig-123"
	claimed.RecipientWallet = &wallet
	claimed.TxSignature = &sig

	recipientID := uuid.New()

	d.payoutRepo.EXPECT().GetByClaimToken(ctx, "tok").Return(payout, nil)
	d.payoutRepo.EXPECT().Claim(ctx, payout.ID, testRecipientWallet, "sig-123", gomock.Any()).Return(&claimed, nil)
	d.treasurySvc.EXPECT().Release(ctx, merchantID, "USDC", int64(10000), int64(100), payout.ID).Return(&domain.MerchantBalance{}, nil)
	d.recipientSvc.EXPECT().RegisterIfAbsent(ctx, gomock.Any()).
		Return(&domain.Recipient{ID: recipientID, Email: "alice@example.com", AutoWithdraw: false}, nil)
	d.recipientSvc.EXPECT().UpdateStats(ctx, "alice@example.com", int64(10000)).Return(nil)
	d.ledgerSvc.EXPECT().CreditBalance(ctx, recipientID, "USDC", int64(10000), payout.ID).
		Return(&domain.RecipientBalance{Balance: 10000}, nil)
	d.webhookSvc.EXPECT().EnqueuePayoutEvent(ctx, ports.EventPayoutClaimed, gomock.Any()).Return(nil)

	_, err := d.svc.ClaimPayout(ctx, ports.ClaimPayoutRequest{
		ClaimToken:      "tok",
		RecipientWallet: testRecipientWallet,
		TxSignature:     "sig-123",
	})
	require.NoError(t, err)
}

func TestPayoutService_ClaimPayout_AlreadyClaimed(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payout := sentPayout(uuid.New())
	payout.Status = domain.PayoutStatusClaimed
	originalWallet := "original-wallet"
	payout.RecipientWallet = &originalWallet

	d.payoutRepo.EXPECT().GetByClaimToken(ctx, "tok").Return(payout, nil)
	// No Claim call: the original claim must never be overwritten.

	_, err := d.svc.ClaimPayout(ctx, ports.ClaimPayoutRequest{
		ClaimToken:      "tok",
		RecipientWallet: testRecipientWallet,
		TxSignature:     "sig-other",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYOUT_001", appErr.Code)
	assert.Equal(t, "original-wallet", *payout.RecipientWallet)
}

func TestPayoutService_ClaimPayout_Expired(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payout := sentPayout(uuid.New())
	payout.ExpiresAt = time.Now().UTC().Add(-time.Minute)

	d.payoutRepo.EXPECT().GetByClaimToken(ctx, "tok").Return(payout, nil)

	_, err := d.svc.ClaimPayout(ctx, ports.ClaimPayoutRequest{
		ClaimToken:      "tok",
		RecipientWallet: testRecipientWallet,
		TxSignature:     "sig",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYOUT_002", appErr.Code)
}

func TestPayoutService_ClaimPayout_LostRace(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payout := sentPayout(uuid.New())

	d.payoutRepo.EXPECT().GetByClaimToken(ctx, "tok").Return(payout, nil)
	d.payoutRepo.EXPECT().Claim(ctx, payout.ID, testRecipientWallet, "sig", gomock.Any()).Return(nil, nil)

	_, err := d.svc.ClaimPayout(ctx, ports.ClaimPayoutRequest{
		ClaimToken:      "tok",
		RecipientWallet: testRecipientWallet,
		TxSignature:     "sig",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYOUT_001", appErr.Code)
}

func TestPayoutService_ClaimPayout_NotFound(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.payoutRepo.EXPECT().GetByClaimToken(ctx, "missing").Return(nil, nil)

	_, err := d.svc.ClaimPayout(ctx, ports.ClaimPayoutRequest{
		ClaimToken:      "missing",
		RecipientWallet: testRecipientWallet,
		TxSignature:     "sig",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_003", appErr.Code)
}

// ==================== ExpirePayout Tests ====================

func TestPayoutService_ExpirePayout_RefundsReservation(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payout := sentPayout(merchantID)

	d.payoutRepo.EXPECT().GetByID(ctx, payout.ID).Return(payout, nil)
	d.payoutRepo.EXPECT().UpdateStatus(ctx, payout.ID, domain.PayoutStatusExpired, gomock.Any()).Return(true, nil)
	d.treasurySvc.EXPECT().Refund(ctx, merchantID, "USDC", int64(10000), int64(100), payout.ID).Return(&domain.MerchantBalance{}, nil)
	d.webhookSvc.EXPECT().EnqueuePayoutEvent(ctx, ports.EventPayoutExpired, gomock.Any()).Return(nil)

	result, err := d.svc.ExpirePayout(ctx, merchantID, payout.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutStatusExpired, result.Status)
}

func TestPayoutService_ExpirePayout_AlreadyClaimed(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payout := sentPayout(merchantID)
	payout.Status = domain.PayoutStatusClaimed

	d.payoutRepo.EXPECT().GetByID(ctx, payout.ID).Return(payout, nil)

	_, err := d.svc.ExpirePayout(ctx, merchantID, payout.ID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYOUT_001", appErr.Code)
}

func TestPayoutService_ExpirePayout_WrongMerchant(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payout := sentPayout(uuid.New())

	d.payoutRepo.EXPECT().GetByID(ctx, payout.ID).Return(payout, nil)

	_, err := d.svc.ExpirePayout(ctx, uuid.New(), payout.ID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_003", appErr.Code)
}

// ==================== CreateBatch Tests ====================

func TestPayoutService_CreateBatch_PartialFailure(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()

	d.batchRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	// First member reserves fine, second hits insufficient balance.
	first := d.treasurySvc.EXPECT().
		Reserve(ctx, merchantID, "USDC", int64(5000), int64(50), gomock.Any()).
		Return(&ports.ReserveResult{OK: true}, nil)
	d.treasurySvc.EXPECT().
		Reserve(ctx, merchantID, "USDC", int64(900000), int64(9000), gomock.Any()).
		Return(&ports.ReserveResult{OK: false, Error: "Insufficient balance"}, nil).
		After(first)
	d.payoutRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.recipientSvc.EXPECT().AutoDeliveryTarget(ctx, "a@example.com").Return("", false, nil)
	d.webhookSvc.EXPECT().EnqueuePayoutEvent(ctx, ports.EventPayoutSent, gomock.Any()).Return(nil)
	d.batchRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.BatchStatusPartial, int64(5000)).Return(nil)

	result, err := d.svc.CreateBatch(ctx, ports.CreateBatchRequest{
		MerchantID:     merchantID,
		MerchantWallet: testMerchantWallet,
		Currency:       "USDC",
		Items: []ports.BatchItem{
			{Email: "a@example.com", Amount: 5000},
			{Email: "b@example.com", Amount: 900000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BatchStatusPartial, result.Batch.Status)
	assert.Len(t, result.Payouts, 1)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 1, result.Failed[0].Index)
	assert.Equal(t, "b@example.com", result.Failed[0].Email)
	assert.Equal(t, "Insufficient balance", result.Failed[0].Error)
	assert.Equal(t, int64(5000), result.Batch.TotalAmount)
}

func TestPayoutService_CreateBatch_Empty(t *testing.T) {
	d := setupPayoutService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateBatch(context.Background(), ports.CreateBatchRequest{
		MerchantID: uuid.New(),
	})
	require.Error(t, err)
}
