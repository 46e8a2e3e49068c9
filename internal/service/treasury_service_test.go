package service

import (
	"context"
	"testing"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/core/ports/mocks"
	"settlr/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type treasuryTestDeps struct {
	svc         *TreasuryServiceImpl
	balanceRepo *mocks.MockBalanceRepository
	txLogRepo   *mocks.MockTreasuryTransactionRepository
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupTreasuryService(t *testing.T) *treasuryTestDeps {
	ctrl := gomock.NewController(t)
	d := &treasuryTestDeps{
		balanceRepo: mocks.NewMockBalanceRepository(ctrl),
		txLogRepo:   mocks.NewMockTreasuryTransactionRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewTreasuryService(d.balanceRepo, d.txLogRepo, d.transactor, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func balanceFixture(merchantID uuid.UUID, available int64) *domain.MerchantBalance {
	return &domain.MerchantBalance{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Currency:   "USDC",
		Available:  available,
	}
}

// ==================== Reserve Tests ====================

func TestTreasuryService_Reserve_Success(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}
	balance := balanceFixture(merchantID, 1000)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().CreateIfAbsent(ctx, tx, merchantID, "USDC").Return(nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balance, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReserved).Return(false, nil)
	d.balanceRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.txLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, entry *domain.TreasuryTransaction) error {
			assert.Equal(t, domain.TreasuryTypePayoutReserved, entry.Type)
			assert.Equal(t, int64(101), entry.Amount)
			assert.Equal(t, int64(101), entry.BalanceAfter)
			require.NotNil(t, entry.PayoutID)
			assert.Equal(t, payoutID, *entry.PayoutID)
			return nil
		})

	result, err := d.svc.Reserve(ctx, merchantID, "USDC", 100, 1, payoutID)
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.Equal(t, int64(899), result.Balance.Available)
	assert.Equal(t, int64(101), result.Balance.Reserved)
}

func TestTreasuryService_Reserve_InsufficientBalance(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}
	balance := balanceFixture(merchantID, 10)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().CreateIfAbsent(ctx, tx, merchantID, "USDC").Return(nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balance, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReserved).Return(false, nil)
	// No Update, no Create: rejection must not mutate anything.

	result, err := d.svc.Reserve(ctx, merchantID, "USDC", 500, 25, payoutID)
	require.NoError(t, err)
	require.False(t, result.OK)
	assert.Equal(t, "Insufficient balance", result.Error)
	assert.Equal(t, int64(10), result.Balance.Available)
	assert.Equal(t, int64(0), result.Balance.Reserved)
}

func TestTreasuryService_Reserve_DuplicatePayout(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().CreateIfAbsent(ctx, tx, merchantID, "USDC").Return(nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balanceFixture(merchantID, 1000), nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReserved).Return(true, nil)

	_, err := d.svc.Reserve(ctx, merchantID, "USDC", 100, 1, payoutID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_004", appErr.Code)
}

func TestTreasuryService_Reserve_InvalidAmount(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Reserve(context.Background(), uuid.New(), "USDC", 0, 1, uuid.New())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_002", appErr.Code)
}

// ==================== Release Tests ====================

func TestTreasuryService_Release_Success(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}
	// State after the reserve in scenario terms: available=899, reserved=101
	balance := balanceFixture(merchantID, 899)
	balance.Reserved = 101

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balance, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReserved).Return(true, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReleased).Return(false, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutRefund).Return(false, nil)
	d.balanceRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	var entryTypes []domain.TreasuryTransactionType
	d.txLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, entry *domain.TreasuryTransaction) error {
			entryTypes = append(entryTypes, entry.Type)
			return nil
		})

	result, err := d.svc.Release(ctx, merchantID, "USDC", 100, 1, payoutID)
	require.NoError(t, err)
	assert.Equal(t, int64(899), result.Available)
	assert.Equal(t, int64(0), result.Reserved)
	assert.Equal(t, int64(100), result.TotalPayouts)
	assert.Equal(t, int64(1), result.TotalFees)
	assert.Equal(t, []domain.TreasuryTransactionType{
		domain.TreasuryTypePayoutReleased,
		domain.TreasuryTypeFeeDeducted,
	}, entryTypes)
}

func TestTreasuryService_Release_NoReservation(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balanceFixture(merchantID, 899), nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReserved).Return(false, nil)

	_, err := d.svc.Release(ctx, merchantID, "USDC", 100, 1, payoutID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_006", appErr.Code)
}

func TestTreasuryService_Release_AlreadySettled(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}
	balance := balanceFixture(merchantID, 899)
	balance.Reserved = 101

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balance, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReserved).Return(true, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReleased).Return(true, nil)

	_, err := d.svc.Release(ctx, merchantID, "USDC", 100, 1, payoutID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_004", appErr.Code)
}

// ==================== Refund Tests ====================

func TestTreasuryService_Refund_RestoresAvailable(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}
	balance := balanceFixture(merchantID, 899)
	balance.Reserved = 101

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balance, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReserved).Return(true, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutReleased).Return(false, nil)
	d.txLogRepo.EXPECT().ExistsForPayout(ctx, tx, payoutID, domain.TreasuryTypePayoutRefund).Return(false, nil)
	d.balanceRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.txLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, entry *domain.TreasuryTransaction) error {
			assert.Equal(t, domain.TreasuryTypePayoutRefund, entry.Type)
			assert.Equal(t, int64(1000), entry.BalanceAfter)
			return nil
		})

	result, err := d.svc.Refund(ctx, merchantID, "USDC", 100, 1, payoutID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.Available)
	assert.Equal(t, int64(0), result.Reserved)
	assert.Equal(t, int64(0), result.TotalPayouts)
	assert.Equal(t, int64(0), result.TotalFees)
}

// ==================== Credit Tests ====================

func TestTreasuryService_Credit_Success(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	balance := balanceFixture(merchantID, 500)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().CreateIfAbsent(ctx, tx, merchantID, "USDC").Return(nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, merchantID, "USDC").Return(balance, nil)
	d.balanceRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.txLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, entry *domain.TreasuryTransaction) error {
			assert.Equal(t, domain.TreasuryTypeDeposit, entry.Type)
			assert.Equal(t, int64(750), entry.BalanceAfter)
			return nil
		})

	result, err := d.svc.Credit(ctx, ports.CreditRequest{
		MerchantID: merchantID,
		Amount:     250,
		Currency:   "USDC",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(750), result.Available)
	assert.Equal(t, int64(250), result.TotalDeposited)
}

func TestTreasuryService_Credit_RejectsNonPositive(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	for _, amount := range []int64{0, -5} {
		_, err := d.svc.Credit(context.Background(), ports.CreditRequest{
			MerchantID: uuid.New(),
			Amount:     amount,
			Currency:   "USDC",
		})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "LGR_002", appErr.Code)
	}
}

// ==================== GetTransactions Tests ====================

func TestTreasuryService_GetTransactions_BoundsLimit(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()

	d.txLogRepo.EXPECT().List(ctx, merchantID, ports.TreasuryTxListParams{Limit: defaultTxListLimit}).Return(nil, nil)
	_, err := d.svc.GetTransactions(ctx, merchantID, ports.TreasuryTxListParams{})
	require.NoError(t, err)

	d.txLogRepo.EXPECT().List(ctx, merchantID, ports.TreasuryTxListParams{Limit: maxTxListLimit}).Return(nil, nil)
	_, err = d.svc.GetTransactions(ctx, merchantID, ports.TreasuryTxListParams{Limit: 5000})
	require.NoError(t, err)
}
