package service

import (
	"context"
	"testing"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports/mocks"
	"settlr/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recipientLedgerTestDeps struct {
	svc         *recipientLedgerService
	balanceRepo *mocks.MockRecipientBalanceRepository
	txLogRepo   *mocks.MockBalanceTransactionRepository
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupRecipientLedger(t *testing.T) *recipientLedgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &recipientLedgerTestDeps{
		balanceRepo: mocks.NewMockRecipientBalanceRepository(ctrl),
		txLogRepo:   mocks.NewMockBalanceTransactionRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewRecipientLedgerService(d.balanceRepo, d.txLogRepo, d.transactor, zerolog.Nop()).(*recipientLedgerService)
	return d
}

func TestRecipientLedger_CreditBalance(t *testing.T) {
	d := setupRecipientLedger(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipientID := uuid.New()
	payoutID := uuid.New()
	tx := &mockTx{}
	balance := &domain.RecipientBalance{RecipientID: recipientID, Currency: "USDC", Balance: 100}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().CreateIfAbsent(ctx, tx, recipientID, "USDC").Return(nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, recipientID, "USDC").Return(balance, nil)
	d.balanceRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.txLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, entry *domain.BalanceTransaction) error {
			assert.Equal(t, domain.BalanceTypeCredit, entry.Type)
			assert.Equal(t, int64(150), entry.BalanceAfter)
			require.NotNil(t, entry.PayoutID)
			assert.Equal(t, payoutID, *entry.PayoutID)
			return nil
		})

	result, err := d.svc.CreditBalance(ctx, recipientID, "USDC", 50, payoutID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), result.Balance)
}

func TestRecipientLedger_DebitBalance_Insufficient(t *testing.T) {
	d := setupRecipientLedger(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipientID := uuid.New()
	tx := &mockTx{}
	balance := &domain.RecipientBalance{RecipientID: recipientID, Currency: "USDC", Balance: 10}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, recipientID, "USDC").Return(balance, nil)
	// No Update, no Create: balance stays 10.

	_, err := d.svc.DebitBalance(ctx, recipientID, "USDC", 50, "sig")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_001", appErr.Code)
	assert.Equal(t, int64(10), balance.Balance)
}

func TestRecipientLedger_DebitBalance_Success(t *testing.T) {
	d := setupRecipientLedger(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipientID := uuid.New()
	tx := &mockTx{}
	balance := &domain.RecipientBalance{RecipientID: recipientID, Currency: "USDC", Balance: 100}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, recipientID, "USDC").Return(balance, nil)
	d.balanceRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.txLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, entry *domain.BalanceTransaction) error {
			assert.Equal(t, domain.BalanceTypeWithdrawal, entry.Type)
			require.NotNil(t, entry.TxSignature)
			assert.Equal(t, "sig", *entry.TxSignature)
			return nil
		})

	result, err := d.svc.DebitBalance(ctx, recipientID, "USDC", 60, "sig")
	require.NoError(t, err)
	assert.Equal(t, int64(40), result.Balance)
}

func TestRecipientLedger_DebitBalance_MissingRow(t *testing.T) {
	d := setupRecipientLedger(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipientID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.balanceRepo.EXPECT().GetForUpdate(ctx, tx, recipientID, "USDC").Return(nil, nil)

	_, err := d.svc.DebitBalance(ctx, recipientID, "USDC", 60, "sig")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_003", appErr.Code)
}
