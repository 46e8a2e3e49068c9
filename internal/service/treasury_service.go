package service

import (
	"context"
	"fmt"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/metrics"
	"settlr/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	defaultTxListLimit = 20
	maxTxListLimit     = 100
)

// TreasuryServiceImpl implements ports.TreasuryService with pessimistic
// locking: every mutation locks the balance row, applies the change and
// appends the audit entry in one database transaction.
type TreasuryServiceImpl struct {
	balanceRepo ports.BalanceRepository
	txLogRepo   ports.TreasuryTransactionRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewTreasuryService creates a new TreasuryServiceImpl.
func NewTreasuryService(
	balanceRepo ports.BalanceRepository,
	txLogRepo ports.TreasuryTransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *TreasuryServiceImpl {
	return &TreasuryServiceImpl{
		balanceRepo: balanceRepo,
		txLogRepo:   txLogRepo,
		transactor:  transactor,
		log:         log,
	}
}

// GetOrCreateBalance returns the merchant balance for the currency,
// creating a zeroed row on first access. Concurrent calls for the same
// key never create duplicate rows.
func (s *TreasuryServiceImpl) GetOrCreateBalance(ctx context.Context, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.balanceRepo.CreateIfAbsent(ctx, dbTx, merchantID, currency); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create balance: %w", err))
	}
	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, merchantID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.InternalError(fmt.Errorf("balance row missing after create for merchant %s", merchantID))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return balance, nil
}

// Credit deposits funds into the merchant's available balance.
func (s *TreasuryServiceImpl) Credit(ctx context.Context, req ports.CreditRequest) (*domain.MerchantBalance, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.lockBalance(ctx, dbTx, req.MerchantID, req.Currency)
	if err != nil {
		return nil, err
	}

	balance.Available += req.Amount
	balance.TotalDeposited += req.Amount

	if err := s.balanceRepo.Update(ctx, dbTx, balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.TreasuryTransaction{
		ID:           uuid.New(),
		MerchantID:   req.MerchantID,
		Type:         domain.TreasuryTypeDeposit,
		Amount:       req.Amount,
		Currency:     req.Currency,
		TxSignature:  req.TxSignature,
		Description:  req.Description,
		BalanceAfter: balance.Available,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.txLogRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append deposit entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("merchant_id", req.MerchantID.String()).
		Int64("amount", req.Amount).
		Int64("available", balance.Available).
		Msg("treasury credited")

	return balance, nil
}

// Reserve atomically moves amount+fee from available to reserved. Two
// concurrent reservations against the same balance never both succeed
// when their combined amount exceeds available. Insufficient balance is
// returned as a typed result, not an error; no mutation is applied.
func (s *TreasuryServiceImpl) Reserve(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID) (*ports.ReserveResult, error) {
	if amount <= 0 || fee < 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.lockBalance(ctx, dbTx, merchantID, currency)
	if err != nil {
		return nil, err
	}

	reserved, err := s.txLogRepo.ExistsForPayout(ctx, dbTx, payoutID, domain.TreasuryTypePayoutReserved)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check reservation replay: %w", err))
	}
	if reserved {
		return nil, apperror.ErrDuplicateLedgerEntry("reservation")
	}

	if !balance.CanReserve(amount, fee) {
		metrics.ReservationsRejected.Inc()
		return &ports.ReserveResult{OK: false, Error: "Insufficient balance", Balance: balance}, nil
	}

	hold := amount + fee
	balance.Available -= hold
	balance.Reserved += hold

	if err := s.balanceRepo.Update(ctx, dbTx, balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.TreasuryTransaction{
		ID:           uuid.New(),
		MerchantID:   merchantID,
		Type:         domain.TreasuryTypePayoutReserved,
		Amount:       hold,
		Currency:     currency,
		PayoutID:     &payoutID,
		BalanceAfter: balance.Reserved,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.txLogRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append reservation entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.ReservationsCreated.Inc()
	s.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("payout_id", payoutID.String()).
		Int64("amount", amount).
		Int64("fee", fee).
		Int64("available", balance.Available).
		Int64("reserved", balance.Reserved).
		Msg("treasury funds reserved")

	return &ports.ReserveResult{OK: true, Balance: balance}, nil
}

// Release finalizes a delivered payout: the hold leaves reserved and the
// principal and fee are added to the running totals. Valid only once,
// and only while an unsettled reservation exists for payoutID.
func (s *TreasuryServiceImpl) Release(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID) (*domain.MerchantBalance, error) {
	balance, err := s.settle(ctx, merchantID, currency, amount, fee, payoutID, false)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("payout_id", payoutID.String()).
		Int64("amount", amount).
		Int64("fee", fee).
		Msg("treasury reservation released")
	return balance, nil
}

// Refund unwinds a reservation for an expired or failed payout. Net
// effect of reserve+refund is a no-op on available, reserved and totals.
func (s *TreasuryServiceImpl) Refund(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID) (*domain.MerchantBalance, error) {
	balance, err := s.settle(ctx, merchantID, currency, amount, fee, payoutID, true)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("payout_id", payoutID.String()).
		Int64("amount", amount).
		Int64("fee", fee).
		Msg("treasury reservation refunded")
	return balance, nil
}

// settle is the shared release/refund path. Both settle exactly one
// reservation: a payout that was already released or refunded is
// rejected without mutation.
func (s *TreasuryServiceImpl) settle(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID, refund bool) (*domain.MerchantBalance, error) {
	if amount <= 0 || fee < 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, merchantID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.ErrNotFound("merchant balance")
	}

	hasReservation, err := s.txLogRepo.ExistsForPayout(ctx, dbTx, payoutID, domain.TreasuryTypePayoutReserved)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check reservation: %w", err))
	}
	if !hasReservation {
		return nil, apperror.ErrNoReservation()
	}
	for _, settled := range []domain.TreasuryTransactionType{domain.TreasuryTypePayoutReleased, domain.TreasuryTypePayoutRefund} {
		exists, err := s.txLogRepo.ExistsForPayout(ctx, dbTx, payoutID, settled)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("check settlement replay: %w", err))
		}
		if exists {
			return nil, apperror.ErrDuplicateLedgerEntry("settlement")
		}
	}

	hold := amount + fee
	if balance.Reserved < hold {
		return nil, apperror.InternalError(fmt.Errorf("reserved %d below hold %d for payout %s", balance.Reserved, hold, payoutID))
	}

	now := time.Now().UTC()
	balance.Reserved -= hold

	if refund {
		balance.Available += hold
		entry := &domain.TreasuryTransaction{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Type:         domain.TreasuryTypePayoutRefund,
			Amount:       hold,
			Currency:     currency,
			PayoutID:     &payoutID,
			BalanceAfter: balance.Available,
			CreatedAt:    now,
		}
		if err := s.balanceRepo.Update(ctx, dbTx, balance); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
		if err := s.txLogRepo.Create(ctx, dbTx, entry); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append refund entry: %w", err))
		}
	} else {
		balance.TotalPayouts += amount
		balance.TotalFees += fee
		if err := s.balanceRepo.Update(ctx, dbTx, balance); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
		// Principal and fee are logged as separate entries.
		released := &domain.TreasuryTransaction{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Type:         domain.TreasuryTypePayoutReleased,
			Amount:       amount,
			Currency:     currency,
			PayoutID:     &payoutID,
			BalanceAfter: balance.Reserved,
			CreatedAt:    now,
		}
		if err := s.txLogRepo.Create(ctx, dbTx, released); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append release entry: %w", err))
		}
		feeEntry := &domain.TreasuryTransaction{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Type:         domain.TreasuryTypeFeeDeducted,
			Amount:       fee,
			Currency:     currency,
			PayoutID:     &payoutID,
			BalanceAfter: balance.TotalFees,
			CreatedAt:    now,
		}
		if err := s.txLogRepo.Create(ctx, dbTx, feeEntry); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append fee entry: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return balance, nil
}

// GetTransactions returns the treasury audit log, newest first.
func (s *TreasuryServiceImpl) GetTransactions(ctx context.Context, merchantID uuid.UUID, params ports.TreasuryTxListParams) ([]domain.TreasuryTransaction, error) {
	params.Limit = boundLimit(params.Limit)
	entries, err := s.txLogRepo.List(ctx, merchantID, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list treasury transactions: %w", err))
	}
	return entries, nil
}

// lockBalance is the get-or-create + lock prologue shared by mutations
// that may touch a balance for the first time.
func (s *TreasuryServiceImpl) lockBalance(ctx context.Context, dbTx pgx.Tx, merchantID uuid.UUID, currency string) (*domain.MerchantBalance, error) {
	if err := s.balanceRepo.CreateIfAbsent(ctx, dbTx, merchantID, currency); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create balance: %w", err))
	}
	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, merchantID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.InternalError(fmt.Errorf("balance row missing after create for merchant %s", merchantID))
	}
	return balance, nil
}

func boundLimit(limit int) int {
	if limit <= 0 {
		return defaultTxListLimit
	}
	if limit > maxTxListLimit {
		return maxTxListLimit
	}
	return limit
}
