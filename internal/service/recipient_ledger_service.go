package service

import (
	"context"
	"fmt"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// recipientLedgerService mirrors the treasury ledger for recipient-held
// balances: same row lock, same append-only audit trail.
type recipientLedgerService struct {
	balanceRepo ports.RecipientBalanceRepository
	txLogRepo   ports.BalanceTransactionRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewRecipientLedgerService creates the recipient balance ledger.
func NewRecipientLedgerService(
	balanceRepo ports.RecipientBalanceRepository,
	txLogRepo ports.BalanceTransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) ports.RecipientLedgerService {
	return &recipientLedgerService{
		balanceRepo: balanceRepo,
		txLogRepo:   txLogRepo,
		transactor:  transactor,
		log:         log,
	}
}

func (s *recipientLedgerService) GetOrCreateBalance(ctx context.Context, recipientID uuid.UUID, currency string) (*domain.RecipientBalance, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.balanceRepo.CreateIfAbsent(ctx, dbTx, recipientID, currency); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create balance: %w", err))
	}
	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, recipientID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.InternalError(fmt.Errorf("balance row missing after create for recipient %s", recipientID))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return balance, nil
}

func (s *recipientLedgerService) CreditBalance(ctx context.Context, recipientID uuid.UUID, currency string, amount int64, payoutID uuid.UUID) (*domain.RecipientBalance, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.balanceRepo.CreateIfAbsent(ctx, dbTx, recipientID, currency); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create balance: %w", err))
	}
	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, recipientID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}

	balance.Balance += amount
	if err := s.balanceRepo.Update(ctx, dbTx, balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.BalanceTransaction{
		ID:           uuid.New(),
		RecipientID:  recipientID,
		Type:         domain.BalanceTypeCredit,
		Amount:       amount,
		Currency:     currency,
		PayoutID:     &payoutID,
		BalanceAfter: balance.Balance,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.txLogRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append credit entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("recipient_id", recipientID.String()).
		Str("payout_id", payoutID.String()).
		Int64("amount", amount).
		Int64("balance", balance.Balance).
		Msg("recipient balance credited")

	return balance, nil
}

func (s *recipientLedgerService) DebitBalance(ctx context.Context, recipientID uuid.UUID, currency string, amount int64, txSignature string) (*domain.RecipientBalance, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, recipientID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.ErrNotFound("recipient balance")
	}
	if balance.Balance < amount {
		return nil, apperror.ErrInsufficientBalance()
	}

	balance.Balance -= amount
	if err := s.balanceRepo.Update(ctx, dbTx, balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.BalanceTransaction{
		ID:           uuid.New(),
		RecipientID:  recipientID,
		Type:         domain.BalanceTypeWithdrawal,
		Amount:       amount,
		Currency:     currency,
		TxSignature:  &txSignature,
		BalanceAfter: balance.Balance,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.txLogRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append withdrawal entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("recipient_id", recipientID.String()).
		Int64("amount", amount).
		Int64("balance", balance.Balance).
		Msg("recipient balance debited")

	return balance, nil
}

func (s *recipientLedgerService) GetTransactions(ctx context.Context, recipientID uuid.UUID, limit int) ([]domain.BalanceTransaction, error) {
	entries, err := s.txLogRepo.List(ctx, recipientID, boundLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list balance transactions: %w", err))
	}
	return entries, nil
}
