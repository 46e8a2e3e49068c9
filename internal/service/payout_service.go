package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/metrics"
	"settlr/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PayoutServiceImpl is the payout lifecycle state machine. It owns the
// sent -> {claimed | expired | failed} transitions and keeps the treasury
// reservation in step with them.
type PayoutServiceImpl struct {
	payoutRepo   ports.PayoutRepository
	batchRepo    ports.BatchRepository
	treasurySvc  ports.TreasuryService
	recipientSvc ports.RecipientService
	ledgerSvc    ports.RecipientLedgerService
	webhookSvc   ports.WebhookService
	claimBaseURL string
	claimTTL     time.Duration
	currency     string
	log          zerolog.Logger
}

// NewPayoutService creates a new PayoutServiceImpl.
func NewPayoutService(
	payoutRepo ports.PayoutRepository,
	batchRepo ports.BatchRepository,
	treasurySvc ports.TreasuryService,
	recipientSvc ports.RecipientService,
	ledgerSvc ports.RecipientLedgerService,
	webhookSvc ports.WebhookService,
	claimBaseURL string,
	claimTTL time.Duration,
	defaultCurrency string,
	log zerolog.Logger,
) *PayoutServiceImpl {
	return &PayoutServiceImpl{
		payoutRepo:   payoutRepo,
		batchRepo:    batchRepo,
		treasurySvc:  treasurySvc,
		recipientSvc: recipientSvc,
		ledgerSvc:    ledgerSvc,
		webhookSvc:   webhookSvc,
		claimBaseURL: claimBaseURL,
		claimTTL:     claimTTL,
		currency:     defaultCurrency,
		log:          log,
	}
}

// CreatePayout reserves treasury funds and persists a claimable payout.
// The reservation commits first; if persisting the payout then fails the
// reservation is refunded so no funds stay held for a payout that does
// not exist.
func (s *PayoutServiceImpl) CreatePayout(ctx context.Context, req ports.CreatePayoutRequest) (*domain.Payout, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return nil, apperror.Validation("email is required")
	}
	if err := validateWalletAddress(req.MerchantWallet); err != nil {
		return nil, err
	}
	currency := req.Currency
	if currency == "" {
		currency = s.currency
	}

	fee := domain.CalculateFee(req.Amount)
	payoutID := uuid.New()

	res, err := s.treasurySvc.Reserve(ctx, req.MerchantID, currency, req.Amount, fee, payoutID)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, apperror.ErrInsufficientBalance()
	}

	token, err := domain.NewClaimToken()
	if err != nil {
		s.refundBestEffort(ctx, req.MerchantID, currency, req.Amount, fee, payoutID)
		return nil, apperror.InternalError(fmt.Errorf("generate claim token: %w", err))
	}

	now := time.Now().UTC()
	payout := &domain.Payout{
		ID:             payoutID,
		MerchantID:     req.MerchantID,
		MerchantWallet: req.MerchantWallet,
		Email:          email,
		Amount:         req.Amount,
		Fee:            fee,
		Currency:       currency,
		Memo:           req.Memo,
		Metadata:       req.Metadata,
		Status:         domain.PayoutStatusSent,
		ClaimToken:     token,
		ClaimURL:       fmt.Sprintf("%s/claim/%s", s.claimBaseURL, token),
		BatchID:        req.BatchID,
		CreatedAt:      now,
		FundedAt:       &now,
		ExpiresAt:      now.Add(s.claimTTL),
	}

	if err := s.payoutRepo.Create(ctx, payout); err != nil {
		s.refundBestEffort(ctx, req.MerchantID, currency, req.Amount, fee, payoutID)
		return nil, apperror.InternalError(fmt.Errorf("persist payout: %w", err))
	}

	metrics.PayoutsCreated.Inc()
	s.log.Info().
		Str("payout_id", payout.ID.String()).
		Str("merchant_id", req.MerchantID.String()).
		Str("email", email).
		Int64("amount", req.Amount).
		Int64("fee", fee).
		Msg("payout created")

	// The settlement collaborator reads this decision off the sent event:
	// a known wallet with auto-withdraw on skips the claim-link flow.
	if wallet, ok, err := s.recipientSvc.AutoDeliveryTarget(ctx, email); err == nil && ok {
		metrics.PayoutsAutoDelivered.Inc()
		s.log.Info().
			Str("payout_id", payout.ID.String()).
			Str("wallet", wallet).
			Msg("recipient eligible for auto delivery")
	}

	s.enqueueEvent(ctx, ports.EventPayoutSent, payout)
	return payout, nil
}

// CreateBatch creates the member payouts independently. A member failure
// does not roll back the others; the batch status reflects the aggregate.
func (s *PayoutServiceImpl) CreateBatch(ctx context.Context, req ports.CreateBatchRequest) (*ports.BatchResult, error) {
	if len(req.Items) == 0 {
		return nil, apperror.Validation("batch must contain at least one item")
	}

	batch := &domain.PayoutBatch{
		ID:         uuid.New(),
		MerchantID: req.MerchantID,
		Count:      len(req.Items),
		Status:     domain.BatchStatusProcessing,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist batch: %w", err))
	}

	result := &ports.BatchResult{Batch: batch}
	for i, item := range req.Items {
		payout, err := s.CreatePayout(ctx, ports.CreatePayoutRequest{
			MerchantID:     req.MerchantID,
			MerchantWallet: req.MerchantWallet,
			Email:          item.Email,
			Amount:         item.Amount,
			Currency:       req.Currency,
			Memo:           item.Memo,
			BatchID:        &batch.ID,
		})
		if err != nil {
			result.Failed = append(result.Failed, ports.BatchItemError{
				Index: i,
				Email: item.Email,
				Error: errorMessage(err),
			})
			continue
		}
		result.Payouts = append(result.Payouts, *payout)
		batch.TotalAmount += payout.Amount
	}

	batch.Status = domain.AggregateBatchStatus(len(result.Payouts), len(result.Failed))
	if err := s.batchRepo.UpdateStatus(ctx, batch.ID, batch.Status, batch.TotalAmount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update batch status: %w", err))
	}

	s.log.Info().
		Str("batch_id", batch.ID.String()).
		Int("succeeded", len(result.Payouts)).
		Int("failed", len(result.Failed)).
		Str("status", string(batch.Status)).
		Msg("payout batch created")

	return result, nil
}

func (s *PayoutServiceImpl) GetByClaimToken(ctx context.Context, claimToken string) (*domain.Payout, error) {
	payout, err := s.payoutRepo.GetByClaimToken(ctx, claimToken)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payout by claim token: %w", err))
	}
	if payout == nil {
		return nil, apperror.ErrNotFound("payout")
	}
	return payout, nil
}

// ClaimPayout transitions sent -> claimed and settles the reservation.
// The repository claim is a conditional update keyed on the sent status,
// so two racing claims can never both win and the loser never overwrites
// the winner's wallet or signature.
func (s *PayoutServiceImpl) ClaimPayout(ctx context.Context, req ports.ClaimPayoutRequest) (*domain.Payout, error) {
	if err := validateWalletAddress(req.RecipientWallet); err != nil {
		return nil, err
	}
	if req.TxSignature == "" {
		return nil, apperror.Validation("transaction signature is required")
	}

	payout, err := s.payoutRepo.GetByClaimToken(ctx, req.ClaimToken)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if payout == nil {
		return nil, apperror.ErrNotFound("payout")
	}

	switch {
	case payout.Status == domain.PayoutStatusClaimed:
		return nil, apperror.ErrPayoutAlreadyClaimed()
	case payout.Status == domain.PayoutStatusExpired:
		return nil, apperror.ErrPayoutExpired()
	case payout.Status != domain.PayoutStatusSent:
		return nil, apperror.ErrPayoutNotClaimable()
	case time.Now().UTC().After(payout.ExpiresAt):
		return nil, apperror.ErrPayoutExpired()
	}

	claimed, err := s.payoutRepo.Claim(ctx, payout.ID, req.RecipientWallet, req.TxSignature, time.Now().UTC())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("claim payout: %w", err))
	}
	if claimed == nil {
		// Lost the race to another claim or an expiry sweep.
		return nil, apperror.ErrPayoutAlreadyClaimed()
	}

	if _, err := s.treasurySvc.Release(ctx, claimed.MerchantID, claimed.Currency, claimed.Amount, claimed.Fee, claimed.ID); err != nil {
		// The claim is recorded; a settlement fault must surface loudly.
		s.log.Error().Err(err).Str("payout_id", claimed.ID.String()).Msg("release after claim failed")
		return nil, err
	}
	recipient, err := s.recipientSvc.RegisterIfAbsent(ctx, ports.RegisterRecipientRequest{
		Email:         claimed.Email,
		WalletAddress: req.RecipientWallet,
	})
	if err != nil {
		s.log.Error().Err(err).Str("payout_id", claimed.ID.String()).Msg("recipient registration failed")
	} else {
		if err := s.recipientSvc.UpdateStats(ctx, claimed.Email, claimed.Amount); err != nil {
			s.log.Error().Err(err).Str("payout_id", claimed.ID.String()).Msg("recipient stats update failed")
		}
		if !recipient.AutoWithdraw {
			// Auto-withdraw off: the amount is banked on the recipient's
			// ledger instead of delivered on-chain.
			if _, err := s.ledgerSvc.CreditBalance(ctx, recipient.ID, claimed.Currency, claimed.Amount, claimed.ID); err != nil {
				s.log.Error().Err(err).Str("payout_id", claimed.ID.String()).Msg("ledger credit failed")
			}
		}
	}

	metrics.PayoutsClaimed.Inc()
	s.log.Info().
		Str("payout_id", claimed.ID.String()).
		Str("email", claimed.Email).
		Int64("amount", claimed.Amount).
		Msg("payout claimed")

	s.enqueueEvent(ctx, ports.EventPayoutClaimed, claimed)
	return claimed, nil
}

// ExpirePayout transitions sent -> expired and refunds the reservation.
// Called by the external expiry sweeper; claiming after this is rejected.
func (s *PayoutServiceImpl) ExpirePayout(ctx context.Context, merchantID, payoutID uuid.UUID) (*domain.Payout, error) {
	payout, err := s.terminate(ctx, merchantID, payoutID, domain.PayoutStatusExpired)
	if err != nil {
		return nil, err
	}
	metrics.PayoutsExpired.Inc()
	s.enqueueEvent(ctx, ports.EventPayoutExpired, payout)
	return payout, nil
}

// FailPayout transitions sent -> failed and refunds the reservation.
func (s *PayoutServiceImpl) FailPayout(ctx context.Context, merchantID, payoutID uuid.UUID) (*domain.Payout, error) {
	payout, err := s.terminate(ctx, merchantID, payoutID, domain.PayoutStatusFailed)
	if err != nil {
		return nil, err
	}
	metrics.PayoutsFailed.Inc()
	s.enqueueEvent(ctx, ports.EventPayoutFailed, payout)
	return payout, nil
}

func (s *PayoutServiceImpl) terminate(ctx context.Context, merchantID, payoutID uuid.UUID, status domain.PayoutStatus) (*domain.Payout, error) {
	payout, err := s.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if payout == nil || payout.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("payout")
	}
	if payout.Status == domain.PayoutStatusClaimed {
		return nil, apperror.ErrPayoutAlreadyClaimed()
	}
	if payout.IsTerminal() {
		return nil, apperror.ErrPayoutNotClaimable()
	}

	now := time.Now().UTC()
	ok, err := s.payoutRepo.UpdateStatus(ctx, payoutID, status, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payout status: %w", err))
	}
	if !ok {
		// A concurrent claim or sweep got there first.
		return nil, apperror.ErrPayoutNotClaimable()
	}

	if _, err := s.treasurySvc.Refund(ctx, payout.MerchantID, payout.Currency, payout.Amount, payout.Fee, payout.ID); err != nil {
		s.log.Error().Err(err).Str("payout_id", payout.ID.String()).Msg("refund after terminal transition failed")
		return nil, err
	}

	payout.Status = status
	payout.ExpiredAt = &now
	s.log.Info().
		Str("payout_id", payout.ID.String()).
		Str("status", string(status)).
		Msg("payout terminated")
	return payout, nil
}

func (s *PayoutServiceImpl) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]domain.Payout, int64, error) {
	payouts, total, err := s.payoutRepo.ListByMerchant(ctx, merchantID, boundLimit(limit), max(offset, 0))
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list payouts by merchant: %w", err))
	}
	return payouts, total, nil
}

func (s *PayoutServiceImpl) ListByRecipientEmail(ctx context.Context, email string, limit, offset int) ([]domain.Payout, int64, error) {
	payouts, total, err := s.payoutRepo.ListByEmail(ctx, domain.NormalizeEmail(email), boundLimit(limit), max(offset, 0))
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list payouts by email: %w", err))
	}
	return payouts, total, nil
}

func (s *PayoutServiceImpl) refundBestEffort(ctx context.Context, merchantID uuid.UUID, currency string, amount, fee int64, payoutID uuid.UUID) {
	if _, err := s.treasurySvc.Refund(ctx, merchantID, currency, amount, fee, payoutID); err != nil {
		s.log.Error().Err(err).
			Str("payout_id", payoutID.String()).
			Msg("refund of orphaned reservation failed")
	}
}

func (s *PayoutServiceImpl) enqueueEvent(ctx context.Context, event string, payout *domain.Payout) {
	if s.webhookSvc == nil {
		return
	}
	if err := s.webhookSvc.EnqueuePayoutEvent(ctx, event, payout); err != nil {
		s.log.Warn().Err(err).Str("event", event).Str("payout_id", payout.ID.String()).Msg("webhook enqueue failed")
	}
}

// errorMessage extracts the client-facing message from an error.
func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}
