package service

import (
	"context"
	"fmt"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type recipientService struct {
	recipientRepo ports.RecipientRepository
	log           zerolog.Logger
}

// NewRecipientService creates the email -> wallet directory service.
func NewRecipientService(recipientRepo ports.RecipientRepository, log zerolog.Logger) ports.RecipientService {
	return &recipientService{
		recipientRepo: recipientRepo,
		log:           log,
	}
}

func (s *recipientService) RegisterIfAbsent(ctx context.Context, req ports.RegisterRecipientRequest) (*domain.Recipient, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return nil, apperror.Validation("email is required")
	}
	if req.WalletAddress != "" {
		if err := validateWalletAddress(req.WalletAddress); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	candidate := &domain.Recipient{
		ID:                   uuid.New(),
		Email:                email,
		WalletAddress:        req.WalletAddress,
		DisplayName:          req.DisplayName,
		NotificationsEnabled: true,
		AutoWithdraw:         true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	stored, err := s.recipientRepo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("register recipient: %w", err))
	}
	if stored.ID == candidate.ID {
		s.log.Info().Str("recipient_id", stored.ID.String()).Msg("recipient registered")
	}
	return stored, nil
}

func (s *recipientService) GetByEmail(ctx context.Context, email string) (*domain.Recipient, error) {
	recipient, err := s.recipientRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get recipient: %w", err))
	}
	return recipient, nil
}

func (s *recipientService) Update(ctx context.Context, email string, req ports.UpdateRecipientRequest) (*domain.Recipient, error) {
	recipient, err := s.recipientRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get recipient: %w", err))
	}
	if recipient == nil {
		return nil, nil
	}

	if req.WalletAddress != nil {
		if *req.WalletAddress != "" {
			if err := validateWalletAddress(*req.WalletAddress); err != nil {
				return nil, err
			}
		}
		recipient.WalletAddress = *req.WalletAddress
	}
	if req.DisplayName != nil {
		recipient.DisplayName = req.DisplayName
	}
	if req.AutoWithdraw != nil {
		recipient.AutoWithdraw = *req.AutoWithdraw
	}
	if req.NotificationsEnabled != nil {
		recipient.NotificationsEnabled = *req.NotificationsEnabled
	}
	recipient.UpdatedAt = time.Now().UTC()

	if err := s.recipientRepo.Update(ctx, recipient); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update recipient: %w", err))
	}
	return recipient, nil
}

func (s *recipientService) UpdateStats(ctx context.Context, email string, amount int64) error {
	err := s.recipientRepo.IncrementStats(ctx, domain.NormalizeEmail(email), amount, time.Now().UTC())
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update recipient stats: %w", err))
	}
	return nil
}

func (s *recipientService) AutoDeliveryTarget(ctx context.Context, email string) (string, bool, error) {
	recipient, err := s.recipientRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", false, apperror.InternalError(fmt.Errorf("get recipient: %w", err))
	}
	if recipient == nil || !recipient.CanAutoDeliver() {
		return "", false, nil
	}
	return recipient.WalletAddress, true, nil
}

// validateWalletAddress checks that addr parses as a Solana public key.
func validateWalletAddress(addr string) *apperror.AppError {
	if _, err := solana.PublicKeyFromBase58(addr); err != nil {
		return apperror.ErrInvalidWalletAddress()
	}
	return nil
}
