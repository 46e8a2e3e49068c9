package service

import (
	"context"
	"fmt"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/metrics"
	"settlr/pkg/apperror"

	"github.com/rs/zerolog"
)

type authTokenService struct {
	recipientRepo ports.RecipientRepository
	tokenSvc      ports.TokenService
	expiry        time.Duration
	log           zerolog.Logger
}

// NewAuthTokenService creates the one-time magic-link token service.
func NewAuthTokenService(
	recipientRepo ports.RecipientRepository,
	tokenSvc ports.TokenService,
	expiry time.Duration,
	log zerolog.Logger,
) ports.AuthTokenService {
	return &authTokenService{
		recipientRepo: recipientRepo,
		tokenSvc:      tokenSvc,
		expiry:        expiry,
		log:           log,
	}
}

// CreateAuthToken issues a magic-link token for a known recipient. An
// unknown email yields a nil result and no side effects, so callers leak
// nothing beyond the null/non-null signal.
func (s *authTokenService) CreateAuthToken(ctx context.Context, email string) (*ports.AuthTokenResult, error) {
	recipient, err := s.recipientRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get recipient: %w", err))
	}
	if recipient == nil {
		return nil, nil
	}

	token, err := domain.NewAuthToken()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate auth token: %w", err))
	}
	expiresAt := time.Now().UTC().Add(s.expiry)

	if err := s.recipientRepo.SetAuthToken(ctx, recipient.ID, token, expiresAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store auth token: %w", err))
	}

	metrics.AuthTokensIssued.Inc()
	s.log.Info().Str("recipient_id", recipient.ID.String()).Msg("auth token issued")

	return &ports.AuthTokenResult{Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateAuthToken consumes a magic-link token and mints a recipient
// session. Consumption is a single atomic clear in the repository, so a
// replayed token always yields nil.
func (s *authTokenService) ValidateAuthToken(ctx context.Context, token string) (*ports.AuthSession, error) {
	if token == "" {
		return nil, nil
	}

	recipient, err := s.recipientRepo.ConsumeAuthToken(ctx, token, time.Now().UTC())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("consume auth token: %w", err))
	}
	if recipient == nil {
		return nil, nil
	}

	sessionToken, expiresAt, err := s.tokenSvc.Generate(recipient.ID, ports.TokenKindRecipient, recipient.Email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mint session token: %w", err))
	}

	s.log.Info().Str("recipient_id", recipient.ID.String()).Msg("magic link validated")

	return &ports.AuthSession{
		Recipient:    recipient,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}
