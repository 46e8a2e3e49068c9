package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/metrics"

	"github.com/rs/zerolog"
)

// webhookRetryIntervals define the delivery retry schedule.
var webhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// WebhookPayload is the JSON structure sent to merchant webhook_url.
type WebhookPayload struct {
	EventType string             `json:"event_type"`
	Data      WebhookPayloadData `json:"data"`
	Signature string             `json:"signature"`
}

// WebhookPayloadData holds the payout details in the webhook.
type WebhookPayloadData struct {
	PayoutID        string  `json:"payout_id"`
	BatchID         *string `json:"batch_id,omitempty"`
	Email           string  `json:"email"`
	Status          string  `json:"status"`
	Amount          int64   `json:"amount"`
	Fee             int64   `json:"fee"`
	Currency        string  `json:"currency"`
	RecipientWallet *string `json:"recipient_wallet,omitempty"`
	TxSignature     *string `json:"tx_signature,omitempty"`
	Timestamp       int64   `json:"timestamp"`
}

// webhookService implements ports.WebhookService.
type webhookService struct {
	merchantRepo ports.MerchantRepository
	encSvc       ports.EncryptionService
	sigSvc       ports.SignatureService
	httpClient   HTTPClient
	log          zerolog.Logger
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewWebhookService creates a new webhook service.
func NewWebhookService(
	merchantRepo ports.MerchantRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		merchantRepo: merchantRepo,
		encSvc:       encSvc,
		sigSvc:       sigSvc,
		httpClient:   httpClient,
		log:          log,
	}
}

// EnqueuePayoutEvent sends a payout state-transition webhook to the
// merchant asynchronously with retries.
func (s *webhookService) EnqueuePayoutEvent(ctx context.Context, event string, payout *domain.Payout) error {
	merchant, err := s.merchantRepo.GetByID(ctx, payout.MerchantID)
	if err != nil {
		s.log.Error().Err(err).Str("merchant_id", payout.MerchantID.String()).Msg("webhook: failed to fetch merchant")
		return err
	}
	if merchant == nil || merchant.WebhookURL == nil || *merchant.WebhookURL == "" {
		s.log.Debug().Str("merchant_id", payout.MerchantID.String()).Msg("webhook: no webhook URL configured, skipping")
		return nil
	}
	if merchant.WebhookSecretEnc == nil {
		s.log.Warn().Str("merchant_id", merchant.ID.String()).Msg("webhook: no signing secret on file, skipping")
		return nil
	}

	secret, err := s.encSvc.Decrypt(*merchant.WebhookSecretEnc)
	if err != nil {
		s.log.Error().Err(err).Msg("webhook: failed to decrypt signing secret")
		return err
	}

	var batchID *string
	if payout.BatchID != nil {
		id := payout.BatchID.String()
		batchID = &id
	}
	data := WebhookPayloadData{
		PayoutID:        payout.ID.String(),
		BatchID:         batchID,
		Email:           payout.Email,
		Status:          string(payout.Status),
		Amount:          payout.Amount,
		Fee:             payout.Fee,
		Currency:        payout.Currency,
		RecipientWallet: payout.RecipientWallet,
		TxSignature:     payout.TxSignature,
		Timestamp:       time.Now().Unix(),
	}

	dataBytes, _ := json.Marshal(data)
	payload := WebhookPayload{
		EventType: event,
		Data:      data,
		Signature: s.sigSvc.Sign(secret, string(dataBytes)),
	}

	go s.deliverWithRetries(*merchant.WebhookURL, payload, payout.ID.String())

	return nil
}

// deliverWithRetries attempts delivery until a 2xx or the schedule runs out.
func (s *webhookService) deliverWithRetries(url string, payload WebhookPayload, payoutID string) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("payout_id", payoutID).Msg("webhook: failed to marshal payload")
		return
	}

	for attempt := 0; attempt <= len(webhookRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(webhookRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payloadBytes))
		if err != nil {
			s.log.Error().Err(err).Str("payout_id", payoutID).Int("attempt", attempt+1).Msg("webhook: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("payout_id", payoutID).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			metrics.WebhooksDelivered.WithLabelValues("success").Inc()
			s.log.Info().Str("payout_id", payoutID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered successfully")
			return
		}

		s.log.Warn().Str("payout_id", payoutID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	metrics.WebhooksDelivered.WithLabelValues("exhausted").Inc()
	s.log.Error().Str("payout_id", payoutID).Msg("webhook: all retry attempts exhausted")
}
