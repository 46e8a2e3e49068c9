package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// capturingHTTPClient records the first request and signals completion.
type capturingHTTPClient struct {
	requests chan *capturedRequest
	status   int
}

type capturedRequest struct {
	URL         string
	ContentType string
	Body        []byte
}

func newCapturingHTTPClient(status int) *capturingHTTPClient {
	return &capturingHTTPClient{
		requests: make(chan *capturedRequest, 8),
		status:   status,
	}
}

func (c *capturingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	body, _ := io.ReadAll(req.Body)
	c.requests <- &capturedRequest{
		URL:         req.URL.String(),
		ContentType: req.Header.Get("Content-Type"),
		Body:        body,
	}
	return &http.Response{
		StatusCode: c.status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

type webhookTestDeps struct {
	svc          *webhookService
	merchantRepo *mocks.MockMerchantRepository
	encSvc       *mocks.MockEncryptionService
	httpClient   *capturingHTTPClient
	ctrl         *gomock.Controller
}

func setupWebhookService(t *testing.T, status int) *webhookTestDeps {
	ctrl := gomock.NewController(t)
	d := &webhookTestDeps{
		merchantRepo: mocks.NewMockMerchantRepository(ctrl),
		encSvc:       mocks.NewMockEncryptionService(ctrl),
		httpClient:   newCapturingHTTPClient(status),
		ctrl:         ctrl,
	}
	svc := NewWebhookService(d.merchantRepo, d.encSvc, NewHMACSignatureService(), d.httpClient, zerolog.Nop())
	d.svc = svc.(*webhookService)
	return d
}

func webhookPayoutFixture(merchantID uuid.UUID) *domain.Payout {
	wallet := testRecipientWallet
	sig := "5ViWgq..."
	return &domain.Payout{
		ID:              uuid.New(),
		MerchantID:      merchantID,
		Email:           "rcpt@example.com",
		Amount:          10000,
		Fee:             100,
		Currency:        "USDC",
		Status:          domain.PayoutStatusClaimed,
		RecipientWallet: &wallet,
		TxSignature:     &sig,
	}
}

func TestWebhookService_EnqueuePayoutEvent_SignsAndDelivers(t *testing.T) {
	d := setupWebhookService(t, http.StatusOK)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	webhookURL := "https://merchant.example.com/hooks"
	encSecret := "enc-secret"
	merchant := &domain.Merchant{
		ID:               merchantID,
		WebhookURL:       &webhookURL,
		WebhookSecretEnc: &encSecret,
	}
	payout := webhookPayoutFixture(merchantID)

	d.merchantRepo.EXPECT().GetByID(ctx, merchantID).Return(merchant, nil)
	d.encSvc.EXPECT().Decrypt(encSecret).Return("whsec_abc", nil)

	err := d.svc.EnqueuePayoutEvent(ctx, ports.EventPayoutClaimed, payout)
	require.NoError(t, err)

	select {
	case req := <-d.httpClient.requests:
		assert.Equal(t, webhookURL, req.URL)
		assert.Equal(t, "application/json", req.ContentType)

		var payload WebhookPayload
		require.NoError(t, json.Unmarshal(req.Body, &payload))
		assert.Equal(t, ports.EventPayoutClaimed, payload.EventType)
		assert.Equal(t, payout.ID.String(), payload.Data.PayoutID)
		assert.Equal(t, "rcpt@example.com", payload.Data.Email)
		assert.Equal(t, int64(10000), payload.Data.Amount)
		assert.Equal(t, int64(100), payload.Data.Fee)
		assert.Equal(t, string(domain.PayoutStatusClaimed), payload.Data.Status)
		require.NotNil(t, payload.Data.RecipientWallet)
		assert.Equal(t, testRecipientWallet, *payload.Data.RecipientWallet)

		dataBytes, err := json.Marshal(payload.Data)
		require.NoError(t, err)
		sigSvc := NewHMACSignatureService()
		assert.True(t, sigSvc.Verify("whsec_abc", string(dataBytes), payload.Signature))
	case <-time.After(2 * time.Second):
		t.Fatal("webhook delivery never happened")
	}
}

func TestWebhookService_EnqueuePayoutEvent_NoURLConfigured(t *testing.T) {
	d := setupWebhookService(t, http.StatusOK)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	merchant := &domain.Merchant{ID: merchantID}
	payout := webhookPayoutFixture(merchantID)

	d.merchantRepo.EXPECT().GetByID(ctx, merchantID).Return(merchant, nil)

	err := d.svc.EnqueuePayoutEvent(ctx, ports.EventPayoutSent, payout)
	require.NoError(t, err)

	select {
	case <-d.httpClient.requests:
		t.Fatal("no delivery expected without a webhook URL")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWebhookService_EnqueuePayoutEvent_NoSecretOnFile(t *testing.T) {
	d := setupWebhookService(t, http.StatusOK)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	webhookURL := "https://merchant.example.com/hooks"
	merchant := &domain.Merchant{ID: merchantID, WebhookURL: &webhookURL}
	payout := webhookPayoutFixture(merchantID)

	d.merchantRepo.EXPECT().GetByID(ctx, merchantID).Return(merchant, nil)

	err := d.svc.EnqueuePayoutEvent(ctx, ports.EventPayoutSent, payout)
	require.NoError(t, err)

	select {
	case <-d.httpClient.requests:
		t.Fatal("no delivery expected without a signing secret")
	case <-time.After(100 * time.Millisecond):
	}
}
