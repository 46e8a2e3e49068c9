package handler

import (
	"context"
	"encoding/json"
	"time"

	"settlr/internal/adapter/http/dto"
	"settlr/internal/adapter/http/middleware"
	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/pkg/apperror"
	"settlr/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// claimCacheTTL bounds how long a served claim response stays replayable.
const claimCacheTTL = 24 * time.Hour

// PayoutHandler handles payout lifecycle endpoints.
type PayoutHandler struct {
	payoutSvc  ports.PayoutService
	claimCache ports.ClaimCache // nil = replay caching disabled
	log        zerolog.Logger
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(payoutSvc ports.PayoutService, claimCache ports.ClaimCache, log zerolog.Logger) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc, claimCache: claimCache, log: log}
}

// Create handles POST /api/v1/payouts.
func (h *PayoutHandler) Create(c *gin.Context) {
	merchant, ok := merchantFromContext(c)
	if !ok {
		return
	}

	var req dto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payout, err := h.payoutSvc.CreatePayout(c.Request.Context(), ports.CreatePayoutRequest{
		MerchantID:     merchant.ID,
		MerchantWallet: merchant.WalletAddress,
		Email:          req.Email,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Memo:           req.Memo,
		Metadata:       req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromPayout(payout))
}

// CreateBatch handles POST /api/v1/payouts/batch.
func (h *PayoutHandler) CreateBatch(c *gin.Context) {
	merchant, ok := merchantFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	items := make([]ports.BatchItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.BatchItem{
			Email:  item.Email,
			Amount: item.Amount,
			Memo:   item.Memo,
		})
	}

	result, err := h.payoutSvc.CreateBatch(c.Request.Context(), ports.CreateBatchRequest{
		MerchantID:     merchant.ID,
		MerchantWallet: merchant.WalletAddress,
		Currency:       req.Currency,
		Items:          items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.BatchResponse{
		BatchID:     result.Batch.ID.String(),
		Status:      string(result.Batch.Status),
		TotalAmount: result.Batch.TotalAmount,
		Count:       result.Batch.Count,
		Payouts:     make([]dto.PayoutResponse, 0, len(result.Payouts)),
	}
	for i := range result.Payouts {
		resp.Payouts = append(resp.Payouts, dto.FromPayout(&result.Payouts[i]))
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, dto.BatchItemFail(f))
	}

	response.Created(c, resp)
}

// List handles GET /api/v1/payouts.
func (h *PayoutHandler) List(c *gin.Context) {
	merchant, ok := merchantFromContext(c)
	if !ok {
		return
	}

	limit := parseIntQuery(c, "limit", 0)
	offset := parseIntQuery(c, "offset", 0)

	payouts, total, err := h.payoutSvc.ListByMerchant(c.Request.Context(), merchant.ID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, payoutListResponse(payouts, total, limit, offset))
}

// Expire handles POST /api/v1/payouts/:id/expire. Entry point for the
// external expiry sweeper.
func (h *PayoutHandler) Expire(c *gin.Context) {
	h.terminate(c, h.payoutSvc.ExpirePayout)
}

// Fail handles POST /api/v1/payouts/:id/fail.
func (h *PayoutHandler) Fail(c *gin.Context) {
	h.terminate(c, h.payoutSvc.FailPayout)
}

func (h *PayoutHandler) terminate(c *gin.Context, op func(ctx context.Context, merchantID, payoutID uuid.UUID) (*domain.Payout, error)) {
	merchant, ok := merchantFromContext(c)
	if !ok {
		return
	}

	payoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payout id"))
		return
	}

	payout, err := op(c.Request.Context(), merchant.ID, payoutID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPayout(payout))
}

// ClaimInfo handles GET /api/v1/payouts/claim/:token. Public: shows the
// claim page what it needs and nothing else.
func (h *PayoutHandler) ClaimInfo(c *gin.Context) {
	payout, err := h.payoutSvc.GetByClaimToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if payout == nil {
		response.Error(c, apperror.ErrNotFound("payout"))
		return
	}

	resp := dto.ClaimInfoResponse{
		Amount:    payout.Amount,
		Fee:       payout.Fee,
		Currency:  payout.Currency,
		Status:    string(payout.Status),
		Memo:      payout.Memo,
		ExpiresAt: payout.ExpiresAt.Format(time.RFC3339),
	}
	response.OK(c, resp)
}

// Claim handles POST /api/v1/payouts/claim/:token. The first successful
// claim response is cached by token; replays (webhook retries,
// double-clicks) are served the original response instead of a conflict.
func (h *PayoutHandler) Claim(c *gin.Context) {
	token := c.Param("token")

	if h.claimCache != nil {
		if cached, err := h.claimCache.Get(c.Request.Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("claim cache read failed")
		} else if cached != nil {
			response.OK(c, json.RawMessage(cached))
			return
		}
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payout, err := h.payoutSvc.ClaimPayout(c.Request.Context(), ports.ClaimPayoutRequest{
		ClaimToken:      token,
		RecipientWallet: req.RecipientWallet,
		TxSignature:     req.TxSignature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.FromPayout(payout)
	if h.claimCache != nil {
		if body, err := json.Marshal(resp); err == nil {
			if err := h.claimCache.Set(c.Request.Context(), token, body, claimCacheTTL); err != nil {
				h.log.Warn().Err(err).Msg("claim cache write failed")
			}
		}
	}

	response.OK(c, resp)
}

// merchantFromContext pulls the authenticated merchant set by APIKeyAuth.
func merchantFromContext(c *gin.Context) (*domain.Merchant, bool) {
	v, ok := c.Get(middleware.CtxMerchantKey)
	if !ok {
		response.Error(c, apperror.ErrInvalidAPIKey())
		return nil, false
	}
	merchant, ok := v.(*domain.Merchant)
	if !ok {
		response.Error(c, apperror.ErrInvalidAPIKey())
		return nil, false
	}
	return merchant, true
}

func payoutListResponse(payouts []domain.Payout, total int64, limit, offset int) dto.PayoutListResponse {
	resp := dto.PayoutListResponse{
		Items:  make([]dto.PayoutResponse, 0, len(payouts)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i := range payouts {
		resp.Items = append(resp.Items, dto.FromPayout(&payouts[i]))
	}
	return resp
}
