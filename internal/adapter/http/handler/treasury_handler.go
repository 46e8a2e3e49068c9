package handler

import (
	"strconv"

	"settlr/internal/adapter/http/dto"
	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/pkg/apperror"
	"settlr/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultCurrency = "USDC"

// TreasuryHandler handles merchant treasury endpoints.
type TreasuryHandler struct {
	treasurySvc ports.TreasuryService
}

// NewTreasuryHandler creates a new TreasuryHandler.
func NewTreasuryHandler(treasurySvc ports.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{treasurySvc: treasurySvc}
}

// Deposit handles POST /api/v1/treasury/deposit.
func (h *TreasuryHandler) Deposit(c *gin.Context) {
	merchantID, ok := merchantIDFromContext(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	balance, err := h.treasurySvc.Credit(c.Request.Context(), ports.CreditRequest{
		MerchantID:  merchantID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		TxSignature: req.TxSignature,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromBalance(balance))
}

// GetBalance handles GET /api/v1/treasury/balance.
func (h *TreasuryHandler) GetBalance(c *gin.Context) {
	merchantID, ok := merchantIDFromContext(c)
	if !ok {
		return
	}

	currency := c.DefaultQuery("currency", defaultCurrency)
	balance, err := h.treasurySvc.GetOrCreateBalance(c.Request.Context(), merchantID, currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromBalance(balance))
}

// ListTransactions handles GET /api/v1/treasury/transactions.
func (h *TreasuryHandler) ListTransactions(c *gin.Context) {
	merchantID, ok := merchantIDFromContext(c)
	if !ok {
		return
	}

	params := ports.TreasuryTxListParams{
		Limit: parseIntQuery(c, "limit", 0),
	}
	if raw := c.Query("type"); raw != "" {
		entryType := domain.TreasuryTransactionType(raw)
		params.Type = &entryType
	}

	entries, err := h.treasurySvc.GetTransactions(c.Request.Context(), merchantID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TreasuryTxResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.FromTreasuryTx(&entries[i]))
	}
	response.OK(c, items)
}

// merchantIDFromContext pulls the authenticated merchant ID set by the
// auth middleware, writing the error response when absent.
func merchantIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("merchant_id")
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// parseIntQuery reads an integer query param with a fallback.
func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
