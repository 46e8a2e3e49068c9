package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"settlr/internal/adapter/http/dto"
	"settlr/internal/adapter/http/middleware"
	"settlr/internal/core/ports"
	"settlr/pkg/apperror"
	"settlr/pkg/response"
)

// RecipientHandler serves the magic-link auth flow and the recipient
// dashboard (profile, ledger balance, withdrawals, payout history).
type RecipientHandler struct {
	authTokenSvc ports.AuthTokenService
	recipientSvc ports.RecipientService
	ledgerSvc    ports.RecipientLedgerService
	payoutSvc    ports.PayoutService
	log          zerolog.Logger
}

func NewRecipientHandler(
	authTokenSvc ports.AuthTokenService,
	recipientSvc ports.RecipientService,
	ledgerSvc ports.RecipientLedgerService,
	payoutSvc ports.PayoutService,
	log zerolog.Logger,
) *RecipientHandler {
	return &RecipientHandler{
		authTokenSvc: authTokenSvc,
		recipientSvc: recipientSvc,
		ledgerSvc:    ledgerSvc,
		payoutSvc:    payoutSvc,
		log:          log,
	}
}

// RequestAuthToken handles POST /api/v1/recipients/auth-token. The
// response is identical whether or not the email is registered, so the
// endpoint cannot be used to probe the recipient directory. The issued
// token reaches the recipient through email delivery, never through
// this response.
func (h *RecipientHandler) RequestAuthToken(c *gin.Context) {
	var req dto.AuthTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.authTokenSvc.CreateAuthToken(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result != nil {
		h.log.Info().Str("email", req.Email).Time("expires_at", result.ExpiresAt).
			Msg("magic-link token issued")
	}
	response.OK(c, gin.H{"message": "If this email is registered, a login link has been sent."})
}

// ValidateToken handles POST /api/v1/recipients/auth-token/validate.
// The token is consumed on first use; replays get AUTH_003.
func (h *RecipientHandler) ValidateToken(c *gin.Context) {
	var req dto.ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	session, err := h.authTokenSvc.ValidateAuthToken(c.Request.Context(), req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}
	if session == nil {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	response.OK(c, dto.SessionResponse{
		Token:     session.SessionToken,
		Expiry:    session.ExpiresAt.Unix(),
		Recipient: dto.FromRecipient(session.Recipient),
	})
}

// Me handles GET /api/v1/recipients/me.
func (h *RecipientHandler) Me(c *gin.Context) {
	email, ok := recipientEmailFromContext(c)
	if !ok {
		return
	}
	recipient, err := h.recipientSvc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	if recipient == nil {
		response.Error(c, apperror.ErrNotFound("recipient"))
		return
	}
	response.OK(c, dto.FromRecipient(recipient))
}

// UpdateMe handles PUT /api/v1/recipients/me.
func (h *RecipientHandler) UpdateMe(c *gin.Context) {
	email, ok := recipientEmailFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	recipient, err := h.recipientSvc.Update(c.Request.Context(), email, ports.UpdateRecipientRequest{
		WalletAddress:        req.WalletAddress,
		DisplayName:          req.DisplayName,
		AutoWithdraw:         req.AutoWithdraw,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if recipient == nil {
		response.Error(c, apperror.ErrNotFound("recipient"))
		return
	}
	response.OK(c, dto.FromRecipient(recipient))
}

// MyBalance handles GET /api/v1/recipients/me/balance.
func (h *RecipientHandler) MyBalance(c *gin.Context) {
	recipientID, ok := recipientIDFromContext(c)
	if !ok {
		return
	}
	currency := c.DefaultQuery("currency", defaultCurrency)
	balance, err := h.ledgerSvc.GetOrCreateBalance(c.Request.Context(), recipientID, currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RecipientBalanceResponse{
		Currency: balance.Currency,
		Balance:  balance.Balance,
	})
}

// MyTransactions handles GET /api/v1/recipients/me/transactions.
func (h *RecipientHandler) MyTransactions(c *gin.Context) {
	recipientID, ok := recipientIDFromContext(c)
	if !ok {
		return
	}
	txs, err := h.ledgerSvc.GetTransactions(c.Request.Context(), recipientID, parseIntQuery(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]dto.BalanceTxResponse, 0, len(txs))
	for i := range txs {
		items = append(items, dto.FromBalanceTx(&txs[i]))
	}
	response.OK(c, items)
}

// Withdraw handles POST /api/v1/recipients/me/withdraw. The on-chain
// transfer happens upstream; this records the debit with its signature.
func (h *RecipientHandler) Withdraw(c *gin.Context) {
	recipientID, ok := recipientIDFromContext(c)
	if !ok {
		return
	}
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	balance, err := h.ledgerSvc.DebitBalance(c.Request.Context(), recipientID, currency, req.Amount, req.TxSignature)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RecipientBalanceResponse{
		Currency: balance.Currency,
		Balance:  balance.Balance,
	})
}

// MyPayouts handles GET /api/v1/recipients/me/payouts.
func (h *RecipientHandler) MyPayouts(c *gin.Context) {
	email, ok := recipientEmailFromContext(c)
	if !ok {
		return
	}
	limit := parseIntQuery(c, "limit", 0)
	offset := parseIntQuery(c, "offset", 0)
	payouts, total, err := h.payoutSvc.ListByRecipientEmail(c.Request.Context(), email, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payoutListResponse(payouts, total, limit, offset))
}

// recipientIDFromContext pulls the recipient ID set by the JWT
// middleware, writing the error response when absent.
func recipientIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxRecipientID)
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

func recipientEmailFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxRecipientEmail)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	email, ok := v.(string)
	if !ok || email == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return email, true
}
