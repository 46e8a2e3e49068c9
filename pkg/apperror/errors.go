package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger Business Logic (LGR) ----

func ErrInsufficientBalance() *AppError {
	return New("LGR_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("LGR_002", "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("LGR_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrDuplicateLedgerEntry(op string) *AppError {
	return New("LGR_004", fmt.Sprintf("Duplicate %s for payout", op), http.StatusConflict)
}

func ErrInvalidWalletAddress() *AppError {
	return New("LGR_005", "Invalid wallet address", http.StatusBadRequest)
}

func ErrNoReservation() *AppError {
	return New("LGR_006", "No reservation exists for payout", http.StatusConflict)
}

// ---- Payout Lifecycle (PAYOUT) ----

func ErrPayoutAlreadyClaimed() *AppError {
	return New("PAYOUT_001", "Payout has already been claimed", http.StatusConflict)
}

func ErrPayoutExpired() *AppError {
	return New("PAYOUT_002", "Payout has expired", http.StatusGone)
}

func ErrPayoutNotClaimable() *AppError {
	return New("PAYOUT_003", "Payout is not in a claimable state", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrMerchantSuspended() *AppError {
	return New("AUTH_004", "Merchant account is suspended", http.StatusForbidden)
}

func ErrInvalidAPIKey() *AppError {
	return New("AUTH_005", "Invalid API key", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

// Validation returns a LGR_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("LGR_002", message, http.StatusBadRequest)
}
