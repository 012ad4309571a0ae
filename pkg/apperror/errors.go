package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"error"`
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

// ---- Input Validation (VAL) ----

func ErrInvalidAmount(reason string) *AppError {
	return New("VAL_001", "Invalid amount: "+reason, http.StatusBadRequest)
}

func ErrInvalidTokenMint(mint string) *AppError {
	return New("VAL_002", fmt.Sprintf("Invalid token mint: %q", mint), http.StatusBadRequest)
}

// ErrMalformedBody is returned for bodies that fail to decode. The decoder
// error is kept as the cause and never shown to the caller.
func ErrMalformedBody(err error) *AppError {
	return Wrap("VAL_003", "Malformed request body", http.StatusBadRequest, err)
}

// ErrBodyTooLarge rejects request bodies over the configured limit.
func ErrBodyTooLarge(limit int64) *AppError {
	return New("VAL_004", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Chain RPC (CHAIN) ----

func ErrBalanceUnavailable(err error) *AppError {
	return Wrap("CHAIN_001", "Failed to fetch wallet balance", http.StatusInternalServerError, err)
}

func ErrAirdropFailed(err error) *AppError {
	return Wrap("CHAIN_002", "Airdrop request failed", http.StatusInternalServerError, err)
}

func ErrConfirmationFailed(err error) *AppError {
	return Wrap("CHAIN_003", "Airdrop transaction was not confirmed", http.StatusInternalServerError, err)
}

// ---- Price Oracle (ORC) ----

func ErrOracleUnavailable(err error) *AppError {
	return Wrap("ORC_001", "Price oracle unavailable", http.StatusInternalServerError, err)
}

func ErrPriceNotFound(mint string) *AppError {
	return New("ORC_002", fmt.Sprintf("Price not found for token %s", mint), http.StatusInternalServerError)
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
