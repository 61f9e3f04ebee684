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

// ---- Economy Business Logic (ECO) ----
// All of these are local, recoverable conditions. Messages carry the
// offending values so the caller can render them directly.

func ErrInsufficientFunds(bucket string, have, want int64) *AppError {
	return New("ECO_001",
		fmt.Sprintf("Insufficient funds in %s: have %d, need %d", bucket, have, want),
		http.StatusPaymentRequired)
}

func ErrInvalidAmount(amount int64) *AppError {
	return New("ECO_002", fmt.Sprintf("Invalid amount: %d", amount), http.StatusBadRequest)
}

func ErrAlreadyCollected() *AppError {
	return New("ECO_003", "Coin has already been collected", http.StatusConflict)
}

func ErrTooFar(distance, radius float64) *AppError {
	return New("ECO_004",
		fmt.Sprintf("Too far from coin: %.1fm away, must be within %.1fm", distance, radius),
		http.StatusUnprocessableEntity)
}

func ErrOverLimit(value, limit int64) *AppError {
	return New("ECO_005",
		fmt.Sprintf("Coin value %d exceeds find limit %d", value, limit),
		http.StatusUnprocessableEntity)
}

func ErrNoGas() *AppError {
	return New("ECO_006", "Gas tank is empty", http.StatusPaymentRequired)
}

func ErrNotOwner() *AppError {
	return New("ECO_007", "Only the hider can retrieve this coin", http.StatusForbidden)
}

func ErrCoinNotFound() *AppError {
	return New("ECO_008", "Coin not found", http.StatusNotFound)
}

func ErrNotFound(entity string) *AppError {
	return New("ECO_009", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
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

func ErrPlayerSuspended() *AppError {
	return New("AUTH_004", "Player account is suspended", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrLedgerInconsistent is the fatal internal-consistency fault raised when a
// wallet fails its invariant check after a mutation. The mutation is aborted;
// this is never a user-facing condition.
func ErrLedgerInconsistent(err error) *AppError {
	return Wrap("SYS_002", "Ledger consistency violation", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns an ECO_002-style validation error.
func Validation(message string) *AppError {
	return New("ECO_002", message, http.StatusBadRequest)
}
