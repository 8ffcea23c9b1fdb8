// Package apierror defines the error vocabulary returned to API clients.
// Every 4xx/5xx response goes through this package so that handlers never
// leak internal details (driver errors, stack traces) to the caller.
package apierror

import "net/http"

// APIError carries an HTTP status together with the client-facing message.
// The message is the exact string rendered as {"error": msg}.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

func New(status int, msg string) *APIError {
	return &APIError{Status: status, Message: msg}
}

// Credential failures (401).
var (
	ErrUnauthenticated  = New(http.StatusUnauthorized, "Authentication required")
	ErrInvalidToken     = New(http.StatusUnauthorized, "Invalid token")
	ErrTokenExpired     = New(http.StatusUnauthorized, "Token expired")
	ErrAudienceMismatch = New(http.StatusUnauthorized, "Token audience mismatch")
)

// Tenant resolution failures.
var (
	ErrNoSalonBound  = New(http.StatusNotFound, "No salon found for this account")
	ErrStaffInactive = New(http.StatusForbidden, "Staff account is inactive")
	ErrForbidden     = New(http.StatusForbidden, "Owner access required")
)

// Request and write failures.
var (
	ErrInvalidDate   = New(http.StatusBadRequest, "Invalid date format")
	ErrAlreadyClosed = New(http.StatusBadRequest, "Daily closing already exists for this date")
	ErrConflict      = New(http.StatusBadRequest, "Resource already exists")
	ErrNotFound      = New(http.StatusNotFound, "Not found")
	ErrInternal      = New(http.StatusInternalServerError, "Internal server error")
)
