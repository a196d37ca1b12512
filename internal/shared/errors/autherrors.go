package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeTokenExpired   ErrorType = "token_expired"
	ErrorTypeTokenMalformed ErrorType = "token_malformed"
	ErrorTypeOAuthError     ErrorType = "oauth_error"
)

// NewTokenExpiredError creates an error for session tokens past their expiry
func NewTokenExpiredError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenExpired,
		Message: "Token expired",
		Code:    http.StatusUnauthorized,
		Details: "Please login again",
	}
}

// NewTokenMalformedError creates an error for tokens that fail signature or
// structural validation
func NewTokenMalformedError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenMalformed,
		Message: "Invalid token",
		Code:    http.StatusUnauthorized,
	}
}

// NewOAuthError creates an error for failures during the provider handshake.
// The HTTP layer never returns these directly; they are converted into a
// redirect to the front-end error page.
func NewOAuthError(stage string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeOAuthError,
		Message: "Google authentication failed at " + stage,
		Code:    http.StatusBadGateway,
		Details: firstOrEmpty(details),
	}
}
