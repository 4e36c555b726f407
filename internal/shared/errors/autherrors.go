package errors

import (
	"errors"
	"net/http"
)

// AuthReason narrows an unauthorized error down to what went wrong. It is kept
// out of the response body so clients cannot tell which check failed.
type AuthReason string

const (
	AuthReasonInvalidCredentials AuthReason = "invalid_credentials"
	AuthReasonTokenExpired       AuthReason = "token_expired"
	AuthReasonTokenInvalid       AuthReason = "token_invalid"
)

// AuthError is an unauthorized AppError carrying the failure reason.
type AuthError struct {
	*AppError
	Reason AuthReason
	// SecurityEvent marks failures worth a warning in the logs, such as guessed
	// passwords or forged tokens. Expired tokens are routine.
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

func newAuthError(reason AuthReason, message string, securityEvent bool, details []string) *AuthError {
	return &AuthError{
		AppError:      newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details),
		Reason:        reason,
		SecurityEvent: securityEvent,
	}
}

// NewInvalidCredentialsError is returned for both an unknown email and a wrong password.
func NewInvalidCredentialsError(message string) *AuthError {
	return newAuthError(AuthReasonInvalidCredentials, message, true, nil)
}

// NewTokenExpiredError creates an error for a well-formed token past its expiry.
func NewTokenExpiredError() *AuthError {
	return newAuthError(AuthReasonTokenExpired, "invalid or expired token", false, nil)
}

// NewTokenInvalidError creates an error for a token that fails verification.
// The detail is for logs only.
func NewTokenInvalidError(details ...string) *AuthError {
	return newAuthError(AuthReasonTokenInvalid, "invalid or expired token", true, details)
}

// GetAuthError extracts AuthError from error
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// IsSecurityEvent reports whether err is an auth failure flagged for logging.
func IsSecurityEvent(err error) bool {
	authErr := GetAuthError(err)
	return authErr != nil && authErr.SecurityEvent
}
