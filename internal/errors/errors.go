package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAlreadySubscribed is returned when an email already has a newsletter row.
	ErrAlreadySubscribed = errors.New("you are already subscribed to our newsletter")
	// ErrUserAlreadyExists is returned when registering a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on any sign-in failure. It never
	// distinguishes a missing user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailSendFailed is returned when the transactional email provider
	// rejects a send that the flow cannot proceed without.
	ErrEmailSendFailed = errors.New("failed to send email")
	// ErrSessionInvalid is returned for malformed, expired, or revoked
	// session tokens. Callers treat it as unauthenticated, never as a fault.
	ErrSessionInvalid = errors.New("invalid or expired session")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidationResponse is returned with HTTP 400 when form validation fails.
// Errors carries one human-readable message per failed field.
type ValidationResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// NewValidationResponse builds the standard validation-failure body.
func NewValidationResponse(errs []string) ValidationResponse {
	return ValidationResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Dependency failures
// collapse to a generic 500 so internal detail never reaches the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAlreadySubscribed):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_SUBSCRIBED")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrSessionInvalid):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "SESSION_INVALID")
	case errors.Is(err, ErrEmailSendFailed):
		return NewHTTPError(http.StatusInternalServerError, "Failed to register for newsletter", "EMAIL_SEND_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error. Please try again later.", "INTERNAL_ERROR")
	}
}
