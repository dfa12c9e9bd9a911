package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The message stays generic so callers cannot probe which one was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert collides with the unique
	// email index.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidToken is returned for a token with a bad signature.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a token past its expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrMalformedToken is returned for input that does not parse as a token.
	ErrMalformedToken = errors.New("malformed token")
	// ErrCorruptHash is returned when a stored password hash cannot be parsed.
	ErrCorruptHash = errors.New("stored password hash is corrupt")
	// ErrMissingSecret is returned when the signing secret is not configured.
	ErrMissingSecret = errors.New("signing secret is not configured")
)

// ValidationError reports missing or malformed request input. The reason is
// safe to return to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidation creates a ValidationError with the given reason.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a sanitized 500; the cause belongs in the server log, not the
// response body.
func MapErrorToHTTP(err error) *HTTPError {
	var validation *ValidationError
	switch {
	case errors.As(err, &validation):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: validation.Reason}
	case errors.Is(err, ErrUserNotFound):
		return &HTTPError{StatusCode: http.StatusNotFound, Message: "User not found"}
	case errors.Is(err, ErrDuplicateEmail):
		return &HTTPError{StatusCode: http.StatusConflict, Message: ErrDuplicateEmail.Error()}
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: ErrInvalidCredentials.Error()}
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken), errors.Is(err, ErrMalformedToken):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: "Invalid token"}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}
