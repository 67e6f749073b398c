package uber

import (
	"errors"
	"fmt"
)

// Configuration errors returned before any network call is attempted.
var (
	// ErrMissingClientID indicates no client ID was supplied.
	ErrMissingClientID = errors.New("uber: client ID is required")
	// ErrMissingServerToken indicates no server token was supplied.
	ErrMissingServerToken = errors.New("uber: server token is required")
	// ErrMissingClientSecret indicates no client secret was supplied.
	ErrMissingClientSecret = errors.New("uber: client secret is required")
	// ErrMissingRedirectURI indicates no redirect URI was supplied.
	ErrMissingRedirectURI = errors.New("uber: redirect URI is required")
)

// TransportError wraps a network or connection failure. The underlying
// error from the HTTP client is preserved unmodified.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("uber: transport error: %v", e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError represents a non-2xx API response. The raw response body is
// carried through so callers can inspect the provider's error payload.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("uber: API request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound checks if the error indicates a not found response.
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsRateLimited checks if the error indicates the rate limit was hit.
func (e *StatusError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// DecodeError indicates the response body was not valid JSON.
type DecodeError struct {
	Err  error
	Body string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("uber: failed to decode response: %v", e.Err)
}

// Unwrap returns the underlying decoding failure.
func (e *DecodeError) Unwrap() error { return e.Err }
