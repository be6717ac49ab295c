// Package api provides the HTTP client for the hiredash backend and the
// transforms that turn its loosely-shaped JSON payloads into view-model
// records.
package api

import (
	"errors"
	"fmt"
)

// NetworkError indicates the request never reached the server or no response
// came back (DNS failure, connection refused, timeout).
type NetworkError struct {
	Endpoint string
	Cause    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for %s: %v", e.Endpoint, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// HTTPError indicates the server was reachable but answered with a
// non-success status.
type HTTPError struct {
	Status   int
	Endpoint string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP status %d from %s", e.Status, e.Endpoint)
}

// ParseError indicates a response body that was not valid JSON, or did not
// decode into the expected shape.
type ParseError struct {
	Endpoint string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %v", e.Endpoint, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// AuthError indicates the server explicitly rejected a login or session via
// its payload shape, as opposed to a transport or status failure.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected: %s", e.Reason)
}

// ValidationError indicates a client-side field invariant was violated before
// any network call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// UserMessage maps an error from this package to the short user-facing
// message a view should render. The full error keeps the class distinction
// needed for logging.
func UserMessage(err error, what string) string {
	var parseErr *ParseError
	var authErr *AuthError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &parseErr):
		return fmt.Sprintf("failed to parse %s", what)
	case errors.As(err, &authErr):
		return "authentication failed"
	default:
		return fmt.Sprintf("failed to load %s", what)
	}
}
