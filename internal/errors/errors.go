package errors

import "errors"

// This package defines the sentinel errors used across the application.
// Services return these without knowing about HTTP; the API layer maps
// them to status codes with errors.Is. Wrapped detail (upstream status,
// response bodies) is logged at the boundary and never sent to clients.

var (
	// ErrValidation signifies that client input failed a business rule.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrAuth signifies a missing or rejected bearer credential. The
	// distinction between the two is logged, never exposed.
	// Mapped to 401 Unauthorized.
	ErrAuth = errors.New("unauthorized")

	// ErrPermission signifies an attempt to read another user's data.
	// Mapped to 403 Forbidden.
	ErrPermission = errors.New("permission denied")

	// ErrConfig signifies that required configuration for an external
	// service is missing, so the call was never attempted.
	// Mapped to 500 with a "Server configuration error" body.
	ErrConfig = errors.New("server configuration error")

	// ErrUpstream signifies that the planning API answered with a
	// non-success status. Mapped to a generic 500.
	ErrUpstream = errors.New("planning service error")

	// ErrUpstreamUnavailable signifies that the planning API could not be
	// reached at all. Mapped to the same generic 500 as ErrUpstream.
	ErrUpstreamUnavailable = errors.New("planning service unavailable")

	// ErrInternal signifies an unexpected server-side failure with no more
	// specific category. Mapped to 500 with an "Internal Server Error"
	// body, same as any unrecognized error.
	ErrInternal = errors.New("internal server error")
)
