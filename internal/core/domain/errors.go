package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the document does not exist or is outside the configured scope.
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured indicates a required setting is missing.
	ErrNotConfigured = errors.New("not configured")

	// ErrUnsupportedType indicates an unknown provider type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrLLMUnavailable indicates the LLM service is not configured or unreachable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrStoreUnavailable indicates the document store is not configured or unreachable.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthInvalid indicates the credentials were rejected.
	ErrAuthInvalid = errors.New("authentication invalid")
)
