package generation

import "errors"

// Causes wrapped inside provider errors. They let logs and tests tell the
// failure modes apart while callers only see the domain error kind.
var (
	// ErrEmptyResponse is returned when the provider answers with no text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrConnection is returned when the provider cannot be reached or the
	// call times out.
	ErrConnection = errors.New("failed to connect to language model provider")

	// ErrRateLimited is returned when the provider rejects the call with a
	// rate limit or quota error.
	ErrRateLimited = errors.New("language model provider rate limit exceeded")

	// ErrProviderAPI is returned for any other error reported by the
	// provider's API.
	ErrProviderAPI = errors.New("language model provider API error")

	// ErrContentBlocked is returned when the provider blocks the content with
	// its safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
