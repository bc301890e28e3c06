package generation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/phrazzld/nursenote-api/internal/domain"
)

// IsConnectionError reports whether err means the provider could not be
// reached or did not answer in time, as opposed to answering with an error.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// ProviderFailure returns a provider error whose cause matches both sentinel
// and the original error through errors.Is.
func ProviderFailure(provider string, sentinel, cause error) error {
	wrapped := sentinel
	if cause != nil && !errors.Is(cause, sentinel) {
		wrapped = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return domain.NewProviderError(provider+" request failed", wrapped)
}
