package generation

import (
	"context"

	"github.com/phrazzld/nursenote-api/internal/domain"
)

// Generator produces documentation text from a rendered prompt.
// Implementations must be safe for concurrent use.
type Generator interface {
	// Generate sends the prompt to the provider and returns the generated text.
	// Errors are *domain.Error values of kind provider or unexpected.
	Generate(ctx context.Context, prompt domain.Prompt) (*domain.GenerationResult, error)
}
