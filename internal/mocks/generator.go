package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/generation"
)

var _ generation.Generator = (*MockGenerator)(nil)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt domain.Prompt) (*domain.GenerationResult, error)

	// Default response values
	Result *domain.GenerationResult
	Err    error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []domain.Prompt
	}
}

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(
	ctx context.Context,
	prompt domain.Prompt,
) (*domain.GenerationResult, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Result, m.Err
}

// CallCount returns how many times Generate was called
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the prompt passed to the most recent Generate call
func (m *MockGenerator) LastPrompt() (domain.Prompt, bool) {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return domain.Prompt{}, false
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1], true
}

// NewMockGeneratorWithText creates a MockGenerator that returns the given text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Result: &domain.GenerationResult{
			Text:     text,
			Provider: "mock",
			Model:    "mock-model",
		},
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorWithConnectionFailure simulates an unreachable provider
func MockGeneratorWithConnectionFailure() *MockGenerator {
	return NewMockGeneratorWithError(domain.NewProviderError(
		"provider unreachable",
		generation.ErrConnection,
	))
}

// MockGeneratorWithRateLimit simulates a provider rejecting the call with 429
func MockGeneratorWithRateLimit() *MockGenerator {
	return NewMockGeneratorWithError(domain.NewProviderError(
		"rate limited",
		generation.ErrRateLimited,
	))
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
}
