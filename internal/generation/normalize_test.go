package generation_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/generation"
	"github.com/phrazzld/nursenote-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNormalizeSuccessTrimsOutput(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	mock := mocks.NewMockGeneratorWithText("\n S（主観）:\n眠れない\n ")
	g := generation.Normalize(mock, newTestLogger(&logs))

	result, err := g.Generate(context.Background(), domain.Prompt{Text: "p"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "S（主観）:\n眠れない", result.Text)
	assert.Equal(t, "mock", result.Provider)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "\n S（主観）:\n眠れない\n ", mock.Result.Text, "the adapter's result is not mutated")
	assert.Contains(t, logs.String(), "generation succeeded")
}

func TestNormalizeEmptyOutputIsProviderError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *domain.GenerationResult
	}{
		{name: "nil result", result: nil},
		{name: "empty text", result: &domain.GenerationResult{Text: ""}},
		{name: "whitespace text", result: &domain.GenerationResult{Text: " \n\t "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &mocks.MockGenerator{Result: tc.result}
			g := generation.Normalize(mock, newTestLogger(&bytes.Buffer{}))

			result, err := g.Generate(context.Background(), domain.Prompt{})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrProvider)
			assert.ErrorIs(t, err, generation.ErrEmptyResponse)
		})
	}
}

func TestNormalizePassesThroughDomainErrors(t *testing.T) {
	t.Parallel()

	providerErr := domain.NewProviderError("down", generation.ErrConnection)
	g := generation.Normalize(mocks.NewMockGeneratorWithError(providerErr), nil)

	_, err := g.Generate(context.Background(), domain.Prompt{})

	assert.Same(t, providerErr, err)
	assert.ErrorIs(t, err, generation.ErrConnection)
}

func TestNormalizeWrapsForeignErrorsAsUnexpected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "plain error", err: errors.New("nil pointer somewhere")},
		{name: "validation kind from adapter", err: domain.NewValidationError("should not come from a provider")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := generation.Normalize(mocks.NewMockGeneratorWithError(tc.err), newTestLogger(&bytes.Buffer{}))

			_, err := g.Generate(context.Background(), domain.Prompt{})

			assert.ErrorIs(t, err, domain.ErrUnexpected)
			assert.ErrorIs(t, err, tc.err, "cause is kept for logging")
		})
	}
}

func TestNormalizeRecoversPanics(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	mock := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, prompt domain.Prompt) (*domain.GenerationResult, error) {
			panic("sdk exploded")
		},
	}
	g := generation.Normalize(mock, newTestLogger(&logs))

	var (
		result *domain.GenerationResult
		err    error
	)
	require.NotPanics(t, func() {
		result, err = g.Generate(context.Background(), domain.Prompt{})
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnexpected)
	assert.Contains(t, logs.String(), `"error_kind":"unexpected"`)
}
