package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/redact"
)

// normalizingGenerator enforces the Generator error contract around any
// provider adapter.
type normalizingGenerator struct {
	next   Generator
	logger *slog.Logger
}

// Normalize wraps next so that:
//   - a panic inside the provider call becomes an unexpected error,
//   - errors without a provider or unexpected kind become unexpected errors,
//   - a missing or blank completion becomes a provider error wrapping
//     ErrEmptyResponse,
//   - successful output is trimmed.
//
// Every call is logged with its duration and outcome.
func Normalize(next Generator, logger *slog.Logger) Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &normalizingGenerator{next: next, logger: logger}
}

// Generate implements Generator.
func (g *normalizingGenerator) Generate(
	ctx context.Context,
	prompt domain.Prompt,
) (result *domain.GenerationResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = domain.NewUnexpectedError("generation panicked", fmt.Errorf("panic: %v", r))
		}
		g.logOutcome(ctx, prompt, result, err, time.Since(start))
	}()

	result, err = g.next.Generate(ctx, prompt)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && (de.Kind == domain.KindProvider || de.Kind == domain.KindUnexpected) {
			return nil, err
		}
		return nil, domain.NewUnexpectedError("generation failed", err)
	}

	if result == nil || strings.TrimSpace(result.Text) == "" {
		return nil, domain.NewProviderError("empty response", ErrEmptyResponse)
	}

	out := *result
	out.Text = strings.TrimSpace(out.Text)
	return &out, nil
}

func (g *normalizingGenerator) logOutcome(
	ctx context.Context,
	prompt domain.Prompt,
	result *domain.GenerationResult,
	err error,
	elapsed time.Duration,
) {
	attrs := []slog.Attr{
		slog.Int("prompt_length", len(prompt.Text)),
		slog.Duration("duration", elapsed),
	}

	if err != nil {
		attrs = append(attrs,
			slog.String("error_kind", domain.KindOf(err).String()),
			slog.String("error", redact.Error(err)),
		)
		level := slog.LevelWarn
		if domain.KindOf(err) == domain.KindUnexpected {
			level = slog.LevelError
		}
		g.logger.LogAttrs(ctx, level, "generation failed", attrs...)
		return
	}

	attrs = append(attrs,
		slog.String("provider", result.Provider),
		slog.String("model", result.Model),
		slog.Int("output_length", len(result.Text)),
	)
	g.logger.LogAttrs(ctx, slog.LevelInfo, "generation succeeded", attrs...)
}
