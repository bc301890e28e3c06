package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/nursenote-api/internal/config"
	"github.com/phrazzld/nursenote-api/internal/generation"
)

// validateConfig checks the settings the adapter cannot run without.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if strings.TrimSpace(cfg.ModelName) == "" {
		logger.ErrorContext(ctx, "Missing Gemini model name")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: max output tokens must be positive", generation.ErrInvalidConfig)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		logger.WarnContext(ctx, "Temperature outside the supported range",
			"temperature", cfg.Temperature)
	}

	return nil
}
