package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/nursenote-api/internal/config"
)

// loadAppConfig loads the application configuration from defaults, an
// optional config file and environment variables.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// logConfig records the effective configuration without secrets.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"allowed_origins", cfg.CORS.AllowedOrigins)

	logger.Info("LLM configuration loaded",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName,
		"temperature", cfg.LLM.Temperature,
		"max_output_tokens", cfg.LLM.MaxOutputTokens,
		"timeout", cfg.LLM.Timeout.String(),
		"base_url_set", cfg.LLM.BaseURL != "")

	if cfg.CORS.AllowsAnyOrigin() {
		logger.Warn("CORS allows any origin; restrict cors.allowed_origins in production")
	}
}
