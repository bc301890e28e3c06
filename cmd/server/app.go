package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nursenote-api/internal/config"
	"github.com/phrazzld/nursenote-api/internal/generation"
	"github.com/phrazzld/nursenote-api/internal/platform/gemini"
	"github.com/phrazzld/nursenote-api/internal/platform/openai"
	"github.com/phrazzld/nursenote-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator   generation.Generator
	noteService service.NoteService
}

// newApplication creates a new application instance with all dependencies initialized.
// The generator is built once here; a missing or invalid provider
// configuration fails startup instead of the first request.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	logConfig(logger, cfg)

	provider, err := newGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s generator: %w", cfg.LLM.Provider, err)
	}

	return newApplicationWithGenerator(cfg, logger, provider)
}

// newApplicationWithGenerator wires the services around an existing
// provider adapter.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	provider generation.Generator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: generation.Normalize(provider, logger.With("component", "generator")),
	}

	var err error
	app.noteService, err = service.NewNoteService(app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create note service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// newGenerator selects the provider adapter named in cfg.
func newGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error) {
	switch cfg.Provider {
	case openai.ProviderName:
		g, err := openai.NewOpenAIGenerator(logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case gemini.ProviderName:
		g, err := gemini.NewGeminiGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
