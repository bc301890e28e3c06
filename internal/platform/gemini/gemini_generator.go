package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/nursenote-api/internal/config"
	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/generation"
	"google.golang.org/genai"
)

// ProviderName identifies this adapter in logs and generation results.
const ProviderName = "gemini"

// contentGenerator is the subset of *genai.Models the adapter calls.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	config config.LLMConfig
	models contentGenerator
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator validates cfg and creates a Gemini client.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newWithModels(logger, cfg, client.Models), nil
}

func newWithModels(logger *slog.Logger, cfg config.LLMConfig, models contentGenerator) *GeminiGenerator {
	return &GeminiGenerator{
		logger: logger.With("provider", ProviderName, "model", cfg.ModelName),
		config: cfg,
		models: models,
	}
}

// Generate sends the prompt to Gemini and returns the concatenated text of
// the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt domain.Prompt) (*domain.GenerationResult, error) {
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	g.logger.DebugContext(ctx, "Making Gemini API call", "prompt_length", len(prompt.Text))

	resp, err := g.models.GenerateContent(ctx, g.config.ModelName, genai.Text(prompt.Text), g.requestConfig(prompt))
	if err != nil {
		return nil, classifyError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	return &domain.GenerationResult{
		Text:     text,
		Provider: ProviderName,
		Model:    g.config.ModelName,
	}, nil
}

func (g *GeminiGenerator) requestConfig(prompt domain.Prompt) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.config.Temperature),
		MaxOutputTokens: int32(g.config.MaxOutputTokens),
	}
	if prompt.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		}
	}
	return cfg
}

// extractText returns the text of the first candidate, or a provider error
// when the response carries none.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", generation.ProviderFailure(ProviderName, generation.ErrEmptyResponse, errors.New("nil response"))
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", generation.ProviderFailure(ProviderName, generation.ErrContentBlocked,
			fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", generation.ProviderFailure(ProviderName, generation.ErrEmptyResponse, errors.New("no candidates"))
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.ProviderFailure(ProviderName, generation.ErrContentBlocked, nil)
	}

	if candidate.Content == nil {
		return "", generation.ProviderFailure(ProviderName, generation.ErrEmptyResponse, errors.New("empty content"))
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", generation.ProviderFailure(ProviderName, generation.ErrEmptyResponse, nil)
	}
	return text, nil
}

// classifyError maps an SDK error to a provider error carrying the matching
// generation sentinel. Errors that did not come from the API or the network
// are unexpected.
func classifyError(err error) error {
	if generation.IsConnectionError(err) {
		return generation.ProviderFailure(ProviderName, generation.ErrConnection, err)
	}

	if strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		return generation.ProviderFailure(ProviderName, generation.ErrRateLimited, err)
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return generation.ProviderFailure(ProviderName, generation.ErrRateLimited, err)
		}
		return generation.ProviderFailure(ProviderName, generation.ErrProviderAPI, err)
	}

	return domain.NewUnexpectedError(ProviderName+" call failed", err)
}
