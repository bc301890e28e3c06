package openai

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
	goopenai "github.com/sashabaranov/go-openai"
)

// ProviderName identifies this adapter in logs and generation results.
const ProviderName = "openai"

// OpenAIGenerator implements generation.Generator with chat completions.
type OpenAIGenerator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *goopenai.Client
}

var _ generation.Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator validates cfg and builds a client for it.
func NewOpenAIGenerator(logger *slog.Logger, cfg config.LLMConfig) (*OpenAIGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxOutputTokens <= 0 {
		return nil, fmt.Errorf("%w: max output tokens must be positive", generation.ErrInvalidConfig)
	}

	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &OpenAIGenerator{
		logger: logger.With("provider", ProviderName, "model", cfg.ModelName),
		config: cfg,
		client: goopenai.NewClientWithConfig(clientConfig),
	}, nil
}

// Generate sends the prompt as a chat completion and returns the content of
// the first choice.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt domain.Prompt) (*domain.GenerationResult, error) {
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	messages := make([]goopenai.ChatCompletionMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: prompt.System,
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: prompt.Text,
	})

	g.logger.DebugContext(ctx, "Making OpenAI API call", "prompt_length", len(prompt.Text))

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       g.config.ModelName,
		Messages:    messages,
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxOutputTokens,
	})
	if err != nil {
		return nil, classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, generation.ProviderFailure(ProviderName, generation.ErrEmptyResponse, errors.New("no choices"))
	}

	choice := resp.Choices[0]
	if choice.FinishReason == goopenai.FinishReasonContentFilter {
		return nil, generation.ProviderFailure(ProviderName, generation.ErrContentBlocked, nil)
	}
	if strings.TrimSpace(choice.Message.Content) == "" {
		return nil, generation.ProviderFailure(ProviderName, generation.ErrEmptyResponse, nil)
	}

	model := resp.Model
	if model == "" {
		model = g.config.ModelName
	}

	return &domain.GenerationResult{
		Text:     choice.Message.Content,
		Provider: ProviderName,
		Model:    model,
	}, nil
}

// classifyError maps a go-openai error to a provider error carrying the
// matching generation sentinel. Anything else, such as an undecodable
// response body, is unexpected.
func classifyError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return generation.ProviderFailure(ProviderName, sentinelForStatus(apiErr.HTTPStatusCode), err)
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return generation.ProviderFailure(ProviderName, sentinelForStatus(reqErr.HTTPStatusCode), err)
	}

	if generation.IsConnectionError(err) {
		return generation.ProviderFailure(ProviderName, generation.ErrConnection, err)
	}

	return domain.NewUnexpectedError(ProviderName+" call failed", err)
}

func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return generation.ErrRateLimited
	case status == http.StatusGatewayTimeout, status == http.StatusRequestTimeout:
		return generation.ErrConnection
	default:
		return generation.ErrProviderAPI
	}
}
