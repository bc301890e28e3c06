package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/nursenote-api/internal/config"
	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/generation"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		Provider:        "openai",
		APIKey:          "test-api-key",
		ModelName:       "gpt-4o-mini",
		Temperature:     0.7,
		MaxOutputTokens: 1000,
		Timeout:         5 * time.Second,
		BaseURL:         baseURL,
	}
}

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *OpenAIGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g, err := NewOpenAIGenerator(testLogger(), testConfig(server.URL+"/v1"))
	require.NoError(t, err)
	return g
}

func writeCompletion(w http.ResponseWriter, content, finishReason string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": finishReason,
		}},
	})
}

func TestNewOpenAIGeneratorValidation(t *testing.T) {
	t.Parallel()

	_, err := NewOpenAIGenerator(nil, testConfig(""))
	assert.ErrorContains(t, err, "logger cannot be nil")

	cfg := testConfig("")
	cfg.APIKey = ""
	_, err = NewOpenAIGenerator(testLogger(), cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg = testConfig("")
	cfg.ModelName = " "
	_, err = NewOpenAIGenerator(testLogger(), cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg = testConfig("")
	cfg.MaxOutputTokens = 0
	_, err = NewOpenAIGenerator(testLogger(), cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	g, err := NewOpenAIGenerator(testLogger(), testConfig(""))
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestGenerateSuccess(t *testing.T) {
	t.Parallel()

	var received goopenai.ChatCompletionRequest
	var authHeader, path string

	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeCompletion(w, "S（主観）:\n眠れない\n", "stop")
	})

	result, err := g.Generate(context.Background(), domain.Prompt{
		System: "あなたは訪問看護師です。",
		Text:   "S:\n眠れない",
	})

	require.NoError(t, err)
	assert.Equal(t, "S（主観）:\n眠れない\n", result.Text)
	assert.Equal(t, ProviderName, result.Provider)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", result.Model)

	assert.Equal(t, "Bearer test-api-key", authHeader)
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "gpt-4o-mini", received.Model)
	assert.InDelta(t, 0.7, received.Temperature, 1e-6)
	assert.Equal(t, 1000, received.MaxTokens)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, goopenai.ChatMessageRoleSystem, received.Messages[0].Role)
	assert.Equal(t, "あなたは訪問看護師です。", received.Messages[0].Content)
	assert.Equal(t, goopenai.ChatMessageRoleUser, received.Messages[1].Role)
	assert.Equal(t, "S:\n眠れない", received.Messages[1].Content)
}

func TestGenerateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		sentinel error
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = io.WriteString(w,
					`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`)
			},
			sentinel: generation.ErrRateLimited,
		},
		{
			name: "invalid key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w,
					`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
			},
			sentinel: generation.ErrProviderAPI,
		},
		{
			name: "upstream html error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = io.WriteString(w, "<html>bad gateway</html>")
			},
			sentinel: generation.ErrProviderAPI,
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","model":"gpt-4o-mini","choices":[]}`)
			},
			sentinel: generation.ErrEmptyResponse,
		},
		{
			name: "blank content",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeCompletion(w, "   ", "stop")
			},
			sentinel: generation.ErrEmptyResponse,
		},
		{
			name: "content filter",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeCompletion(w, "", "content_filter")
			},
			sentinel: generation.ErrContentBlocked,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(t, tc.handler)

			result, err := g.Generate(context.Background(), domain.Prompt{Text: "prompt"})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, domain.KindProvider, domain.KindOf(err))
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestGenerateConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	g, err := NewOpenAIGenerator(testLogger(), testConfig(url+"/v1"))
	require.NoError(t, err)

	result, err := g.Generate(context.Background(), domain.Prompt{Text: "prompt"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrProvider)
	assert.ErrorIs(t, err, generation.ErrConnection)
}

func TestGenerateTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
			writeCompletion(w, "too late", "stop")
		}
	}))
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL + "/v1")
	cfg.Timeout = 50 * time.Millisecond
	g, err := NewOpenAIGenerator(testLogger(), cfg)
	require.NoError(t, err)

	result, err := g.Generate(context.Background(), domain.Prompt{Text: "prompt"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, generation.ErrConnection)
}

func TestGenerateUndecodableResponse(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id": "chatcmpl-test", "choices": [`)
	})

	result, err := g.Generate(context.Background(), domain.Prompt{Text: "prompt"})

	assert.Nil(t, result)
	assert.Equal(t, domain.KindUnexpected, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrUnexpected)
	assert.NotErrorIs(t, err, domain.ErrProvider)
}
