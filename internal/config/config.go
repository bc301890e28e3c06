package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"   validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port"          validate:"required,gt=0,lt=65536"`
	LogLevel     string        `mapstructure:"log_level"     validate:"required,oneof=debug info warn error"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"  validate:"gte=0"`
}

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	// AllowedOrigins lists permitted origins. A single "*" allows any origin
	// and is meant for development only.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1,dive,required"`
}

// LLMConfig contains the text generation provider settings.
type LLMConfig struct {
	// Provider selects the adapter: "openai" or "gemini".
	Provider string `mapstructure:"provider" validate:"required,oneof=openai gemini"`

	// APIKey is the provider credential. Startup fails without it.
	APIKey string `mapstructure:"api_key" validate:"required"`

	ModelName       string        `mapstructure:"model_name"        validate:"required"`
	Temperature     float32       `mapstructure:"temperature"       validate:"gte=0,lte=2"`
	MaxOutputTokens int           `mapstructure:"max_output_tokens" validate:"gt=0"`
	Timeout         time.Duration `mapstructure:"timeout"           validate:"gt=0"`

	// BaseURL overrides the provider endpoint (OpenAI-compatible gateways).
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// AllowsAnyOrigin reports whether the wildcard origin is configured.
func (c CORSConfig) AllowsAnyOrigin() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
