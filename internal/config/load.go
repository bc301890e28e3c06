package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment: llm.api_key is read from NURSENOTE_LLM_API_KEY.
const EnvPrefix = "NURSENOTE"

// ConfigFileEnv names the environment variable holding an explicit config
// file path.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// legacyEnv binds the variable names used by earlier deployments. The
// prefixed name always wins when both are set.
var legacyEnv = map[string][]string{
	"server.port":          {"PORT"},
	"cors.allowed_origins": {"ALLOWED_ORIGINS"},
}

// legacyAPIKeyEnv names the unprefixed API key variable for each provider.
// It is consulted only when no key was configured otherwise.
var legacyAPIKeyEnv = map[string]string{
	"openai": "OPENAI_API_KEY",
	"gemini": "GEMINI_API_KEY",
}

// Load configuration from defaults, an optional config file and environment
// variables, in increasing order of precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&cfg)
	applyLegacyAPIKey(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.idle_timeout", "60s")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model_name", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_output_tokens", 1000)
	v.SetDefault("llm.timeout", "60s")
}

// bindEnv registers keys that have no default so that AutomaticEnv can
// see them during Unmarshal, plus the legacy variable names.
func bindEnv(v *viper.Viper) error {
	for _, key := range []string{"llm.api_key", "llm.base_url"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	for key, names := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		args := append([]string{key, prefixed}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	return nil
}

// readConfigFile reads the file named by NURSENOTE_CONFIG_FILE, or
// ./config.yaml when present. A missing default file is not an error.
func readConfigFile(v *viper.Viper) error {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// normalize trims values that commonly arrive with stray whitespace from
// comma-separated environment variables.
func normalize(cfg *Config) {
	origins := make([]string, 0, len(cfg.CORS.AllowedOrigins))
	for _, origin := range cfg.CORS.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.CORS.AllowedOrigins = origins

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.LLM.APIKey = strings.TrimSpace(cfg.LLM.APIKey)
	cfg.LLM.ModelName = strings.TrimSpace(cfg.LLM.ModelName)
	cfg.Server.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Server.LogLevel))
}

// applyLegacyAPIKey fills the API key from the legacy variable matching the
// configured provider, so an OpenAI key is never sent to Gemini.
func applyLegacyAPIKey(cfg *Config) {
	if cfg.LLM.APIKey != "" {
		return
	}
	if name, ok := legacyAPIKeyEnv[cfg.LLM.Provider]; ok {
		cfg.LLM.APIKey = strings.TrimSpace(os.Getenv(name))
	}
}
