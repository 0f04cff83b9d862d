package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for everything that has a sensible one. Secrets have no
	// defaults on purpose: a missing secret must fail validation loudly.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("auth.session_lifetime_minutes", 24*60)
	v.SetDefault("auth.google_userinfo_url", "https://www.googleapis.com/oauth2/v3/userinfo")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model_name", "gpt-4o-mini")
	v.SetDefault("llm.openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.request_timeout_seconds", 25)

	// Optional config file; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// QUIZCRAWLER_SERVER_PORT etc. override file values.
	v.SetEnvPrefix("QUIZCRAWLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys with no default are invisible to Unmarshal unless bound
	// explicitly. These are exactly the secret-bearing keys.
	for _, key := range []string{
		"database.url",
		"auth.jwt_secret",
		"llm.openai_api_key",
		"llm.gemini_api_key",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// The selected provider must carry its API key; the other key may be absent.
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.LLM.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("invalid configuration: llm.openai_api_key is required for provider %q", cfg.LLM.Provider)
		}
	case "gemini":
		if cfg.LLM.GeminiAPIKey == "" {
			return nil, fmt.Errorf("invalid configuration: llm.gemini_api_key is required for provider %q", cfg.LLM.Provider)
		}
	}

	return &cfg, nil
}
