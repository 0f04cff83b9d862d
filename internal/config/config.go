package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins lists the origins permitted by the CORS layer.
	// Browser extensions present chrome-extension:// origins, so this
	// cannot be inferred from the server's own host.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs session tokens; minimum length enforced here and
	// again by the JWT service.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// SessionLifetimeMinutes is the fixed session token lifetime.
	// The product contract is 24 hours; there is no refresh flow.
	SessionLifetimeMinutes int `mapstructure:"session_lifetime_minutes" validate:"required,gt=0"`

	// GoogleUserInfoURL is the OAuth userinfo endpoint used to resolve an
	// access token into an email/name/picture triple. Overridable for tests.
	GoogleUserInfoURL string `mapstructure:"google_userinfo_url" validate:"required,url"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Provider selects the completion backend: "openai" or "gemini".
	Provider string `mapstructure:"provider" validate:"required,oneof=openai gemini"`

	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName is fixed per deployment, not per request.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// OpenAIBaseURL is the chat-completion endpoint base. Overridable for tests.
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"required,url"`

	// RequestTimeoutSeconds bounds one completion exchange from the caller's
	// perspective. When it elapses the pending result is abandoned; the
	// request is never retried.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}
