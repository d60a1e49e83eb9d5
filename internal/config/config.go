package config

// Environment names accepted by Config.Environment.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Environment string         `mapstructure:"environment" validate:"required,oneof=development test staging production"`
	Server      ServerConfig   `mapstructure:"server" validate:"required"`
	Database    DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth        AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM         LLMConfig      `mapstructure:"llm" validate:"required"`
}

// IsProduction reports whether the service runs in the production environment.
// Degraded AI responses are never served in production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                  int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel              string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
//
// GeminiAPIKey is optional: without it the AI routes answer with
// CONFIG_MISSING, but the rest of the service keeps running.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
	// ModelPreferences is consulted after ModelName when picking an
	// available model.
	ModelPreferences []string `mapstructure:"model_preferences" validate:"dive,required"`
	EnhanceMaxTokens int      `mapstructure:"enhance_max_tokens" validate:"required,gt=0"`
	SkillsMaxTokens  int      `mapstructure:"skills_max_tokens" validate:"required,gt=0"`
}
