package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins lists the browser origins permitted by CORS.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`

	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// Temperature is kept low so repeated requests for a topic stay consistent.
	Temperature     float32 `mapstructure:"temperature"       validate:"gte=0,lte=2"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens" validate:"gt=0"`

	// SystemInstruction overrides the built-in tutor instruction when set.
	SystemInstruction string `mapstructure:"system_instruction"`

	// EnforceSchema sends the answer schema with each request.
	EnforceSchema bool `mapstructure:"enforce_schema"`

	// StrictFields rejects answers missing any required field instead of
	// passing them through.
	StrictFields bool `mapstructure:"strict_fields"`
}
