package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ReadTimeout and WriteTimeout bound the HTTP exchange. WriteTimeout has
	// to leave room for a slow image generation.
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
}

// LLMConfig contains the model API settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	TextModel    string `mapstructure:"text_model" validate:"required"`
	ImageModel   string `mapstructure:"image_model" validate:"required"`

	// RequestTimeout bounds a single model call. Zero means no bound.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`

	// StrictQuiz rejects quizzes whose correct answer is not among the options.
	StrictQuiz bool `mapstructure:"strict_quiz"`
}
