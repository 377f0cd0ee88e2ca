package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. TEACHKIT_SERVER_PORT for server.port.
const EnvPrefix = "TEACHKIT"

// ConfigFileEnv names a config file that replaces the config.yaml search.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// Default values applied before any file or environment source.
const (
	DefaultPort         = 8080
	DefaultLogLevel     = "info"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 3 * time.Minute
	DefaultTextModel    = "gemini-2.5-flash"
	DefaultImageModel   = "gemini-2.5-flash-image"
)

// Load configuration from environment variables and optionally a config.yaml
// in the working directory or ./config. When TEACHKIT_CONFIG_FILE is set, that
// file is read instead and must exist. Environment variables take precedence
// over values from the file.
func Load() (*Config, error) {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return LoadFile(path)
	}

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFile behaves like Load but reads the named file, which must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("llm.text_model", DefaultTextModel)
	v.SetDefault("llm.image_model", DefaultImageModel)
	v.SetDefault("llm.request_timeout", time.Duration(0))
	v.SetDefault("llm.strict_quiz", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The key has no default, so it must be bound explicitly. The unprefixed
	// names are the ones the Gemini tooling documents.
	_ = v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY")

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
