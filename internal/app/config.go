package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Demonstration inputs used when no configuration overrides them.
const (
	DefaultKey        = "SUPERSPY"
	DefaultCiphertext = "IKEWENENXLNQLPZSLERUMRHEERYBOFNEINCHCV"
)

// Environment variables that override the config file.
const (
	EnvKey        = "PLAYFAIR_KEY"
	EnvCiphertext = "PLAYFAIR_CIPHERTEXT"
)

// ErrInvalidConfig is returned when a config file cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime wiring options for building the app.
type Config struct {
	Key        string    `yaml:"key"`        // cipher key for the demonstration run
	Ciphertext string    `yaml:"ciphertext"` // ciphertext for the demonstration run
	Log        LogConfig `yaml:"log"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// DefaultConfig returns the compiled-in demonstration configuration.
func DefaultConfig() Config {
	return Config{
		Key:        DefaultKey,
		Ciphertext: DefaultCiphertext,
		Log:        LogConfig{Level: "warn"},
	}
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path (if
// path is non-empty) and then the PLAYFAIR_* environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}
	if v, ok := os.LookupEnv(EnvKey); ok {
		cfg.Key = v
	}
	if v, ok := os.LookupEnv(EnvCiphertext); ok {
		cfg.Ciphertext = v
	}
	return cfg, nil
}
