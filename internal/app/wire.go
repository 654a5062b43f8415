package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"playfair/internal/domain"
	decryptsvc "playfair/internal/services/decrypt"
)

// Wire bundles the logger and services for the CLI.
type Wire struct {
	Log       *zap.Logger
	Decrypter domain.DecryptService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &Wire{
		Log:       log,
		Decrypter: decryptsvc.New(log),
	}, nil
}

// NewLogger builds a zap logger from cfg. An empty level means info.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
		}
		level = l
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
