package app

import (
	"go.uber.org/zap"

	"playfair/internal/domain"
)

// App is the runtime context shared by CLI commands.
type App struct {
	Config    Config
	Log       *zap.Logger
	Decrypter domain.DecryptService
}

// New wires an App from cfg.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:    cfg,
		Log:       w.Log,
		Decrypter: w.Decrypter,
	}, nil
}

// Close flushes buffered log entries.
func (a *App) Close() {
	_ = a.Log.Sync()
}
