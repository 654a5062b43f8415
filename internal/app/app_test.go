package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"playfair/internal/app"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playfair.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, "key: monarchy\nlog:\n  level: debug\n  development: true\n")

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "monarchy", cfg.Key)
	require.Equal(t, app.DefaultCiphertext, cfg.Ciphertext)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.Development)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "key: monarchy\nciphertext: ABCD\n")
	t.Setenv(app.EnvKey, "playfair example")
	t.Setenv(app.EnvCiphertext, "")

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "playfair example", cfg.Key)
	require.Empty(t, cfg.Ciphertext)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, app.ErrInvalidConfig)

	_, err = app.LoadConfig(writeConfig(t, "key: [unterminated\n"))
	require.ErrorIs(t, err, app.ErrInvalidConfig)
}

func TestNew_DecryptsDemo(t *testing.T) {
	a, err := app.New(app.DefaultConfig())
	require.NoError(t, err)
	defer a.Close()

	got, err := a.Decrypter.Decrypt(a.Config.Key, a.Config.Ciphertext)
	require.NoError(t, err)
	require.Equal(t, "HIPPOPOTOMONSTROSESQUIPPEDALIOPHOBIA", got)
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := app.NewLogger(app.LogConfig{Level: "loud"})
	require.ErrorIs(t, err, app.ErrInvalidConfig)

	log, err := app.NewLogger(app.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
}
