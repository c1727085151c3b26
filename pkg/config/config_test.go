package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "router", cfg.Name)
	assert.Equal(t, 0, cfg.MailboxCapacity)
	assert.Equal(t, 1024, cfg.EventBufferSize)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty name", func(c *Config) { c.Name = "" }, ErrInvalidName},
		{"negative mailbox capacity", func(c *Config) { c.MailboxCapacity = -1 }, ErrInvalidMailboxCapacity},
		{"zero event buffer", func(c *Config) { c.EventBufferSize = 0 }, ErrInvalidEventBufferSize},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestLogLevel_Slog(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogLevelDebug.Slog())
	assert.Equal(t, slog.LevelInfo, LogLevelInfo.Slog())
	assert.Equal(t, slog.LevelWarn, LogLevelWarn.Slog())
	assert.Equal(t, slog.LevelError, LogLevelError.Slog())
	assert.False(t, LogLevel("verbose").IsValid())
}

func TestLoader_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "router.yaml")
	data := []byte("name: pipeline\nmailbox_capacity: 128\nevent_buffer_size: 16\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pipeline", cfg.Name)
	assert.Equal(t, 128, cfg.MailboxCapacity)
	assert.Equal(t, 16, cfg.EventBufferSize)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
}

func TestLoader_LoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "router.json")
	data := []byte(`{"name":"jsonic","event_buffer_size":8,"log_level":"warn"}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "jsonic", cfg.Name)
	assert.Equal(t, 8, cfg.EventBufferSize)
	assert.Equal(t, LogLevelWarn, cfg.LogLevel)
}

func TestLoader_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "router.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"x\"\n"), 0o600))

	_, err := NewLoader().Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("ROUTER_NAME", "from-env")
	t.Setenv("ROUTER_MAILBOX_CAPACITY", "64")
	t.Setenv("ROUTER_LOG_LEVEL", "ERROR")

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 64, cfg.MailboxCapacity)
	assert.Equal(t, LogLevelError, cfg.LogLevel)
}

func TestLoader_EnvInvalidNumber(t *testing.T) {
	t.Setenv("ROUTER_MAILBOX_CAPACITY", "many")

	_, err := NewLoader().Load("")
	assert.Error(t, err)
}

func TestLoader_InvalidAfterMerge(t *testing.T) {
	t.Setenv("ROUTER_EVENT_BUFFER_SIZE", "0")

	_, err := NewLoader().Load("")
	assert.ErrorIs(t, err, ErrInvalidEventBufferSize)
}

func TestLoader_Find(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "router.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: found\n"), 0o600))

	loader := NewLoader().SetSearchPaths([]string{dir})
	found, err := loader.Find("router.yaml")
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = loader.Find("absent.yaml")
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestConfig_SystemConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MailboxCapacity = 32
	cfg.EventBufferSize = 4

	sc := cfg.SystemConfig()
	require.NotNil(t, sc)
	assert.Equal(t, 32, sc.MailboxCapacity)
	assert.Equal(t, 4, sc.EventBufferSize)
	assert.NotNil(t, sc.Logger)
}
