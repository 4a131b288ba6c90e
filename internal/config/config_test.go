package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swethareddy21395/EchoText/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  read_timeout_seconds: 5
openai:
  api_key: test-key
  model: gpt-4o-mini-tts
audio:
  sample_rate: 24000
history:
  cache_size: 10
log_level: debug
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, "test-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini-tts", cfg.OpenAI.Model)
	assert.Equal(t, 24000, cfg.Audio.SampleRate)
	assert.Equal(t, 10, cfg.History.CacheSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
openai:
  api_key: test-key
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 24000, cfg.Audio.SampleRate)
	assert.Equal(t, 1, cfg.Audio.NumChannels)
	assert.Equal(t, 16, cfg.Audio.BitsPerSample)
	assert.Equal(t, 50, cfg.History.CacheSize)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}
