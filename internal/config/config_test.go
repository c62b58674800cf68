package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultServerPort, cfg.ServerConfig.Port)
	assert.True(t, cfg.ServerConfig.EnableCORS)
	assert.Equal(t, DefaultSendDelayMs, cfg.RelayConfig.SendDelayMs)
	assert.Equal(t, DefaultRelayDefaultColor, cfg.RelayConfig.DefaultColor)
	assert.Equal(t, DefaultYouTubeAPIBaseURL, cfg.YouTubeConfig.APIBaseURL)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogConfig.LogFormat)
}

func TestLoadGlobalConfig_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server_config:
  port: 9090
  enable_cors: false
relay_config:
  send_delay_ms: 0
  default_color: "#FF0000"
log_config:
  log_level: debug
  log_format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerConfig.Port)
	assert.False(t, cfg.ServerConfig.EnableCORS)
	assert.Equal(t, 0, cfg.RelayConfig.SendDelayMs)
	assert.Equal(t, "#FF0000", cfg.RelayConfig.DefaultColor)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)

	// untouched sections keep their defaults
	assert.Equal(t, DefaultServerReadTimeoutSecs, cfg.ServerConfig.ReadTimeoutSecs)
	assert.Equal(t, DefaultYouTubeAPIBaseURL, cfg.YouTubeConfig.APIBaseURL)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"server_config":{"port":8123},"relay_config":{"timeout_secs":5}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.ServerConfig.Port)
	assert.Equal(t, 5, cfg.RelayConfig.TimeoutSecs)
}

func TestLoadGlobalConfig_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"port out of range", "server_config:\n  port: 70000\n"},
		{"bad color", "relay_config:\n  default_color: \"red\"\n"},
		{"negative delay", "relay_config:\n  send_delay_ms: -5\n"},
		{"unknown log level", "log_config:\n  log_level: loud\n"},
		{"unknown log format", "log_config:\n  log_format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadGlobalConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_config: ["), 0o644))

	_, err := LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	t.Setenv("EMBEDFORGE_CONFIG_PATH", path)

	assert.Equal(t, path, GetConfigPath(""))
}

func TestGetConfigPath_FlagBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte(""), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte(""), 0o644))
	t.Setenv("EMBEDFORGE_CONFIG_PATH", envPath)

	assert.Equal(t, flagPath, GetConfigPath(flagPath))
}

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, ValidateConfig(NewDefaultGlobalConfig()))
}
