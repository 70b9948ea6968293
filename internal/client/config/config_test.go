package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	want := &Config{
		ServerBaseURL: "http://127.0.0.1:3000",
		StorePath:     "projectboard.db",
		DeviceKeyPath: "projectboard.key",
		LogLevel:      "info",
		LogFormat:     "text",
	}
	assert.Empty(t, cmp.Diff(want, defaults()))
}

func TestLoadConfig_DefaultsWithoutSources(t *testing.T) {
	cfg := LoadConfig(nil)

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"server_base_url": "http://json:1",
		"store_path":      "json.db",
		"log_format":      "json",
	})
	t.Setenv("PROJECTBOARD_SERVER_URL", "http://env:2")
	t.Setenv("PROJECTBOARD_DEVICE_KEY", "env.key")

	cfg := LoadConfig([]string{"-c", path, "-a", "http://flag:3", "-unrelated", "x"})

	want := &Config{
		ServerBaseURL: "http://flag:3",
		StorePath:     "json.db",
		DeviceKeyPath: "env.key",
		LogLevel:      "info",
		LogFormat:     "json",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PROJECTBOARD_STORE_PATH", ":memory:")
	t.Setenv("PROJECTBOARD_LOG_LEVEL", "debug")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, ":memory:", cfg.StorePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://127.0.0.1:3000", cfg.ServerBaseURL, "unset variables keep the current value")
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://board.test", "-s", "x.db", "-k", "x.key", "-l", "warn"},
			expected: &Config{
				ServerBaseURL: "https://board.test", StorePath: "x.db", DeviceKeyPath: "x.key",
				LogLevel: "warn", LogFormat: "text",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-v", "-a=https://other.test"},
			expected: func() *Config { c := defaults(); c.ServerBaseURL = "https://other.test"; return c }(),
		},
		{name: "missing value", args: []string{"-s"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
