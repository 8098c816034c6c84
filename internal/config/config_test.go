package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, OutputBoard, cfg.Output)
	assert.True(t, cfg.Seed)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"json output ok", func(c *Config) { c.Output = OutputJSON }, ""},
		{"unknown output", func(c *Config) { c.Output = "xml" }, "invalid output format"},
		{"debug level ok", func(c *Config) { c.Log.Level = "debug" }, ""},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestWriteDefaultConfig_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".taskbook", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, Defaults(), cfg)
}
