package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "besthand.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultHandSize, cfg.HandSize)
	assert.True(t, *cfg.Output.Color)
	assert.True(t, *cfg.Output.Sort)
	assert.Zero(t, cfg.Batch.Workers)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
hand_size = 6

output {
  color = false
}

batch {
  workers = 3
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, 6, cfg.HandSize)
	assert.False(t, *cfg.Output.Color)
	assert.True(t, *cfg.Output.Sort, "unset values keep their default")
	assert.Equal(t, 3, cfg.Batch.Workers)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "syntax error", body: `log_level = `},
		{name: "unknown attribute", body: `colour = true`},
		{name: "wrong type", body: `hand_size = "seven"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "hand too small", mutate: func(c *Config) { c.HandSize = 4 }, wantErr: true},
		{name: "negative workers", mutate: func(c *Config) { c.Batch.Workers = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
