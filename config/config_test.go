// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("AZURE_CDN_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	cfg, used, err := Load(NewViper())
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, DefaultConfig, cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"LogLevel":"debug","Output":"yaml","Subscription":"sub"}`), 0o600))
	t.Setenv("AZURE_CDN_CONFIG", path)

	cfg, used, err := Load(NewViper())
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, OutputYAML, cfg.Output)
	require.Equal(t, "sub", cfg.Subscription)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Subscription":"from-file"}`), 0o600))
	t.Setenv("AZURE_CDN_CONFIG", path)
	t.Setenv("AZURE_CDN_SUBSCRIPTION", "from-env")

	cfg, _, err := Load(NewViper())
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Subscription)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "yaml", mutate: func(c *Config) { c.Output = OutputYAML }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "bad output", mutate: func(c *Config) { c.Output = "table" }, wantErr: true},
		{name: "negative backups", mutate: func(c *Config) { c.LogMaxBackups = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
