package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func env(vals map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoadFile(t *testing.T) {
	path := writeTempFile(t, `
host: 127.0.0.1
port: 8080
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "log_level: warn\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadExplicitZeroPort(t *testing.T) {
	path := writeTempFile(t, "port: 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Port)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempFile(t, "port: [not, a, number\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		lookup  func(string) (string, bool)
		want    int
		wantErr bool
	}{
		{"unset", noEnv, DefaultPort, false},
		{"empty", env(map[string]string{"PORT": ""}), DefaultPort, false},
		{"set", env(map[string]string{"PORT": "4100"}), 4100, false},
		{"garbage", env(map[string]string{"PORT": "http"}), DefaultPort, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(tt.lookup)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Port)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Port = 0 }, false},
		{"port max", func(c *Config) { c.Port = 65535 }, false},
		{"port negative", func(c *Config) { c.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Port = 65536 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }, true},
		{"trace level", func(c *Config) { c.LogLevel = "trace" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
