package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[villa_api]
url = "http://api.villa.test/api"
timeout = 3

[sessions]
backend = "redis"
ttl_minutes = 30
cookie_name = "vs"

[redis]
addr = "redis:6379"
db = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.WriteTimeout, "default kept")
	assert.Equal(t, "http://api.villa.test/api", cfg.VillaAPI.URL)
	assert.Equal(t, 3, cfg.VillaAPI.Timeout)
	assert.Equal(t, 5, cfg.VillaAPI.BreakerMaxFailures)
	assert.Equal(t, SessionBackendRedis, cfg.Sessions.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[villa_api]
url = "http://from-file/api"
`)
	t.Setenv("VILLA_API_URL", "http://from-env/api")
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env/api", cfg.VillaAPI.URL)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"no api url", func(c *Config) { c.VillaAPI.URL = "" }},
		{"no api timeout", func(c *Config) { c.VillaAPI.Timeout = 0 }},
		{"unknown backend", func(c *Config) { c.Sessions.Backend = "postgres" }},
		{"redis without addr", func(c *Config) {
			c.Sessions.Backend = SessionBackendRedis
			c.Redis.Addr = ""
		}},
		{"zero ttl", func(c *Config) { c.Sessions.TTLMinutes = 0 }},
		{"no cookie", func(c *Config) { c.Sessions.CookieName = "" }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
