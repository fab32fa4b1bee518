package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := NewViper("", "")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "./data/splitter.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.TokenDuration)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, RateLimit{RPS: 10, Burst: 30}, cfg.RateLimit)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.True(t, cfg.InsecureSecret())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SPLITTER_PORT", "9090")
	t.Setenv("SPLITTER_RATE_LIMIT_RPS", "2.5")
	t.Setenv("SPLITTER_CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SPLITTER_JWT_SECRET", "a-real-secret-that-is-long-enough-to-use")

	v, err := NewViper("", "")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.InsecureSecret())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 7070
db_path: /tmp/receipts.db
public_base_url: https://split.example.com/
rate_limit:
  burst: 5
`), 0o644))

	v, err := NewViper("", path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "/tmp/receipts.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "https://split.example.com", cfg.PublicBaseURL)
}

func TestNewViper_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SPLITTER_PUBLIC_BASE_URL=https://from-dotenv.example.com\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SPLITTER_PUBLIC_BASE_URL") })

	v, err := NewViper(envFile, "")
	require.NoError(t, err)
	assert.Equal(t, "https://from-dotenv.example.com", v.GetString(KeyPublicBaseURL))

	_, err = NewViper(filepath.Join(dir, "missing.env"), "")
	assert.NoError(t, err)
}

func TestNewViper_MissingExplicitConfigFile(t *testing.T) {
	_, err := NewViper("", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          8080,
			DBPath:        "x.db",
			JWTSecret:     DefaultJWTSecret,
			TokenDuration: time.Hour,
			LogFormat:     "json",
			RateLimit:     RateLimit{RPS: 1, Burst: 1},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port too low", func(c *Config) { c.Port = 0 }, "port"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "port"},
		{"no db path", func(c *Config) { c.DBPath = "" }, "db_path"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "jwt_secret"},
		{"zero token duration", func(c *Config) { c.TokenDuration = 0 }, "token_duration"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"zero rps", func(c *Config) { c.RateLimit.RPS = 0 }, "rate_limit.rps"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "rate_limit.burst"},
		{"negative cache ttl", func(c *Config) { c.CacheTTL = -time.Second }, "cache.ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
