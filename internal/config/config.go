// Package config loads server settings from flags, SPLITTER_* environment
// variables, an optional YAML file and a .env file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config keys. Nested keys map to env vars with "." replaced by "_", so
// rate_limit.rps is SPLITTER_RATE_LIMIT_RPS.
const (
	KeyPort           = "port"
	KeyDBPath         = "db_path"
	KeyJWTSecret      = "jwt_secret"
	KeyTokenDuration  = "token_duration"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyRateLimitRPS   = "rate_limit.rps"
	KeyRateLimitBurst = "rate_limit.burst"
	KeyCacheTTL       = "cache.ttl"
	KeyPublicBaseURL  = "public_base_url"
)

const (
	envPrefix  = "SPLITTER"
	configName = "splitter"
	configType = "yaml"

	// DefaultJWTSecret is only fit for local development.
	DefaultJWTSecret = "insecure-development-secret-change-me!"
)

// Config is the resolved server configuration.
type Config struct {
	Port          int
	DBPath        string
	JWTSecret     string
	TokenDuration time.Duration
	LogLevel      string
	LogFormat     string
	RateLimit     RateLimit
	CacheTTL      time.Duration
	PublicBaseURL string
}

// RateLimit is the process-wide request budget.
type RateLimit struct {
	RPS   float64
	Burst int
}

// NewViper returns a viper instance with defaults and environment bindings.
// Values from envFile (usually ".env") are exported into the environment
// first; a missing file is ignored. If configFile is empty, splitter.yaml is
// looked up in the working directory and its absence is not an error.
func NewViper(envFile, configFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The logging package has always honoured the bare names.
	_ = v.BindEnv(KeyLogLevel, "SPLITTER_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv(KeyLogFormat, "SPLITTER_LOG_FORMAT", "LOG_FORMAT")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyDBPath, "./data/splitter.db")
	v.SetDefault(KeyJWTSecret, DefaultJWTSecret)
	v.SetDefault(KeyTokenDuration, 24*time.Hour)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyRateLimitRPS, 10.0)
	v.SetDefault(KeyRateLimitBurst, 30)
	v.SetDefault(KeyCacheTTL, 5*time.Minute)
	v.SetDefault(KeyPublicBaseURL, "http://localhost:8080")
}

// Load resolves the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:          v.GetInt(KeyPort),
		DBPath:        v.GetString(KeyDBPath),
		JWTSecret:     v.GetString(KeyJWTSecret),
		TokenDuration: v.GetDuration(KeyTokenDuration),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
		RateLimit: RateLimit{
			RPS:   v.GetFloat64(KeyRateLimitRPS),
			Burst: v.GetInt(KeyRateLimitBurst),
		},
		CacheTTL:      v.GetDuration(KeyCacheTTL),
		PublicBaseURL: strings.TrimRight(v.GetString(KeyPublicBaseURL), "/"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s must be between 1 and 65535, got %d", KeyPort, c.Port))
	}
	if c.DBPath == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyDBPath))
	}
	if len(c.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("%s must be at least 32 bytes, got %d", KeyJWTSecret, len(c.JWTSecret)))
	}
	if c.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyTokenDuration))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, c.LogFormat))
	}
	if c.RateLimit.RPS <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyRateLimitRPS))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyRateLimitBurst))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyCacheTTL))
	}
	return errors.Join(errs...)
}

// InsecureSecret reports whether the development JWT secret is in use.
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
