// Package config loads runtime settings for the ShakPlay client from the
// environment. An optional .env file in the working directory is read first.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Token store drivers.
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds every setting the composition roots need.
type Config struct {
	Service struct {
		Name    string
		Version string
		Env     string
		Port    string
	}

	Logging struct {
		Level string
	}

	Xano struct {
		// WorkspaceURL is the base URL every endpoint path is appended to.
		WorkspaceURL string
		// Timeout is the transport timeout. Zero keeps the transport default (none).
		Timeout string
	}

	Session struct {
		Store       string
		FilePath    string
		RedisAddr   string
		RedisDB     int
		RedisPrefix string
		PostgresDSN string
		MemoryTTL   string
	}

	Fixture struct {
		// DelayScale multiplies the simulated latency of the mock backend.
		// 1 keeps the full simulated latency, 0 disables it.
		DelayScale float64
	}

	Tracing struct {
		Enabled    bool
		Endpoint   string
		SampleRate float64
	}

	Profiling struct {
		Enabled  bool
		Endpoint string
	}

	Shutdown struct {
		Timeout             string
		ReadinessDrainDelay string
	}
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Service.Name = getEnv("SERVICE_NAME", "shakplay")
	cfg.Service.Version = getEnv("SERVICE_VERSION", "dev")
	cfg.Service.Env = getEnv("ENV", "development")
	cfg.Service.Port = getEnv("PORT", "8080")

	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")

	cfg.Xano.WorkspaceURL = strings.TrimRight(firstEnv("XANO_WORKSPACE_URL", "NEXT_PUBLIC_XANO_WORKSPACE_URL"), "/")
	cfg.Xano.Timeout = getEnv("XANO_TIMEOUT", "0s")

	cfg.Session.Store = getEnv("TOKEN_STORE", StoreFile)
	cfg.Session.FilePath = getEnv("TOKEN_FILE", defaultTokenFile())
	cfg.Session.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Session.RedisDB = getEnvInt("REDIS_DB", 0)
	cfg.Session.RedisPrefix = getEnv("REDIS_PREFIX", "shakplay:")
	cfg.Session.PostgresDSN = os.Getenv("DATABASE_URL")
	cfg.Session.MemoryTTL = getEnv("TOKEN_MEMORY_TTL", "0s")

	cfg.Fixture.DelayScale = getEnvFloat("FIXTURE_DELAY_SCALE", 1)

	cfg.Tracing.Enabled = getEnvBool("TRACING_ENABLED", false)
	cfg.Tracing.Endpoint = getEnv("OTEL_COLLECTOR_ENDPOINT", "localhost:4318")
	cfg.Tracing.SampleRate = getEnvFloat("OTEL_SAMPLE_RATE", 0.1)

	cfg.Profiling.Enabled = getEnvBool("PROFILING_ENABLED", false)
	cfg.Profiling.Endpoint = getEnv("PYROSCOPE_ENDPOINT", "http://localhost:4040")

	cfg.Shutdown.Timeout = getEnv("SHUTDOWN_TIMEOUT", "10s")
	cfg.Shutdown.ReadinessDrainDelay = getEnv("READINESS_DRAIN_DELAY", "0s")

	return cfg
}

// Validate checks the loaded values and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Service.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	} else if _, err := strconv.Atoi(c.Service.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT %q is not a number", c.Service.Port))
	}

	switch c.Session.Store {
	case StoreFile:
		if c.Session.FilePath == "" {
			errs = append(errs, errors.New("TOKEN_FILE is required for the file token store"))
		}
	case StoreMemory:
	case StoreRedis:
		if c.Session.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis token store"))
		}
	case StorePostgres:
		if c.Session.PostgresDSN == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres token store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown TOKEN_STORE %q", c.Session.Store))
	}

	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLE_RATE %v out of range [0,1]", c.Tracing.SampleRate))
	}
	if c.Fixture.DelayScale < 0 {
		errs = append(errs, fmt.Errorf("FIXTURE_DELAY_SCALE %v must not be negative", c.Fixture.DelayScale))
	}

	for name, v := range map[string]string{
		"XANO_TIMEOUT":          c.Xano.Timeout,
		"TOKEN_MEMORY_TTL":      c.Session.MemoryTTL,
		"SHUTDOWN_TIMEOUT":      c.Shutdown.Timeout,
		"READINESS_DRAIN_DELAY": c.Shutdown.ReadinessDrainDelay,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// GetXanoTimeoutDuration returns the transport timeout, zero meaning none.
func (c *Config) GetXanoTimeoutDuration() time.Duration {
	return parseDuration(c.Xano.Timeout, 0)
}

// GetMemoryTTLDuration returns how long the in-memory token store keeps a token.
func (c *Config) GetMemoryTTLDuration() time.Duration {
	return parseDuration(c.Session.MemoryTTL, 0)
}

// GetShutdownTimeoutDuration returns the graceful shutdown budget.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return parseDuration(c.Shutdown.Timeout, 10*time.Second)
}

// GetReadinessDrainDelayDuration returns how long /ready reports shutting_down
// before the HTTP server stops accepting connections.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return parseDuration(c.Shutdown.ReadinessDrainDelay, 0)
}

func parseDuration(v string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".shakplay_token"
	}
	return filepath.Join(dir, "shakplay", "auth_token")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
