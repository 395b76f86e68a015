package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"employee-api/internal/employee/upstream"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string
	Upstream  upstream.Config
}

const (
	defaultAddr     = ":8111"
	defaultMockURL  = "http://localhost:8112/api/v1/employee"
	defaultLogLevel = "info"
	defaultLogFmt   = "json"
)

// Load reads a .env file from the working directory when one exists, then
// builds the config. Variables already set in the environment win.
func Load() (Server, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Server{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Server config from getenv so main stays lean and tests can
// pass a map lookup instead of mutating the process environment.
func FromEnv(getenv func(string) string) (Server, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	up := upstream.DefaultConfig(get("MOCK_API_URL", defaultMockURL))
	if up.BaseURL == "" {
		return Server{}, errors.New("MOCK_API_URL must not be empty")
	}

	var errs []error
	if v := getenv("UPSTREAM_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			errs = append(errs, fmt.Errorf("UPSTREAM_MAX_ATTEMPTS: want a positive integer, got %q", v))
		}
		up.MaxAttempts = n
	}
	if v := getenv("UPSTREAM_BACKOFF"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("UPSTREAM_BACKOFF: want a non-negative duration, got %q", v))
		}
		up.InitialBackoff = d
	}
	if v := getenv("UPSTREAM_BACKOFF_MULTIPLIER"); v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 1 {
			errs = append(errs, fmt.Errorf("UPSTREAM_BACKOFF_MULTIPLIER: want a number >= 1, got %q", v))
		}
		up.BackoffMultiplier = f
	}
	if v := getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("UPSTREAM_TIMEOUT: want a positive duration, got %q", v))
		}
		up.Timeout = d
	}
	mode, err := upstream.ParseDeleteMode(getenv("UPSTREAM_DELETE_MODE"))
	if err != nil {
		errs = append(errs, fmt.Errorf("UPSTREAM_DELETE_MODE: %w", err))
	}
	up.DeleteMode = mode

	cfg := Server{
		Addr:      get("EMPLOYEE_API_ADDR", defaultAddr),
		LogLevel:  strings.ToLower(get("LOG_LEVEL", defaultLogLevel)),
		LogFormat: strings.ToLower(get("LOG_FORMAT", defaultLogFmt)),
		Upstream:  up,
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL: unknown level %q", cfg.LogLevel))
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT: want json or text, got %q", cfg.LogFormat))
	}

	if err := errors.Join(errs...); err != nil {
		return Server{}, err
	}
	return cfg, nil
}
