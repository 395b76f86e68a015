package upstream

import (
	"fmt"
	"strings"
	"time"
)

// DeleteMode selects which upstream DELETE contract the client speaks.
type DeleteMode string

const (
	// DeleteByID issues DELETE {base}/{id}; the envelope data is the deleted name.
	DeleteByID DeleteMode = "by-id"
	// DeleteByName resolves the name with a GET, then issues DELETE {base}
	// with {"name": ...}; the envelope data is a boolean.
	DeleteByName DeleteMode = "by-name"
)

// ParseDeleteMode validates a configured delete mode.
func ParseDeleteMode(s string) (DeleteMode, error) {
	switch DeleteMode(strings.TrimSpace(strings.ToLower(s))) {
	case "", DeleteByID:
		return DeleteByID, nil
	case DeleteByName:
		return DeleteByName, nil
	default:
		return "", fmt.Errorf("unknown delete mode %q (want %q or %q)", s, DeleteByID, DeleteByName)
	}
}

// Config holds upstream connection and retry settings.
type Config struct {
	// BaseURL is the absolute URL of the employee collection, without a trailing slash.
	BaseURL string
	// MaxAttempts bounds the total attempts for GET operations.
	MaxAttempts int
	// InitialBackoff is the sleep between the first and second attempt. Zero
	// retries immediately.
	InitialBackoff time.Duration
	// BackoffMultiplier grows the backoff after each retry; 1 keeps it fixed.
	BackoffMultiplier float64
	// Timeout bounds each single attempt.
	Timeout    time.Duration
	DeleteMode DeleteMode
}

// DefaultConfig returns the standard retry settings for baseURL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:           strings.TrimRight(baseURL, "/"),
		MaxAttempts:       3,
		InitialBackoff:    time.Second,
		BackoffMultiplier: 1,
		Timeout:           10 * time.Second,
		DeleteMode:        DeleteByID,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig(c.BaseURL)
	if c.MaxAttempts > 0 {
		d.MaxAttempts = c.MaxAttempts
	}
	d.InitialBackoff = max(c.InitialBackoff, 0)
	if c.BackoffMultiplier > 0 {
		d.BackoffMultiplier = c.BackoffMultiplier
	}
	if c.Timeout > 0 {
		d.Timeout = c.Timeout
	}
	if c.DeleteMode != "" {
		d.DeleteMode = c.DeleteMode
	}
	return d
}
