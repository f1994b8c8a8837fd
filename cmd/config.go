package cmd

import (
	"strconv"
	"time"

	"storefront/internal/pkg/errs"
)

// Default values for optional settings.
const (
	DefaultAPITimeout = 30 * time.Second
	DefaultSessionTTL = 30 * time.Minute
)

// Config holds the application settings loaded from the environment.
type Config struct {
	HTTPPort   string
	APIBaseURL string

	// APITimeout bounds every outbound call to the remote API.
	APITimeout time.Duration

	// SessionTTL is the session lifetime used when the auth token carries
	// no expiry of its own.
	SessionTTL time.Duration
}

// Validate checks the required settings.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return errs.NewValueIsRequiredError("HTTP_PORT")
	}
	if c.APIBaseURL == "" {
		return errs.NewValueIsRequiredError("API_BASE_URL")
	}
	return nil
}

// ParseDuration reads a positive integer from the environment value and
// scales it by the unit, falling back when the value is absent.
func ParseDuration(raw string, unit, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(raw, err)
	}
	return time.Duration(n) * unit, nil
}
