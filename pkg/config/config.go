// Package config resolves client configuration from the process environment
// and optional .env files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/trilium-community/trilium.go/pkg/constants"
)

// Config holds everything needed to talk to a Trilium server.
type Config struct {
	// URL is the server base URL, without a trailing slash and without
	// the /etapi prefix.
	URL string
	// Token is the ETAPI bearer token. May be empty here; the client
	// rejects an empty token at construction time so a partially
	// configured Config can still be inspected.
	Token string
	// LogLevel follows the LOG_LEVEL convention (DEBUG, INFO, WARNING, ERROR).
	LogLevel string
}

// Error signals invalid or missing configuration, detected before any
// network call is made.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Reason, e.Err)
	}
	return "config: " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// Load resolves configuration from the environment. A .env file in the
// working directory is merged in when present; real environment variables
// take precedence over file values.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		// Ignore parse failures of an implicit .env; explicit files go
		// through LoadFile which reports them.
		_ = godotenv.Load()
	}

	return fromEnv(), nil
}

// LoadFile is like Load but reads the named env file instead of ./.env.
// The file must exist and parse.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, &Error{Reason: fmt.Sprintf("cannot read env file %q", path), Err: err}
	}

	return fromEnv(), nil
}

func fromEnv() *Config {
	return &Config{
		URL:      normalizeURL(getEnvOrDefault(constants.EnvServerURL, constants.DefaultServerURL)),
		Token:    strings.TrimSpace(os.Getenv(constants.EnvToken)),
		LogLevel: getEnvOrDefault(constants.EnvLogLevel, constants.DefaultLogLevel),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

func normalizeURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// HasToken reports whether a usable token is present.
func (c *Config) HasToken() bool {
	return strings.TrimSpace(c.Token) != ""
}

// MaskedToken returns a short preview of the token safe for logs and
// connection diagnostics.
func (c *Config) MaskedToken() string {
	t := strings.TrimSpace(c.Token)
	if t == "" {
		return "(unset)"
	}
	if len(t) <= 4 {
		return "****"
	}
	return t[:4] + "****"
}
