package config

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/tradebot/topstepx-token/internal/envfile"
)

// Config represents the configuration shared by all commands
type Config struct {
	Url      string // Base URL of the API
	EnvFile  string // Environment file holding the session token
	TokenKey string // Name of the session token variable
}

// Validate the Config making sure all required fields are present and valid
func (c Config) Validate() error {
	if c.Url == "" {
		return fmt.Errorf("url is required")
	}

	if _, err := url.ParseRequestURI(c.Url); err != nil {
		return fmt.Errorf("could not parse URL: %w", err)
	}

	if c.EnvFile == "" {
		return fmt.Errorf("env file is required")
	}

	if !envfile.ValidKey(c.TokenKey) {
		return fmt.Errorf("invalid token key: %q", c.TokenKey)
	}

	return nil
}

type AuthConfig struct {
	Username string // The username to authenticate with
	APIKey   string // The API key to authenticate with
}

// LogValue keeps the API key out of the logs.
func (c AuthConfig) LogValue() slog.Value {
	return slog.GroupValue(slog.String("username", c.Username), slog.String("apiKey", "[REDACTED]"))
}

func (c AuthConfig) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}

	if c.APIKey == "" {
		return fmt.Errorf("api key is required")
	}

	return nil
}
