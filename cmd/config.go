package cmd

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/tradebot/topstepx-token/internal/config"
	"github.com/tradebot/topstepx-token/internal/envfile"
)

// LoadConfigFromCLI loads the Config from the CLI flags
func LoadConfigFromCLI() config.Config {
	return config.Config{
		Url:      viper.GetString("url"),
		EnvFile:  viper.GetString("env-file"),
		TokenKey: viper.GetString("token-key"),
	}
}

// LoadAuthConfigFromCLI loads the AuthConfig from the CLI flags
func LoadAuthConfigFromCLI() config.AuthConfig {
	return config.AuthConfig{
		Username: viper.GetString("username"),
		APIKey:   viper.GetString("api-key"),
	}
}

// resolveAuthConfig fills the credentials missing from the CLI with the values
// found in the environment file. An unparseable file only skips this step.
func resolveAuthConfig(c config.AuthConfig, envPath string) (config.AuthConfig, error) {
	if c.Username != "" && c.APIKey != "" {
		return c, nil
	}

	values, err := envfile.Read(envPath)
	if err != nil {
		slog.Warn("unable to read credentials from environment file", "path", envPath, "error", err)
		return c, nil
	}

	if c.Username == "" {
		if v := values[UsernameEnv]; v != "" {
			slog.Debug("using username from environment file", "path", envPath)
			c.Username = v
		}
	}

	if c.APIKey == "" {
		if v := values[APIKeyEnv]; v != "" {
			slog.Debug("using api key from environment file", "path", envPath)
			c.APIKey = v
		}
	}

	return c, nil
}
