package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tradebot/topstepx-token/internal/envfile"
	"github.com/tradebot/topstepx-token/internal/store"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the stored session token and store the renewed one.",
	Long: `The validate command sends the session token found in the environment file to the
validation endpoint. The API answers with a renewed token which replaces the stored one.

An expired or rejected token is an error; run 'login' to get a new one.`,
	RunE: ValidateCmdRunE,
}

func ValidateCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	envPath, err := envfile.Find(config.EnvFile)
	if err != nil {
		slog.Error("environment file not found", "path", config.EnvFile)
		return err
	}

	token, ok, err := envfile.Lookup(envPath, config.TokenKey)
	if err != nil {
		return err
	}
	if !ok || token == "" {
		return fmt.Errorf("no %s found in %s", config.TokenKey, envPath)
	}

	r := CreateRestClient(cmd.Context(), config.Url)
	newToken, err := store.Validate(r, token)
	if err != nil {
		return errors.WithMessage(err, "could not validate session token")
	}

	if err := envfile.SetValue(envPath, config.TokenKey, newToken); err != nil {
		return errors.WithMessage(err, "could not update environment file")
	}

	slog.Info("Session token renewed", "path", envPath, "key", config.TokenKey)

	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
