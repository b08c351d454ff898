package cmd

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tradebot/topstepx-token/internal/envfile"
	"github.com/tradebot/topstepx-token/internal/store"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with an API key and store the session token.",
	Long: `The login command exchanges the TopstepX username and API key for a session token
and writes it to the environment file as TOPSTEPX_SESSION_TOKEN="<token>".

An existing token line is replaced, otherwise a new line is appended. Nothing else
in the file changes. The environment file must already exist.

Credentials are read from the flags, then from the TOPSTEPX_USERNAME and
TOPSTEPX_API_KEY environment variables, then from the environment file itself.`,
	RunE: LoginCmdRunE,
}

func LoginCmdRunE(cmd *cobra.Command, args []string) error {
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

	authConfig, err := resolveAuthConfig(LoadAuthConfigFromCLI(), envPath)
	if err != nil {
		return err
	}
	slog.Debug("args", "auth-config", authConfig)
	if err := authConfig.Validate(); err != nil {
		return err
	}

	r := CreateRestClient(cmd.Context(), config.Url)
	token, err := store.Login(r, store.Credentials{UserName: authConfig.Username, APIKey: authConfig.APIKey})
	if err != nil {
		return errors.WithMessage(err, "could not retrieve session token")
	}

	if err := envfile.SetValue(envPath, config.TokenKey, token); err != nil {
		return errors.WithMessage(err, "could not update environment file")
	}

	slog.Info("Session token updated", "path", envPath, "key", config.TokenKey)

	return nil
}

func init() {
	SetupLoginCmdFlags(loginCmd)
	rootCmd.AddCommand(loginCmd)
}

func SetupLoginCmdFlags(command *cobra.Command) {
	command.Flags().String("username", "", "TopstepX username")
	if err := viper.BindPFlag("username", command.Flags().Lookup("username")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
	if err := viper.BindEnv("username", UsernameEnv); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("api-key", "", "TopstepX API key")
	if err := viper.BindPFlag("api-key", command.Flags().Lookup("api-key")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
	if err := viper.BindEnv("api-key", APIKeyEnv); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
