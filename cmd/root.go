package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tradebot/topstepx-token/internal/utils"
)

// Flow:
// 1. Locate the environment file. Exit if it does not exist
// 2. Resolve the credentials (flags, environment, config file, environment file)
// 3. POST the API key to `/api/Auth/loginKey` and extract the `token` field
//   3.1. An empty response or a missing/null token is an error
// 4. Rewrite the `TOPSTEPX_SESSION_TOKEN` line of the environment file, or append it
//
// Every error exits with status 1 and leaves the environment file untouched.

const (
	DefaultUrl      = "https://api.topstepx.com"
	DefaultEnvFile  = ".env"
	DefaultTokenKey = "TOPSTEPX_SESSION_TOKEN"

	UsernameEnv = "TOPSTEPX_USERNAME"
	APIKeyEnv   = "TOPSTEPX_API_KEY"
	BaseUrlEnv  = "TOPSTEP_BASE_URL"
)

const ErrorBindingFlag = "unable to bind flag"

var rootCmd = &cobra.Command{
	Use:               "topstepx-token",
	Short:             "Refresh the TopstepX session token stored in an environment file",
	PersistentPreRunE: RootCmdPersistentPreRunE,
	SilenceUsage:      true,
}

func RootCmdPersistentPreRunE(cmd *cobra.Command, args []string) error {
	logLevelArg := viper.GetString("logLevel")
	urlString := viper.GetString("url")
	if err := setLogLevel(logLevelArg); err != nil {
		return err
	}
	if err := validateURL(urlString); err != nil {
		return err
	}

	slog.Debug("Application initialized", "logLevel", logLevelArg, "url", urlString)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Unable to read config file:", err)
			os.Exit(1)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = strings.Join(utils.SortedKeys(validLogLevels), "|")
)

func init() {
	SetupRootCmdFlags(rootCmd)

	viper.AddConfigPath("./")
	viper.SetConfigName("config")

	viper.AutomaticEnv()
}

func SetupRootCmdFlags(command *cobra.Command) {
	command.PersistentFlags().StringP("logLevel", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	if err := viper.BindPFlag("logLevel", command.PersistentFlags().Lookup("logLevel")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().StringP("url", "u", DefaultUrl, "Root URL of the API server")
	if err := viper.BindPFlag("url", command.PersistentFlags().Lookup("url")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
	if err := viper.BindEnv("url", BaseUrlEnv); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().StringP("env-file", "e", DefaultEnvFile, "Environment file holding the session token. A bare file name is searched in the parent directories")
	if err := viper.BindPFlag("env-file", command.PersistentFlags().Lookup("env-file")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.PersistentFlags().String("token-key", DefaultTokenKey, "Name of the session token variable")
	if err := viper.BindPFlag("token-key", command.PersistentFlags().Lookup("token-key")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}

// setLogLevel sets the log level. Logs go to stderr.
func setLogLevel(logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf("invalid log level: %s. Valid log levels are: %s", logLevel, validLogLevelsStr)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// validateURL validates a URL is not empty and is a valid URL
func validateURL(urlStr string) error {
	if urlStr == "" {
		return errors.New("URL cannot be empty")
	}

	_, err := url.ParseRequestURI(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	return nil
}
