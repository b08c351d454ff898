package cmd_test

import (
	"context"
	"embed"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/tradebot/topstepx-token/cmd"
)

//go:embed testdata/*.json
var mockData embed.FS

const (
	loginSuccessPath    = "testdata/login-success.json"
	loginRejectedPath   = "testdata/login-rejected.json"
	validateSuccessPath = "testdata/validate-success.json"
)

func readMockData(t *testing.T, path string) string {
	data, err := mockData.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// newCommand builds a fresh command with its own flags and an injected,
// mocked resty client.
func newCommand(t *testing.T, use string, runE func(*cobra.Command, []string) error, setup ...func(*cobra.Command)) *cobra.Command {
	viper.Reset()
	t.Setenv(cmd.UsernameEnv, "")
	t.Setenv(cmd.APIKeyEnv, "")
	t.Setenv(cmd.BaseUrlEnv, "")

	command := &cobra.Command{Use: use, PersistentPreRunE: cmd.RootCmdPersistentPreRunE, RunE: runE, SilenceUsage: true}

	// Create a new resty client and inject it into the command context
	client := resty.New()
	command.SetContext(context.WithValue(context.Background(), cmd.RestyClientKey, client))

	// Enable http mocking on the resty client
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	cmd.SetupRootCmdFlags(command)
	for _, s := range setup {
		s(command)
	}

	return command
}
