package testutils

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// Execute runs the command with the given arguments and returns its output.
func Execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetArgs(args)

	err := c.Execute()
	return buf.String(), err
}
