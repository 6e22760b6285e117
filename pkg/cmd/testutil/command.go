package testutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command the way the root application would, feeding
// stdin to the command and returning what it wrote to stdout.
func RunCommand(t *testing.T, command *cli.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	return RunCommandWithContext(t.Context(), t, command, stdin, args...)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(
	ctx context.Context,
	t *testing.T,
	command *cli.Command,
	stdin string,
	args ...string,
) (string, error) {
	t.Helper()

	var out bytes.Buffer

	// Create a test CLI app
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: strings.NewReader(stdin),
		Writer: &out,
	}

	err := app.Run(ctx, append([]string{"test"}, args...))
	return out.String(), err
}
