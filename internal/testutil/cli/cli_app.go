package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/app"
	appcli "github.com/thenoetrevino/studentsync/internal/cli"
)

// Output holds what a command wrote
type Output struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand executes a CLI command with a test app instance
// This properly injects the app context so commands can access the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (Output, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (Output, error) {
	t.Helper()

	SetupCobraCommand(cmd, args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(appcli.WithApp(ctx, testApp))
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
