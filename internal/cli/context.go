package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/app"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// AppKey carries a ready App through a command context, used by tests
const AppKey ContextKey = "studentsyncApp"

// WithApp returns a context that makes GetCLIFromContext reuse a instead of
// opening the database
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// GetCLIFromContext returns the CLI for a command.
// An App placed in the context by WithApp is reused; otherwise the database is
// opened using the --db and --selector-mode flags.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	mode, _ := cmd.Flags().GetString("selector-mode")
	return NewCLI(ctx, Options{DBPath: dbPath, SelectorMode: mode})
}
