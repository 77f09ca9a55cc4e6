package record

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/cli/handler"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the latest announcement and transport update",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runDashboard)),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDashboard(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	snapshot, err := c.App.DashboardService.Latest(ctx)
	if err != nil {
		return nil, err
	}

	if args.Formatter.JSON {
		out := map[string]any{}
		if snapshot.Announcement != nil {
			out["announcement"] = newRecordOutput(snapshot.Announcement)
		}
		if snapshot.Transport != nil {
			out["transport"] = newRecordOutput(snapshot.Transport)
		}
		return out, nil
	}

	if text := snapshot.String(); text != "" {
		return text + "\n", nil
	}
	return "Nothing to show yet\n", nil
}
