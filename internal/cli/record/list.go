package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/cli/handler"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <collection>",
		Short: "Print the records of a collection",
		Long: `Print the records of a collection the way its tab shows them.

Examples:
  # Human-readable summary
  studentsync list announcements

  # Results for one department and semester
  studentsync list results --department CS --semester "Fall 2025"

  # JSON output for agents
  studentsync list timetable --json

  # Quiet mode (one ID per line)
  studentsync list faq --quiet
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runList)),
	}

	cli.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	schema, err := args.Parser.ParseSchema(args.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := args.Parser.ParseFilter(schema)
	if err != nil {
		return nil, err
	}

	svc := c.App.RecordService
	switch {
	case args.Formatter.JSON:
		rows, err := svc.Rows(ctx, schema.Name, filter)
		if err != nil {
			return nil, err
		}
		return map[string]any{"collection": schema.Name, "records": rows}, nil

	case args.Formatter.Quiet:
		rows, err := svc.Rows(ctx, schema.Name, filter)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		for _, r := range rows {
			fmt.Fprintf(&b, "%d\n", r.ID)
		}
		return b.String(), nil
	}

	return svc.Summary(ctx, schema.Name, filter)
}
