package record

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/cli/handler"
	"github.com/thenoetrevino/studentsync/internal/cli/styles"
	recordservice "github.com/thenoetrevino/studentsync/internal/services/record"
)

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <collection> <position>",
		Short: "Overwrite fields of the record at a position",
		Long: `Resolve a display position and overwrite the given fields of its record.
Fields not given with --set keep their value.

Examples:
  studentsync edit timetable 0 --set day=Tuesday
  studentsync edit results 0 --department CS --semester "Fall 2025" --set grade=A+ --json
`,
		Args: cli.ExactArgs(2),
		RunE: handler.Command(handler.HandlerFunc(runEdit)),
	}

	cmd.Flags().StringArray("set", nil, "Field value as field=value (repeatable)")
	cli.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	schema, err := args.Parser.ParseSchema(args.Args[0])
	if err != nil {
		return nil, err
	}
	position, err := args.Parser.ParsePosition(args.Args[1])
	if err != nil {
		return nil, err
	}
	values, err := args.Parser.ParseSetValues("set")
	if err != nil {
		return nil, err
	}
	filter, err := args.Parser.ParseFilter(schema)
	if err != nil {
		return nil, err
	}

	outcome, err := c.App.RecordService.Edit(ctx, recordservice.EditRequest{
		Collection: schema.Name,
		Filter:     filter,
		Position:   position,
		Values:     values,
	})
	if err != nil {
		return nil, err
	}

	out := newOutcomeOutput(outcome)
	out.Record.Position = &position
	if args.Formatter.JSON || args.Formatter.Quiet {
		return out, nil
	}
	return fmt.Sprintf("%s (ID: %d)\n", styles.SuccessStyle.Render(out.Message), out.Record.ID), nil
}
