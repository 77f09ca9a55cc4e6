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

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <collection>",
		Short: "Append a record to a collection",
		Long: `Append a record. Fields not given with --set are stored empty, except
fields with a default (lost_and_found status) and Results filter fields,
which come from --department and --semester.

Examples:
  studentsync add announcements --set title="Holiday" --set content="Closed Friday"

  # Quiet mode for bash capture
  ID=$(studentsync add faq --set question="Parking?" --set answer="Lot B" --quiet)

  studentsync add results --department CS --semester "Fall 2025" \
    --set student_id=S002 --set course=OOP --set grade=B --json
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runAdd)),
	}

	cmd.Flags().StringArray("set", nil, "Field value as field=value (repeatable)")
	cli.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	schema, err := args.Parser.ParseSchema(args.Args[0])
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

	outcome, err := c.App.RecordService.Add(ctx, recordservice.AddRequest{
		Collection: schema.Name,
		Filter:     filter,
		Values:     values,
	})
	if err != nil {
		return nil, err
	}

	out := newOutcomeOutput(outcome)
	if args.Formatter.JSON || args.Formatter.Quiet {
		return out, nil
	}
	return fmt.Sprintf("%s (ID: %d)\n", styles.SuccessStyle.Render(out.Message), out.Record.ID), nil
}
