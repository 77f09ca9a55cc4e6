package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/cli/handler"
	"github.com/thenoetrevino/studentsync/internal/cli/styles"
	recordservice "github.com/thenoetrevino/studentsync/internal/services/record"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <collection> <position>",
		Short: "Show the record at a position",
		Long: `Resolve a display position and show the record it selects.

Examples:
  studentsync show timetable 0
  studentsync show results 0 --department CS --semester "Fall 2025" --json
`,
		Args: cli.ExactArgs(2),
		RunE: handler.Command(handler.HandlerFunc(runShow)),
	}

	cli.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	schema, err := args.Parser.ParseSchema(args.Args[0])
	if err != nil {
		return nil, err
	}
	position, err := args.Parser.ParsePosition(args.Args[1])
	if err != nil {
		return nil, err
	}
	filter, err := args.Parser.ParseFilter(schema)
	if err != nil {
		return nil, err
	}

	record, err := c.App.RecordService.Select(ctx, recordservice.SelectRequest{
		Collection: schema.Name,
		Filter:     filter,
		Position:   position,
	})
	if err != nil {
		return nil, err
	}

	out := newRecordOutput(record)
	out.Position = &position
	if args.Formatter.JSON || args.Formatter.Quiet {
		return out, nil
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s [%d]", schema.Title, position)))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("id %d", record.ID)))
	b.WriteString("\n\n")
	for _, f := range schema.Fields {
		b.WriteString(styles.RenderField(f.Label, record.Get(f.Name)))
		b.WriteString("\n")
	}
	return styles.RenderCard(strings.TrimRight(b.String(), "\n")) + "\n", nil
}
