package record

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/cli/handler"
)

// PositionsCmd returns the positions command
func PositionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions <collection>",
		Short: "Print the position choice list of a collection",
		Long: `Print the positions a user can pick from for a collection with a selector.

Examples:
  studentsync positions announcements
  studentsync positions results --department CS --semester "Fall 2025" --json
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runPositions)),
	}

	cli.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runPositions(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	schema, err := args.Parser.ParseSchema(args.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := args.Parser.ParseFilter(schema)
	if err != nil {
		return nil, err
	}

	listing, err := c.App.RecordService.Positions(ctx, schema.Name, filter)
	if err != nil {
		return nil, err
	}
	positions := slices.Collect(listing.Positions())

	if args.Formatter.JSON {
		if positions == nil {
			positions = []int{}
		}
		return map[string]any{
			"collection": schema.Name,
			"mode":       c.App.RecordService.SelectorMode(),
			"positions":  positions,
		}, nil
	}

	var b strings.Builder
	for _, p := range positions {
		fmt.Fprintf(&b, "%d\n", p)
	}
	return b.String(), nil
}
