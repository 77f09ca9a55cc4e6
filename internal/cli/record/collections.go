package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/cli/handler"
)

// CollectionsCmd returns the collections command
func CollectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List collections and their fields",
		Long: `List every collection with its fields.

Examples:
  studentsync collections
  studentsync collections --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runCollections)),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

type collectionOutput struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Fields       []string `json:"fields"`
	FilterFields []string `json:"filter_fields,omitempty"`
	Selectable   bool     `json:"selectable"`
}

func runCollections(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	schemas := c.App.RecordService.Schemas()

	if args.Formatter.JSON {
		out := make([]collectionOutput, len(schemas))
		for i, s := range schemas {
			out[i] = collectionOutput{
				Name:         s.Name,
				Title:        s.Title,
				Fields:       s.FieldNames(),
				FilterFields: s.FilterFields,
				Selectable:   s.Selectable,
			}
		}
		return out, nil
	}

	var b strings.Builder
	for _, s := range schemas {
		if args.Formatter.Quiet {
			b.WriteString(s.Name + "\n")
			continue
		}
		fmt.Fprintf(&b, "%s (%s): %s", s.Name, s.Title, strings.Join(s.FieldNames(), ", "))
		if len(s.FilterFields) > 0 {
			fmt.Fprintf(&b, " [filter: %s]", strings.Join(s.FilterFields, ", "))
		}
		if s.Selectable {
			b.WriteString(" [selectable]")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
