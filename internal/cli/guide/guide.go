// Package guide prints the command-line usage guide
package guide

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print the command-line usage guide",
		Long: `Print a markdown guide to the studentsync commands, selector modes
and exit codes. Use --render for terminal-styled output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, _ := cmd.Flags().GetBool("render")
			if !render {
				_, err := fmt.Fprint(cmd.OutOrStdout(), guideContent)
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return err
			}
			out, err := renderer.Render(guideContent)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(out))
			return err
		},
	}

	cmd.Flags().Bool("render", false, "Render markdown for the terminal")
	return cmd
}
