package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/cli/guide"
	"github.com/thenoetrevino/studentsync/internal/cli/record"
	"github.com/thenoetrevino/studentsync/internal/cli/use"
	"github.com/thenoetrevino/studentsync/internal/launcher"
)

// NewRootCmd builds the studentsync command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "studentsync",
		Short: "Student Sync - university data in the terminal",
		Long: `Student Sync keeps announcements, lost and found items, results, the
timetable, the campus map, FAQs and transport updates in a local database.

Run without a command to open the terminal UI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			mode, _ := cmd.Flags().GetString("selector-mode")
			return launcher.Launch(launcher.Options{DBPath: dbPath, SelectorMode: mode})
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	})

	rootCmd.PersistentFlags().String("db", "", "Database file (default ~/.studentsync/studentsync.db)")
	rootCmd.PersistentFlags().String("selector-mode", "", "Position selector: materialized or arithmetic")

	rootCmd.AddCommand(record.Commands()...)
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(guide.GuideCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCodeFor(err)
}
