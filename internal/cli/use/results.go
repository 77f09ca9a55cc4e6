package use

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
)

// ResultsCmd returns the use results subcommand
func ResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Set the Results filter for the current shell session",
		Long: `Set the department and semester that Results commands use when
--department and --semester are not given. This command outputs shell
commands that should be evaluated:

  eval $(studentsync use results --department CS --semester "Fall 2025")
  eval $(studentsync use results --clear)
  studentsync use results --show

The flags on other commands take precedence over these environment variables.`,
		Args: cobra.NoArgs,
		RunE: runUseResults,
	}

	cmd.Flags().String("department", "", "Department to use")
	cmd.Flags().String("semester", "", "Semester to use")
	cmd.Flags().Bool("clear", false, "Clear the current Results context")
	cmd.Flags().Bool("show", false, "Show the current Results context")

	return cmd
}

func runUseResults(cmd *cobra.Command, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if show, _ := cmd.Flags().GetBool("show"); show {
		department, semester := os.Getenv(cli.EnvDepartment), os.Getenv(cli.EnvSemester)
		if department == "" && semester == "" {
			fmt.Fprintln(out, "No Results context set")
			return nil
		}
		fmt.Fprintf(out, "Department: %s\nSemester: %s\n", department, semester)
		return nil
	}

	if clearFlag, _ := cmd.Flags().GetBool("clear"); clearFlag {
		fmt.Fprintf(out, "unset %s %s\n", cli.EnvDepartment, cli.EnvSemester)
		fmt.Fprintln(errOut, "Cleared Results context")
		return nil
	}

	department, _ := cmd.Flags().GetString("department")
	semester, _ := cmd.Flags().GetString("semester")
	if department == "" && semester == "" {
		return cli.UsageError("--department or --semester required\nUsage: eval $(studentsync use results --department <d> --semester <s>)")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if department != "" {
		if !slices.Contains(cliInstance.App.Departments, department) {
			return &cli.ExitCodeError{Code: cli.ExitValidation, Err: fmt.Errorf("unknown department %q (choices: %s)",
				department, strings.Join(cliInstance.App.Departments, ", "))}
		}
		fmt.Fprintf(out, "export %s=%s\n", cli.EnvDepartment, shellQuote(department))
	}
	if semester != "" {
		if !slices.Contains(cliInstance.App.Semesters, semester) {
			return &cli.ExitCodeError{Code: cli.ExitValidation, Err: fmt.Errorf("unknown semester %q (choices: %s)",
				semester, strings.Join(cliInstance.App.Semesters, ", "))}
		}
		fmt.Fprintf(out, "export %s=%s\n", cli.EnvSemester, shellQuote(semester))
	}

	fmt.Fprintln(errOut, "Now using Results filter")
	return nil
}

// shellQuote wraps s in single quotes for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
