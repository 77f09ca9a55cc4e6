package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/models"
)

// Environment variables holding the Results filter for the current shell,
// set by `studentsync use results`
const (
	EnvDepartment = "STUDENTSYNC_DEPARTMENT"
	EnvSemester   = "STUDENTSYNC_SEMESTER"
)

// GetFilter builds the listing filter for a collection from the --department and
// --semester flags, falling back to the environment. Flags win over the environment.
// Collections without filter fields reject explicit filter flags.
func GetFilter(cmd *cobra.Command, schema *models.Schema) (models.Filter, error) {
	department := flagOrEnv(cmd, "department", EnvDepartment)
	semester := flagOrEnv(cmd, "semester", EnvSemester)

	if len(schema.FilterFields) == 0 {
		if cmd.Flags().Changed("department") || cmd.Flags().Changed("semester") {
			return nil, UsageError("%s takes no --department or --semester filter", schema.Name)
		}
		return nil, nil
	}

	var filter models.Filter
	if department != "" {
		filter = append(filter, models.Field{Name: "department", Value: department})
	}
	if semester != "" {
		filter = append(filter, models.Field{Name: "semester", Value: semester})
	}
	return filter, nil
}

func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, err := cmd.Flags().GetString(flag); err == nil && strings.TrimSpace(v) != "" {
		return v
	}
	return os.Getenv(env)
}

// AddFilterFlags registers --department and --semester on cmd
func AddFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("department", "", "Results department (uses "+EnvDepartment+" if not specified)")
	cmd.Flags().String("semester", "", "Results semester (uses "+EnvSemester+" if not specified)")
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// ExactArgs is cobra.ExactArgs with a usage exit code
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &ExitCodeError{Code: ExitUsage, Err: err}
		}
		return nil
	}
}
