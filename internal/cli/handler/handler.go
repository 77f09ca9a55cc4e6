package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/studentsync/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with an opened CLI and parsed arguments.
	// The result is written by the OutputFormatter.
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Args      []string
	Parser    *FlagParser
	Formatter *cli.OutputFormatter
	cmd       *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(h Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		parser := NewFlagParser(cmd)
		formatter, err := parser.Formatter()
		if err != nil {
			return err
		}

		cliInstance, err := cli.GetCLIFromContext(cmd)
		if err != nil {
			reportError(formatter, err)
			return cli.Reported(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		slog.Debug("running command", "command", cmd.CommandPath(), "args", args, "flags", changedFlags(cmd))

		result, err := h.Execute(ctx, cliInstance, &Arguments{
			Args:      args,
			Parser:    parser,
			Formatter: formatter,
			cmd:       cmd,
		})
		if err != nil {
			reportError(formatter, err)
			return cli.Reported(err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

func reportError(formatter *cli.OutputFormatter, err error) {
	if fmtErr := formatter.Error(cli.ErrorCode(err), err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
}

// changedFlags returns the explicitly set flags as strings, for logging
func changedFlags(cmd *cobra.Command) map[string]string {
	flags := make(map[string]string)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			flags[f.Name] = strings.Join(sv.GetSlice(), ",")
			return
		}
		flags[f.Name] = f.Value.String()
	})
	return flags
}
