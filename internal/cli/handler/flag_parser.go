// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseSchema looks up the collection named by a positional argument
func (p *FlagParser) ParseSchema(arg string) (*models.Schema, error) {
	return models.LookupSchema(strings.TrimSpace(arg))
}

// ParsePosition parses a display position argument
func (p *FlagParser) ParsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, cli.UsageError("invalid position %q", arg)
	}
	if position < 0 {
		return 0, cli.UsageError("position must not be negative, got %d", position)
	}
	return position, nil
}

// ParseSetValues collects repeated --set field=value flags.
// The value may contain '=' and may be empty.
func (p *FlagParser) ParseSetValues(flagName string) (map[string]string, error) {
	pairs, err := p.cmd.Flags().GetStringArray(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}

	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, cli.UsageError("--%s expects field=value, got %q", flagName, pair)
		}
		values[field] = value
	}
	return values, nil
}

// ParseFilter builds the listing filter for schema
func (p *FlagParser) ParseFilter(schema *models.Schema) (models.Filter, error) {
	return cli.GetFilter(p.cmd, schema)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}

// Formatter returns an OutputFormatter writing to the command's streams
func (p *FlagParser) Formatter() (*cli.OutputFormatter, error) {
	jsonOutput, quietMode, err := p.OutputFormats()
	if err != nil {
		return nil, err
	}
	return &cli.OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    p.cmd.OutOrStdout(),
		ErrOut: p.cmd.ErrOrStderr(),
	}, nil
}
