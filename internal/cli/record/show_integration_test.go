package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/studentsync/internal/app"
	"github.com/thenoetrevino/studentsync/internal/cli"
	"github.com/thenoetrevino/studentsync/internal/models"
	"github.com/thenoetrevino/studentsync/internal/selector"
	testcli "github.com/thenoetrevino/studentsync/internal/testutil/cli"
)

func TestShowCommand_Integration(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, err := testcli.ExecuteCLICommand(t, a, ShowCmd(), []string{"timetable", "0"})
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "Timetable [0]")
	assert.Contains(t, out.Stdout, "OOP")
	assert.Contains(t, out.Stdout, "Monday")

	out, err = testcli.ExecuteCLICommand(t, a, ShowCmd(), []string{"timetable", "0", "--json"})
	require.NoError(t, err)
	data := testcli.ParseJSON(t, out.Stdout)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, float64(0), data["position"])
	assert.Equal(t, "10 AM", data["fields"].(map[string]any)["time"])

	out, err = testcli.ExecuteCLICommand(t, a, ShowCmd(), []string{"timetable", "0", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1\n", out.Stdout)
}

func TestShowCommand_Errors(t *testing.T) {
	_, materialized := testcli.SetupCLITest(t)
	_, arithmetic := testcli.SetupCLITest(t, app.WithSelectorMode(selector.ModeArithmetic))

	tests := []struct {
		name     string
		app      *app.App
		args     []string
		exitCode int
	}{
		{"position past the listing", materialized, []string{"announcements", "5"}, cli.ExitNotFound},
		{"arithmetic position without a record", arithmetic, []string{"announcements", "5"}, cli.ExitNotFound},
		{"collection without selector", materialized, []string{"faq", "0"}, cli.ExitValidation},
		{"position is not a number", materialized, []string{"announcements", "first"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := testcli.ExecuteCLICommand(t, tt.app, ShowCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, cli.ExitCodeFor(err))
			assert.Contains(t, out.Stderr, "Error: ")
		})
	}
}

func TestShowCommand_JSONError(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, err := testcli.ExecuteCLICommand(t, a, ShowCmd(), []string{"announcements", "3", "--json"})
	require.ErrorIs(t, err, models.ErrPositionOutOfRange)

	result := testcli.ParseJSON(t, out.Stdout)
	assert.False(t, result["success"].(bool))
	assert.Equal(t, "NOT_FOUND", result["error"].(map[string]any)["code"])
}

func TestPositionsCommand(t *testing.T) {
	db, a := testcli.SetupCLITest(t)
	testcli.CreateTestRecord(t, db, models.CollectionAnnouncements, map[string]string{"title": "Holiday"})
	testcli.CreateTestRecord(t, db, models.CollectionAnnouncements, map[string]string{"title": "Fees"})

	out, err := testcli.ExecuteCLICommand(t, a, PositionsCmd(), []string{"announcements"})
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out.Stdout)

	out, err = testcli.ExecuteCLICommand(t, a, PositionsCmd(),
		[]string{"results", "--department", "ME", "--semester", "Fall 2025", "--json"})
	require.NoError(t, err)
	data := testcli.ParseJSON(t, out.Stdout)["data"].(map[string]any)
	assert.Equal(t, "materialized", data["mode"])
	assert.Equal(t, []any{}, data["positions"])

	_, err = testcli.ExecuteCLICommand(t, a, PositionsCmd(), []string{"campus_map"})
	require.ErrorIs(t, err, models.ErrNotSelectable)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}
