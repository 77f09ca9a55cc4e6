package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/models"
)

func filterCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddFilterFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return cmd
}

func mustSchema(t *testing.T, name string) *models.Schema {
	t.Helper()
	s, err := models.LookupSchema(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestGetFilter_FlagsWinOverEnvironment(t *testing.T) {
	t.Setenv(EnvDepartment, "EE")
	t.Setenv(EnvSemester, "Spring 2026")

	filter, err := GetFilter(filterCmd(t, "--department", "CS"), mustSchema(t, models.CollectionResults))
	if err != nil {
		t.Fatal(err)
	}
	if got := filter.String(); got != "department=CS, semester=Spring 2026" {
		t.Errorf("Expected flag department with env semester, got %q", got)
	}
}

func TestGetFilter_PartialAndEmpty(t *testing.T) {
	t.Setenv(EnvDepartment, "")
	t.Setenv(EnvSemester, "")
	results := mustSchema(t, models.CollectionResults)

	filter, err := GetFilter(filterCmd(t), results)
	if err != nil {
		t.Fatal(err)
	}
	if !filter.IsEmpty() {
		t.Errorf("Expected empty filter, got %v", filter)
	}

	filter, err = GetFilter(filterCmd(t, "--semester", "Fall 2025"), results)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := filter.Value("semester"); !ok || v != "Fall 2025" || len(filter) != 1 {
		t.Errorf("Expected semester-only filter, got %v", filter)
	}
}

func TestGetFilter_UnfilteredCollection(t *testing.T) {
	t.Setenv(EnvDepartment, "CS")
	faq := mustSchema(t, models.CollectionFAQ)

	// environment context is ignored for collections without filters
	filter, err := GetFilter(filterCmd(t), faq)
	if err != nil || filter != nil {
		t.Errorf("Expected nil filter, got %v (err %v)", filter, err)
	}

	_, err = GetFilter(filterCmd(t, "--department", "CS"), faq)
	if ExitCodeFor(err) != ExitUsage {
		t.Errorf("Expected usage error for explicit filter, got %v", err)
	}
}

func TestExactArgs(t *testing.T) {
	check := ExactArgs(2)
	if err := check(&cobra.Command{}, []string{"a", "b"}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := check(&cobra.Command{}, []string{"a"}); ExitCodeFor(err) != ExitUsage {
		t.Errorf("Expected usage exit code, got %v", err)
	}
}
