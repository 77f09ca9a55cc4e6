package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/thenoetrevino/studentsync/internal/models"
	recordservice "github.com/thenoetrevino/studentsync/internal/services/record"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("disk full"), ExitError},
		{"usage", UsageError("bad position %q", "x"), ExitUsage},
		{"not found", fmt.Errorf("wrap: %w", models.ErrNotFound), ExitNotFound},
		{"out of range", models.ErrPositionOutOfRange, ExitNotFound},
		{"unknown collection", models.ErrUnknownCollection, ExitValidation},
		{"unknown field", models.ErrUnknownField, ExitValidation},
		{"not selectable", models.ErrNotSelectable, ExitValidation},
		{"missing filter", recordservice.ErrMissingFilter, ExitValidation},
		{"no values", recordservice.ErrNoValues, ExitValidation},
		{"reported keeps code", Reported(models.ErrNotFound), ExitNotFound},
		{"explicit code wins", &ExitCodeError{Code: ExitDataErr, Err: models.ErrNotFound}, ExitDataErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(models.ErrNotFound); got != "NOT_FOUND" {
		t.Errorf("Expected NOT_FOUND, got %s", got)
	}
	if got := ErrorCode(UsageError("x")); got != "USAGE_ERROR" {
		t.Errorf("Expected USAGE_ERROR, got %s", got)
	}
	if got := ErrorCode(models.ErrUnknownField); got != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %s", got)
	}
	if got := ErrorCode(errors.New("boom")); got != "ERROR" {
		t.Errorf("Expected ERROR, got %s", got)
	}
}

func TestReported(t *testing.T) {
	err := Reported(models.ErrNotFound)
	if !IsReported(err) {
		t.Error("Expected reported error to be detected")
	}
	if !errors.Is(err, models.ErrNotFound) {
		t.Error("Expected reported error to unwrap")
	}
	if IsReported(models.ErrNotFound) {
		t.Error("Plain error should not be reported")
	}
	if Reported(nil) != nil {
		t.Error("Reported(nil) should be nil")
	}
}
