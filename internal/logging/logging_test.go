package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAt_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitAt(dir)
	if err != nil {
		t.Fatalf("InitAt failed: %v", err)
	}

	slog.Info("record added", "collection", "faq", "id", 2)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "studentsync.log"))
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	line := string(data)
	for _, want := range []string{"msg=\"record added\"", "collection=faq", "id=2"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in log line %q", want, line)
		}
	}
}
