package dashboard

import (
	"context"
	"testing"

	"github.com/thenoetrevino/studentsync/internal/database"
)

func setupTestDB(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to init database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func TestLatest_Seeded(t *testing.T) {
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()
	if _, err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	snap, err := NewService(database.NewRepository(db)).Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}

	want := "Latest Announcement: Exam Schedule\nMidterms: Dec 10-15\n\nTransport Update: Campus-City is at Near Library"
	if got := snap.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLatest_Empty(t *testing.T) {
	snap, err := NewService(setupTestDB(t)).Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if snap.Announcement != nil || snap.Transport != nil {
		t.Errorf("Expected empty snapshot, got %+v", snap)
	}
	if snap.String() != "" {
		t.Errorf("Expected empty text, got %q", snap.String())
	}
}
