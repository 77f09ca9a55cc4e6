// Package dashboard summarizes the newest campus information on one screen
package dashboard

import (
	"context"
	"errors"
	"strings"

	"github.com/thenoetrevino/studentsync/internal/database"
	"github.com/thenoetrevino/studentsync/internal/models"
)

// Service defines dashboard operations
type Service interface {
	Latest(ctx context.Context) (*Snapshot, error)
}

// Snapshot holds the records the dashboard shows. Either may be nil when the
// collection is empty.
type Snapshot struct {
	Announcement *models.Record
	Transport    *models.Record
}

// String renders "Latest Announcement: t\nc\n\nTransport Update: r is at l"
func (s *Snapshot) String() string {
	var b strings.Builder
	if s.Announcement != nil {
		b.WriteString("Latest Announcement: ")
		b.WriteString(s.Announcement.Get("title"))
		b.WriteString("\n")
		b.WriteString(s.Announcement.Get("content"))
		b.WriteString("\n\n")
	}
	if s.Transport != nil {
		b.WriteString("Transport Update: ")
		b.WriteString(s.Transport.Get("route"))
		b.WriteString(" is at ")
		b.WriteString(s.Transport.Get("live_location"))
	}
	return b.String()
}

type service struct {
	repo database.RecordReader
}

// NewService creates a new dashboard service
func NewService(repo database.RecordReader) Service {
	return &service{repo: repo}
}

// Latest reads the first announcement and the first transport row
func (s *service) Latest(ctx context.Context) (*Snapshot, error) {
	announcement, err := s.first(ctx, models.CollectionAnnouncements)
	if err != nil {
		return nil, err
	}
	transport, err := s.first(ctx, models.CollectionTransportTracker)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Announcement: announcement, Transport: transport}, nil
}

func (s *service) first(ctx context.Context, collection string) (*models.Record, error) {
	r, err := s.repo.First(ctx, collection)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return r, err
}
