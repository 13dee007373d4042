package publish

import (
	"context"
	"time"
)

// Report is one game's digest output, ready for delivery.
type Report struct {
	GameID      string
	GameName    string
	Since       time.Time
	GeneratedAt time.Time
	NotesCount  int
	Degraded    bool
	Body        string
}

// Publisher delivers a digest report to some output destination.
type Publisher interface {
	Publish(ctx context.Context, report *Report) error
}
