// Package summary turns change records into a human-readable summary
// document and parses such documents back into typed version entries.
//
// The document format is the shared contract between both summarizers and
// the parser: a "## 📋 Summary" heading followed by free prose, then a
// "## 🔄 Version Updates" heading followed by version blocks of the form
//
//	### <title> - <date>
//	• **<Category>:** <description>
//
// Generated output is not guaranteed to follow the format exactly, so the
// parser is deliberately permissive.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catchup/internal/config"
	"catchup/internal/source"
)

const (
	summaryHeading  = "## 📋 Summary"
	versionsHeading = "## 🔄 Version Updates"
	bulletMarker    = "•"

	// dateLayout is how dates are printed inside summary documents.
	dateLayout = "Mon Jan 2 2006"
)

// Categories is the fixed vocabulary the generative prompt instructs the
// model to use for bullet labels.
var Categories = []string{
	"Gameplay", "Balance", "New Content", "Bug Fixes", "Performance",
	"Features", "Maps", "Characters/Heroes/Champions", "Items/Weapons",
}

// Summarizer produces a summary document for a set of change records.
// Implementations never fail on the summarization path itself: the
// generative summarizer degrades to the deterministic one internally.
type Summarizer interface {
	Summarize(ctx context.Context, records []source.Record, gameName string, lastPlayed time.Time) (string, error)
}

// New creates a summarizer based on the configuration.
func New(cfg *config.Config) (Summarizer, error) {
	switch cfg.Summarizer.Type {
	case "anthropic":
		return NewAnthropic(cfg.Summarizer.APIKey, cfg.Summarizer.Model, cfg.Summarizer.MaxTokens), nil
	case "basic":
		return NewBasic(), nil
	default:
		return nil, ErrUnsupportedSummarizerType
	}
}

// ErrUnsupportedSummarizerType is returned when an unsupported summarizer type is specified.
var ErrUnsupportedSummarizerType = fmt.Errorf("unsupported summarizer type")

// noUpdatesMessage is the shared empty-input result. It is plain prose, not
// a structured document; the parser treats it as a bare summary.
func noUpdatesMessage(gameName string, lastPlayed time.Time) string {
	return fmt.Sprintf(
		"No release notes found for %s since %s. The game might not have had any updates, or the release notes might not be available.",
		gameName, lastPlayed.Format(dateLayout),
	)
}

// daysSince floors the elapsed time to whole days, clamping future reference
// dates to zero.
func daysSince(now, lastPlayed time.Time) int {
	days := int(now.Sub(lastPlayed).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

// classifyChange infers a category from a change description by ordered,
// case-insensitive keyword matching. The first matching rule wins.
func classifyChange(description string) string {
	s := strings.ToLower(description)
	switch {
	case strings.Contains(s, "balanc") || strings.Contains(s, "nerf") || strings.Contains(s, "buff"):
		return "Balance"
	case strings.Contains(s, "new") || strings.Contains(s, "add"):
		return "New Content"
	case strings.Contains(s, "fix") || strings.Contains(s, "bug"):
		return "Bug Fixes"
	case strings.Contains(s, "map"):
		return "Maps"
	case strings.Contains(s, "performance") || strings.Contains(s, "optimiz"):
		return "Performance"
	}
	return "General"
}
