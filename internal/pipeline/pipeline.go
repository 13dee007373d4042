// Package pipeline orchestrates fetch -> summarize for one request. Its
// guarantee to callers: Run always produces a summary. Adapter and
// summarizer failures are absorbed by those layers; anything that still
// escapes is caught here and replaced by a clearly-labeled mock summary
// with the Degraded flag set.
package pipeline

import (
	"context"
	"log"
	"time"

	"catchup/internal/catalog"
	"catchup/internal/source"
	"catchup/internal/summary"
)

// Result is the pipeline output consumed by the HTTP layer and the digest
// runner.
type Result struct {
	Summary    string `json:"summary"`
	Game       string `json:"game"`
	LastPlayed string `json:"last_played_date"`
	NotesCount int    `json:"notes_count"`
	Degraded   bool   `json:"degraded"`
}

type Pipeline struct {
	registry   *source.Registry
	summarizer summary.Summarizer
}

func New(registry *source.Registry, summarizer summary.Summarizer) *Pipeline {
	return &Pipeline{registry: registry, summarizer: summarizer}
}

// Run fetches release notes for the game since lastPlayed and summarizes
// them. It never fails; the worst case is a mock summary marked Degraded.
func (p *Pipeline) Run(ctx context.Context, game catalog.Game, lastPlayed time.Time) (res Result) {
	res = Result{
		Game:       game.Name,
		LastPlayed: lastPlayed.Format("2006-01-02"),
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("pipeline: unexpected fault for %q, returning mock summary: %v", game.ID, r)
			res.Summary = mockSummary(game, lastPlayed)
			res.NotesCount = 0
			res.Degraded = true
		}
	}()

	var records []source.Record
	if adapter, ok := p.registry.Resolve(game.ID); ok {
		records = adapter.Fetch(ctx, lastPlayed)
	} else {
		// No adapter behaves exactly like an adapter with zero records.
		log.Printf("pipeline: no source adapter registered for %q", game.ID)
	}
	log.Printf("pipeline: found %d release notes for %q since %s", len(records), game.ID, res.LastPlayed)

	text, err := p.summarizer.Summarize(ctx, records, game.Name, lastPlayed)
	if err != nil {
		log.Printf("pipeline: summarize failed for %q, returning mock summary: %v", game.ID, err)
		res.Summary = mockSummary(game, lastPlayed)
		res.Degraded = true
		return res
	}

	res.Summary = text
	res.NotesCount = len(records)
	return res
}
