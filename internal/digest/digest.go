// Package digest runs the pipeline for a set of games on a rolling window
// and hands the rendered results to publishers. It backs the scheduled mode
// and the -once CLI mode.
package digest

import (
	"context"
	"fmt"
	"log"
	"time"

	"catchup/internal/catalog"
	"catchup/internal/pipeline"
	"catchup/internal/publish"
	"catchup/internal/render"
	"catchup/internal/summary"
)

type Runner struct {
	games      []catalog.Game
	lookback   time.Duration
	pipeline   *pipeline.Pipeline
	publishers []publish.Publisher
	now        func() time.Time
}

func New(games []catalog.Game, lookbackDays int, p *pipeline.Pipeline, pubs []publish.Publisher) *Runner {
	return &Runner{
		games:      games,
		lookback:   time.Duration(lookbackDays) * 24 * time.Hour,
		pipeline:   p,
		publishers: pubs,
		now:        time.Now,
	}
}

// Run executes the full digest once: one pipeline run per game, each result
// parsed, rendered, and published. Publisher failures are logged and do not
// stop the digest; Run only fails when every publish attempt failed.
func (r *Runner) Run(ctx context.Context) error {
	since := r.now().Add(-r.lookback)
	log.Printf("digest: running for %d games since %s", len(r.games), since.Format("2006-01-02"))

	var attempts, failures int
	for _, game := range r.games {
		res := r.pipeline.Run(ctx, game, since)
		parsed := summary.Parse(res.Summary)

		report := &publish.Report{
			GameID:      game.ID,
			GameName:    game.Name,
			Since:       since,
			GeneratedAt: r.now(),
			NotesCount:  res.NotesCount,
			Degraded:    res.Degraded,
			Body:        render.Document(parsed),
		}

		for _, pub := range r.publishers {
			attempts++
			if err := pub.Publish(ctx, report); err != nil {
				failures++
				log.Printf("digest: publish via %T failed for %q: %v", pub, game.ID, err)
			}
		}
	}

	if attempts > 0 && failures == attempts {
		return fmt.Errorf("digest: all %d publish attempts failed", attempts)
	}
	if failures > 0 {
		log.Printf("digest: completed with %d of %d publish attempts failed", failures, attempts)
	} else {
		log.Printf("digest: completed")
	}
	return nil
}
