package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"catchup/internal/catalog"
	"catchup/internal/config"
	"catchup/internal/digest"
	"catchup/internal/pipeline"
	"catchup/internal/publish"
	"catchup/internal/render"
	"catchup/internal/server"
	"catchup/internal/source"
	"catchup/internal/summary"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when omitted)")
	once := flag.Bool("once", false, "run the digest once and exit")
	gameID := flag.String("game", "", "summarize a single game and exit (requires -since)")
	since := flag.String("since", "", "last played date, YYYY-MM-DD (used with -game)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	registry := source.NewDefaultRegistry(cfg.FetchTimeout())

	summarizer, err := summary.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create summarizer: %v", err)
	}

	pipe := pipeline.New(registry, summarizer)

	// Single-game mode: run one pipeline request and print the result.
	if *gameID != "" {
		if err := runSingle(pipe, *gameID, *since); err != nil {
			log.Fatalf("Summarize failed: %v", err)
		}
		return
	}

	runner := digest.New(digestGames(cfg), cfg.Digest.LookbackDays, pipe, buildPublishers(cfg))

	// Once mode: run the digest and exit.
	if *once {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		log.Println("Running digest (once mode)...")
		if err := runner.Run(ctx); err != nil {
			log.Fatalf("Digest failed: %v", err)
		}
		log.Println("Done")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scheduled digests are optional; the HTTP API runs either way.
	var c *cron.Cron
	if cfg.Digest.Schedule != "" {
		c = cron.New()
		if _, err := c.AddFunc(cfg.Digest.Schedule, func() {
			log.Println("Cron triggered, running digest...")
			if err := runner.Run(ctx); err != nil {
				log.Printf("Scheduled digest failed: %v", err)
			}
		}); err != nil {
			log.Fatalf("Failed to set up cron schedule %q: %v", cfg.Digest.Schedule, err)
		}
		c.Start()
		log.Printf("Scheduled digest with cron expression: %s", cfg.Digest.Schedule)
	}

	srv := server.New(pipe)
	go func() {
		log.Printf("Listening on %s", cfg.ListenAddr)
		if err := srv.Start(cfg.ListenAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received signal %v, shutting down...", sig)

	cancel()
	if c != nil {
		c.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// digestGames maps configured game ids to catalog entries, defaulting to the
// whole catalog. Unknown ids are skipped with a warning.
func digestGames(cfg *config.Config) []catalog.Game {
	if len(cfg.Digest.Games) == 0 {
		return catalog.All()
	}
	var games []catalog.Game
	for _, id := range cfg.Digest.Games {
		game, ok := catalog.ByID(id)
		if !ok {
			log.Printf("Unknown game %q in digest config, skipping", id)
			continue
		}
		games = append(games, game)
	}
	return games
}

func buildPublishers(cfg *config.Config) []publish.Publisher {
	switch cfg.Digest.Publisher.Type {
	case "webhook":
		return []publish.Publisher{publish.NewWebhookPublisher(cfg.Digest.Publisher.WebhookURL)}
	default:
		return []publish.Publisher{publish.NewStdoutPublisher()}
	}
}

func runSingle(pipe *pipeline.Pipeline, gameID, sinceText string) error {
	game, ok := catalog.ByID(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q", gameID)
	}
	lastPlayed, err := time.Parse("2006-01-02", sinceText)
	if err != nil {
		return fmt.Errorf("invalid -since date %q (want YYYY-MM-DD): %w", sinceText, err)
	}

	res := pipe.Run(context.Background(), game, lastPlayed)
	fmt.Println(render.Document(summary.Parse(res.Summary)))
	return nil
}
