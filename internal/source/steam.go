package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Steam news RSS XML structures

type steamFeed struct {
	XMLName xml.Name    `xml:"rss"`
	Items   []steamItem `xml:"channel>item"`
}

type steamItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// SteamAdapter fetches release notes from the Steam news feed for one app.
type SteamAdapter struct {
	client   *http.Client
	feedURL  string
	newsURL  string
	fixtures []Record
}

func NewSteamAdapter(appID string, timeout time.Duration) *SteamAdapter {
	return &SteamAdapter{
		client:   &http.Client{Timeout: timeout},
		feedURL:  fmt.Sprintf("https://store.steampowered.com/feeds/news/app/%s/?cc=US&l=english", appID),
		newsURL:  fmt.Sprintf("https://store.steampowered.com/news/app/%s", appID),
		fixtures: cs2Fixtures,
	}
}

// Fetch returns records dated at or after since. A failed live fetch is not
// an error: the adapter degrades to its canned fixture set.
func (a *SteamAdapter) Fetch(ctx context.Context, since time.Time) []Record {
	records, err := a.live(ctx, since)
	if err != nil {
		log.Printf("steam: live fetch failed, using canned release notes: %v", err)
		return filterSince(a.fixtures, since)
	}
	return records
}

func (a *SteamAdapter) live(ctx context.Context, since time.Time) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("steam: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("steam: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("steam: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("steam: failed to read response: %w", err)
	}

	var feed steamFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("steam: failed to parse feed: %w", err)
	}

	items := feed.Items
	if len(items) > maxLiveItems {
		items = items[:maxLiveItems]
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		ts := resolveTimestamp(item.PubDate)
		if ts.Before(since) {
			continue
		}

		title := strings.TrimSpace(item.Title)
		text := Truncate(CleanHTML(item.Description), maxBodyLen)
		if title == "" || text == "" {
			continue
		}

		url := strings.TrimSpace(item.Link)
		if url == "" {
			url = a.newsURL
		}

		records = append(records, Record{
			Title:     title,
			Timestamp: ts,
			Body:      text,
			URL:       url,
		})
	}

	return records, nil
}
