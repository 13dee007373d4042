package source

import (
	"context"
	"strings"
	"time"
)

// Record represents one normalized change entry from a release-notes source.
type Record struct {
	Title     string
	Timestamp time.Time
	Body      string
	URL       string
}

// Adapter fetches change records for one game. Implementations never return
// an error: any failure on the live path degrades to the adapter's canned
// fixture set, filtered by the same since rule. Returned records always have
// Timestamp >= since.
type Adapter interface {
	Fetch(ctx context.Context, since time.Time) []Record
}

// Registry maps game identifiers to their source adapters.
type Registry struct {
	adapters map[string]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register associates an adapter with a game identifier.
func (r *Registry) Register(id string, a Adapter) {
	r.adapters[id] = a
}

// Resolve returns the adapter for id. An unknown identifier is not an error;
// callers treat it the same as an adapter that returned zero records.
func (r *Registry) Resolve(id string) (Adapter, bool) {
	a, ok := r.adapters[id]
	return a, ok
}

// NewDefaultRegistry builds the registry for all games in the catalog.
func NewDefaultRegistry(timeout time.Duration) *Registry {
	r := NewRegistry()
	r.Register("cs2", NewSteamAdapter("730", timeout))
	r.Register("lol", NewLeagueAdapter(timeout))
	r.Register("overwatch", NewOverwatchAdapter())
	return r
}

// filterSince keeps records dated at or after since, preserving order.
func filterSince(records []Record, since time.Time) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if !rec.Timestamp.Before(since) {
			out = append(out, rec)
		}
	}
	return out
}

// resolveTimestamp parses a source date string, defaulting to now when the
// format is unrecognized.
func resolveTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC3339,
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
