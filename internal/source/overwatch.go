package source

import (
	"context"
	"time"
)

// OverwatchAdapter serves the canned Overwatch 2 dataset. The vendor's
// patch-notes site sits behind authentication, so there is no live path
// to attempt; the fixture set is the source of record.
type OverwatchAdapter struct {
	fixtures []Record
}

func NewOverwatchAdapter() *OverwatchAdapter {
	return &OverwatchAdapter{fixtures: overwatchFixtures}
}

func (a *OverwatchAdapter) Fetch(_ context.Context, since time.Time) []Record {
	return filterSince(a.fixtures, since)
}
