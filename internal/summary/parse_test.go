package summary

import (
	"reflect"
	"testing"
)

func TestParseStructuredDocument(t *testing.T) {
	doc := "## Summary\nAll calm.\n## Version Updates\n### v1.2 - 2025-01-01\n• **Balance:** nerfed X"

	parsed := Parse(doc)

	if parsed.Summary != "All calm." {
		t.Errorf("Expected summary 'All calm.', got %q", parsed.Summary)
	}
	if len(parsed.Versions) != 1 {
		t.Fatalf("Expected 1 version, got %d", len(parsed.Versions))
	}

	v := parsed.Versions[0]
	if v.Title != "v1.2" {
		t.Errorf("Expected title 'v1.2', got %q", v.Title)
	}
	if v.Date != "2025-01-01" {
		t.Errorf("Expected date '2025-01-01', got %q", v.Date)
	}
	if len(v.Changes) != 1 {
		t.Fatalf("Expected 1 change, got %d", len(v.Changes))
	}
	if v.Changes[0].Category != "Balance" || v.Changes[0].Description != "nerfed X" {
		t.Errorf("Unexpected change %+v", v.Changes[0])
	}
}

func TestParseEmojiHeadings(t *testing.T) {
	doc := "## 📋 Summary\n\nBig changes landed.\n\n## 🔄 Version Updates\n\n### Season Patch - Mon Sep 1 2025\n• **Maps:** reworked layout\n• **Bug Fixes:** resolved crashes\n"

	parsed := Parse(doc)

	if parsed.Summary != "Big changes landed." {
		t.Errorf("Unexpected summary %q", parsed.Summary)
	}
	if len(parsed.Versions) != 1 {
		t.Fatalf("Expected 1 version, got %d", len(parsed.Versions))
	}
	if got := parsed.Versions[0].Changes; len(got) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(got))
	}
	// Change order must match document order.
	if parsed.Versions[0].Changes[0].Category != "Maps" || parsed.Versions[0].Changes[1].Category != "Bug Fixes" {
		t.Errorf("Changes out of order: %+v", parsed.Versions[0].Changes)
	}
}

func TestParseHeaderWithoutDate(t *testing.T) {
	doc := "## Version Updates\n### Hotfix\n• **General:** stability pass"

	parsed := Parse(doc)

	if len(parsed.Versions) != 1 {
		t.Fatalf("Expected 1 version, got %d", len(parsed.Versions))
	}
	if parsed.Versions[0].Title != "Hotfix" || parsed.Versions[0].Date != "" {
		t.Errorf("Unexpected version %+v", parsed.Versions[0])
	}
}

func TestParseHeaderWithoutBlockMarker(t *testing.T) {
	doc := "## Version Updates\nPatch 9 - 2025-05-05\n• **Balance:** tuned spawns"

	parsed := Parse(doc)

	if len(parsed.Versions) != 1 {
		t.Fatalf("Expected 1 version, got %d", len(parsed.Versions))
	}
	if parsed.Versions[0].Title != "Patch 9" || parsed.Versions[0].Date != "2025-05-05" {
		t.Errorf("Unexpected version %+v", parsed.Versions[0])
	}
}

func TestParseBulletWithoutCategory(t *testing.T) {
	doc := "## Version Updates\n### v2.0 - 2025-06-01\n• Fixed a crash when loading saves\n• Something changed in the menus"

	parsed := Parse(doc)

	if len(parsed.Versions) != 1 {
		t.Fatalf("Expected 1 version, got %d", len(parsed.Versions))
	}
	changes := parsed.Versions[0].Changes
	if len(changes) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(changes))
	}
	// Categories are inferred from the text when no explicit label exists.
	if changes[0].Category != "Bug Fixes" {
		t.Errorf("Expected inferred 'Bug Fixes', got %q", changes[0].Category)
	}
	if changes[0].Description != "Fixed a crash when loading saves" {
		t.Errorf("Unexpected description %q", changes[0].Description)
	}
	if changes[1].Category != "General" {
		t.Errorf("Expected sentinel 'General', got %q", changes[1].Category)
	}
}

func TestParseColonOutsideBold(t *testing.T) {
	doc := "## Version Updates\n### v3.0 - 2025-07-01\n• **Performance**: faster load times"

	parsed := Parse(doc)

	changes := parsed.Versions[0].Changes
	if len(changes) != 1 {
		t.Fatalf("Expected 1 change, got %d", len(changes))
	}
	if changes[0].Category != "Performance" || changes[0].Description != "faster load times" {
		t.Errorf("Unexpected change %+v", changes[0])
	}
}

func TestParseBareProse(t *testing.T) {
	doc := "The service is warming up.\nPlease try again shortly."

	parsed := Parse(doc)

	if parsed.Summary != "The service is warming up. Please try again shortly." {
		t.Errorf("Unexpected summary %q", parsed.Summary)
	}
	if len(parsed.Versions) != 0 {
		t.Errorf("Expected no versions, got %d", len(parsed.Versions))
	}
}

func TestParseSkipsBareHeadingMarkers(t *testing.T) {
	doc := "## Summary\nQuiet week.\n###\n##\n#\n## Version Updates\n###"

	parsed := Parse(doc)

	if parsed.Summary != "Quiet week." {
		t.Errorf("Unexpected summary %q", parsed.Summary)
	}
	if len(parsed.Versions) != 0 {
		t.Errorf("Expected no versions, got %d", len(parsed.Versions))
	}
}

func TestParseFinalizesOpenVersion(t *testing.T) {
	doc := "## Version Updates\n### First - 2025-01-01\n• **General:** a change\n### Second - 2025-02-01\n• **General:** another change"

	parsed := Parse(doc)

	if len(parsed.Versions) != 2 {
		t.Fatalf("Expected 2 versions, got %d", len(parsed.Versions))
	}
	if parsed.Versions[1].Title != "Second" {
		t.Errorf("Expected trailing version finalized, got %+v", parsed.Versions[1])
	}
}

func TestParseIdempotent(t *testing.T) {
	doc := "## 📋 Summary\nSteady patch cadence.\n## 🔄 Version Updates\n### v5 - 2025-04-01\n• **Balance:** tuned recoil\n• untagged change here"

	first := Parse(doc)
	second := Parse(doc)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got\n%+v\nand\n%+v", first, second)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	parsed := Parse("")
	if parsed.Summary != "" || len(parsed.Versions) != 0 {
		t.Errorf("Expected empty result, got %+v", parsed)
	}
}

func TestParseMockSummaryShape(t *testing.T) {
	// The degraded-path output carries a warning line before the headings;
	// it must still parse into structured entries.
	doc := "⚠️ **Unable to fetch live release notes. Showing mock data instead.**\n\n## 📋 Summary\n\nRepresentative highlights only.\n\n## 🔄 Version Updates\n\n### Recent Updates - recent\n• **General:** assorted improvements\n"

	parsed := Parse(doc)

	if len(parsed.Versions) != 1 {
		t.Fatalf("Expected 1 version, got %d", len(parsed.Versions))
	}
	if parsed.Versions[0].Changes[0].Category != "General" {
		t.Errorf("Unexpected change %+v", parsed.Versions[0].Changes[0])
	}
}
