package summary

import (
	"regexp"
	"strings"
)

// Change is one categorized bullet inside a version block.
type Change struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// VersionEntry is one parsed version block. Date is kept as free-form text;
// the format allows arbitrary date strings.
type VersionEntry struct {
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Changes []Change `json:"changes"`
}

// Parsed is the structured reconstruction of a summary document.
type Parsed struct {
	Summary  string         `json:"summary"`
	Versions []VersionEntry `json:"versions"`
}

var (
	// bulletRegex accepts both "**Category:** desc" and "**Category**: desc".
	bulletRegex       = regexp.MustCompile(`^\*\*(.+?):?\*\*:?\s*(.*)$`)
	headerPrefixRegex = regexp.MustCompile(`^#+\s*`)
)

// Parse reconstructs typed entries from a summary document. It is a
// best-effort reader, not a strict deserializer: generated documents can
// deviate from the format, so unrecognized structure degrades to plain
// summary text instead of failing. Parse never returns an error.
func Parse(document string) Parsed {
	var (
		parsed     Parsed
		summaryBuf strings.Builder
		current    *VersionEntry
		inSummary  bool
		inVersions bool
	)

	for _, line := range strings.Split(document, "\n") {
		trimmed := strings.TrimSpace(line)

		// Skip empty lines and bare heading markers.
		if trimmed == "" || trimmed == "#" || trimmed == "##" || trimmed == "###" {
			continue
		}

		// Section headings switch modes; the switches are exclusive.
		if strings.Contains(trimmed, "Summary") || strings.Contains(trimmed, "📋") {
			inSummary, inVersions = true, false
			continue
		}
		if strings.Contains(trimmed, "Version Updates") || strings.Contains(trimmed, "🔄") {
			inSummary, inVersions = false, true
			continue
		}

		// Prose before any heading is summary text too: the no-updates
		// message and other degraded outputs are bare sentences.
		if inSummary || !inVersions {
			if !strings.HasPrefix(trimmed, "#") {
				summaryBuf.WriteString(trimmed)
				summaryBuf.WriteString(" ")
			}
			continue
		}

		// Version block header: "### title - date", or any line with the
		// separator that is not a bullet.
		if (strings.HasPrefix(trimmed, "###") || strings.Contains(trimmed, " - ")) &&
			!strings.HasPrefix(trimmed, bulletMarker) {
			if current != nil {
				parsed.Versions = append(parsed.Versions, *current)
			}
			cleaned := headerPrefixRegex.ReplaceAllString(trimmed, "")
			title, date, _ := strings.Cut(cleaned, " - ")
			current = &VersionEntry{
				Title: strings.TrimSpace(title),
				Date:  strings.TrimSpace(date),
			}
			continue
		}

		if current != nil && strings.HasPrefix(trimmed, bulletMarker) {
			content := strings.TrimSpace(strings.TrimPrefix(trimmed, bulletMarker))
			if m := bulletRegex.FindStringSubmatch(content); m != nil {
				current.Changes = append(current.Changes, Change{
					Category:    strings.TrimSpace(m[1]),
					Description: strings.TrimSpace(m[2]),
				})
			} else {
				// No explicit category: infer one from the text.
				current.Changes = append(current.Changes, Change{
					Category:    classifyChange(content),
					Description: content,
				})
			}
		}
	}

	if current != nil {
		parsed.Versions = append(parsed.Versions, *current)
	}
	parsed.Summary = strings.TrimSpace(summaryBuf.String())

	return parsed
}
