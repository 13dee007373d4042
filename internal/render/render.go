// Package render turns a parsed summary into aligned plain text for
// terminals and digest publishers.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"catchup/internal/summary"
)

// Document renders a parsed summary document. Category labels are padded to
// a common display width so descriptions line up.
func Document(p summary.Parsed) string {
	var sb strings.Builder

	if p.Summary != "" {
		sb.WriteString("Summary\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		sb.WriteString(p.Summary + "\n")
	}

	if len(p.Versions) == 0 {
		return sb.String()
	}

	sb.WriteString("\nVersion Updates\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	catWidth := 0
	for _, v := range p.Versions {
		for _, ch := range v.Changes {
			if w := runewidth.StringWidth(ch.Category); w > catWidth {
				catWidth = w
			}
		}
	}

	for _, v := range p.Versions {
		if v.Date != "" {
			fmt.Fprintf(&sb, "\n%s (%s)\n", v.Title, v.Date)
		} else {
			fmt.Fprintf(&sb, "\n%s\n", v.Title)
		}
		for _, ch := range v.Changes {
			fmt.Fprintf(&sb, "  %s %s  %s\n",
				categoryGlyph(ch.Category),
				runewidth.FillRight(ch.Category, catWidth),
				ch.Description)
		}
	}

	return sb.String()
}

func categoryGlyph(category string) string {
	cat := strings.ToLower(category)
	switch {
	case strings.Contains(cat, "balance"):
		return "⚖️"
	case strings.Contains(cat, "content"):
		return "🆕"
	case strings.Contains(cat, "bug"), strings.Contains(cat, "fix"):
		return "🐛"
	case strings.Contains(cat, "performance"):
		return "⚡"
	case strings.Contains(cat, "gameplay"):
		return "🎮"
	case strings.Contains(cat, "feature"):
		return "✨"
	case strings.Contains(cat, "map"):
		return "🗺️"
	case strings.Contains(cat, "character"), strings.Contains(cat, "hero"), strings.Contains(cat, "champion"):
		return "🦸"
	case strings.Contains(cat, "item"), strings.Contains(cat, "weapon"):
		return "⚔️"
	}
	return "📝"
}
