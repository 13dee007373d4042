package source

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/clipperhouse/uax29/v2/sentences"
)

const (
	// maxSentences bounds how much of an item body survives normalization.
	maxSentences = 6
	// maxBodyLen is the hard cap, in bytes, on a normalized body.
	maxBodyLen = 800
	// maxLiveItems caps how many live items an adapter considers per fetch.
	maxLiveItems = 10
	// minSentenceLen filters out fragments left over from markup stripping.
	minSentenceLen = 10
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	bracketsRegex   = regexp.MustCompile(`^[\[\]{}()<>]+$`)
)

// CleanHTML reduces an HTML fragment to plain prose: scripts and styles are
// dropped, whitespace is collapsed, and only the first few full sentences
// are kept, rejoined with terminal punctuation.
func CleanHTML(fragment string) string {
	text := fragment
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment)); err == nil {
		doc.Find("script, style").Remove()
		text = doc.Text()
	}
	text = strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
	if text == "" {
		return ""
	}

	kept := make([]string, 0, maxSentences)
	segs := sentences.FromString(text)
	for segs.Next() {
		s := strings.TrimRight(strings.TrimSpace(segs.Value()), ".!? ")
		if len(s) <= minSentenceLen || bracketsRegex.MatchString(s) {
			continue
		}
		kept = append(kept, s)
		if len(kept) == maxSentences {
			break
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// Truncate hard-caps s at max bytes, backing off to a rune boundary and
// appending a continuation marker when anything was cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
