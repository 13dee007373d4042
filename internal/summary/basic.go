package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clipperhouse/uax29/v2/sentences"

	"catchup/internal/source"
)

const (
	// minChangeLen excludes sentence fragments from the bullet list.
	minChangeLen = 20
	// maxChangesPerRecord bounds the bullets emitted per version block.
	maxChangesPerRecord = 4
)

// Basic is the deterministic summarizer: one version block per record, with
// bullets derived from the record body by sentence segmentation and keyword
// classification. It is the fallback for the generative path and must emit
// output the parser round-trips cleanly.
type Basic struct {
	now func() time.Time
}

func NewBasic() *Basic {
	return &Basic{now: time.Now}
}

func (b *Basic) Summarize(_ context.Context, records []source.Record, gameName string, lastPlayed time.Time) (string, error) {
	if len(records) == 0 {
		return noUpdatesMessage(gameName, lastPlayed), nil
	}

	var sb strings.Builder
	sb.WriteString(summaryHeading + "\n\n")
	fmt.Fprintf(&sb, "%s has had %d updates since you last played %d days ago. ",
		gameName, len(records), daysSince(b.now(), lastPlayed))
	sb.WriteString("These updates include gameplay changes, balance adjustments, new content, and bug fixes that may impact your experience.\n\n")

	sb.WriteString(versionsHeading + "\n\n")
	for _, rec := range records {
		fmt.Fprintf(&sb, "### %s - %s\n", rec.Title, rec.Timestamp.Format(dateLayout))
		for _, change := range keyChanges(rec.Body) {
			fmt.Fprintf(&sb, "%s **%s:** %s\n", bulletMarker, classifyChange(change), change)
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// keyChanges segments a record body into sentences and keeps the first few
// substantial ones as change descriptions.
func keyChanges(body string) []string {
	changes := make([]string, 0, maxChangesPerRecord)
	segs := sentences.FromString(body)
	for segs.Next() {
		s := strings.TrimRight(strings.TrimSpace(segs.Value()), ".!? ")
		if len(s) <= minChangeLen {
			continue
		}
		changes = append(changes, s)
		if len(changes) == maxChangesPerRecord {
			break
		}
	}
	return changes
}
