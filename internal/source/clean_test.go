package source

import (
	"strings"
	"testing"
)

func TestCleanHTMLStripsMarkup(t *testing.T) {
	fragment := `<div><script>alert("x")</script><style>.a{color:red}</style>
		<p>Weapon   balancing changes were applied to several rifles.</p>
		<p>Improved network stability across all regions.</p></div>`

	got := CleanHTML(fragment)

	if strings.Contains(got, "alert") || strings.Contains(got, "color:red") {
		t.Errorf("Expected script/style content removed, got %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
	if !strings.Contains(got, "Weapon balancing changes were applied to several rifles.") {
		t.Errorf("Expected cleaned sentence, got %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("Expected terminal punctuation, got %q", got)
	}
}

func TestCleanHTMLCapsSentences(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("This is a reasonably long sentence for the cap test. ")
	}

	got := CleanHTML(sb.String())

	if n := strings.Count(got, "."); n != maxSentences {
		t.Errorf("Expected %d sentences, got %d in %q", maxSentences, n, got)
	}
}

func TestCleanHTMLDropsFragments(t *testing.T) {
	got := CleanHTML("Short. [](){}<>. A sentence that is long enough to keep around.")
	if got != "A sentence that is long enough to keep around." {
		t.Errorf("Expected fragments dropped, got %q", got)
	}
}

func TestCleanHTMLEmpty(t *testing.T) {
	if got := CleanHTML("<p>   </p>"); got != "" {
		t.Errorf("Expected empty result, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Expected passthrough, got %q", got)
	}

	long := strings.Repeat("a", 900)
	got := Truncate(long, maxBodyLen)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected continuation marker, got suffix %q", got[len(got)-10:])
	}
	if len(got) != maxBodyLen+3 {
		t.Errorf("Expected %d bytes, got %d", maxBodyLen+3, len(got))
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	s := strings.Repeat("é", 10) // 2 bytes each
	got := Truncate(s, 5)
	if strings.Contains(got, "�") {
		t.Errorf("Expected no split runes, got %q", got)
	}
	if got != "éé..." {
		t.Errorf("Expected backed-off cut, got %q", got)
	}
}
