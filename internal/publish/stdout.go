package publish

import (
	"context"
	"fmt"
	"strings"
)

// StdoutPublisher prints the report to stdout.
type StdoutPublisher struct{}

func NewStdoutPublisher() *StdoutPublisher {
	return &StdoutPublisher{}
}

func (p *StdoutPublisher) Publish(_ context.Context, report *Report) error {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("Catchup Digest: %s\n", report.GameName)
	fmt.Printf("Window: since %s, generated %s\n",
		report.Since.Format("2006-01-02"),
		report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Release notes: %d\n", report.NotesCount)
	if report.Degraded {
		fmt.Println("NOTE: degraded data (live sources unavailable)")
	}
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println()
	fmt.Println(report.Body)
	return nil
}
