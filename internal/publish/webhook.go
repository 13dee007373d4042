package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"catchup/internal/retry"
)

// Discord-compatible webhook payload.

type webhookEmbedFooter struct {
	Text string `json:"text"`
}

type webhookEmbed struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Color       int                 `json:"color,omitempty"`
	Footer      *webhookEmbedFooter `json:"footer,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type webhookPayload struct {
	Embeds []webhookEmbed `json:"embeds"`
}

// Discord caps embed descriptions at 4096 characters.
const maxEmbedDescription = 4096

// WebhookPublisher posts reports to a Discord-compatible webhook.
type WebhookPublisher struct {
	webhookURL  string
	client      *http.Client
	retryConfig retry.Config
}

func NewWebhookPublisher(webhookURL string) *WebhookPublisher {
	return &WebhookPublisher{
		webhookURL:  webhookURL,
		client:      &http.Client{Timeout: 30 * time.Second},
		retryConfig: retry.DefaultConfig(),
	}
}

func (p *WebhookPublisher) Publish(ctx context.Context, report *Report) error {
	title := fmt.Sprintf("Catchup Digest: %s", report.GameName)
	if report.Degraded {
		title += " (degraded)"
	}

	payload := webhookPayload{
		Embeds: []webhookEmbed{{
			Title:       title,
			Description: truncate(report.Body, maxEmbedDescription),
			Color:       0x5865F2,
			Footer: &webhookEmbedFooter{
				Text: fmt.Sprintf("%d release notes since %s", report.NotesCount, report.Since.Format("2006-01-02")),
			},
			Timestamp: report.GeneratedAt.Format(time.RFC3339),
		}},
	}

	err := retry.WithBackoff(ctx, p.retryConfig, func(ctx context.Context) error {
		return p.send(ctx, payload)
	})
	if err != nil {
		return fmt.Errorf("webhook: failed to deliver report: %w", err)
	}
	return nil
}

func (p *WebhookPublisher) send(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("webhook: unexpected status %d", resp.StatusCode)
		if !retry.HTTPStatusRetryable(resp.StatusCode) {
			return retry.Permanent(err)
		}
		return err
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
