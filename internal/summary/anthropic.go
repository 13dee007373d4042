package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"catchup/internal/source"
)

// Anthropic summarizes release notes through the Anthropic Messages API.
// Every failure mode of the external call (missing key, transport error,
// API error, empty content) degrades to the deterministic summarizer, so
// Summarize never surfaces an error to the pipeline.
type Anthropic struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string
	client    *http.Client
	fallback  *Basic
}

func NewAnthropic(apiKey, model string, maxTokens int) *Anthropic {
	return &Anthropic{
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		baseURL:   "https://api.anthropic.com/v1/messages",
		client:    &http.Client{Timeout: 60 * time.Second},
		fallback:  NewBasic(),
	}
}

// Anthropic API request/response types

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
	Error   *anthropicError    `json:"error,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const systemPrompt = "You are a helpful assistant that analyzes game release notes for players who have been away from the game. Follow the exact format requested and focus on the most important changes that would affect their gameplay experience."

func (s *Anthropic) Summarize(ctx context.Context, records []source.Record, gameName string, lastPlayed time.Time) (string, error) {
	if len(records) == 0 {
		return noUpdatesMessage(gameName, lastPlayed), nil
	}

	if s.apiKey == "" {
		log.Printf("anthropic: no API key configured, using basic summarizer")
		return s.fallback.Summarize(ctx, records, gameName, lastPlayed)
	}

	text, err := s.callAPI(ctx, s.buildPrompt(records, gameName, lastPlayed))
	if err != nil {
		log.Printf("anthropic: generation failed, using basic summarizer: %v", err)
		return s.fallback.Summarize(ctx, records, gameName, lastPlayed)
	}

	return text, nil
}

func (s *Anthropic) buildPrompt(records []source.Record, gameName string, lastPlayed time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Please analyze the following release notes for %s since %s.\n\n", gameName, lastPlayed.Format(dateLayout))
	sb.WriteString("Create a response with this EXACT format:\n\n")
	sb.WriteString(summaryHeading + "\n")
	sb.WriteString("[Write a 2-3 sentence overview of the most important changes that happened since they last played]\n\n")
	sb.WriteString(versionsHeading + "\n\n")
	sb.WriteString("[For each release note, create a section like this:]\n\n")
	sb.WriteString("### [Version/Update Title] - [Date]\n")
	sb.WriteString(bulletMarker + " **[Category]:** [Important change]\n")
	sb.WriteString(bulletMarker + " **[Category]:** [Important change]\n")
	sb.WriteString(bulletMarker + " **[Category]:** [Important change]\n\n")
	fmt.Fprintf(&sb, "Use these categories: %s\n\n", strings.Join(Categories, ", "))

	sb.WriteString("Release Notes to analyze:\n")
	for _, rec := range records {
		fmt.Fprintf(&sb, "**%s** (%s):\n%s\n\n", rec.Title, rec.Timestamp.Format(dateLayout), rec.Body)
	}

	return sb.String()
}

func (s *Anthropic) callAPI(ctx context.Context, prompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: 0.3,
		System:      systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("anthropic: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic: failed to read response: %w", err)
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("anthropic: failed to parse response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("anthropic: API error: %s - %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	if len(apiResp.Content) == 0 || strings.TrimSpace(apiResp.Content[0].Text) == "" {
		return "", fmt.Errorf("anthropic: empty response")
	}

	return apiResp.Content[0].Text, nil
}
