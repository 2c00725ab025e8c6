// Package llm implements the remote moderation strategy against an
// OpenAI-compatible chat-completions API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"LocalNewsDesk/internal/config"
	"LocalNewsDesk/internal/moderation"
)

const systemPrompt = `You are an AI news editor for a local news platform. Validate and edit user-submitted news for local communities.

VALIDATION: accept only substantial LOCAL happenings (community events, accidents, festivals, business openings, school events, local government, weather). Reject national/international news, spam, advertisements, hate speech, violence, harassment, and incoherent or trivial content.

EDITING (only when valid): write a concise title of at most 80 characters and a summary of exactly 2-3 complete sentences in professional, accessible language.

Respond ONLY with valid JSON in this exact format:
{"isValid": boolean, "editedTitle": "string", "editedSummary": "string", "rejectionReason": "string"}
editedTitle and editedSummary only when isValid is true; rejectionReason only when it is false.`

// Moderator delegates editorial decisions to a chat-completions endpoint.
// Any transport, status, or parsing failure surfaces as an error so the
// caller can fall back to the rule-based policy.
type Moderator struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ moderation.Moderator = (*Moderator)(nil)

// NewModerator builds a client from configuration. Per-call deadlines come
// from the caller's context; the client timeout is only a safety net.
func NewModerator(cfg config.OpenAIConfig) *Moderator {
	return &Moderator{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Evaluate posts the candidate to the model and parses its decision.
func (m *Moderator) Evaluate(ctx context.Context, candidate moderation.Candidate) (moderation.Decision, error) {
	if m.apiKey == "" || m.endpoint == "" || m.model == "" {
		return moderation.Decision{}, fmt.Errorf("moderation client misconfigured")
	}

	userPrompt := fmt.Sprintf(
		"Please validate and edit this local news submission:\n\nTitle: %s\nDescription: %s\nCity: %s\nCategory: %s",
		candidate.Title, candidate.Description, candidate.City, candidate.Category)

	body, err := json.Marshal(map[string]any{
		"model": m.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"max_tokens":  300,
		"temperature": 0.3,
	})
	if err != nil {
		return moderation.Decision{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return moderation.Decision{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return moderation.Decision{}, fmt.Errorf("call moderation model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return moderation.Decision{}, fmt.Errorf("moderation model error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return moderation.Decision{}, fmt.Errorf("decode completion: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return moderation.Decision{}, fmt.Errorf("empty completion")
	}

	return parseDecision(completion.Choices[0].Message.Content)
}

func parseDecision(content string) (moderation.Decision, error) {
	var verdict struct {
		IsValid         bool   `json:"isValid"`
		EditedTitle     string `json:"editedTitle"`
		EditedSummary   string `json:"editedSummary"`
		RejectionReason string `json:"rejectionReason"`
	}
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		return moderation.Decision{}, fmt.Errorf("parse decision %q: %w", content, err)
	}

	if verdict.IsValid {
		if verdict.EditedTitle == "" || verdict.EditedSummary == "" {
			return moderation.Decision{}, fmt.Errorf("incomplete accepting decision")
		}
		return moderation.Accept(verdict.EditedTitle, verdict.EditedSummary), nil
	}
	if verdict.RejectionReason == "" {
		return moderation.Decision{}, fmt.Errorf("rejecting decision without reason")
	}
	return moderation.Reject(verdict.RejectionReason), nil
}
