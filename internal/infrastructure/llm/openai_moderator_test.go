package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"LocalNewsDesk/internal/config"
	"LocalNewsDesk/internal/moderation"
)

func completionReply(content string) []byte {
	raw, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return raw
}

func newTestModerator(endpoint string) *Moderator {
	return NewModerator(config.OpenAIConfig{
		Endpoint: endpoint,
		Model:    "gpt-4o-mini",
		APIKey:   "test-key",
	})
}

func TestModeratorParsesAcceptingDecision(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		_, _ = w.Write(completionReply(`{"isValid":true,"editedTitle":"Spring Festival Returns","editedSummary":"The festival returns this weekend. Entry is free."}`))
	}))
	defer server.Close()

	decision, err := newTestModerator(server.URL).Evaluate(context.Background(), moderation.Candidate{
		Title: "Annual Spring Festival Returns",
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !decision.Accepted || decision.EditedTitle != "Spring Festival Returns" {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestModeratorParsesRejectingDecision(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(completionReply(`{"isValid":false,"rejectionReason":"Not local news."}`))
	}))
	defer server.Close()

	decision, err := newTestModerator(server.URL).Evaluate(context.Background(), moderation.Candidate{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if decision.Accepted || decision.Reason != "Not local news." {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestModeratorErrorsOnMalformedContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(completionReply("Sure! Here is my assessment of the submission."))
	}))
	defer server.Close()

	if _, err := newTestModerator(server.URL).Evaluate(context.Background(), moderation.Candidate{}); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestModeratorErrorsOnServerFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := newTestModerator(server.URL).Evaluate(context.Background(), moderation.Candidate{}); err == nil {
		t.Fatal("expected error for failing server")
	}
}

func TestModeratorErrorsOnIncompleteDecision(t *testing.T) {
	t.Parallel()

	if _, err := parseDecision(`{"isValid":true}`); err == nil {
		t.Fatal("expected error for accepting decision without edits")
	}
	if _, err := parseDecision(`{"isValid":false}`); err == nil {
		t.Fatal("expected error for rejecting decision without reason")
	}
}

func TestModeratorMisconfigured(t *testing.T) {
	t.Parallel()

	moderator := NewModerator(config.OpenAIConfig{})
	if _, err := moderator.Evaluate(context.Background(), moderation.Candidate{}); err == nil {
		t.Fatal("expected error for missing configuration")
	}
}
