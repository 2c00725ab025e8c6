package moderation

import (
	"context"
	"strings"
	"testing"

	"LocalNewsDesk/internal/domain"
)

func neutralCandidate() Candidate {
	return Candidate{
		Title:       "Annual Spring Festival Returns",
		Description: "The annual spring festival returns to the main square this weekend with food stalls and live music.",
		City:        "Springfield",
		Category:    domain.CategoryFestival,
	}
}

func TestRulesRejectSpam(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Description = "buy now click here amazing deal" + strings.Repeat(" really", 10)

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if decision.Accepted {
		t.Fatal("expected rejection for spam content")
	}
	if !strings.Contains(decision.Reason, "spam") {
		t.Fatalf("expected spam reason, got %q", decision.Reason)
	}
}

func TestRulesRejectInappropriate(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Description = "An incident of harassment was reported near the old market hall yesterday evening."

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if decision.Accepted {
		t.Fatal("expected rejection for inappropriate content")
	}
	if !strings.Contains(decision.Reason, "community guidelines") {
		t.Fatalf("unexpected reason: %q", decision.Reason)
	}
}

func TestRulesRejectNonLocal(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Description = "The president announced a new policy affecting every state in the country today."

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if decision.Accepted {
		t.Fatal("expected rejection for non-local content")
	}
	if !strings.Contains(decision.Reason, "local") {
		t.Fatalf("unexpected reason: %q", decision.Reason)
	}
}

func TestRulesRejectShortDescription(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Description = "Too little detail here."

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if decision.Accepted {
		t.Fatal("expected rejection for short description")
	}
	if !strings.Contains(decision.Reason, "too short") {
		t.Fatalf("unexpected reason: %q", decision.Reason)
	}
}

func TestRulesRejectBriefTitle(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Title = "Fair"

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if decision.Accepted {
		t.Fatal("expected rejection for brief title")
	}
	if !strings.Contains(decision.Reason, "too brief") {
		t.Fatalf("unexpected reason: %q", decision.Reason)
	}
}

func TestRulesAcceptMultiSentence(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Description = "The festival opens Friday evening. Local bands play on two stages. Entry is free for residents. Parking is limited."

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !decision.Accepted {
		t.Fatalf("expected acceptance, got reason %q", decision.Reason)
	}
	if decision.EditedTitle != "Annual Spring Festival Returns" {
		t.Fatalf("unexpected edited title: %q", decision.EditedTitle)
	}
	want := "The festival opens Friday evening. Local bands play on two stages. Entry is free for residents."
	if decision.EditedSummary != want {
		t.Fatalf("unexpected summary:\n got %q\nwant %q", decision.EditedSummary, want)
	}
}

func TestRulesAcceptSingleSentenceAddsCity(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Description = "The   annual spring festival returns to the main square this weekend with food stalls"

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !decision.Accepted {
		t.Fatalf("expected acceptance, got reason %q", decision.Reason)
	}
	want := "The annual spring festival returns to the main square this weekend with food stalls. This event took place in Springfield."
	if decision.EditedSummary != want {
		t.Fatalf("unexpected summary:\n got %q\nwant %q", decision.EditedSummary, want)
	}
}

func TestRulesTruncateLongTitle(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()
	candidate.Title = strings.Repeat("Very Long Title ", 10)

	decision, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !decision.Accepted {
		t.Fatalf("expected acceptance, got reason %q", decision.Reason)
	}
	if got := len([]rune(decision.EditedTitle)); got != 80 {
		t.Fatalf("edited title length = %d, want 80", got)
	}
	if !strings.HasSuffix(decision.EditedTitle, "...") {
		t.Fatalf("expected ellipsis marker, got %q", decision.EditedTitle)
	}
}

func TestRulesIdempotent(t *testing.T) {
	t.Parallel()

	rules := NewRules()
	candidate := neutralCandidate()

	first, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	second, err := rules.Evaluate(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if first != second {
		t.Fatalf("decisions differ: %+v vs %+v", first, second)
	}
}
