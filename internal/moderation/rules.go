package moderation

import (
	"context"
	"regexp"
	"strings"
)

const (
	minDescriptionLen = 50
	minTitleLen       = 10
	maxTitleLen       = 80
	maxSummaryLen     = 150
	maxSummaryParts   = 3
)

const (
	reasonSpam             = "Content appears to be spam or commercial advertisement, not suitable for local news."
	reasonInappropriate    = "Content contains inappropriate or harmful material that violates our community guidelines."
	reasonNotLocal         = "Content appears to be about national/international news rather than local happenings."
	reasonDescriptionShort = "Description is too short. Please provide more details about the local event."
	reasonTitleBrief       = "Title is too brief. Please provide a more descriptive title for the news event."
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Rules is the deterministic editorial policy. Checks run in a fixed order
// and short-circuit on the first match; a candidate that passes them all is
// accepted with rewritten title and summary. Evaluate never returns an error.
type Rules struct {
	spam          []string
	inappropriate []string
	nonLocal      []string
}

var _ Moderator = (*Rules)(nil)

// NewRules builds the policy with the standard keyword sets.
func NewRules() *Rules {
	return &Rules{
		spam: []string{
			"buy now", "click here", "free money", "scam", "fake news",
			"advertisement", "promote", "sale", "discount", "offer",
		},
		inappropriate: []string{
			"hate", "violence", "harassment", "explicit",
		},
		nonLocal: []string{
			"national", "international", "worldwide", "global",
			"federal government", "president", "congress", "senate",
			"foreign country",
		},
	}
}

// Evaluate applies the ordered rule pipeline to a candidate.
func (r *Rules) Evaluate(_ context.Context, candidate Candidate) (Decision, error) {
	text := strings.ToLower(candidate.Title) + " " + strings.ToLower(candidate.Description)

	if containsAny(text, r.spam) {
		return Reject(reasonSpam), nil
	}
	if containsAny(text, r.inappropriate) {
		return Reject(reasonInappropriate), nil
	}
	if containsAny(text, r.nonLocal) {
		return Reject(reasonNotLocal), nil
	}
	if len([]rune(candidate.Description)) < minDescriptionLen {
		return Reject(reasonDescriptionShort), nil
	}
	if len([]rune(candidate.Title)) < minTitleLen {
		return Reject(reasonTitleBrief), nil
	}

	return Accept(editTitle(candidate.Title), editSummary(candidate.Description, candidate.City)), nil
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func editTitle(title string) string {
	return truncate(strings.TrimSpace(title), maxTitleLen)
}

// editSummary guarantees at least two sentences: multi-sentence descriptions
// keep their first three sentences, single-sentence ones get a synthesized
// closing sentence naming the city.
func editSummary(description, city string) string {
	sentences := splitSentences(description)
	if len(sentences) >= 2 {
		if len(sentences) > maxSummaryParts {
			sentences = sentences[:maxSummaryParts]
		}
		return strings.Join(sentences, ". ") + "."
	}

	summary := truncate(strings.Join(strings.Fields(description), " "), maxSummaryLen)
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary + " This event took place in " + city + "."
}

func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSplit.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
