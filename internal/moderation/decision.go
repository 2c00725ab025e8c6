// Package moderation decides whether a submitted news item is publishable
// and, if so, produces the edited copy that goes on the public feed.
package moderation

import (
	"context"

	"LocalNewsDesk/internal/domain"
)

// Candidate carries only the editorial fields of a submission. Publisher
// identity and phone never reach the policy.
type Candidate struct {
	Title       string
	Description string
	City        string
	Category    domain.Category
}

// Decision is the moderation outcome: accepted with edited copy, or rejected
// with a user-facing reason. Rejection is a normal outcome, not an error.
type Decision struct {
	Accepted      bool
	EditedTitle   string
	EditedSummary string
	Reason        string
}

// Accept builds an accepting decision with the edited title and summary.
func Accept(title, summary string) Decision {
	return Decision{Accepted: true, EditedTitle: title, EditedSummary: summary}
}

// Reject builds a rejecting decision with the given reason.
func Reject(reason string) Decision {
	return Decision{Reason: reason}
}

// Moderator evaluates candidates. Implementations must not mutate the
// candidate; an error means the strategy could not reach a decision at all.
type Moderator interface {
	Evaluate(ctx context.Context, candidate Candidate) (Decision, error)
}
