// Package usecase orchestrates the submission lifecycle: intake, moderation,
// publication, and the derived read paths.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"LocalNewsDesk/internal/domain"
	"LocalNewsDesk/internal/masking"
	"LocalNewsDesk/internal/moderation"
	"LocalNewsDesk/internal/storage"
)

// InconsistentStateError reports an approved submission whose publish write
// failed. The decision was made but nothing became visible; callers should
// retry the submission or reconcile manually.
type InconsistentStateError struct {
	SubmissionID string
	Err          error
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("submission %s approved but not published: %v", e.SubmissionID, e.Err)
}

func (e *InconsistentStateError) Unwrap() error {
	return e.Err
}

// Outcome reports the result of one submission attempt. Rejection is a
// normal outcome carrying the user-facing reason, not an error.
type Outcome struct {
	Submission domain.Submission
	Published  *domain.PublishedItem
	Rejected   bool
	Reason     string
}

// PipelineDeps wires the pipeline's collaborators.
type PipelineDeps struct {
	Store     *storage.NewsStore
	Moderator moderation.Moderator
	Logger    *slog.Logger
	Now       func() time.Time
	NewID     func() string
}

// Pipeline implements the publication workflow: persist the pending
// submission, moderate it, then either publish atomically or mark it
// rejected. The moderation call runs without holding any store lock.
type Pipeline struct {
	store     *storage.NewsStore
	moderator moderation.Moderator
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		store:     deps.Store,
		moderator: deps.Moderator,
		logger:    deps.Logger,
		now:       deps.Now,
		newID:     deps.NewID,
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.now == nil {
		p.now = func() time.Time { return time.Now().UTC() }
	}
	if p.newID == nil {
		p.newID = uuid.NewString
	}
	return p
}

// Submit runs one draft through the full lifecycle under the caller-supplied
// submission id. The pending record is persisted before moderation so the
// attempt survives regardless of the decision.
func (p *Pipeline) Submit(ctx context.Context, draft domain.Draft, id string) (Outcome, error) {
	submission := domain.Submission{
		ID:             id,
		Title:          draft.Title,
		Description:    draft.Description,
		City:           draft.City,
		Category:       draft.Category,
		PublisherName:  draft.PublisherName,
		PublisherPhone: draft.PublisherPhone,
		ImageRef:       draft.ImageRef,
		SubmittedAt:    p.now(),
		Status:         domain.StatusPending,
	}
	if err := p.store.AppendSubmission(ctx, submission); err != nil {
		return Outcome{}, fmt.Errorf("save submission %s: %w", id, err)
	}

	// Editorial fields only; publisher identity and phone stay out of the
	// moderation path.
	decision, err := p.moderator.Evaluate(ctx, moderation.Candidate{
		Title:       draft.Title,
		Description: draft.Description,
		City:        draft.City,
		Category:    draft.Category,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("moderate submission %s: %w", id, err)
	}

	if !decision.Accepted {
		if err := p.store.UpdateSubmissionStatus(ctx, id, domain.StatusRejected, decision.Reason); err != nil {
			return Outcome{}, fmt.Errorf("mark submission %s rejected: %w", id, err)
		}
		submission.Status = domain.StatusRejected
		submission.RejectionReason = decision.Reason
		p.logger.Info("submission rejected", "submission", id, "reason", decision.Reason)
		return Outcome{Submission: submission, Rejected: true, Reason: decision.Reason}, nil
	}

	item := domain.PublishedItem{
		ID:            p.newID(),
		SubmissionID:  id,
		EditedTitle:   decision.EditedTitle,
		EditedSummary: decision.EditedSummary,
		City:          draft.City,
		Category:      draft.Category,
		PublisherName: draft.PublisherName,
		MaskedPhone:   masking.Mask(draft.PublisherPhone),
		PublishedAt:   p.now(),
		ImageRef:      draft.ImageRef,
	}
	if err := p.store.Publish(ctx, id, item); err != nil {
		return Outcome{}, &InconsistentStateError{SubmissionID: id, Err: err}
	}

	submission.Status = domain.StatusApproved
	p.logger.Info("submission published", "submission", id, "item", item.ID, "city", item.City)
	return Outcome{Submission: submission, Published: &item}, nil
}
