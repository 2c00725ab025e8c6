package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"LocalNewsDesk/internal/domain"
)

func sampleSubmission(id string) domain.Submission {
	return domain.Submission{
		ID:             id,
		Title:          "Annual Spring Festival Returns",
		Description:    "The annual spring festival returns to the main square this weekend.",
		City:           "Springfield",
		Category:       domain.CategoryFestival,
		PublisherName:  "Jamie Rivera",
		PublisherPhone: "5551234567",
		SubmittedAt:    time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Status:         domain.StatusPending,
	}
}

func TestNewsStoreSubmissionLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewNewsStore(NewMemory())

	if err := store.AppendSubmission(ctx, sampleSubmission("sub-1")); err != nil {
		t.Fatalf("AppendSubmission: %v", err)
	}
	if err := store.AppendSubmission(ctx, sampleSubmission("sub-2")); err != nil {
		t.Fatalf("AppendSubmission: %v", err)
	}

	if err := store.UpdateSubmissionStatus(ctx, "sub-2", domain.StatusRejected, "not local"); err != nil {
		t.Fatalf("UpdateSubmissionStatus: %v", err)
	}

	submissions, err := store.Submissions(ctx)
	if err != nil {
		t.Fatalf("Submissions: %v", err)
	}
	if len(submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(submissions))
	}
	if submissions[0].Status != domain.StatusPending {
		t.Fatalf("sub-1 status = %s, want pending", submissions[0].Status)
	}
	if submissions[1].Status != domain.StatusRejected || submissions[1].RejectionReason != "not local" {
		t.Fatalf("unexpected sub-2 state: %+v", submissions[1])
	}

	if _, err := store.Submission(ctx, "missing"); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestNewsStorePublish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewNewsStore(NewMemory())

	if err := store.AppendSubmission(ctx, sampleSubmission("sub-1")); err != nil {
		t.Fatalf("AppendSubmission: %v", err)
	}

	first := domain.PublishedItem{ID: "item-1", SubmissionID: "sub-1", EditedTitle: "First"}
	if err := store.Publish(ctx, "sub-1", first); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if err := store.AppendSubmission(ctx, sampleSubmission("sub-2")); err != nil {
		t.Fatalf("AppendSubmission: %v", err)
	}
	second := domain.PublishedItem{ID: "item-2", SubmissionID: "sub-2", EditedTitle: "Second"}
	if err := store.Publish(ctx, "sub-2", second); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	submission, err := store.Submission(ctx, "sub-1")
	if err != nil {
		t.Fatalf("Submission: %v", err)
	}
	if submission.Status != domain.StatusApproved {
		t.Fatalf("status = %s, want approved", submission.Status)
	}

	items, err := store.PublishedItems(ctx)
	if err != nil {
		t.Fatalf("PublishedItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "item-2" || items[1].ID != "item-1" {
		t.Fatalf("expected newest first, got %s then %s", items[0].ID, items[1].ID)
	}

	if err := store.Publish(ctx, "missing", first); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestNewsStoreBookmarks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewNewsStore(NewMemory())

	on, err := store.ToggleBookmark(ctx, "user-1", "item-1")
	if err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if !on {
		t.Fatal("expected bookmark to be set")
	}

	if _, err := store.ToggleBookmark(ctx, "user-1", "item-2"); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}

	// Another user's set stays independent.
	if _, err := store.ToggleBookmark(ctx, "user-2", "item-9"); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}

	off, err := store.ToggleBookmark(ctx, "user-1", "item-1")
	if err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if off {
		t.Fatal("expected bookmark to be removed")
	}

	bookmarks, err := store.Bookmarks(ctx, "user-1")
	if err != nil {
		t.Fatalf("Bookmarks: %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0] != "item-2" {
		t.Fatalf("unexpected bookmarks: %v", bookmarks)
	}
}
