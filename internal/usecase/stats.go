package usecase

import (
	"context"
	"fmt"
	"time"

	"LocalNewsDesk/internal/analytics"
	"LocalNewsDesk/internal/storage"
)

// Stats computes analytics over the current published-item collection.
type Stats struct {
	store *storage.NewsStore
	now   func() time.Time
}

// NewStats wires the store; now defaults to the UTC wall clock.
func NewStats(store *storage.NewsStore, now func() time.Time) *Stats {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Stats{store: store, now: now}
}

// Summary reads the feed and derives the full activity summary.
func (s *Stats) Summary(ctx context.Context) (analytics.Summary, error) {
	items, err := s.store.PublishedItems(ctx)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("load published items: %w", err)
	}
	return analytics.Summarize(items, s.now()), nil
}

// SummaryRange derives totals and rankings for an explicit window.
func (s *Stats) SummaryRange(ctx context.Context, from, to time.Time) (analytics.RangeSummary, error) {
	items, err := s.store.PublishedItems(ctx)
	if err != nil {
		return analytics.RangeSummary{}, fmt.Errorf("load published items: %w", err)
	}
	return analytics.SummarizeRange(items, from, to), nil
}
