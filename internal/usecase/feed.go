package usecase

import (
	"context"
	"fmt"
	"strings"

	"LocalNewsDesk/internal/domain"
	"LocalNewsDesk/internal/storage"
)

// Filter narrows a feed read. City matches as a case-insensitive substring;
// Category matches exactly when set.
type Filter struct {
	City     string
	Category domain.Category
}

// Feed serves the published-item read paths: the public feed and per-user
// bookmarks. All reads are derived from the store on demand.
type Feed struct {
	store *storage.NewsStore
}

// NewFeed wires the store.
func NewFeed(store *storage.NewsStore) *Feed {
	return &Feed{store: store}
}

// Published returns the feed, newest first, with the filter applied.
func (f *Feed) Published(ctx context.Context, filter Filter) ([]domain.PublishedItem, error) {
	items, err := f.store.PublishedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}

	if filter.City == "" && filter.Category == "" {
		return items, nil
	}

	city := strings.ToLower(filter.City)
	filtered := make([]domain.PublishedItem, 0, len(items))
	for _, item := range items {
		if city != "" && !strings.Contains(strings.ToLower(item.City), city) {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// ToggleBookmark flips an item's bookmark state for the user and returns the
// new state.
func (f *Feed) ToggleBookmark(ctx context.Context, userID, itemID string) (bool, error) {
	bookmarked, err := f.store.ToggleBookmark(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("toggle bookmark %s: %w", itemID, err)
	}
	return bookmarked, nil
}

// Bookmarked returns the user's bookmarked items, feed order preserved.
func (f *Feed) Bookmarked(ctx context.Context, userID string) ([]domain.PublishedItem, error) {
	ids, err := f.store.Bookmarks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	marked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
	}

	items, err := f.store.PublishedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}

	var bookmarked []domain.PublishedItem
	for _, item := range items {
		if _, ok := marked[item.ID]; ok {
			bookmarked = append(bookmarked, item)
		}
	}
	return bookmarked, nil
}
