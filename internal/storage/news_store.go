// Package storage keeps the durable collections of the news platform:
// submissions, published items, and per-user bookmark sets. Collections are
// stored as whole JSON documents in a KV engine and rewritten on every
// update, which keeps the engine contract minimal for modest data volumes.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"LocalNewsDesk/internal/domain"
	"LocalNewsDesk/internal/ports"
)

const (
	submissionsKey  = "news_submissions"
	publishedKey    = "published_news"
	bookmarksPrefix = "bookmarked_news:"
)

// ErrSubmissionNotFound reports a lookup for an unknown submission id.
var ErrSubmissionNotFound = errors.New("submission not found")

// NewsStore layers the typed collections on top of a KV engine. Every
// read-modify-write cycle runs under a single mutex, so concurrent writers
// never interleave their collection rewrites.
type NewsStore struct {
	mu sync.Mutex
	kv ports.KV
}

// NewNewsStore wires a KV engine.
func NewNewsStore(kv ports.KV) *NewsStore {
	return &NewsStore{kv: kv}
}

// AppendSubmission persists a new submission at the end of the collection.
func (s *NewsStore) AppendSubmission(ctx context.Context, submission domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []domain.Submission
	if err := s.read(ctx, submissionsKey, &submissions); err != nil {
		return err
	}
	submissions = append(submissions, submission)
	return s.write(ctx, submissionsKey, submissions)
}

// Submissions returns every stored submission in insertion order.
func (s *NewsStore) Submissions(ctx context.Context) ([]domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []domain.Submission
	if err := s.read(ctx, submissionsKey, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// Submission looks a single submission up by id.
func (s *NewsStore) Submission(ctx context.Context, id string) (domain.Submission, error) {
	submissions, err := s.Submissions(ctx)
	if err != nil {
		return domain.Submission{}, err
	}
	for _, submission := range submissions {
		if submission.ID == id {
			return submission, nil
		}
	}
	return domain.Submission{}, fmt.Errorf("%w: %s", ErrSubmissionNotFound, id)
}

// UpdateSubmissionStatus moves a submission out of the pending state.
func (s *NewsStore) UpdateSubmissionStatus(ctx context.Context, id string, status domain.SubmissionStatus, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []domain.Submission
	if err := s.read(ctx, submissionsKey, &submissions); err != nil {
		return err
	}
	if !setStatus(submissions, id, status, reason) {
		return fmt.Errorf("%w: %s", ErrSubmissionNotFound, id)
	}
	return s.write(ctx, submissionsKey, submissions)
}

// Publish approves a submission and inserts its published item in one atomic
// write; either both collections change or neither does.
func (s *NewsStore) Publish(ctx context.Context, submissionID string, item domain.PublishedItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var submissions []domain.Submission
	if err := s.read(ctx, submissionsKey, &submissions); err != nil {
		return err
	}
	if !setStatus(submissions, submissionID, domain.StatusApproved, "") {
		return fmt.Errorf("%w: %s", ErrSubmissionNotFound, submissionID)
	}

	var items []domain.PublishedItem
	if err := s.read(ctx, publishedKey, &items); err != nil {
		return err
	}
	// Newest first, matching feed order.
	items = append([]domain.PublishedItem{item}, items...)

	subsRaw, err := json.Marshal(submissions)
	if err != nil {
		return fmt.Errorf("encode %s: %w", submissionsKey, err)
	}
	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", publishedKey, err)
	}

	if err := s.kv.PutAll(ctx, map[string][]byte{
		submissionsKey: subsRaw,
		publishedKey:   itemsRaw,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", submissionID, err)
	}
	return nil
}

// PublishedItems returns the feed, newest first.
func (s *NewsStore) PublishedItems(ctx context.Context) ([]domain.PublishedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.PublishedItem
	if err := s.read(ctx, publishedKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleBookmark flips the bookmark state of an item for a user and returns
// the new state. The item itself is never touched.
func (s *NewsStore) ToggleBookmark(ctx context.Context, userID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bookmarksPrefix + userID
	var bookmarks []string
	if err := s.read(ctx, key, &bookmarks); err != nil {
		return false, err
	}

	kept := bookmarks[:0]
	removed := false
	for _, id := range bookmarks {
		if id == itemID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, itemID)
	}

	if err := s.write(ctx, key, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// Bookmarks returns the bookmarked item ids of a user.
func (s *NewsStore) Bookmarks(ctx context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookmarks []string
	if err := s.read(ctx, bookmarksPrefix+userID, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func setStatus(submissions []domain.Submission, id string, status domain.SubmissionStatus, reason string) bool {
	for i := range submissions {
		if submissions[i].ID == id {
			submissions[i].Status = status
			submissions[i].RejectionReason = reason
			return true
		}
	}
	return false
}

func (s *NewsStore) read(ctx context.Context, key string, v interface{}) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *NewsStore) write(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
