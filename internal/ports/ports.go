package ports

import (
	"context"
	"time"

	"LocalNewsDesk/internal/domain"
)

// KV is the durable store collaborator. Values are whole collection
// documents; Put replaces the full value for a key and is atomic per key.
type KV interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// PutAll writes every entry or none of them.
	PutAll(ctx context.Context, entries map[string][]byte) error
}

// SubmissionSource pulls draft submissions from upstream community pages.
type SubmissionSource interface {
	FetchDrafts(ctx context.Context) ([]domain.Draft, error)
}

// Notifier streams published-news digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when recurring import runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
