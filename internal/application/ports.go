package application

import (
	"context"
	"time"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

// SessionStore records the active session id per user. A nil store disables
// session tracking.
type SessionStore interface {
	Save(ctx context.Context, userID string, fields map[string]any, ttl time.Duration) error
	Get(ctx context.Context, userID string) (map[string]string, error)
	Delete(ctx context.Context, userID string) error
}

// JobPublisher puts background jobs on the queue.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ArtworkSearcher is the full-text index over artwork listings.
type ArtworkSearcher interface {
	Put(ctx context.Context, a entity.Artwork) error
	Remove(ctx context.Context, id string) error
	SearchIDs(ctx context.Context, q string, size int) ([]string, error)
}

// PaymentVerifier confirms a payment token for an amount and returns the
// provider transaction id.
type PaymentVerifier interface {
	Verify(ctx context.Context, token string, amount float64) (string, error)
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
