// Package store persists draft snapshots. The draft core treats it as an
// opaque sink/source; expiry policy lives here, not in the core.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no live snapshot exists for a code.
var ErrNotFound = errors.New("draft not found")

// DefaultExpiry matches the four weeks the original deployment kept
// abandoned drafts around.
const DefaultExpiry = 28 * 24 * time.Hour

type Store interface {
	Save(ctx context.Context, code string, snapshot []byte, expiresAt time.Time) error
	Load(ctx context.Context, code string) ([]byte, error)
	Delete(ctx context.Context, code string) error
}
