package session

import (
	"context"
	"errors"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/store"
)

var ErrNotFound = errors.New("session not found")

// Store keeps the two session entries, role and user name, per session id.
type Store interface {
	Save(ctx context.Context, rec store.SessionRecord) error
	// Load returns ErrNotFound when the session is absent or expired.
	Load(ctx context.Context, id string) (store.SessionRecord, error)
	// Delete removes both entries. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}

// Settings configures a session store backend.
type Settings struct {
	TTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}
