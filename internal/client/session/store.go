// Package session keeps the client's only durable state: the signed-in
// user's id, stored under a key with an explicit expiry.
//
// Absence and expiry both mean "anonymous"; neither is an error.
package session

import (
	"context"
	"time"
)

// UserIDKey is the key the signed-in user id is stored under.
const UserIDKey = "userId"

// Store is a key/value store whose entries expire.
type Store interface {
	// Set upserts key with value, expiring ttl from now.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns the value and true, or "" and false when the key is
	// absent or expired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Clear deletes key. Clearing a missing key is a no-op.
	Clear(ctx context.Context, key string) error
	Close() error
}

// Clock returns the current time; stores take one so tests can move time.
type Clock func() time.Time
