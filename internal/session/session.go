// Package session maps opaque bearer tokens to user ids with a fixed lifetime.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a token is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store is the session cache. Keys are namespaced as auth_<token>.
type Store interface {
	// Get returns the user id bound to token.
	Get(ctx context.Context, token string) (string, error)
	// Set binds token to userID for the store's TTL.
	Set(ctx context.Context, token, userID string) error
	// Delete removes the token. Unknown tokens are not an error.
	Delete(ctx context.Context, token string) error
	// Ping reports whether the store is usable.
	Ping(ctx context.Context) error
	Close() error
}

// Key returns the cache key for token.
func Key(token string) []byte {
	return []byte("auth_" + token)
}
