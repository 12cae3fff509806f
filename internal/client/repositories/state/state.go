// Package state persists small client-side key-value facts (the bearer
// token, the active username) in the local SQLite database.
package state

import "context"

type Repository interface {
	// Get returns the value for key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
