package domain

import "context"

// TokenSlot is the storage key that holds the bearer token.
const TokenSlot = "auth_token"

// TokenStore is the client-side key/value slot that persists the session
// token between runs. Implementations live in internal/core/repository.
type TokenStore interface {
	// Load returns the stored token.
	// Returns ("", nil) when the slot is empty.
	Load(ctx context.Context) (string, error)

	// Save overwrites the slot with token.
	Save(ctx context.Context, token string) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
