package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/shakplay/internal/core/domain"
)

var _ domain.TokenStore = (*PgxTokenStore)(nil)

// PgxTokenStore implements domain.TokenStore on a client_tokens table,
// keyed by slot so several named slots can share one database.
type PgxTokenStore struct {
	pool *pgxpool.Pool
	slot string
}

// NewPgxTokenStore creates a PgxTokenStore for the given slot.
func NewPgxTokenStore(pool *pgxpool.Pool, slot string) *PgxTokenStore {
	return &PgxTokenStore{pool: pool, slot: slot}
}

// EnsureSchema creates the client_tokens table when missing.
func (r *PgxTokenStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS client_tokens (
			slot       TEXT PRIMARY KEY,
			token      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

// Load returns the token stored in the slot.
// Returns ("", nil) when the slot is empty.
func (r *PgxTokenStore) Load(ctx context.Context) (string, error) {
	query := `SELECT token FROM client_tokens WHERE slot = $1`

	var token string
	err := r.pool.QueryRow(ctx, query, r.slot).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

// Save upserts the token for the slot.
func (r *PgxTokenStore) Save(ctx context.Context, token string) error {
	query := `
		INSERT INTO client_tokens (slot, token) VALUES ($1, $2)
		ON CONFLICT (slot) DO UPDATE SET token = EXCLUDED.token, updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.pool.Exec(ctx, query, r.slot, token)
	return err
}

// Clear deletes the slot row.
func (r *PgxTokenStore) Clear(ctx context.Context) error {
	query := `DELETE FROM client_tokens WHERE slot = $1`
	_, err := r.pool.Exec(ctx, query, r.slot)
	return err
}
