package repository

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/duynhne/shakplay/internal/core/domain"
)

// MemoryTokenStore keeps the token in process memory. With a TTL the slot
// empties itself, forcing a fresh login.
type MemoryTokenStore struct {
	c    *gocache.Cache
	slot string
	ttl  time.Duration
}

// NewMemoryTokenStore creates a MemoryTokenStore. ttl <= 0 never expires.
func NewMemoryTokenStore(ttl time.Duration) *MemoryTokenStore {
	exp := gocache.NoExpiration
	if ttl > 0 {
		exp = ttl
	}
	return &MemoryTokenStore{
		c:    gocache.New(exp, time.Minute),
		slot: domain.TokenSlot,
		ttl:  exp,
	}
}

func (s *MemoryTokenStore) Load(_ context.Context) (string, error) {
	v, ok := s.c.Get(s.slot)
	if !ok {
		return "", nil
	}
	token, _ := v.(string)
	return token, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, token string) error {
	s.c.Set(s.slot, token, s.ttl)
	return nil
}

func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.c.Delete(s.slot)
	return nil
}
