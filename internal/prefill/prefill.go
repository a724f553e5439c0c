// Package prefill is the ephemeral staging area carrying a hint (free-text
// message, size estimate, selected family) from a generic details page into a
// category-specific booking page. Entries are token-keyed, TTL-bound and read
// back at most a handful of times before the booking replaces them.
package prefill

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tawdev/mahtaaj-sub005/internal/cache"
)

const keyPrefix = "prefill:"

var ErrNotFound = errors.New("prefill not found")

type Payload struct {
	Family   string `json:"family,omitempty"`
	ItemID   string `json:"itemId,omitempty"`
	Message  string `json:"message,omitempty"`
	SizeHint string `json:"sizeHint,omitempty"`
}

type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(cacheStore cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: cacheStore, ttl: ttl}
}

// Save stages a payload and returns the token the next page uses to read it.
func (s *Store) Save(ctx context.Context, payload Payload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, keyPrefix+token, raw, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Load(ctx context.Context, token string) (Payload, error) {
	raw, ok, err := s.cache.Get(ctx, keyPrefix+token)
	if err != nil {
		return Payload{}, err
	}
	if !ok {
		return Payload{}, ErrNotFound
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Payload{}, err
	}
	return payload, nil
}

func (s *Store) Remove(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, keyPrefix+token)
}
