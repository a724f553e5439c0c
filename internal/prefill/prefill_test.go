package prefill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tawdev/mahtaaj-sub005/internal/cache"
)

func TestRoundTrip(t *testing.T) {
	store := NewStore(cache.NewMemory(), time.Minute)
	ctx := context.Background()

	payload := Payload{
		Family:   "tapis-canapes",
		Message:  "Grand tapis du salon",
		SizeHint: "200x300",
	}

	token, err := store.Save(ctx, payload)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a non-empty token")
	}

	loaded, err := store.Load(ctx, token)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded != payload {
		t.Fatalf("round trip mismatch: %+v vs %+v", loaded, payload)
	}

	if err := store.Remove(ctx, token); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := store.Load(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestLoadUnknownToken(t *testing.T) {
	store := NewStore(cache.NewMemory(), time.Minute)
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore(cache.NewMemory(), time.Minute)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := store.Save(ctx, Payload{Message: "x"})
		if err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}
