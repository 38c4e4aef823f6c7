package queue

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPool_Roundtrip(t *testing.T) {
	pool := NewHashPool(2, bcrypt.MinCost)
	ctx := context.Background()

	hash, err := pool.Hash(ctx, "Idontknow123$")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "Idontknow123$" {
		t.Fatal("hash equals plaintext")
	}

	if err := pool.Compare(ctx, hash, "Idontknow123$"); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
}

func TestHashPool_Mismatch(t *testing.T) {
	pool := NewHashPool(2, bcrypt.MinCost)
	ctx := context.Background()

	hash, err := pool.Hash(ctx, "Idontknow123$")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	err = pool.Compare(ctx, hash, "wrong-password")
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Fatalf("expected ErrMismatchedHashAndPassword, got %v", err)
	}
}

func TestHashPool_CancelledContext(t *testing.T) {
	// One slot, held for the duration of the test, so the second caller
	// can only exit via its context.
	pool := NewHashPool(1, bcrypt.MinCost)
	pool.slots <- struct{}{}
	defer func() { <-pool.slots }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := pool.Hash(ctx, "whatever"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := pool.Compare(ctx, "hash", "whatever"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewHashPool_Defaults(t *testing.T) {
	pool := NewHashPool(0, 99)
	if cap(pool.slots) != defaultSlots {
		t.Fatalf("expected %d slots, got %d", defaultSlots, cap(pool.slots))
	}
	if pool.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", pool.cost)
	}
}
