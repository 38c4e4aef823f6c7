// Package queue bounds the CPU-heavy password hashing work so bcrypt can
// never saturate the goroutines serving requests.
package queue

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

const defaultSlots = 4

// HashPool runs bcrypt operations behind a fixed number of slots. Callers
// block until a slot frees up or their context is cancelled; the request
// framework keeps serving other traffic in the meantime.
type HashPool struct {
	slots chan struct{}
	cost  int
}

// NewHashPool creates a pool with size concurrent slots hashing at the
// given bcrypt cost. Out-of-range values fall back to defaults.
func NewHashPool(size, cost int) *HashPool {
	if size <= 0 {
		size = defaultSlots
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &HashPool{
		slots: make(chan struct{}, size),
		cost:  cost,
	}
}

// Hash derives a bcrypt hash for the password.
func (p *HashPool) Hash(ctx context.Context, password string) (string, error) {
	if err := p.acquire(ctx); err != nil {
		return "", err
	}
	defer p.release()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks a password against a stored hash. A mismatch surfaces as
// bcrypt.ErrMismatchedHashAndPassword.
func (p *HashPool) Compare(ctx context.Context, hash, password string) error {
	if err := p.acquire(ctx); err != nil {
		return err
	}
	defer p.release()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (p *HashPool) acquire(ctx context.Context) error {
	select {
	case p.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *HashPool) release() {
	<-p.slots
}
