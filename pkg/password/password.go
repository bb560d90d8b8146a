// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes passwords with a configurable bcrypt cost.
type Hasher struct {
	cost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt cost. Values outside bcrypt's range fall back to bcrypt.DefaultCost.
func WithCost(cost int) Option {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// New returns a Hasher.
func New(opts ...Option) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}

	for _, opt := range opts {
		opt(h)
	}

	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		h.cost = bcrypt.DefaultCost
	}

	return h
}

// Hash returns the salted bcrypt digest of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	const op = "password.Hasher.Hash"

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	return string(digest), nil
}

// Verify reports whether plain matches digest. The comparison is constant time.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
