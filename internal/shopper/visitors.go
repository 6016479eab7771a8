package shopper

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/ahsanlabs/storefront-service/internal/kvstore"
)

// Visitor counter seed range. The counter is cosmetic social proof,
// not a real metric, so first use starts it somewhere believable.
const (
	visitorSeedMin  = 5000
	visitorSeedSpan = 10000
)

// VisitorCounter is a monotonically incremented page-load counter,
// seeded randomly on first use.
type VisitorCounter struct {
	store kvstore.Store
	// seed allows tests to pin the first value.
	seed func() int
}

// NewVisitorCounter creates the counter over the given store.
func NewVisitorCounter(store kvstore.Store) *VisitorCounter {
	return &VisitorCounter{
		store: store,
		seed:  func() int { return rand.Intn(visitorSeedSpan) + visitorSeedMin },
	}
}

// Get returns the current count, seeding it on first use or after
// corruption.
func (v *VisitorCounter) Get() (int, error) {
	data, ok, err := v.store.Get(kvstore.KeyVisitorCount)
	if err != nil {
		return 0, fmt.Errorf("failed to load visitor count: %w", err)
	}
	if ok {
		if n, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			return n, nil
		}
	}
	return v.seed(), nil
}

// Increment bumps the counter by one and persists the new value.
func (v *VisitorCounter) Increment() (int, error) {
	current, err := v.Get()
	if err != nil {
		return 0, err
	}

	next := current + 1
	if err := v.store.Set(kvstore.KeyVisitorCount, []byte(strconv.Itoa(next))); err != nil {
		return 0, fmt.Errorf("failed to persist visitor count: %w", err)
	}
	return next, nil
}
