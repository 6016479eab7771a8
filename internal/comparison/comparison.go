// Package comparison implements the side-by-side comparison list: an
// insertion-ordered set of at most four product ids.
package comparison

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ahsanlabs/storefront-service/internal/kvstore"
)

// MaxEntries caps the comparison list. The UI renders at most four
// columns side by side.
const MaxEntries = 4

// ErrFull signals that toggling on a fifth product was rejected. The
// caller surfaces it as a disabled affordance, not a failure.
var ErrFull = errors.New("comparison list is full")

// Listener receives the new list size after every mutation.
type Listener func(size int)

// List is the comparison aggregate over the kvstore port.
type List struct {
	store     kvstore.Store
	logger    zerolog.Logger
	mu        sync.Mutex
	listeners []Listener
}

// New creates a comparison list over the given store.
func New(store kvstore.Store) *List {
	return &List{
		store:  store,
		logger: log.With().Str("component", "comparison").Logger(),
	}
}

// OnChange registers a listener notified after every mutation.
func (l *List) OnChange(fn Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// IDs returns the product ids in insertion order.
func (l *List) IDs() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Contains reports whether a product is on the list.
func (l *List) Contains(productID string) (bool, error) {
	ids, err := l.IDs()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle removes the product if present, appends it if absent and the
// list has room, and returns ErrFull when a fifth entry is rejected.
// Rejection leaves membership unchanged.
func (l *List) Toggle(productID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids, err := l.load()
	if err != nil {
		return err
	}

	for i, id := range ids {
		if id == productID {
			return l.save(append(ids[:i], ids[i+1:]...))
		}
	}

	if len(ids) >= MaxEntries {
		return ErrFull
	}
	return l.save(append(ids, productID))
}

// Clear empties the list.
func (l *List) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save([]string{})
}

// load reads the persisted list, failing closed to empty on corrupt
// state.
func (l *List) load() ([]string, error) {
	data, ok, err := l.store.Get(kvstore.KeyComparison)
	if err != nil {
		return nil, fmt.Errorf("failed to load comparison list: %w", err)
	}
	if !ok {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		l.logger.Warn().Err(err).Msg("Corrupt comparison state, resetting to empty")
		return []string{}, nil
	}
	return ids, nil
}

// save persists the list and notifies listeners with the new size.
func (l *List) save(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison list: %w", err)
	}
	if err := l.store.Set(kvstore.KeyComparison, data); err != nil {
		return fmt.Errorf("failed to persist comparison list: %w", err)
	}

	for _, fn := range l.listeners {
		fn(len(ids))
	}
	return nil
}
