// Package shopper holds the shopper's own client-local memory: star
// ratings per product, the cosmetic visitor counter, and the theme
// preference. All of it lives behind the kvstore port and fails closed
// to defaults on corrupt state.
package shopper

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ahsanlabs/storefront-service/internal/kvstore"
)

// Ratings remembers the shopper's own 1-5 star vote per product. It is
// independent of the catalog's aggregate rating/review fields, which a
// vote never mutates.
type Ratings struct {
	store  kvstore.Store
	logger zerolog.Logger
}

// NewRatings creates the rating memory over the given store.
func NewRatings(store kvstore.Store) *Ratings {
	return &Ratings{
		store:  store,
		logger: log.With().Str("component", "ratings").Logger(),
	}
}

// Get returns the shopper's rating for a product, 0 when unrated.
func (r *Ratings) Get(productID string) (int, error) {
	ratings, err := r.load()
	if err != nil {
		return 0, err
	}
	return ratings[productID], nil
}

// Set stores the shopper's rating for a product. Ratings outside 1-5
// are rejected.
func (r *Ratings) Set(productID string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	ratings, err := r.load()
	if err != nil {
		return err
	}
	ratings[productID] = rating

	data, err := json.Marshal(ratings)
	if err != nil {
		return fmt.Errorf("failed to marshal ratings: %w", err)
	}
	if err := r.store.Set(kvstore.KeyRatings, data); err != nil {
		return fmt.Errorf("failed to persist ratings: %w", err)
	}
	return nil
}

// All returns the full product-id to rating map.
func (r *Ratings) All() (map[string]int, error) {
	return r.load()
}

func (r *Ratings) load() (map[string]int, error) {
	data, ok, err := r.store.Get(kvstore.KeyRatings)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	if !ok {
		return map[string]int{}, nil
	}

	var ratings map[string]int
	if err := json.Unmarshal(data, &ratings); err != nil {
		r.logger.Warn().Err(err).Msg("Corrupt ratings state, resetting to empty")
		return map[string]int{}, nil
	}
	if ratings == nil {
		ratings = map[string]int{}
	}
	return ratings, nil
}
