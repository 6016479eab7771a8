// Package cart implements the shopping cart aggregate: one
// quantity-bearing line item per product, persisted through the
// kvstore port on every mutation.
package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ahsanlabs/storefront-service/internal/kvstore"
)

// LineItem is one cart line. Price is the unit price at the time of
// adding; a later catalog price change does not touch existing lines.
type LineItem struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image,omitempty"`
	Quantity      int     `json:"quantity"`
	AppliedCoupon string  `json:"appliedCoupon,omitempty"`
}

// Listener receives the new line count after every mutation, used by
// presentation layers to refresh badge counters.
type Listener func(count int)

// Cart is the cart aggregate. Safe for use from a single shopper
// session; the underlying store is last-write-wins.
type Cart struct {
	store     kvstore.Store
	logger    zerolog.Logger
	mu        sync.Mutex
	listeners []Listener
}

// New creates a cart over the given store.
func New(store kvstore.Store) *Cart {
	return &Cart{
		store:  store,
		logger: log.With().Str("component", "cart").Logger(),
	}
}

// OnChange registers a listener notified after every mutation.
func (c *Cart) OnChange(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Items returns all cart lines in insertion order.
func (c *Cart) Items() ([]LineItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Add appends a line, or replaces the existing line for the same
// product wholesale: the price/quantity snapshot is overwritten, not
// summed, so a re-add with a coupon-discounted price discards the old
// line entirely.
func (c *Cart) Add(item LineItem) error {
	if item.ProductID == "" {
		return fmt.Errorf("line item product id is required")
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	return c.save(items)
}

// SetQuantity updates the stored quantity in place, preserving the
// snapshotted unit price. A quantity of zero or less removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return c.save(items)
		}
	}
	return nil
}

// Remove deletes the line if present; absent lines are a no-op.
func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return c.save(kept)
}

// Total sums snapshotted unit price times quantity over all lines. It
// never re-fetches current catalog prices.
func (c *Cart) Total() (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total, nil
}

// Count returns the number of cart lines.
func (c *Cart) Count() (int, error) {
	items, err := c.Items()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save([]LineItem{})
}

// load reads the persisted cart. Malformed stored JSON fails closed to
// an empty cart; this is session state, not a system of record.
func (c *Cart) load() ([]LineItem, error) {
	data, ok, err := c.store.Get(kvstore.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if !ok {
		return []LineItem{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn().Err(err).Msg("Corrupt cart state, resetting to empty")
		return []LineItem{}, nil
	}
	return items, nil
}

// save persists the cart and notifies listeners with the new count.
func (c *Cart) save(items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := c.store.Set(kvstore.KeyCart, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	recordMutation(len(items))
	for _, fn := range c.listeners {
		fn(len(items))
	}
	return nil
}
