// Package catalog provides the product list: a flat JSON document that
// is the single source of truth for everything the storefront sells.
// The core treats it as a read-only lookup table; the admin tool
// replaces it wholesale.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrProductNotFound is returned when a product id is absent from the
// loaded catalog.
var ErrProductNotFound = errors.New("product not found")

// Product is one sellable digital good. JSON field names match the
// products.json document consumed by the web client.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Features      []string `json:"features,omitempty"`
	OfferEndsAt   string   `json:"offerEndsAt,omitempty"`
	InStock       bool     `json:"inStock"`

	// Checkout handoff fields.
	WhatsappNumber  string `json:"whatsappNumber,omitempty"`
	WhatsappMessage string `json:"whatsappMessage,omitempty"`
	ProductLink     string `json:"productlink,omitempty"`

	// Scratch-card discount fields.
	IsScratch       bool    `json:"is_scratch"`
	ScratchDiscount float64 `json:"scratch_disc,omitempty"`
	ScratchCoupon   string  `json:"scratch_coupon,omitempty"`

	// Optional per-product special code.
	SpecialCode     string  `json:"specialcode,omitempty"`
	SpecialDiscount float64 `json:"specialdisc,omitempty"`
}

// SavingsPercent returns the rounded strikethrough discount between the
// list price and the current price, or 0 when there is nothing to show.
func (p Product) SavingsPercent() int {
	if p.OriginalPrice <= p.Price || p.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

// Validate checks the fields the rest of the system relies on. The
// admin tool rejects a catalog replacement containing an invalid
// product rather than persisting it.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("product id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: price must be non-negative", p.ID)
	}
	if p.OriginalPrice < 0 {
		return fmt.Errorf("product %s: originalPrice must be non-negative", p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %s: rating must be between 0 and 5", p.ID)
	}
	if p.ScratchDiscount < 0 || p.ScratchDiscount > 100 {
		return fmt.Errorf("product %s: scratch_disc must be between 0 and 100", p.ID)
	}
	if p.SpecialDiscount < 0 || p.SpecialDiscount > 100 {
		return fmt.Errorf("product %s: specialdisc must be between 0 and 100", p.ID)
	}
	if p.IsScratch && p.ScratchCoupon == "" {
		return fmt.Errorf("product %s: scratch_coupon is required when is_scratch is set", p.ID)
	}
	return nil
}

// ValidateAll validates every product and rejects duplicate ids.
func ValidateAll(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate product id: %s", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
