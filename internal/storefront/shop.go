// Package storefront composes the shopping aggregates into one
// embeddable facade: catalog lookup, the per-product coupon session,
// the cart, the comparison list, and the shopper's local memory.
package storefront

import (
	"fmt"

	"github.com/ahsanlabs/storefront-service/internal/cart"
	"github.com/ahsanlabs/storefront-service/internal/catalog"
	"github.com/ahsanlabs/storefront-service/internal/checkout"
	"github.com/ahsanlabs/storefront-service/internal/comparison"
	"github.com/ahsanlabs/storefront-service/internal/kvstore"
	"github.com/ahsanlabs/storefront-service/internal/pricing"
	"github.com/ahsanlabs/storefront-service/internal/shopper"
)

// Shop wires one shopper's session state over a shared kvstore and a
// read-only catalog.
type Shop struct {
	catalog  catalog.Store
	Cart     *cart.Cart
	Compare  *comparison.List
	Ratings  *shopper.Ratings
	Visitors *shopper.VisitorCounter
	Theme    *shopper.ThemeStore

	scratchThreshold float64

	// session state for the product currently being viewed
	session   *pricing.Session
	productID string
}

// New creates a shop over the given stores. scratchThreshold is the
// revealed percentage unlocking scratch coupons; non-positive uses the
// default.
func New(catalogStore catalog.Store, store kvstore.Store, scratchThreshold float64) *Shop {
	return &Shop{
		catalog:          catalogStore,
		Cart:             cart.New(store),
		Compare:          comparison.New(store),
		Ratings:          shopper.NewRatings(store),
		Visitors:         shopper.NewVisitorCounter(store),
		Theme:            shopper.NewThemeStore(store),
		scratchThreshold: scratchThreshold,
	}
}

// ViewProduct loads a product and opens a fresh coupon session for it,
// resetting any session state from a previously viewed product.
func (s *Shop) ViewProduct(id string) (catalog.Product, error) {
	p, err := s.catalog.GetByID(id)
	if err != nil {
		return catalog.Product{}, err
	}

	s.session = pricing.NewSession(s.scratchThreshold)
	s.productID = p.ID
	return p, nil
}

// Session returns the coupon session for the product being viewed.
func (s *Shop) Session() *pricing.Session {
	return s.session
}

// ApplyCoupon applies a code within the current product view.
func (s *Shop) ApplyCoupon(code string) (pricing.Applied, error) {
	p, err := s.viewedProduct()
	if err != nil {
		return pricing.Applied{}, err
	}
	return s.session.Apply(p, code)
}

// RecordReveal forwards scratch progress for the viewed product,
// auto-applying its scratch coupon when the gate fires.
func (s *Shop) RecordReveal(revealedPercent float64) (*pricing.Applied, error) {
	p, err := s.viewedProduct()
	if err != nil {
		return nil, err
	}
	return s.session.RecordReveal(p, revealedPercent), nil
}

// AddViewedToCart snapshots the viewed product into the cart at its
// session-resolved price. Fully unlocked products are not cart
// eligible; the delivery link replaces the buy flow.
func (s *Shop) AddViewedToCart(quantity int) error {
	p, err := s.viewedProduct()
	if err != nil {
		return err
	}

	price := p.Price
	couponCode := ""
	if applied, ok := s.session.Applied(); ok {
		if applied.Outcome == pricing.FullyUnlocked {
			return fmt.Errorf("product %s is fully unlocked; use the delivery link", p.ID)
		}
		price = applied.FinalPrice
		couponCode = applied.Coupon.Code
	}

	return s.Cart.Add(cart.LineItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         price,
		Image:         p.Image,
		Quantity:      quantity,
		AppliedCoupon: couponCode,
	})
}

// CheckoutLink renders the wa.me handoff for the current cart.
func (s *Shop) CheckoutLink() (string, error) {
	items, err := s.Cart.Items()
	if err != nil {
		return "", err
	}
	return checkout.CartLink(items), nil
}

func (s *Shop) viewedProduct() (catalog.Product, error) {
	if s.session == nil || s.productID == "" {
		return catalog.Product{}, fmt.Errorf("no product is being viewed")
	}
	return s.catalog.GetByID(s.productID)
}
