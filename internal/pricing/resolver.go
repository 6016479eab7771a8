package pricing

import (
	"github.com/ahsanlabs/storefront-service/internal/catalog"
)

// Outcome classifies a successful coupon application.
type Outcome string

const (
	// PartialDiscount carries a final price for cart/checkout use.
	PartialDiscount Outcome = "partial_discount"
	// FullyUnlocked means a 100% discount: the product's delivery link
	// is surfaced instead of a cart-eligible price.
	FullyUnlocked Outcome = "fully_unlocked"
)

// Applied is the result of a successful coupon resolution. FinalPrice
// keeps full precision; rounding happens only at display time so cart
// totals summed over lines do not compound rounding errors.
type Applied struct {
	Coupon         Coupon  `json:"coupon"`
	BasePrice      float64 `json:"basePrice"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
	Outcome        Outcome `json:"outcome"`

	// DeliveryLink is set only for FullyUnlocked.
	DeliveryLink string `json:"deliveryLink,omitempty"`
}

// Resolve computes the discounted price for a matched coupon. Pure
// computation; session-state checks live on Session.
func Resolve(p catalog.Product, coupon Coupon) Applied {
	var discount float64
	switch coupon.Kind {
	case KindFixed:
		discount = coupon.Discount
	default:
		discount = p.Price * coupon.Discount / 100
	}

	// Catalog discounts are trusted to be <= 100, but clamp anyway so a
	// bad record can never produce a negative price.
	final := p.Price - discount
	if final < 0 {
		discount = p.Price
		final = 0
	}

	applied := Applied{
		Coupon:         coupon,
		BasePrice:      p.Price,
		DiscountAmount: discount,
		FinalPrice:     final,
		Outcome:        PartialDiscount,
	}

	if coupon.Kind == KindPercentage && coupon.Discount == 100 {
		applied.Outcome = FullyUnlocked
		applied.DeliveryLink = p.ProductLink
	}

	return applied
}
