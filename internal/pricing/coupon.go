// Package pricing implements the coupon-and-pricing resolution engine:
// matching a candidate code against the merged coupon sources for a
// product-viewing session and computing the discounted price.
package pricing

import (
	"errors"
	"strings"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
)

// Kind classifies how a coupon's discount magnitude is interpreted.
type Kind string

const (
	// KindPercentage discounts a percentage of the base price.
	KindPercentage Kind = "percentage"
	// KindFixed discounts a fixed amount off the base price.
	KindFixed Kind = "fixed"
)

// Coupon is a discount code. Codes match case-insensitively.
type Coupon struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Kind     Kind    `json:"type"`
}

var (
	// ErrInvalidCode means the code matched no candidate coupon.
	ErrInvalidCode = errors.New("invalid coupon code")

	// ErrAlreadyApplied means a coupon was already applied this session.
	// Re-application is rejected even with the same code.
	ErrAlreadyApplied = errors.New("coupon already applied")
)

// GlobalCoupons returns the static promotional code list. Every
// product-detail session merges these with the product's own special
// and scratch codes.
func GlobalCoupons() []Coupon {
	return []Coupon{
		{Code: "AHSANLABSMEGA", Discount: 15, Kind: KindPercentage},
		{Code: "WELCOME10", Discount: 10, Kind: KindPercentage},
		{Code: "MEGA30", Discount: 30, Kind: KindPercentage},
	}
}

// Sources is the merged candidate set for one product-viewing session,
// passed explicitly so precedence is a visible contract: the global
// list is checked first, then the product's special code, then the
// scratch code once the reveal gate has fired.
type Sources struct {
	Global []Coupon

	SpecialCode     string
	SpecialDiscount float64

	ScratchCode     string
	ScratchDiscount float64
	ScratchUnlocked bool
}

// SourcesFor builds the candidate set for a product. scratchUnlocked
// reflects whether the reveal gate for this session has fired.
func SourcesFor(p catalog.Product, scratchUnlocked bool) Sources {
	src := Sources{
		Global:          GlobalCoupons(),
		SpecialCode:     p.SpecialCode,
		SpecialDiscount: p.SpecialDiscount,
		ScratchUnlocked: scratchUnlocked,
	}
	if p.IsScratch {
		src.ScratchCode = p.ScratchCoupon
		src.ScratchDiscount = p.ScratchDiscount
	}
	return src
}

// Match resolves a candidate code against the sources. The input is
// trimmed and compared case-insensitively.
func Match(code string, src Sources) (Coupon, bool) {
	input := strings.ToLower(strings.TrimSpace(code))
	if input == "" {
		return Coupon{}, false
	}

	for _, c := range src.Global {
		if strings.ToLower(c.Code) == input {
			return c, true
		}
	}

	// The special code only counts when the product defines both the
	// code and a positive discount.
	if src.SpecialCode != "" && src.SpecialDiscount > 0 &&
		strings.ToLower(src.SpecialCode) == input {
		return Coupon{Code: src.SpecialCode, Discount: src.SpecialDiscount, Kind: KindPercentage}, true
	}

	if src.ScratchUnlocked && src.ScratchCode != "" && src.ScratchDiscount > 0 &&
		strings.ToLower(src.ScratchCode) == input {
		return Coupon{Code: src.ScratchCode, Discount: src.ScratchDiscount, Kind: KindPercentage}, true
	}

	return Coupon{}, false
}
