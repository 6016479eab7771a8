package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
)

func courseProduct() catalog.Product {
	return catalog.Product{
		ID:          "1",
		Name:        "Premium Digital Course",
		Price:       149.99,
		ProductLink: "https://downloads.example.com/course",
	}
}

func TestMatchGlobalCoupons(t *testing.T) {
	src := SourcesFor(courseProduct(), false)

	tests := []struct {
		input    string
		want     string
		discount float64
	}{
		{"WELCOME10", "WELCOME10", 10},
		{"welcome10", "WELCOME10", 10},
		{"  Mega30  ", "MEGA30", 30},
		{"ahsanlabsmega", "AHSANLABSMEGA", 15},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, ok := Match(tt.input, src)
			require.True(t, ok)
			assert.Equal(t, tt.want, c.Code)
			assert.Equal(t, tt.discount, c.Discount)
			assert.Equal(t, KindPercentage, c.Kind)
		})
	}
}

func TestMatchRejectsUnknownAndEmptyCodes(t *testing.T) {
	src := SourcesFor(courseProduct(), false)

	for _, input := range []string{"NOPE", "", "   "} {
		_, ok := Match(input, src)
		assert.False(t, ok, "input %q must not match", input)
	}
}

func TestMatchSpecialCodeRequiresPositiveDiscount(t *testing.T) {
	p := courseProduct()
	p.SpecialCode = "CAPLABS"
	p.SpecialDiscount = 100

	c, ok := Match("caplabs", SourcesFor(p, false))
	require.True(t, ok)
	assert.Equal(t, "CAPLABS", c.Code)
	assert.Equal(t, float64(100), c.Discount)

	p.SpecialDiscount = 0
	_, ok = Match("caplabs", SourcesFor(p, false))
	assert.False(t, ok, "special code without a discount is not a coupon")
}

func TestMatchScratchCodeOnlyAfterGateFires(t *testing.T) {
	p := courseProduct()
	p.IsScratch = true
	p.ScratchCoupon = "SCRATCH50"
	p.ScratchDiscount = 50

	_, ok := Match("SCRATCH50", SourcesFor(p, false))
	assert.False(t, ok, "scratch code is locked until the gate fires")

	c, ok := Match("SCRATCH50", SourcesFor(p, true))
	require.True(t, ok)
	assert.Equal(t, float64(50), c.Discount)
}

func TestResolvePartialDiscount(t *testing.T) {
	// End-to-end scenario: 149.99 with WELCOME10 (10%).
	applied := Resolve(courseProduct(), Coupon{Code: "WELCOME10", Discount: 10, Kind: KindPercentage})

	assert.Equal(t, PartialDiscount, applied.Outcome)
	assert.InDelta(t, 134.991, applied.FinalPrice, 1e-9, "internal value stays unrounded")
	assert.Equal(t, "134.99", FormatPrice(applied.FinalPrice))
	assert.Empty(t, applied.DeliveryLink)
}

func TestResolveFullyUnlocked(t *testing.T) {
	applied := Resolve(courseProduct(), Coupon{Code: "CAPLABS", Discount: 100, Kind: KindPercentage})

	assert.Equal(t, FullyUnlocked, applied.Outcome)
	assert.Zero(t, applied.FinalPrice)
	assert.Equal(t, "https://downloads.example.com/course", applied.DeliveryLink)
}

func TestResolveAnyDiscountBelowHundredIsPartial(t *testing.T) {
	applied := Resolve(courseProduct(), Coupon{Code: "ALMOST", Discount: 99.9, Kind: KindPercentage})
	assert.Equal(t, PartialDiscount, applied.Outcome)
	assert.Empty(t, applied.DeliveryLink)
}

func TestResolveClampsNegativePrices(t *testing.T) {
	p := courseProduct()
	p.Price = 10

	applied := Resolve(p, Coupon{Code: "BIGFIXED", Discount: 25, Kind: KindFixed})
	assert.Zero(t, applied.FinalPrice)
	assert.Equal(t, float64(10), applied.DiscountAmount)
	assert.Equal(t, PartialDiscount, applied.Outcome, "fixed discounts never unlock delivery")
}

func TestResolveFixedDiscount(t *testing.T) {
	applied := Resolve(courseProduct(), Coupon{Code: "FLAT20", Discount: 20, Kind: KindFixed})
	assert.InDelta(t, 129.99, applied.FinalPrice, 1e-9)
}

func TestSessionRejectsSecondApplication(t *testing.T) {
	p := courseProduct()
	session := NewSession(0)

	_, err := session.Apply(p, "WELCOME10")
	require.NoError(t, err)

	// Re-application is rejected even with the same code.
	_, err = session.Apply(p, "WELCOME10")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	_, err = session.Apply(p, "MEGA30")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestSessionInvalidCodeLeavesStateUntouched(t *testing.T) {
	p := courseProduct()
	session := NewSession(0)

	_, err := session.Apply(p, "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, ok := session.Applied()
	assert.False(t, ok)

	// A valid code still works after a rejection.
	_, err = session.Apply(p, "MEGA30")
	assert.NoError(t, err)
}

func TestSessionScratchRevealAutoApplies(t *testing.T) {
	p := courseProduct()
	p.IsScratch = true
	p.ScratchCoupon = "SCRATCH50"
	p.ScratchDiscount = 50
	session := NewSession(0)

	assert.Nil(t, session.RecordReveal(p, 20))

	applied := session.RecordReveal(p, 62)
	require.NotNil(t, applied)
	assert.Equal(t, "SCRATCH50", applied.Coupon.Code)
	assert.InDelta(t, 74.995, applied.FinalPrice, 1e-9)

	// Additional reveal reports after firing are no-ops.
	assert.Nil(t, session.RecordReveal(p, 95))
}

func TestSessionScratchRevealSwallowedWhenCouponApplied(t *testing.T) {
	p := courseProduct()
	p.IsScratch = true
	p.ScratchCoupon = "SCRATCH50"
	p.ScratchDiscount = 50
	session := NewSession(0)

	_, err := session.Apply(p, "WELCOME10")
	require.NoError(t, err)

	assert.Nil(t, session.RecordReveal(p, 90), "completion must not stack a second coupon")

	applied, ok := session.Applied()
	require.True(t, ok)
	assert.Equal(t, "WELCOME10", applied.Coupon.Code)
}

func TestSessionResetAllowsReapplication(t *testing.T) {
	p := courseProduct()
	session := NewSession(0)

	_, err := session.Apply(p, "WELCOME10")
	require.NoError(t, err)

	session.Reset()
	_, ok := session.Applied()
	assert.False(t, ok)
	assert.False(t, session.Gate().Fired())

	_, err = session.Apply(p, "MEGA30")
	assert.NoError(t, err)
}

func TestFormatListPrice(t *testing.T) {
	assert.Equal(t, "1,000", FormatListPrice(1000))
	assert.Equal(t, "149.99", FormatListPrice(149.99))
}

func TestGlobalCouponMath(t *testing.T) {
	// For every global coupon: final = price * (1 - discount/100).
	p := courseProduct()
	for _, c := range GlobalCoupons() {
		applied := Resolve(p, c)
		want := p.Price * (1 - c.Discount/100)
		assert.InDelta(t, want, applied.FinalPrice, 1e-9, c.Code)
	}
}
