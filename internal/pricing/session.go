package pricing

import (
	"github.com/ahsanlabs/storefront-service/internal/catalog"
	"github.com/ahsanlabs/storefront-service/internal/scratch"
)

// Session holds the per-product-viewing state: whether a coupon has
// been applied, and the scratch-reveal gate. At most one coupon may be
// applied per session; the only way to change it is Reset, which
// mirrors reloading the product view.
type Session struct {
	gate    *scratch.Gate
	applied *Applied
}

// NewSession creates a session with the given scratch threshold
// percentage (non-positive falls back to scratch.DefaultThreshold).
func NewSession(scratchThreshold float64) *Session {
	return &Session{gate: scratch.NewGate(scratchThreshold)}
}

// Apply matches code against the session's candidate sources for p and
// records the result. Fails with ErrAlreadyApplied once a coupon is on
// the session, and ErrInvalidCode when nothing matches.
func (s *Session) Apply(p catalog.Product, code string) (Applied, error) {
	if s.applied != nil {
		recordResolution("", "already_applied")
		return Applied{}, ErrAlreadyApplied
	}

	coupon, ok := Match(code, SourcesFor(p, s.gate.Fired()))
	if !ok {
		recordResolution("", "invalid_code")
		return Applied{}, ErrInvalidCode
	}

	applied := Resolve(p, coupon)
	s.applied = &applied
	recordResolution(applied.Outcome, "")
	return applied, nil
}

// RecordReveal feeds a revealed percentage to the scratch gate and, on
// the one-time completion event, auto-applies the product's scratch
// coupon. Returns the application when it happened, nil otherwise.
// If a coupon is already applied the completion is swallowed, matching
// the stacking-prevention invariant.
func (s *Session) RecordReveal(p catalog.Product, revealedPercent float64) *Applied {
	done := s.gate.RecordReveal(revealedPercent)
	if done == nil {
		return nil
	}
	if !p.IsScratch || p.ScratchCoupon == "" || p.ScratchDiscount <= 0 {
		return nil
	}
	applied, err := s.Apply(p, p.ScratchCoupon)
	if err != nil {
		return nil
	}
	return &applied
}

// Applied returns the coupon application for this session, if any.
func (s *Session) Applied() (Applied, bool) {
	if s.applied == nil {
		return Applied{}, false
	}
	return *s.applied, true
}

// Gate exposes the session's scratch-reveal gate.
func (s *Session) Gate() *scratch.Gate {
	return s.gate
}

// Reset clears the applied coupon and the gate, used when the shopper
// navigates to a different product.
func (s *Session) Reset() {
	s.applied = nil
	s.gate.Reset()
}
