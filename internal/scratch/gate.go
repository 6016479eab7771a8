// Package scratch implements the completion gate behind the
// scratch-card discount. The rendering side samples how much of the
// overlay has been erased and reports the fraction here; the gate
// decides when the hidden coupon unlocks.
package scratch

// DefaultThreshold is the revealed percentage at which the gate fires.
const DefaultThreshold = 50.0

// Completion is emitted exactly once per session when the revealed
// fraction first crosses the threshold.
type Completion struct {
	// RevealedPercent is the fraction reported on the call that fired.
	RevealedPercent float64
}

// Gate tracks the maximum revealed fraction for one product-viewing
// session and fires at most once. Not safe for concurrent use; a
// session belongs to a single shopper interaction.
type Gate struct {
	threshold   float64
	maxRevealed float64
	fired       bool
}

// NewGate creates a gate with the given threshold percentage. A
// non-positive threshold falls back to DefaultThreshold.
func NewGate(threshold float64) *Gate {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Gate{threshold: threshold}
}

// RecordReveal reports the current revealed percentage (0-100) and
// returns a Completion the first time the running maximum exceeds the
// threshold. Every later call returns nil, regardless of fraction.
func (g *Gate) RecordReveal(revealedPercent float64) *Completion {
	if revealedPercent > g.maxRevealed {
		g.maxRevealed = revealedPercent
	}
	if g.fired || g.maxRevealed <= g.threshold {
		return nil
	}
	g.fired = true
	return &Completion{RevealedPercent: revealedPercent}
}

// Fired reports whether the completion event has been emitted.
func (g *Gate) Fired() bool {
	return g.fired
}

// Revealed returns the maximum revealed percentage seen this session.
func (g *Gate) Revealed() float64 {
	return g.maxRevealed
}

// Reset returns the gate to its initial state, used when the shopper
// navigates to a different product.
func (g *Gate) Reset() {
	g.maxRevealed = 0
	g.fired = false
}
