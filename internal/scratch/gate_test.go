package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateFiresOnceAboveThreshold(t *testing.T) {
	gate := NewGate(DefaultThreshold)

	assert.Nil(t, gate.RecordReveal(10))
	assert.Nil(t, gate.RecordReveal(50), "exactly at threshold must not fire")
	assert.False(t, gate.Fired())

	done := gate.RecordReveal(50.1)
	require.NotNil(t, done)
	assert.InDelta(t, 50.1, done.RevealedPercent, 0.001)
	assert.True(t, gate.Fired())
}

func TestGateIsIdempotentAfterFiring(t *testing.T) {
	gate := NewGate(DefaultThreshold)

	require.NotNil(t, gate.RecordReveal(80))
	for i := 0; i < 10; i++ {
		assert.Nil(t, gate.RecordReveal(90), "no duplicate completion events")
	}
	assert.True(t, gate.Fired())
}

func TestGateTracksMonotonicMaximum(t *testing.T) {
	gate := NewGate(DefaultThreshold)

	gate.RecordReveal(40)
	gate.RecordReveal(20)
	assert.InDelta(t, 40, gate.Revealed(), 0.001)

	// A lower reading after crossing does not un-fire the gate.
	require.NotNil(t, gate.RecordReveal(60))
	assert.Nil(t, gate.RecordReveal(5))
	assert.True(t, gate.Fired())
}

func TestGateReset(t *testing.T) {
	gate := NewGate(DefaultThreshold)
	require.NotNil(t, gate.RecordReveal(99))

	gate.Reset()
	assert.False(t, gate.Fired())
	assert.Zero(t, gate.Revealed())

	// A fresh session can fire again.
	require.NotNil(t, gate.RecordReveal(75))
}

func TestGateConfigurableThreshold(t *testing.T) {
	gate := NewGate(30)
	assert.Nil(t, gate.RecordReveal(30))
	require.NotNil(t, gate.RecordReveal(31))

	// Non-positive thresholds fall back to the default.
	fallback := NewGate(0)
	assert.Nil(t, fallback.RecordReveal(49))
	require.NotNil(t, fallback.RecordReveal(51))
}
