package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmind/sigmem-go/pkg/numeric"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, numeric.IsFinite(0.0))
	assert.True(t, numeric.IsFinite(-1.5))
	assert.True(t, numeric.IsFinite(math.MaxFloat64))
	assert.False(t, numeric.IsFinite(math.NaN()))
	assert.False(t, numeric.IsFinite(math.Inf(1)))
	assert.False(t, numeric.IsFinite(math.Inf(-1)))
}

func TestSafeFloat(t *testing.T) {
	assert.InDelta(t, 0.3, numeric.SafeFloat(0.3, 1.0), 1e-9)
	assert.InDelta(t, 1.0, numeric.SafeFloat(math.NaN(), 1.0), 1e-9)
	assert.InDelta(t, 1.0, numeric.SafeFloat(math.Inf(1), 1.0), 1e-9)
}

func TestSafeDivide(t *testing.T) {
	assert.InDelta(t, 2.0, numeric.SafeDivide(4.0, 2.0, 0.0), 1e-9)
	assert.InDelta(t, 0.5, numeric.SafeDivide(1.0, 0.0, 0.5), 1e-9)
	assert.InDelta(t, 0.5, numeric.SafeDivide(1.0, math.NaN(), 0.5), 1e-9)
	assert.InDelta(t, 0.5, numeric.SafeDivide(math.NaN(), 1.0, 0.5), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.InDelta(t, 0.5, numeric.Clamp(0.5, 0.0, 1.0), 1e-9)
	assert.InDelta(t, 0.0, numeric.Clamp(-3.0, 0.0, 1.0), 1e-9)
	assert.InDelta(t, 1.0, numeric.Clamp(7.0, 0.0, 1.0), 1e-9)
	assert.InDelta(t, 0.5, numeric.Clamp(math.NaN(), 0.0, 1.0), 1e-9,
		"non-finite input collapses to the range midpoint")
}
