// Package numeric provides guards against non-finite floating point values.
//
// The learning and consolidation formulas combine reciprocals, random samples,
// and accumulated strengths; a NaN or infinity produced anywhere upstream must
// never reach persisted state. Every helper here replaces an invalid value
// with an explicit default instead of surfacing an error.
package numeric

import "math"

// Default replacement values for sanitized fields.
//
// These are the documented per-field defaults applied whenever a non-finite
// value is encountered before serialization.
const (
	// DefaultStrength is the replacement for an invalid pattern strength.
	DefaultStrength = 0.5

	// DefaultFrequency is the replacement for an invalid word frequency.
	DefaultFrequency = 1.0

	// DefaultValence is the replacement for an invalid emotional valence or weight.
	DefaultValence = 0.0

	// DefaultWeight is the replacement for an invalid semantic weight.
	DefaultWeight = 1.0

	// DefaultRelevance is the replacement for an invalid relevance score.
	DefaultRelevance = 1.0

	// DefaultContextRelevance is the replacement for an invalid temporal
	// context relevance.
	DefaultContextRelevance = 1.0

	// DefaultAwareness is the replacement for an invalid awareness depth.
	DefaultAwareness = 0.5

	// DefaultAlignment is the replacement for an invalid contextual alignment.
	DefaultAlignment = 0.7
)

// IsFinite reports whether v is a normal, usable float (not NaN, not ±Inf).
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SafeFloat returns v if it is finite, otherwise def.
func SafeFloat(v, def float64) float64 {
	if IsFinite(v) {
		return v
	}
	return def
}

// SafeDivide divides num by den, returning def when the denominator is zero
// or non-finite, or when the quotient itself is non-finite.
func SafeDivide(num, den, def float64) float64 {
	if den == 0 || !IsFinite(den) {
		return def
	}
	return SafeFloat(num/den, def)
}

// Clamp restricts v to [min, max]. A non-finite v collapses to the midpoint
// of the range before clamping.
func Clamp(v, min, max float64) float64 {
	v = SafeFloat(v, (min+max)/2)
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
