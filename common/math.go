package common

import (
	"math"
)

// TwoPi is a full turn in radians, rounded to float32.
// float32(2π) is slightly larger than the true 2π; angle normalization uses this value as
// the period so that float32 multiples of TwoPi wrap to exactly 0.
const TwoPi = float32(2 * math.Pi)

// period is TwoPi widened to float64.
var period = float64(TwoPi)

// NormalizeAngle wraps an angle in radians into the canonical range [0, 2π).
// A single floating-point modulo is evaluated in float64, so the result does not
// depend on how many full turns were accumulated in the input. An input of TwoPi
// normalizes to 0 and negative angles wrap to the top of the range.
//
// Non-finite input (NaN, ±Inf) has no meaningful angle and normalizes to 0.
//
// Parameters:
//   - angle: the angle in radians
//
// Returns:
//   - float32: the equivalent angle in [0, 2π)
func NormalizeAngle(angle float32) float32 {
	a := float64(angle)
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}

	a = math.Mod(a, period)
	if a < 0 {
		a += period
	}

	// Narrowing can round values just below 2π up to TwoPi.
	out := float32(a)
	if out >= TwoPi {
		return 0
	}
	return out
}

// IsFinite reports whether v is neither NaN nor infinite.
//
// Parameters:
//   - v: the value to check
//
// Returns:
//   - bool: true if v is a finite number
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// DegToRad converts degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: angle in radians
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180.0)
}
