package trig

import "math"

// Wrap maps v into the half-open interval [min(lo,hi), max(lo,hi)) using
// floored modulo, so negative inputs wrap to the top of the range.
// A zero-width interval returns hi. Results that rounding pushes onto hi,
// or that stay below lo because the quotient underflows, fold to lo.
func Wrap(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		return hi
	}
	r := v - span*math.Floor((v-lo)/span)
	if r < lo || r >= hi {
		return lo
	}
	return r
}

// Clamp restricts v to [min(lo,hi), max(lo,hi)]. NaN is returned unchanged.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
