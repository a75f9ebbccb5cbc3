package scaling

import "math"

// Clamp01 limits t to [0,1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Smoothstep01 is the cubic ease 3u²-2u³ on u = Clamp01(t).
func Smoothstep01(t float64) float64 {
	u := Clamp01(t)
	return 3*u*u - 2*u*u*u
}

// BlendPiecewise returns low(d) below threshold, high(d) above threshold+width,
// and a smoothstep-weighted mix of the two in between.
func BlendPiecewise(d, threshold, width float64, low, high func(float64) float64) float64 {
	if d < threshold {
		return low(d)
	}
	if d > threshold+width {
		return high(d)
	}
	s := Smoothstep01((d - threshold) / width)
	return (1-s)*low(d) + s*high(d)
}

// levelDelta is the distance above the base level, never negative.
func levelDelta(level, baseLevel float64) float64 {
	return math.Max(level-baseLevel, 0)
}

// powCurve builds 1 + coef*d^exp.
func powCurve(coef, exp float64) func(float64) float64 {
	return func(d float64) float64 { return 1 + coef*math.Pow(d, exp) }
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pctMul converts a non-negative percentage bonus into a multiplier.
func pctMul(pct float64) float64 {
	return 1 + math.Max(0, pct)/100
}
