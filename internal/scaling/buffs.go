package scaling

import "math"

const precisionIntensifyBonus = 90

// StrengthMultiplier is ability strength as a non-negative factor (100% = 1).
func StrengthMultiplier(p Params) float64 {
	return math.Max(0, p.AbilityStrengthPct/100)
}

// AbilityDamageMultiplier is 1 + ability damage%.
func AbilityDamageMultiplier(p Params) float64 {
	return pctMul(p.AbilityDamagePct)
}

// ToxinShardMultiplier is 1 + toxin damage%.
func ToxinShardMultiplier(p Params) float64 {
	return pctMul(p.ToxinDamagePct)
}

// RoarStrengthPct is the strength Roar sees, +90 with Precision Intensify.
func RoarStrengthPct(p Params) float64 {
	s := math.Max(0, p.AbilityStrengthPct)
	if p.Roar.PrecisionIntensify {
		s += precisionIntensifyBonus
	}
	return s
}

// RoarMultiplier is 1 + base·strength with base 0.5, or 0.3 when subsumed.
func RoarMultiplier(p Params) float64 {
	if !p.Roar.Enabled {
		return 1
	}
	base := 0.5
	if p.Roar.Subsume {
		base = 0.3
	}
	return 1 + base*RoarStrengthPct(p)/100
}

// NourishStrengthPct is the strength Nourish sees, +90 with Precision Intensify.
func NourishStrengthPct(p Params) float64 {
	s := math.Max(0, p.AbilityStrengthPct)
	if p.Nourish.PrecisionIntensify {
		s += precisionIntensifyBonus
	}
	return s
}

// NourishPct is the Nourish bonus in percent: 0.75, or 0.45 when subsumed, times strength.
func NourishPct(p Params) float64 {
	base := 0.75
	if p.Nourish.Subsume {
		base = 0.45
	}
	return base * NourishStrengthPct(p)
}

// NourishMultiplier is 1 + NourishPct when enabled. Callers decide blocking.
func NourishMultiplier(p Params) float64 {
	if !p.Nourish.Enabled {
		return 1
	}
	return pctMul(NourishPct(p))
}

// strengthDelta is 1 + (strength-100)/100 floored at zero.
func strengthDelta(p Params) float64 {
	return math.Max(0, 1+(p.AbilityStrengthPct-100)/100)
}

// ToxinDot is the toxin damage-over-time tail following an initial toxin hit.
func ToxinDot(initial float64, p Params, toxinEnabled bool) float64 {
	if !toxinEnabled || initial <= 0 {
		return 0
	}
	return initial * 0.5 * RoarMultiplier(p) * ToxinShardMultiplier(p) * 6
}
