package scaling

import "math"

var sqrt5 = math.Sqrt(5)

// PiecewiseCoeffs describes 1+a·d^p below the 70-80 transition and 1+k·d^q above it.
type PiecewiseCoeffs struct {
	A, P float64
	K, Q float64
}

// DamageFamily picks the enemy damage curve shape.
type DamageFamily int

const (
	DamageGeneric DamageFamily = iota
	DamageCGT                  // Corpus / Grineer / Techrot
)

// FactionCurveSpec holds a faction's scaling constants.
type FactionCurveSpec struct {
	Health        PiecewiseCoeffs
	Shield        PiecewiseCoeffs
	ShieldScaling bool
	Damage        DamageFamily
	DamageBase    float64
	Label         string
	Color         string
}

var factionSpecs = map[Faction]FactionCurveSpec{
	Grineer: {
		Health:        PiecewiseCoeffs{A: 0.015, P: 2.12, K: 24 * sqrt5 / 5, Q: 0.72},
		Shield:        PiecewiseCoeffs{A: 0.02, P: 1.75, K: 1.6, Q: 0.75},
		ShieldScaling: true,
		Damage:        DamageCGT,
		DamageBase:    2,
		Label:         "Grineer / Scaldra",
		Color:         "#ef4444",
	},
	Corpus: {
		Health:        PiecewiseCoeffs{A: 0.015, P: 2.12, K: 30 * sqrt5 / 5, Q: 0.55},
		Shield:        PiecewiseCoeffs{A: 0.02, P: 1.76, K: 2.0, Q: 0.76},
		ShieldScaling: true,
		Damage:        DamageCGT,
		DamageBase:    2,
		Label:         "Corpus",
		Color:         "#3b82f6",
	},
	Infested: {
		Health:     PiecewiseCoeffs{A: 0.0225, P: 2.12, K: 36 * sqrt5 / 5, Q: 0.72},
		Damage:     DamageGeneric,
		DamageBase: 3,
		Label:      "Infested",
		Color:      "#22c55e",
	},
	Corrupted: {
		Health:        PiecewiseCoeffs{A: 0.015, P: 2.10, K: 24 * sqrt5 / 5, Q: 0.685},
		Shield:        PiecewiseCoeffs{A: 0.02, P: 1.75, K: 2.0, Q: 0.75},
		ShieldScaling: true,
		Damage:        DamageGeneric,
		DamageBase:    1,
		Label:         "Corrupted",
		Color:         "#f59e0b",
	},
	Sentient:     murmurLike(),
	Murmur:       murmurLike(),
	Unaffiliated: murmurLike(),
	Techrot: {
		Health:        PiecewiseCoeffs{A: 0.02, P: 2.12, K: 15.1, Q: 0.7},
		Shield:        PiecewiseCoeffs{A: 0.02, P: 1.76, K: 3.5, Q: 0.76},
		ShieldScaling: true,
		Damage:        DamageCGT,
		DamageBase:    2,
		Label:         "Techrot",
		Color:         "#f97316",
	},
}

// Sentient, Murmur and Unaffiliated share one curve set.
func murmurLike() FactionCurveSpec {
	return FactionCurveSpec{
		Health:        PiecewiseCoeffs{A: 0.015, P: 2.0, K: 24 * sqrt5 / 5, Q: 0.5},
		Shield:        PiecewiseCoeffs{A: 0.02, P: 1.75, K: 2.0, Q: 0.75},
		ShieldScaling: true,
		Damage:        DamageGeneric,
		DamageBase:    1,
		Label:         "Murmur / Sentient / Unaffiliated",
		Color:         "#8b5cf6",
	}
}

// unknownFaction keeps lookups total: flat curves, generic damage.
var unknownFaction = FactionCurveSpec{
	ShieldScaling: true,
	Damage:        DamageGeneric,
	DamageBase:    1,
	Color:         "#9ca3af",
}

// FactionSpec returns the curve constants for f.
func FactionSpec(f Faction) (FactionCurveSpec, bool) {
	s, ok := factionSpecs[f]
	if !ok {
		s = unknownFaction
		s.Label = string(f)
	}
	return s, ok
}

// Factions lists every known faction in display order.
func Factions() []Faction {
	return []Faction{Grineer, Corpus, Infested, Corrupted, Sentient, Murmur, Unaffiliated, Techrot}
}

// ComparisonFactions is the default faction set for comparison plots.
func ComparisonFactions() []Faction {
	return []Faction{Grineer, Corpus, Infested, Corrupted, Murmur, Techrot}
}

// HasShieldScaling reports whether the faction's shields scale at all.
// Infested shields do not, which zeroes their final shield.
func HasShieldScaling(f Faction) bool {
	s, _ := FactionSpec(f)
	return s.ShieldScaling
}

func (c PiecewiseCoeffs) at(d float64) float64 {
	return BlendPiecewise(d, 70, 10, powCurve(c.A, c.P), powCurve(c.K, c.Q))
}

// HealthPiecewise is the health multiplier for d = max(level-baseLevel, 0).
func HealthPiecewise(level, baseLevel, a, p, k, q float64) float64 {
	return PiecewiseCoeffs{A: a, P: p, K: k, Q: q}.at(levelDelta(level, baseLevel))
}

// ShieldPiecewise has the same shape as HealthPiecewise with shield coefficients.
func ShieldPiecewise(level, baseLevel, a, p1, b, p2 float64) float64 {
	return PiecewiseCoeffs{A: a, P: p1, K: b, Q: p2}.at(levelDelta(level, baseLevel))
}

// HealthMultiplier is the faction health curve at level.
func HealthMultiplier(f Faction, level, baseLevel float64) float64 {
	s, ok := FactionSpec(f)
	if !ok {
		return 1
	}
	return s.Health.at(levelDelta(level, baseLevel))
}

// ShieldMultiplier is the faction shield curve at level; 1 for factions without shield scaling.
func ShieldMultiplier(f Faction, level, baseLevel float64) float64 {
	s, ok := FactionSpec(f)
	if !ok || !s.ShieldScaling {
		return 1
	}
	return s.Shield.at(levelDelta(level, baseLevel))
}
