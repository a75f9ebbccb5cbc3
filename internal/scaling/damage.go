package scaling

import "math"

// DamageMultiplierGeneric is 1+0.015·d^1.55.
func DamageMultiplierGeneric(level, baseLevel float64) float64 {
	d := levelDelta(level, baseLevel)
	return 1 + 0.015*math.Pow(d, 1.55)
}

// DamageMultiplierCGT blends 1+0.015·d^1.75 into 1+0.0075·d^1.55 over d in [1,25].
func DamageMultiplierCGT(level, baseLevel float64) float64 {
	d := levelDelta(level, baseLevel)
	f1 := 1 + 0.015*math.Pow(d, 1.75)
	f2 := 1 + 0.0075*math.Pow(d, 1.55)
	var s float64
	switch {
	case d < 1:
		s = 0
	case d > 25:
		s = 1
	default:
		t := (d - 1) / 24
		s = 3*t*t - 2*t*t*t
	}
	return f1*(1-s) + f2*s
}

// FactionDamageBaseMultiplier is 2 for Corpus/Grineer/Techrot, 3 for Infested, else 1.
func FactionDamageBaseMultiplier(f Faction) float64 {
	s, _ := FactionSpec(f)
	return s.DamageBase
}

// DamageMultiplier is the faction's enemy damage scaling at level.
func DamageMultiplier(level, baseLevel float64, f Faction) float64 {
	s, _ := FactionSpec(f)
	var scale float64
	switch s.Damage {
	case DamageCGT:
		scale = DamageMultiplierCGT(level, baseLevel)
	default:
		scale = DamageMultiplierGeneric(level, baseLevel)
	}
	return scale * s.DamageBase
}

// EnemyDamageAt is the enemy's scaled damage; difficulty is not applied.
func EnemyDamageAt(p Params, level float64) float64 {
	if p.BaseDamage <= 0 {
		return 0
	}
	return p.BaseDamage * DamageMultiplier(level, p.BaseLevel, p.Faction)
}

// StatusDamageMultiplier maps 0-10 Viral/Magnetic stacks to 1x, 2x .. 4.25x.
func StatusDamageMultiplier(stacks int) float64 {
	s := clampInt(stacks, 0, 10)
	if s == 0 {
		return 1
	}
	return 2 + 0.25*float64(s-1)
}
