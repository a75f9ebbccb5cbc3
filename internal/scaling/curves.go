package scaling

import "math"

// BaseOverguard is the level-1 overguard pool of an Eximus.
const BaseOverguard = 12

// DifficultyFactor scales health, shield and ability hits on Steel Path.
func DifficultyFactor(d Difficulty) float64 {
	if d == DifficultySteel {
		return 2.5
	}
	return 1
}

// HealthAt is the scaled health of a normal enemy.
func HealthAt(level, baseLevel float64, f Faction, baseHealth float64) float64 {
	return baseHealth * HealthMultiplier(f, level, baseLevel)
}

// HealthEximusDefAt is the health of an Eximus with defenses.
func HealthEximusDefAt(level, baseLevel float64, f Faction, baseHealth float64) float64 {
	return HealthAt(level, baseLevel, f, baseHealth) * EximusHealthMultiplier(level, baseLevel, baseHealth)
}

// HealthEximusNoDefAt is the health of an Eximus without defenses.
func HealthEximusNoDefAt(level, baseLevel float64, f Faction, baseHealth float64) float64 {
	return HealthAt(level, baseLevel, f, baseHealth) * EximusHealthNoDefMultiplier(level, baseLevel, baseHealth)
}

// ShieldAt is the scaled shield of a normal enemy; zero without shield scaling.
func ShieldAt(level, baseLevel float64, f Faction, baseShield float64) float64 {
	if !HasShieldScaling(f) {
		return 0
	}
	return baseShield * ShieldMultiplier(f, level, baseLevel)
}

// ShieldEximusAt is the shield of an Eximus with defenses.
func ShieldEximusAt(level, baseLevel float64, f Faction, baseShield float64) float64 {
	if !HasShieldScaling(f) {
		return 0
	}
	return ShieldAt(level, baseLevel, f, baseShield) * EximusShieldMultiplier(level, baseLevel)
}

// eximusStep is the level-bucketed Eximus ramp, saturating past d=100.
func eximusStep(d float64) float64 {
	switch {
	case d <= 15:
		return 1.0
	case d <= 25:
		return 1.0 + 0.025*(d-15)
	case d <= 35:
		return 1.25 + 0.125*(d-25)
	case d <= 50:
		return 2.5 + (2.0/15)*(d-35)
	case d <= 100:
		return 4.5 + 0.03*(d-50)
	}
	return 6.0
}

func eximusHealth(coef, level, baseLevel, baseHealth float64) float64 {
	step := eximusStep(levelDelta(level, baseLevel))
	m := coef * ((baseHealth + 900) / math.Max(1, baseHealth)) * step
	return math.Max(1.1, m)
}

// EximusHealthMultiplier applies on top of the faction curve for Eximus with defenses.
func EximusHealthMultiplier(level, baseLevel, baseHealth float64) float64 {
	return eximusHealth(0.25, level, baseLevel, baseHealth)
}

// EximusHealthNoDefMultiplier applies for Eximus without defenses.
func EximusHealthNoDefMultiplier(level, baseLevel, baseHealth float64) float64 {
	return eximusHealth(0.375, level, baseLevel, baseHealth)
}

// EximusShieldMultiplier is the step ramp floored at 1.1.
func EximusShieldMultiplier(level, baseLevel float64) float64 {
	d := levelDelta(level, baseLevel)
	if d <= 15 {
		return 1.1
	}
	return math.Max(1.1, eximusStep(d))
}

// OverguardMultiplier blends 1+0.0015·d^4 into 1+260·d^0.9 for d = level-1 in [45,50].
// It keys off the raw level, not the distance from base level. Levels below 1
// clamp to 1.
func OverguardMultiplier(level float64) float64 {
	d := math.Max(0, level-1)
	f1 := 1 + 0.0015*math.Pow(d, 4)
	f2 := 1 + 260*math.Pow(d, 0.9)
	var s float64
	switch {
	case d < 45:
		s = 0
	case d <= 50:
		t := (d - 45) / 5
		s = 3*t*t - 2*t*t*t
	default:
		s = 1
	}
	return f1*(1-s) + f2*s
}

// OverguardAt is the Eximus overguard pool. It does not depend on faction or difficulty.
func OverguardAt(level float64) float64 {
	return BaseOverguard * OverguardMultiplier(level)
}

// HealthShield is an enemy's difficulty-adjusted health and shield.
type HealthShield struct {
	Health float64
	Shield float64
}

// EnemyHealthShield resolves health and shield for the enemy type in p,
// difficulty included. Eximus without defenses and unshielded factions have no shield.
func EnemyHealthShield(p Params, level float64) HealthShield {
	var hp, sh float64
	switch p.EnemyType {
	case EximusDefenses:
		hp = HealthEximusDefAt(level, p.BaseLevel, p.Faction, p.BaseHealth)
		sh = ShieldEximusAt(level, p.BaseLevel, p.Faction, p.BaseShield)
	case EximusNoDefenses:
		hp = HealthEximusNoDefAt(level, p.BaseLevel, p.Faction, p.BaseHealth)
	default:
		hp = HealthAt(level, p.BaseLevel, p.Faction, p.BaseHealth)
		sh = ShieldAt(level, p.BaseLevel, p.Faction, p.BaseShield)
	}
	if !HasShieldScaling(p.Faction) {
		sh = 0
	}
	diff := DifficultyFactor(p.Difficulty)
	return HealthShield{Health: hp * diff, Shield: sh * diff}
}

// EnemyOverguard is the overguard pool for p's enemy type at level.
func EnemyOverguard(p Params, level float64) float64 {
	if !p.EnemyType.IsEximus() {
		return 0
	}
	return OverguardAt(level)
}
