package scaling

// EHPAt is the effective HP at level: armor-inflated health plus shield and
// overguard. True damage ignores shield and armor; true toxin ignores shield.
func EHPAt(p Params, level float64) float64 {
	hs := EnemyHealthShield(p, level)
	og := EnemyOverguard(p, level)
	if p.TrueDamage {
		return hs.Health + og
	}
	sh := hs.Shield
	if p.TrueToxin {
		sh = 0
	}
	hp := hs.Health
	dr := ScaledArmorWithStrip(p, level).DR
	if p.BaseArmor > 0 && dr > 0 && dr < 0.99 {
		hp /= 1 - dr
	}
	return hp + sh + og
}
