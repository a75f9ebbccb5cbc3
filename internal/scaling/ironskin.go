package scaling

import "math"

const ironSkinBaseOverguard = 1200

var destructTable = [...]float64{12, 25, 37, 50, 60, 65}

// DestructPct is the per-stack Destruct bonus for rank 0-5.
func DestructPct(rank int) float64 {
	return destructTable[clampInt(rank, 0, len(destructTable)-1)]
}

// IronSkinBreakdown splits Iron Skin overguard into its sources.
type IronSkinBreakdown struct {
	Base            float64 `json:"base"`
	ArmorMultiplier float64 `json:"armorMultiplier"`
	TotalArmor      float64 `json:"totalArmor"`
	EnemyDamage     float64 `json:"enemyDamage"`
	Total           float64 `json:"total"`
}

// IronSkinOverguard is Iron Skin's pool at level: strength-scaled base and
// warframe armor plus the absorbed enemy damage.
func IronSkinOverguard(p Params, level float64) IronSkinBreakdown {
	r, _ := p.Reflective()
	is := r.IronSkin
	str := StrengthMultiplier(p)
	armor := math.Max(0, is.BaseArmor)*pctMul(is.ArmorIncreasePct) + math.Max(0, is.ArmorAdded)

	b := IronSkinBreakdown{
		Base:            ironSkinBaseOverguard * str,
		ArmorMultiplier: 2.5 * str,
		TotalArmor:      armor,
	}
	if p.BaseDamage > 0 {
		b.EnemyDamage = EnemyDamageAt(p, level) * DifficultyFactor(p.Difficulty)
	}
	b.Total = b.Base + b.ArmorMultiplier*b.TotalArmor + b.EnemyDamage
	return b
}

// IronSkinDetonation is the Shrapnel burst from a full Iron Skin pool.
func IronSkinDetonation(p Params, level float64) float64 {
	r, _ := p.Reflective()
	is := r.IronSkin
	og := IronSkinOverguard(p, level).Total
	destruct := 1 + DestructPct(is.DestructRank)/100*float64(max(0, is.DestructStacks))
	return og * AbilityDamageMultiplier(p) * RoarMultiplier(p) *
		StatusDamageMultiplier(p.StatusStacks) * VulnerabilityMultiplier(p) * destruct
}
