package scaling

import "math"

// ArachnePct is the Arcane Arachne bonus in percent for rank 0-5.
func ArachnePct(rank int) float64 {
	return 25 * float64(clampInt(rank, 0, 5)+1)
}

// LevelMultiplier is the level bucket factor for a scale kind.
func LevelMultiplier(scale LevelScale, level float64) float64 {
	if scale == LevelScalePerLevel {
		return math.Max(1, level)
	}
	return math.Max(1, math.Ceil(level/10))
}

// FeastDamageAt is Feast's toxin hit before vulnerability and armor.
func FeastDamageAt(p Params, level float64) float64 {
	spec := levelSpecs[Feast]
	ls, _ := p.LevelScaling()
	count := clampInt(ls.FeastEnemyCount, 1, 5)
	sum := ((level*float64(count))-1)/15 + 1
	return spec.Base * StrengthMultiplier(p) * sum * AbilityDamageMultiplier(p) *
		RoarMultiplier(p) * StatusDamageMultiplier(p.StatusStacks)
}

// LevelDamageAt is the selected level ability's raw damage at level.
func LevelDamageAt(p Params, level float64) float64 {
	ls, ok := p.LevelScaling()
	if !ok {
		return 0
	}
	if ls.Ability == Feast {
		return FeastDamageAt(p, level)
	}
	spec, ok := LookupLevelSpec(ls.Ability)
	if !ok {
		return 0
	}

	m := spec.Base * StrengthMultiplier(p) * LevelMultiplier(spec.Scale, level) * RoarMultiplier(p)
	if spec.UsesAbilityDamage {
		m *= AbilityDamageMultiplier(p)
	}
	if spec.UsesNourish {
		m *= NourishMultiplier(p)
	}
	if spec.UsesStatus {
		m *= StatusDamageMultiplier(p.StatusStacks)
	}
	if spec.AllowVauban && ls.VaubanPassive {
		m *= 1.25
	}
	if spec.AllowOverdriver && ls.Overdriver {
		m *= 1 + 0.25*math.Max(0, p.AbilityStrengthPct)/100
	}
	if spec.VastUntime {
		switch {
		case ls.UntimeRift:
			m *= 2.25
		case ls.VastUntime:
			m *= 1.5
		}
	}
	if ls.Ability == FlechetteOrb {
		if ls.Arachne.Enabled {
			m *= 1 + ArachnePct(ls.Arachne.Rank)/100
		}
		if ls.HolsterAmp {
			m *= 1.6
		}
		if ls.VigorousSwap {
			m *= 2.65
		}
	}
	return m
}
