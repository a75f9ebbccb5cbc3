package scaling

import "math"

// MarkedForDeathPct is the MfD share, 75% base up to 150% with strength.
func MarkedForDeathPct(strengthPct float64) float64 {
	return clampFloat(0.75*math.Max(0, strengthPct)/100, 0.75, 1.5)
}

// markedForDeath adds min(markPct·dmg, hpCap) to dmg.
func markedForDeath(dmg float64, p Params, hpCap float64) float64 {
	if dmg <= 0 || hpCap <= 0 {
		return dmg
	}
	return dmg + math.Min(MarkedForDeathPct(p.AbilityStrengthPct)*dmg, hpCap)
}

// SmiteResult splits Smite into its components.
type SmiteResult struct {
	Main    float64 `json:"main"`
	AoE     float64 `json:"aoe"`
	MainPct float64 `json:"mainPct"`
	AoEPct  float64 `json:"aoePct"`
	MfDPct  float64 `json:"mfdPct"`
}

// SmiteDamageAt computes Smite before vulnerability and armor. Smite reads
// the difficulty-scaled HP and then applies the difficulty factor once more,
// so Steel Path enemies take 2.5x the scaled-HP share.
func SmiteDamageAt(p Params, level float64) SmiteResult {
	spec := healthSpecs[Smite]
	hs, _ := p.HealthScaling()
	str := StrengthMultiplier(p)

	capMain, capAoE := spec.CapMain, spec.CapAoE
	if hs.Smite.Subsume {
		capMain, capAoE = spec.CapMainSubsume, spec.CapAoESubsume
	}
	res := SmiteResult{
		MainPct: math.Min(capMain, spec.BaseMainPct*str),
		AoEPct:  math.Min(capAoE, spec.BaseAoEPct*str),
	}

	hp := EnemyHealthShield(p, level).Health * DifficultyFactor(p.Difficulty)
	chain := StatusDamageMultiplier(p.StatusStacks) * RoarMultiplier(p) * AbilityDamageMultiplier(p)
	if hs.Smite.Single {
		res.Main = hp * res.MainPct * chain
		if hs.Smite.MarkedForDeath {
			res.Main = markedForDeath(res.Main, p, hp)
			res.MfDPct = MarkedForDeathPct(p.AbilityStrengthPct) * 100
		}
	}
	if hs.Smite.AoE {
		res.AoE = hp * res.AoEPct * chain
	}
	return res
}

// EnergyVampireDamageAt is Energy Vampire's true damage before vulnerability.
func EnergyVampireDamageAt(p Params, level float64) float64 {
	hs, _ := p.HealthScaling()
	hp := EnemyHealthShield(p, level).Health
	dmg := hp * healthSpecs[EnergyVampire].BasePct * StrengthMultiplier(p) *
		AbilityDamageMultiplier(p) * RoarMultiplier(p) * StatusDamageMultiplier(p.StatusStacks)
	if hs.Smite.MarkedForDeath {
		dmg = markedForDeath(dmg, p, hp)
	}
	return dmg
}

// ReavePct is Reave's effective share of HP.
func ReavePct(p Params) float64 {
	spec := healthSpecs[Reave]
	hs, _ := p.HealthScaling()
	base := spec.BasePct
	if hs.ReaveEnthrall {
		base = spec.EnthrallPct
	}
	return base * StrengthMultiplier(p)
}

// ReaveDamageAt is Reave's drain before vulnerability. Status does not apply.
func ReaveDamageAt(p Params, level float64) float64 {
	hp := EnemyHealthShield(p, level).Health
	return hp * ReavePct(p) * RoarMultiplier(p) * AbilityDamageMultiplier(p)
}

// ReapSowResult splits Reap/Sow into the true hit and the mitigated Blast.
type ReapSowResult struct {
	True      float64 `json:"true"`
	Blast     float64 `json:"blast"`
	Total     float64 `json:"total"`
	VulnPct   float64 `json:"vulnPct"`
	BlastHits int     `json:"blastHits"`
}

// ReapSowDamageAt computes Reap/Sow with globalVuln folded into the buff chain.
// Blast is absorbed by shields first and the rest is reduced by armor.
func ReapSowDamageAt(p Params, level, globalVuln float64) ReapSowResult {
	spec := healthSpecs[ReapSow]
	hs, _ := p.HealthScaling()

	res := ReapSowResult{
		VulnPct:   spec.VulnBasePct * StrengthMultiplier(p),
		BlastHits: clampInt(hs.ReapEnemyCount, 1, 20) - 1,
	}
	buff := StatusDamageMultiplier(p.StatusStacks) * RoarMultiplier(p) *
		AbilityDamageMultiplier(p) * (1 + res.VulnPct) * globalVuln

	def := EnemyHealthShield(p, level)
	dr := ScaledArmorWithStrip(p, level).DR
	res.True = def.Health * spec.BasePct * buff

	blast := math.Max(0, def.Health*spec.BasePct*buff*float64(res.BlastHits))
	blocked := math.Min(def.Shield, blast)
	res.Blast = blocked + (blast-blocked)*(1-dr)
	res.Total = res.True + res.Blast
	return res
}

// ElementalWardDamageAt is the initial toxin hit before vulnerability.
func ElementalWardDamageAt(p Params, level float64) float64 {
	hp := EnemyHealthShield(p, level).Health
	return healthSpecs[ElementalWard].BasePct * hp * AbilityDamageMultiplier(p) *
		RoarMultiplier(p) * StatusDamageMultiplier(p.StatusStacks)
}

// RegurgitateDamageAt is the initial toxin hit including vulnerability. The
// HP share is read at the target level, so the curve is flat across samples.
func RegurgitateDamageAt(p Params) float64 {
	hp := EnemyHealthShield(p, math.Max(1, p.TargetLevel)).Health
	base := healthSpecs[Regurgitate].BaseDamage*StrengthMultiplier(p) + 0.1*hp
	return base * AbilityDamageMultiplier(p) * RoarMultiplier(p) *
		StatusDamageMultiplier(p.StatusStacks) * VulnerabilityMultiplier(p)
}
