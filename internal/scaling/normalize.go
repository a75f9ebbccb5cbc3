package scaling

import "math"

const (
	MaxTargetLevel = 9999
	MaxBaseHealth  = 10000
	MaxBaseShield  = 10000
	MinBaseArmor   = 200
	MaxBaseArmor   = 1000
)

// Normalize clamps p into the ranges the calculator accepts and applies the
// ability-implied flags. It is idempotent.
func Normalize(p Params) Params {
	p.BaseLevel = math.Max(1, nanTo(p.BaseLevel, 1))
	p.BaseHealth = clampFloat(p.BaseHealth, 1, MaxBaseHealth)
	p.BaseShield = clampFloat(p.BaseShield, 0, MaxBaseShield)
	p.BaseArmor = snapArmor(p.BaseArmor)
	p.BaseDamage = math.Max(0, nanTo(p.BaseDamage, 0))
	p.CorrosiveStacks = clampInt(p.CorrosiveStacks, 0, maxCorrosiveStacks)
	p.CPPct = clampFloat(p.CPPct, 0, 100)
	p.StatusStacks = clampInt(p.StatusStacks, 0, 10)
	p.TargetLevel = clampFloat(p.TargetLevel, 1, MaxTargetLevel)
	p.AbilityStrengthPct = math.Max(0, nanTo(p.AbilityStrengthPct, 0))
	p.AbilityDamagePct = math.Max(0, nanTo(p.AbilityDamagePct, 0))
	p.ToxinDamagePct = math.Max(0, nanTo(p.ToxinDamagePct, 0))

	switch cfg := p.Config.(type) {
	case Reflective:
		cfg.RadiationStacks = clampInt(cfg.RadiationStacks, 0, 10)
		cfg.MindControlPct = math.Max(0, nanTo(cfg.MindControlPct, 0))
		cfg.SummonersWrath.Pct = math.Max(0, nanTo(cfg.SummonersWrath.Pct, 0))
		cfg.IronSkin.DestructRank = clampInt(cfg.IronSkin.DestructRank, 0, len(destructTable)-1)
		cfg.IronSkin.DestructStacks = max(0, cfg.IronSkin.DestructStacks)
		cfg.IronSkin.BaseArmor = math.Max(0, nanTo(cfg.IronSkin.BaseArmor, 0))
		cfg.IronSkin.ArmorIncreasePct = math.Max(0, nanTo(cfg.IronSkin.ArmorIncreasePct, 0))
		cfg.IronSkin.ArmorAdded = math.Max(0, nanTo(cfg.IronSkin.ArmorAdded, 0))
		if cfg.Ability == "" {
			cfg.Ability = ReflectiveNone
		}
		p.Config = cfg
	case LevelScaling:
		cfg.FeastEnemyCount = clampInt(cfg.FeastEnemyCount, 1, 5)
		cfg.Arachne.Rank = clampInt(cfg.Arachne.Rank, 0, 5)
		if cfg.UntimeRift {
			cfg.VastUntime = true
		}
		if cfg.Ability == "" {
			cfg.Ability = LevelNone
		}
		if cfg.Ability == Feast {
			p.TrueToxin = true
		}
		p.Config = cfg
	case HealthScaling:
		cfg.ReapEnemyCount = clampInt(cfg.ReapEnemyCount, 1, 20)
		if cfg.Ability == "" {
			cfg.Ability = HealthNone
		}
		if cfg.Ability == Regurgitate {
			p.TrueToxin = !cfg.RegurgitateGastro
		}
		p.Config = cfg
	}
	return p
}

// snapArmor maps armor into {0} ∪ [200,1000].
func snapArmor(a float64) float64 {
	a = clampFloat(a, 0, MaxBaseArmor)
	if a > 0 && a < MinBaseArmor {
		return MinBaseArmor
	}
	return a
}

func nanTo(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return v
}

// EffectiveEnemyType picks the enemy type from the visible eximus curves.
// With both visible it takes the variant with more health at the target level.
func EffectiveEnemyType(p Params, t Toggles) EnemyType {
	switch {
	case t.EximusDef && t.EximusNoDef:
		def := HealthEximusDefAt(p.TargetLevel, p.BaseLevel, p.Faction, p.BaseHealth)
		noDef := HealthEximusNoDefAt(p.TargetLevel, p.BaseLevel, p.Faction, p.BaseHealth)
		if def >= noDef {
			return EximusDefenses
		}
		return EximusNoDefenses
	case t.EximusDef:
		return EximusDefenses
	case t.EximusNoDef:
		return EximusNoDefenses
	}
	return EnemyNormal
}
