package scaling

// Summary is the target-level readout.
type Summary struct {
	Level               float64 `json:"level"`
	Health              float64 `json:"health"`
	HealthMultiplier    float64 `json:"healthMultiplier"`
	Shield              float64 `json:"shield"`
	ShieldMultiplier    float64 `json:"shieldMultiplier"`
	Overguard           float64 `json:"overguard"`
	OverguardMultiplier float64 `json:"overguardMultiplier"`
	Armor               float64 `json:"armor"`
	ArmorDR             float64 `json:"armorDR"`
	EHP                 float64 `json:"ehp"`
	EnemyDamage         float64 `json:"enemyDamage"`
	DamageMultiplier    float64 `json:"damageMultiplier"`
	ScalingDamage       float64 `json:"scalingDamage"`
	ScalingMultiplier   float64 `json:"scalingMultiplier"`

	Mode            ScalingMode          `json:"mode,omitempty"`
	Ability         string               `json:"ability,omitempty"`
	Vulnerability   float64              `json:"vulnerability"`
	Vulnerabilities []VulnerabilityEntry `json:"vulnerabilities,omitempty"`
	Reflective      *ReflectiveBreakdown `json:"reflective,omitempty"`
	IronSkin        *IronSkinBreakdown   `json:"ironSkin,omitempty"`
	Smite           *SmiteResult         `json:"smite,omitempty"`
	ReapSow         *ReapSowResult       `json:"reapSow,omitempty"`
}

// Summarize evaluates p at its target level.
func Summarize(p Params) Summary {
	lvl := p.TargetLevel
	hs := EnemyHealthShield(p, lvl)
	og := EnemyOverguard(p, lvl)
	armor := ScaledArmorWithStrip(p, lvl)
	vuln := VulnerabilityMultiplier(p)

	s := Summary{
		Level:               lvl,
		Health:              hs.Health,
		HealthMultiplier:    hs.Health / max(1, p.BaseHealth),
		Shield:              hs.Shield,
		Overguard:           og,
		OverguardMultiplier: og / BaseOverguard,
		Armor:               armor.Net,
		ArmorDR:             armor.DR,
		Mode:                p.Mode(),
		Vulnerability:       vuln,
		Vulnerabilities:     VulnerabilityEntries(p),
	}
	if p.TrueDamage || p.TrueToxin || !HasShieldScaling(p.Faction) || p.BaseShield == 0 || p.EnemyType == EximusNoDefenses {
		s.Shield = 0
	} else {
		s.ShieldMultiplier = s.Shield / max(1, p.BaseShield)
	}

	ogForEHP := og
	if hcfg, ok := p.HealthScaling(); ok && hcfg.Ability == Smite && hcfg.Smite.Single {
		ogForEHP = 0
	}
	hp := hs.Health
	if !p.TrueDamage && p.BaseArmor > 0 && armor.DR > 0 && armor.DR < 0.99 {
		hp /= 1 - armor.DR
	}
	s.EHP = hp + ogForEHP
	if !p.TrueDamage {
		s.EHP += s.Shield
	}

	if p.BaseDamage > 0 {
		s.DamageMultiplier = DamageMultiplier(lvl, p.BaseLevel, p.Faction)
		s.EnemyDamage = p.BaseDamage * s.DamageMultiplier
	}
	s.ScalingDamage = ScalingDamageAt(p, lvl)

	switch cfg := p.Config.(type) {
	case LevelScaling:
		s.Ability = string(cfg.Ability)
		if spec, ok := LookupLevelSpec(cfg.Ability); ok && spec.Base > 0 {
			s.ScalingMultiplier = s.ScalingDamage / spec.Base
		}
	case HealthScaling:
		s.Ability = string(cfg.Ability)
		switch cfg.Ability {
		case Smite:
			sm := SmiteDamageAt(p, lvl)
			s.Smite = &sm
		case ReapSow:
			rs := ReapSowDamageAt(p, lvl, vuln)
			s.ReapSow = &rs
		}
	case Reflective:
		s.Ability = string(cfg.Ability)
		parts := ReflectiveParts(p, cfg.Ability != DamageDecoy)
		s.Reflective = &parts
		dm := DamageMultiplier(lvl, p.BaseLevel, p.Faction)
		switch cfg.Ability {
		case Absorb:
			s.ScalingMultiplier = dm * StatusDamageMultiplier(p.StatusStacks) *
				AbilityDamageMultiplier(p) * vuln * RoarMultiplier(p)
		case IronSkin:
			is := IronSkinOverguard(p, lvl)
			s.IronSkin = &is
			if cfg.IronSkin.Shrapnel {
				s.ScalingMultiplier = 1
			}
		case ReflectiveNone, "":
		default:
			if p.BaseDamage > 0 {
				s.ScalingMultiplier = dm * ScalingMultiplier(p, true)
			}
		}
	default:
		if p.BaseDamage > 0 {
			s.ScalingMultiplier = s.DamageMultiplier * ScalingMultiplier(p, true)
		}
	}
	return s
}
