package scaling

// ScalingDamageAt is the ability damage dealt at level after each ability's
// own vulnerability and armor policy.
func ScalingDamageAt(p Params, level float64) float64 {
	vuln := VulnerabilityMultiplier(p)
	dr := ScaledArmorWithStrip(p, level).DR

	switch cfg := p.Config.(type) {
	case LevelScaling:
		if _, ok := LookupLevelSpec(cfg.Ability); !ok {
			return 0
		}
		raw := LevelDamageAt(p, level) * vuln
		total := ApplyArmorDR(raw, dr, false)
		if cfg.Ability == Feast {
			total += ApplyArmorDR(ToxinDot(raw, p, true), dr, false)
		}
		return total

	case HealthScaling:
		switch cfg.Ability {
		case Smite:
			s := SmiteDamageAt(p, level)
			return s.Main*vuln + ApplyArmorDR(s.AoE*vuln, dr, false)
		case Reave:
			return ReaveDamageAt(p, level) * vuln
		case EnergyVampire:
			return EnergyVampireDamageAt(p, level) * vuln
		case ReapSow:
			return ReapSowDamageAt(p, level, vuln).Total
		case ElementalWard:
			raw := ElementalWardDamageAt(p, level) * vuln
			return ApplyArmorDR(raw, dr, false) + ApplyArmorDR(ToxinDot(raw, p, true), dr, false)
		case Regurgitate:
			// vulnerability is already inside the hit and applies again here
			raw := RegurgitateDamageAt(p) * vuln
			dot := ToxinDot(raw, p, !cfg.RegurgitateGastro)
			return ApplyArmorDR(raw, dr, false) + ApplyArmorDR(dot, dr, false)
		}
		return 0

	case Reflective:
		return reflectiveDamageAt(p, cfg, level, vuln)
	}

	if p.BaseDamage > 0 {
		return p.BaseDamage * DamageMultiplier(level, p.BaseLevel, p.Faction) * ScalingMultiplier(p, true)
	}
	return 0
}

func reflectiveDamageAt(p Params, r Reflective, level, vuln float64) float64 {
	dm := DamageMultiplier(level, p.BaseLevel, p.Faction)
	status := StatusDamageMultiplier(p.StatusStacks)
	switch r.Ability {
	case Accuse:
		if p.BaseDamage <= 0 {
			return 0
		}
		return p.BaseDamage * dm * status * RoarMultiplier(p) * NourishMultiplier(p) *
			vuln * RadiationMultiplier(r.RadiationStacks)
	case Absorb:
		if p.BaseDamage <= 0 {
			return 0
		}
		return p.BaseDamage * dm * status * AbilityDamageMultiplier(p) * RoarMultiplier(p) * vuln
	case IronSkin:
		if !r.IronSkin.Shrapnel {
			return 0
		}
		return IronSkinDetonation(p, level)
	case ReflectiveNone, "":
		return 0
	}
	if p.BaseDamage <= 0 {
		return 0
	}
	return p.BaseDamage * dm * ScalingMultiplier(p, true)
}
