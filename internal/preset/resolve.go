// resolve.go
package preset

import (
	"fmt"
	"strings"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

// Overrides carries command-line overrides applied after every preset file.
// Nil fields leave the merged value alone.
type Overrides struct {
	Faction     *string
	EnemyType   *string
	Difficulty  *string
	BaseLevel   *float64
	BaseHealth  *float64
	BaseShield  *float64
	BaseArmor   *float64
	BaseDamage  *float64
	TargetLevel *float64

	StatusStacks       *int
	AbilityStrengthPct *float64
	AbilityDamagePct   *float64

	Mode              *string
	ReflectiveAbility *string
	LevelAbility      *string
	HealthAbility     *string

	XFrom *float64
	XTo   *float64
	YMax  *float64
}

// Raw expresses o as a preset layer.
func (o Overrides) Raw() RawPreset {
	var r RawPreset
	r.Enemy = EnemyCfg{
		Faction:     deref(o.Faction),
		Type:        deref(o.EnemyType),
		Difficulty:  deref(o.Difficulty),
		BaseLevel:   o.BaseLevel,
		BaseHealth:  o.BaseHealth,
		BaseShield:  o.BaseShield,
		BaseArmor:   o.BaseArmor,
		BaseDamage:  o.BaseDamage,
		TargetLevel: o.TargetLevel,
	}
	r.Modifiers = ModifierCfg{
		StatusStacks:       o.StatusStacks,
		AbilityStrengthPct: o.AbilityStrengthPct,
		AbilityDamagePct:   o.AbilityDamagePct,
	}
	r.Scaling.Mode = deref(o.Mode)
	r.Scaling.Reflective.Ability = deref(o.ReflectiveAbility)
	r.Scaling.Level.Ability = deref(o.LevelAbility)
	r.Scaling.Health.Ability = deref(o.HealthAbility)
	r.Axis = AxisCfg{XFrom: o.XFrom, XTo: o.XTo, YMax: o.YMax}
	return r
}

// Resolver yields merged presets and engine params.
type Resolver interface {
	// Resolve returns the merged RawPreset and its engine form.
	Resolve(name string, o Overrides) (RawPreset, Resolved, error)
}

// ToParams validates a merged preset and converts it into normalized engine params.
func ToParams(raw RawPreset) (scaling.Params, scaling.Toggles, error) {
	if err := ValidateRaw(raw); err != nil {
		return scaling.Params{}, scaling.Toggles{}, err
	}

	p := scaling.Params{
		Faction:    scaling.Faction(lower(raw.Enemy.Faction)),
		EnemyType:  scaling.EnemyType(lower(raw.Enemy.Type)),
		Difficulty: scaling.Difficulty(lower(raw.Enemy.Difficulty)),

		BaseLevel:   num(raw.Enemy.BaseLevel),
		BaseHealth:  num(raw.Enemy.BaseHealth),
		BaseShield:  num(raw.Enemy.BaseShield),
		BaseArmor:   num(raw.Enemy.BaseArmor),
		BaseDamage:  num(raw.Enemy.BaseDamage),
		TargetLevel: num(raw.Enemy.TargetLevel),

		HeatEnabled:     flag(raw.Strip.Heat),
		CorrosiveStacks: count(raw.Strip.CorrosiveStacks),
		CPPct:           num(raw.Strip.CPPct),

		StatusStacks:       count(raw.Modifiers.StatusStacks),
		AbilityStrengthPct: num(raw.Modifiers.AbilityStrengthPct),
		AbilityDamagePct:   num(raw.Modifiers.AbilityDamagePct),
		ToxinDamagePct:     num(raw.Modifiers.ToxinDamagePct),
		TrueDamage:         flag(raw.Modifiers.TrueDamage),
		TrueToxin:          flag(raw.Modifiers.TrueToxin),

		Roar:    buff(raw.Buffs.Roar),
		Nourish: scaling.NourishBuff(buff(raw.Buffs.Nourish)),

		Axis: scaling.AxisOverrides{
			XFrom: num(raw.Axis.XFrom),
			XTo:   num(raw.Axis.XTo),
			YMax:  num(raw.Axis.YMax),
		},
	}
	v := raw.Vulnerabilities
	p.Vulnerabilities = scaling.Vulnerabilities{
		AtlasPetrify:   flag(v.AtlasPetrify),
		CalibanWrath:   flag(v.CalibanWrath),
		EquinoxRage:    flag(v.EquinoxRage),
		GaraMass:       flag(v.GaraMass),
		GaraSplinter:   flag(v.GaraSplinter),
		JadeJudgements: flag(v.JadeJudgements),
		KhoraDome:      flag(v.KhoraDome),
		NezhaChakram:   flag(v.NezhaChakram),
		NovaPrime:      flag(v.NovaPrime),
		OraxiaEmbrace:  flag(v.OraxiaEmbrace),
		QorvexWall:     flag(v.QorvexWall),
		YareliSea:      flag(v.YareliSea),
		YareliMerulina: flag(v.YareliMerulina),
	}
	p.Config = scalingConfig(raw.Scaling)

	tg := raw.Toggles
	t := scaling.Toggles{
		Base:          flag(tg.Base),
		EximusDef:     flag(tg.EximusDef),
		EximusNoDef:   flag(tg.EximusNoDef),
		EnemyDamage:   flag(tg.EnemyDamage),
		ScalingDamage: flag(tg.ScalingDamage),
		EHP:           flag(tg.EHP),
	}
	return scaling.Normalize(p), t, nil
}

func scalingConfig(s ScalingCfg) scaling.ScalingConfig {
	switch scaling.ScalingMode(lower(s.Mode)) {
	case scaling.ModeReflective:
		r := s.Reflective
		return scaling.Reflective{
			Ability:         scaling.ReflectiveAbility(lower(r.Ability)),
			RadiationStacks: count(r.RadiationStacks),
			MindControlPct:  num(r.MindControlPct),
			SummonersWrath: scaling.SummonersWrath{
				Enabled: flag(r.SummonersWrath.Enabled),
				Pct:     num(r.SummonersWrath.Pct),
			},
			IronSkin: scaling.IronSkinOptions{
				Shrapnel:         flag(r.IronSkin.Shrapnel),
				DestructRank:     count(r.IronSkin.DestructRank),
				DestructStacks:   count(r.IronSkin.DestructStacks),
				BaseArmor:        num(r.IronSkin.BaseArmor),
				ArmorIncreasePct: num(r.IronSkin.ArmorIncreasePct),
				ArmorAdded:       num(r.IronSkin.ArmorAdded),
			},
		}
	case scaling.ModeLevel:
		l := s.Level
		return scaling.LevelScaling{
			Ability:         scaling.LevelAbility(lower(l.Ability)),
			FeastEnemyCount: count(l.FeastEnemyCount),
			VaubanPassive:   flag(l.VaubanPassive),
			Overdriver:      flag(l.Overdriver),
			Arachne:         scaling.ArcaneArachne{Enabled: flag(l.Arachne.Enabled), Rank: count(l.Arachne.Rank)},
			HolsterAmp:      flag(l.HolsterAmp),
			VigorousSwap:    flag(l.VigorousSwap),
			VastUntime:      flag(l.VastUntime),
			UntimeRift:      flag(l.UntimeRift),
		}
	case scaling.ModeHealth:
		h := s.Health
		return scaling.HealthScaling{
			Ability: scaling.HealthAbility(lower(h.Ability)),
			Smite: scaling.SmiteOptions{
				Single:         flag(h.Smite.Single),
				AoE:            flag(h.Smite.AoE),
				Subsume:        flag(h.Smite.Subsume),
				MarkedForDeath: flag(h.Smite.MarkedForDeath),
			},
			ReaveEnthrall:     flag(h.ReaveEnthrall),
			ReapEnemyCount:    count(h.ReapEnemyCount),
			RegurgitateGastro: flag(h.RegurgitateGastro),
		}
	}
	return nil
}

func buff(b BuffCfg) scaling.RoarBuff {
	return scaling.RoarBuff{
		Enabled:            flag(b.Enabled),
		Subsume:            flag(b.Subsume),
		PrecisionIntensify: flag(b.PrecisionIntensify),
	}
}

// ParseFaction validates a faction name.
func ParseFaction(s string) (scaling.Faction, error) {
	f := scaling.Faction(lower(s))
	if _, ok := scaling.FactionSpec(f); !ok {
		return "", fmt.Errorf("%w: unknown faction %q", ErrInvalidPreset, s)
	}
	return f, nil
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func num(v *float64) float64 { return deref(v) }
func count(v *int) int       { return deref(v) }
func flag(v *bool) bool      { return deref(v) }
