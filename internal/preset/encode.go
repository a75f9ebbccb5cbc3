package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

// Encode writes every engine input back into preset form. Resolving the
// result yields the normalized params and toggles again.
func Encode(p scaling.Params, t scaling.Toggles) RawPreset {
	raw := RawPreset{
		Enemy: EnemyCfg{
			Faction:     string(p.Faction),
			Type:        string(p.EnemyType),
			Difficulty:  string(p.Difficulty),
			BaseLevel:   ptr(p.BaseLevel),
			BaseHealth:  ptr(p.BaseHealth),
			BaseShield:  ptr(p.BaseShield),
			BaseArmor:   ptr(p.BaseArmor),
			BaseDamage:  ptr(p.BaseDamage),
			TargetLevel: ptr(p.TargetLevel),
		},
		Strip: StripCfg{
			Heat:            ptr(p.HeatEnabled),
			CorrosiveStacks: ptr(p.CorrosiveStacks),
			CPPct:           ptr(p.CPPct),
		},
		Modifiers: ModifierCfg{
			StatusStacks:       ptr(p.StatusStacks),
			AbilityStrengthPct: ptr(p.AbilityStrengthPct),
			AbilityDamagePct:   ptr(p.AbilityDamagePct),
			ToxinDamagePct:     ptr(p.ToxinDamagePct),
			TrueDamage:         ptr(p.TrueDamage),
			TrueToxin:          ptr(p.TrueToxin),
		},
		Buffs: BuffsCfg{
			Roar:    encodeBuff(p.Roar),
			Nourish: encodeBuff(scaling.RoarBuff(p.Nourish)),
		},
		Axis: AxisCfg{
			XFrom: ptr(p.Axis.XFrom),
			XTo:   ptr(p.Axis.XTo),
			YMax:  ptr(p.Axis.YMax),
		},
		Toggles: TogglesCfg{
			Base:          ptr(t.Base),
			EximusDef:     ptr(t.EximusDef),
			EximusNoDef:   ptr(t.EximusNoDef),
			EnemyDamage:   ptr(t.EnemyDamage),
			ScalingDamage: ptr(t.ScalingDamage),
			EHP:           ptr(t.EHP),
		},
	}
	v := p.Vulnerabilities
	raw.Vulnerabilities = VulnerabilityCfg{
		AtlasPetrify:   ptr(v.AtlasPetrify),
		CalibanWrath:   ptr(v.CalibanWrath),
		EquinoxRage:    ptr(v.EquinoxRage),
		GaraMass:       ptr(v.GaraMass),
		GaraSplinter:   ptr(v.GaraSplinter),
		JadeJudgements: ptr(v.JadeJudgements),
		KhoraDome:      ptr(v.KhoraDome),
		NezhaChakram:   ptr(v.NezhaChakram),
		NovaPrime:      ptr(v.NovaPrime),
		OraxiaEmbrace:  ptr(v.OraxiaEmbrace),
		QorvexWall:     ptr(v.QorvexWall),
		YareliSea:      ptr(v.YareliSea),
		YareliMerulina: ptr(v.YareliMerulina),
	}

	switch cfg := p.Config.(type) {
	case scaling.Reflective:
		raw.Scaling.Mode = string(scaling.ModeReflective)
		raw.Scaling.Reflective = ReflectiveCfg{
			Ability:         string(cfg.Ability),
			RadiationStacks: ptr(cfg.RadiationStacks),
			MindControlPct:  ptr(cfg.MindControlPct),
			SummonersWrath: SummonersWrathCfg{
				Enabled: ptr(cfg.SummonersWrath.Enabled),
				Pct:     ptr(cfg.SummonersWrath.Pct),
			},
			IronSkin: IronSkinCfg{
				Shrapnel:         ptr(cfg.IronSkin.Shrapnel),
				DestructRank:     ptr(cfg.IronSkin.DestructRank),
				DestructStacks:   ptr(cfg.IronSkin.DestructStacks),
				BaseArmor:        ptr(cfg.IronSkin.BaseArmor),
				ArmorIncreasePct: ptr(cfg.IronSkin.ArmorIncreasePct),
				ArmorAdded:       ptr(cfg.IronSkin.ArmorAdded),
			},
		}
	case scaling.LevelScaling:
		raw.Scaling.Mode = string(scaling.ModeLevel)
		raw.Scaling.Level = LevelCfg{
			Ability:         string(cfg.Ability),
			FeastEnemyCount: ptr(cfg.FeastEnemyCount),
			VaubanPassive:   ptr(cfg.VaubanPassive),
			Overdriver:      ptr(cfg.Overdriver),
			Arachne:         ArachneCfg{Enabled: ptr(cfg.Arachne.Enabled), Rank: ptr(cfg.Arachne.Rank)},
			HolsterAmp:      ptr(cfg.HolsterAmp),
			VigorousSwap:    ptr(cfg.VigorousSwap),
			VastUntime:      ptr(cfg.VastUntime),
			UntimeRift:      ptr(cfg.UntimeRift),
		}
	case scaling.HealthScaling:
		raw.Scaling.Mode = string(scaling.ModeHealth)
		raw.Scaling.Health = HealthCfg{
			Ability: string(cfg.Ability),
			Smite: SmiteCfg{
				Single:         ptr(cfg.Smite.Single),
				AoE:            ptr(cfg.Smite.AoE),
				Subsume:        ptr(cfg.Smite.Subsume),
				MarkedForDeath: ptr(cfg.Smite.MarkedForDeath),
			},
			ReaveEnthrall:     ptr(cfg.ReaveEnthrall),
			ReapEnemyCount:    ptr(cfg.ReapEnemyCount),
			RegurgitateGastro: ptr(cfg.RegurgitateGastro),
		}
	default:
		raw.Scaling.Mode = ModePlain
	}
	return raw
}

func encodeBuff(b scaling.RoarBuff) BuffCfg {
	return BuffCfg{
		Enabled:            ptr(b.Enabled),
		Subsume:            ptr(b.Subsume),
		PrecisionIntensify: ptr(b.PrecisionIntensify),
	}
}

// Save writes raw as YAML, creating parent directories.
func Save(path string, raw RawPreset) error {
	b, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preset dir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
