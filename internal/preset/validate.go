package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

var (
	// ErrUnknownPreset is returned when a named preset file does not exist.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset wraps every semantic validation failure.
	ErrInvalidPreset = errors.New("invalid preset")
)

// ValidateRaw checks semantic constraints of a merged RawPreset.
// Unset fields are not checked; Normalize supplies their defaults.
func ValidateRaw(raw RawPreset) error {
	var errs []string

	// enemy
	e := raw.Enemy
	if e.Faction != "" {
		if _, ok := scaling.FactionSpec(scaling.Faction(lower(e.Faction))); !ok {
			errs = append(errs, fmt.Sprintf("enemy.faction %q is not a known faction", e.Faction))
		}
	}
	switch scaling.EnemyType(lower(e.Type)) {
	case "", scaling.EnemyNormal, scaling.EximusDefenses, scaling.EximusNoDefenses:
	default:
		errs = append(errs, "enemy.type must be one of: normal, eximus_def, eximus_nodef")
	}
	switch scaling.Difficulty(lower(e.Difficulty)) {
	case "", scaling.DifficultyNormal, scaling.DifficultySteel:
	default:
		errs = append(errs, "enemy.difficulty must be one of: normal, steel")
	}
	if e.BaseLevel != nil && *e.BaseLevel < 1 {
		errs = append(errs, "enemy.base_level must be >= 1")
	}
	errs = nonNegative(errs, "enemy.base_health", e.BaseHealth)
	errs = nonNegative(errs, "enemy.base_shield", e.BaseShield)
	errs = nonNegative(errs, "enemy.base_armor", e.BaseArmor)
	errs = nonNegative(errs, "enemy.base_damage", e.BaseDamage)
	if e.TargetLevel != nil && (*e.TargetLevel < 1 || *e.TargetLevel > scaling.MaxTargetLevel) {
		errs = append(errs, fmt.Sprintf("enemy.target_level must be in [1,%d]", scaling.MaxTargetLevel))
	}

	// strip
	errs = intRange(errs, "strip.corrosive_stacks", raw.Strip.CorrosiveStacks, 0, 25)
	if v := raw.Strip.CPPct; v != nil && (*v < 0 || *v > 100) {
		errs = append(errs, "strip.cp_pct must be in [0,100]")
	}

	// modifiers
	m := raw.Modifiers
	errs = intRange(errs, "modifiers.status_stacks", m.StatusStacks, 0, 10)
	errs = nonNegative(errs, "modifiers.ability_strength_pct", m.AbilityStrengthPct)
	errs = nonNegative(errs, "modifiers.ability_damage_pct", m.AbilityDamagePct)
	errs = nonNegative(errs, "modifiers.toxin_damage_pct", m.ToxinDamagePct)

	// scaling
	s := raw.Scaling
	switch mode := lower(s.Mode); mode {
	case "", ModePlain:
	case string(scaling.ModeReflective):
		r := s.Reflective
		if !validReflective(scaling.ReflectiveAbility(lower(r.Ability))) {
			errs = append(errs, fmt.Sprintf("scaling.reflective.ability %q is not a reflective ability", r.Ability))
		}
		errs = intRange(errs, "scaling.reflective.radiation_stacks", r.RadiationStacks, 0, 10)
		errs = nonNegative(errs, "scaling.reflective.mind_control_pct", r.MindControlPct)
		errs = nonNegative(errs, "scaling.reflective.summoners_wrath.pct", r.SummonersWrath.Pct)
		errs = intRange(errs, "scaling.reflective.iron_skin.destruct_rank", r.IronSkin.DestructRank, 0, 5)
		if v := r.IronSkin.DestructStacks; v != nil && *v < 0 {
			errs = append(errs, "scaling.reflective.iron_skin.destruct_stacks must be >= 0")
		}
		errs = nonNegative(errs, "scaling.reflective.iron_skin.base_armor", r.IronSkin.BaseArmor)
		errs = nonNegative(errs, "scaling.reflective.iron_skin.armor_increase_pct", r.IronSkin.ArmorIncreasePct)
		errs = nonNegative(errs, "scaling.reflective.iron_skin.armor_added", r.IronSkin.ArmorAdded)
	case string(scaling.ModeLevel):
		l := s.Level
		if !validLevel(scaling.LevelAbility(lower(l.Ability))) {
			errs = append(errs, fmt.Sprintf("scaling.level.ability %q is not a level ability", l.Ability))
		}
		errs = intRange(errs, "scaling.level.feast_enemy_count", l.FeastEnemyCount, 1, 5)
		errs = intRange(errs, "scaling.level.arachne.rank", l.Arachne.Rank, 0, 5)
	case string(scaling.ModeHealth):
		h := s.Health
		if !validHealth(scaling.HealthAbility(lower(h.Ability))) {
			errs = append(errs, fmt.Sprintf("scaling.health.ability %q is not a health ability", h.Ability))
		}
		errs = intRange(errs, "scaling.health.reap_enemy_count", h.ReapEnemyCount, 1, 20)
	default:
		errs = append(errs, "scaling.mode must be one of: reflective, level, health, plain")
	}

	// axis
	errs = nonNegative(errs, "axis.x_from", raw.Axis.XFrom)
	errs = nonNegative(errs, "axis.x_to", raw.Axis.XTo)
	errs = nonNegative(errs, "axis.y_max", raw.Axis.YMax)
	if a := raw.Axis; a.XFrom != nil && a.XTo != nil && *a.XFrom > 0 && *a.XTo > 0 && *a.XTo < *a.XFrom {
		errs = append(errs, "axis.x_to must be >= axis.x_from")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: config validation failed: %s", ErrInvalidPreset, strings.Join(errs, "; "))
	}
	return nil
}

func nonNegative(errs []string, field string, v *float64) []string {
	if v != nil && *v < 0 {
		errs = append(errs, field+" must be >= 0")
	}
	return errs
}

func intRange(errs []string, field string, v *int, lo, hi int) []string {
	if v != nil && (*v < lo || *v > hi) {
		errs = append(errs, fmt.Sprintf("%s must be in [%d,%d]", field, lo, hi))
	}
	return errs
}

func validReflective(a scaling.ReflectiveAbility) bool {
	switch a {
	case "", scaling.ReflectiveNone, scaling.MindControl, scaling.Nekros, scaling.DamageDecoy,
		scaling.Mallet, scaling.Accuse, scaling.IronSkin, scaling.ColdWard, scaling.Link,
		scaling.ReverseRotor, scaling.MesmerSkin, scaling.Thorns, scaling.ShatterShield, scaling.Absorb:
		return true
	}
	return false
}

func validLevel(a scaling.LevelAbility) bool {
	switch a {
	case "", scaling.LevelNone, scaling.FlechetteOrb, scaling.PhotonStrike, scaling.GraspOfLohk, scaling.Feast:
		return true
	}
	return false
}

func validHealth(a scaling.HealthAbility) bool {
	switch a {
	case "", scaling.HealthNone, scaling.Smite, scaling.Reave, scaling.ReapSow,
		scaling.ElementalWard, scaling.Regurgitate, scaling.EnergyVampire:
		return true
	}
	return false
}
