package main

import (
	"github.com/spf13/cobra"

	"github.com/xtding233/enemy-scaling/internal/preset"
)

// overrideFlags mirror preset.Overrides. Only flags set on the command line
// override the preset.
type overrideFlags struct {
	faction, enemyType, difficulty                           string
	baseLevel, baseHealth, baseShield, baseArmor, baseDamage float64
	targetLevel                                              float64
	status                                                   int
	strength, abilityDamage                                  float64
	mode, reflective, levelAbility, healthAbility            string
	xFrom, xTo, yMax                                         float64
}

func (o *overrideFlags) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.faction, "faction", "", "Enemy faction")
	f.StringVar(&o.enemyType, "type", "", "Enemy type: normal, eximus_def, eximus_nodef")
	f.StringVar(&o.difficulty, "difficulty", "", "Difficulty: normal, steel")
	f.Float64Var(&o.baseLevel, "base-level", 0, "Enemy base level")
	f.Float64Var(&o.baseHealth, "base-health", 0, "Enemy base health")
	f.Float64Var(&o.baseShield, "base-shield", 0, "Enemy base shield")
	f.Float64Var(&o.baseArmor, "base-armor", 0, "Enemy base armor")
	f.Float64Var(&o.baseDamage, "base-damage", 0, "Enemy base damage")
	f.Float64VarP(&o.targetLevel, "level", "l", 0, "Target level")
	f.IntVar(&o.status, "status", 0, "Status stacks (0-10)")
	f.Float64Var(&o.strength, "strength", 0, "Ability strength %")
	f.Float64Var(&o.abilityDamage, "ability-damage", 0, "Ability damage bonus %")
	f.StringVar(&o.mode, "mode", "", "Scaling mode: reflective, level, health, plain")
	f.StringVar(&o.reflective, "reflective", "", "Reflective ability")
	f.StringVar(&o.levelAbility, "level-ability", "", "Level-scaling ability")
	f.StringVar(&o.healthAbility, "health-ability", "", "Health-scaling ability")
	f.Float64Var(&o.xFrom, "x-from", 0, "Pin the plot start level")
	f.Float64Var(&o.xTo, "x-to", 0, "Pin the plot end level")
	f.Float64Var(&o.yMax, "y-max", 0, "Pin the plot max Y")
}

func (o *overrideFlags) overrides(cmd *cobra.Command) preset.Overrides {
	set := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	var ov preset.Overrides
	str := func(name string, v string) *string {
		if set(name) {
			return &v
		}
		return nil
	}
	num := func(name string, v float64) *float64 {
		if set(name) {
			return &v
		}
		return nil
	}
	ov.Faction = str("faction", o.faction)
	ov.EnemyType = str("type", o.enemyType)
	ov.Difficulty = str("difficulty", o.difficulty)
	ov.BaseLevel = num("base-level", o.baseLevel)
	ov.BaseHealth = num("base-health", o.baseHealth)
	ov.BaseShield = num("base-shield", o.baseShield)
	ov.BaseArmor = num("base-armor", o.baseArmor)
	ov.BaseDamage = num("base-damage", o.baseDamage)
	ov.TargetLevel = num("level", o.targetLevel)
	if set("status") {
		s := o.status
		ov.StatusStacks = &s
	}
	ov.AbilityStrengthPct = num("strength", o.strength)
	ov.AbilityDamagePct = num("ability-damage", o.abilityDamage)
	ov.Mode = str("mode", o.mode)
	ov.ReflectiveAbility = str("reflective", o.reflective)
	ov.LevelAbility = str("level-ability", o.levelAbility)
	ov.HealthAbility = str("health-ability", o.healthAbility)
	ov.XFrom = num("x-from", o.xFrom)
	ov.XTo = num("x-to", o.xTo)
	ov.YMax = num("y-max", o.yMax)
	return ov
}
