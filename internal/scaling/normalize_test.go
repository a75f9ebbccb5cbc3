package scaling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func TestNormalizeClamps(t *testing.T) {
	p := scaling.Defaults()
	p.BaseLevel = -4
	p.BaseHealth = 0
	p.BaseShield = 20000
	p.BaseArmor = 150
	p.CorrosiveStacks = 40
	p.CPPct = 120
	p.StatusStacks = -1
	p.TargetLevel = 1e6
	p.AbilityStrengthPct = math.NaN()
	p.Config = scaling.Reflective{RadiationStacks: 12, IronSkin: scaling.IronSkinOptions{DestructRank: 9, DestructStacks: -2}}

	n := scaling.Normalize(p)
	assert.Equal(t, 1.0, n.BaseLevel)
	assert.Equal(t, 1.0, n.BaseHealth)
	assert.Equal(t, 10000.0, n.BaseShield)
	assert.Equal(t, 200.0, n.BaseArmor)
	assert.Equal(t, 25, n.CorrosiveStacks)
	assert.Equal(t, 100.0, n.CPPct)
	assert.Equal(t, 0, n.StatusStacks)
	assert.Equal(t, 9999.0, n.TargetLevel)
	assert.Zero(t, n.AbilityStrengthPct)

	r, ok := n.Reflective()
	assert.True(t, ok)
	assert.Equal(t, 10, r.RadiationStacks)
	assert.Equal(t, 5, r.IronSkin.DestructRank)
	assert.Zero(t, r.IronSkin.DestructStacks)
	assert.Equal(t, scaling.ReflectiveNone, r.Ability)

	assert.Equal(t, n, scaling.Normalize(n))
}

func TestNormalizeArmorSnapping(t *testing.T) {
	for in, want := range map[float64]float64{-5: 0, 0: 0, 1: 200, 350: 350, 1500: 1000} {
		p := scaling.Defaults()
		p.BaseArmor = in
		assert.Equal(t, want, scaling.Normalize(p).BaseArmor, "armor %v", in)
	}
}

func TestNormalizeAbilityFlags(t *testing.T) {
	p := scaling.Defaults()
	p.Config = scaling.LevelScaling{Ability: scaling.Feast, UntimeRift: true}
	n := scaling.Normalize(p)
	assert.True(t, n.TrueToxin)
	l, _ := n.LevelScaling()
	assert.True(t, l.VastUntime)
	assert.Equal(t, 1, l.FeastEnemyCount)

	p.Config = scaling.HealthScaling{Ability: scaling.Regurgitate}
	assert.True(t, scaling.Normalize(p).TrueToxin)
	p.TrueToxin = true
	p.Config = scaling.HealthScaling{Ability: scaling.Regurgitate, RegurgitateGastro: true}
	n = scaling.Normalize(p)
	assert.False(t, n.TrueToxin)
	h, _ := n.HealthScaling()
	assert.Equal(t, 1, h.ReapEnemyCount)
}

func TestEffectiveEnemyType(t *testing.T) {
	p := scaling.Defaults()
	assert.Equal(t, scaling.EnemyNormal, scaling.EffectiveEnemyType(p, scaling.DefaultToggles()))
	assert.Equal(t, scaling.EximusDefenses, scaling.EffectiveEnemyType(p, scaling.Toggles{EximusDef: true}))
	assert.Equal(t, scaling.EximusNoDefenses, scaling.EffectiveEnemyType(p, scaling.Toggles{EximusNoDef: true}))

	both := scaling.Toggles{EximusDef: true, EximusNoDef: true}
	assert.Equal(t, scaling.EximusNoDefenses, scaling.EffectiveEnemyType(p, both))
	// both multipliers hit the 1.1 floor, ties go to the variant with defenses
	p.BaseHealth = 10000
	p.TargetLevel = 5
	assert.Equal(t, scaling.EximusDefenses, scaling.EffectiveEnemyType(p, both))
}
