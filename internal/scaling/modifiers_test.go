package scaling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func reflective(ability scaling.ReflectiveAbility) scaling.Params {
	p := scaling.Defaults()
	p.BaseDamage = 10
	p.Config = scaling.Reflective{Ability: ability, IronSkin: scaling.IronSkinOptions{DestructRank: 5}}
	return p
}

func TestVulnerabilityMultiplierIsAProduct(t *testing.T) {
	p := scaling.Defaults()
	assert.Equal(t, 1.0, scaling.VulnerabilityMultiplier(p))
	assert.Empty(t, scaling.VulnerabilityEntries(p))

	p.Vulnerabilities.KhoraDome = true
	p.Vulnerabilities.NovaPrime = true
	assert.InDelta(t, (1+2.0)*(1+1.0), scaling.VulnerabilityMultiplier(p), 1e-12)

	p.AbilityStrengthPct = 200
	p.Vulnerabilities.AtlasPetrify = true
	assert.InDelta(t, 3*2*(1+0.5*2), scaling.VulnerabilityMultiplier(p), 1e-12)
}

func TestMerulinaNeedsSea(t *testing.T) {
	p := scaling.Defaults()
	p.Vulnerabilities.YareliMerulina = true
	assert.Equal(t, 1.0, scaling.VulnerabilityMultiplier(p))

	p.Vulnerabilities.YareliSea = true
	entries := scaling.VulnerabilityEntries(p)
	require.Len(t, entries, 2)
	assert.InDelta(t, 9.0, scaling.VulnerabilityMultiplier(p), 1e-12)
}

func TestRoarAndNourish(t *testing.T) {
	p := scaling.Defaults()
	assert.Equal(t, 1.0, scaling.RoarMultiplier(p))

	p.Roar = scaling.RoarBuff{Enabled: true, PrecisionIntensify: true}
	assert.Equal(t, 190.0, scaling.RoarStrengthPct(p))
	assert.InDelta(t, 1.95, scaling.RoarMultiplier(p), 1e-12)
	p.Roar.Subsume = true
	assert.InDelta(t, 1.57, scaling.RoarMultiplier(p), 1e-12)

	p.Nourish = scaling.NourishBuff{Enabled: true}
	assert.InDelta(t, 75, scaling.NourishPct(p), 1e-12)
	assert.InDelta(t, 1.75, scaling.NourishMultiplier(p), 1e-12)
	p.Nourish.Subsume = true
	p.Nourish.PrecisionIntensify = true
	assert.InDelta(t, 0.45*190, scaling.NourishPct(p), 1e-12)
}

func TestReflectiveParts(t *testing.T) {
	p := reflective(scaling.MindControl)
	assert.InDelta(t, 8.5, scaling.ReflectiveParts(p, true).MindControl, 1e-12)
	p.Config = scaling.Reflective{Ability: scaling.MindControl, MindControlPct: 1000}
	assert.InDelta(t, 11, scaling.ReflectiveParts(p, true).MindControl, 1e-12)

	p = reflective(scaling.ColdWard)
	p.AbilityStrengthPct = 200
	p.Nourish.Enabled = true
	parts := scaling.ReflectiveParts(p, true)
	assert.InDelta(t, 6, parts.ColdWard, 1e-12)
	assert.Equal(t, 1.0, parts.Nourish, "nourish is blocked for cold ward")

	p = reflective(scaling.Mallet)
	p.Nourish.Enabled = true
	p.StatusStacks = 1
	parts = scaling.ReflectiveParts(p, true)
	assert.InDelta(t, 2.5, parts.Mallet, 1e-12)
	assert.InDelta(t, 1.75, parts.Nourish, 1e-12)
	assert.InDelta(t, 2*2.5*1.75, parts.Total, 1e-12)

	p = reflective(scaling.ReverseRotor)
	p.AbilityStrengthPct = 300
	assert.InDelta(t, 0.75, scaling.ReflectiveParts(p, true).ReverseRotor, 1e-12)
}

func TestSummonersWrathOnlyForNekrosAndDecoy(t *testing.T) {
	sw := scaling.SummonersWrath{Enabled: true, Pct: 50}
	assert.Equal(t, 1.0, scaling.SummonersWrathMultiplier(scaling.Reflective{Ability: scaling.Mallet, SummonersWrath: sw}))
	assert.Equal(t, 1.5, scaling.SummonersWrathMultiplier(scaling.Reflective{Ability: scaling.Nekros, SummonersWrath: sw}))
	assert.Equal(t, 1.5, scaling.SummonersWrathMultiplier(scaling.Reflective{Ability: scaling.DamageDecoy, SummonersWrath: sw}))
}

func TestRadiationMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, scaling.RadiationMultiplier(0))
	assert.Equal(t, 2.0, scaling.RadiationMultiplier(1))
	assert.Equal(t, 6.5, scaling.RadiationMultiplier(10))
	assert.Equal(t, 6.5, scaling.RadiationMultiplier(99))
}

func TestNekrosReflectedDamage(t *testing.T) {
	p := reflective(scaling.Nekros)
	// grineer damage at base level is 2x
	assert.InDelta(t, 10*2*1.5, scaling.ScalingDamageAt(p, 1), 1e-9)

	p.Config = scaling.Reflective{Ability: scaling.Nekros, RadiationStacks: 1}
	assert.InDelta(t, 10*2*1.5*2, scaling.ScalingDamageAt(p, 1), 1e-9)

	p.AbilityStrengthPct = 0
	assert.Equal(t, 1.0, scaling.NekrosMultiplier(p))
	assert.Equal(t, 1.0, scaling.DamageDecoyMultiplier(p))
}

func TestNoReflectiveAbilityDealsNothing(t *testing.T) {
	p := reflective(scaling.ReflectiveNone)
	assert.Zero(t, scaling.ScalingDamageAt(p, 50))
}

func TestPlainMultiplierChain(t *testing.T) {
	p := scaling.Defaults()
	p.Config = nil
	p.StatusStacks = 1
	p.Nourish.Enabled = true
	assert.InDelta(t, 2*1.75, scaling.ScalingMultiplier(p, true), 1e-12)
	assert.InDelta(t, 2.0, scaling.ScalingMultiplier(p, false), 1e-12)
	assert.InDelta(t, 1*2*3.5, scaling.ScalingDamageAt(p, 1), 1e-9)
}

func TestIronSkin(t *testing.T) {
	p := reflective(scaling.IronSkin)
	p.BaseDamage = 0
	assert.InDelta(t, 1200, scaling.IronSkinOverguard(p, 50).Total, 1e-9)
	assert.Zero(t, scaling.ScalingDamageAt(p, 50), "no detonation without Shrapnel")

	p.Config = scaling.Reflective{Ability: scaling.IronSkin, IronSkin: scaling.IronSkinOptions{
		Shrapnel:         true,
		DestructRank:     5,
		DestructStacks:   2,
		BaseArmor:        300,
		ArmorIncreasePct: 100,
		ArmorAdded:       100,
	}}
	og := scaling.IronSkinOverguard(p, 50)
	assert.InDelta(t, 700, og.TotalArmor, 1e-9)
	assert.InDelta(t, 2950, og.Total, 1e-9)
	assert.InDelta(t, 2950*2.3, scaling.ScalingDamageAt(p, 50), 1e-6)

	p.BaseDamage = 10
	p.Difficulty = scaling.DifficultySteel
	assert.InDelta(t, 10*2*2.5, scaling.IronSkinOverguard(p, 1).EnemyDamage, 1e-9)
}

func TestDestructPct(t *testing.T) {
	assert.Equal(t, 12.0, scaling.DestructPct(0))
	assert.Equal(t, 65.0, scaling.DestructPct(5))
	assert.Equal(t, 65.0, scaling.DestructPct(9))
	assert.Equal(t, 12.0, scaling.DestructPct(-1))
}

func TestToxinDot(t *testing.T) {
	p := scaling.Defaults()
	assert.InDelta(t, 300, scaling.ToxinDot(100, p, true), 1e-12)
	assert.Zero(t, scaling.ToxinDot(100, p, false))
	assert.Zero(t, scaling.ToxinDot(0, p, true))
	p.ToxinDamagePct = 100
	assert.InDelta(t, 600, scaling.ToxinDot(100, p, true), 1e-12)
}
