package scaling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func TestCurvesAtBaseLevelAreIdentity(t *testing.T) {
	for _, f := range scaling.Factions() {
		t.Run(string(f), func(t *testing.T) {
			assert.InDelta(t, 300, scaling.HealthAt(20, 20, f, 300), 1e-9)
			if scaling.HasShieldScaling(f) {
				assert.InDelta(t, 100, scaling.ShieldAt(20, 20, f, 100), 1e-9)
			}
		})
	}
}

func TestGrineerHealthAtLevel100(t *testing.T) {
	want := 300 * (1 + (24*math.Sqrt(5)/5)*math.Pow(99, 0.72))
	got := scaling.HealthAt(100, 1, scaling.Grineer, 300)
	assert.InEpsilon(t, want, got, 1e-12)
	assert.InEpsilon(t, want/300, scaling.HealthPiecewise(99, 0, 0.015, 2.12, 24*math.Sqrt(5)/5, 0.72), 1e-12)
}

func TestHealthBelowBaseLevelDoesNotShrink(t *testing.T) {
	assert.Equal(t, 300.0, scaling.HealthAt(5, 30, scaling.Corpus, 300))
}

func TestInfestedHasNoShield(t *testing.T) {
	p := scaling.Defaults()
	p.Faction = scaling.Infested
	p.BaseShield = 5000
	for _, lvl := range []float64{1, 50, 150, 9999} {
		assert.Zero(t, scaling.ShieldAt(lvl, 1, scaling.Infested, 5000))
		assert.Zero(t, scaling.ShieldEximusAt(lvl, 1, scaling.Infested, 5000))
		assert.Zero(t, scaling.EnemyHealthShield(p, lvl).Shield)
	}
}

func TestBlendPiecewiseRegimes(t *testing.T) {
	low := func(float64) float64 { return 1 }
	high := func(float64) float64 { return 3 }
	assert.Equal(t, 1.0, scaling.BlendPiecewise(69, 70, 10, low, high))
	assert.Equal(t, 3.0, scaling.BlendPiecewise(81, 70, 10, low, high))
	assert.InDelta(t, 2.0, scaling.BlendPiecewise(75, 70, 10, low, high), 1e-12)
}

func TestHealthCurveIsContinuousAcrossTransition(t *testing.T) {
	for _, f := range scaling.Factions() {
		prev := scaling.HealthAt(1, 1, f, 100)
		for lvl := 1.5; lvl <= 200; lvl += 0.5 {
			cur := scaling.HealthAt(lvl, 1, f, 100)
			assert.GreaterOrEqual(t, cur, prev, "faction %s level %v", f, lvl)
			prev = cur
		}
	}
}

func TestEximusMultipliersFloor(t *testing.T) {
	// (300+900)/300 = 4, step 1 below d=15
	assert.Equal(t, 1.1, scaling.EximusHealthMultiplier(10, 1, 300))
	assert.InDelta(t, 1.5, scaling.EximusHealthNoDefMultiplier(10, 1, 300), 1e-12)
	assert.Equal(t, 1.1, scaling.EximusShieldMultiplier(10, 1))
	assert.InDelta(t, 6.0, scaling.EximusShieldMultiplier(500, 1), 1e-12)
}

func TestOverguard(t *testing.T) {
	assert.InDelta(t, scaling.BaseOverguard, scaling.OverguardAt(1), 1e-12)
	assert.InEpsilon(t, 12*(1+260*math.Pow(99, 0.9)), scaling.OverguardAt(100), 1e-12)

	p := scaling.Defaults()
	assert.Zero(t, scaling.EnemyOverguard(p, 100))
	p.EnemyType = scaling.EximusNoDefenses
	p.Difficulty = scaling.DifficultySteel
	assert.Equal(t, scaling.OverguardAt(100), scaling.EnemyOverguard(p, 100))
}

func TestOverguardBelowLevelOne(t *testing.T) {
	for _, lvl := range []float64{0.5, 0, -5} {
		m := scaling.OverguardMultiplier(lvl)
		assert.False(t, math.IsNaN(m), "level %v", lvl)
		assert.Equal(t, scaling.OverguardMultiplier(1), m, "level %v", lvl)
	}
	assert.Equal(t, 1.0, scaling.OverguardMultiplier(1))
}

func TestEnemyHealthShieldByType(t *testing.T) {
	p := scaling.Defaults()
	p.EnemyType = scaling.EximusNoDefenses
	hs := scaling.EnemyHealthShield(p, 60)
	assert.Zero(t, hs.Shield)
	assert.InEpsilon(t, scaling.HealthEximusNoDefAt(60, 1, scaling.Grineer, 300), hs.Health, 1e-12)

	p.EnemyType = scaling.EnemyNormal
	p.Difficulty = scaling.DifficultySteel
	hs = scaling.EnemyHealthShield(p, 60)
	assert.InEpsilon(t, 2.5*scaling.HealthAt(60, 1, scaling.Grineer, 300), hs.Health, 1e-12)
	assert.InEpsilon(t, 2.5*scaling.ShieldAt(60, 1, scaling.Grineer, 100), hs.Shield, 1e-12)
}
