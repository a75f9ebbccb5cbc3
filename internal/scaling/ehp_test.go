package scaling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func TestEHPArmorInflation(t *testing.T) {
	p := scaling.Defaults()
	p.BaseArmor = 300
	// DR = 0.9·sqrt(300/2700) = 0.3
	assert.InDelta(t, 300/0.7+100, scaling.EHPAt(p, 1), 1e-9)

	p.TrueToxin = true
	assert.InDelta(t, 300/0.7, scaling.EHPAt(p, 1), 1e-9)
}

func TestTrueDamageEHPNeverIncludesShield(t *testing.T) {
	p := scaling.Defaults()
	p.TrueDamage = true
	p.BaseArmor = 500
	p.EnemyType = scaling.EximusDefenses

	for _, sh := range []float64{0, 100, 5000} {
		p.BaseShield = sh
		hs := scaling.EnemyHealthShield(p, 100)
		assert.InEpsilon(t, hs.Health+scaling.OverguardAt(100), scaling.EHPAt(p, 100), 1e-12)
	}
}

func TestSteelPathScalesNormalEHP(t *testing.T) {
	p := scaling.Defaults()
	p.BaseArmor = 300
	for _, lvl := range []float64{1, 40, 80, 200} {
		normal := scaling.EHPAt(p, lvl)
		steel := p
		steel.Difficulty = scaling.DifficultySteel
		assert.InEpsilon(t, 2.5*normal, scaling.EHPAt(steel, lvl), 1e-12, "level %v", lvl)
	}
}

func TestOverguardIsNotDifficultyScaled(t *testing.T) {
	p := scaling.Defaults()
	p.Faction = scaling.Infested
	p.EnemyType = scaling.EximusNoDefenses
	normal := scaling.EHPAt(p, 100)
	p.Difficulty = scaling.DifficultySteel
	steel := scaling.EHPAt(p, 100)
	og := scaling.OverguardAt(100)
	assert.InEpsilon(t, 2.5*(normal-og)+og, steel, 1e-12)
}
