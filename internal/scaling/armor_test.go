package scaling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func TestArmorDamageReductionBounds(t *testing.T) {
	assert.Zero(t, scaling.ArmorDamageReduction(0))
	assert.Equal(t, 0.9, scaling.ArmorDamageReduction(2700))
	assert.Equal(t, 0.9, scaling.ArmorDamageReduction(10000))

	prev := 0.0
	for a := 0.0; a <= 3000; a += 25 {
		dr := scaling.ArmorDamageReduction(a)
		assert.GreaterOrEqual(t, dr, prev)
		prev = dr
	}
}

func TestArmorStripMultiplier(t *testing.T) {
	cases := []struct {
		name string
		in   scaling.StripInputs
		want float64
	}{
		{"none", scaling.StripInputs{}, 1},
		{"heat", scaling.StripInputs{Heat: true}, 0.5},
		{"seven corrosive", scaling.StripInputs{CorrosiveStacks: 7}, 0.5},
		{"full corrosive", scaling.StripInputs{CorrosiveStacks: 25}, 0},
		{"cp", scaling.StripInputs{CPPct: 78}, 0.22},
		{"full strip", scaling.StripInputs{Heat: true, CorrosiveStacks: 14, CPPct: 100}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, scaling.ArmorStripMultiplier(tc.in), 1e-12)
		})
	}
}

func TestApplyArmorDR(t *testing.T) {
	assert.Equal(t, 100.0, scaling.ApplyArmorDR(100, 0.5, true))
	assert.InDelta(t, 50, scaling.ApplyArmorDR(100, 0.5, false), 1e-12)
}

func TestScaledArmorWithStrip(t *testing.T) {
	p := scaling.Defaults()
	p.BaseArmor = 1000
	info := scaling.ScaledArmorWithStrip(p, 300)
	assert.Equal(t, float64(scaling.ArmorCap), info.Raw)
	assert.Equal(t, 0.9, info.DR)

	p.HeatEnabled = true
	info = scaling.ScaledArmorWithStrip(p, 300)
	assert.Equal(t, float64(scaling.ArmorCap)/2, info.Net)

	p.CorrosiveStacks = 14
	info = scaling.ScaledArmorWithStrip(p, 300)
	assert.Zero(t, info.Net)
	assert.Zero(t, info.DR)

	p = scaling.Defaults()
	assert.Zero(t, scaling.ScaledArmorWithStrip(p, 500).Raw)
}
