package scaling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func TestParseMetric(t *testing.T) {
	m, err := scaling.ParseMetric(" EHP ")
	require.NoError(t, err)
	assert.Equal(t, scaling.MetricEHP, m)

	_, err = scaling.ParseMetric("armor")
	assert.Error(t, err)
}

func TestBuildComparisonDefaultFactions(t *testing.T) {
	p := scaling.Defaults()
	c, axis := scaling.BuildComparison(p, scaling.ComparisonOptions{Metric: scaling.MetricHealth, Base: true}, scaling.AxisState{})
	require.Len(t, c.Lines, len(scaling.ComparisonFactions()))
	assert.True(t, axis.Valid())
	assert.Equal(t, "Health - Grineer / Scaldra", c.Lines[0].Label)
	assert.Equal(t, "#ef4444", c.Lines[0].Color)
	for _, l := range c.Lines {
		assert.Len(t, l.Values, scaling.DefaultSamples)
	}
}

func TestBuildComparisonEximusLines(t *testing.T) {
	p := scaling.Defaults()
	opts := scaling.ComparisonOptions{
		Metric:      scaling.MetricShield,
		Factions:    []scaling.Faction{scaling.Corpus, scaling.Infested},
		Base:        true,
		EximusDef:   true,
		EximusNoDef: true,
		Samples:     80,
	}
	c, _ := scaling.BuildComparison(p, opts, scaling.AxisState{})
	require.Len(t, c.Lines, 6)
	assert.Equal(t, "corpus-exdef", c.Lines[1].Key)
	assert.Equal(t, scaling.StyleDotted, c.Lines[2].Style)
	for _, l := range c.Lines[3:] {
		for _, v := range l.Values {
			assert.Zero(t, v, "infested shields never scale")
		}
	}

	opts.Metric = scaling.MetricDamage
	c, _ = scaling.BuildComparison(p, opts, scaling.AxisState{})
	assert.Len(t, c.Lines, 2, "damage has no eximus variants")
}

func TestBuildPresetComparison(t *testing.T) {
	a := scaling.Defaults()
	a.BaseLevel = 10
	a.TargetLevel = 60
	b := scaling.Defaults()
	b.BaseLevel = 5
	b.Axis.XTo = 150

	active := scaling.Defaults()
	active.BaseLevel = 30
	active.TargetLevel = 80

	presets := []scaling.NamedParams{
		{Name: "A", Label: "steel grineer", Params: a, Toggles: scaling.DefaultToggles()},
		{Name: "B", Params: b, Toggles: scaling.Toggles{EximusDef: true}},
	}
	c, _ := scaling.BuildPresetComparison(active, presets, scaling.MetricHealth, 80, scaling.AxisState{})
	assert.Equal(t, 5.0, c.Start)
	assert.Equal(t, 150.0, c.End)
	assert.Equal(t, 80.0, c.TargetLevel)
	require.Len(t, c.Lines, 2)
	assert.Equal(t, "A: steel grineer", c.Lines[0].Label)
	assert.Equal(t, "Preset B", c.Lines[1].Label)

	last := c.Levels[len(c.Levels)-1]
	assert.InEpsilon(t, scaling.HealthEximusDefAt(last, 5, scaling.Grineer, 300), c.Lines[1].Values[len(c.Levels)-1], 1e-12)
}

func TestValueAt(t *testing.T) {
	xs := []float64{1, 2, 3}
	vals := []float64{10, 20, 30}
	assert.Equal(t, 20.0, scaling.ValueAt(xs, vals, 2.4))
	assert.Equal(t, 30.0, scaling.ValueAt(xs, vals, 99))
	assert.Zero(t, scaling.ValueAt(nil, nil, 1))
}

func TestResample(t *testing.T) {
	c := scaling.Comparison{
		Levels: []float64{1, 2},
		Start:  1,
		End:    2,
		Lines:  []scaling.Line{{Key: "x", Values: []float64{0, 10}}},
	}
	out, ok := scaling.Resample(c, []float64{1, 1.5, 2, 3})
	require.True(t, ok)
	assert.Equal(t, []float64{0, 5, 10, 10}, out.Lines[0].Values)
	assert.Equal(t, 3.0, out.End)
	assert.Equal(t, 10.0, out.MaxY)

	_, ok = scaling.Resample(c, nil)
	assert.False(t, ok)
}
