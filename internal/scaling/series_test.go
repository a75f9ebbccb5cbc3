package scaling_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

func allToggles() scaling.Toggles {
	return scaling.Toggles{Base: true, EximusDef: true, EximusNoDef: true, EnemyDamage: true, ScalingDamage: true, EHP: true}
}

func TestBuildSeriesIsDeterministic(t *testing.T) {
	p := scaling.Defaults()
	p.BaseArmor = 500
	p.Config = scaling.Reflective{Ability: scaling.Nekros, RadiationStacks: 3}

	a, _ := scaling.BuildSeries(p, allToggles(), scaling.AxisState{}, scaling.SeriesOptions{Samples: 200})
	b, _ := scaling.BuildSeries(p, allToggles(), scaling.AxisState{}, scaling.SeriesOptions{Samples: 200})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("series differ (-a +b):\n%s", diff)
	}
}

func TestBuildSeriesGrid(t *testing.T) {
	p := scaling.Defaults()
	p.BaseLevel = 20
	p.TargetLevel = 120

	s, _ := scaling.BuildSeries(p, scaling.DefaultToggles(), scaling.AxisState{}, scaling.SeriesOptions{})
	require.Len(t, s.Samples, scaling.DefaultSamples)
	assert.Equal(t, 20.0, s.Start)
	assert.Equal(t, 120.0, s.End)
	assert.Equal(t, 20.0, s.Samples[0].Level)
	assert.Equal(t, 120.0, s.Samples[len(s.Samples)-1].Level)

	s, _ = scaling.BuildSeries(p, scaling.DefaultToggles(), scaling.AxisState{}, scaling.SeriesOptions{Samples: 3})
	assert.Len(t, s.Samples, scaling.MinSamples)

	p.Axis = scaling.AxisOverrides{XFrom: 50, XTo: 40}
	start, end := scaling.SampleRange(p)
	assert.Equal(t, 50.0, start)
	assert.Equal(t, 50.0, end)
}

func TestDisabledCurvesAreZero(t *testing.T) {
	p := scaling.Defaults()
	s, _ := scaling.BuildSeries(p, scaling.Toggles{EHP: true}, scaling.AxisState{}, scaling.SeriesOptions{Samples: 80})
	for _, smp := range s.Samples {
		assert.Zero(t, smp.Health)
		assert.Zero(t, smp.EnemyDamage)
		assert.Zero(t, smp.ScalingDamage)
		assert.Positive(t, smp.EHP)
	}
}

func TestSeriesUserYMaxWins(t *testing.T) {
	p := scaling.Defaults()
	p.Axis.YMax = 1234
	s, axis := scaling.BuildSeries(p, scaling.DefaultToggles(), scaling.AxisState{}, scaling.SeriesOptions{})
	assert.Equal(t, 1234.0, s.MaxY)
	assert.Equal(t, 1234.0, axis.MaxY)
	assert.True(t, axis.Valid())
}

func TestSeriesMaxYCoversVisibleCurves(t *testing.T) {
	p := scaling.Defaults()
	s, _ := scaling.BuildSeries(p, scaling.DefaultToggles(), scaling.AxisState{}, scaling.SeriesOptions{})
	last := s.Samples[len(s.Samples)-1]
	assert.GreaterOrEqual(t, s.MaxY, last.Health)
}

func TestBuildSeriesAtUsesGivenLevels(t *testing.T) {
	p := scaling.Defaults()
	levels := []float64{1, 10, 100}
	s := scaling.BuildSeriesAt(p, scaling.DefaultToggles(), levels)
	require.Len(t, s.Samples, 3)
	assert.InEpsilon(t, scaling.HealthAt(100, 1, scaling.Grineer, 300), s.Samples[2].Health, 1e-12)
}

func TestSmoothMaxY(t *testing.T) {
	// padded(100) = 113
	got, st := scaling.SmoothMaxY(100, 1, 100, scaling.AxisState{}, true, true)
	assert.InDelta(t, 113, got, 1e-9)
	assert.True(t, st.Valid())

	got, _ = scaling.SmoothMaxY(100, 1, 100, scaling.AxisState{}, false, true)
	assert.InDelta(t, 113, got, 1e-9)

	_, high := scaling.SmoothMaxY(180, 1, 100, scaling.AxisState{}, true, true)
	got, _ = scaling.SmoothMaxY(100, 1, 100, high, true, true)
	assert.InDelta(t, high.MaxY+(113-high.MaxY)*0.35, got, 1e-9, "eases down")

	got, _ = scaling.SmoothMaxY(100, 1, 50, high, true, true)
	assert.InDelta(t, 113, got, 1e-9, "shrunken range drops history")

	_, low := scaling.SmoothMaxY(40, 1, 100, scaling.AxisState{}, true, true)
	got, _ = scaling.SmoothMaxY(100, 1, 100, low, true, true)
	assert.InDelta(t, 113, got, 1e-9, "snaps up")
	got, _ = scaling.SmoothMaxY(100, 1, 100, low, true, false)
	assert.InDelta(t, 113*0.98, got, 1e-9, "eased rise is floored")
}

func TestAxisStateSurvivesJSON(t *testing.T) {
	_, st := scaling.SmoothMaxY(180, 1, 100, scaling.AxisState{}, true, true)
	b, err := json.Marshal(st)
	require.NoError(t, err)

	var got scaling.AxisState
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, st, got)
	assert.True(t, got.Valid())

	// a restored state still eases instead of starting over
	want, _ := scaling.SmoothMaxY(100, 1, 100, st, true, true)
	eased, _ := scaling.SmoothMaxY(100, 1, 100, got, true, true)
	assert.Equal(t, want, eased)
	assert.NotEqual(t, 113.0, eased)
}

func TestActiveIntersectionIsLastOfScalingThenDamage(t *testing.T) {
	p := scaling.Defaults()
	p.Faction = scaling.Infested
	p.BaseHealth = 1
	p.BaseDamage = 1000
	p.TargetLevel = 200
	p.Config = scaling.Reflective{Ability: scaling.Nekros}

	s, _ := scaling.BuildSeries(p, allToggles(), scaling.AxisState{}, scaling.SeriesOptions{})
	if len(s.Intersections) == 0 {
		assert.Nil(t, s.Active)
		return
	}
	require.NotNil(t, s.Active)
	assert.Equal(t, s.Intersections[len(s.Intersections)-1], *s.Active)
	assert.Len(t, s.Intersections, len(s.ScalingIntersections)+len(s.DamageIntersections))
}

func TestScalingAboveEHP(t *testing.T) {
	p := scaling.Defaults()
	p.Faction = scaling.Infested
	p.BaseHealth = 1
	p.BaseDamage = 1000
	p.Config = scaling.Reflective{Ability: scaling.Nekros}
	p.TargetLevel = 2

	s, _ := scaling.BuildSeries(p, scaling.Toggles{ScalingDamage: true, EHP: true}, scaling.AxisState{}, scaling.SeriesOptions{})
	assert.True(t, s.ScalingAboveEHP)
	assert.Empty(t, s.ScalingIntersections)
}
