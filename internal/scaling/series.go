package scaling

import (
	"math"
	"slices"
)

const (
	MinSamples     = 80
	MaxSamples     = 600
	DefaultSamples = MaxSamples
)

// SeriesOptions controls sampling and axis tracking.
type SeriesOptions struct {
	// Samples is clamped to [MinSamples, MaxSamples]; zero means DefaultSamples.
	Samples int
	// NoTrack returns a padded max-Y without updating the axis state.
	NoTrack bool
	// EaseUp eases upward max-Y moves instead of snapping.
	EaseUp bool
}

// Sample is every curve evaluated at one level. Curves whose toggle is off are zero.
type Sample struct {
	Level             float64 `json:"level"`
	Health            float64 `json:"health"`
	Shield            float64 `json:"shield"`
	EximusDefHealth   float64 `json:"eximusDefHealth"`
	EximusDefShield   float64 `json:"eximusDefShield"`
	EximusNoDefHealth float64 `json:"eximusNoDefHealth"`
	Overguard         float64 `json:"overguard"`
	Armor             float64 `json:"armor"`
	ArmorDR           float64 `json:"armorDR"`
	EnemyDamage       float64 `json:"enemyDamage"`
	ScalingDamage     float64 `json:"scalingDamage"`
	EHP               float64 `json:"ehp"`
}

// IntersectionSource names the curve that crossed EHP.
type IntersectionSource string

const (
	SourceDamage  IntersectionSource = "damage"
	SourceScaling IntersectionSource = "scaling"
)

// Intersection is a level where a damage curve rises to meet EHP.
type Intersection struct {
	Level  float64            `json:"level"`
	Value  float64            `json:"value"`
	Source IntersectionSource `json:"source"`
}

// Series is the sampled plot for one parameter set.
type Series struct {
	Start     float64  `json:"start"`
	End       float64  `json:"end"`
	MaxY      float64  `json:"maxY"`
	Toggles   Toggles  `json:"toggles"`
	HasShield bool     `json:"hasShield"`
	Samples   []Sample `json:"samples"`

	Intersections        []Intersection `json:"intersections"`
	DamageIntersections  []Intersection `json:"damageIntersections"`
	ScalingIntersections []Intersection `json:"scalingIntersections"`
	Active               *Intersection  `json:"active,omitempty"`
	ScalingAboveEHP      bool           `json:"scalingAboveEHP"`
}

// SampleRange is the plotted level range for p.
func SampleRange(p Params) (start, end float64) {
	start = math.Max(1, p.BaseLevel)
	if p.Axis.XFrom > 0 {
		start = p.Axis.XFrom
	}
	end = math.Max(start, p.TargetLevel)
	if p.Axis.XTo > 0 {
		end = math.Max(start, p.Axis.XTo)
	}
	return start, end
}

// SampleCount clamps a requested sample count.
func SampleCount(n int) int {
	if n <= 0 {
		return DefaultSamples
	}
	return clampInt(n, MinSamples, MaxSamples)
}

// Grid returns n evenly spaced levels from start to end inclusive.
func Grid(start, end float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = start
		return xs
	}
	for i := range xs {
		t := float64(i) / float64(n-1)
		xs[i] = start + t*(end-start)
	}
	return xs
}

// BuildSeries samples p over its plot range.
func BuildSeries(p Params, t Toggles, axis AxisState, opts SeriesOptions) (Series, AxisState) {
	start, end := SampleRange(p)
	xs := Grid(start, end, SampleCount(opts.Samples))
	return buildSeries(p, t, xs, axis, opts)
}

// BuildSeriesAt samples p at explicit levels without touching any axis state.
func BuildSeriesAt(p Params, t Toggles, levels []float64) Series {
	s, _ := buildSeries(p, t, levels, AxisState{}, SeriesOptions{NoTrack: true})
	return s
}

func buildSeries(p Params, t Toggles, xs []float64, axis AxisState, opts SeriesOptions) (Series, AxisState) {
	s := Series{
		Toggles:   t,
		HasShield: p.BaseShield > 0 && HasShieldScaling(p.Faction),
		Samples:   make([]Sample, len(xs)),
	}
	if len(xs) == 0 {
		s.MaxY = 10
		return s, axis
	}
	s.Start, s.End = xs[0], xs[len(xs)-1]

	diff := DifficultyFactor(p.Difficulty)
	shielded := HasShieldScaling(p.Faction)
	for i, lvl := range xs {
		smp := Sample{Level: lvl, Overguard: OverguardAt(lvl)}
		armor := ScaledArmorWithStrip(p, lvl)
		smp.Armor, smp.ArmorDR = armor.Net, armor.DR

		if t.Base {
			smp.Health = HealthAt(lvl, p.BaseLevel, p.Faction, p.BaseHealth) * diff
			if shielded {
				smp.Shield = ShieldAt(lvl, p.BaseLevel, p.Faction, p.BaseShield) * diff
			}
		}
		if t.EximusDef {
			smp.EximusDefHealth = HealthEximusDefAt(lvl, p.BaseLevel, p.Faction, p.BaseHealth) * diff
			if shielded {
				smp.EximusDefShield = ShieldEximusAt(lvl, p.BaseLevel, p.Faction, p.BaseShield) * diff
			}
		}
		if t.EximusNoDef {
			smp.EximusNoDefHealth = HealthEximusNoDefAt(lvl, p.BaseLevel, p.Faction, p.BaseHealth) * diff
		}
		if t.EnemyDamage {
			smp.EnemyDamage = EnemyDamageAt(p, lvl)
		}
		if t.ScalingDamage {
			smp.ScalingDamage = ScalingDamageAt(p, lvl)
		}
		if t.EHP {
			smp.EHP = EHPAt(p, lvl)
		}
		s.Samples[i] = smp
	}

	raw := visibleMax(s.Samples, t)
	switch {
	case p.Axis.YMax > 0:
		s.MaxY = p.Axis.YMax
		if !opts.NoTrack {
			axis = pinnedAxis(p.Axis.YMax, s.Start, s.End)
		}
	default:
		s.MaxY, axis = SmoothMaxY(raw, s.Start, s.End, axis, !opts.NoTrack, !opts.EaseUp)
	}

	if t.ScalingDamage && t.EHP {
		s.ScalingIntersections = findIntersections(s.Samples, SourceScaling)
		s.ScalingAboveEHP = scalingAlwaysAbove(s.Samples)
	}
	if t.EnemyDamage && t.EHP {
		s.DamageIntersections = findIntersections(s.Samples, SourceDamage)
	}
	s.Intersections = slices.Concat(s.ScalingIntersections, s.DamageIntersections)
	if n := len(s.Intersections); n > 0 {
		active := s.Intersections[n-1]
		s.Active = &active
	}
	return s, axis
}

// visibleMax is the largest value across enabled curves, floored at 10.
// Overguard counts only while an eximus curve is visible.
func visibleMax(samples []Sample, t Toggles) float64 {
	m := 10.0
	for _, smp := range samples {
		var vals []float64
		if t.Base {
			vals = append(vals, smp.Health, smp.Shield)
		}
		if t.EximusDef {
			vals = append(vals, smp.EximusDefHealth, smp.EximusDefShield)
		}
		if t.EximusNoDef {
			vals = append(vals, smp.EximusNoDefHealth)
		}
		if t.EximusDef || t.EximusNoDef {
			vals = append(vals, smp.Overguard)
		}
		if t.EnemyDamage {
			vals = append(vals, smp.EnemyDamage)
		}
		if t.ScalingDamage {
			vals = append(vals, smp.ScalingDamage)
		}
		if t.EHP {
			vals = append(vals, smp.EHP)
		}
		for _, v := range vals {
			m = math.Max(m, v)
		}
	}
	return m
}

func sourceValue(smp Sample, src IntersectionSource) float64 {
	if src == SourceScaling {
		return smp.ScalingDamage
	}
	return smp.EnemyDamage
}

// findIntersections reports upward crossings of a damage curve over EHP.
// Segments with any non-positive endpoint are skipped.
func findIntersections(samples []Sample, src IntersectionSource) []Intersection {
	var out []Intersection
	for i := 1; i < len(samples); i++ {
		a0, a1 := sourceValue(samples[i-1], src), sourceValue(samples[i], src)
		b0, b1 := samples[i-1].EHP, samples[i].EHP
		if a0 <= 0 || a1 <= 0 || b0 <= 0 || b1 <= 0 {
			continue
		}
		d0, d1 := a0-b0, a1-b1
		if d0 < 0 && d1 >= 0 {
			t := -d0 / (d1 - d0)
			out = append(out, Intersection{
				Level:  samples[i-1].Level + t*(samples[i].Level-samples[i-1].Level),
				Value:  a0 + t*(a1-a0),
				Source: src,
			})
		}
	}
	return out
}

func scalingAlwaysAbove(samples []Sample) bool {
	if len(samples) == 0 {
		return false
	}
	minDiff := math.Inf(1)
	for _, smp := range samples {
		minDiff = math.Min(minDiff, smp.ScalingDamage-smp.EHP)
	}
	return minDiff > 0
}
