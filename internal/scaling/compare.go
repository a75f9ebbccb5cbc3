package scaling

import (
	"fmt"
	"math"
	"strings"
)

// Metric is the quantity a comparison plots.
type Metric string

const (
	MetricHealth  Metric = "health"
	MetricShield  Metric = "shield"
	MetricDamage  Metric = "damage"
	MetricEHP     Metric = "ehp"
	MetricScaling Metric = "scaling"
)

// Metrics lists every comparison metric.
func Metrics() []Metric {
	return []Metric{MetricHealth, MetricShield, MetricDamage, MetricEHP, MetricScaling}
}

// Label is the display name of m.
func (m Metric) Label() string {
	switch m {
	case MetricHealth:
		return "Health"
	case MetricShield:
		return "Shield"
	case MetricDamage:
		return "Enemy Damage"
	case MetricEHP:
		return "EHP"
	case MetricScaling:
		return "Scaling Damage"
	}
	return string(m)
}

// SupportsEximus reports whether eximus variant lines make sense for m.
func (m Metric) SupportsEximus() bool {
	return m == MetricHealth || m == MetricShield || m == MetricEHP
}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Metrics() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// LineStyle is the stroke pattern of a comparison line.
type LineStyle string

const (
	StyleSolid  LineStyle = "solid"
	StyleDashed LineStyle = "dashed"
	StyleDotted LineStyle = "dotted"
)

// Line is one plotted curve of a comparison.
type Line struct {
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Color  string    `json:"color"`
	Style  LineStyle `json:"style"`
	Values []float64 `json:"values"`
}

// Comparison is a set of lines sharing one level grid.
type Comparison struct {
	Metric      Metric    `json:"metric"`
	Levels      []float64 `json:"levels"`
	Start       float64   `json:"start"`
	End         float64   `json:"end"`
	MaxY        float64   `json:"maxY"`
	TargetLevel float64   `json:"targetLevel"`
	Lines       []Line    `json:"lines"`
}

// ComparisonOptions selects factions and lines for BuildComparison.
type ComparisonOptions struct {
	Metric   Metric
	Factions []Faction // nil means ComparisonFactions()
	// Base/EximusDef/EximusNoDef pick lines for eximus-capable metrics.
	// Other metrics always show the base line only.
	Base        bool
	EximusDef   bool
	EximusNoDef bool
	Samples     int
	NoTrack     bool
}

// BuildComparison plots metric for each faction using p's other inputs.
func BuildComparison(p Params, opts ComparisonOptions, axis AxisState) (Comparison, AxisState) {
	start, end := SampleRange(p)
	xs := Grid(start, end, SampleCount(opts.Samples))
	factions := opts.Factions
	if factions == nil {
		factions = ComparisonFactions()
	}

	showBase, showDef, showNoDef := true, false, false
	if opts.Metric.SupportsEximus() {
		showBase, showDef, showNoDef = opts.Base, opts.EximusDef, opts.EximusNoDef
	}

	c := Comparison{Metric: opts.Metric, Levels: xs, Start: start, End: end, TargetLevel: p.TargetLevel}
	for _, f := range factions {
		fp := p
		fp.Faction = f
		info, _ := FactionSpec(f)
		if showBase {
			base := fp
			if opts.Metric == MetricEHP {
				base.EnemyType = EnemyNormal
			}
			c.Lines = append(c.Lines, Line{
				Key:    string(f),
				Label:  opts.Metric.Label() + " - " + info.Label,
				Color:  info.Color,
				Style:  StyleSolid,
				Values: sampleMetric(base, opts.Metric, xs, EnemyNormal),
			})
		}
		if showDef {
			c.Lines = append(c.Lines, Line{
				Key:    string(f) + "-exdef",
				Label:  info.Label + " (Eximus +Def)",
				Color:  info.Color,
				Style:  StyleDashed,
				Values: sampleMetric(fp, opts.Metric, xs, EximusDefenses),
			})
		}
		if showNoDef {
			c.Lines = append(c.Lines, Line{
				Key:    string(f) + "-exnodef",
				Label:  info.Label + " (Eximus -Def)",
				Color:  info.Color,
				Style:  StyleDotted,
				Values: sampleMetric(fp, opts.Metric, xs, EximusNoDefenses),
			})
		}
	}
	c.MaxY, axis = comparisonMaxY(c, p.Axis.YMax, axis, !opts.NoTrack)
	return c, axis
}

// sampleMetric evaluates metric at each level for the given enemy variant.
func sampleMetric(p Params, m Metric, xs []float64, variant EnemyType) []float64 {
	out := make([]float64, len(xs))
	diff := DifficultyFactor(p.Difficulty)
	for i, lvl := range xs {
		switch m {
		case MetricHealth:
			switch variant {
			case EximusDefenses:
				out[i] = HealthEximusDefAt(lvl, p.BaseLevel, p.Faction, p.BaseHealth) * diff
			case EximusNoDefenses:
				out[i] = HealthEximusNoDefAt(lvl, p.BaseLevel, p.Faction, p.BaseHealth) * diff
			default:
				out[i] = HealthAt(lvl, p.BaseLevel, p.Faction, p.BaseHealth) * diff
			}
		case MetricShield:
			switch variant {
			case EximusDefenses:
				out[i] = ShieldEximusAt(lvl, p.BaseLevel, p.Faction, p.BaseShield) * diff
			case EximusNoDefenses:
				out[i] = 0
			default:
				out[i] = ShieldAt(lvl, p.BaseLevel, p.Faction, p.BaseShield) * diff
			}
		case MetricDamage:
			out[i] = p.BaseDamage * DamageMultiplier(lvl, p.BaseLevel, p.Faction)
		case MetricEHP:
			vp := p
			if variant != EnemyNormal {
				vp.EnemyType = variant
			}
			out[i] = EHPAt(vp, lvl)
		case MetricScaling:
			out[i] = ScalingDamageAt(p, lvl)
		}
	}
	return out
}

// NamedParams is a saved parameter set with its visible curves.
type NamedParams struct {
	Name    string
	Label   string
	Params  Params
	Toggles Toggles
}

var presetColors = []string{"#22c55e", "#d946ef"}

// BuildPresetComparison overlays metric for each preset on a shared range:
// the earliest start and latest end across presets, unless active pins the axis.
// Each preset is evaluated at active's target level with its own effective enemy type.
func BuildPresetComparison(active Params, presets []NamedParams, m Metric, samples int, axis AxisState) (Comparison, AxisState) {
	target := math.Max(1, active.TargetLevel)
	start, end := presetRange(active, presets, target)
	xs := Grid(start, end, SampleCount(samples))

	c := Comparison{Metric: m, Levels: xs, Start: start, End: end, TargetLevel: target}
	for i, np := range presets {
		p := np.Params
		p.TargetLevel = target
		p.Axis = AxisOverrides{XFrom: start, XTo: end, YMax: active.Axis.YMax}
		p.EnemyType = EffectiveEnemyType(p, np.Toggles)

		label := "Preset " + np.Name
		if l := strings.TrimSpace(np.Label); l != "" {
			label = np.Name + ": " + l
		}
		variant := EnemyNormal
		if m == MetricHealth || m == MetricEHP {
			variant = p.EnemyType
		}
		c.Lines = append(c.Lines, Line{
			Key:    np.Name,
			Label:  label,
			Color:  presetColors[i%len(presetColors)],
			Style:  StyleSolid,
			Values: sampleMetric(p, m, xs, variant),
		})
	}
	c.MaxY, axis = comparisonMaxY(c, active.Axis.YMax, axis, true)
	return c, axis
}

func presetRange(active Params, presets []NamedParams, target float64) (float64, float64) {
	starts := []float64{}
	ends := []float64{target}
	push := func(dst *[]float64, v float64) {
		if v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			*dst = append(*dst, v)
		}
	}
	for _, np := range presets {
		p := np.Params
		if p.Axis.XFrom > 0 {
			push(&starts, p.Axis.XFrom)
		} else {
			push(&starts, p.BaseLevel)
		}
		switch {
		case p.Axis.XTo > 0:
			push(&ends, p.Axis.XTo)
		case p.TargetLevel > 0:
			push(&ends, p.TargetLevel)
		default:
			push(&ends, target)
		}
	}
	if active.Axis.XFrom > 0 {
		push(&starts, active.Axis.XFrom)
	} else {
		push(&starts, active.BaseLevel)
	}
	if active.Axis.XTo > 0 {
		push(&ends, active.Axis.XTo)
	} else {
		push(&ends, target)
	}

	start := 1.0
	if len(starts) > 0 {
		start = math.Max(1, minOf(starts))
	}
	end := math.Max(start, maxOf(ends))
	if active.Axis.XFrom > 0 {
		start = active.Axis.XFrom
	}
	if active.Axis.XTo > 0 {
		end = math.Max(start, active.Axis.XTo)
	}
	return start, end
}

func comparisonMaxY(c Comparison, userYMax float64, axis AxisState, track bool) (float64, AxisState) {
	if userYMax > 0 {
		if track {
			axis = pinnedAxis(userYMax, c.Start, c.End)
		}
		return userYMax, axis
	}
	raw := 10.0
	for _, l := range c.Lines {
		raw = math.Max(raw, maxOf(l.Values))
	}
	return SmoothMaxY(raw, c.Start, c.End, axis, track, true)
}

// ValueAt returns the sample nearest to level, or 0 for an empty series.
func ValueAt(levels, values []float64, level float64) float64 {
	n := min(len(levels), len(values))
	if n == 0 {
		return 0
	}
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < n; i++ {
		if d := math.Abs(levels[i] - level); d < bestDist {
			best, bestDist = i, d
		}
	}
	return values[best]
}

// Resample linearly interpolates every line of c onto levels. The source
// grid is assumed evenly spaced from Start to End.
func Resample(c Comparison, levels []float64) (Comparison, bool) {
	if len(levels) == 0 || len(c.Levels) == 0 {
		return Comparison{}, false
	}
	srcLen := len(c.Levels)
	span := c.End - c.Start
	if span == 0 {
		span = 1
	}
	out := c
	out.Levels = append([]float64(nil), levels...)
	out.Start, out.End = levels[0], levels[len(levels)-1]
	out.Lines = make([]Line, len(c.Lines))
	maxY := 1.0
	for li, l := range c.Lines {
		vals := make([]float64, len(levels))
		for i, x := range levels {
			pos := clampFloat((x-c.Start)/span*float64(srcLen-1), 0, float64(srcLen-1))
			lo := int(math.Floor(pos))
			hi := min(srcLen-1, int(math.Ceil(pos)))
			va := valueOr(l.Values, lo, 0)
			vb := valueOr(l.Values, hi, va)
			frac := 0.0
			if hi != lo {
				frac = (pos - float64(lo)) / float64(hi-lo)
			}
			vals[i] = va + (vb-va)*frac
			maxY = math.Max(maxY, vals[i])
		}
		l.Values = vals
		out.Lines[li] = l
	}
	out.MaxY = maxY
	return out, true
}

func valueOr(vals []float64, i int, def float64) float64 {
	if i < 0 || i >= len(vals) {
		return def
	}
	return vals[i]
}

func minOf(vals []float64) float64 {
	m := math.Inf(1)
	for _, v := range vals {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := math.Inf(-1)
	for _, v := range vals {
		m = math.Max(m, v)
	}
	return m
}
