package report

import (
	"fmt"
	"strings"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

// Summary renders the target-level readout as a two-column table,
// followed by the ability breakdown when one applies.
func Summary(s scaling.Summary, m Mode) string {
	tb := NewTable(m)
	tb.Title(fmt.Sprintf("Level %s", Level(s.Level)))
	tb.Header("Stat", "Value", "Multiplier")
	tb.AlignRight(2, 3)
	tb.Row("Health", Stat(s.Health), Multiplier(s.HealthMultiplier))
	tb.Row("Shield", Stat(s.Shield), Multiplier(s.ShieldMultiplier))
	tb.Row("Overguard", Stat(s.Overguard), Multiplier(s.OverguardMultiplier))
	tb.Row("Armor", Stat(s.Armor), Percent(s.ArmorDR))
	tb.Row("EHP", Stat(s.EHP), "")
	tb.Row("Enemy Damage", Stat(s.EnemyDamage), Multiplier(s.DamageMultiplier))
	tb.Row(scalingLabel(s), Stat(s.ScalingDamage), Multiplier(s.ScalingMultiplier))
	if s.Vulnerability != 1 {
		tb.Row("Vulnerability", "", Multiplier(s.Vulnerability))
	}

	var b strings.Builder
	b.WriteString(tb.String())
	if bd := breakdown(s, m); bd != "" {
		b.WriteString("\n\n")
		b.WriteString(bd)
	}
	return b.String()
}

func scalingLabel(s scaling.Summary) string {
	if s.Ability == "" || s.Ability == "none" {
		return "Scaling Damage"
	}
	return fmt.Sprintf("Scaling Damage (%s)", s.Ability)
}

// breakdown lists the components behind the scaling number.
func breakdown(s scaling.Summary, m Mode) string {
	tb := NewTable(m)
	tb.Title("Breakdown")
	tb.Header("Component", "Value")
	tb.AlignRight(2)
	rows := 0
	add := func(name, v string) {
		tb.Row(name, v)
		rows++
	}

	if r := s.Reflective; r != nil {
		for _, f := range []struct {
			name string
			v    float64
		}{
			{"Status", r.Status}, {"Ability Damage", r.AbilityDamage}, {"Roar", r.Roar},
			{"Summoner's Wrath", r.SummonersWrath}, {"Nourish", r.Nourish}, {"Radiation", r.Radiation},
			{"Mind Control", r.MindControl}, {"Nekros", r.Nekros}, {"Damage Decoy", r.DamageDecoy},
			{"Mallet", r.Mallet}, {"Cold Ward", r.ColdWard}, {"Link", r.Link},
			{"Reverse Rotorswell", r.ReverseRotor}, {"Mesmer Skin", r.MesmerSkin}, {"Thorns", r.Thorns},
			{"Shatter Shield", r.ShatterShield},
		} {
			if f.v != 1 {
				add(f.name, Multiplier(f.v))
			}
		}
		add("Reflective Total", Multiplier(r.Total))
	}
	if is := s.IronSkin; is != nil {
		add("Base", Stat(is.Base))
		add("Armor", Stat(is.TotalArmor))
		add("Armor Multiplier", Multiplier(is.ArmorMultiplier))
		add("Absorbed Damage", Stat(is.EnemyDamage))
		add("Iron Skin Overguard", Stat(is.Total))
	}
	if sm := s.Smite; sm != nil {
		add("Main", fmt.Sprintf("%s (%s)", Stat(sm.Main), Percent(sm.MainPct)))
		add("AoE", fmt.Sprintf("%s (%s)", Stat(sm.AoE), Percent(sm.AoEPct)))
		if sm.MfDPct > 0 {
			add("Marked for Death", Percent(sm.MfDPct))
		}
	}
	if rs := s.ReapSow; rs != nil {
		add("True", Stat(rs.True))
		add("Blast", fmt.Sprintf("%s x%d", Stat(rs.Blast), rs.BlastHits))
		add("Vulnerability", Percent(rs.VulnPct))
		add("Reap/Sow Total", Stat(rs.Total))
	}
	for _, v := range s.Vulnerabilities {
		add(v.Name, "+"+Percent(v.Pct))
	}
	if rows == 0 {
		return ""
	}
	return tb.String()
}

// Series renders every step-th sample plus the last one. Columns follow the
// series toggles. step <= 0 picks a step giving about twenty rows.
func Series(s scaling.Series, m Mode, step int) string {
	type column struct {
		name string
		get  func(scaling.Sample) float64
	}
	cols := []column{{"Level", func(x scaling.Sample) float64 { return x.Level }}}
	if s.Toggles.Base {
		cols = append(cols, column{"Health", func(x scaling.Sample) float64 { return x.Health }})
		if s.HasShield {
			cols = append(cols, column{"Shield", func(x scaling.Sample) float64 { return x.Shield }})
		}
	}
	if s.Toggles.EximusDef {
		cols = append(cols, column{"Eximus Health", func(x scaling.Sample) float64 { return x.EximusDefHealth }})
		if s.HasShield {
			cols = append(cols, column{"Eximus Shield", func(x scaling.Sample) float64 { return x.EximusDefShield }})
		}
	}
	if s.Toggles.EximusNoDef {
		cols = append(cols, column{"Eximus (no def) Health", func(x scaling.Sample) float64 { return x.EximusNoDefHealth }})
	}
	if s.Toggles.EximusDef || s.Toggles.EximusNoDef {
		cols = append(cols, column{"Overguard", func(x scaling.Sample) float64 { return x.Overguard }})
	}
	cols = append(cols, column{"Armor", func(x scaling.Sample) float64 { return x.Armor }})
	if s.Toggles.EnemyDamage {
		cols = append(cols, column{"Enemy Damage", func(x scaling.Sample) float64 { return x.EnemyDamage }})
	}
	if s.Toggles.ScalingDamage {
		cols = append(cols, column{"Scaling Damage", func(x scaling.Sample) float64 { return x.ScalingDamage }})
	}
	if s.Toggles.EHP {
		cols = append(cols, column{"EHP", func(x scaling.Sample) float64 { return x.EHP }})
	}

	tb := NewTable(m)
	tb.Title(fmt.Sprintf("Levels %s-%s", Level(s.Start), Level(s.End)))
	header := make([]string, len(cols))
	right := make([]int, len(cols))
	for i, c := range cols {
		header[i] = c.name
		right[i] = i + 1
	}
	tb.Header(header...)
	tb.AlignRight(right...)

	if step <= 0 {
		step = max(1, len(s.Samples)/20)
	}
	for i, x := range s.Samples {
		if i%step != 0 && i != len(s.Samples)-1 {
			continue
		}
		row := make([]any, len(cols))
		row[0] = Level(x.Level)
		for j, c := range cols[1:] {
			row[j+1] = cell(c.get(x), m)
		}
		tb.Row(row...)
	}
	return tb.String()
}

// Intersections lists the levels where damage meets EHP. It returns "" when there are none.
func Intersections(s scaling.Series, m Mode) string {
	if len(s.Intersections) == 0 && !s.ScalingAboveEHP {
		return ""
	}
	tb := NewTable(m)
	tb.Title("Damage meets EHP")
	tb.Header("Source", "Level", "Value", "Active")
	tb.AlignRight(2, 3)
	for _, it := range s.Intersections {
		active := ""
		if s.Active != nil && *s.Active == it {
			active = "*"
		}
		tb.Row(string(it.Source), Level(it.Level), cell(it.Value, m), active)
	}
	if s.ScalingAboveEHP {
		tb.Row(string(scaling.SourceScaling), "all", "above EHP", "")
	}
	return tb.String()
}

// Comparison renders each line's value at the target level and at the range end.
func Comparison(c scaling.Comparison, m Mode) string {
	tb := NewTable(m)
	tb.Title(c.Metric.Label())
	tb.Header("Line", "Style", "Level "+Level(c.TargetLevel), "Level "+Level(c.End))
	tb.AlignRight(3, 4)
	for _, l := range c.Lines {
		tb.Row(l.Label, string(l.Style),
			cell(scaling.ValueAt(c.Levels, l.Values, c.TargetLevel), m),
			cell(scaling.ValueAt(c.Levels, l.Values, c.End), m))
	}
	return tb.String()
}

// cell keeps CSV machine-readable.
func cell(v float64, m Mode) string {
	if m == CSV {
		return fmt.Sprintf("%.0f", v)
	}
	return Stat(v)
}
