package scaling

import "math"

// VulnerabilityEntry is one active vulnerability stacker and its bonus as a fraction.
type VulnerabilityEntry struct {
	Name string  `json:"name"`
	Pct  float64 `json:"pct"`
}

type vulnSource struct {
	name   string
	on     func(Vulnerabilities) bool
	base   float64
	scales bool
}

var vulnSources = []vulnSource{
	{"Atlas Petrify", func(v Vulnerabilities) bool { return v.AtlasPetrify }, 0.5, true},
	{"Caliban Wrath", func(v Vulnerabilities) bool { return v.CalibanWrath }, 0.35, true},
	{"Equinox Rage", func(v Vulnerabilities) bool { return v.EquinoxRage }, 0.5, true},
	{"Gara Mass Vitrify", func(v Vulnerabilities) bool { return v.GaraMass }, 0.5, true},
	{"Gara Splinter Storm", func(v Vulnerabilities) bool { return v.GaraSplinter }, 0.35, true},
	{"Jade Judgements", func(v Vulnerabilities) bool { return v.JadeJudgements }, 0.5, false},
	{"Khora Dome", func(v Vulnerabilities) bool { return v.KhoraDome }, 2.0, false},
	{"Nezha Chakram", func(v Vulnerabilities) bool { return v.NezhaChakram }, 1.0, true},
	{"Nova Prime", func(v Vulnerabilities) bool { return v.NovaPrime }, 1.0, false},
	{"Oraxia Embrace", func(v Vulnerabilities) bool { return v.OraxiaEmbrace }, 0.5, true},
	{"Qorvex Wall", func(v Vulnerabilities) bool { return v.QorvexWall }, 0.25, true},
	{"Yareli Sea Snares", func(v Vulnerabilities) bool { return v.YareliSea }, 2.0, true},
	{"Yareli Merulina", func(v Vulnerabilities) bool { return v.YareliSea && v.YareliMerulina }, 2.0, true},
}

// VulnerabilityEntries lists the enabled stackers in a fixed order.
func VulnerabilityEntries(p Params) []VulnerabilityEntry {
	str := StrengthMultiplier(p)
	var out []VulnerabilityEntry
	for _, s := range vulnSources {
		if !s.on(p.Vulnerabilities) {
			continue
		}
		pct := s.base
		if s.scales {
			pct *= str
		}
		out = append(out, VulnerabilityEntry{Name: s.name, Pct: pct})
	}
	return out
}

// VulnerabilityMultiplier is the product of (1+pct) over enabled stackers.
func VulnerabilityMultiplier(p Params) float64 {
	m := 1.0
	for _, e := range VulnerabilityEntries(p) {
		m *= 1 + math.Max(0, e.Pct)
	}
	return m
}
