package scaling

import "math"

const (
	// ArmorCap bounds armor both before and after strip.
	ArmorCap = 2700
	// MaxArmorDR is the damage reduction reached at ArmorCap.
	MaxArmorDR = 0.9
	// corrosiveFullStrip is the stack count that removes all armor.
	corrosiveFullStrip = 14
	maxCorrosiveStacks = 25
)

// ArmorMultiplier blends 1+0.005·d^1.75 into 1+0.4·d^0.75 over d in [70,80].
func ArmorMultiplier(level, baseLevel float64) float64 {
	d := levelDelta(level, baseLevel)
	f1 := 1 + 0.005*math.Pow(d, 1.75)
	f2 := 1 + 0.4*math.Pow(d, 0.75)
	s := Smoothstep01((d - 70) / 10)
	return f1*(1-s) + f2*s
}

// ArmorAt is the unstripped, uncapped armor at level.
func ArmorAt(level, baseLevel, baseArmor float64) float64 {
	if baseArmor <= 0 {
		return 0
	}
	return baseArmor * ArmorMultiplier(level, baseLevel)
}

// NetArmorForDR clamps armor into [0, ArmorCap].
func NetArmorForDR(raw float64) float64 {
	return math.Min(math.Max(0, raw), ArmorCap)
}

// ArmorDamageReduction is 0.9·sqrt(armor/2700), clamped to [0, 0.9].
func ArmorDamageReduction(netArmor float64) float64 {
	if netArmor <= 0 {
		return 0
	}
	dr := MaxArmorDR * math.Sqrt(netArmor/ArmorCap)
	return math.Max(0, math.Min(MaxArmorDR, dr))
}

// ApplyArmorDR reduces a hit by armor. True damage passes through unchanged.
func ApplyArmorDR(value, dr float64, trueDamage bool) float64 {
	if trueDamage {
		return value
	}
	return value * (1 - math.Max(0, math.Min(MaxArmorDR, dr)))
}

// StripInputs are the armor strip sources.
type StripInputs struct {
	Heat            bool
	CorrosiveStacks int
	CPPct           float64
}

// ArmorStripMultiplier multiplies heat (0.5), corrosive (14 stacks strip all)
// and Corrosive Projection. Zero means fully stripped.
func ArmorStripMultiplier(in StripInputs) float64 {
	heat := 1.0
	if in.Heat {
		heat = 0.5
	}
	stacks := clampInt(in.CorrosiveStacks, 0, maxCorrosiveStacks)
	corrosive := 1 - math.Min(1, float64(stacks)/corrosiveFullStrip)
	cp := 1 - Clamp01(in.CPPct/100)
	return heat * corrosive * cp
}

// ArmorInfo is the armor state of an enemy at one level.
type ArmorInfo struct {
	Raw float64 // capped, before strip
	Net float64 // after strip
	DR  float64
}

// ScaledArmorWithStrip caps scaled armor, applies strip, caps again and derives DR.
func ScaledArmorWithStrip(p Params, level float64) ArmorInfo {
	raw := NetArmorForDR(ArmorAt(level, p.BaseLevel, p.BaseArmor))
	strip := ArmorStripMultiplier(StripInputs{
		Heat:            p.HeatEnabled,
		CorrosiveStacks: p.CorrosiveStacks,
		CPPct:           p.CPPct,
	})
	net := NetArmorForDR(raw * strip)
	return ArmorInfo{Raw: raw, Net: net, DR: ArmorDamageReduction(net)}
}
