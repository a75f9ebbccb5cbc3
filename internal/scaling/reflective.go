package scaling

import "math"

const (
	mindControlFloorPct = 750
	radiationCapPct     = 550
)

// nourishBlocked lists reflective abilities Nourish never contributes to.
var nourishBlocked = map[ReflectiveAbility]bool{
	ColdWard:      true,
	Link:          true,
	DamageDecoy:   true,
	ReverseRotor:  true,
	MesmerSkin:    true,
	Thorns:        true,
	ShatterShield: true,
}

// radiationAbilities are the reflective abilities that radiation stacks amplify.
var radiationAbilities = map[ReflectiveAbility]bool{
	MindControl: true,
	Nekros:      true,
	DamageDecoy: true,
	Accuse:      true,
}

// MindControlMultiplier is 1 + max(pct, 750)/100.
func MindControlMultiplier(pct float64) float64 {
	return 1 + math.Max(math.Max(0, pct), mindControlFloorPct)/100
}

// NekrosMultiplier is 1.5 times strength, or 1 when that is not positive.
func NekrosMultiplier(p Params) float64 {
	m := 1.5 * StrengthMultiplier(p)
	if m <= 0 {
		return 1
	}
	return m
}

// DamageDecoyMultiplier is 3.5 times strength, or 1 when that is not positive.
func DamageDecoyMultiplier(p Params) float64 {
	m := 3.5 * StrengthMultiplier(p)
	if m <= 0 {
		return 1
	}
	return m
}

// MalletMultiplier is 2.5 times strength.
func MalletMultiplier(p Params) float64 {
	return 2.5 * StrengthMultiplier(p)
}

// RadiationMultiplier is 1 + min(550, 100+50(s-1))/100 for s>0 stacks.
func RadiationMultiplier(stacks int) float64 {
	s := clampInt(stacks, 0, 10)
	if s == 0 {
		return 1
	}
	return 1 + math.Min(radiationCapPct, 100+50*float64(s-1))/100
}

// SummonersWrathMultiplier applies only to Nekros and Damage Decoy.
func SummonersWrathMultiplier(r Reflective) float64 {
	if !r.SummonersWrath.Enabled {
		return 1
	}
	if r.Ability != Nekros && r.Ability != DamageDecoy {
		return 1
	}
	return pctMul(r.SummonersWrath.Pct)
}

// ReflectiveBreakdown holds each factor of the reflective chain. Factors that
// do not apply are 1.
type ReflectiveBreakdown struct {
	Status         float64 `json:"status"`
	AbilityDamage  float64 `json:"abilityDamage"`
	Roar           float64 `json:"roar"`
	SummonersWrath float64 `json:"summonersWrath"`
	Nourish        float64 `json:"nourish"`
	Radiation      float64 `json:"radiation"`
	MindControl    float64 `json:"mindControl"`
	Nekros         float64 `json:"nekros"`
	DamageDecoy    float64 `json:"damageDecoy"`
	Mallet         float64 `json:"mallet"`
	ColdWard       float64 `json:"coldWard"`
	Link           float64 `json:"link"`
	ReverseRotor   float64 `json:"reverseRotor"`
	MesmerSkin     float64 `json:"mesmerSkin"`
	Thorns         float64 `json:"thorns"`
	ShatterShield  float64 `json:"shatterShield"`
	Total          float64 `json:"total"`
}

// ReflectiveParts computes the reflective multiplier chain. useNourish lets
// callers exclude Nourish even when it is enabled.
func ReflectiveParts(p Params, useNourish bool) ReflectiveBreakdown {
	r, _ := p.Reflective()
	ability := p.reflectiveAbility()

	b := ReflectiveBreakdown{
		Status:         StatusDamageMultiplier(p.StatusStacks),
		AbilityDamage:  AbilityDamageMultiplier(p),
		Roar:           RoarMultiplier(p),
		SummonersWrath: SummonersWrathMultiplier(r),
		Nourish:        1,
		Radiation:      1,
		MindControl:    1,
		Nekros:         1,
		DamageDecoy:    1,
		Mallet:         1,
		ColdWard:       1,
		Link:           1,
		ReverseRotor:   1,
		MesmerSkin:     1,
		Thorns:         1,
		ShatterShield:  1,
	}
	if useNourish && p.Nourish.Enabled && !nourishBlocked[ability] {
		b.Nourish = NourishMultiplier(p)
	}
	if radiationAbilities[ability] {
		b.Radiation = RadiationMultiplier(r.RadiationStacks)
	}

	switch ability {
	case MindControl:
		b.MindControl = MindControlMultiplier(r.MindControlPct)
	case Nekros:
		b.Nekros = NekrosMultiplier(p)
	case DamageDecoy:
		b.DamageDecoy = DamageDecoyMultiplier(p)
	case Mallet:
		b.Mallet = MalletMultiplier(p)
	case ColdWard:
		b.ColdWard = 3 * strengthDelta(p)
	case Link:
		b.Link = 0.75
	case ReverseRotor:
		b.ReverseRotor = math.Min(0.75, 0.35*strengthDelta(p))
	case MesmerSkin:
		b.MesmerSkin = 1
	case Thorns:
		b.Thorns = 0.5
	case ShatterShield:
		b.ShatterShield = 1
	}

	b.Total = b.Status * b.AbilityDamage * b.Roar * b.SummonersWrath * b.Nourish * b.Radiation *
		b.MindControl * b.Nekros * b.DamageDecoy * b.Mallet * b.ColdWard * b.Link *
		b.ReverseRotor * b.MesmerSkin * b.Thorns * b.ShatterShield
	return b
}

// ScalingMultiplier is the buff chain applied on top of scaled enemy damage.
func ScalingMultiplier(p Params, useNourish bool) float64 {
	vuln := VulnerabilityMultiplier(p)
	if p.Mode() == ModeReflective {
		ability := p.reflectiveAbility()
		return ReflectiveParts(p, useNourish && ability != DamageDecoy).Total * vuln
	}
	nourish := 1.0
	if useNourish {
		nourish = NourishMultiplier(p)
	}
	return StatusDamageMultiplier(p.StatusStacks) * AbilityDamageMultiplier(p) *
		RoarMultiplier(p) * nourish * vuln
}
