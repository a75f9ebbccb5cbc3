package scaling

// HealthAbilitySpec holds the fixed constants of a percent-of-health ability.
type HealthAbilitySpec struct {
	Label       string
	Description string

	BasePct     float64
	EnthrallPct float64
	VulnBasePct float64
	BaseDamage  float64

	BaseMainPct     float64
	BaseAoEPct      float64
	CapMain         float64
	CapAoE          float64
	CapMainSubsume  float64
	CapAoESubsume   float64
	MainCapStrength float64
	AoECapStrength  float64
}

var healthSpecs = map[HealthAbility]HealthAbilitySpec{
	Smite: {
		Label:           "(Oberon) Smite Damage",
		Description:     "Single target ignores armor, shields and overguard; AoE ignores shields and respects armor DR.",
		BaseMainPct:     0.35,
		BaseAoEPct:      0.10,
		CapMain:         0.75,
		CapAoE:          0.30,
		CapMainSubsume:  0.50,
		CapAoESubsume:   0.20,
		MainCapStrength: 2.15,
		AoECapStrength:  3.0,
	},
	Reave: {
		Label:       "(Revenant) Reave Drain",
		Description: "Drains a share of enemy HP as true damage; Enthrall raises the base from 8% to 40%.",
		BasePct:     0.08,
		EnthrallPct: 0.40,
	},
	ReapSow: {
		Label:       "(Sevagoth) Reap / Sow Damage",
		Description: "25% HP as true damage to the target plus 25% as Blast per nearby enemy; Blast respects shields and armor DR.",
		BasePct:     0.25,
		VulnBasePct: 0.50,
	},
	ElementalWard: {
		Label:       "(Chroma) Elemental Ward (Toxin)",
		Description: "5% of enemy max HP as Toxin damage; does not scale with ability strength.",
		BasePct:     0.05,
	},
	Regurgitate: {
		Label:       "(Grendel) Regurgitate",
		Description: "2000 base Toxin damage times strength plus 10% enemy max HP; Gastro disables the DoT.",
		BaseDamage:  2000,
	},
	EnergyVampire: {
		Label:       "(Trinity) Energy Vampire",
		Description: "A share of enemy max HP as true damage; eligible for Marked for Death.",
		BasePct:     0.0625,
	},
}

// LookupHealthSpec returns the constants for a health ability.
func LookupHealthSpec(a HealthAbility) (HealthAbilitySpec, bool) {
	s, ok := healthSpecs[a]
	return s, ok
}

// LevelScale is how a level ability's base grows with level.
type LevelScale string

const (
	LevelScalePer10    LevelScale = "per10"
	LevelScalePerLevel LevelScale = "perLevel"
	LevelScaleCustom   LevelScale = "custom"
)

// LevelAbilitySpec holds the fixed constants of a level-scaled ability.
type LevelAbilitySpec struct {
	Base              float64
	Label             string
	UsesNourish       bool
	UsesAbilityDamage bool
	UsesStatus        bool
	Scale             LevelScale
	VastUntime        bool
	AllowVauban       bool
	AllowOverdriver   bool
}

var levelSpecs = map[LevelAbility]LevelAbilitySpec{
	FlechetteOrb: {
		Base: 300, Label: "(Vauban) Flechette Orb Damage",
		UsesNourish: true, UsesAbilityDamage: true, UsesStatus: true,
		Scale: LevelScalePer10, AllowVauban: true, AllowOverdriver: true,
	},
	PhotonStrike: {
		Base: 2500, Label: "(Vauban) Photon Strike Damage",
		UsesAbilityDamage: true, UsesStatus: true,
		Scale: LevelScalePer10, AllowVauban: true, AllowOverdriver: true,
	},
	GraspOfLohk: {
		Base: 50, Label: "(Xaku) Grasp of Lohk Damage",
		UsesAbilityDamage: true, UsesStatus: true,
		Scale: LevelScalePerLevel, VastUntime: true,
	},
	Feast: {
		Base: 500, Label: "(Grendel) Feast Damage",
		UsesAbilityDamage: true, UsesStatus: true,
		Scale: LevelScaleCustom,
	},
}

// LookupLevelSpec returns the constants for a level ability.
func LookupLevelSpec(a LevelAbility) (LevelAbilitySpec, bool) {
	s, ok := levelSpecs[a]
	return s, ok
}
