package scaling

// Faction selects the health/shield/damage curve family.
type Faction string

const (
	Grineer      Faction = "grineer"
	Corpus       Faction = "corpus"
	Infested     Faction = "infested"
	Corrupted    Faction = "corrupted"
	Sentient     Faction = "sentient"
	Murmur       Faction = "murmur"
	Unaffiliated Faction = "unaffiliated"
	Techrot      Faction = "techrot"
)

// EnemyType distinguishes plain enemies from the two Eximus variants.
type EnemyType string

const (
	EnemyNormal      EnemyType = "normal"
	EximusDefenses   EnemyType = "eximus_def"
	EximusNoDefenses EnemyType = "eximus_nodef"
)

// IsEximus reports whether the enemy carries an overguard pool.
func (t EnemyType) IsEximus() bool {
	return t == EximusDefenses || t == EximusNoDefenses
}

// Difficulty is the mission difficulty tier.
type Difficulty string

const (
	DifficultyNormal Difficulty = "normal"
	DifficultySteel  Difficulty = "steel"
)

// ScalingMode is the family of ability damage being modeled.
type ScalingMode string

const (
	ModeReflective ScalingMode = "reflective"
	ModeLevel      ScalingMode = "level"
	ModeHealth     ScalingMode = "health"
)

// ReflectiveAbility is the single reflective ability active in reflective mode.
type ReflectiveAbility string

const (
	ReflectiveNone ReflectiveAbility = "none"
	MindControl    ReflectiveAbility = "mind_control"
	Nekros         ReflectiveAbility = "nekros"
	DamageDecoy    ReflectiveAbility = "damage_decoy"
	Mallet         ReflectiveAbility = "mallet"
	Accuse         ReflectiveAbility = "accuse"
	IronSkin       ReflectiveAbility = "iron_skin"
	ColdWard       ReflectiveAbility = "cold_ward"
	Link           ReflectiveAbility = "link"
	ReverseRotor   ReflectiveAbility = "reverse_rotor"
	MesmerSkin     ReflectiveAbility = "mesmer_skin"
	Thorns         ReflectiveAbility = "thorns"
	ShatterShield  ReflectiveAbility = "shatter_shield"
	Absorb         ReflectiveAbility = "absorb"
)

// LevelAbility selects a level-bucketed flat damage ability.
type LevelAbility string

const (
	LevelNone    LevelAbility = "none"
	FlechetteOrb LevelAbility = "flechette_orb"
	PhotonStrike LevelAbility = "photon_strike"
	GraspOfLohk  LevelAbility = "grasp_of_lohk"
	Feast        LevelAbility = "feast"
)

// HealthAbility selects a percent-of-enemy-health ability.
type HealthAbility string

const (
	HealthNone    HealthAbility = "none"
	Smite         HealthAbility = "smite"
	Reave         HealthAbility = "reave"
	ReapSow       HealthAbility = "reap_sow"
	ElementalWard HealthAbility = "ew_toxin"
	Regurgitate   HealthAbility = "regurgitate"
	EnergyVampire HealthAbility = "energy_vampire"
)

// RoarBuff is the Roar damage buff (Rhino).
type RoarBuff struct {
	Enabled            bool
	Subsume            bool
	PrecisionIntensify bool
}

// NourishBuff is the Nourish damage buff (Grendel).
type NourishBuff struct {
	Enabled            bool
	Subsume            bool
	PrecisionIntensify bool
}

// Vulnerabilities are the independent damage-vulnerability stackers.
type Vulnerabilities struct {
	AtlasPetrify   bool
	CalibanWrath   bool
	EquinoxRage    bool
	GaraMass       bool
	GaraSplinter   bool
	JadeJudgements bool
	KhoraDome      bool
	NezhaChakram   bool
	NovaPrime      bool
	OraxiaEmbrace  bool
	QorvexWall     bool
	YareliSea      bool
	YareliMerulina bool // only counts while YareliSea is on
}

// AxisOverrides pins the plot range; zero means unset.
type AxisOverrides struct {
	XFrom float64
	XTo   float64
	YMax  float64
}

// Params is the full engine input. Fields shared by every scaling mode live
// here; mode-specific fields live in Config.
type Params struct {
	Faction    Faction
	EnemyType  EnemyType
	Difficulty Difficulty

	BaseLevel  float64
	BaseHealth float64
	BaseShield float64
	BaseArmor  float64
	BaseDamage float64

	HeatEnabled     bool
	CorrosiveStacks int
	CPPct           float64

	StatusStacks int
	TargetLevel  float64

	AbilityStrengthPct float64
	AbilityDamagePct   float64
	ToxinDamagePct     float64

	Roar            RoarBuff
	Nourish         NourishBuff
	Vulnerabilities Vulnerabilities

	TrueDamage bool
	TrueToxin  bool

	Axis AxisOverrides

	// Config is one of Reflective, LevelScaling or HealthScaling.
	// nil falls back to the plain multiplier chain.
	Config ScalingConfig
}

// ScalingConfig is the per-mode part of Params.
type ScalingConfig interface {
	Mode() ScalingMode
	isScalingConfig()
}

// SummonersWrath is the Nekros/Damage Decoy companion buff.
type SummonersWrath struct {
	Enabled bool
	Pct     float64
}

// IronSkinOptions carries the warframe-side inputs of Iron Skin.
type IronSkinOptions struct {
	Shrapnel         bool
	DestructRank     int
	DestructStacks   int
	BaseArmor        float64
	ArmorIncreasePct float64
	ArmorAdded       float64
}

// Reflective models abilities that reflect or multiply enemy damage.
type Reflective struct {
	Ability         ReflectiveAbility
	RadiationStacks int
	MindControlPct  float64
	SummonersWrath  SummonersWrath
	IronSkin        IronSkinOptions
}

func (Reflective) Mode() ScalingMode { return ModeReflective }
func (Reflective) isScalingConfig()  {}

// ArcaneArachne is the Flechette-only arcane bonus.
type ArcaneArachne struct {
	Enabled bool
	Rank    int
}

// LevelScaling models abilities with a flat base that grows with level.
type LevelScaling struct {
	Ability         LevelAbility
	FeastEnemyCount int
	VaubanPassive   bool
	Overdriver      bool
	Arachne         ArcaneArachne
	HolsterAmp      bool
	VigorousSwap    bool
	VastUntime      bool
	UntimeRift      bool
}

func (LevelScaling) Mode() ScalingMode { return ModeLevel }
func (LevelScaling) isScalingConfig()  {}

// SmiteOptions selects the Smite components.
type SmiteOptions struct {
	Single         bool
	AoE            bool
	Subsume        bool
	MarkedForDeath bool
}

// HealthScaling models abilities dealing a share of enemy health.
type HealthScaling struct {
	Ability           HealthAbility
	Smite             SmiteOptions
	ReaveEnthrall     bool
	ReapEnemyCount    int
	RegurgitateGastro bool
}

func (HealthScaling) Mode() ScalingMode { return ModeHealth }
func (HealthScaling) isScalingConfig()  {}

// Mode returns the active scaling mode, or "" for the fallback chain.
func (p Params) Mode() ScalingMode {
	if p.Config == nil {
		return ""
	}
	return p.Config.Mode()
}

// Reflective returns the reflective config when that mode is active.
func (p Params) Reflective() (Reflective, bool) {
	r, ok := p.Config.(Reflective)
	return r, ok
}

// LevelScaling returns the level config when that mode is active.
func (p Params) LevelScaling() (LevelScaling, bool) {
	l, ok := p.Config.(LevelScaling)
	return l, ok
}

// HealthScaling returns the health config when that mode is active.
func (p Params) HealthScaling() (HealthScaling, bool) {
	h, ok := p.Config.(HealthScaling)
	return h, ok
}

// reflectiveAbility is the active reflective ability, ReflectiveNone outside reflective mode.
func (p Params) reflectiveAbility() ReflectiveAbility {
	if r, ok := p.Reflective(); ok && r.Ability != "" {
		return r.Ability
	}
	return ReflectiveNone
}

// Toggles selects which curves a series includes.
type Toggles struct {
	Base          bool
	EximusDef     bool
	EximusNoDef   bool
	EnemyDamage   bool
	ScalingDamage bool
	EHP           bool
}

// DefaultToggles matches the calculator's initial legend: base curve only.
func DefaultToggles() Toggles {
	return Toggles{Base: true}
}

// Defaults returns the calculator's initial form values.
func Defaults() Params {
	return Params{
		Faction:            Grineer,
		EnemyType:          EnemyNormal,
		Difficulty:         DifficultyNormal,
		BaseLevel:          1,
		BaseHealth:         300,
		BaseShield:         100,
		BaseDamage:         1,
		TargetLevel:        100,
		AbilityStrengthPct: 100,
		Config: Reflective{
			Ability:  ReflectiveNone,
			IronSkin: IronSkinOptions{DestructRank: 5},
		},
	}
}
