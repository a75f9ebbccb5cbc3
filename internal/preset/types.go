// types.go
package preset

import "github.com/xtding233/enemy-scaling/internal/scaling"

// RawPreset is a preset file as written on disk. Pointer scalars keep "unset"
// apart from zero so layered files only override what they name.
type RawPreset struct {
	Version         string           `yaml:"version,omitempty"`
	Label           string           `yaml:"label,omitempty"`
	Notes           string           `yaml:"notes,omitempty"`
	Enemy           EnemyCfg         `yaml:"enemy,omitempty"`
	Strip           StripCfg         `yaml:"strip,omitempty"`
	Modifiers       ModifierCfg      `yaml:"modifiers,omitempty"`
	Buffs           BuffsCfg         `yaml:"buffs,omitempty"`
	Vulnerabilities VulnerabilityCfg `yaml:"vulnerabilities,omitempty"`
	Scaling         ScalingCfg       `yaml:"scaling,omitempty"`
	Axis            AxisCfg          `yaml:"axis,omitempty"`
	Toggles         TogglesCfg       `yaml:"toggles,omitempty"`
}

type EnemyCfg struct {
	Faction     string   `yaml:"faction,omitempty"`
	Type        string   `yaml:"type,omitempty"` // normal | eximus_def | eximus_nodef
	Difficulty  string   `yaml:"difficulty,omitempty"`
	BaseLevel   *float64 `yaml:"base_level,omitempty"`
	BaseHealth  *float64 `yaml:"base_health,omitempty"`
	BaseShield  *float64 `yaml:"base_shield,omitempty"`
	BaseArmor   *float64 `yaml:"base_armor,omitempty"`
	BaseDamage  *float64 `yaml:"base_damage,omitempty"`
	TargetLevel *float64 `yaml:"target_level,omitempty"`
}

type StripCfg struct {
	Heat            *bool    `yaml:"heat,omitempty"`
	CorrosiveStacks *int     `yaml:"corrosive_stacks,omitempty"`
	CPPct           *float64 `yaml:"cp_pct,omitempty"`
}

type ModifierCfg struct {
	StatusStacks       *int     `yaml:"status_stacks,omitempty"`
	AbilityStrengthPct *float64 `yaml:"ability_strength_pct,omitempty"`
	AbilityDamagePct   *float64 `yaml:"ability_damage_pct,omitempty"`
	ToxinDamagePct     *float64 `yaml:"toxin_damage_pct,omitempty"`
	TrueDamage         *bool    `yaml:"true_damage,omitempty"`
	TrueToxin          *bool    `yaml:"true_toxin,omitempty"`
}

type BuffCfg struct {
	Enabled            *bool `yaml:"enabled,omitempty"`
	Subsume            *bool `yaml:"subsume,omitempty"`
	PrecisionIntensify *bool `yaml:"precision_intensify,omitempty"`
}

type BuffsCfg struct {
	Roar    BuffCfg `yaml:"roar,omitempty"`
	Nourish BuffCfg `yaml:"nourish,omitempty"`
}

type VulnerabilityCfg struct {
	AtlasPetrify   *bool `yaml:"atlas_petrify,omitempty"`
	CalibanWrath   *bool `yaml:"caliban_wrath,omitempty"`
	EquinoxRage    *bool `yaml:"equinox_rage,omitempty"`
	GaraMass       *bool `yaml:"gara_mass,omitempty"`
	GaraSplinter   *bool `yaml:"gara_splinter,omitempty"`
	JadeJudgements *bool `yaml:"jade_judgements,omitempty"`
	KhoraDome      *bool `yaml:"khora_dome,omitempty"`
	NezhaChakram   *bool `yaml:"nezha_chakram,omitempty"`
	NovaPrime      *bool `yaml:"nova_prime,omitempty"`
	OraxiaEmbrace  *bool `yaml:"oraxia_embrace,omitempty"`
	QorvexWall     *bool `yaml:"qorvex_wall,omitempty"`
	YareliSea      *bool `yaml:"yareli_sea,omitempty"`
	YareliMerulina *bool `yaml:"yareli_merulina,omitempty"`
}

// ScalingCfg selects the scaling mode. Only the section matching Mode is used.
type ScalingCfg struct {
	Mode       string        `yaml:"mode,omitempty"` // reflective | level | health | plain
	Reflective ReflectiveCfg `yaml:"reflective,omitempty"`
	Level      LevelCfg      `yaml:"level,omitempty"`
	Health     HealthCfg     `yaml:"health,omitempty"`
}

type ReflectiveCfg struct {
	Ability         string            `yaml:"ability,omitempty"`
	RadiationStacks *int              `yaml:"radiation_stacks,omitempty"`
	MindControlPct  *float64          `yaml:"mind_control_pct,omitempty"`
	SummonersWrath  SummonersWrathCfg `yaml:"summoners_wrath,omitempty"`
	IronSkin        IronSkinCfg       `yaml:"iron_skin,omitempty"`
}

type SummonersWrathCfg struct {
	Enabled *bool    `yaml:"enabled,omitempty"`
	Pct     *float64 `yaml:"pct,omitempty"`
}

type IronSkinCfg struct {
	Shrapnel         *bool    `yaml:"shrapnel,omitempty"`
	DestructRank     *int     `yaml:"destruct_rank,omitempty"`
	DestructStacks   *int     `yaml:"destruct_stacks,omitempty"`
	BaseArmor        *float64 `yaml:"base_armor,omitempty"`
	ArmorIncreasePct *float64 `yaml:"armor_increase_pct,omitempty"`
	ArmorAdded       *float64 `yaml:"armor_added,omitempty"`
}

type LevelCfg struct {
	Ability         string     `yaml:"ability,omitempty"`
	FeastEnemyCount *int       `yaml:"feast_enemy_count,omitempty"`
	VaubanPassive   *bool      `yaml:"vauban_passive,omitempty"`
	Overdriver      *bool      `yaml:"overdriver,omitempty"`
	Arachne         ArachneCfg `yaml:"arachne,omitempty"`
	HolsterAmp      *bool      `yaml:"holster_amp,omitempty"`
	VigorousSwap    *bool      `yaml:"vigorous_swap,omitempty"`
	VastUntime      *bool      `yaml:"vast_untime,omitempty"`
	UntimeRift      *bool      `yaml:"untime_rift,omitempty"`
}

type ArachneCfg struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Rank    *int  `yaml:"rank,omitempty"`
}

type HealthCfg struct {
	Ability           string   `yaml:"ability,omitempty"`
	Smite             SmiteCfg `yaml:"smite,omitempty"`
	ReaveEnthrall     *bool    `yaml:"reave_enthrall,omitempty"`
	ReapEnemyCount    *int     `yaml:"reap_enemy_count,omitempty"`
	RegurgitateGastro *bool    `yaml:"regurgitate_gastro,omitempty"`
}

type SmiteCfg struct {
	Single         *bool `yaml:"single,omitempty"`
	AoE            *bool `yaml:"aoe,omitempty"`
	Subsume        *bool `yaml:"subsume,omitempty"`
	MarkedForDeath *bool `yaml:"marked_for_death,omitempty"`
}

type AxisCfg struct {
	XFrom *float64 `yaml:"x_from,omitempty"`
	XTo   *float64 `yaml:"x_to,omitempty"`
	YMax  *float64 `yaml:"y_max,omitempty"`
}

type TogglesCfg struct {
	Base          *bool `yaml:"base,omitempty"`
	EximusDef     *bool `yaml:"eximus_def,omitempty"`
	EximusNoDef   *bool `yaml:"eximus_nodef,omitempty"`
	EnemyDamage   *bool `yaml:"enemy_damage,omitempty"`
	ScalingDamage *bool `yaml:"scaling_damage,omitempty"`
	EHP           *bool `yaml:"ehp,omitempty"`
}

// ModePlain selects the plain multiplier chain (no ability config).
const ModePlain = "plain"

// Resolved is a fully merged, validated and normalized preset.
type Resolved struct {
	Name    string
	Label   string
	Version string // effective preset version for tracing
	Params  scaling.Params
	Toggles scaling.Toggles
}

// Named converts r for preset comparisons.
func (r Resolved) Named() scaling.NamedParams {
	return scaling.NamedParams{Name: r.Name, Label: r.Label, Params: r.Params, Toggles: r.Toggles}
}
