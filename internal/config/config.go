// Package config provides YAML-based configuration loading and difficulty
// management for Bee Kind.
package config

// BeeKindConfig contains all tunable parameters of the simulation.
type BeeKindConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	AI         AIConfig         `yaml:"ai"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines player movement parameters, in pixels per tick.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Friction         float64 `yaml:"friction"`
	Speed            float64 `yaml:"speed"`      // walking speed
	HurtSpeed        float64 `yaml:"hurt_speed"` // walking speed while hurt
	JumpSpeed        float64 `yaml:"jump_speed"`
	CoyoteTicks      int     `yaml:"coyote_ticks"` // jump grace after leaving ground
}

// WeaponConfig defines honey gun parameters.
type WeaponConfig struct {
	HeatTicks  int     `yaml:"heat_ticks"` // cooldown between shots
	ShotTTL    int     `yaml:"shot_ttl"`
	ShotSpeed  float64 `yaml:"shot_speed"`
	FlashTicks int     `yaml:"flash_ticks"` // muzzle flash shown for the first ticks of a shot
	HitTTL     int     `yaml:"hit_ttl"`     // remaining life of a shot after a hit
}

// AIConfig defines NPC speeds, health and dwell timers.
type AIConfig struct {
	BeeSpeed    float64 `yaml:"bee_speed"`
	ZombeeSpeed float64 `yaml:"zombee_speed"`
	GrubSpeed   float64 `yaml:"grub_speed"`

	ZombeeHealth int `yaml:"zombee_health"`
	GrubHealth   int `yaml:"grub_health"`
	PlantHealth  int `yaml:"plant_health"`

	GrowTicks  int `yaml:"grow_ticks"`
	GrowJitter int `yaml:"grow_jitter"`

	ForageDwell int `yaml:"forage_dwell"` // bee at a flower or hive
	HatchDwell  int `yaml:"hatch_dwell"`  // new bee, new zombee
	StealDwell  int `yaml:"steal_dwell"`
	BreakDwell  int `yaml:"break_dwell"`
	EatDwell    int `yaml:"eat_dwell"`
	IdleDwell   int `yaml:"idle_dwell"` // no target or end of route

	HiveThreshold  int     `yaml:"hive_threshold"`  // hive pollen needed to hatch a bee
	CarryThreshold int     `yaml:"carry_threshold"` // bees keep foraging below this
	GrubGrowth     float64 `yaml:"grub_growth"`     // health multiple at which a grub transforms
}

// SpawnConfig defines population caps and the plant spawn cadence.
type SpawnConfig struct {
	IntervalTicks int     `yaml:"interval_ticks"`
	MaxZombees    int     `yaml:"max_zombees"`
	MaxBees       int     `yaml:"max_bees"`
	ColonyBase    int     `yaml:"colony_base"`   // bees needed on the first level
	FlowerChance  float64 `yaml:"flower_chance"` // spawn a flower rather than a toadstool
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the level set.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	CapReduction      int     `yaml:"cap_reduction"`      // Zombee cap reduction at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means fixed.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyFixed, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
