// Package config provides YAML-based game configuration loading and
// difficulty management for the flappy simulation.
package config

// FlappyConfig contains all tunable constants of the simulation.
// Distances are world units (the playfield is World.Width x World.Height),
// durations are ticks.
type FlappyConfig struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Avatar      AvatarConfig      `yaml:"avatar"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Speed       SpeedCurve        `yaml:"speed"`
	Progression ProgressionConfig `yaml:"progression"`
	PowerUps    PowerUpConfig     `yaml:"power_ups"`
	Clouds      CloudConfig       `yaml:"clouds"`
	Boss        BossConfig        `yaml:"boss"`
	Daily       DailyConfig       `yaml:"daily"`
	DayNight    DayNightConfig    `yaml:"day_night"`
	Cosmetics   []CosmeticConfig  `yaml:"cosmetics"`
	Shop        []ShopItemConfig  `yaml:"shop"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"`
}

// PhysicsConfig defines the avatar's vertical motion.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // added to velocity every tick
	JumpStrength float64 `yaml:"jump_strength"` // velocity set by a jump (negative is up)
}

// AvatarConfig defines the avatar's fixed column and size.
type AvatarConfig struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines the obstacle pair geometry.
type ObstacleConfig struct {
	Width     float64 `yaml:"width"`
	Gap       float64 `yaml:"gap"`
	GapTopMin int     `yaml:"gap_top_min"`
	GapTopMax int     `yaml:"gap_top_max"`
}

// ProgressionConfig defines score and level rules.
type ProgressionConfig struct {
	StartLevel      int `yaml:"start_level"`
	LevelEvery      int `yaml:"level_every"` // score step for point-based leveling
	CoinsPerRecycle int `yaml:"coins_per_recycle"`
}

// PowerUpConfig defines pickup spawning and effect durations.
type PowerUpConfig struct {
	SpawnChance     float64 `yaml:"spawn_chance"`
	Margin          float64 `yaml:"margin"` // pickups spawn in [margin, height-margin]
	DespawnX        float64 `yaml:"despawn_x"`
	PickupRange     float64 `yaml:"pickup_range"`
	ImmunityTicks   int     `yaml:"immunity_ticks"`
	SlowMotionTicks int     `yaml:"slow_motion_ticks"`
	SlowFactor      float64 `yaml:"slow_factor"`
}

// CloudConfig defines decorative clouds.
type CloudConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
}

// BossConfig defines the boss entity.
type BossConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Health        int     `yaml:"health"`
	Damage        int     `yaml:"damage"`
	Bonus         int     `yaml:"bonus"`
	LevelInterval int     `yaml:"level_interval"`
}

// DailyConfig defines the daily challenge.
type DailyConfig struct {
	MinTarget int `yaml:"min_target"`
	MaxTarget int `yaml:"max_target"`
	Bonus     int `yaml:"bonus"`
}

// DayNightConfig defines the day/night cycle.
type DayNightConfig struct {
	CycleTicks int `yaml:"cycle_ticks"`
}

// CosmeticConfig names one avatar color. Index 0 is owned from the start.
type CosmeticConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// ShopItemConfig is one catalog entry. Kind is "cosmetic" or "power_up";
// Cosmetic indexes Cosmetics, PowerUp is "immunity" or "slow_motion".
type ShopItemConfig struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Cost     int    `yaml:"cost"`
	Cosmetic int    `yaml:"cosmetic,omitempty"`
	PowerUp  string `yaml:"power_up,omitempty"`
}

// Shop item kinds.
const (
	KindCosmetic = "cosmetic"
	KindPowerUp  = "power_up"
)

// Power-up names used in the shop catalog.
const (
	PowerUpImmunity   = "immunity"
	PowerUpSlowMotion = "slow_motion"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables level scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
