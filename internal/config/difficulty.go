package config

import "math"

// SpeedCurve maps a level to the obstacle scroll speed.
// Speed is non-decreasing in level and never exceeds Max.
type SpeedCurve struct {
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Max      float64 `yaml:"max"`
	Scaling  bool    `yaml:"scaling"`
}

// Speed returns the obstacle speed at the given level. Level 1 (and below)
// scrolls at Base; from level 2 on the speed is Base + level*PerLevel, so
// the first level up adds two steps at once.
func (c SpeedCurve) Speed(level int) float64 {
	if !c.Scaling || level <= 1 {
		return math.Min(c.Base, c.Max)
	}
	return math.Min(c.Base+float64(level)*c.PerLevel, c.Max)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Speed.Scaling = false
		return
	case DifficultyEasy:
		cfg.Speed.Base = 2.5
		cfg.Speed.PerLevel = 0.25
		cfg.Obstacles.Gap = 220
	case DifficultyHard:
		cfg.Speed.Base = 4
		cfg.Speed.PerLevel = 0.75
		cfg.Obstacles.Gap = 180
	}
	cfg.Speed.Scaling = true
}
