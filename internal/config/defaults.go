package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml and is used when that file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{Width: 400, Height: 600, TickRate: 60},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpStrength: -10,
		},
		Avatar: AvatarConfig{X: 50, Radius: 20},
		Obstacles: ObstacleConfig{
			Width:     50,
			Gap:       200,
			GapTopMin: 100,
			GapTopMax: 400,
		},
		Speed: SpeedCurve{Base: 3, PerLevel: 0.5, Max: 10, Scaling: true},
		Progression: ProgressionConfig{
			StartLevel:      1,
			LevelEvery:      5,
			CoinsPerRecycle: 1,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:     0.005,
			Margin:          50,
			DespawnX:        -30,
			PickupRange:     20,
			ImmunityTicks:   300,
			SlowMotionTicks: 300,
			SlowFactor:      0.5,
		},
		Clouds: CloudConfig{SpawnChance: 0.01, Width: 80, Height: 40, Speed: 1},
		Boss: BossConfig{
			Width:         100,
			Height:        100,
			Speed:         2,
			Health:        100,
			Damage:        10,
			Bonus:         50,
			LevelInterval: 5,
		},
		Daily:    DailyConfig{MinTarget: 10, MaxTarget: 50, Bonus: 100},
		DayNight: DayNightConfig{CycleTicks: 1800},
		Cosmetics: []CosmeticConfig{
			{Name: "Blue", Color: "blue"},
			{Name: "Red", Color: "red"},
			{Name: "Yellow", Color: "yellow"},
			{Name: "Green", Color: "green"},
		},
		Shop: []ShopItemConfig{
			{Name: "Red Bird", Kind: KindCosmetic, Cost: 50, Cosmetic: 1},
			{Name: "Yellow Bird", Kind: KindCosmetic, Cost: 100, Cosmetic: 2},
			{Name: "Green Bird", Kind: KindCosmetic, Cost: 150, Cosmetic: 3},
			{Name: "Immunity", Kind: KindPowerUp, Cost: 30, PowerUp: PowerUpImmunity},
			{Name: "Slow Motion", Kind: KindPowerUp, Cost: 40, PowerUp: PowerUpSlowMotion},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
