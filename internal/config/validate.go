package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return invalid("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.TickRate <= 0:
		return invalid("tick_rate must be positive, got %d", c.World.TickRate)
	case c.Physics.Gravity <= 0:
		return invalid("gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.JumpStrength >= 0:
		return invalid("jump_strength must be negative, got %v", c.Physics.JumpStrength)
	case c.Avatar.Radius <= 0:
		return invalid("avatar radius must be positive, got %v", c.Avatar.Radius)
	case c.Obstacles.Width <= 0 || c.Obstacles.Gap <= 0:
		return invalid("obstacle width and gap must be positive")
	case c.Obstacles.GapTopMin > c.Obstacles.GapTopMax:
		return invalid("gap_top_min %d exceeds gap_top_max %d", c.Obstacles.GapTopMin, c.Obstacles.GapTopMax)
	case c.Speed.Base <= 0 || c.Speed.Max < c.Speed.Base || c.Speed.PerLevel < 0:
		return invalid("speed curve must satisfy 0 < base <= max and per_level >= 0")
	case c.Progression.StartLevel < 1 || c.Progression.LevelEvery < 1:
		return invalid("start_level and level_every must be at least 1")
	case c.PowerUps.Margin < 0 || 2*c.PowerUps.Margin > c.World.Height:
		return invalid("power_ups margin must be in [0, height/2], got %v", c.PowerUps.Margin)
	case c.PowerUps.SlowFactor <= 0 || c.PowerUps.SlowFactor > 1:
		return invalid("slow_factor must be in (0, 1], got %v", c.PowerUps.SlowFactor)
	case c.Boss.Health <= 0 || c.Boss.LevelInterval < 1:
		return invalid("boss health and level_interval must be positive")
	case c.Daily.MinTarget > c.Daily.MaxTarget:
		return invalid("daily min_target %d exceeds max_target %d", c.Daily.MinTarget, c.Daily.MaxTarget)
	case c.DayNight.CycleTicks <= 0:
		return invalid("day_night cycle_ticks must be positive")
	case len(c.Cosmetics) == 0:
		return invalid("at least one cosmetic is required")
	}

	for i, item := range c.Shop {
		if item.Cost < 0 {
			return invalid("shop item %d (%s) has negative cost", i, item.Name)
		}
		switch item.Kind {
		case KindCosmetic:
			if item.Cosmetic <= 0 || item.Cosmetic >= len(c.Cosmetics) {
				return invalid("shop item %d (%s) references cosmetic %d", i, item.Name, item.Cosmetic)
			}
		case KindPowerUp:
			if item.PowerUp != PowerUpImmunity && item.PowerUp != PowerUpSlowMotion {
				return invalid("shop item %d (%s) has unknown power-up %q", i, item.Name, item.PowerUp)
			}
		default:
			return invalid("shop item %d (%s) has unknown kind %q", i, item.Name, item.Kind)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
