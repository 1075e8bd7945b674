package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Build variants. All of them share the save file and achievement order.
var (
	Classic = registry.Variant{
		ID:          "classic",
		Title:       "Flappy Classic",
		Description: "Shop, power-ups, clouds and a day/night sky",
		Features: core.Features{
			Shop:     true,
			PowerUps: true,
			Clouds:   true,
			DayNight: true,
			Level:    core.LevelEveryFifthPoint,
		},
	}

	BossRush = registry.Variant{
		ID:          "boss-rush",
		Title:       "Flappy Boss Rush",
		Description: "Boss every fifth level, achievements and a daily challenge",
		Features: core.Features{
			Achievements: true,
			Boss:         true,
			Daily:        true,
			Level:        core.LevelEveryRecycle,
		},
	}

	Deluxe = registry.Variant{
		ID:          "deluxe",
		Title:       "Flappy Deluxe",
		Description: "Everything: shop, power-ups, boss, achievements and daily challenge",
		Features:    core.AllFeatures(),
	}
)

func init() {
	registry.Register(Classic)
	registry.Register(BossRush)
	registry.Register(Deluxe)
}
