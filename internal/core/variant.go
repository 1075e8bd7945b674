package core

import "strings"

// LevelMode selects how the level advances during a run.
type LevelMode int

const (
	// LevelEveryFifthPoint raises the level whenever the score reaches a multiple of 5.
	LevelEveryFifthPoint LevelMode = iota
	// LevelEveryRecycle raises the level on every obstacle recycle.
	LevelEveryRecycle
)

// String returns the config name of the mode.
func (m LevelMode) String() string {
	switch m {
	case LevelEveryFifthPoint:
		return "every_fifth_point"
	case LevelEveryRecycle:
		return "every_recycle"
	default:
		return "unknown"
	}
}

// Features is the set of optional systems a build variant enables.
type Features struct {
	Shop         bool
	Achievements bool // dedicated achievements screen; unlock tracking is always on
	PowerUps     bool
	Clouds       bool
	DayNight     bool
	Boss         bool
	Daily        bool
	Level        LevelMode
}

// AllFeatures enables every optional system.
func AllFeatures() Features {
	return Features{
		Shop:         true,
		Achievements: true,
		PowerUps:     true,
		Clouds:       true,
		DayNight:     true,
		Boss:         true,
		Daily:        true,
		Level:        LevelEveryFifthPoint,
	}
}

// String lists the enabled systems, e.g. "shop,boss,daily".
func (f Features) String() string {
	var parts []string
	add := func(on bool, name string) {
		if on {
			parts = append(parts, name)
		}
	}
	add(f.Shop, "shop")
	add(f.Achievements, "achievements")
	add(f.PowerUps, "power-ups")
	add(f.Clouds, "clouds")
	add(f.DayNight, "day-night")
	add(f.Boss, "boss")
	add(f.Daily, "daily")
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}
