// Package flappy implements the side-scrolling flappy simulation: a single
// avatar falls under gravity and flaps through gaps in scrolling obstacles,
// collecting power-ups, fighting a boss on boss levels and spending coins in
// a shop between runs.
//
// All mutable state lives in one GameState aggregate owned by a Machine.
// The platform feeds one core.InputFrame per fixed tick and draws the
// read-only Snapshot; the package never touches a terminal or a clock
// other than the one it is given.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mode is the top-level game screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeShop
	ModeAchievements
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeShop:
		return "shop"
	case ModeAchievements:
		return "achievements"
	default:
		return "unknown"
	}
}

// PowerUp identifies a timed effect.
type PowerUp int

const (
	PowerUpNone PowerUp = iota
	PowerUpImmunity
	PowerUpSlowMotion
)

// String returns the display name of the power-up.
func (p PowerUp) String() string {
	switch p {
	case PowerUpNone:
		return "None"
	case PowerUpImmunity:
		return "Immunity"
	case PowerUpSlowMotion:
		return "Slow Motion"
	default:
		return "?"
	}
}

// Glyph returns the single-letter marker drawn on a pickup.
func (p PowerUp) Glyph() rune {
	switch p {
	case PowerUpImmunity:
		return 'I'
	case PowerUpSlowMotion:
		return 'S'
	default:
		return '?'
	}
}

// Effect is a power-up with an integer tick countdown.
type Effect struct {
	Type      PowerUp
	Remaining int
}

// Active reports whether the effect still applies.
func (e Effect) Active() bool {
	return e.Type != PowerUpNone && e.Remaining > 0
}

// Is reports whether the effect is active and of type p.
func (e Effect) Is(p PowerUp) bool {
	return e.Active() && e.Type == p
}

// countdown consumes one tick; the effect clears when it reaches zero.
func (e *Effect) countdown() {
	if e.Type == PowerUpNone {
		return
	}
	e.Remaining--
	if e.Remaining <= 0 {
		*e = Effect{}
	}
}

// Avatar is the player-controlled bird. X never changes during a run.
type Avatar struct {
	X, Y     float64 // center
	Velocity float64 // vertical, positive is down
	Radius   float64
	Cosmetic int
	Effect   Effect
}

// Box returns the avatar's bounding box.
func (a Avatar) Box() core.Box {
	return core.BoxAround(a.X, a.Y, a.Radius)
}

// Boss is the boss entity of boss levels.
type Boss struct {
	X, Y          float64 // top-left
	Width, Height float64
	Health        int
	Active        bool // on a boss level: moves, collides, drawn
	Spawned       bool // placed this run; paused in place between boss levels
}

// Box returns the boss bounding box.
func (b Boss) Box() core.Box {
	return core.BoxAt(b.X, b.Y, b.Width, b.Height)
}

// Pickup is a collectible power-up scrolling toward the avatar.
type Pickup struct {
	Type PowerUp
	X, Y float64 // center
}

// Cloud is a decorative, non-colliding rectangle.
type Cloud struct {
	X, Y          float64 // top-left
	Width, Height float64
}

// Progress holds run and lifetime counters.
type Progress struct {
	Score     int // current run, monotonic within a run
	Level     int
	Coins     int // lifetime balance, never negative
	HighScore int // never decreases
	RunCoins  int // coins earned during the current run
	Ticks     int // ticks spent in the current run

	RunPowerUp bool // a power-up was active at some point this run
}

// Achievement is one entry of the achievement list.
type Achievement struct {
	Name        string
	Description string
	Achieved    bool
}

// DailyChallenge is the score target assigned for one calendar day.
type DailyChallenge struct {
	Description string
	Target      int
	Completed   bool
	Date        time.Time // midnight UTC of the assigned day, zero if unassigned
}

// Wardrobe tracks owned and equipped cosmetics by index.
type Wardrobe struct {
	Owned    []bool
	Equipped int
}

// Flags are session-level facts the achievement rules read.
type Flags struct {
	NightReached bool
	BossDefeated bool
	Purchased    bool
	PowerUpUsed  bool
}

// Sky is the day/night cycle. It keeps running across runs.
type Sky struct {
	IsDay   bool
	Counter int
}

// GameState is the single aggregate of everything the simulation mutates.
type GameState struct {
	Mode Mode

	Avatar   Avatar
	Obstacle ObstaclePair
	Boss     Boss
	Pickups  []Pickup
	Clouds   []Cloud

	Progress     Progress
	Achievements []Achievement
	Daily        DailyChallenge
	Wardrobe     Wardrobe
	Flags        Flags
	Sky          Sky

	// Armed is a power-up bought in the shop, applied when the next run starts.
	Armed Effect

	ShopCursor int
	Tick       int // ticks since the machine was created
}
