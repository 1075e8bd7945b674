package flappy

import "time"

// EventKind identifies a notification emitted during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventScore
	EventGameOver
	EventPowerUpCollected
	EventBossHit
	EventBossDefeated
	EventAchievementUnlocked
	EventPurchase
	EventDailyCompleted
	EventRunEnded
)

// String returns the event's wire name, e.g. "power_up_collected".
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	case EventPowerUpCollected:
		return "power_up_collected"
	case EventBossHit:
		return "boss_hit"
	case EventBossDefeated:
		return "boss_defeated"
	case EventAchievementUnlocked:
		return "achievement_unlocked"
	case EventPurchase:
		return "purchase"
	case EventDailyCompleted:
		return "daily_completed"
	case EventRunEnded:
		return "run_ended"
	default:
		return "unknown"
	}
}

// Sound reports whether the event has an audio cue.
func (k EventKind) Sound() bool {
	switch k {
	case EventJump, EventScore, EventGameOver, EventPowerUpCollected, EventBossHit:
		return true
	default:
		return false
	}
}

// Event is a fire-and-forget notification for the audio and platform layers.
type Event struct {
	Kind   EventKind
	Name   string         // achievement, item or power-up name
	Item   int            // catalog index, for EventPurchase
	Result PurchaseResult // for EventPurchase
	Run    *RunSummary    // for EventRunEnded
}

// RunSummary describes a finished run.
type RunSummary struct {
	Variant      string
	Score        int
	Level        int
	CoinsEarned  int
	Ticks        int
	NewHighScore bool
	EndedAt      time.Time
}
