package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone             Action = iota
	ActionJump                    // Space, W, Up - flap while playing, start from the menu
	ActionOpenShop                // S - open the shop from the menu
	ActionOpenAchievements        // A - open the achievements screen from the menu
	ActionBack                    // B, Escape - leave a sub-screen
	ActionToMenu                  // M - return to the menu after game over
	ActionConfirm                 // Enter - confirm selection
	ActionUp                      // Up arrow - shop cursor up
	ActionDown                    // Down arrow - shop cursor down
	ActionClick                   // Mouse click with world coordinates
	ActionQuit                    // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionOpenShop:
		return "OpenShop"
	case ActionOpenAchievements:
		return "OpenAchievements"
	case ActionBack:
		return "Back"
	case ActionToMenu:
		return "ToMenu"
	case ActionConfirm:
		return "Confirm"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionClick:
		return "Click"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one discrete input symbol. X and Y are only meaningful for
// ActionClick and are expressed in world units.
type InputEvent struct {
	Action Action
	X, Y   float64
}

// InputFrame holds the input events queued between two simulation ticks.
// Events keep their arrival order; the simulation drains them once per tick.
type InputFrame struct {
	events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set queues an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.events = append(f.events, InputEvent{Action: a})
}

// Click queues a pointer click at world coordinates (x, y).
func (f *InputFrame) Click(x, y float64) {
	f.events = append(f.events, InputEvent{Action: ActionClick, X: x, Y: y})
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.events {
		if e.Action == a {
			return true
		}
	}
	return false
}

// Events returns the queued events in arrival order.
func (f InputFrame) Events() []InputEvent {
	return f.events
}

// Empty reports whether nothing was queued.
func (f InputFrame) Empty() bool {
	return len(f.events) == 0
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if f.events == nil {
		return InputFrame{}
	}
	events := make([]InputEvent, len(f.events))
	copy(events, f.events)
	return InputFrame{events: events}
}
