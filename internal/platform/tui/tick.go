// Package tui runs the flappy simulation in a terminal through Bubble Tea.
// It owns the fixed tick loop, maps keys and mouse clicks to actions and
// draws simulation snapshots; the simulation itself never sees a terminal.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick of the model with the same ID.
// Ticks of a finished model are ignored by its successor.
type TickMsg struct {
	ID int64
	At time.Time
}

var modelIDs atomic.Int64

func nextModelID() int64 {
	return modelIDs.Add(1)
}

// tickCmd returns a command that sends one tick message after 1/tickRate seconds.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, At: t}
	})
}
