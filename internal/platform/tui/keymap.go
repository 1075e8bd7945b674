package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// KeyMap holds the game's key bindings. Several keys are shared between
// modes (w is flap while playing and cursor up in the shop), so bindings
// are resolved against the current mode.
type KeyMap struct {
	Flap         key.Binding
	Confirm      key.Binding
	Shop         key.Binding
	Achievements key.Binding
	Back         key.Binding
	Menu         key.Binding
	Up           key.Binding
	Down         key.Binding
	Mute         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space", "flap"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Shop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shop"),
		),
		Achievements: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "achievements"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Mute: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "sound"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action resolves a key press to a simulation action for the given mode.
// Quit and Mute are platform keys and resolve to ActionNone here.
func (k KeyMap) Action(msg tea.KeyMsg, mode flappy.Mode) core.Action {
	switch mode {
	case flappy.ModeMenu:
		switch {
		case key.Matches(msg, k.Flap):
			return core.ActionJump
		case key.Matches(msg, k.Confirm):
			return core.ActionConfirm
		case key.Matches(msg, k.Shop):
			return core.ActionOpenShop
		case key.Matches(msg, k.Achievements):
			return core.ActionOpenAchievements
		}

	case flappy.ModePlaying:
		if key.Matches(msg, k.Flap) {
			return core.ActionJump
		}

	case flappy.ModeGameOver:
		switch {
		case key.Matches(msg, k.Flap):
			return core.ActionJump
		case key.Matches(msg, k.Confirm):
			return core.ActionConfirm
		case key.Matches(msg, k.Menu):
			return core.ActionToMenu
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}

	case flappy.ModeShop:
		switch {
		case key.Matches(msg, k.Up):
			return core.ActionUp
		case key.Matches(msg, k.Down):
			return core.ActionDown
		case key.Matches(msg, k.Confirm):
			return core.ActionConfirm
		case key.Matches(msg, k.Back):
			return core.ActionBack
		case key.Matches(msg, k.Menu):
			return core.ActionToMenu
		}

	case flappy.ModeAchievements:
		switch {
		case key.Matches(msg, k.Back):
			return core.ActionBack
		case key.Matches(msg, k.Menu):
			return core.ActionToMenu
		}
	}
	return core.ActionNone
}

// bindings is a fixed list of bindings shown by the help bar.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// HelpFor returns the bindings that do something in the given mode.
func (k KeyMap) HelpFor(mode flappy.Mode, f core.Features) help.KeyMap {
	switch mode {
	case flappy.ModeMenu:
		b := bindings{k.Flap}
		if f.Shop {
			b = append(b, k.Shop)
		}
		if f.Achievements {
			b = append(b, k.Achievements)
		}
		return append(b, k.Mute, k.Quit)
	case flappy.ModePlaying:
		return bindings{k.Flap, k.Mute, k.Quit}
	case flappy.ModeGameOver:
		retry := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "retry"))
		return bindings{retry, k.Menu, k.Quit}
	case flappy.ModeShop:
		buy := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/click", "buy"))
		return bindings{k.Up, k.Down, buy, k.Back}
	default:
		return bindings{k.Back, k.Quit}
	}
}
