package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// PickerKeyMap defines the key bindings of the variant picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel lets the player choose a build variant.
type PickerModel struct {
	variants       []registry.Variant
	cursor         int
	width          int
	height         int
	keys           PickerKeyMap
	help           help.Model
	quitting       bool
	selected       *registry.Variant
	openScoreboard bool
}

// NewPickerModel creates a picker listing every registered variant.
func NewPickerModel(width, height int) PickerModel {
	h := help.New()
	h.Width = width
	return PickerModel{
		variants: registry.List(),
		width:    width,
		height:   height,
		keys:     DefaultPickerKeyMap(),
		help:     h,
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles picker navigation.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.variants)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.variants) > 0 {
				v := m.variants[m.cursor]
				m.selected = &v
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Scores):
			m.openScoreboard = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the variant list.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L A P P Y"), "F L A P P Y", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a variant", "Choose a variant", m.width))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		line := "  " + v.Title
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + v.Title
			style = activeStyle
		}
		b.WriteString(centerText(style.Render(line), line, m.width))
		b.WriteString("\n")
	}

	if len(m.variants) > 0 {
		v := m.variants[m.cursor]
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(v.Description), v.Description, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// centerText pads rendered so that its plain text is centered within width.
func centerText(rendered, plain string, width int) string {
	n := lipgloss.Width(plain)
	if n >= width {
		return rendered
	}
	return strings.Repeat(" ", (width-n)/2) + rendered
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	VariantID       string
	WantsScoreboard bool
	Quit            bool
}

func (m PickerModel) result() PickerResult {
	switch {
	case m.openScoreboard:
		return PickerResult{WantsScoreboard: true}
	case m.selected != nil:
		return PickerResult{VariantID: m.selected.ID}
	default:
		return PickerResult{Quit: true}
	}
}

// RunVariantPicker runs the picker and returns the selection.
func RunVariantPicker(width, height int) (PickerResult, error) {
	p := tea.NewProgram(NewPickerModel(width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return PickerResult{Quit: true}, err
	}
	m, ok := final.(PickerModel)
	if !ok {
		return PickerResult{Quit: true}, nil
	}
	return m.result(), nil
}
