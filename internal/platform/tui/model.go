package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// toastTicks is how long a notification stays on screen.
const toastTicks = 120

// Options configures a game model.
type Options struct {
	Machine  *flappy.Machine
	Runs     *storage.Store // nil disables run history
	Sound    *audio.Player  // nil disables sound
	Profile  string
	Logger   *log.Logger
	TickRate int // 0 means the configured world tick rate
	Width    int
	Height   int
	Embedded bool // quitting ends the model instead of the program
}

// Model is the Bubble Tea model running one flappy machine.
type Model struct {
	machine *flappy.Machine
	runs    *storage.Store
	sound   *audio.Player
	profile string
	logger  *log.Logger

	keys   KeyMap
	help   help.Model
	table  table.Model
	screen *core.Screen
	frame  core.InputFrame
	snap   flappy.Snapshot

	tickRate      int
	width, height int
	toast         string
	toastLeft     int

	id       int64
	embedded bool
	done     bool
	quitting bool
}

// NewModel creates a model for the given machine.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	width, height := max(opts.Width, 20), max(opts.Height, 10)

	h := help.New()
	h.Width = width

	m := Model{
		machine:  opts.Machine,
		runs:     opts.Runs,
		sound:    opts.Sound,
		profile:  profileOrDefault(opts.Profile),
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		table:    newAchievementsTable(width, height),
		screen:   core.NewScreen(width, height-1),
		width:    width,
		height:   height,
		id:       nextModelID(),
		embedded: opts.Embedded,
	}
	m.snap = m.machine.Snapshot()
	m.tickRate = opts.TickRate
	if m.tickRate <= 0 {
		m.tickRate = m.snap.TickRate
	}
	m.table.SetRows(achievementRows(m.snap.Achievements))
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.tickRate)
}

// Update handles messages and advances the simulation on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Mute):
		if m.sound != nil {
			m.sound.SetMuted(!m.sound.Muted())
			if m.sound.Muted() {
				m.notify("Sound off")
			} else {
				m.notify("Sound on")
			}
		}
		return m, nil
	}

	m.frame.Set(m.keys.Action(msg, m.snap.Mode))
	return m, nil
}

// handleMouse turns a left click into a world-space click for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	v := newViewport(m.screen.Width(), m.screen.Height(), m.snap.WorldW, m.snap.WorldH)
	if x, y, ok := v.world(msg.X, msg.Y); ok {
		m.frame.Click(x, y)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = max(msg.Width, 20)
	m.height = max(msg.Height, 10)
	m.screen.Resize(m.width, m.height-1)
	m.help.Width = m.width
	m.table = newAchievementsTable(m.width, m.height)
	m.table.SetRows(achievementRows(m.snap.Achievements))
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.machine.Step(m.frame)
	m.frame = core.InputFrame{}

	for _, ev := range res.Events {
		m.consume(ev)
	}
	if m.toastLeft > 0 {
		m.toastLeft--
		if m.toastLeft == 0 {
			m.toast = ""
		}
	}

	before := m.snap.Mode
	m.snap = m.machine.Snapshot()
	if m.snap.Mode == flappy.ModeAchievements && before != flappy.ModeAchievements {
		m.table.SetRows(achievementRows(m.snap.Achievements))
	}
	return m, tickCmd(m.id, m.tickRate)
}

// consume forwards one simulation event to sound, storage and the screen.
func (m *Model) consume(ev flappy.Event) {
	if ev.Kind.Sound() && m.sound != nil {
		m.sound.PlayEvent(ev.Kind.String())
	}

	switch ev.Kind {
	case flappy.EventAchievementUnlocked:
		m.notify("Achievement unlocked: " + ev.Name)
	case flappy.EventDailyCompleted:
		m.notify("Daily challenge complete!")
	case flappy.EventBossDefeated:
		m.notify("Boss defeated!")
	case flappy.EventRunEnded:
		m.recordRun(ev.Run)
	case flappy.EventPurchase:
		cosmetic := ev.Item >= 0 && ev.Item < len(m.snap.Shop) && m.snap.Shop[ev.Item].Item.Kind == flappy.ItemCosmetic
		switch {
		case ev.Result == flappy.PurchaseInsufficientFunds:
			m.notify("Not enough coins for " + ev.Name)
		case cosmetic && (ev.Result == flappy.PurchaseOK || ev.Result == flappy.PurchaseOwned):
			m.saveWardrobe()
		}
	}
}

func (m *Model) notify(text string) {
	m.toast = text
	m.toastLeft = toastTicks
}

func (m *Model) recordRun(r *flappy.RunSummary) {
	if m.runs == nil || r == nil {
		return
	}
	_, err := m.runs.SaveRun(storage.Run{
		Profile:     m.profile,
		Variant:     r.Variant,
		Score:       r.Score,
		Level:       r.Level,
		CoinsEarned: r.CoinsEarned,
		Ticks:       r.Ticks,
		EndedAt:     r.EndedAt,
	})
	if err != nil {
		m.logger.Error("could not record run", "error", err)
	}
}

func (m *Model) saveWardrobe() {
	if m.runs == nil {
		return
	}
	w := storage.Wardrobe{
		Owned:    m.machine.OwnedCosmetics(),
		Equipped: m.machine.State().Wardrobe.Equipped,
	}
	if err := m.runs.SaveWardrobe(m.profile, w); err != nil {
		m.logger.Error("could not save wardrobe", "error", err)
	}
}

// quit performs the final save and ends the model.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.machine.Close(); err != nil {
		m.logger.Error("final save failed", "error", err)
	}
	if m.embedded {
		m.done = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// Done reports whether an embedded model has finished.
func (m Model) Done() bool {
	return m.done
}

func (m Model) helpView() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return style.Render(m.help.View(m.keys.HelpFor(m.snap.Mode, m.snap.Features)))
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}
	if m.snap.Mode == flappy.ModeAchievements {
		return m.achievementsView()
	}

	drawFrame(m.screen, m.snap, m.toast)
	night := m.snap.Features.DayNight && !m.snap.IsDay &&
		(m.snap.Mode == flappy.ModePlaying || m.snap.Mode == flappy.ModeGameOver)
	return RenderScreen(m.screen, night) + "\n" + m.helpView()
}

// Run starts a Bubble Tea program for one machine and blocks until it exits.
func Run(opts Options) error {
	opts.Embedded = false
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
