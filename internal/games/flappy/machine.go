package flappy

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/save"
)

// ProgressStore persists progress between sessions. Load never fails; it
// returns defaults when nothing usable is stored.
type ProgressStore interface {
	Load(names []string) save.Record
	Save(r save.Record) error
}

// Options configures a Machine. Zero values select defaults.
type Options struct {
	Config  config.FlappyConfig // zero value means config.DefaultFlappyConfig()
	Variant registry.Variant    // zero value means the deluxe variant
	Seed    int64               // 0 means seed from the clock
	Clock   func() time.Time    // nil means time.Now
	Store   ProgressStore       // nil disables persistence
	Logger  *log.Logger         // nil means log.Default()

	// Owned lists cosmetic indexes owned besides the default one.
	Owned []int
	// Equipped is the equipped cosmetic index; ignored unless owned.
	Equipped int
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Mode   Mode
	Events []Event
}

// Machine is the top-level state machine. It owns the GameState and is not
// safe for concurrent use; each session creates its own.
type Machine struct {
	cfg      config.FlappyConfig
	variant  registry.Variant
	features core.Features
	catalog  []ShopItem

	state GameState

	rng    *rand.Rand
	clock  func() time.Time
	store  ProgressStore
	logger *log.Logger

	events []Event
	dirty  bool // progress changed since the last save
}

// New creates a machine in the Menu mode with progress loaded from the store.
func New(opts Options) *Machine {
	m := &Machine{
		cfg:     opts.Config,
		variant: opts.Variant,
		clock:   opts.Clock,
		store:   opts.Store,
		logger:  opts.Logger,
	}
	if m.cfg.World.Width == 0 {
		m.cfg = config.DefaultFlappyConfig()
	}
	if m.variant.ID == "" {
		m.variant = Deluxe
	}
	if m.clock == nil {
		m.clock = time.Now
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = m.clock().UnixNano()
	}
	m.rng = rand.New(rand.NewSource(seed))
	m.features = m.variant.Features
	m.catalog = buildCatalog(m.cfg.Shop)

	m.state = GameState{
		Mode:         ModeMenu,
		Achievements: newAchievements(),
		Sky:          Sky{IsDay: true},
		Wardrobe:     m.newWardrobe(opts.Owned, opts.Equipped),
	}
	m.state.Avatar = m.freshAvatar()
	m.state.Obstacle = newObstacle(m.cfg, m.rng)
	m.state.Progress.Level = m.cfg.Progression.StartLevel

	if m.store != nil {
		m.applyRecord(m.store.Load(AchievementNames()))
	}
	m.refreshDaily()
	return m
}

func (m *Machine) newWardrobe(owned []int, equipped int) Wardrobe {
	w := Wardrobe{Owned: make([]bool, len(m.cfg.Cosmetics))}
	w.Owned[0] = true
	for _, i := range owned {
		if i >= 0 && i < len(w.Owned) {
			w.Owned[i] = true
		}
	}
	if equipped >= 0 && equipped < len(w.Owned) && w.Owned[equipped] {
		w.Equipped = equipped
	}
	return w
}

func (m *Machine) freshAvatar() Avatar {
	return Avatar{
		X:        m.cfg.Avatar.X,
		Y:        m.cfg.World.Height / 2,
		Radius:   m.cfg.Avatar.Radius,
		Cosmetic: m.state.Wardrobe.Equipped,
	}
}

// Step advances the simulation by one fixed tick. The Playing update runs
// first; the frame's input is then applied in order, unless the update
// itself changed the mode (a jump queued on the fatal tick is dropped).
func (m *Machine) Step(in core.InputFrame) StepResult {
	m.events = nil
	before := m.state.Mode

	if m.state.Mode == ModePlaying {
		m.update()
	}
	if m.state.Mode == before {
		for _, ev := range in.Events() {
			m.handle(ev)
		}
	}

	m.state.Tick++
	return StepResult{Mode: m.state.Mode, Events: m.events}
}

// update runs one Playing tick: motion, spawning, collision, progression.
func (m *Machine) update() {
	m.move()
	recycled := m.spawn()
	fatal := m.collide()
	m.progress(recycled)
	if fatal {
		m.endRun()
	}
}

// handle applies one input event to the current mode.
func (m *Machine) handle(ev core.InputEvent) {
	s := &m.state
	switch s.Mode {
	case ModeMenu:
		switch ev.Action {
		case core.ActionJump, core.ActionConfirm:
			m.startRun()
		case core.ActionOpenShop:
			if m.features.Shop {
				s.Mode = ModeShop
				s.ShopCursor = 0
			}
		case core.ActionOpenAchievements:
			if m.features.Achievements {
				s.Mode = ModeAchievements
			}
		}

	case ModePlaying:
		if ev.Action == core.ActionJump {
			s.Avatar.flap(m.cfg.Physics.JumpStrength)
			m.emit(Event{Kind: EventJump})
		}

	case ModeGameOver:
		switch ev.Action {
		case core.ActionJump, core.ActionConfirm:
			m.startRun()
		case core.ActionToMenu, core.ActionBack:
			s.Mode = ModeMenu
		}

	case ModeShop:
		n := len(m.catalog)
		switch ev.Action {
		case core.ActionBack, core.ActionToMenu:
			s.Mode = ModeMenu
			if m.dirty {
				m.persist()
			}
		case core.ActionUp:
			if n > 0 {
				s.ShopCursor = (s.ShopCursor - 1 + n) % n
			}
		case core.ActionDown:
			if n > 0 {
				s.ShopCursor = (s.ShopCursor + 1) % n
			}
		case core.ActionConfirm:
			m.buy(s.ShopCursor)
		case core.ActionClick:
			if i := hitItem(n, m.cfg.World.Width, ev.X, ev.Y); i >= 0 {
				s.ShopCursor = i
				m.buy(i)
			}
		}

	case ModeAchievements:
		if ev.Action == core.ActionBack || ev.Action == core.ActionToMenu {
			s.Mode = ModeMenu
		}
	}
}

// startRun enters Playing, resetting every per-run field.
func (m *Machine) startRun() {
	s := &m.state
	s.Mode = ModePlaying
	s.Avatar = m.freshAvatar()
	if s.Armed.Active() {
		s.Avatar.Effect = s.Armed
		s.Armed = Effect{}
		s.Flags.PowerUpUsed = true
	}
	s.Progress.RunPowerUp = s.Avatar.Effect.Active()
	s.Obstacle = newObstacle(m.cfg, m.rng)
	s.Pickups = s.Pickups[:0]
	s.Clouds = s.Clouds[:0]
	s.Boss = Boss{}

	s.Progress.Score = 0
	s.Progress.Level = m.cfg.Progression.StartLevel
	s.Progress.RunCoins = 0
	s.Progress.Ticks = 0
	m.syncBoss()
	m.refreshDaily()

	m.logger.Debug("run started", "variant", m.variant.ID, "effect", s.Avatar.Effect.Type)
}

// endRun enters GameOver: one high-score comparison and one save.
func (m *Machine) endRun() {
	s := &m.state
	s.Mode = ModeGameOver

	newHigh := s.Progress.Score > s.Progress.HighScore
	if newHigh {
		s.Progress.HighScore = s.Progress.Score
	}
	m.emit(Event{Kind: EventGameOver})
	m.persist()

	summary := &RunSummary{
		Variant:      m.variant.ID,
		Score:        s.Progress.Score,
		Level:        s.Progress.Level,
		CoinsEarned:  s.Progress.RunCoins,
		Ticks:        s.Progress.Ticks,
		NewHighScore: newHigh,
		EndedAt:      m.clock(),
	}
	m.emit(Event{Kind: EventRunEnded, Run: summary})
	m.logger.Info("run ended", "variant", m.variant.ID, "score", summary.Score,
		"level", summary.Level, "coins", summary.CoinsEarned, "high_score", newHigh)
}

func (m *Machine) emit(e Event) {
	m.events = append(m.events, e)
}

// State returns a copy of the game state. Slices are shared with the
// machine and must not be modified.
func (m *Machine) State() GameState {
	return m.state
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.state.Mode
}

// Catalog returns the shop catalog.
func (m *Machine) Catalog() []ShopItem {
	return m.catalog
}

// Config returns the configuration the machine runs with.
func (m *Machine) Config() config.FlappyConfig {
	return m.cfg
}

// Variant returns the build variant the machine runs.
func (m *Machine) Variant() registry.Variant {
	return m.variant
}

// Close performs the final save.
func (m *Machine) Close() error {
	if m.store == nil {
		return nil
	}
	m.dirty = false
	return m.store.Save(m.record())
}
