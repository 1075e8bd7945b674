// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueJump Cue = iota
	CueScore
	CueGameOver
	CuePowerUp
	CueBossHit
)

// String returns the event name the cue plays for.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueGameOver:
		return "game_over"
	case CuePowerUp:
		return "power_up_collected"
	case CueBossHit:
		return "boss_hit"
	default:
		return "unknown"
	}
}

// CueFor maps an event name to its cue.
func CueFor(event string) (Cue, bool) {
	for c := range cueNotes {
		if c.String() == event {
			return c, true
		}
	}
	return 0, false
}

// Player mixes cues into the system speaker. A muted or uninitialized
// player drops every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. A nil logger means log.Default().
func NewPlayer(volume float64, muted bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
		logger: logger,
	}
}

// Init opens the speaker. Muted players never touch the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return nil
	}
	return p.open()
}

func (p *Player) open() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(SampleRate))
	return nil
}

// Play queues a cue. It never blocks on playback.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := Synthesize(c, SampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvent plays the cue for an event name, ignoring events without one.
func (p *Player) PlayEvent(event string) {
	if c, ok := CueFor(event); ok {
		p.Play(c)
	}
}

// SetMuted toggles output. Unmuting opens the speaker if Init skipped it;
// when the device cannot be opened the player stays muted.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !muted {
		if err := p.open(); err != nil {
			p.logger.Warn("audio unavailable", "error", err)
			return
		}
	}
	p.muted = muted
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
