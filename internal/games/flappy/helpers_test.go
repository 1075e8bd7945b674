package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/save"
)

var testDay = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// bare disables every random system so ticks are fully predictable.
var bare = registry.Variant{ID: "bare", Features: core.Features{Level: core.LevelEveryFifthPoint}}

// memStore is an in-memory ProgressStore that counts saves.
type memStore struct {
	rec   save.Record
	saves int
}

func (s *memStore) Load(names []string) save.Record {
	if s.rec.Achievements == nil {
		return save.NewRecord(names)
	}
	return s.rec
}

func (s *memStore) Save(r save.Record) error {
	s.saves++
	s.rec = r
	return nil
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestMachine(v registry.Variant, store ProgressStore) *Machine {
	return newMachineAt(v, store, testDay)
}

func newMachineAt(v registry.Variant, store ProgressStore, now time.Time) *Machine {
	return New(Options{
		Variant: v,
		Seed:    42,
		Clock:   func() time.Time { return now },
		Store:   store,
		Logger:  quietLogger(),
	})
}

func step(m *Machine, actions ...core.Action) StepResult {
	return m.Step(core.NewInputFrame(actions...))
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
