package flappy

import "github.com/vovakirdan/tui-flappy/internal/save"

// record captures the persisted subset of the state.
func (m *Machine) record() save.Record {
	s := &m.state
	rec := save.Record{
		HighScore:      s.Progress.HighScore,
		Coins:          s.Progress.Coins,
		Achievements:   make([]save.Flag, len(s.Achievements)),
		DailyCompleted: s.Daily.Completed,
		DailyDate:      s.Daily.Date,
	}
	for i, a := range s.Achievements {
		rec.Achievements[i] = save.Flag{Name: a.Name, Achieved: a.Achieved}
	}
	return rec
}

// applyRecord restores persisted progress. Achievements are matched by
// position in declared order.
func (m *Machine) applyRecord(rec save.Record) {
	s := &m.state
	s.Progress.HighScore = max(rec.HighScore, 0)
	s.Progress.Coins = max(rec.Coins, 0)
	for i := range s.Achievements {
		if i < len(rec.Achievements) && rec.Achievements[i].Achieved {
			s.Achievements[i].Achieved = true
		}
	}
	s.Daily.Completed = rec.DailyCompleted
	s.Daily.Date = rec.DailyDate
}

// persist saves progress; failures are logged, never fatal.
func (m *Machine) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.record()); err != nil {
		m.logger.Error("saving progress failed", "err", err)
		return
	}
	m.dirty = false
}
