package flappy

import (
	"fmt"
	"math/rand"
	"time"
)

// dayOf truncates t to its UTC calendar day, so every time zone shares one
// challenge and the result compares equal to dates read from the save file.
func dayOf(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// dailyTarget derives the day's target from the date alone, so every
// session on the same day sees the same challenge.
func dailyTarget(day time.Time, lo, hi int) int {
	y, mo, d := day.Date()
	rng := rand.New(rand.NewSource(int64(y*10000 + int(mo)*100 + d)))
	return lo + rng.Intn(hi-lo+1)
}

// refreshDaily assigns today's challenge. A new day resets the completed
// flag; the same day keeps it.
func (m *Machine) refreshDaily() {
	if !m.features.Daily {
		return
	}
	d := &m.state.Daily
	today := dayOf(m.clock())

	if !d.Date.Equal(today) {
		d.Completed = false
		d.Date = today
		m.logger.Debug("new daily challenge", "date", today.Format("2006-01-02"))
	}
	d.Target = dailyTarget(today, m.cfg.Daily.MinTarget, m.cfg.Daily.MaxTarget)
	d.Description = fmt.Sprintf("Score %d points without using power-ups", d.Target)
}

// checkDaily completes the challenge and grants its bonus at most once per
// assigned date. Runs that had a power-up active do not count.
func (m *Machine) checkDaily() {
	if !m.features.Daily {
		return
	}
	s := &m.state
	if s.Daily.Completed || s.Daily.Date.IsZero() || s.Progress.RunPowerUp || s.Progress.Score < s.Daily.Target {
		return
	}
	s.Daily.Completed = true
	s.Progress.Coins += m.cfg.Daily.Bonus
	s.Progress.RunCoins += m.cfg.Daily.Bonus
	m.emit(Event{Kind: EventDailyCompleted, Name: s.Daily.Description})
	m.logger.Info("daily challenge completed", "target", s.Daily.Target, "bonus", m.cfg.Daily.Bonus)
}
