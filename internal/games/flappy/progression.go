package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// progress applies scoring, leveling, boss defeat, the sky cycle, effect
// countdown, achievements and the daily challenge for one Playing tick.
func (m *Machine) progress(recycled bool) {
	s := &m.state

	if recycled {
		m.scorePoint()
	}

	if s.Boss.Active && s.Boss.Health <= 0 {
		m.defeatBoss()
	}

	if m.features.DayNight {
		s.Sky.Counter++
		if s.Sky.Counter >= m.cfg.DayNight.CycleTicks {
			s.Sky.Counter = 0
			s.Sky.IsDay = !s.Sky.IsDay
		}
	}
	if !s.Sky.IsDay {
		s.Flags.NightReached = true
	}

	s.Avatar.Effect.countdown()
	s.Progress.Ticks++

	m.evaluateAchievements()
	m.checkDaily()
}

// scorePoint credits one passed obstacle and advances the level.
func (m *Machine) scorePoint() {
	p := &m.state.Progress
	p.Score++
	p.Coins += m.cfg.Progression.CoinsPerRecycle
	p.RunCoins += m.cfg.Progression.CoinsPerRecycle
	m.emit(Event{Kind: EventScore})

	switch m.features.Level {
	case core.LevelEveryRecycle:
		p.Level++
	case core.LevelEveryFifthPoint:
		if p.Score%m.cfg.Progression.LevelEvery == 0 {
			p.Level++
		}
	}
	m.syncBoss()
}

// defeatBoss grants the bonus once and recycles the boss in place: the
// level does not advance, so it returns with full health.
func (m *Machine) defeatBoss() {
	s := &m.state
	s.Progress.Coins += m.cfg.Boss.Bonus
	s.Progress.RunCoins += m.cfg.Boss.Bonus
	s.Flags.BossDefeated = true
	m.emit(Event{Kind: EventBossDefeated})
	m.logger.Info("boss defeated", "level", s.Progress.Level, "bonus", m.cfg.Boss.Bonus)
	m.resetBoss()
}
