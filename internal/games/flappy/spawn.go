package flappy

// spawn runs the per-tick spawn and despawn rules. It reports whether the
// obstacle pair was recycled, which is the only source of score.
func (m *Machine) spawn() (recycled bool) {
	s := &m.state

	if s.Obstacle.OffScreen() {
		s.Obstacle.recycle(m.cfg, m.rng)
		recycled = true
	}

	if m.features.PowerUps {
		m.updatePickups()
	}
	if m.features.Clouds {
		m.updateClouds()
	}
	if s.Boss.Active && s.Boss.X < -s.Boss.Width {
		m.resetBoss()
	}
	return recycled
}

// updatePickups drops pickups that left the screen, collects those within
// reach of the avatar and rolls for a new one.
func (m *Machine) updatePickups() {
	s := &m.state
	cfg := m.cfg.PowerUps

	remaining := s.Pickups[:0]
	for _, p := range s.Pickups {
		switch {
		case p.X < cfg.DespawnX:
			// scrolled away
		case pickupInReach(s.Avatar, p, cfg.PickupRange):
			m.collect(p)
		default:
			remaining = append(remaining, p)
		}
	}
	s.Pickups = remaining

	if m.rng.Float64() < cfg.SpawnChance {
		kind := PowerUpImmunity
		if m.rng.Intn(2) == 1 {
			kind = PowerUpSlowMotion
		}
		lo := int(cfg.Margin)
		hi := int(m.cfg.World.Height - cfg.Margin)
		s.Pickups = append(s.Pickups, Pickup{
			Type: kind,
			X:    m.cfg.World.Width,
			Y:    float64(lo + m.rng.Intn(hi-lo+1)),
		})
	}
}

// collect activates a pickup's effect, replacing any running one.
func (m *Machine) collect(p Pickup) {
	s := &m.state
	s.Avatar.Effect = Effect{Type: p.Type, Remaining: m.effectTicks(p.Type)}
	s.Flags.PowerUpUsed = true
	s.Progress.RunPowerUp = true
	m.emit(Event{Kind: EventPowerUpCollected, Name: p.Type.String()})
}

func (m *Machine) effectTicks(p PowerUp) int {
	switch p {
	case PowerUpImmunity:
		return m.cfg.PowerUps.ImmunityTicks
	case PowerUpSlowMotion:
		return m.cfg.PowerUps.SlowMotionTicks
	default:
		return 0
	}
}

// updateClouds removes clouds whose right edge left the screen and rolls
// for a new one in the upper half.
func (m *Machine) updateClouds() {
	s := &m.state
	cfg := m.cfg.Clouds

	remaining := s.Clouds[:0]
	for _, c := range s.Clouds {
		if c.X+c.Width > 0 {
			remaining = append(remaining, c)
		}
	}
	s.Clouds = remaining

	if m.rng.Float64() < cfg.SpawnChance {
		s.Clouds = append(s.Clouds, Cloud{
			X:      m.cfg.World.Width,
			Y:      float64(m.rng.Intn(int(m.cfg.World.Height/2) + 1)),
			Width:  cfg.Width,
			Height: cfg.Height,
		})
	}
}

// isBossLevel reports whether the current level hosts the boss.
func (m *Machine) isBossLevel() bool {
	return m.features.Boss && m.state.Progress.Level%m.cfg.Boss.LevelInterval == 0
}

// syncBoss activates the boss on entering a boss level and pauses it on
// leaving one. A paused boss keeps its position and health, so the next
// boss level resumes the approach.
func (m *Machine) syncBoss() {
	b := &m.state.Boss
	switch {
	case !m.isBossLevel():
		b.Active = false
	case b.Active:
	case b.Spawned:
		b.Active = true
	default:
		m.resetBoss()
	}
}

// resetBoss places the boss at the right edge with full health.
func (m *Machine) resetBoss() {
	cfg := m.cfg.Boss
	m.state.Boss = Boss{
		X:       m.cfg.World.Width,
		Y:       m.cfg.World.Height / 2,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Health:  cfg.Health,
		Active:  true,
		Spawned: true,
	}
}
