package flappy

// fall integrates one tick of constant-gravity vertical motion.
func (a *Avatar) fall(gravity float64) {
	a.Velocity += gravity
	a.Y += a.Velocity
}

// flap replaces the current velocity with the jump impulse.
func (a *Avatar) flap(strength float64) {
	a.Velocity = strength
}

// levelSpeed is the unscaled obstacle speed at the current level.
func (m *Machine) levelSpeed() float64 {
	return m.cfg.Speed.Speed(m.state.Progress.Level)
}

// obstacleSpeed is the level speed, slowed while Slow Motion is active.
func (m *Machine) obstacleSpeed() float64 {
	speed := m.levelSpeed()
	if m.state.Avatar.Effect.Is(PowerUpSlowMotion) {
		speed *= m.cfg.PowerUps.SlowFactor
	}
	return speed
}

// move advances every entity by one tick. Pickups scroll at the level speed
// and ignore Slow Motion.
func (m *Machine) move() {
	s := &m.state

	s.Avatar.fall(m.cfg.Physics.Gravity)
	s.Obstacle.X -= m.obstacleSpeed()

	pickupSpeed := m.levelSpeed()
	for i := range s.Pickups {
		s.Pickups[i].X -= pickupSpeed
	}
	for i := range s.Clouds {
		s.Clouds[i].X -= m.cfg.Clouds.Speed
	}
	if s.Boss.Active {
		s.Boss.X -= m.cfg.Boss.Speed
	}
}
