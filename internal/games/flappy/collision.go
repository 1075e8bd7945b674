package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// outOfBounds reports whether the avatar center left [0, worldH].
// It is fatal regardless of power-ups.
func outOfBounds(a Avatar, worldH float64) bool {
	return a.Y < 0 || a.Y > worldH
}

// hitsObstacle reports whether the avatar overlaps the pair horizontally
// while any part of it is outside the gap window.
func hitsObstacle(a Avatar, o ObstaclePair) bool {
	box := a.Box()
	column := core.Box{Left: o.X, Right: o.X + o.Width}
	if !box.OverlapsX(column) {
		return false
	}
	return box.Top < o.GapTop || box.Bottom > o.GapBottom()
}

// hitsBoss reports whether the avatar and an active boss overlap.
func hitsBoss(a Avatar, b Boss) bool {
	return b.Active && a.Box().Intersects(b.Box())
}

// pickupInReach reports whether a pickup is close enough to collect.
func pickupInReach(a Avatar, p Pickup, reach float64) bool {
	return core.AbsF(a.X-p.X) < reach && core.AbsF(a.Y-p.Y) < reach
}

// collide runs the collision checks for one tick and applies boss damage.
// It reports whether the run ends. Immunity suppresses obstacle hits only.
func (m *Machine) collide() (fatal bool) {
	s := &m.state

	if hitsBoss(s.Avatar, s.Boss) {
		s.Boss.Health -= m.cfg.Boss.Damage
		m.emit(Event{Kind: EventBossHit})
	}

	if outOfBounds(s.Avatar, m.cfg.World.Height) {
		return true
	}
	if s.Avatar.Effect.Is(PowerUpImmunity) {
		return false
	}
	return hitsObstacle(s.Avatar, s.Obstacle)
}
