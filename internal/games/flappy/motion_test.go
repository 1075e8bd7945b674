package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestGravityThenJump(t *testing.T) {
	m := newTestMachine(bare, nil)
	step(m, core.ActionJump) // Menu -> Playing

	a := m.State().Avatar
	if a.Y != 300 || a.Velocity != 0 {
		t.Fatalf("Run should start at y=300 v=0, got y=%v v=%v", a.Y, a.Velocity)
	}

	step(m)
	a = m.State().Avatar
	if a.Velocity != 0.5 || a.Y != 300.5 {
		t.Errorf("After one tick expected v=0.5 y=300.5, got v=%v y=%v", a.Velocity, a.Y)
	}

	res := step(m, core.ActionJump)
	a = m.State().Avatar
	if a.Velocity != -10 {
		t.Errorf("Jump should set velocity to exactly -10, got %v", a.Velocity)
	}
	if !hasEvent(res.Events, EventJump) {
		t.Error("Jump should emit a jump event")
	}
}

func TestGravityIntegratesEveryTick(t *testing.T) {
	m := newTestMachine(bare, nil)
	step(m, core.ActionJump)

	prev := m.State().Avatar.Velocity
	for i := 0; i < 20; i++ {
		step(m)
		v := m.State().Avatar.Velocity
		if v != prev+0.5 {
			t.Fatalf("Tick %d: velocity %v, expected %v", i, v, prev+0.5)
		}
		prev = v
	}
}

func TestJumpOverridesFallSpeed(t *testing.T) {
	a := Avatar{Y: 300, Velocity: 7.5}
	a.flap(-10)
	if a.Velocity != -10 {
		t.Errorf("flap should replace velocity, got %v", a.Velocity)
	}
}

func TestSlowMotionScalesObstacleOnly(t *testing.T) {
	m := newTestMachine(Classic, nil)
	step(m, core.ActionJump)

	m.state.Avatar.Effect = Effect{Type: PowerUpSlowMotion, Remaining: 100}
	m.state.Pickups = []Pickup{{Type: PowerUpImmunity, X: 300, Y: 100}}
	obstacleX := m.state.Obstacle.X

	m.move()

	if got := obstacleX - m.state.Obstacle.X; got != 1.5 {
		t.Errorf("Obstacle should move 1.5 under slow motion, moved %v", got)
	}
	if m.state.Pickups[0].X != 297 {
		t.Errorf("Pickup should move at the level speed, x=%v", m.state.Pickups[0].X)
	}
}

func TestEffectCountdown(t *testing.T) {
	e := Effect{Type: PowerUpImmunity, Remaining: 2}
	e.countdown()
	if !e.Is(PowerUpImmunity) {
		t.Fatal("Effect should still be active after one tick")
	}
	e.countdown()
	if e.Active() || e.Type != PowerUpNone {
		t.Errorf("Effect should clear at zero, got %+v", e)
	}
	e.countdown()
	if e.Remaining != 0 {
		t.Errorf("Cleared effect should not count further, got %+v", e)
	}
}
