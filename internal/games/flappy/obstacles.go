package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstaclePair is the vertical barrier with a gap the avatar flies through.
// Exactly one pair is live during a run; it is recycled, never destroyed.
type ObstaclePair struct {
	X      float64 // left edge
	GapTop float64 // y where the gap starts
	Gap    float64 // gap height
	Width  float64
}

// TopBox returns the bounding box of the upper segment.
func (o ObstaclePair) TopBox() core.Box {
	return core.BoxAt(o.X, 0, o.Width, o.GapTop)
}

// BottomBox returns the bounding box of the lower segment down to worldH.
func (o ObstaclePair) BottomBox(worldH float64) core.Box {
	bottom := o.GapTop + o.Gap
	return core.BoxAt(o.X, bottom, o.Width, worldH-bottom)
}

// GapBottom returns the y where the gap ends.
func (o ObstaclePair) GapBottom() float64 {
	return o.GapTop + o.Gap
}

// OffScreen reports whether the pair has scrolled fully past the left edge.
func (o ObstaclePair) OffScreen() bool {
	return o.X < -o.Width
}

// newObstacle places a fresh pair at the right edge of the world.
func newObstacle(cfg config.FlappyConfig, rng *rand.Rand) ObstaclePair {
	o := ObstaclePair{
		Gap:   cfg.Obstacles.Gap,
		Width: cfg.Obstacles.Width,
	}
	o.recycle(cfg, rng)
	return o
}

// recycle moves the pair back to the right edge with a new random gap top
// drawn uniformly from [GapTopMin, GapTopMax].
func (o *ObstaclePair) recycle(cfg config.FlappyConfig, rng *rand.Rand) {
	lo, hi := cfg.Obstacles.GapTopMin, cfg.Obstacles.GapTopMax
	o.X = cfg.World.Width
	o.GapTop = float64(lo + rng.Intn(hi-lo+1))
}
