package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of barriers with a passable gap between them.
type Obstacle struct {
	X            float64 // Left edge
	Width        float64
	Gap          float64 // Frozen at spawn
	TopHeight    float64
	BottomHeight float64
	Scored       bool // Whether the actor has passed this obstacle
}

// NewObstacle spawns an obstacle at the right edge of the world with its gap
// placed uniformly at random. The placement range is clamped so it can never
// invert: a gap too large for the field is shrunk until both barriers are
// exactly minHeight tall.
func NewObstacle(rng *rand.Rand, cfg config.FlappyConfig, gap float64) Obstacle {
	h := cfg.World.Height
	minHeight := cfg.Obstacles.MinHeight

	gap = core.ClampF(gap, 0, h-2*minHeight)

	lo := int(math.Ceil(minHeight))
	hi := int(math.Floor(h - gap - minHeight))
	if hi < lo {
		hi = lo
	}
	top := float64(lo + rng.Intn(hi-lo+1))

	return Obstacle{
		X:            cfg.World.Width,
		Width:        cfg.Obstacles.Width,
		Gap:          gap,
		TopHeight:    top,
		BottomHeight: h - top - gap,
	}
}

// Advance moves the obstacle left by speed. It reports true exactly once:
// on the first tick its right edge is strictly left of actorX.
func (o *Obstacle) Advance(speed, actorX float64) (passed bool) {
	o.X -= speed
	if !o.Scored && o.X+o.Width < actorX {
		o.Scored = true
		return true
	}
	return false
}

// Retired reports whether the obstacle is entirely off the left edge.
func (o Obstacle) Retired() bool {
	return o.X+o.Width < 0
}

// TopBox returns the collision box of the upper barrier.
func (o Obstacle) TopBox() core.Box {
	return core.Box{Left: o.X, Top: 0, Right: o.X + o.Width, Bottom: o.TopHeight}
}

// BottomBox returns the collision box of the lower barrier.
func (o Obstacle) BottomBox() core.Box {
	top := o.TopHeight + o.Gap
	return core.Box{Left: o.X, Top: top, Right: o.X + o.Width, Bottom: top + o.BottomHeight}
}
