package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the player-controlled falling body. Position is the center of
// its collision box; positive velocity points down.
type Actor struct {
	X            float64
	Y            float64
	Velocity     float64
	Width        float64
	Height       float64
	JumpStrength float64

	minY float64
	maxY float64
}

// NewActor places an actor at the vertical center of the world, at rest.
func NewActor(cfg config.FlappyConfig, jumpStrength float64) Actor {
	return Actor{
		X:            cfg.Actor.X,
		Y:            cfg.World.Height / 2,
		Width:        cfg.Actor.Width,
		Height:       cfg.Actor.Height,
		JumpStrength: jumpStrength,
		minY:         cfg.Actor.Height / 2,
		maxY:         cfg.World.Height - cfg.Actor.Height/2,
	}
}

// Update integrates one tick of gravity. Hitting the ceiling stops upward
// motion; hitting the floor is reported as lethal.
func (a *Actor) Update(gravity float64) (grounded bool) {
	a.Velocity += gravity
	a.Y += a.Velocity

	if a.Y < a.minY {
		a.Y = a.minY
		a.Velocity = 0
	}
	if a.Y > a.maxY {
		a.Y = a.maxY
		return true
	}
	return false
}

// Jump replaces the current velocity with an upward impulse.
func (a *Actor) Jump() {
	a.Velocity = -a.JumpStrength
}

// Box returns the actor's collision box.
func (a Actor) Box() core.Box {
	return core.BoxAt(a.X, a.Y, a.Width, a.Height)
}

// CollidesWith reports whether the actor overlaps either barrier of o.
func (a Actor) CollidesWith(o Obstacle) bool {
	box := a.Box()
	return box.Overlaps(o.TopBox()) || box.Overlaps(o.BottomBox())
}
