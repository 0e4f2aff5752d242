package flappy

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	State      State
	Width      float64 // World width
	Height     float64 // World height
	Actor      Actor
	Obstacles  []Obstacle
	Score      int
	FrameCount int
	Difficulty DifficultyParameters
	Message    string // Terminal message; empty unless the run is over
}

// Snapshot copies the world state. The returned value shares nothing with
// the world and stays valid after further steps.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		State:      w.state,
		Width:      w.cfg.World.Width,
		Height:     w.cfg.World.Height,
		Actor:      w.actor,
		Obstacles:  w.Obstacles(),
		Score:      w.score,
		FrameCount: w.frameCount,
		Difficulty: w.difficulty,
	}
}
