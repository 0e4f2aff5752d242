// Package flappy implements the falling-bird simulation: an actor under
// gravity, obstacles with gaps scrolling in from the right, and a difficulty
// curve that tightens as the score grows.
//
// World is a pure, synchronous state machine advanced one tick at a time by
// Step. Session wraps it with a self-rescheduling tick loop and the
// start-or-jump input dispatch that frontends drive.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// State is the lifecycle phase of a World.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Passed   int  // Obstacles passed (and scored) this tick
	GameOver bool // Whether this tick ended the run
}

// World owns all mutable simulation state. It is not safe for concurrent
// use; callers serialize Start, Jump and Step.
type World struct {
	cfg        config.FlappyConfig
	rng        *rand.Rand
	state      State
	actor      Actor
	obstacles  []Obstacle
	score      int
	frameCount int
	difficulty DifficultyParameters
}

// NewWorld creates an idle world. rng drives obstacle placement; pass a
// seeded source for reproducible runs. A nil rng gets a fixed-seed source.
func NewWorld(cfg config.FlappyConfig, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	w := &World{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
	}
	w.reset()
	w.state = StateIdle
	return w
}

// Reseed restarts the obstacle placement sequence.
func (w *World) Reseed(seed int64) {
	w.rng.Seed(seed)
}

// Start begins a new run from Idle or GameOver. It returns false, and changes
// nothing, when a run is already in progress.
func (w *World) Start() bool {
	if w.state == StateRunning {
		return false
	}
	w.reset()
	w.state = StateRunning
	return true
}

func (w *World) reset() {
	w.score = 0
	w.frameCount = 0
	w.difficulty = w.cfg.Difficulty.At(0)
	w.actor = NewActor(w.cfg, w.difficulty.JumpStrength)
	w.obstacles = w.obstacles[:0]
}

// Jump applies an upward impulse. It is ignored unless the world is running.
func (w *World) Jump() bool {
	if w.state != StateRunning {
		return false
	}
	w.actor.Jump()
	return true
}

// Step advances the simulation by one tick. It is a no-op unless running.
//
// Once the run ends inside a tick the remaining obstacles still move, so the
// final frame is consistent, but nothing further is scored.
func (w *World) Step() StepResult {
	var res StepResult
	if w.state != StateRunning {
		return res
	}

	w.frameCount++

	if w.actor.Update(w.difficulty.Gravity) {
		w.end(&res)
	}

	if w.frameCount%w.difficulty.PipeFrequency == 0 {
		w.obstacles = append(w.obstacles, NewObstacle(w.rng, w.cfg, w.difficulty.PipeGap))
	}

	for i := range w.obstacles {
		o := &w.obstacles[i]
		if o.Advance(w.difficulty.Speed, w.actor.X) && w.state == StateRunning {
			w.score++
			res.Passed++
			w.rescale()
		}
		if w.state == StateRunning && w.actor.CollidesWith(*o) {
			w.end(&res)
		}
	}

	live := w.obstacles[:0]
	for _, o := range w.obstacles {
		if !o.Retired() {
			live = append(live, o)
		}
	}
	w.obstacles = live

	return res
}

// rescale recomputes difficulty after a scoring event.
func (w *World) rescale() {
	w.difficulty = w.cfg.Difficulty.At(w.score)
	w.actor.JumpStrength = w.difficulty.JumpStrength
}

func (w *World) end(res *StepResult) {
	w.state = StateGameOver
	res.GameOver = true
}

// State returns the current lifecycle phase.
func (w *World) State() State {
	return w.state
}

// Score returns the number of obstacles passed in the current run.
func (w *World) Score() int {
	return w.score
}

// FrameCount returns the number of ticks processed in the current run.
func (w *World) FrameCount() int {
	return w.frameCount
}

// Difficulty returns the parameters currently in effect.
func (w *World) Difficulty() DifficultyParameters {
	return w.difficulty
}

// Actor returns a copy of the actor.
func (w *World) Actor() Actor {
	return w.actor
}

// Obstacles returns a copy of the live obstacles, oldest first.
func (w *World) Obstacles() []Obstacle {
	out := make([]Obstacle, len(w.obstacles))
	copy(out, w.obstacles)
	return out
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.FlappyConfig {
	return w.cfg
}
