package flappy

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Message lines shown when a run ends.
const (
	GameOverTitle = "Game Over"
	RestartHint   = "Press Space or Tap to Restart"
)

// GameOverMessage formats the terminal message for a final score.
func GameOverMessage(score int) string {
	return fmt.Sprintf("%s\n%s\nFinal Score: %d", GameOverTitle, RestartHint, score)
}

// Run is the record of one finished run: enough to replay it exactly.
type Run struct {
	Seed  int64
	Jumps []int // Frame count at which each jump was applied
	Score int
	Ticks int
}

// ScoreSink receives the score on start and after every scoring event.
type ScoreSink func(score int)

// MessageSink receives the terminal message on game over and "" on start.
type MessageSink func(msg string)

// RunSink receives the record of every finished run.
type RunSink func(run Run)

// Option configures a Session.
type Option func(*Session)

// WithScoreSink sets the score sink.
func WithScoreSink(fn ScoreSink) Option {
	return func(s *Session) { s.onScore = fn }
}

// WithMessageSink sets the message sink.
func WithMessageSink(fn MessageSink) Option {
	return func(s *Session) { s.onMessage = fn }
}

// WithRunSink sets the sink for finished runs.
func WithRunSink(fn RunSink) Option {
	return func(s *Session) { s.onRun = fn }
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSeedSource sets the function that picks each run's RNG seed.
func WithSeedSource(fn func() int64) Option {
	return func(s *Session) { s.nextSeed = fn }
}

// FixedSeed returns a seed source that always yields seed.
func FixedSeed(seed int64) func() int64 {
	return func() int64 { return seed }
}

// SeedSequence yields seed for the first run and clock-based seeds after it.
// A zero seed is clock-based from the start.
func SeedSequence(seed int64) func() int64 {
	first := seed != 0
	return func() int64 {
		if first {
			first = false
			return seed
		}
		return time.Now().UnixNano()
	}
}

// Session drives a World: it owns the tick loop, routes the jump intent and
// reports score and terminal state to its sinks.
type Session struct {
	world     *World
	ticks     TickSource
	logger    *log.Logger
	nextSeed  func() int64
	onScore   ScoreSink
	onMessage MessageSink
	onRun     RunSink

	message string
	seed    int64
	jumps   []int
}

// NewSession creates an idle session around world.
func NewSession(world *World, ticks TickSource, opts ...Option) *Session {
	s := &Session{
		world:     world,
		ticks:     ticks,
		logger:    log.New(io.Discard),
		nextSeed:  func() int64 { return time.Now().UnixNano() },
		onScore:   func(int) {},
		onMessage: func(string) {},
		onRun:     func(Run) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnJumpIntent handles the single player input. The same signal starts a run
// when none is in progress and flaps while one is.
func (s *Session) OnJumpIntent() {
	if s.world.State() != StateRunning {
		s.Start()
		return
	}
	s.world.Jump()
	s.jumps = append(s.jumps, s.world.FrameCount())
}

// Start begins a new run and schedules its first tick. It is a no-op while a
// run is in progress.
func (s *Session) Start() bool {
	if s.world.State() == StateRunning {
		return false
	}

	s.seed = s.nextSeed()
	s.world.Reseed(s.seed)
	s.world.Start()
	s.jumps = s.jumps[:0]
	s.message = ""

	s.logger.Debug("run started", "seed", s.seed)
	s.onScore(0)
	s.onMessage("")
	s.ticks.Schedule(s.tick)
	return true
}

// tick advances the world once and re-schedules itself while running.
func (s *Session) tick() {
	if s.world.State() != StateRunning {
		return
	}

	res := s.world.Step()
	if res.Passed > 0 {
		s.onScore(s.world.Score())
	}
	if res.GameOver {
		s.finish()
		return
	}
	s.ticks.Schedule(s.tick)
}

func (s *Session) finish() {
	s.message = GameOverMessage(s.world.Score())

	run := Run{
		Seed:  s.seed,
		Jumps: append([]int(nil), s.jumps...),
		Score: s.world.Score(),
		Ticks: s.world.FrameCount(),
	}
	s.logger.Info("game over", "score", run.Score, "ticks", run.Ticks, "jumps", len(run.Jumps))

	s.onMessage(s.message)
	s.onRun(run)
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.world.Score()
}

// State returns the world's lifecycle phase.
func (s *Session) State() State {
	return s.world.State()
}

// IsTerminal reports whether the last run has ended.
func (s *Session) IsTerminal() bool {
	return s.world.State() == StateGameOver
}

// TerminalMessage returns the game-over text, or "" while not terminal.
func (s *Session) TerminalMessage() string {
	return s.message
}

// Snapshot returns the current frame for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := s.world.Snapshot()
	snap.Message = s.message
	return snap
}

// Seed returns the seed of the current or last run.
func (s *Session) Seed() int64 {
	return s.seed
}
