package flappy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// DefaultReplayLimit bounds a replay at one hour of play at 60 ticks per second.
const DefaultReplayLimit = 60 * 60 * 60

// ErrReplayIncomplete is returned when a replay has not ended within its tick limit.
var ErrReplayIncomplete = errors.New("replay did not reach game over")

// Replay re-simulates a recorded run without a frontend. Jumps are applied
// between ticks, before the tick that follows the recorded frame count.
// A limit of 0 means DefaultReplayLimit.
func Replay(cfg config.FlappyConfig, seed int64, jumps []int, limit int) (Run, error) {
	if limit <= 0 {
		limit = DefaultReplayLimit
	}

	var (
		result   Run
		finished bool
	)
	ticker := &ManualTicker{}
	world := NewWorld(cfg, rand.New(rand.NewSource(seed)))
	session := NewSession(world, ticker,
		WithSeedSource(FixedSeed(seed)),
		WithRunSink(func(r Run) {
			result = r
			finished = true
		}),
	)
	session.Start()

	next := 0
	for ticker.Pending() {
		if world.FrameCount() >= limit {
			return Run{Seed: seed, Score: world.Score(), Ticks: world.FrameCount()},
				fmt.Errorf("%w after %d ticks", ErrReplayIncomplete, limit)
		}
		for next < len(jumps) && jumps[next] <= world.FrameCount() {
			session.OnJumpIntent()
			next++
		}
		ticker.Fire()
	}

	if !finished {
		return result, ErrReplayIncomplete
	}
	return result, nil
}
