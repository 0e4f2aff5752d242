package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// ErrReplayMismatch is returned when re-simulating a run does not reproduce
// its recorded result.
var ErrReplayMismatch = errors.New("storage: replay does not match recorded run")

// Journal records finished runs of one frontend. A journal without a store
// accepts runs and drops them.
type Journal struct {
	store  *Store
	source string
	config string
	logger *log.Logger
	lastID int64
}

// NewJournal creates a journal writing to store. Each run is tagged with
// source and the YAML of cfg so it can be replayed later.
func NewJournal(store *Store, source string, cfg config.FlappyConfig, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	j := &Journal{store: store, source: source, logger: logger}
	if data, err := config.Marshal(cfg); err == nil {
		j.config = string(data)
	} else {
		logger.Warn("runs will not be replayable", "error", err)
	}
	return j
}

// Record saves run. Failures are logged; play goes on without the journal.
// It has the shape of a flappy.RunSink.
func (j *Journal) Record(run flappy.Run) {
	if j.store == nil {
		return
	}
	id, err := j.store.SaveRun(RunRecord{
		Seed:   run.Seed,
		Jumps:  run.Jumps,
		Score:  run.Score,
		Ticks:  run.Ticks,
		Source: j.source,
		Config: j.config,
	})
	if err != nil {
		j.logger.Warn("could not save run", "error", err)
		return
	}
	j.lastID = id
	j.logger.Debug("run saved", "id", id, "score", run.Score)
}

// LastID returns the ID of the most recently saved run, or 0.
func (j *Journal) LastID() int64 {
	return j.lastID
}

// Verify replays a recorded run with the configuration it was played with
// and checks that it ends with the same score after the same number of ticks.
func Verify(rec RunRecord) (flappy.Run, error) {
	cfg := config.DefaultFlappyConfig()
	if rec.Config != "" {
		parsed, err := config.Parse([]byte(rec.Config), config.FormatYAML)
		if err != nil {
			return flappy.Run{}, fmt.Errorf("storage: run %d: %w", rec.ID, err)
		}
		cfg = parsed
	}

	got, err := flappy.Replay(cfg, rec.Seed, rec.Jumps, 0)
	if err != nil {
		return got, fmt.Errorf("storage: run %d: %w", rec.ID, err)
	}
	if got.Score != rec.Score || got.Ticks != rec.Ticks {
		return got, fmt.Errorf("%w: run %d recorded score %d in %d ticks, replay gave %d in %d",
			ErrReplayMismatch, rec.ID, rec.Score, rec.Ticks, got.Score, got.Ticks)
	}
	return got, nil
}
