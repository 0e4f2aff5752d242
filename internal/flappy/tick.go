package flappy

// TickSource schedules a single future call of fn, typically on the next
// display frame. The session re-schedules itself from inside fn while a run
// is in progress, so a source never needs a stop signal: when the run ends
// nothing is scheduled and the chain stops.
type TickSource interface {
	Schedule(fn func())
}

// ManualTicker is a TickSource driven explicitly by the caller. It backs
// headless replays and tests.
type ManualTicker struct {
	pending func()
}

// Schedule records fn as the next tick, replacing any earlier one.
func (t *ManualTicker) Schedule(fn func()) {
	t.pending = fn
}

// Pending reports whether a tick is scheduled.
func (t *ManualTicker) Pending() bool {
	return t.pending != nil
}

// Fire runs the scheduled tick, if any, and reports whether one ran.
func (t *ManualTicker) Fire() bool {
	fn := t.pending
	if fn == nil {
		return false
	}
	t.pending = nil
	fn()
	return true
}
