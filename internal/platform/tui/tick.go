// Package tui runs the game in a terminal through Bubble Tea, locally or over
// SSH, and hosts the run journal browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameScheduler is the session's tick source inside a Bubble Tea program.
// Schedule only records the callback; the model turns it into a tea.Tick
// command after each Update, and the resulting TickMsg runs it.
type frameScheduler struct {
	interval time.Duration
	pending  func()
	armed    bool // A tea.Tick is in flight
}

func newFrameScheduler(tickRate int) *frameScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &frameScheduler{interval: time.Second / time.Duration(tickRate)}
}

// Schedule implements flappy.TickSource.
func (f *frameScheduler) Schedule(fn func()) {
	f.pending = fn
}

// cmd arms a tick for the pending callback. At most one tick is in flight.
func (f *frameScheduler) cmd() tea.Cmd {
	if f.pending == nil || f.armed {
		return nil
	}
	f.armed = true
	return tea.Tick(f.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fire runs the pending callback.
func (f *frameScheduler) fire() {
	f.armed = false
	fn := f.pending
	f.pending = nil
	if fn != nil {
		fn()
	}
}
