package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	spaceKey   = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	quitKey    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	shotKey    = tea.KeyMsg{Type: tea.KeyCtrlS}
	helpKey    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	unboundKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
)

func newTestModel(t *testing.T, journal *storage.Journal) Model {
	t.Helper()
	return NewModel(Options{
		Config:  config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Journal: journal,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// playUntilOver feeds ticks until the tick chain stops.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(time.Now()))
		if cmd == nil {
			return m
		}
	}
	t.Fatal("run never ended")
	return m
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", spaceKey, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionJump},
		{"q", quitKey, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", shotKey, core.ActionScreenshot},
		{"unbound", unboundKey, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapperMouse(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(press); got != core.ActionJump {
		t.Errorf("left press = %v, expected Jump", got)
	}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(release); got != core.ActionNone {
		t.Errorf("left release = %v, expected None", got)
	}
	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if got := km.MapMouse(right); got != core.ActionNone {
		t.Errorf("right press = %v, expected None", got)
	}
}

func TestFrameScheduler(t *testing.T) {
	f := newFrameScheduler(60)
	if f.interval != time.Second/60 {
		t.Errorf("interval = %v", f.interval)
	}
	if f.cmd() != nil {
		t.Fatal("nothing scheduled, expected no command")
	}

	calls := 0
	f.Schedule(func() { calls++ })
	if f.cmd() == nil {
		t.Fatal("expected a tick command")
	}
	if f.cmd() != nil {
		t.Error("a second command while one is in flight would double the tick rate")
	}

	f.fire()
	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
	f.fire()
	if calls != 1 {
		t.Error("fire without a schedule should do nothing")
	}

	if newFrameScheduler(0).interval != time.Second/60 {
		t.Error("non-positive tick rate should default to 60")
	}
}

func TestModelIdleUntilJump(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Session().State() != flappy.StateIdle {
		t.Fatalf("state = %v, expected idle", m.Session().State())
	}
	if !strings.Contains(m.View(), flappy.StartHint) {
		t.Error("idle view should show the start hint")
	}

	m, cmd := update(t, m, unboundKey)
	if cmd != nil || m.Session().State() != flappy.StateIdle {
		t.Error("unbound key should not start a run")
	}

	m, cmd = update(t, m, spaceKey)
	if cmd == nil {
		t.Fatal("starting a run should return a tick command")
	}
	if m.Session().State() != flappy.StateRunning {
		t.Errorf("state = %v, expected running", m.Session().State())
	}

	// Flapping before the tick lands must not start a second chain
	_, cmd = update(t, m, spaceKey)
	if cmd != nil {
		t.Error("jump while a tick is in flight should not arm another")
	}
}

func TestModelTicksUntilGameOver(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, spaceKey)

	m = playUntilOver(t, m)

	if !m.Session().IsTerminal() {
		t.Fatalf("state = %v, expected game over", m.Session().State())
	}
	view := m.View()
	if !strings.Contains(view, "Game Over") || !strings.Contains(view, "Final Score: 0") {
		t.Errorf("game over view missing message:\n%s", view)
	}

	// Same key restarts
	m, cmd := update(t, m, spaceKey)
	if cmd == nil || m.Session().State() != flappy.StateRunning {
		t.Error("jump after game over should start a new run")
	}
}

func TestModelRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	journal := storage.NewJournal(store, "tui", config.DefaultFlappyConfig(), nil)
	m := newTestModel(t, journal)
	m, _ = update(t, m, spaceKey)
	m = playUntilOver(t, m)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("journal has %d runs, expected 1", len(runs))
	}
	if runs[0].Seed != 7 || runs[0].Source != "tui" {
		t.Errorf("run = %+v, expected seed 7 from tui", runs[0])
	}
	if !strings.Contains(m.View(), "run #1 saved") {
		t.Error("footer should mention the saved run")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, quitKey)
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, nil)
	m, _ = update(t, m, shotKey)

	entries, err := os.ReadDir(filepath.Join(home, ".flappy", "screenshots"))
	if err != nil {
		t.Fatalf("screenshot directory missing: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(home, ".flappy", "screenshots", entries[0].Name()))
	if err != nil {
		t.Fatalf("cannot read screenshot: %v", err)
	}
	if !strings.Contains(string(data), flappy.StartHint) {
		t.Error("screenshot should contain the current frame")
	}
	if !strings.Contains(m.View(), "saved ") {
		t.Error("footer should report the screenshot path")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29 above a one-line footer", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, helpKey)
	if m.screen.Height() >= 29 {
		t.Errorf("full help should take more rows, screen height %d", m.screen.Height())
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "ab", core.ColorPipe)
	s.Set(2, 1, 'z')

	out := RenderScreen(s)
	for _, want := range []string{"ab", "z"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
