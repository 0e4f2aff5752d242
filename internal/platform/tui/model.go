package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig
	Journal *storage.Journal // Optional; finished runs are recorded here
	Logger  *log.Logger
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one player's game.
type Model struct {
	session  *flappy.Session
	ticks    *frameScheduler
	journal  *storage.Journal
	screen   *core.Screen
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	logger   *log.Logger
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates an idle game; the first jump starts a run.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime

	ticks := newFrameScheduler(rt.TickRate)
	world := flappy.NewWorld(opts.Config, rand.New(rand.NewSource(rt.Seed)))
	sessionOpts := []flappy.Option{
		flappy.WithLogger(logger),
		flappy.WithSeedSource(flappy.SeedSequence(rt.Seed)),
	}
	if opts.Journal != nil {
		sessionOpts = append(sessionOpts, flappy.WithRunSink(opts.Journal.Record))
	}

	keys := DefaultKeyMap()
	m := Model{
		session: flappy.NewSession(world, ticks, sessionOpts...),
		ticks:   ticks,
		journal: opts.Journal,
		screen:  core.NewScreen(0, 0),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    help.New(),
		logger:  logger,
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m
}

// Init sets the terminal title. Nothing ticks until the first jump.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("flappy")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
			return m, nil
		}
		return m.handleAction(m.mapper.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.mapper.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.ticks.fire()
		return m, m.ticks.cmd()
	}

	return m, nil
}

func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case core.ActionJump:
		if !m.session.IsTerminal() {
			m.status = ""
		}
		m.session.OnJumpIntent()
		return m, m.ticks.cmd()
	}
	return m, nil
}

// resize fits the play field above the help footer.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.screen.Resize(width, max(height-m.footerHeight(), 0))
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	flappy.Render(m.screen, m.session.Snapshot())
	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Render(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	status := m.status
	if status == "" && m.session.IsTerminal() && m.journal != nil && m.journal.LastID() != 0 {
		status = fmt.Sprintf("run #%d saved", m.journal.LastID())
	}
	helpView := m.help.View(m.keys)
	if status == "" {
		return footerStyle.Render(helpView)
	}
	return footerStyle.Render(status + "  " + helpView)
}

// Session exposes the running game session.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new game model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
