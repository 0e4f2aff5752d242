// Package gui runs the game in a desktop window through ebiten. Each ebiten
// update is one simulation tick, so the window plays at the configured TPS.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	skyColor    = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor   = color.RGBA{R: 83, G: 160, B: 52, A: 255}
	capColor    = color.RGBA{R: 58, G: 120, B: 36, A: 255}
	groundColor = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	birdColor   = color.RGBA{R: 250, G: 204, B: 36, A: 255}
	beakColor   = color.RGBA{R: 240, G: 120, B: 30, A: 255}
	eyeColor    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	shadeColor  = color.RGBA{A: 160}
)

// Options configures the window frontend.
type Options struct {
	Config   config.FlappyConfig
	Seed     int64
	TickRate int
	Scale    float64 // Window pixels per world unit
	Journal  *storage.Journal
	Logger   *log.Logger
}

// Game implements ebiten.Game around a flappy session.
type Game struct {
	session *flappy.Session
	ticks   *flappy.ManualTicker
	cfg     config.FlappyConfig
}

// NewGame creates an idle game; the first jump starts a run.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ticks := &flappy.ManualTicker{}
	world := flappy.NewWorld(opts.Config, rand.New(rand.NewSource(opts.Seed)))
	sessionOpts := []flappy.Option{
		flappy.WithLogger(logger),
		flappy.WithSeedSource(flappy.SeedSequence(opts.Seed)),
	}
	if opts.Journal != nil {
		sessionOpts = append(sessionOpts, flappy.WithRunSink(opts.Journal.Record))
	}

	return &Game{
		session: flappy.NewSession(world, ticks, sessionOpts...),
		ticks:   ticks,
		cfg:     opts.Config,
	}
}

// Update reads input and advances one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if jumpPressed() {
		g.session.OnJumpIntent()
	}
	g.ticks.Fire()
	return nil
}

// jumpPressed reports a fresh space, up, W, left click or touch.
func jumpPressed() bool {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw renders the current snapshot in world coordinates.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	w, h := float32(snap.Width), float32(snap.Height)

	screen.Fill(skyColor)

	for _, o := range snap.Obstacles {
		x, ow := float32(o.X), float32(o.Width)
		top, bottom := float32(o.TopHeight), float32(o.TopHeight+o.Gap)
		vector.DrawFilledRect(screen, x, 0, ow, top, pipeColor, false)
		vector.DrawFilledRect(screen, x-3, top-20, ow+6, 20, capColor, false)
		vector.DrawFilledRect(screen, x, bottom, ow, h-bottom, pipeColor, false)
		vector.DrawFilledRect(screen, x-3, bottom, ow+6, 20, capColor, false)
	}

	vector.DrawFilledRect(screen, 0, h-4, w, 4, groundColor, false)

	box := snap.Actor.Box()
	vector.DrawFilledRect(screen, float32(box.Left), float32(box.Top),
		float32(box.Width()), float32(box.Height()), birdColor, false)
	vector.DrawFilledRect(screen, float32(box.Right)-6, float32(snap.Actor.Y)-2, 10, 6, beakColor, false)
	vector.DrawFilledCircle(screen, float32(box.Right)-10, float32(box.Top)+7, 3, eyeColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)

	switch snap.State {
	case flappy.StateIdle:
		drawCentered(screen, w, h, []string{"FLAPPY", flappy.StartHint}, false)
	case flappy.StateGameOver:
		drawCentered(screen, w, h, strings.Split(snap.Message, "\n"), true)
	}
}

// drawCentered prints lines in the middle of the screen, optionally over a
// shaded backdrop.
func drawCentered(screen *ebiten.Image, w, h float32, lines []string, shade bool) {
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	blockW := float32(longest*glyphW + 2*glyphW)
	blockH := float32(len(lines)*glyphH + glyphH)
	left, top := (w-blockW)/2, (h-blockH)/2

	if shade {
		vector.DrawFilledRect(screen, left, top, blockW, blockH, shadeColor, false)
	}
	for i, l := range lines {
		x := int(w/2) - len(l)*glyphW/2
		y := int(top) + glyphH/2 + i*glyphH
		ebitenutil.DebugPrintAt(screen, l, x, y)
	}
}

// Layout fixes the logical screen to the world size; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.World.Width), int(g.cfg.World.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	g := NewGame(opts)
	ebiten.SetWindowSize(int(opts.Config.World.Width*opts.Scale), int(opts.Config.World.Height*opts.Scale))
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
