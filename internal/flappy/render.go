package flappy

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ActorChar     = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▀'
	FrameChar     = '│'
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// StartHint is shown while no run has been started.
const StartHint = "Press Space or Tap to Start"

// viewport maps world coordinates onto a block of screen cells.
type viewport struct {
	x, y   int // Top-left cell
	w, h   int // Size in cells
	sx, sy float64
}

// fitViewport picks the largest field that keeps the world's aspect ratio
// and fits the screen, centered.
func fitViewport(screenW, screenH int, worldW, worldH float64) viewport {
	ratio := worldW / worldH * cellAspect

	h := screenH
	w := int(math.Round(float64(h) * ratio))
	if w > screenW {
		w = screenW
		h = int(math.Round(float64(w) / ratio))
	}
	w = core.Clamp(w, 1, screenW)
	h = core.Clamp(h, 1, screenH)

	return viewport{
		x:  (screenW - w) / 2,
		y:  (screenH - h) / 2,
		w:  w,
		h:  h,
		sx: float64(w) / worldW,
		sy: float64(h) / worldH,
	}
}

// cols returns the half-open cell column span covering [left, right), clipped.
func (v viewport) cols(left, right float64) (int, int) {
	c0 := int(math.Floor(left * v.sx))
	c1 := int(math.Round(right * v.sx))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return core.Clamp(c0, 0, v.w), core.Clamp(c1, 0, v.w)
}

// row returns the cell row containing world y, clipped.
func (v viewport) row(y float64) int {
	return core.Clamp(int(math.Floor(y*v.sy)), 0, v.h-1)
}

// edge returns the cell row boundary nearest to world y.
func (v viewport) edge(y float64) int {
	return core.Clamp(int(math.Round(y*v.sy)), 0, v.h)
}

func (v viewport) set(dst *core.Screen, col, row int, r rune, c core.Color) {
	dst.SetColored(v.x+col, v.y+row, r, c)
}

// Render draws a frame of snap into dst.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}

	v := fitViewport(dst.Width(), dst.Height(), snap.Width, snap.Height)

	drawFrame(dst, v)
	for col := 0; col < v.w; col++ {
		v.set(dst, col, v.h-1, GroundChar, core.ColorGround)
	}
	drawActor(dst, v, snap.Actor)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawHUD(dst, v, snap)

	switch snap.State {
	case StateIdle:
		drawMessage(dst, []string{"FLAPPY", StartHint})
	case StateGameOver:
		drawMessage(dst, strings.Split(snap.Message, "\n"))
	}
}

func drawFrame(dst *core.Screen, v viewport) {
	for row := 0; row < v.h; row++ {
		v.set(dst, -1, row, FrameChar, core.ColorFrame)
		v.set(dst, v.w, row, FrameChar, core.ColorFrame)
	}
}

func drawActor(dst *core.Screen, v viewport, a Actor) {
	box := a.Box()
	c0, c1 := v.cols(box.Left, box.Right)
	row := v.row(a.Y)
	for col := c0; col < c1; col++ {
		v.set(dst, col, row, ActorChar, core.ColorBird)
	}
	if c1-c0 > 1 {
		v.set(dst, c1-1, row, BeakChar, core.ColorBeak)
	}
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	c0, c1 := v.cols(o.X, o.X+o.Width)
	if c0 >= c1 {
		return
	}

	topEnd := v.edge(o.TopHeight)
	bottomStart := v.edge(o.TopHeight + o.Gap)

	for col := c0; col < c1; col++ {
		for row := 0; row < topEnd; row++ {
			v.set(dst, col, row, PipeChar, core.ColorPipe)
		}
		if topEnd > 0 {
			v.set(dst, col, topEnd-1, PipeCapTop, core.ColorPipeCap)
		}
		for row := bottomStart; row < v.h; row++ {
			v.set(dst, col, row, PipeChar, core.ColorPipe)
		}
		if bottomStart < v.h {
			v.set(dst, col, bottomStart, PipeCapBottom, core.ColorPipeCap)
		}
	}
}

func drawHUD(dst *core.Screen, v viewport, snap Snapshot) {
	score := fmt.Sprintf(" %d ", snap.Score)
	dst.DrawText(v.x+(v.w-len(score))/2, v.y, score, core.ColorText)

	// Difficulty panel to the right of the field when there is room
	stats := []string{
		fmt.Sprintf("score   %d", snap.Score),
		fmt.Sprintf("speed   %.2f", snap.Difficulty.Speed),
		fmt.Sprintf("gravity %.2f", snap.Difficulty.Gravity),
		fmt.Sprintf("jump    %.1f", snap.Difficulty.JumpStrength),
		fmt.Sprintf("gap     %.0f", snap.Difficulty.PipeGap),
		fmt.Sprintf("spawn   %d", snap.Difficulty.PipeFrequency),
	}
	px := v.x + v.w + 3
	if px+16 > dst.Width() {
		return
	}
	for i, line := range stats {
		dst.DrawText(px, v.y+1+i, line, core.ColorFrame)
	}
}

// drawMessage draws a boxed, centered block of lines.
func drawMessage(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	for i, l := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+1+i, l, core.ColorBird)
	}
}
