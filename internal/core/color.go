package core

// Color names the role of a screen cell. Frontends choose the actual
// terminal color for each role.
type Color uint8

// Palette roles drawn by the renderer.
const (
	ColorDefault Color = iota
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorBeak
	ColorGround
	ColorFrame
	ColorText
)
