package core

// Action represents a semantic player intent, abstracted from physical keys,
// taps and mouse clicks. Frontends translate their raw input into actions.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W, tap - start a run or flap
	ActionQuit              // Q, Ctrl+C - leave the game
	ActionScreenshot        // Ctrl+S - dump the current frame to disk
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
