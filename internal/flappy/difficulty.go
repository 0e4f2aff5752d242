package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// DifficultyParameters is the score-derived bundle of simulation constants.
type DifficultyParameters = config.Params

// ComputeDifficulty maps a score to simulation parameters on the stock curve.
// ComputeDifficulty(0) equals the values a fresh run starts with.
func ComputeDifficulty(score int) DifficultyParameters {
	return config.DefaultCurve().At(score)
}
