package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultCurve returns the stock difficulty progression.
func DefaultCurve() Curve {
	return Curve{
		Speed:         Ramp{Base: 1.5, Step: 0.05, Limit: 3.0},
		Gravity:       Ramp{Base: 0.3, Step: 0.02, Limit: 0.6},
		JumpStrength:  Ramp{Base: 7, Step: 0.2, Limit: 12},
		PipeGap:       Ramp{Base: 200, Step: -5, Limit: 120},
		PipeFrequency: Ramp{Base: 120, Step: -3, Limit: 70},
	}
}

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  360,
			Height: 640,
		},
		Actor: ActorConfig{
			X:      50,
			Width:  34,
			Height: 24,
		},
		Obstacles: ObstacleConfig{
			Width:     60,
			MinHeight: 50,
		},
		Difficulty: DefaultCurve(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
