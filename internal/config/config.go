// Package config provides YAML/TOML game configuration loading and the
// score-driven difficulty curve.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunable parameters of the game.
type FlappyConfig struct {
	World      WorldConfig    `yaml:"world" toml:"world"`
	Actor      ActorConfig    `yaml:"actor" toml:"actor"`
	Obstacles  ObstacleConfig `yaml:"obstacles" toml:"obstacles"`
	Difficulty Curve          `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the play field in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ActorConfig defines the player's fixed column and collision box.
type ActorConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	MinHeight float64 `yaml:"min_height" toml:"min_height"` // Smallest top or bottom barrier
}

// Validate reports the first setting that would make the simulation degenerate.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height))
	}
	if c.Actor.Height >= c.World.Height {
		errs = append(errs, fmt.Errorf("actor height %v does not fit world height %v", c.Actor.Height, c.World.Height))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width must be positive, got %v", c.Obstacles.Width))
	}
	if c.Obstacles.MinHeight < 0 || 2*c.Obstacles.MinHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("obstacle min_height %v leaves no room for a gap", c.Obstacles.MinHeight))
	}
	if err := c.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
