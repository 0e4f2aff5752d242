package config

import (
	"errors"
	"fmt"
	"math"
)

// Ramp is one linearly scaled parameter: Base + score*Step, clamped at Limit.
// A positive Step ramps up to Limit, a negative Step ramps down to it.
type Ramp struct {
	Base  float64 `yaml:"base" toml:"base"`
	Step  float64 `yaml:"step" toml:"step"`
	Limit float64 `yaml:"limit" toml:"limit"`
}

// At returns the ramp value for the given score.
func (r Ramp) At(score int) float64 {
	v := r.Base + float64(score)*r.Step
	if r.Step >= 0 {
		return math.Min(r.Limit, v)
	}
	return math.Max(r.Limit, v)
}

func (r Ramp) validate(name string) error {
	if r.Step > 0 && r.Limit < r.Base {
		return fmt.Errorf("%s: limit %v below base %v for a rising ramp", name, r.Limit, r.Base)
	}
	if r.Step < 0 && r.Limit > r.Base {
		return fmt.Errorf("%s: limit %v above base %v for a falling ramp", name, r.Limit, r.Base)
	}
	return nil
}

// Curve maps score to every difficulty-scaled simulation parameter.
type Curve struct {
	Speed         Ramp `yaml:"speed" toml:"speed"`
	Gravity       Ramp `yaml:"gravity" toml:"gravity"`
	JumpStrength  Ramp `yaml:"jump_strength" toml:"jump_strength"`
	PipeGap       Ramp `yaml:"pipe_gap" toml:"pipe_gap"`
	PipeFrequency Ramp `yaml:"pipe_frequency" toml:"pipe_frequency"` // Ticks between spawns
}

// Params is the difficulty snapshot the simulation runs with.
type Params struct {
	Speed         float64 // Obstacle movement per tick
	Gravity       float64 // Velocity added per tick
	JumpStrength  float64 // Upward velocity set by a jump
	PipeGap       float64 // Gap height for newly spawned obstacles
	PipeFrequency int     // Ticks between spawns, at least 1
}

// At evaluates the curve for the given score. It has no hidden state.
func (c Curve) At(score int) Params {
	freq := int(math.Round(c.PipeFrequency.At(score)))
	if freq < 1 {
		freq = 1
	}
	return Params{
		Speed:         c.Speed.At(score),
		Gravity:       c.Gravity.At(score),
		JumpStrength:  c.JumpStrength.At(score),
		PipeGap:       c.PipeGap.At(score),
		PipeFrequency: freq,
	}
}

// Validate checks that every ramp converges on its limit.
func (c Curve) Validate() error {
	errs := []error{
		c.Speed.validate("speed"),
		c.Gravity.validate("gravity"),
		c.JumpStrength.validate("jump_strength"),
		c.PipeGap.validate("pipe_gap"),
		c.PipeFrequency.validate("pipe_frequency"),
	}
	if c.PipeGap.Limit <= 0 {
		errs = append(errs, fmt.Errorf("pipe_gap: limit must be positive, got %v", c.PipeGap.Limit))
	}
	if c.PipeFrequency.Limit < 1 {
		errs = append(errs, fmt.Errorf("pipe_frequency: limit must be at least 1, got %v", c.PipeFrequency.Limit))
	}
	return errors.Join(errs...)
}
