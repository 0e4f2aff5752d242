package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestActorStartsCenteredAtRest(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewActor(cfg, 7)

	if a.X != 50 || a.Y != 320 {
		t.Errorf("position = (%v, %v), expected (50, 320)", a.X, a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("velocity = %v, expected 0", a.Velocity)
	}
	if a.JumpStrength != 7 {
		t.Errorf("jump strength = %v, expected 7", a.JumpStrength)
	}
}

func TestActorGravity(t *testing.T) {
	a := NewActor(config.DefaultFlappyConfig(), 7)
	const gravity = 0.3

	prevY := a.Y
	for i := 0; i < 30; i++ {
		prevVel := a.Velocity
		if a.Update(gravity) {
			t.Fatalf("tick %d: unexpected floor contact at y=%v", i, a.Y)
		}
		if !approxEqual(a.Velocity-prevVel, gravity) {
			t.Errorf("tick %d: velocity increased by %v, expected %v", i, a.Velocity-prevVel, gravity)
		}
		if a.Y <= prevY {
			t.Errorf("tick %d: y did not increase (%v -> %v)", i, prevY, a.Y)
		}
		prevY = a.Y
	}
}

func TestActorJump(t *testing.T) {
	a := NewActor(config.DefaultFlappyConfig(), 7)
	a.Velocity = 5

	a.Jump()
	if a.Velocity != -7 {
		t.Errorf("velocity after jump = %v, expected -7", a.Velocity)
	}

	a.Update(0.3)
	if !approxEqual(a.Velocity, -6.7) {
		t.Errorf("velocity after jump and one tick = %v, expected -6.7", a.Velocity)
	}
}

func TestActorCeilingAbsorbsVelocity(t *testing.T) {
	a := NewActor(config.DefaultFlappyConfig(), 7)
	a.Y = 13
	a.Velocity = -5

	if a.Update(0.3) {
		t.Fatal("ceiling contact should not be lethal")
	}
	if a.Y != 12 {
		t.Errorf("y = %v, expected clamp to 12", a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("velocity = %v, expected 0 after ceiling contact", a.Velocity)
	}
}

func TestActorFloorIsLethal(t *testing.T) {
	a := NewActor(config.DefaultFlappyConfig(), 7)
	a.Y = 627
	a.Velocity = 5

	if !a.Update(0.3) {
		t.Fatal("floor contact should be reported")
	}
	if a.Y != 628 {
		t.Errorf("y = %v, expected clamp to 628", a.Y)
	}
}

func TestActorStaysInBounds(t *testing.T) {
	a := NewActor(config.DefaultFlappyConfig(), 7)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 5000; i++ {
		if rng.Intn(4) == 0 {
			a.Jump()
		}
		a.Update(0.3 + rng.Float64()*0.3)
		if a.Y < 12 || a.Y > 628 {
			t.Fatalf("tick %d: y=%v escaped [12, 628]", i, a.Y)
		}
	}
}

func TestActorCollidesWith(t *testing.T) {
	// Top barrier 0..200, gap 200..350, bottom barrier 350..640
	o := Obstacle{X: 100, Width: 60, Gap: 150, TopHeight: 200, BottomHeight: 290}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"entirely left of obstacle", 40, 100, false},
		{"right edge touching obstacle", 83, 100, false},
		{"overlapping top barrier", 110, 100, true},
		{"touching top barrier from below", 130, 212, false},
		{"inside gap band", 130, 275, false},
		{"touching bottom barrier from above", 130, 338, false},
		{"overlapping bottom barrier", 130, 345, true},
		{"left edge touching obstacle", 177, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewActor(config.DefaultFlappyConfig(), 7)
			a.X, a.Y = tc.x, tc.y
			if got := a.CollidesWith(o); got != tc.expected {
				t.Errorf("CollidesWith() = %v, expected %v (actor box %+v)", got, tc.expected, a.Box())
			}
		})
	}
}
