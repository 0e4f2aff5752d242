package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNewObstacleGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, gap := range []float64{200, 160, 120} {
			o := NewObstacle(rng, cfg, gap)

			if o.X != 360 || o.Width != 60 || o.Gap != gap || o.Scored {
				t.Fatalf("seed %d: unexpected obstacle %+v", seed, o)
			}
			if o.TopHeight < 50 || o.TopHeight > 640-gap-50 {
				t.Fatalf("seed %d: top height %v outside [50, %v]", seed, o.TopHeight, 640-gap-50)
			}
			if o.TopHeight != math.Trunc(o.TopHeight) {
				t.Fatalf("seed %d: top height %v should be whole", seed, o.TopHeight)
			}
			if o.BottomHeight < 50 {
				t.Fatalf("seed %d: bottom height %v below minimum", seed, o.BottomHeight)
			}
			if o.TopHeight+o.Gap+o.BottomHeight != 640 {
				t.Fatalf("seed %d: barriers and gap sum to %v", seed, o.TopHeight+o.Gap+o.BottomHeight)
			}
		}
	}
}

func TestNewObstacleCoversRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rng := rand.New(rand.NewSource(7))

	minSeen, maxSeen := math.Inf(1), math.Inf(-1)
	for i := 0; i < 20000; i++ {
		o := NewObstacle(rng, cfg, 200)
		minSeen = math.Min(minSeen, o.TopHeight)
		maxSeen = math.Max(maxSeen, o.TopHeight)
	}

	if minSeen != 50 || maxSeen != 390 {
		t.Errorf("observed top heights [%v, %v], expected both inclusive ends [50, 390]", minSeen, maxSeen)
	}
}

func TestNewObstacleDegenerateGap(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rng := rand.New(rand.NewSource(1))

	o := NewObstacle(rng, cfg, 600)

	if o.Gap != 540 {
		t.Errorf("gap = %v, expected clamp to 540", o.Gap)
	}
	if o.TopHeight != 50 || o.BottomHeight != 50 {
		t.Errorf("barriers = %v/%v, expected 50/50", o.TopHeight, o.BottomHeight)
	}
}

func TestObstacleScoresExactlyOnce(t *testing.T) {
	o := Obstacle{X: 100, Width: 60, Gap: 200, TopHeight: 200, BottomHeight: 240}
	const actorX = 50

	passedAt := -1
	for tick := 1; tick <= 100; tick++ {
		if o.Advance(2, actorX) {
			if passedAt != -1 {
				t.Fatalf("passed again at tick %d (first at %d)", tick, passedAt)
			}
			passedAt = tick
		}
	}

	// x + 60 < 50 first holds at x = -12, after 56 ticks
	if passedAt != 56 {
		t.Errorf("passed at tick %d, expected 56", passedAt)
	}
	if !o.Scored {
		t.Error("Scored flag should be set")
	}
}

func TestObstacleNotPassedAtExactEdge(t *testing.T) {
	o := Obstacle{X: -8, Width: 60}

	if o.Advance(2, 50) {
		t.Fatal("right edge equal to actor x should not count as passed")
	}
	if !o.Advance(2, 50) {
		t.Fatal("right edge strictly left of actor x should count as passed")
	}
}

func TestObstacleRetired(t *testing.T) {
	tests := []struct {
		x        float64
		expected bool
	}{
		{0, false},
		{-59, false},
		{-60, false},
		{-60.5, true},
	}

	for _, tc := range tests {
		o := Obstacle{X: tc.x, Width: 60}
		if got := o.Retired(); got != tc.expected {
			t.Errorf("Retired() at x=%v = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestObstacleBoxes(t *testing.T) {
	o := Obstacle{X: 100, Width: 60, Gap: 150, TopHeight: 200, BottomHeight: 290}

	top := o.TopBox()
	if top.Left != 100 || top.Right != 160 || top.Top != 0 || top.Bottom != 200 {
		t.Errorf("TopBox() = %+v", top)
	}
	bottom := o.BottomBox()
	if bottom.Left != 100 || bottom.Right != 160 || bottom.Top != 350 || bottom.Bottom != 640 {
		t.Errorf("BottomBox() = %+v", bottom)
	}
}
