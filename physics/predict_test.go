package physics

import "testing"

func TestPredictPathMatchesStepper(t *testing.T) {
	p := DefaultParams()

	start := NewVec2(200, 600)
	launch := NewVec2(520, -640)

	w := NewWorld(p, 4000, 4000)
	bird := circleAt(start.X, start.Y, 12)
	bird.CanSleep = false
	bird.Velocity = launch
	w.AddBody(bird)

	path := PredictPath(p, start, launch, 60, 1e9, -1e9, 1e9)
	if len(path) != 60 {
		t.Fatalf("path length = %d, want 60", len(path))
	}

	for k, want := range path {
		w.Step()
		if bird.Position != want {
			t.Fatalf("step %d: stepper at %+v, prediction %+v", k+1, bird.Position, want)
		}
	}
}

func TestPredictPathStopsAtGround(t *testing.T) {
	p := DefaultParams()

	path := PredictPath(p, NewVec2(100, 100), NewVec2(50, 0), 600, 400, -1e9, 1e9)
	if len(path) == 0 || len(path) == 600 {
		t.Fatalf("expected the path to end at the ground line, got %d points", len(path))
	}

	last := path[len(path)-1]
	if last.Y < 400 {
		t.Errorf("final point %+v is above the ground line", last)
	}
	for _, pt := range path[:len(path)-1] {
		if pt.Y >= 400 {
			t.Errorf("point %+v past the ground line before the final point", pt)
		}
	}
}

func TestPredictPathStopsOutsideHorizontalRange(t *testing.T) {
	p := DefaultParams()
	p.Gravity = 0

	path := PredictPath(p, NewVec2(0, 100), NewVec2(600, 0), 600, 1e9, -50, 90)
	if len(path) == 0 || len(path) == 600 {
		t.Fatalf("expected the path to end at the range edge, got %d points", len(path))
	}
	if last := path[len(path)-1]; last.X <= 90 {
		t.Errorf("final point %+v is inside the horizontal range", last)
	}
}
