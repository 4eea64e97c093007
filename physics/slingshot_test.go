package physics

import "testing"

func testSlingshot(maxDrag float64) (*Slingshot, *Body) {
	s := NewSlingshot(NewVec2(150, 500), maxDrag, DefaultParams())
	bird := circleAt(40, 40, 10)
	s.Attach(bird)
	return s, bird
}

func TestAttachSnapsToAnchor(t *testing.T) {
	s, bird := testSlingshot(80)

	if bird.Position != s.Anchor {
		t.Errorf("attached body at %+v, want anchor %+v", bird.Position, s.Anchor)
	}
	if !bird.Velocity.IsZero() {
		t.Errorf("attached body still moving: %+v", bird.Velocity)
	}
	if s.Held() != bird {
		t.Error("Held() does not return the attached body")
	}
}

func TestStartAimGrabRadius(t *testing.T) {
	s, bird := testSlingshot(80)

	// The grab zone is one and a half bounding radii around the body.
	grab := bird.Shape.BoundingRadius() * 1.5

	if s.StartAim(s.Anchor.Add(NewVec2(grab+1, 0))) {
		t.Error("drag started outside the grab zone")
	}
	if s.Aiming() {
		t.Error("missed grab left the slingshot aiming")
	}
	if !s.StartAim(s.Anchor.Add(NewVec2(grab-1, 0))) {
		t.Error("drag refused inside the grab zone")
	}
	if !s.Aiming() {
		t.Error("started drag not reported by Aiming")
	}
}

func TestUpdateAimClampsDrag(t *testing.T) {
	s, bird := testSlingshot(80)
	s.StartAim(s.Anchor)

	// Within range the body follows the pointer exactly.
	s.UpdateAim(s.Anchor.Add(NewVec2(30, 40)))
	if want := s.Anchor.Add(NewVec2(30, 40)); bird.Position != want {
		t.Errorf("held body at %+v, want %+v", bird.Position, want)
	}

	// Beyond range the drag is clamped to MaxDrag, direction preserved.
	s.UpdateAim(s.Anchor.Add(NewVec2(300, 400)))
	drag := bird.Position.Sub(s.Anchor)
	if !nearlyEqual(drag.Length(), 80) {
		t.Errorf("clamped drag length = %v, want 80", drag.Length())
	}
	if !vecNearlyEqual(drag.Normalize(), NewVec2(0.6, 0.8)) {
		t.Errorf("clamp changed the drag direction: %+v", drag.Normalize())
	}
}

func TestEndAimLaunchScaling(t *testing.T) {
	p := DefaultParams()
	s, bird := testSlingshot(200)
	s.StartAim(s.Anchor)
	s.UpdateAim(s.Anchor.Add(NewVec2(60, 80)))

	raw := s.LaunchVelocity()
	if want := NewVec2(-60, -80); raw != want {
		t.Fatalf("raw launch vector = %+v, want %+v", raw, want)
	}

	if !s.EndAim() {
		t.Fatal("EndAim with a real drag did not launch")
	}
	if want := raw.Scale(p.LaunchPower / p.Damping); bird.Velocity != want {
		t.Errorf("launch velocity = %+v, want %+v", bird.Velocity, want)
	}
	if s.Held() != nil {
		t.Error("launched body still held")
	}
	if s.Aiming() {
		t.Error("launch left the slingshot aiming")
	}
}

func TestEndAimZeroDragKeepsBody(t *testing.T) {
	s, bird := testSlingshot(80)
	s.StartAim(s.Anchor)
	s.UpdateAim(s.Anchor)

	if s.EndAim() {
		t.Error("zero drag must not launch")
	}
	if s.Held() != bird {
		t.Error("zero-drag release dropped the held body")
	}
	if !bird.Velocity.IsZero() {
		t.Errorf("zero-drag release imparted velocity %+v", bird.Velocity)
	}
	if s.Aiming() {
		t.Error("release left the slingshot aiming")
	}
}

func TestCancelRestoresAnchor(t *testing.T) {
	s, bird := testSlingshot(80)
	s.StartAim(s.Anchor)
	s.UpdateAim(s.Anchor.Add(NewVec2(50, 0)))

	s.Cancel()
	if bird.Position != s.Anchor {
		t.Errorf("cancelled body at %+v, want anchor %+v", bird.Position, s.Anchor)
	}
	if s.Aiming() {
		t.Error("cancel left the slingshot aiming")
	}
	if s.Held() != bird {
		t.Error("cancel released the held body")
	}
}

func TestAttachedBodyStaysOnAnchor(t *testing.T) {
	w := NewWorld(DefaultParams(), 1000, 1000)
	s, bird := testSlingshot(80)
	w.AddBody(bird)

	// Half a second of simulation must not move the attached body.
	for i := 0; i < 30; i++ {
		w.Step()
	}

	if bird.Position != s.Anchor {
		t.Errorf("attached body drifted to %+v, want anchor %+v", bird.Position, s.Anchor)
	}
	if !bird.Velocity.IsZero() {
		t.Errorf("attached body gained velocity %+v", bird.Velocity)
	}
}

func TestAimedBodyStaysOnDragPoint(t *testing.T) {
	w := NewWorld(DefaultParams(), 1000, 1000)
	s, bird := testSlingshot(80)
	w.AddBody(bird)

	s.StartAim(s.Anchor)
	aim := s.Anchor.Add(NewVec2(30, 40))
	s.UpdateAim(aim)

	// The aim position is authoritative: stepping applies no gravity, no
	// integration and no contacts to the held body, so the trajectory
	// preview reads exactly the state the launch will start from.
	for i := 0; i < 60; i++ {
		w.Step()
	}

	if bird.Position != aim {
		t.Errorf("held body at %+v, want aim point %+v", bird.Position, aim)
	}
	if !bird.Velocity.IsZero() {
		t.Errorf("held body gained velocity %+v", bird.Velocity)
	}
	if raw := s.LaunchVelocity(); raw != (Vec2{-30, -40}) {
		t.Errorf("raw launch vector = %+v, want (-30,-40)", raw)
	}
}

func TestLaunchedBodyRejoinsSimulation(t *testing.T) {
	w := NewWorld(DefaultParams(), 1000, 1000)
	s, bird := testSlingshot(200)
	w.AddBody(bird)

	s.StartAim(s.Anchor)
	s.UpdateAim(s.Anchor.Add(NewVec2(60, 80)))
	if !s.EndAim() {
		t.Fatal("drag did not launch")
	}
	if bird.Held {
		t.Fatal("launched body still flagged as held")
	}

	before := bird.Position
	w.Step()
	if bird.Position == before {
		t.Error("launched body did not move on the next tick")
	}
}
