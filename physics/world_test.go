package physics

import (
	"math"
	"testing"
)

// quietParams disables gravity and damping so individual behaviors can be
// observed without ambient forces.
func quietParams() Params {
	p := DefaultParams()
	p.Gravity = 0
	p.Damping = 1
	return p
}

func TestEqualMassHeadOnExchange(t *testing.T) {
	w := NewWorld(quietParams(), 1000, 1000)

	a := circleAt(490, 500, 10)
	a.Velocity = NewVec2(50, 0)
	a.Restitution = 1
	a.CanSleep = false

	b := circleAt(509, 500, 10)
	b.Velocity = NewVec2(-50, 0)
	b.Restitution = 1
	b.CanSleep = false

	w.AddBody(a)
	w.AddBody(b)
	w.Step()

	// Perfectly elastic equal masses swap velocities.
	if !vecNearlyEqual(a.Velocity, Vec2{-50, 0}) {
		t.Errorf("a.Velocity = %+v, want (-50,0)", a.Velocity)
	}
	if !vecNearlyEqual(b.Velocity, Vec2{50, 0}) {
		t.Errorf("b.Velocity = %+v, want (50,0)", b.Velocity)
	}
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := NewWorld(DefaultParams(), 1000, 1000)

	floor := NewStaticBody(NewVec2(500, 800), NewBox(900, 40))
	w.AddBody(floor)

	ball := circleAt(500, 770, 12)
	ball.Velocity = NewVec2(0, 300)
	w.AddBody(ball)

	for i := 0; i < 240; i++ {
		w.Step()
	}

	if floor.Position != (Vec2{500, 800}) {
		t.Errorf("static position moved to %+v", floor.Position)
	}
	if !floor.Velocity.IsZero() {
		t.Errorf("static velocity became %+v", floor.Velocity)
	}
}

func TestRestingBodyFallsAsleep(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 1000, 1000)

	floor := NewStaticBody(NewVec2(500, 800), NewBox(900, 40))
	floor.Restitution = 0
	w.AddBody(floor)

	ball := circleAt(500, 780-12, 12)
	ball.Restitution = 0
	w.AddBody(ball)

	// Give it the sleep delay plus settling time.
	ticks := int(p.SleepDelay/p.TimeStep) + 30
	for i := 0; i < ticks; i++ {
		w.Step()
	}

	if !ball.Sleeping {
		t.Fatal("resting ball never fell asleep")
	}
	if !ball.Velocity.IsZero() {
		t.Errorf("sleeping velocity = %+v, want exactly zero", ball.Velocity)
	}

	// Asleep on a resting contact it must stay asleep.
	for i := 0; i < 60; i++ {
		w.Step()
	}
	if !ball.Sleeping {
		t.Error("resting contact woke the sleeping ball")
	}
}

func TestSleepingBodyWokenByImpact(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 2000, 1000)

	floor := NewStaticBody(NewVec2(1000, 800), NewBox(1900, 40))
	floor.Restitution = 0
	w.AddBody(floor)

	block := NewBody(NewVec2(1000, 780-15), NewBox(30, 30), 2)
	block.Restitution = 0
	w.AddBody(block)

	for i := 0; i < int(p.SleepDelay/p.TimeStep)+30; i++ {
		w.Step()
	}
	if !block.Sleeping {
		t.Fatal("block never settled")
	}

	bird := circleAt(920, 780-15, 12)
	bird.Velocity = NewVec2(600, 0)
	bird.CanSleep = false
	w.AddBody(bird)

	woke := false
	for i := 0; i < 30; i++ {
		w.Step()
		if !block.Sleeping {
			woke = true
			break
		}
	}
	if !woke {
		t.Error("impact did not wake the sleeping block")
	}
}

func TestImpactDamageAndRemoval(t *testing.T) {
	b := NewBody(NewVec2(0, 0), NewBox(30, 30), 2)
	b.MaxHealth = 10
	b.Health = 10
	b.DamageThreshold = 100

	// Below and at the threshold: no damage.
	b.ApplyImpact(nil, 50)
	b.ApplyImpact(nil, 100)
	if b.Health != 10 {
		t.Fatalf("sub-threshold impulse damaged body: health %v", b.Health)
	}

	// Above threshold: damage is impulse * 0.05.
	b.ApplyImpact(nil, 120)
	if !nearlyEqual(b.Health, 4) {
		t.Fatalf("health = %v, want 4", b.Health)
	}
	if b.MarkedForRemoval() {
		t.Fatal("body removed before health reached zero")
	}

	b.ApplyImpact(nil, 120)
	if b.Health > 0 {
		t.Fatalf("health = %v, want <= 0", b.Health)
	}
	if !b.MarkedForRemoval() {
		t.Fatal("depleted body not marked for removal")
	}
}

func TestWorldSweepsRemovedBodies(t *testing.T) {
	w := NewWorld(quietParams(), 1000, 1000)

	a := circleAt(100, 100, 10)
	b := circleAt(300, 100, 10)
	w.AddBody(a)
	w.AddBody(b)

	w.RemoveBody(a)
	w.Step()

	bodies := w.Bodies()
	if len(bodies) != 1 || bodies[0] != b {
		t.Fatalf("sweep kept %d bodies", len(bodies))
	}
}

func TestOutOfBoundsRemoval(t *testing.T) {
	w := NewWorld(quietParams(), 1000, 1000)

	runaway := circleAt(500, 500, 10)
	runaway.Velocity = NewVec2(12000, 0)
	runaway.CanSleep = false
	w.AddBody(runaway)

	for i := 0; i < 20; i++ {
		w.Step()
	}
	if len(w.Bodies()) != 0 {
		t.Error("body that left the world was not removed")
	}
	if !runaway.MarkedForRemoval() {
		t.Error("runaway body not marked")
	}
}

func TestSettled(t *testing.T) {
	w := NewWorld(DefaultParams(), 1000, 1000)

	floor := NewStaticBody(NewVec2(500, 800), NewBox(900, 40))
	w.AddBody(floor)
	if !w.Settled() {
		t.Error("world with only statics should be settled")
	}

	ball := circleAt(500, 100, 10)
	w.AddBody(ball)
	if w.Settled() {
		t.Error("awake dynamic body should not be settled")
	}

	ball.sleep()
	if !w.Settled() {
		t.Error("sleeping body should count as settled")
	}

	ball.Wake()
	ball.MarkForRemoval()
	if !w.Settled() {
		t.Error("removed body should count as settled")
	}
}

func TestBothStaticContactIsDefensivelySkipped(t *testing.T) {
	a := NewStaticBody(NewVec2(0, 0), NewBox(20, 20))
	b := NewStaticBody(NewVec2(5, 0), NewBox(20, 20))
	c := Collide(a, b)
	if c == nil {
		t.Fatal("expected geometric overlap")
	}
	// Resolution of a static-static contact must be a no-op.
	resolveContact(c, 4)
	if a.Position != (Vec2{0, 0}) || b.Position != (Vec2{5, 0}) {
		t.Error("static-static resolution moved a body")
	}
}

func TestDetectionOrderIsDeterministic(t *testing.T) {
	build := func() *World {
		w := NewWorld(quietParams(), 1000, 1000)
		for i := 0; i < 6; i++ {
			b := circleAt(500+float64(i)*8, 500, 10)
			b.CanSleep = false
			w.AddBody(b)
		}
		return w
	}

	w1, w2 := build(), build()
	for i := 0; i < 10; i++ {
		w1.Step()
		w2.Step()
	}

	b1, b2 := w1.Bodies(), w2.Bodies()
	if len(b1) != len(b2) {
		t.Fatalf("body counts diverged: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i].Position != b2[i].Position || b1[i].Velocity != b2[i].Velocity {
			t.Errorf("body %d diverged: %+v/%+v vs %+v/%+v",
				i, b1[i].Position, b1[i].Velocity, b2[i].Position, b2[i].Velocity)
		}
	}
}

func TestNonFiniteUpdatesAreDiscarded(t *testing.T) {
	b := circleAt(5, 6, 1)
	b.Velocity = NewVec2(7, 8)

	applyPosition(b, NewVec2(math.NaN(), 0))
	applyPosition(b, NewVec2(0, math.Inf(1)))
	if b.Position != (Vec2{5, 6}) {
		t.Errorf("degenerate update moved body to %+v", b.Position)
	}

	applyVelocity(b, NewVec2(math.Inf(-1), 0))
	if b.Velocity != (Vec2{7, 8}) {
		t.Errorf("degenerate update changed velocity to %+v", b.Velocity)
	}
}

func TestBroadPhaseCoversBodiesOutsideTheSpace(t *testing.T) {
	w := NewWorld(quietParams(), 1000, 1000)

	// Two overlapping circles arcing above the playfield. Their real
	// bounds lie outside the cell space, so detection relies on the
	// clamped edge-cell mirrors.
	a := circleAt(500, -40, 10)
	b := circleAt(512, -40, 10)
	a.CanSleep = false
	b.CanSleep = false
	w.AddBody(a)
	w.AddBody(b)

	contacts := w.detect(w.Bodies())
	if len(contacts) != 1 {
		t.Fatalf("detected %d contacts above the space, want 1", len(contacts))
	}
	if c := contacts[0]; c.A != a || c.B != b {
		t.Errorf("contact pairs %v and %v in wrong order", c.A.ID(), c.B.ID())
	}
}
