package physics

import "math"

// Contact is a detected overlap between two bodies. Contacts are produced
// fresh each detection pass and consumed immediately by the solver.
type Contact struct {
	A, B *Body
	// Normal is a unit vector pointing from A to B.
	Normal Vec2
	// Penetration is the overlap depth along the normal, >= 0.
	Penetration float64
}

// Collide runs the shape-pair intersection test for two bodies and returns
// the contact, or nil when the bodies do not overlap. Unsupported or
// missing shapes never collide. Pair filtering (static-static,
// sleeping-sleeping) is the caller's responsibility.
func Collide(a, b *Body) *Contact {
	switch sa := a.Shape.(type) {
	case *Circle:
		switch sb := b.Shape.(type) {
		case *Circle:
			return collideCircleCircle(a, b, sa, sb)
		case *Box:
			return collideCircleBox(a, b, sa, sb)
		}
	case *Box:
		switch sb := b.Shape.(type) {
		case *Circle:
			// Reuse circle-box with operands swapped and the normal negated.
			c := collideCircleBox(b, a, sb, sa)
			if c != nil {
				c.A, c.B = a, b
				c.Normal = c.Normal.Scale(-1)
			}
			return c
		case *Box:
			return collideBoxBox(a, b, sa, sb)
		}
	}
	return nil
}

func collideCircleCircle(a, b *Body, ca, cb *Circle) *Contact {
	delta := b.Position.Sub(a.Position)
	distSq := delta.LengthSq()
	total := ca.Radius + cb.Radius

	// Strict inequality: touching circles do not collide.
	if distSq >= total*total {
		return nil
	}

	dist := math.Sqrt(distSq)
	normal := Vec2{X: 1, Y: 0}
	if dist > 0 {
		normal = delta.Scale(1.0 / dist)
	}

	return &Contact{
		A:           a,
		B:           b,
		Normal:      normal,
		Penetration: total - dist,
	}
}

func collideBoxBox(a, b *Body, ba, bb *Box) *Contact {
	delta := b.Position.Sub(a.Position)
	overlapX := (ba.Width+bb.Width)*0.5 - math.Abs(delta.X)
	if overlapX <= 0 {
		return nil
	}
	overlapY := (ba.Height+bb.Height)*0.5 - math.Abs(delta.Y)
	if overlapY <= 0 {
		return nil
	}

	// Resolve along the axis of smaller overlap; X wins ties.
	if overlapX <= overlapY {
		normal := Vec2{X: 1, Y: 0}
		if delta.X < 0 {
			normal.X = -1
		}
		return &Contact{A: a, B: b, Normal: normal, Penetration: overlapX}
	}
	normal := Vec2{X: 0, Y: 1}
	if delta.Y < 0 {
		normal.Y = -1
	}
	return &Contact{A: a, B: b, Normal: normal, Penetration: overlapY}
}

func collideCircleBox(circle, box *Body, cs *Circle, bs *Box) *Contact {
	halfW, halfH := bs.Width*0.5, bs.Height*0.5

	// Closest point on the box to the circle center.
	closest := Vec2{
		X: math.Max(box.Position.X-halfW, math.Min(circle.Position.X, box.Position.X+halfW)),
		Y: math.Max(box.Position.Y-halfH, math.Min(circle.Position.Y, box.Position.Y+halfH)),
	}

	delta := circle.Position.Sub(closest)
	distSq := delta.LengthSq()
	if distSq >= cs.Radius*cs.Radius {
		return nil
	}

	dist := math.Sqrt(distSq)
	var normal Vec2
	if dist > 0 {
		normal = delta.Scale(1.0 / dist)
	} else {
		// Circle center inside the box: push out along the box-to-circle
		// direction, or straight up for coincident centers.
		normal = circle.Position.Sub(box.Position).Normalize()
		if normal.IsZero() {
			normal = Vec2{X: 0, Y: -1}
		}
	}

	// Normal points from the box toward the circle; contacts are A->B, so
	// flip it to run from circle to box.
	return &Contact{
		A:           circle,
		B:           box,
		Normal:      normal.Scale(-1),
		Penetration: cs.Radius - dist,
	}
}
