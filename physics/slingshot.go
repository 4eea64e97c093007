package physics

// grabRadiusScale is how far from the held body's center, in multiples of
// its bounding radius, a drag may begin.
const grabRadiusScale = 1.5

// Slingshot owns the aiming reference for a single held body. While a body
// is attached and aimed, the aimed position IS the body's authoritative
// position; the aim state is cleared on launch or cancel.
type Slingshot struct {
	Anchor  Vec2
	MaxDrag float64

	power   float64
	damping float64

	held   *Body
	aiming bool
}

// NewSlingshot creates a slingshot anchored at anchor. The launch power
// and the damping pre-compensation come from the same Params the world
// steps with, so the first integration tick delivers the intended speed.
func NewSlingshot(anchor Vec2, maxDrag float64, p Params) *Slingshot {
	return &Slingshot{
		Anchor:  anchor,
		MaxDrag: maxDrag,
		power:   p.LaunchPower,
		damping: p.Damping,
	}
}

// Attach binds a body for aiming: it is snapped to the anchor, stopped,
// woken, and taken out of the simulation until release. Any previously
// held body is released in place.
func (s *Slingshot) Attach(b *Body) {
	if s.held != nil && s.held != b {
		s.held.Held = false
	}
	s.held = b
	s.aiming = false
	if b == nil {
		return
	}
	b.Held = true
	b.Position = s.Anchor
	b.Velocity = Vec2{}
	b.Wake()
}

// Held returns the currently attached body, or nil.
func (s *Slingshot) Held() *Body {
	return s.held
}

// Aiming reports whether a drag is in progress.
func (s *Slingshot) Aiming() bool {
	return s.aiming
}

// StartAim begins a drag if the pointer is close enough to the held body.
// It reports whether a drag started.
func (s *Slingshot) StartAim(pointer Vec2) bool {
	if s.held == nil || s.held.Shape == nil {
		return false
	}
	grab := s.held.Shape.BoundingRadius() * grabRadiusScale
	if pointer.DistanceSq(s.held.Position) > grab*grab {
		return false
	}
	s.aiming = true
	return true
}

// UpdateAim moves the held body to the anchor plus the drag vector,
// clamped to the maximum drag distance.
func (s *Slingshot) UpdateAim(pointer Vec2) {
	if !s.aiming || s.held == nil {
		return
	}
	drag := pointer.Sub(s.Anchor).Clamped(s.MaxDrag)
	s.held.Position = s.Anchor.Add(drag)
}

// LaunchVelocity returns the raw, unscaled vector from the held body's
// position back to the anchor. Zero when nothing is held.
func (s *Slingshot) LaunchVelocity() Vec2 {
	if s.held == nil {
		return Vec2{}
	}
	return s.Anchor.Sub(s.held.Position)
}

// EndAim finishes a drag. A nonzero raw vector becomes a launch: the held
// body is released with the raw vector scaled by the power constant and by
// 1/damping, pre-compensating the first tick's damping. Aim state is
// cleared either way. Reports whether a launch occurred.
func (s *Slingshot) EndAim() bool {
	s.aiming = false
	if s.held == nil {
		return false
	}
	raw := s.LaunchVelocity()
	if raw.IsZero() {
		return false
	}
	b := s.held
	b.Held = false
	b.Velocity = raw.Scale(s.power / s.damping)
	b.Wake()
	s.held = nil
	return true
}

// Cancel aborts any drag, snapping the held body back to the anchor.
func (s *Slingshot) Cancel() {
	s.aiming = false
	if s.held != nil {
		s.held.Position = s.Anchor
		s.held.Velocity = Vec2{}
	}
}
