package physics

import "github.com/solarlune/resolv"

// Body is a simulated physical object, dynamic or static. Mass, shape and
// restitution are fixed at creation; position and velocity are mutated by
// the world stepper and the contact solver every tick.
type Body struct {
	Position Vec2
	Velocity Vec2

	// Static bodies have infinite mass: they are never integrated and
	// never moved by contact resolution.
	Static      bool
	Mass        float64
	InvMass     float64
	Restitution float64
	Shape       Shape

	// Sleep state. Sleeping bodies are excluded from forces and
	// integration, and pairs where both bodies sleep generate no contacts.
	Sleeping   bool
	CanSleep   bool
	sleepTimer float64

	// Held marks a body under slingshot control. The aim position is the
	// body's authoritative position, so the stepper applies no forces, no
	// integration and no contacts to it until release.
	Held bool

	Health          float64
	MaxHealth       float64
	DamageThreshold float64

	// OnCollision is invoked by the solver for every resolved contact
	// with the other body and the impulse magnitude. The default applies
	// threshold damage; entity factories wrap it per kind.
	OnCollision func(other *Body, impulse float64)

	// UserData links back to the owning game entity.
	UserData any

	id      uint64
	removed bool
	mirror  *resolv.Object
}

// damagePerImpulse converts impulse magnitude above a body's damage
// threshold into health loss.
const damagePerImpulse = 0.05

// NewBody creates a dynamic body, or a static one when mass is zero.
func NewBody(pos Vec2, shape Shape, mass float64) *Body {
	b := &Body{
		Position:    pos,
		Mass:        mass,
		Static:      mass == 0,
		Restitution: 0.2,
		Shape:       shape,
		CanSleep:    true,
	}
	if mass > 0 {
		b.InvMass = 1.0 / mass
	}
	b.OnCollision = b.ApplyImpact
	return b
}

// NewStaticBody creates an immovable body.
func NewStaticBody(pos Vec2, shape Shape) *Body {
	return NewBody(pos, shape, 0)
}

// ID returns the body's world-assigned identifier. Zero until the body is
// added to a world.
func (b *Body) ID() uint64 {
	return b.id
}

func (b *Body) Wake() {
	if b.Static {
		return
	}
	b.Sleeping = false
	b.sleepTimer = 0
}

func (b *Body) sleep() {
	if b.Static {
		return
	}
	b.Sleeping = true
	b.Velocity = Vec2{}
}

// ApplyImpact is the default collision response: impulses above the damage
// threshold reduce health, and depleted health marks the body for removal.
func (b *Body) ApplyImpact(other *Body, impulse float64) {
	if impulse <= b.DamageThreshold || b.MaxHealth <= 0 {
		return
	}
	b.Damage(impulse * damagePerImpulse)
}

// Damage reduces health and flags the body once health drops to zero or
// below. Bodies without health (MaxHealth == 0) are indestructible.
func (b *Body) Damage(amount float64) {
	if b.MaxHealth <= 0 || b.removed {
		return
	}
	b.Health -= amount
	if b.Health <= 0 {
		b.MarkForRemoval()
	}
}

// MarkForRemoval flags the body; the world sweeps it after the current
// step. The flag is terminal.
func (b *Body) MarkForRemoval() {
	b.removed = true
}

func (b *Body) MarkedForRemoval() bool {
	return b.removed
}
