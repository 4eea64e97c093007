package physics

import (
	"log"
	"math"
)

// Positional correction constants. A small slop is left unresolved so that
// resting contacts do not jitter, and only a fraction of the remaining
// penetration is corrected per pass.
const (
	correctionSlop    = 0.1
	correctionPercent = 0.8
)

// resolveContact applies positional correction, the velocity impulse, and
// the per-body collision hooks for a single contact. wakeSpeedSq is the
// squared closing speed above which a contact counts as an impact and
// wakes sleeping bodies.
func resolveContact(c *Contact, wakeSpeedSq float64) {
	a, b := c.A, c.B

	invSum := a.InvMass + b.InvMass
	if invSum == 0 {
		// Both static. Detection filters these pairs, but keep the
		// division safe regardless.
		return
	}

	// Positional correction, split proportionally to inverse mass and
	// applied only to non-static bodies.
	correction := math.Max(c.Penetration-correctionSlop, 0) * correctionPercent / invSum
	correctionVec := c.Normal.Scale(correction)
	if !a.Static {
		applyPosition(a, a.Position.Sub(correctionVec.Scale(a.InvMass)))
	}
	if !b.Static {
		applyPosition(b, b.Position.Add(correctionVec.Scale(b.InvMass)))
	}

	// Velocity resolution. Bodies already separating get no impulse.
	relative := b.Velocity.Sub(a.Velocity)
	velAlongNormal := relative.Dot(c.Normal)

	impulseMag := 0.0
	if velAlongNormal <= 0 {
		e := math.Min(a.Restitution, b.Restitution)
		j := -(1 + e) * velAlongNormal / invSum
		impulse := c.Normal.Scale(j)

		applyVelocity(a, a.Velocity.Sub(impulse.Scale(a.InvMass)))
		applyVelocity(b, b.Velocity.Add(impulse.Scale(b.InvMass)))
		impulseMag = impulse.Length()
	}

	// A body wakes only when struck by a moving dynamic partner. Resting
	// contacts carry a small counter-gravity impulse every tick, so using
	// the impulse alone would keep settled stacks awake forever. The
	// closing speed filters those out: bodies falling together or sitting
	// on static ground have none.
	if velAlongNormal < 0 && velAlongNormal*velAlongNormal > wakeSpeedSq {
		if !b.Static {
			a.Wake()
		}
		if !a.Static {
			b.Wake()
		}
	}

	if a.OnCollision != nil {
		a.OnCollision(b, impulseMag)
	}
	if b.OnCollision != nil {
		b.OnCollision(a, impulseMag)
	}
}

// applyPosition commits a position update, discarding non-finite results
// so one degenerate contact cannot poison the body.
func applyPosition(b *Body, pos Vec2) {
	if !pos.isFinite() {
		log.Printf("Warning: discarding non-finite position %+v for body %d", pos, b.id)
		return
	}
	b.Position = pos
}

func applyVelocity(b *Body, vel Vec2) {
	if !vel.isFinite() {
		log.Printf("Warning: discarding non-finite velocity %+v for body %d", vel, b.id)
		return
	}
	b.Velocity = vel
}
