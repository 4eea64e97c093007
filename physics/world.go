package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

// Params holds every constant the stepper and the trajectory predictor
// share. The predictor must replay the stepper's exact formulas, so both
// read from the same Params value.
type Params struct {
	// Gravity is the downward acceleration in units per second squared.
	Gravity float64
	// Damping is the per-tick velocity retention factor, < 1.
	Damping float64
	// TimeStep is the fixed tick duration in seconds.
	TimeStep float64
	// SubSteps is how many detect+resolve rounds run per tick. A single
	// pass under-resolves stacked resting contacts.
	SubSteps int
	// SleepSpeedSq is the squared speed below which the sleep timer
	// accumulates.
	SleepSpeedSq float64
	// SleepDelay is how long a body must stay slow before it sleeps,
	// in seconds.
	SleepDelay float64
	// LaunchPower scales the slingshot's raw drag vector into a launch
	// velocity.
	LaunchPower float64
}

func DefaultParams() Params {
	return Params{
		Gravity:      980.0,
		Damping:      0.995,
		TimeStep:     1.0 / 60.0,
		SubSteps:     8,
		SleepSpeedSq: 4.0,
		SleepDelay:   0.5,
		LaunchPower:  9.0,
	}
}

// outOfBoundsMargin is how far outside the world rectangle a body may
// travel before it is flagged for removal.
const outOfBoundsMargin = 200.0

// broadphaseCellSize is the resolv cell size for the candidate-pair space.
const broadphaseCellSize = 32

// World owns the simulated body set and advances it in fixed ticks.
//
// Candidate pairs come from a resolv cell space mirroring each body's
// shape bounds: two overlapping shapes always share a cell, so the cell
// query yields a superset of the true contact set and the exact
// shape-pair tests in Collide keep the final say. This is purely a
// performance substitution for checking all pairs.
type World struct {
	params Params
	bodies []*Body
	space  *resolv.Space

	width, height float64
	nextID        uint64

	// lastContacts is the contact count of the most recent sub-step,
	// kept for the debug overlay.
	lastContacts int
}

func NewWorld(params Params, width, height float64) *World {
	return &World{
		params: params,
		space:  resolv.NewSpace(int(width), int(height), broadphaseCellSize, broadphaseCellSize),
		width:  width,
		height: height,
	}
}

func (w *World) Params() Params {
	return w.params
}

// AddBody registers a body with the simulation and assigns its identifier.
func (w *World) AddBody(b *Body) {
	w.nextID++
	b.id = w.nextID
	w.bodies = append(w.bodies, b)

	x, y, bw, bh := w.mirrorBounds(b)
	b.mirror = resolv.NewObject(x, y, bw, bh)
	b.mirror.Data = b
	w.space.Add(b.mirror)
}

// RemoveBody flags a body for removal; it is swept at the next tick
// boundary, never mid-iteration.
func (w *World) RemoveBody(b *Body) {
	b.MarkForRemoval()
}

// Bodies returns a snapshot of the current body set.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// ContactCount reports how many contacts the last solver pass resolved.
func (w *World) ContactCount() int {
	return w.lastContacts
}

// Settled reports whether every body is static, sleeping, held, or
// removed. Game-flow logic polls this to decide when a shot has played
// out; a body waiting on the slingshot is at rest by definition.
func (w *World) Settled() bool {
	for _, b := range w.bodies {
		if b.removed || b.Static || b.Sleeping || b.Held {
			continue
		}
		return false
	}
	return true
}

// Step advances the simulation by one fixed tick: forces, integration,
// repeated collision sub-steps, then sleep management and the removal
// sweep. Bodies added or removed between ticks are tolerated; the step
// iterates a snapshot.
func (w *World) Step() {
	dt := w.params.TimeStep
	snapshot := w.Bodies()

	// Force application: gravity then unconditional linear damping,
	// awake dynamic bodies with positive mass only. Held bodies sit out:
	// the slingshot's aim position is authoritative until release.
	for _, b := range snapshot {
		if b.removed || b.Static || b.Sleeping || b.Held || b.Mass <= 0 {
			continue
		}
		v := b.Velocity
		v.Y += w.params.Gravity * dt
		v = v.Scale(w.params.Damping)
		applyVelocity(b, v)
	}

	// Integration.
	for _, b := range snapshot {
		if b.removed || b.Static || b.Sleeping || b.Held {
			continue
		}
		applyPosition(b, b.Position.Add(b.Velocity.Scale(dt)))
	}
	w.syncMirrors(snapshot)

	// Collision sub-steps. One round never stabilizes stacks.
	for i := 0; i < w.params.SubSteps; i++ {
		contacts := w.detect(snapshot)
		for _, c := range contacts {
			resolveContact(c, w.params.SleepSpeedSq)
		}
		w.lastContacts = len(contacts)
		w.syncMirrors(snapshot)
	}

	// Sleep management.
	for _, b := range snapshot {
		if b.removed || b.Static || b.Held || !b.CanSleep {
			continue
		}
		if b.Velocity.LengthSq() < w.params.SleepSpeedSq {
			b.sleepTimer += dt
			if !b.Sleeping && b.sleepTimer >= w.params.SleepDelay {
				b.sleep()
			}
		} else {
			b.Wake()
		}
	}

	// Flag bodies that left the world.
	for _, b := range snapshot {
		if b.removed || b.Static {
			continue
		}
		if b.Position.X < -outOfBoundsMargin ||
			b.Position.X > w.width+outOfBoundsMargin ||
			b.Position.Y > w.height+outOfBoundsMargin {
			b.MarkForRemoval()
		}
	}

	w.sweep()
}

// detect collects the contact set for this sub-step. Pairs are ordered by
// body identifiers so resolution is deterministic and reproducible.
func (w *World) detect(snapshot []*Body) []*Contact {
	type pair struct {
		a, b *Body
	}
	seen := map[[2]uint64]pair{}

	for _, a := range snapshot {
		if a.removed || a.Shape == nil || a.Static || a.Held {
			continue
		}
		check := a.mirror.Check(0, 0)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			b, ok := obj.Data.(*Body)
			if !ok || b == a || b.removed || b.Shape == nil || b.Held {
				continue
			}
			if a.Static && b.Static {
				continue
			}
			if a.Sleeping && b.Sleeping {
				continue
			}
			key := [2]uint64{a.id, b.id}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if _, dup := seen[key]; dup {
				continue
			}
			if a.id == key[0] {
				seen[key] = pair{a: a, b: b}
			} else {
				seen[key] = pair{a: b, b: a}
			}
		}
	}

	keys := make([][2]uint64, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	contacts := make([]*Contact, 0, len(keys))
	for _, k := range keys {
		p := seen[k]
		if c := Collide(p.a, p.b); c != nil {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// syncMirrors pushes body positions into the broad-phase space.
func (w *World) syncMirrors(snapshot []*Body) {
	for _, b := range snapshot {
		if b.removed || b.Shape == nil || b.mirror == nil {
			continue
		}
		b.mirror.X, b.mirror.Y, b.mirror.W, b.mirror.H = w.mirrorBounds(b)
		b.mirror.Update()
	}
}

// mirrorBounds converts a body's AABB into broad-phase bounds, clamped
// into the cell space. A body arcing outside the playfield keeps an edge
// cell, so it stays visible to the broad phase; the shape-pair tests in
// Collide still have the final say on contact.
func (w *World) mirrorBounds(b *Body) (x, y, bw, bh float64) {
	minX, minY, maxX, maxY := 0.0, 0.0, 1.0, 1.0
	if b.Shape != nil {
		minX, minY, maxX, maxY = b.Shape.AABB(b.Position)
	}
	minX = math.Min(math.Max(minX, 0), w.width-1)
	minY = math.Min(math.Max(minY, 0), w.height-1)
	maxX = math.Min(math.Max(maxX, minX+1), w.width)
	maxY = math.Min(math.Max(maxY, minY+1), w.height)
	return minX, minY, maxX - minX, maxY - minY
}

// sweep drops flagged bodies from the body list and the broad phase.
// Neighbors of a removed body are woken so a structure missing its
// support collapses instead of hanging asleep in the air.
func (w *World) sweep() {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if b.removed {
			if b.mirror != nil {
				if check := b.mirror.Check(0, 0); check != nil {
					for _, obj := range check.Objects {
						if nb, ok := obj.Data.(*Body); ok {
							nb.Wake()
						}
					}
				}
				w.space.Remove(b.mirror)
				b.mirror = nil
			}
			continue
		}
		kept = append(kept, b)
	}
	w.bodies = kept
}
