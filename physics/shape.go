package physics

import "math"

// Shape is the collision geometry of a body. Positions are shape centers,
// for boxes as well as circles. A body with a nil shape never collides.
type Shape interface {
	// AABB returns the axis-aligned bounds of the shape centered at pos.
	AABB(pos Vec2) (minX, minY, maxX, maxY float64)
	// BoundingRadius returns the radius of the smallest circle enclosing
	// the shape. Used for the slingshot grab test.
	BoundingRadius() float64
}

type Circle struct {
	Radius float64
}

func NewCircle(radius float64) *Circle {
	return &Circle{Radius: radius}
}

func (c *Circle) AABB(pos Vec2) (float64, float64, float64, float64) {
	return pos.X - c.Radius, pos.Y - c.Radius, pos.X + c.Radius, pos.Y + c.Radius
}

func (c *Circle) BoundingRadius() float64 {
	return c.Radius
}

// Box is an axis-aligned rectangle. It does not rotate.
type Box struct {
	Width, Height float64
}

func NewBox(width, height float64) *Box {
	return &Box{Width: width, Height: height}
}

func (b *Box) AABB(pos Vec2) (float64, float64, float64, float64) {
	halfW, halfH := b.Width*0.5, b.Height*0.5
	return pos.X - halfW, pos.Y - halfH, pos.X + halfW, pos.Y + halfH
}

func (b *Box) BoundingRadius() float64 {
	return 0.5 * math.Hypot(b.Width, b.Height)
}
