package physics

import "math"

// Vec2 is an immutable 2D vector. Every operation returns a new value.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

func (v Vec2) DistanceSq(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

// Normalize returns the unit vector. The zero vector normalizes to zero.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	inv := 1.0 / length
	return Vec2{X: v.X * inv, Y: v.Y * inv}
}

// Clamped limits the vector's length to max, preserving direction.
func (v Vec2) Clamped(max float64) Vec2 {
	if max <= 0 {
		return Vec2{}
	}
	lenSq := v.LengthSq()
	if lenSq <= max*max {
		return v
	}
	return v.Scale(max / math.Sqrt(lenSq))
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) isFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
