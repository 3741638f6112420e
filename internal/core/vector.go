package core

import "math"

// Vector2 is a floating-point 2D vector used for sub-pixel positions and velocities.
type Vector2 struct {
	X, Y float64
}

// Vec creates a new vector.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// NegX returns v with its horizontal component negated.
func (v Vector2) NegX() Vector2 {
	return Vector2{X: -v.X, Y: v.Y}
}

// NegY returns v with its vertical component negated.
func (v Vector2) NegY() Vector2 {
	return Vector2{X: v.X, Y: -v.Y}
}

// Len returns the magnitude of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns the velocity for a heading and speed.
// Angle 0 points down the screen (+y), angle π points up.
func FromAngle(angle, speed float64) Vector2 {
	return Vector2{X: math.Sin(angle) * speed, Y: math.Cos(angle) * speed}
}

// Angle returns the heading of v in the same convention as FromAngle.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.X, v.Y)
}
