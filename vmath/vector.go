package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a float64 2D vector in world space (pixels, y down)
type Vector2 struct {
	X, Y float64
}

// V2 is shorthand for Vector2{x, y}
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromVec2 converts from the mathgl representation
func FromVec2(v mgl64.Vec2) Vector2 {
	return Vector2{X: v[0], Y: v[1]}
}

// Vec2 converts to the mathgl representation
func (v Vector2) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// FromAngle returns the unit vector (cos a, sin a)
func FromAngle(rad float64) Vector2 {
	return Vector2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return FromVec2(v.Vec2().Add(o.Vec2()))
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return FromVec2(v.Vec2().Sub(o.Vec2()))
}

func (v Vector2) Scale(s float64) Vector2 {
	return FromVec2(v.Vec2().Mul(s))
}

// Div divides by s, zero-safe: division by zero yields the zero vector
func (v Vector2) Div(s float64) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return v.Scale(1.0 / s)
}

func (v Vector2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Magnitude() float64 {
	return v.Vec2().Len()
}

// Normalize returns the unit vector, zero-safe
// A zero-length vector normalizes to the zero vector instead of NaN
func (v Vector2) Normalize() Vector2 {
	if v.MagnitudeSq() == 0 {
		return Vector2{}
	}
	return FromVec2(v.Vec2().Normalize())
}

// Angle returns atan2(y, x) in radians
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates counter-clockwise (in y-up terms) by rad radians
func (v Vector2) Rotate(rad float64) Vector2 {
	return FromVec2(mgl64.Rotate2D(rad).Mul2x1(v.Vec2()))
}

// ApproxEqual compares component-wise within epsilon
func (v Vector2) ApproxEqual(o Vector2, epsilon float64) bool {
	return math.Abs(v.X-o.X) <= epsilon && math.Abs(v.Y-o.Y) <= epsilon
}

// IsFinite reports whether neither component is NaN or Inf
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
