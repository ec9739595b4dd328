package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/GamesFromRust/piston-shooty/component"
)

// AABB is an axis-aligned box in world space
type AABB struct {
	Min, Max mgl64.Vec2
}

// BoundingBox returns the axis-aligned bounds of c's scaled box rotated to its pose
func BoundingBox(c component.Collidable) AABB {
	obj := c.CollidableObject()
	hw := obj.Width * 0.5 * c.Scale()
	hh := obj.Height * 0.5 * c.Scale()

	rot := mgl64.Rotate2D(c.Rotation())
	center := c.Position().Vec2()
	corners := [4]mgl64.Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	box := AABB{
		Min: mgl64.Vec2{math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec2{math.Inf(-1), math.Inf(-1)},
	}
	for _, corner := range corners {
		p := rot.Mul2x1(corner).Add(center)
		box.Min[0] = math.Min(box.Min[0], p[0])
		box.Min[1] = math.Min(box.Min[1], p[1])
		box.Max[0] = math.Max(box.Max[0], p[0])
		box.Max[1] = math.Max(box.Max[1], p[1])
	}
	return box
}

// Intersects reports whether two boxes overlap; touching edges count
func Intersects(a, b AABB) bool {
	return a.Min[0] <= b.Max[0] && a.Max[0] >= b.Min[0] &&
		a.Min[1] <= b.Max[1] && a.Max[1] >= b.Min[1]
}
