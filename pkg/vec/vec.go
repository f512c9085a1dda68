// Package vec provides integer vector math for block coordinates:
// 2D XZ-plane vectors, 3D vectors, axis-aligned rectangles and boxes,
// and point generators for common shapes.
package vec

import "math"

// Vec2 is a 2D integer vector in the XZ-plane.
type Vec2 struct {
	X, Z int
}

// Vec3 is a 3D integer block position.
type Vec3 struct {
	X, Y, Z int
}

// Unit vectors for the six axis directions. North is -Z, east is +X,
// matching Minecraft's coordinate conventions.
var (
	East  = Vec3{X: 1}
	West  = Vec3{X: -1}
	Up    = Vec3{Y: 1}
	Down  = Vec3{Y: -1}
	South = Vec3{Z: 1}
	North = Vec3{Z: -1}
)

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Z + o.Z} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Z - o.Z} }
func (v Vec2) Mul(s int) Vec2  { return Vec2{v.X * s, v.Z * s} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s int) Vec3  { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// AddY lifts a 2D XZ-vector into 3D at height y.
func AddY(v Vec2, y int) Vec3 { return Vec3{v.X, y, v.Z} }

// AddY returns v shifted along the Y axis.
func (v Vec3) AddY(dy int) Vec3 { return Vec3{v.X, v.Y + dy, v.Z} }

// DropY projects a 3D vector onto the XZ-plane.
func DropY(v Vec3) Vec2 { return Vec2{v.X, v.Z} }

// SetY returns v with its Y component replaced.
func SetY(v Vec3, y int) Vec3 { return Vec3{v.X, y, v.Z} }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(float64(v.X*v.X + v.Z*v.Z))
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// Distance2 returns the Euclidean distance between two XZ-plane points.
func Distance2(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// L1Distance returns the Manhattan distance between a and b.
func L1Distance(a, b Vec3) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
}

// Rotate2D rotates v by rotation quarter-turns around the Y axis.
func Rotate2D(v Vec2, rotation int) Vec2 {
	switch ((rotation % 4) + 4) % 4 {
	case 1:
		return Vec2{-v.Z, v.X}
	case 2:
		return Vec2{-v.X, -v.Z}
	case 3:
		return Vec2{v.Z, -v.X}
	default:
		return v
	}
}

// Rotate3D rotates v by rotation quarter-turns around the Y axis.
func Rotate3D(v Vec3, rotation int) Vec3 {
	r := Rotate2D(DropY(v), rotation)
	return Vec3{r.X, v.Y, r.Z}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
