// Package earthmath provides double-precision vector math and the
// spherical/Cartesian coordinate transforms used to place terrain
// samples on an Earth-centered grid.
package earthmath

import "math"

// EarthRadius is the reference sphere radius, in meters.
const EarthRadius = 6378100.0

// EarthCircumference is the reference sphere circumference, in meters.
const EarthCircumference = 40074784.208

// Vec3 is a 3-component double-precision vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1.0 / l)
}

// Distance returns the Euclidean distance between v and other.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// NormalFrom returns normalize(cross(a, b)), the face normal formed
// by the ordered pair (a, b). Argument order determines sign and must
// match the caller's winding convention.
func NormalFrom(a, b Vec3) Vec3 {
	return a.Cross(b).Normalize()
}
