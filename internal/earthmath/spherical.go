package earthmath

import "math"

const degToRad = math.Pi / 180.0
const radToDeg = 180.0 / math.Pi

// SphericalToCartesian converts a (longitude, latitude, radius) triple
// in degrees/degrees/meters to an Earth-centered Cartesian point, using
// a Y-up convention: X = r*sin(lon)*cos(lat), Y = r*sin(lat),
// Z = r*cos(lon)*cos(lat).
func SphericalToCartesian(lonDeg, latDeg, radius float64) Vec3 {
	lon := lonDeg * degToRad
	lat := latDeg * degToRad
	return Vec3{
		X: radius * math.Sin(lon) * math.Cos(lat),
		Y: radius * math.Sin(lat),
		Z: radius * math.Cos(lon) * math.Cos(lat),
	}
}

// CartesianToSpherical is the inverse of SphericalToCartesian, returning
// longitude/latitude in degrees and the radius in meters.
func CartesianToSpherical(v Vec3) (lonDeg, latDeg, radius float64) {
	radius = v.Length()
	if radius == 0 {
		return 0, 0, 0
	}
	latDeg = math.Asin(v.Y/radius) * radToDeg
	lonDeg = AngleFromCartesian(v.Z, v.X)
	return lonDeg, latDeg, radius
}

// AngleFromCartesian returns the angle, in degrees over [0,360), of the
// point (x,y) measured the way the dataset's longitude axis is defined:
// quadrant-wise composition of asin, matching the original
// implementation's getAngleFromCartesian exactly (rather than a plain
// atan2) so that dataset-derived bearings agree bit-for-bit.
func AngleFromCartesian(x, y float64) float64 {
	length := math.Sqrt(x*x + y*y)
	if length < 0.001 {
		length = 0.001
	}

	switch {
	case x >= 0 && y >= 0:
		return math.Asin(y/length) * radToDeg
	case x < 0 && y >= 0:
		return math.Asin(-x/length)*radToDeg + 90.0
	case x < 0 && y < 0:
		return math.Asin(-y/length)*radToDeg + 180.0
	default: // x >= 0 && y < 0
		return math.Asin(x/length)*radToDeg + 270.0
	}
}
