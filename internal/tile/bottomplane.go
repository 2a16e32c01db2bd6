package tile

import "github.com/avatar29a/terraincore/internal/earthmath"

// bottomPlaneRadius is the fixed depth, below EarthRadius, of the
// skirt geometry drawn under every tile to hide cracks between
// neighboring LODs.
const bottomPlaneRadius = earthmath.EarthRadius - 200.0

// BottomPlane is the 3x3 grid of named points forming a tile's skirt,
// drawn flat at bottomPlaneRadius regardless of the tile's actual
// terrain elevation.
type BottomPlane struct {
	NW, N, NE earthmath.Vec3
	W, C, E   earthmath.Vec3
	SW, S, SE earthmath.Vec3
}

// buildBottomPlane computes the 9 skirt points for a tile spanning
// [tlLon, tlLon+degreeSize] x [tlLat-degreeSize, tlLat].
func buildBottomPlane(tlLon, tlLat, degreeSize float64) BottomPlane {
	half := degreeSize / 2.0

	at := func(lon, lat float64) earthmath.Vec3 {
		return earthmath.SphericalToCartesian(lon, lat, bottomPlaneRadius)
	}

	left, mid, right := tlLon, tlLon+half, tlLon+degreeSize
	top, midLat, bottom := tlLat, tlLat-half, tlLat-degreeSize

	return BottomPlane{
		NW: at(left, top), N: at(mid, top), NE: at(right, top),
		W: at(left, midLat), C: at(mid, midLat), E: at(right, midLat),
		SW: at(left, bottom), S: at(mid, bottom), SE: at(right, bottom),
	}
}
