// Package cameracontract defines the read-only camera state the core
// consumes each frame. An external renderer or camera owner produces
// a Snapshot; the core never mutates it.
package cameracontract

import "github.com/avatar29a/terraincore/internal/earthmath"

// Snapshot is the camera state visible to the quadtree's visibility
// and LOD-selection logic for a single frame.
type Snapshot struct {
	// Position is the camera's location in Earth-centered Cartesian
	// coordinates.
	Position earthmath.Vec3

	// Forward is the camera's normalized look direction.
	Forward earthmath.Vec3

	// ClippingCosine is the cosine of the camera's field-of-view
	// clipping half-angle: a point is considered within view when the
	// cosine of the angle between Forward and the direction to that
	// point is at least this value.
	ClippingCosine float64

	// LODMultiplier scales every distance threshold in the LOD
	// selection ladder (quadtree.LODForDistance), letting a host
	// application trade detail for performance without recomputing the
	// ladder itself.
	LODMultiplier float64
}
