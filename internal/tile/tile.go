// Package tile builds and represents a single materialized terrain
// tile: its 9x9 interior sample grid, boundary ghost vectors, vertex
// normals, texture coordinates, elevation colour, and the fixed
// bottom-plane skirt geometry.
package tile

import (
	"fmt"

	"github.com/avatar29a/terraincore/internal/dataset"
	"github.com/avatar29a/terraincore/internal/earthmath"
	"github.com/avatar29a/terraincore/internal/geo"
)

// gridSize is the interior sample grid's side length (9x9 points,
// forming an 8x8 grid of quads).
const gridSize = 9

// Sample is one of the 81 interior grid points.
type Sample struct {
	Elevation int16
	Position  earthmath.Vec3 // at EarthRadius + Elevation
	SeaLevel  earthmath.Vec3 // at EarthRadius - 500m
	Normal    earthmath.Vec3
	Color     [3]float32
	U, V      float32
}

// Tile is the fully materialized payload for one (topLeftLon,
// topLeftLat, LOD) key.
type Tile struct {
	TopLeftLon, TopLeftLat float64
	LOD                    int
	DegreeSize             float64
	MustShowDistance       float64

	Grid    [gridSize][gridSize]Sample
	Texture []byte // TextureTileSize x TextureTileSize x 3, row-major

	BottomPlane BottomPlane

	// TextureHandle is an opaque GPU resource identifier an external
	// renderer may stash here; the tile cache enqueues it for
	// deletion on eviction (see internal/tilecache) but never
	// interprets it itself.
	TextureHandle uint32
}

// Key uniquely identifies a tile's dataset coordinates.
type Key struct {
	TopLeftLon, TopLeftLat float64
	LOD                    int
}

// Key returns this tile's cache key.
func (t *Tile) Key() Key {
	return Key{t.TopLeftLon, t.TopLeftLat, t.LOD}
}

// Build constructs a new Tile for the grid cell containing (lon, lat)
// at the given LOD, reading interior and ghost samples from ds.
func Build(lon, lat float64, lod int, ds *dataset.Reader) (*Tile, error) {
	degreeSize := dataset.LODDegreeSize(lod)
	tlLon, tlLat := geo.FindTopLeftCorner(lon, lat, degreeSize)

	t := &Tile{
		TopLeftLon: tlLon,
		TopLeftLat: tlLat,
		LOD:        lod,
		DegreeSize: degreeSize,
	}
	t.MustShowDistance = (degreeSize / 8.0 / 360.0) * earthmath.EarthCircumference

	block, err := ds.ReadElevationBlock(tlLon, tlLat, degreeSize, lod)
	if err != nil {
		return nil, fmt.Errorf("tile: reading elevation block for %+v: %w", t.Key(), err)
	}

	ghosts, err := readGhosts(tlLon, tlLat, degreeSize, lod, ds)
	if err != nil {
		return nil, fmt.Errorf("tile: reading ghost vectors for %+v: %w", t.Key(), err)
	}

	for j := 0; j < gridSize; j++ {
		for i := 0; i < gridSize; i++ {
			elev := block[j][i]
			lonP := tlLon + (float64(i)/8.0)*degreeSize
			latP := tlLat - (float64(j)/8.0)*degreeSize

			s := Sample{Elevation: elev}
			s.Position = earthmath.SphericalToCartesian(lonP, latP, earthmath.EarthRadius+float64(elev))
			s.SeaLevel = earthmath.SphericalToCartesian(lonP, latP, earthmath.EarthRadius-500.0)
			s.Color = elevationColor(elev)
			s.U, s.V = textureUV(tlLon, tlLat, degreeSize, lod, i, j)

			t.Grid[j][i] = s
		}
	}

	computeNormals(t, ghosts)

	texture, err := ds.ReadTexture(tlLon, tlLat, degreeSize, lod)
	if err != nil {
		return nil, fmt.Errorf("tile: reading texture for %+v: %w", t.Key(), err)
	}
	t.Texture = texture

	t.BottomPlane = buildBottomPlane(tlLon, tlLat, degreeSize)

	return t, nil
}

// ClosestPoint returns the sea-level grid point nearest camPos,
// together with its outward normal direction and distance. Used by
// the quadtree's visibility and LOD-selection logic.
func (t *Tile) ClosestPoint(camPos earthmath.Vec3) (point earthmath.Vec3, normal earthmath.Vec3, distance float64) {
	best := -1.0
	for j := 0; j < gridSize; j++ {
		for i := 0; i < gridSize; i++ {
			p := t.Grid[j][i].SeaLevel
			d := p.Distance(camPos)
			if best < 0 || d < best {
				best = d
				point = p
			}
		}
	}
	return point, point.Normalize(), best
}
