package tile

import (
	"github.com/avatar29a/terraincore/internal/dataset"
	"github.com/avatar29a/terraincore/internal/earthmath"
)

// ghostVectors holds the boundary samples used to compute normals at
// the edges of the 9x9 interior grid, converted to Cartesian
// positions at the point's own elevation.
type ghostVectors struct {
	nw, ne, sw, se earthmath.Vec3
	n, e, s, w     [gridSize]earthmath.Vec3
}

func readGhosts(tlLon, tlLat, degreeSize float64, lod int, ds *dataset.Reader) (ghostVectors, error) {
	var g ghostVectors
	eighth := degreeSize / 8.0

	corner := func(c dataset.Corner, lon, lat float64) (earthmath.Vec3, error) {
		elev, err := ds.ReadGhostCorner(tlLon, tlLat, degreeSize, lod, c)
		if err != nil {
			return earthmath.Vec3{}, err
		}
		return earthmath.SphericalToCartesian(lon, lat, earthmath.EarthRadius+float64(elev)), nil
	}

	var err error
	if g.nw, err = corner(dataset.CornerNW, tlLon-eighth, tlLat+eighth); err != nil {
		return g, err
	}
	if g.ne, err = corner(dataset.CornerNE, tlLon+degreeSize+eighth, tlLat+eighth); err != nil {
		return g, err
	}
	if g.sw, err = corner(dataset.CornerSW, tlLon-eighth, tlLat-degreeSize-eighth); err != nil {
		return g, err
	}
	if g.se, err = corner(dataset.CornerSE, tlLon+degreeSize+eighth, tlLat-degreeSize-eighth); err != nil {
		return g, err
	}

	edge := func(d dataset.Direction, lonAt, latAt func(i int) float64) ([gridSize]earthmath.Vec3, error) {
		var out [gridSize]earthmath.Vec3
		values, err := ds.ReadGhostEdge(tlLon, tlLat, degreeSize, lod, d)
		if err != nil {
			return out, err
		}
		for i := 0; i < gridSize; i++ {
			out[i] = earthmath.SphericalToCartesian(lonAt(i), latAt(i), earthmath.EarthRadius+float64(values[i]))
		}
		return out, nil
	}

	frac := func(i int) float64 { return float64(i) / 8.0 }

	if g.n, err = edge(dataset.DirectionN,
		func(i int) float64 { return tlLon + frac(i)*degreeSize },
		func(i int) float64 { return tlLat + eighth }); err != nil {
		return g, err
	}
	if g.s, err = edge(dataset.DirectionS,
		func(i int) float64 { return tlLon + frac(i)*degreeSize },
		func(i int) float64 { return tlLat - degreeSize - eighth }); err != nil {
		return g, err
	}
	if g.w, err = edge(dataset.DirectionW,
		func(i int) float64 { return tlLon - eighth },
		func(i int) float64 { return tlLat - frac(i)*degreeSize }); err != nil {
		return g, err
	}
	if g.e, err = edge(dataset.DirectionE,
		func(i int) float64 { return tlLon + degreeSize + eighth },
		func(i int) float64 { return tlLat - frac(i)*degreeSize }); err != nil {
		return g, err
	}

	return g, nil
}

// neighborOf returns the neighboring position for grid coordinate
// (x,y) shifted by (dx,dy), falling back to the ghost vectors when
// the shift steps outside the 0..8 interior range.
func neighborOf(t *Tile, g ghostVectors, x, y, dx, dy int) earthmath.Vec3 {
	nx, ny := x+dx, y+dy

	switch {
	case nx < 0 && ny < 0:
		return g.nw
	case nx > 8 && ny < 0:
		return g.ne
	case nx < 0 && ny > 8:
		return g.sw
	case nx > 8 && ny > 8:
		return g.se
	case ny < 0:
		return g.n[nx]
	case ny > 8:
		return g.s[nx]
	case nx < 0:
		return g.w[ny]
	case nx > 8:
		return g.e[ny]
	default:
		return t.Grid[ny][nx].Position
	}
}
