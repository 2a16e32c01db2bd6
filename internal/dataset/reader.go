package dataset

import (
	"fmt"

	"github.com/avatar29a/terraincore/internal/geo"
)

// Reader resolves geographic coordinates against a set of dataset
// directories (one availability table per band) and serves elevation
// and texture samples out of them.
type Reader struct {
	tables map[geo.Band]*geo.AvailabilityTable
	files  *fileStore
}

// NewReader scans each of the given directories into an availability
// table for its band. A directory may be omitted (empty string) if
// that band is not in use; reads against a missing band always behave
// as if no source file were present.
func NewReader(dirs map[geo.Band]string) (*Reader, error) {
	r := &Reader{
		tables: make(map[geo.Band]*geo.AvailabilityTable),
		files:  newFileStore(),
	}

	for band, dir := range dirs {
		if dir == "" {
			continue
		}
		table, err := geo.ScanAvailability(dir, band)
		if err != nil {
			return nil, fmt.Errorf("dataset: initializing band %v: %w", band, err)
		}
		r.tables[band] = table
	}

	return r, nil
}

// Close releases any open file handles held by the reader.
func (r *Reader) Close() {
	r.files.close()
}

// ElevationBandForLOD returns the elevation band covering lod.
func ElevationBandForLOD(lod int) geo.Band {
	switch {
	case lod <= elevBand0Max:
		return geo.ElevationL00L03
	case lod <= elevBand1Max:
		return geo.ElevationL04L08
	default:
		return geo.ElevationL09L13
	}
}

// TextureSourceMaxLOD is the highest LOD with its own native texture
// band; higher LODs reuse this band's imagery, upsampled.
const TextureSourceMaxLOD = 10

// TextureBandForLOD returns the texture band covering lod, clamped at
// TextureSourceMaxLOD.
func TextureBandForLOD(lod int) geo.Band {
	if lod > TextureSourceMaxLOD {
		lod = TextureSourceMaxLOD
	}
	switch {
	case lod <= texBand0Max:
		return geo.TextureL00L02
	case lod <= texBand1Max:
		return geo.TextureL03L05
	case lod <= texBand2Max:
		return geo.TextureL06L08
	default:
		return geo.TextureL09L10
	}
}

// ElevationBandDegreeSize returns the source-file footprint, in
// degrees per side, of the elevation band covering lod. This is the
// granularity the tile cache shards by (§4.4).
func ElevationBandDegreeSize(lod int) float64 {
	return ElevationBandForLOD(lod).DegreeSize()
}

// elevationAt resolves and reads a single elevation sample at (lon,
// lat) within the elevation band for lod. Missing source data (no
// file covering the point, or the point falling beyond a pole)
// returns (0, nil): this is not a dataset error, just absent data.
//
// The highest composite band (ElevationL09L13) is itself synthesized
// offline from raw 1-degree SRTM tiles; where a region's composite
// file hasn't been built yet, a scanned ElevationSRTM directory is
// consulted directly as a fallback source for the same point.
func (r *Reader) elevationAt(lon, lat float64, lod int) (int16, error) {
	if lat > 90.0 || lat <= -90.0 {
		return 0, nil
	}
	lon = geo.NormalizeLongitude(lon)

	band := ElevationBandForLOD(lod)
	if v, ok, err := r.readElevationFromBand(band, lon, lat); ok || err != nil {
		return v, err
	}

	if band == geo.ElevationL09L13 {
		if v, ok, err := r.readElevationFromBand(geo.ElevationSRTM, lon, lat); ok || err != nil {
			return v, err
		}
	}

	return 0, nil
}

// readElevationFromBand samples a single point from a specific
// elevation band's source files, reporting ok=false (no error) if no
// file in that band covers the point.
func (r *Reader) readElevationFromBand(band geo.Band, lon, lat float64) (int16, bool, error) {
	table, ok := r.tables[band]
	if !ok {
		return 0, false, nil
	}

	degreeSize := band.DegreeSize()
	tlLon, tlLat := geo.FindTopLeftCorner(lon, lat, degreeSize)
	path, ok := table.Available(tlLon, tlLat)
	if !ok {
		return 0, false, nil
	}

	x, y := geo.FindXYInSourceFile(tlLon, tlLat, lon, lat, degreeSize, band.PixelsPerSide())
	v, err := r.files.readInt16BE(path, x, y, band.PixelsPerSide())
	if err != nil {
		return 0, false, err
	}
	return clampVoid(v), true, nil
}

// ReadElevationBlock reads the 9x9 interior elevation grid for the
// tile whose top-left corner is (tlLon, tlLat) with the given
// per-side degree size, at lod. When the band file containing the
// tile is present, all 81 samples (including the east and south edge)
// are read from that one file; otherwise each sample goes through
// elevationAt.
func (r *Reader) ReadElevationBlock(tlLon, tlLat, degreeSize float64, lod int) (block [9][9]int16, err error) {
	band := ElevationBandForLOD(lod)
	fileLon, fileLat := geo.FindTopLeftCorner(tlLon, tlLat, band.DegreeSize())
	path, inFile := "", false
	if table, ok := r.tables[band]; ok {
		path, inFile = table.Available(fileLon, fileLat)
	}

	for j := 0; j < 9; j++ {
		lat := tlLat - (float64(j)/8.0)*degreeSize
		for i := 0; i < 9; i++ {
			lon := tlLon + (float64(i)/8.0)*degreeSize
			var v int16
			if inFile {
				x, y := geo.FindXYInSourceFile(fileLon, fileLat, lon, lat, band.DegreeSize(), band.PixelsPerSide())
				v, err = r.files.readInt16BE(path, x, y, band.PixelsPerSide())
				v = clampVoid(v)
			} else {
				v, err = r.elevationAt(lon, lat, lod)
			}
			if err != nil {
				return block, err
			}
			block[j][i] = v
		}
	}
	return block, nil
}

// Corner identifies one of the four ghost corner points surrounding a
// tile's 9x9 interior grid.
type Corner int

const (
	CornerNW Corner = iota
	CornerNE
	CornerSW
	CornerSE
)

// ReadGhostCorner reads the single elevation sample one grid cell
// (1/8 of the tile's degree size) outside the named corner of the
// tile's interior grid.
func (r *Reader) ReadGhostCorner(tlLon, tlLat, degreeSize float64, lod int, c Corner) (int16, error) {
	eighth := degreeSize / 8.0
	var lon, lat float64
	switch c {
	case CornerNW:
		lon, lat = tlLon-eighth, tlLat+eighth
	case CornerNE:
		lon, lat = tlLon+degreeSize+eighth, tlLat+eighth
	case CornerSW:
		lon, lat = tlLon-eighth, tlLat-degreeSize-eighth
	case CornerSE:
		lon, lat = tlLon+degreeSize+eighth, tlLat-degreeSize-eighth
	}
	return r.elevationAt(lon, lat, lod)
}

// Direction identifies one of the four ghost edges surrounding a
// tile's 9x9 interior grid.
type Direction int

const (
	DirectionN Direction = iota
	DirectionE
	DirectionS
	DirectionW
)

// ReadGhostEdge reads the 9 elevation samples one grid cell outside
// the named edge of the tile's interior grid, running parallel to
// that edge in the same order as the interior grid's own index.
func (r *Reader) ReadGhostEdge(tlLon, tlLat, degreeSize float64, lod int, d Direction) (edge [9]int16, err error) {
	eighth := degreeSize / 8.0

	for i := 0; i < 9; i++ {
		frac := float64(i) / 8.0
		var lon, lat float64
		switch d {
		case DirectionN:
			lon = tlLon + frac*degreeSize
			lat = tlLat + eighth
		case DirectionS:
			lon = tlLon + frac*degreeSize
			lat = tlLat - degreeSize - eighth
		case DirectionW:
			lon = tlLon - eighth
			lat = tlLat - frac*degreeSize
		case DirectionE:
			lon = tlLon + degreeSize + eighth
			lat = tlLat - frac*degreeSize
		}

		v, err := r.elevationAt(lon, lat, lod)
		if err != nil {
			return edge, err
		}
		edge[i] = v
	}
	return edge, nil
}
