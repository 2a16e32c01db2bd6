// Package dataset implements the source reader: resolving a
// (longitude, latitude, LOD) request to the correct on-disk
// elevation/texture band and file, and reading interior and ghost
// samples out of it.
package dataset

import "math"

// LODDegreeSize returns the degree size of a tile at the given LOD:
// 60 degrees at LOD 0, halving each level up to LOD 13.
func LODDegreeSize(lod int) float64 {
	return 60.0 / math.Pow(2, float64(lod))
}

// elevation band boundaries, inclusive, by max LOD within the band.
const (
	elevBand0Max = 3
	elevBand1Max = 8
	elevBand2Max = 13
)

// texture band boundaries, inclusive, by max LOD within the band.
const (
	texBand0Max = 2
	texBand1Max = 5
	texBand2Max = 8
)

// ElevationSkip returns the source-pixel stride used when sampling
// the elevation band covering lod: 2^(bandMaxLOD-lod) within each of
// the three elevation bands.
func ElevationSkip(lod int) int {
	switch {
	case lod <= elevBand0Max:
		return pow2(elevBand0Max - lod)
	case lod <= elevBand1Max:
		return pow2(elevBand1Max - lod)
	default:
		return pow2(elevBand2Max - lod)
	}
}

// TextureSkip returns the source-pixel stride for the texture band
// covering lod. LODs 9 and 10 share the L09-L10 band (strides 2 and
// 1). Beyond LOD 10 there is no higher-resolution texture source, so
// LODs 11-13 define explicit upsampling factors, expressed as negative
// strides (magnitude = upsample factor).
func TextureSkip(lod int) int {
	switch {
	case lod <= texBand0Max:
		return pow2(texBand0Max - lod)
	case lod <= texBand1Max:
		return pow2(texBand1Max - lod)
	case lod <= texBand2Max:
		return pow2(texBand2Max - lod)
	case lod == 9:
		return 2
	case lod == 10:
		return 1
	case lod == 11:
		return -2
	case lod == 12:
		return -4
	default: // 13
		return -8
	}
}

func pow2(n int) int {
	if n <= 0 {
		return 1
	}
	return 1 << uint(n)
}
