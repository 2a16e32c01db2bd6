// Package geo implements the availability index: converting between
// geographic coordinates and the dataset's on-disk naming/sharding
// conventions, and scanning a dataset directory into a dense
// availability table.
package geo

import "math"

// NormalizeLongitude folds lon into [0, 360).
func NormalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360.0)
	if lon < 0 {
		lon += 360.0
	}
	return lon
}

// FindTopLeftCorner snaps (lon, lat) to the top-left corner of the
// degreeSize-sided grid cell containing it. Latitude is handled on a
// top-down axis (90-lat) so that both axes floor the same way before
// being converted back.
func FindTopLeftCorner(lon, lat, degreeSize float64) (tlLon, tlLat float64) {
	lon = NormalizeLongitude(lon)
	latY := 90.0 - lat

	lonX := math.Floor(lon/degreeSize) * degreeSize
	latY = math.Floor(latY/degreeSize) * degreeSize

	tlLon = lonX
	tlLat = 90.0 - latY
	return tlLon, tlLat
}

// ToAvailabilityIndex returns the row-major index of the
// degreeSize-sided grid cell whose top-left corner is (tlLon, tlLat),
// over a (360/degreeSize) x (180/degreeSize) grid.
func ToAvailabilityIndex(tlLon, tlLat, degreeSize float64) int {
	lon := NormalizeLongitude(tlLon)
	latY := 90.0 - tlLat

	lonX := math.Round(lon / degreeSize)
	latRow := math.Round(latY / degreeSize)
	width := math.Round(360.0 / degreeSize)

	return int(latRow*width + lonX)
}

// FromAvailabilityIndex is the inverse of ToAvailabilityIndex.
func FromAvailabilityIndex(index int, degreeSize float64) (tlLon, tlLat float64) {
	width := int(math.Round(360.0 / degreeSize))
	latRow := index / width
	lonX := index % width

	tlLon = float64(lonX) * degreeSize
	tlLat = 90.0 - float64(latRow)*degreeSize
	return tlLon, tlLat
}

// FindXYInSourceFile returns the pixel coordinates of (lon, lat)
// within a pixelsPerSide-square source file whose top-left corner is
// (tlLon, tlLat) and which covers degreeSize degrees per side. Uses
// last-pixel-inclusive indexing: the bottom/right edge pixel is
// pixelsPerSide-1, not pixelsPerSide.
func FindXYInSourceFile(tlLon, tlLat, lon, lat, degreeSize float64, pixelsPerSide int) (x, y int) {
	deltaLon := lon - tlLon
	deltaLat := tlLat - lat

	x = int((deltaLon / degreeSize) * float64(pixelsPerSide-1))
	y = int((deltaLat / degreeSize) * float64(pixelsPerSide-1))
	return x, y
}
