package dataset

import (
	"math"

	"github.com/avatar29a/terraincore/internal/geo"
)

// TextureTileSize is the fixed output dimension, in pixels per side,
// of a tile's texture buffer regardless of LOD.
const TextureTileSize = 32

// EmptyColor fills any texture pixel whose source tile is absent.
var EmptyColor = [3]byte{0xEE, 0xFF, 0xEE}

// textureFootprintDegrees is the fixed degree size of a single
// on-disk texture source tile, independent of its resolution band.
const textureFootprintDegrees = 45.0

// ReadTexture reads a TextureTileSize x TextureTileSize x 3 RGB
// buffer (row-major, 3 bytes per pixel) covering the tile whose
// top-left corner is (tlLon, tlLat) with the given degree size, at
// lod.
//
// A tile's footprint can straddle up to four of the fixed 45-degree
// source tiles (guaranteed for every LOD-0 tile, whose 60-degree
// footprint exceeds the 45-degree texture grid): the base tile
// covering the top-left corner, its east neighbor, its south
// neighbor, and its southeast neighbor. Each quadrant of the output
// buffer is copied from whichever of those four source tiles covers
// it; a quadrant whose source tile is absent is filled with
// EmptyColor, independently of the other three. This mirrors
// CCacheManager::buildTextureFromRawFiles's four-tile stitch.
func (r *Reader) ReadTexture(tlLon, tlLat, degreeSize float64, lod int) ([]byte, error) {
	out := make([]byte, TextureTileSize*TextureTileSize*3)

	band := TextureBandForLOD(lod)
	table, ok := r.tables[band]
	if !ok {
		fillEmpty(out)
		return out, nil
	}

	pixelsPerSide := band.PixelsPerSide()
	skip := TextureSkip(lod)
	mult := float64(skip)
	if mult < 0 {
		mult = 1.0
	}

	texTlLon, texTlLat := geo.FindTopLeftCorner(tlLon, tlLat, textureFootprintDegrees)
	deltaLon := math.Abs(tlLon - texTlLon)
	deltaLat := math.Abs(tlLat - texTlLat)
	pixOffsetLon := int(deltaLon/textureFootprintDegrees*float64(pixelsPerSide) + 0.5)
	pixOffsetLat := int(deltaLat/textureFootprintDegrees*float64(pixelsPerSide) + 0.5)

	// Quadrant order: [0]=base (NW, contains the tile's top-left
	// corner), [1]=east, [2]=south, [3]=southeast.
	var quadrantPaths [4]string
	var quadrantOK [4]bool
	anyAvailable := false
	for qy := 0; qy < 2; qy++ {
		for qx := 0; qx < 2; qx++ {
			lon := texTlLon + float64(qx)*textureFootprintDegrees
			lat := texTlLat - float64(qy)*textureFootprintDegrees
			path, ok := table.Available(lon, lat)
			idx := qy*2 + qx
			quadrantPaths[idx] = path
			quadrantOK[idx] = ok
			if ok {
				anyAvailable = true
			}
		}
	}

	if !anyAvailable {
		fillEmpty(out)
		return out, nil
	}

	pixInBaseTileLon := pixelsPerSide - pixOffsetLon
	pixInBaseTileLat := pixelsPerSide - pixOffsetLat
	if skip >= 1 {
		pixInBaseTileLon /= skip
		pixInBaseTileLat /= skip
	}

	baseStopLon, neighborStopLon := TextureTileSize, 0
	if pixInBaseTileLon < TextureTileSize {
		baseStopLon = pixInBaseTileLon
		neighborStopLon = TextureTileSize - pixInBaseTileLon
	}
	baseStopLat, neighborStopLat := TextureTileSize, 0
	if pixInBaseTileLat < TextureTileSize {
		baseStopLat = pixInBaseTileLat
		neighborStopLat = TextureTileSize - pixInBaseTileLat
	}

	if err := r.copyTextureQuadrant(out, quadrantPaths[0], quadrantOK[0], pixelsPerSide, pixOffsetLon, pixOffsetLat, mult, 0, 0, baseStopLon, baseStopLat); err != nil {
		return nil, err
	}
	if err := r.copyTextureQuadrant(out, quadrantPaths[1], quadrantOK[1], pixelsPerSide, 0, pixOffsetLat, mult, baseStopLon, 0, neighborStopLon, baseStopLat); err != nil {
		return nil, err
	}
	if err := r.copyTextureQuadrant(out, quadrantPaths[2], quadrantOK[2], pixelsPerSide, pixOffsetLon, 0, mult, 0, baseStopLat, baseStopLon, neighborStopLat); err != nil {
		return nil, err
	}
	if err := r.copyTextureQuadrant(out, quadrantPaths[3], quadrantOK[3], pixelsPerSide, 0, 0, mult, baseStopLon, baseStopLat, neighborStopLon, neighborStopLat); err != nil {
		return nil, err
	}

	return out, nil
}

// copyTextureQuadrant fills the width x height rectangle of out
// starting at (destX, destY) from the source file at path, sampling
// from (offsetX, offsetY) with the given per-pixel stride. If ok is
// false the rectangle is filled with EmptyColor instead.
func (r *Reader) copyTextureQuadrant(out []byte, path string, ok bool, pixelsPerSide, offsetX, offsetY int, mult float64, destX, destY, width, height int) error {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := ((destY+y)*TextureTileSize + (destX + x)) * 3
			if !ok {
				out[idx] = EmptyColor[0]
				out[idx+1] = EmptyColor[1]
				out[idx+2] = EmptyColor[2]
				continue
			}

			px := clampPixel(offsetX+int(float64(x)*mult), pixelsPerSide)
			py := clampPixel(offsetY+int(float64(y)*mult), pixelsPerSide)

			rgb, err := r.files.readRGB(path, px, py, pixelsPerSide)
			if err != nil {
				return err
			}
			out[idx] = rgb[0]
			out[idx+1] = rgb[1]
			out[idx+2] = rgb[2]
		}
	}
	return nil
}

func clampPixel(p, pixelsPerSide int) int {
	if p >= pixelsPerSide {
		return pixelsPerSide - 1
	}
	if p < 0 {
		return 0
	}
	return p
}

func fillEmpty(buf []byte) {
	for i := 0; i+2 < len(buf); i += 3 {
		buf[i] = EmptyColor[0]
		buf[i+1] = EmptyColor[1]
		buf[i+2] = EmptyColor[2]
	}
}
