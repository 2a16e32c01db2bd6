package tile

import "github.com/avatar29a/terraincore/internal/dataset"

// uvScale and uvMargin keep sampled texture coordinates a hair inside
// the [0,1] texture edge, avoiding bilinear bleed from the tile's own
// border pixels.
const (
	uvScale  = 0.973
	uvMargin = 0.0135
)

// textureUV returns the texture coordinate for grid point (i, j)
// within a tile's own TextureTileSize x TextureTileSize buffer.
//
// dataset.Reader.ReadTexture builds each tile its own private buffer
// starting at this tile's top-left corner. Up to
// TextureSourceMaxLOD the buffer covers exactly the tile's footprint,
// so the i/8, j/8 fraction maps onto the whole buffer. Past
// TextureSourceMaxLOD the buffer is pixel-walked 1:1 at LOD-10
// resolution and so covers 2^(lod-10) tile widths; u/v are then
// rescaled by 1/2^(lod-10) to sample only the sub-rectangle at the
// buffer's top-left that belongs to this tile.
func textureUV(tlLon, tlLat, degreeSize float64, lod int, i, j int) (u, v float32) {
	size := 1.0
	if lod > dataset.TextureSourceMaxLOD {
		size = 1.0 / float64(int(1)<<uint(lod-dataset.TextureSourceMaxLOD))
	}
	fracU := float64(i) / 8.0
	fracV := float64(j) / 8.0
	u = float32(fracU*uvScale*size + uvMargin)
	v = float32(fracV*uvScale*size + uvMargin)
	return u, v
}
