package tile

import "github.com/avatar29a/terraincore/internal/earthmath"

// dx, dy offsets for the 8 compass directions around a grid point, in
// the exact order the original vertex normal computation pairs them.
var normalDirs = [8][2]int{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

// computeNormals fills every grid point's Normal by summing the
// normalized cross products of consecutive compass-direction deltas,
// in the fixed N-NE, NE-E, E-SE, SE-S, S-SW, SW-W, W-NW, NW-N pairing
// order, each taken as NormalFrom(second, first) so the result points
// away from the Earth's centre. The operand order is load-bearing:
// swapping operands flips the winding and the resulting normal
// direction.
func computeNormals(t *Tile, g ghostVectors) {
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			center := t.Grid[y][x].Position

			var deltas [8]earthmath.Vec3
			for k, d := range normalDirs {
				deltas[k] = neighborOf(t, g, x, y, d[0], d[1]).Sub(center)
			}

			sum := earthmath.Vec3{}
			for k := 0; k < 8; k++ {
				a := deltas[k]
				b := deltas[(k+1)%8]
				sum = sum.Add(earthmath.NormalFrom(b, a))
			}

			t.Grid[y][x].Normal = sum.Normalize()
		}
	}
}
