package tile

// StripIndexNW, StripIndexNE, StripIndexSW, StripIndexSE are the
// fixed triangle-strip index sequences for rendering one quadrant of
// the 9x9 interior grid (each quadrant covers a 5x5 block of points,
// 4x4 quads, drawn as a single strip that repeats the turning vertex
// at the end of each row, producing degenerate triangles). Index values
// are offsets into the row-major 9x9 Grid (index = y*9 + x).
var (
	StripIndexNW = [40]uint8{
		0, 9, 1, 10, 2, 11, 3, 12, 4, 13,
		13, 22, 12, 21, 11, 20, 10, 19, 9, 18,
		18, 27, 19, 28, 20, 29, 21, 30, 22, 31,
		31, 40, 30, 39, 29, 38, 28, 37, 27, 36,
	}

	StripIndexNE = [40]uint8{
		4, 13, 5, 14, 6, 15, 7, 16, 8, 17,
		17, 26, 16, 25, 15, 24, 14, 23, 13, 22,
		22, 31, 23, 32, 24, 33, 25, 34, 26, 35,
		35, 44, 34, 43, 33, 42, 32, 41, 31, 40,
	}

	StripIndexSW = [40]uint8{
		36, 45, 37, 46, 38, 47, 39, 48, 40, 49,
		49, 58, 48, 57, 47, 56, 46, 55, 45, 54,
		54, 63, 55, 64, 56, 65, 57, 66, 58, 67,
		67, 76, 66, 75, 65, 74, 64, 73, 63, 72,
	}

	StripIndexSE = [40]uint8{
		40, 49, 41, 50, 42, 51, 43, 52, 44, 53,
		53, 62, 52, 61, 51, 60, 50, 59, 49, 58,
		58, 67, 59, 68, 60, 69, 61, 70, 62, 71,
		71, 80, 70, 79, 69, 78, 68, 77, 67, 76,
	}
)
