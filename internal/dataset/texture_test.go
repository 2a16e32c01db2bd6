package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avatar29a/terraincore/internal/geo"
)

func writeRAW(t *testing.T, dir string, lon, lat float64, pixelsPerSide int, color [3]byte) {
	t.Helper()

	name := strings.TrimSuffix(geo.EncodeCompositeFilename(lon, lat), ".hgt") + ".raw"
	buf := make([]byte, pixelsPerSide*pixelsPerSide*3)
	for i := 0; i+2 < len(buf); i += 3 {
		buf[i], buf[i+1], buf[i+2] = color[0], color[1], color[2]
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// A LOD-0 tile has a 60-degree footprint over a 45-degree texture
// grid, so it always straddles into its east, south and southeast
// neighbors. Each quadrant of the source tiles below is filled with
// its own solid color so the output buffer's quadrant boundaries can
// be checked directly against ReadTexture's stitch.
func TestReadTextureStitchesFourQuadrants(t *testing.T) {
	dir := t.TempDir()
	pixelsPerSide := geo.TextureL00L02.PixelsPerSide()

	base := [3]byte{10, 20, 30}
	east := [3]byte{40, 50, 60}
	south := [3]byte{70, 80, 90}
	southeast := [3]byte{100, 110, 120}

	writeRAW(t, dir, 0, 90, pixelsPerSide, base)
	writeRAW(t, dir, 45, 90, pixelsPerSide, east)
	writeRAW(t, dir, 0, 45, pixelsPerSide, south)
	writeRAW(t, dir, 45, 45, pixelsPerSide, southeast)

	r, err := NewReader(map[geo.Band]string{geo.TextureL00L02: dir})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	buf, err := r.ReadTexture(0, 90, 60, 0)
	if err != nil {
		t.Fatalf("ReadTexture: %v", err)
	}

	pixelAt := func(x, y int) [3]byte {
		idx := (y*TextureTileSize + x) * 3
		return [3]byte{buf[idx], buf[idx+1], buf[idx+2]}
	}

	cases := []struct {
		x, y int
		want [3]byte
		name string
	}{
		{0, 0, base, "base NW corner"},
		{23, 23, base, "base last pixel"},
		{24, 0, east, "east first pixel"},
		{31, 23, east, "east SE corner"},
		{0, 24, south, "south first pixel"},
		{23, 31, south, "south SE corner"},
		{24, 24, southeast, "southeast NW corner"},
		{31, 31, southeast, "southeast last pixel"},
	}
	for _, c := range cases {
		if got := pixelAt(c.x, c.y); got != c.want {
			t.Errorf("%s: pixel(%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

// When only the southeast quadrant is missing, its rectangle falls
// back to EmptyColor while the other three quadrants still come from
// their own source tiles.
func TestReadTextureMissingQuadrantFallsBackToEmptyColor(t *testing.T) {
	dir := t.TempDir()
	pixelsPerSide := geo.TextureL00L02.PixelsPerSide()

	base := [3]byte{10, 20, 30}
	east := [3]byte{40, 50, 60}
	south := [3]byte{70, 80, 90}

	writeRAW(t, dir, 0, 90, pixelsPerSide, base)
	writeRAW(t, dir, 45, 90, pixelsPerSide, east)
	writeRAW(t, dir, 0, 45, pixelsPerSide, south)

	r, err := NewReader(map[geo.Band]string{geo.TextureL00L02: dir})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	buf, err := r.ReadTexture(0, 90, 60, 0)
	if err != nil {
		t.Fatalf("ReadTexture: %v", err)
	}

	idx := (31*TextureTileSize + 31) * 3
	got := [3]byte{buf[idx], buf[idx+1], buf[idx+2]}
	if got != EmptyColor {
		t.Errorf("southeast pixel = %v, want EmptyColor %v", got, EmptyColor)
	}
}
