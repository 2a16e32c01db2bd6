package tile

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/avatar29a/terraincore/internal/dataset"
	"github.com/avatar29a/terraincore/internal/geo"
)

func writeFlatHGT(t *testing.T, dir, name string, pixelsPerSide int, value int16) {
	t.Helper()
	buf := make([]byte, pixelsPerSide*pixelsPerSide*2)
	for i := 0; i < pixelsPerSide*pixelsPerSide; i++ {
		binary.BigEndian.PutUint16(buf[i*2:], uint16(value))
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFlatHGT(t, dir, geo.EncodeCompositeFilename(0, 90), 65, 200)

	r, err := dataset.NewReader(map[geo.Band]string{geo.ElevationL00L03: dir})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	a, err := Build(10, 80, 0, r)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(10, 80, 0, r)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %+v vs %+v", a.Key(), b.Key())
	}
	for j := 0; j < gridSize; j++ {
		for i := 0; i < gridSize; i++ {
			sa, sb := a.Grid[j][i], b.Grid[j][i]
			if sa.Elevation != sb.Elevation || sa.Position != sb.Position || sa.Normal != sb.Normal {
				t.Fatalf("grid[%d][%d] differs between identical builds", j, i)
			}
		}
	}
}

func TestBuildFlatTileHasUpwardNormals(t *testing.T) {
	dir := t.TempDir()
	writeFlatHGT(t, dir, geo.EncodeCompositeFilename(0, 90), 65, 0)

	r, err := dataset.NewReader(map[geo.Band]string{geo.ElevationL00L03: dir})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	tl, err := Build(10, 80, 0, r)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// A flat tile's interior normals should point roughly outward,
	// i.e. have a strongly positive component along the point's own
	// direction from the earth's center.
	for j := 2; j < gridSize-2; j++ {
		for i := 2; i < gridSize-2; i++ {
			s := tl.Grid[j][i]
			out := s.Position.Normalize()
			if s.Normal.Dot(out) < 0.9 {
				t.Errorf("grid[%d][%d] normal not outward enough: %+v vs expected direction %+v", j, i, s.Normal, out)
			}
		}
	}
}

func TestElevationColorSeaIsFlat(t *testing.T) {
	c := elevationColor(0)
	if c != seaColor {
		t.Errorf("elevationColor(0) = %v, want seaColor %v", c, seaColor)
	}
	if c != [3]float32{0.2784, 0.6431, 0.7216} {
		t.Errorf("elevationColor(0) = %v, want exact sea constant (0.2784, 0.6431, 0.7216)", c)
	}
}

func approxEqual(a, b [3]float32) bool {
	const eps = 1e-4
	for i := range a {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

func TestElevationColorKneeBoundaries(t *testing.T) {
	// Exact RGB at each knee, derived from the source cascading
	// hue/value clamp (hue=170-170*(e/1500), falling through to
	// hue=360-100*((e-1500)/1500) clamped at 260, then
	// val=240-200*((e-3000)/5000) clamped at 40, then
	// val=40+215*((e-8000)/850)), at saturation 170/255.
	cases := []struct {
		elev int16
		want [3]float32
	}{
		{1500, [3]float32{0.9412, 0.3137, 0.3137}},
		{3000, [3]float32{0.5229, 0.3137, 0.9412}},
		{8000, [3]float32{0.0871, 0.0523, 0.1569}},
	}

	for _, c := range cases {
		got := elevationColor(c.elev)
		if !approxEqual(got, c.want) {
			t.Errorf("elevationColor(%d) = %v, want %v", c.elev, got, c.want)
		}
	}
}

func TestElevationColorKneesMonotonic(t *testing.T) {
	// Hue cycles through the ramp's stages as elevation rises through
	// each knee; check the green channel decreases monotonically from
	// the 1500m plateau down to the 8000m knee (it falls from 0.3137
	// flat, then dips as value darkens toward the 8000m floor).
	atKnee1 := elevationColor(1500)
	atKnee2 := elevationColor(3000)
	atKnee3 := elevationColor(8000)

	if atKnee1[1] < atKnee3[1] {
		t.Errorf("expected green channel to fall from 1500m to 8000m: %v vs %v", atKnee1, atKnee3)
	}
	if atKnee2[2] <= atKnee3[2] {
		t.Errorf("expected blue channel to fall from 3000m to 8000m as value darkens: %v vs %v", atKnee2, atKnee3)
	}
}

func TestStripTablesCoverQuadrantRange(t *testing.T) {
	tables := map[string][40]uint8{
		"NW": StripIndexNW,
		"NE": StripIndexNE,
		"SW": StripIndexSW,
		"SE": StripIndexSE,
	}
	for name, table := range tables {
		for _, idx := range table {
			if idx > 80 {
				t.Errorf("%s strip index %d out of range for a 9x9 grid", name, idx)
			}
		}
	}
}

func TestBottomPlaneAtFixedRadius(t *testing.T) {
	bp := buildBottomPlane(0, 10, 10)

	check := func(name string, length float64) {
		if diff := length - bottomPlaneRadius; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("%s not at bottomPlaneRadius: got %v, want %v", name, length, bottomPlaneRadius)
		}
	}
	check("NW", bp.NW.Length())
	check("C", bp.C.Length())
	check("SE", bp.SE.Length())
}
