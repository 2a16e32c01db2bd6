package poi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePOIFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "points.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestLoadParsesEntriesAndSkipsCommentsAndBlanks(t *testing.T) {
	path := writePOIFile(t, "# points of interest\n\n86.925,27.988,Everest\n-73.968,40.785,Central Park\n")

	points, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Name != "Everest" || points[0].Lon != 86.925 || points[0].Lat != 27.988 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
	if points[1].Name != "Central Park" {
		t.Errorf("unexpected second point: %+v", points[1])
	}
}

func TestLoadRejectsOutOfRangeCoordinates(t *testing.T) {
	path := writePOIFile(t, "200,0,Nowhere\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for out-of-range longitude")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	path := writePOIFile(t, "not-a-valid-line\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/points.txt"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
