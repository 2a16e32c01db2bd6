package geo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AvailabilityTable is a dense index of which grid cells of a given
// band have a backing source file on disk, keyed by availability
// index (ToAvailabilityIndex at the band's own degree size).
type AvailabilityTable struct {
	Band      Band
	Dir       string
	available map[int]string // index -> resolved file path
}

// Available reports whether a source file exists for the grid cell
// whose top-left corner is (tlLon, tlLat).
func (t *AvailabilityTable) Available(tlLon, tlLat float64) (path string, ok bool) {
	index := ToAvailabilityIndex(tlLon, tlLat, t.Band.DegreeSize())
	path, ok = t.available[index]
	return path, ok
}

// AvailableAtIndex reports availability directly by availability
// index, avoiding a redundant coordinate conversion when the caller
// already has the index.
func (t *AvailabilityTable) AvailableAtIndex(index int) (path string, ok bool) {
	path, ok = t.available[index]
	return path, ok
}

// Count returns the number of distinct available source files.
func (t *AvailabilityTable) Count() int {
	return len(t.available)
}

// ScanAvailability walks dir non-recursively, accepting only regular
// files whose size exactly matches band.FileSize() and whose
// extension matches band.Extension(), and whose name decodes under
// the band's naming convention (SRTM-native for ElevationSRTM,
// composite-pyramid otherwise). Files that fail to decode are
// skipped, not treated as a scan error: a foreign file coexisting in
// the dataset directory is expected, not exceptional.
func ScanAvailability(dir string, band Band) (*AvailabilityTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("geo: scanning %s: %w", dir, err)
	}

	table := &AvailabilityTable{
		Band:      band,
		Dir:       dir,
		available: make(map[int]string),
	}

	wantExt := band.Extension()
	wantSize := band.FileSize()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), wantExt) {
			continue
		}

		full := filepath.Join(dir, name)
		size, ok := fileSize(full)
		if !ok || size != wantSize {
			continue
		}

		var lon, lat float64
		if band == ElevationSRTM {
			lon, lat, err = DecodeSRTMFilename(name)
		} else {
			lon, lat, err = DecodeCompositeFilename(name)
		}
		if err != nil {
			continue
		}

		index := ToAvailabilityIndex(lon, lat, band.DegreeSize())
		table.available[index] = full
	}

	return table, nil
}
