// Package poi loads an optional flat text file of named points of
// interest (longitude, latitude, label), supplementing the core with
// fly-to targets an animator can offer a host application. This is an
// enrichment over the distilled engine's core tile/cache/quadtree
// scope, not a required dependency of it.
package poi

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrOutOfRange is returned when a loaded entry's coordinates fall
// outside [-180,180] longitude or [-90,90] latitude.
var ErrOutOfRange = errors.New("poi: coordinates out of range")

// Point is a single named point of interest.
type Point struct {
	Name     string
	Lon, Lat float64
}

// Load reads a points-of-interest file: one entry per line, formatted
// as "lon,lat,name" with blank lines and lines starting with '#'
// ignored.
func Load(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("poi: opening %s: %w", path, err)
	}
	defer f.Close()

	var points []Point
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, ",", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("poi: %s:%d: expected \"lon,lat,name\", got %q", path, lineNo, line)
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("poi: %s:%d: invalid longitude: %w", path, lineNo, err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("poi: %s:%d: invalid latitude: %w", path, lineNo, err)
		}
		if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("poi: %s:%d: %w (lon=%v, lat=%v)", path, lineNo, ErrOutOfRange, lon, lat)
		}

		points = append(points, Point{
			Name: strings.TrimSpace(fields[2]),
			Lon:  lon,
			Lat:  lat,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("poi: reading %s: %w", path, err)
	}

	return points, nil
}
