package geo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Filename errors.
var (
	ErrInvalidFilename = errors.New("geo: filename does not match expected pattern")
)

var fixedWidthPrinter = message.NewPrinter(language.Und)

// EncodeSRTMFilename encodes (lon, lat) as the SRTM-native
// "[NS]LL[EW]LLL.hgt" pattern, integer degrees, lower-left corner.
// lat is expected to be the conventional top-left corner latitude;
// the encoder subtracts 1.0 to recover the lower-left corner the
// dataset actually names files after.
func EncodeSRTMFilename(lon, lat float64) string {
	lat = lat - 1.0
	lon = NormalizeLongitude(lon)

	ns := "N"
	latAbs := lat
	if lat < 0 {
		ns = "S"
		latAbs = -lat
	}

	ew := "E"
	lonAbs := lon
	if lon >= 180.0 {
		ew = "W"
		lonAbs = 360.0 - lon
	}

	return fmt.Sprintf("%s%02d%s%03d.hgt", ns, int(latAbs), ew, int(lonAbs))
}

// DecodeSRTMFilename parses the SRTM-native naming pattern, returning
// the top-left corner (lat+1.0 compensation applied, matching the
// encoder's -1.0).
func DecodeSRTMFilename(name string) (lon, lat float64, err error) {
	base := strings.TrimSuffix(name, ".hgt")
	if len(base) != 7 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}

	nsLat := base[0:3]
	ewLon := base[3:7]

	ns := nsLat[0]
	latVal, err := strconv.Atoi(nsLat[1:3])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidFilename, name, err)
	}

	ew := ewLon[0]
	lonVal, err := strconv.Atoi(ewLon[1:4])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidFilename, name, err)
	}

	lat = float64(latVal)
	if ns == 'S' || ns == 's' {
		lat = -lat
	} else if ns != 'N' && ns != 'n' {
		return 0, 0, fmt.Errorf("%w: %q: bad hemisphere %q", ErrInvalidFilename, name, string(ns))
	}

	lon = float64(lonVal)
	if ew == 'W' || ew == 'w' {
		lon = 360.0 - lon
	} else if ew != 'E' && ew != 'e' {
		return 0, 0, fmt.Errorf("%w: %q: bad hemisphere %q", ErrInvalidFilename, name, string(ew))
	}

	// lower-left -> top-left compensation (the dataset's own mistake,
	// preserved deliberately; see SPEC_FULL.md §4.1).
	lat += 1.0

	return lon, lat, nil
}

// EncodeCompositeFilename encodes (lon, lat) as the composite-pyramid
// "[NS]LL.LL,[EW]LLL.LL.hgt" pattern: 2-decimal degrees, top-left
// corner encoded directly.
func EncodeCompositeFilename(lon, lat float64) string {
	lon = NormalizeLongitude(lon)

	ns := "N"
	latAbs := lat
	if lat < 0 {
		ns = "S"
		latAbs = -lat
	}

	ew := "E"
	lonAbs := lon
	if lon >= 180.0 {
		ew = "W"
		lonAbs = 360.0 - lon
	}

	latStr := fixedWidthPrinter.Sprintf("%v", number.Decimal(latAbs,
		number.MinIntegerDigits(2), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	lonStr := fixedWidthPrinter.Sprintf("%v", number.Decimal(lonAbs,
		number.MinIntegerDigits(3), number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	return fmt.Sprintf("%s%s,%s%s.hgt", ns, latStr, ew, lonStr)
}

// DecodeCompositeFilename parses the composite-pyramid naming
// pattern, returning the encoded top-left corner. The pattern is
// shared by both elevation (.hgt) and texture (.raw) composite
// bands, so the trailing extension is stripped generically rather
// than assumed to be .hgt.
func DecodeCompositeFilename(name string) (lon, lat float64, err error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.SplitN(base, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}

	latPart, lonPart := parts[0], parts[1]
	if len(latPart) < 2 || len(lonPart) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}

	ns := latPart[0]
	latVal, err := strconv.ParseFloat(latPart[1:], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidFilename, name, err)
	}

	ew := lonPart[0]
	lonVal, err := strconv.ParseFloat(lonPart[1:], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidFilename, name, err)
	}

	lat = latVal
	if ns == 'S' || ns == 's' {
		lat = -lat
	} else if ns != 'N' && ns != 'n' {
		return 0, 0, fmt.Errorf("%w: %q: bad hemisphere %q", ErrInvalidFilename, name, string(ns))
	}

	lon = lonVal
	if ew == 'W' || ew == 'w' {
		lon = 360.0 - lon
	} else if ew != 'E' && ew != 'e' {
		return 0, 0, fmt.Errorf("%w: %q: bad hemisphere %q", ErrInvalidFilename, name, string(ew))
	}

	return lon, lat, nil
}
