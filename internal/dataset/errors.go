package dataset

import "errors"

// Reader errors.
var (
	ErrUnsupportedLOD = errors.New("dataset: LOD out of supported range 0..13")
	ErrNoElevationDir = errors.New("dataset: no elevation directory configured for band")
	ErrNoTextureDir   = errors.New("dataset: no texture directory configured for band")
)

// VoidThreshold is the raw elevation value above which a sample is
// treated as an SRTM void and replaced by VoidReplacement.
const VoidThreshold = 9000

// VoidReplacement is the value substituted for any sample above
// VoidThreshold.
const VoidReplacement = 10

func clampVoid(v int16) int16 {
	if v > VoidThreshold {
		return VoidReplacement
	}
	return v
}
