//go:build !linux && !darwin

package geo

import "os"

// fileSize is the portable fallback for platforms without the
// golang.org/x/sys/unix fast path.
func fileSize(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.Size(), true
}
