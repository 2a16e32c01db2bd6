//go:build linux || darwin

package geo

import "golang.org/x/sys/unix"

// fileSize performs a single stat(2) call to answer both "does this
// path exist" and "what is its size", avoiding the separate
// existence-check + size-check round trips a naive os.Stat scan would
// otherwise pay per candidate file during a large availability scan.
func fileSize(path string) (int64, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, false
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return 0, false
	}
	return st.Size, true
}
