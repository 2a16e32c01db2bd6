package dataset

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"
)

// fileStore keeps a small pool of open *os.File handles keyed by
// path, so repeated ghost-vertex reads against the same source file
// (common when adjacent tiles share a band file) do not reopen it
// every call. Reads use ReadAt, which is safe for concurrent callers
// sharing one handle.
type fileStore struct {
	mu    sync.Mutex
	files map[string]*os.File
}

func newFileStore() *fileStore {
	return &fileStore{files: make(map[string]*os.File)}
}

func (s *fileStore) open(path string) (*os.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.files[path]; ok {
		return f, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s.files[path] = f
	return f, nil
}

func (s *fileStore) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		f.Close()
	}
	s.files = make(map[string]*os.File)
}

// readInt16BE reads a single big-endian int16 sample at pixel (px,py)
// within a pixelsPerSide-square raster file.
func (s *fileStore) readInt16BE(path string, px, py, pixelsPerSide int) (int16, error) {
	f, err := s.open(path)
	if err != nil {
		return 0, fmt.Errorf("dataset: opening %s: %w", path, err)
	}

	offset := (int64(py)*int64(pixelsPerSide) + int64(px)) * 2
	var buf [2]byte
	if _, err := f.ReadAt(buf[:], offset); err != nil {
		return 0, fmt.Errorf("dataset: reading %s at offset %d: %w", path, offset, err)
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

// readRGB reads a single 3-byte RGB pixel at (px,py) within a
// pixelsPerSide-square raw texture file.
func (s *fileStore) readRGB(path string, px, py, pixelsPerSide int) ([3]byte, error) {
	f, err := s.open(path)
	if err != nil {
		return [3]byte{}, fmt.Errorf("dataset: opening %s: %w", path, err)
	}

	offset := (int64(py)*int64(pixelsPerSide) + int64(px)) * 3
	var buf [3]byte
	if _, err := f.ReadAt(buf[:], offset); err != nil {
		return [3]byte{}, fmt.Errorf("dataset: reading %s at offset %d: %w", path, offset, err)
	}
	return buf, nil
}
