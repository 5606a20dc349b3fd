package utils

import (
	"errors"
	"io"
)

// ReadBatchSize is the number of bytes the buffer grows by per read.
const ReadBatchSize = 0x1000

// ReadAll drains r into a single buffer, growing it ReadBatchSize bytes at
// a time. The returned slice is trimmed to exactly the number of bytes read.
//
// Empty input yields an empty, non-nil slice.
func ReadAll(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, ReadBatchSize)
	for {
		if cap(buf)-len(buf) < ReadBatchSize {
			// capacity grows geometrically, each read still sees one batch
			buf = append(buf, make([]byte, ReadBatchSize)...)[:len(buf)]
		}

		n, err := r.Read(buf[len(buf) : len(buf)+ReadBatchSize])
		buf = buf[:len(buf)+n]
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf[:len(buf):len(buf)], nil
			}
			return buf, err
		}
	}
}
