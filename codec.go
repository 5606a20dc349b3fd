package b64

import (
	"bytes"
	"encoding/base64"
)

// Padding is appended to the final group when the input length is not a
// multiple of 3.
const Padding byte = '='

// EncodedLen returns the number of base64 characters, padding included,
// produced by encoding n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the exact number of bytes produced by decoding src.
//
// The trailing padding of src is inspected, so the result is exact rather
// than an upper bound. An error is returned if len(src) is not a multiple
// of 4.
func DecodedLen(src []byte) (int, error) {
	if len(src)%4 != 0 {
		return 0, ErrInvalidLength
	}
	n := len(src) / 4 * 3
	if len(src) == 0 {
		return 0, nil
	}
	if src[len(src)-1] == Padding {
		n--
		if src[len(src)-2] == Padding {
			n--
		}
	}
	return n, nil
}

// Encode writes the base64 encoding of src into dst and returns the number
// of bytes written, which is always EncodedLen(len(src)).
//
// dst must be at least EncodedLen(len(src)) bytes long, Encode panics
// otherwise.
func Encode(dst, src []byte) int {
	n := EncodedLen(len(src))
	if n == 0 {
		return 0
	}
	_ = dst[n-1]
	base64.StdEncoding.Encode(dst, src)
	return n
}

// Decode writes the bytes represented by the base64 text src into dst and
// returns the number of bytes written.
//
// dst must be at least as long as the value reported by DecodedLen(src).
// Line breaks are not skipped: every byte of src belongs to a 4-character
// group. On error, dst may hold a partially decoded prefix.
func Decode(dst, src []byte) (int, error) {
	size, err := DecodedLen(src)
	if err != nil {
		return 0, err
	}
	if len(dst) < size {
		return 0, ErrShortBuffer
	}
	if i := bytes.IndexAny(src, "\r\n"); i >= 0 {
		return 0, CorruptInputError(i)
	}

	return base64.StdEncoding.Decode(dst[:size], src)
}
