package b64

import (
	"encoding/base64"
	"errors"
)

var (
	// ErrInvalidLength is returned when base64 text is not a whole number
	// of 4-character groups.
	ErrInvalidLength = errors.New("b64: input length is not a multiple of 4")

	// ErrShortBuffer is returned by Decode when dst cannot hold the result.
	ErrShortBuffer = errors.New("b64: destination buffer too short")

	// ErrSizeMismatch is returned when a transform wrote a different number
	// of bytes than its size function predicted.
	ErrSizeMismatch = errors.New("b64: output size does not match prediction")
)

// CorruptInputError reports the offset of an illegal byte or misplaced
// padding character in base64 text.
type CorruptInputError = base64.CorruptInputError
