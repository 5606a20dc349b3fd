package b64

import "fmt"

// ToBase64 returns the base64 encoding of in. The output is allocated once,
// at the size predicted by EncodedLen.
func ToBase64(in []byte) []byte {
	out := make([]byte, EncodedLen(len(in)))
	if n := Encode(out, in); n != len(out) {
		// Encode always fills what EncodedLen predicts
		panic(fmt.Sprintf("b64: encoded %d bytes, predicted %d", n, len(out)))
	}
	return out
}

// FromBase64 decodes the base64 text in. The output is allocated once, at
// the size predicted by DecodedLen.
func FromBase64(in []byte) ([]byte, error) {
	size, err := DecodedLen(in)
	if err != nil {
		return nil, err
	}

	out := make([]byte, size)
	n, err := Decode(out, in)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, ErrSizeMismatch
	}
	return out, nil
}
