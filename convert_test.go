package b64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBase64(t *testing.T) {
	assert.Equal(t, "TWFu", string(ToBase64([]byte("Man"))))

	out := ToBase64(nil)
	assert.Empty(t, out)
	assert.Equal(t, 0, cap(out))
}

func TestFromBase64(t *testing.T) {
	out, err := FromBase64([]byte("TWFu"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4d, 0x61, 0x6e}, out)

	out, err = FromBase64(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = FromBase64([]byte("TWF"))
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = FromBase64([]byte("TW!u"))
	assert.ErrorAs(t, err, new(CorruptInputError))
}
