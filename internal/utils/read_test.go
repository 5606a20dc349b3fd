package utils

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randBytes(n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(int64(n))).Read(b)
	return b
}

func TestReadAll(t *testing.T) {
	for _, n := range []int{0, 1, ReadBatchSize - 1, ReadBatchSize, ReadBatchSize + 1, 3*ReadBatchSize + 17} {
		in := randBytes(n)

		out, err := ReadAll(bytes.NewReader(in))
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Equal(t, n, len(out))
		assert.Equal(t, len(out), cap(out), "tail must be trimmed")
		assert.True(t, bytes.Equal(in, out))
	}
}

func TestReadAllShortReads(t *testing.T) {
	in := randBytes(2*ReadBatchSize + 5)

	out, err := ReadAll(iotest.OneByteReader(bytes.NewReader(in)))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(in, out))

	out, err = ReadAll(iotest.HalfReader(bytes.NewReader(in)))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(in, out))
}

func TestReadAllDataAndEOF(t *testing.T) {
	out, err := ReadAll(iotest.DataErrReader(bytes.NewReader([]byte("Man"))))
	require.NoError(t, err)
	assert.Equal(t, "Man", string(out))
}

func TestReadAllError(t *testing.T) {
	errBroken := errors.New("broken")

	_, err := ReadAll(iotest.ErrReader(errBroken))
	assert.ErrorIs(t, err, errBroken)

	_, err = ReadAll(iotest.TimeoutReader(bytes.NewReader(randBytes(10))))
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}
