package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Empty(t *testing.T) {
	codec := Vector(U64())

	buf := make([]byte, codec.SpanOf(nil))
	n, err := codec.Encode(nil, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)

	decoded, n, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Empty(t, decoded)
}

func TestVector_OrderPreserved(t *testing.T) {
	codec := Vector(U64())
	values := []uint64{3, 1, 2}

	buf := make([]byte, codec.SpanOf(values))
	n, err := codec.Encode(values, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4+3*8, n)

	decoded, n, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4+3*8, n)
	assert.Equal(t, values, decoded)
}

func TestVector_GetSpan(t *testing.T) {
	codec := Vector(U64())
	values := []uint64{9, 8, 7}

	buf := make([]byte, codec.SpanOf(values))
	_, err := codec.Encode(values, buf, 0)
	require.NoError(t, err)

	span, err := codec.GetSpan(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4+3*8, span)
}

func TestVector_VariableSpanElements(t *testing.T) {
	codec := Vector(String())
	values := []string{"a", "bb", ""}

	buf := make([]byte, codec.SpanOf(values))
	n, err := codec.Encode(values, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4+(4+1)+(4+2)+4, n)

	decoded, _, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)

	span, err := codec.GetSpan(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, n, span)
}

func TestVector_CountExceedsBuffer(t *testing.T) {
	// Count claims more fixed-span elements than the buffer holds.
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 1, 2, 3}
	_, _, err := Vector(U64()).Decode(buf, 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)

	_, _, err = Vector(U64()).Decode([]byte{1, 2}, 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}
