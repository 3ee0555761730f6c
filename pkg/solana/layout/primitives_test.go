package layout

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintCodecs_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	n, err := U16().Encode(0xBEEF, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xEF, 0xBE}, buf[:2])

	v16, n, err := U16().Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint16(0xBEEF), v16)

	n, err = U64().Encode(0x1122334455667788, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, buf)

	v64, _, err := U64().Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1122334455667788), v64)
}

func TestIntCodecs_TwosComplement(t *testing.T) {
	buf := make([]byte, 8)

	n, err := I64().Encode(-1, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 8), buf)

	signed, _, err := I64().Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), signed)

	unsigned, _, err := U64().Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), unsigned)

	n, err = I16().Encode(-2, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xFE, 0xFF}, buf[:2])

	v16, _, err := I16().Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, int16(-2), v16)
}

func TestIntCodecs_BufferTooShort(t *testing.T) {
	_, _, err := U32().Decode([]byte{1, 2, 3}, 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)

	_, _, err = U32().Decode(make([]byte, 8), 6)
	assert.ErrorIs(t, err, ErrBufferTooShort)

	_, err = U64().Encode(1, make([]byte, 4), 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestBool_Domain(t *testing.T) {
	v, n, err := Bool().Decode([]byte{0x00}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, v)

	v, _, err = Bool().Decode([]byte{0x01}, 0)
	require.NoError(t, err)
	assert.True(t, v)

	for _, b := range []byte{0x02, 0x7F, 0xFF} {
		_, _, err = Bool().Decode([]byte{b}, 0)
		assert.ErrorIs(t, err, ErrInvalidBoolean)
	}

	buf := make([]byte, 1)
	_, err = Bool().Encode(true, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(1), buf[0])
	_, err = Bool().Encode(false, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0), buf[0])
}

func TestBlob_SizeMismatch(t *testing.T) {
	codec := Blob(4)

	buf := make([]byte, 4)
	_, err := codec.Encode([]byte{1, 2, 3}, buf, 0)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, err = codec.Encode([]byte{1, 2, 3, 4, 5}, buf, 0)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	n, err := codec.Encode([]byte{1, 2, 3, 4}, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	v, n, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, v)
}

func TestPublicKey_RoundTrip(t *testing.T) {
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := range key {
		key[i] = byte(i)
	}

	buf := make([]byte, ed25519.PublicKeySize)
	n, err := PublicKey().Encode(key, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, ed25519.PublicKeySize, n)

	decoded, _, err := PublicKey().Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)

	_, err = PublicKey().Encode(key[:16], buf, 0)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestString_RoundTrip(t *testing.T) {
	codec := String()

	v := "stake pool token"
	buf := make([]byte, codec.SpanOf(v))
	n, err := codec.Encode(v, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4+len(v), n)

	decoded, n, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4+len(v), n)
	assert.Equal(t, v, decoded)

	span, err := codec.GetSpan(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 4+len(v), span)

	// Truncated payload.
	_, _, err = codec.Decode(buf[:6], 0)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}
