package layout

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_RoundTrip(t *testing.T) {
	codec := Option(U64())

	buf := make([]byte, codec.SpanOf(nil))
	n, err := codec.Encode(nil, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0}, buf)

	decoded, n, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Nil(t, decoded)

	v := uint64(42)
	buf = make([]byte, codec.SpanOf(&v))
	n, err = codec.Encode(&v, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, byte(1), buf[0])

	decoded, n, err = codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	require.NotNil(t, decoded)
	assert.Equal(t, v, *decoded)
}

func TestOption_InvalidDiscriminant(t *testing.T) {
	codec := Option(U64())

	for _, tag := range []byte{0x02, 0x03, 0xFF} {
		buf := append([]byte{tag}, make([]byte, 8)...)
		_, _, err := codec.Decode(buf, 0)
		assert.ErrorIs(t, err, ErrInvalidOptionDiscriminant)

		_, err = codec.GetSpan(buf, 0)
		assert.ErrorIs(t, err, ErrInvalidOptionDiscriminant)
	}
}

func TestOption_GetSpan(t *testing.T) {
	codec := Option(U64())

	span, err := codec.GetSpan([]byte{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, span)

	span, err = codec.GetSpan(append([]byte{1}, make([]byte, 8)...), 0)
	require.NoError(t, err)
	assert.Equal(t, 9, span)
}

func TestOptionalPublicKey_RoundTrip(t *testing.T) {
	codec := OptionalPublicKey()

	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := range key {
		key[i] = 0xAB
	}

	buf := make([]byte, codec.SpanOf(key))
	n, err := codec.Encode(key, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 33, n)

	decoded, _, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)

	buf = make([]byte, codec.SpanOf(nil))
	n, err = codec.Encode(nil, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	decoded, _, err = codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestFutureEpoch_ReadCompatibility(t *testing.T) {
	codec := FutureEpoch(U64())

	payload := make([]byte, 8)
	payload[0] = 0x2A

	// Discriminants 1 and 2 decode to the same present value.
	for _, tag := range []byte{1, 2} {
		decoded, n, err := codec.Decode(append([]byte{tag}, payload...), 0)
		require.NoError(t, err)
		assert.Equal(t, 9, n)
		require.NotNil(t, decoded)
		assert.Equal(t, uint64(0x2A), *decoded)
	}

	decoded, n, err := codec.Decode([]byte{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Nil(t, decoded)

	_, _, err = codec.Decode(append([]byte{3}, payload...), 0)
	assert.ErrorIs(t, err, ErrInvalidFutureEpochDiscriminant)
}

func TestFutureEpoch_EncodeWritesScheduledTag(t *testing.T) {
	codec := FutureEpoch(U64())

	v := uint64(7)
	buf := make([]byte, codec.SpanOf(&v))
	n, err := codec.Encode(&v, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, byte(2), buf[0])

	buf = make([]byte, 1)
	_, err = codec.Encode(nil, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0), buf[0])
}
