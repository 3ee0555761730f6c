package layout

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigUint_RoundTrip(t *testing.T) {
	codec := BigUint(8)

	buf := make([]byte, 8)
	n, err := codec.Encode(new(big.Int).SetUint64(0xC3), buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{0xC3, 0, 0, 0, 0, 0, 0, 0}, buf)

	v, n, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, uint64(0xC3), v.Uint64())
}

func TestBigUint_Wide(t *testing.T) {
	// A value beyond 64 bits must not truncate.
	codec := BigUint(32)

	v := new(big.Int).Lsh(big.NewInt(1), 200)
	v.Add(v, big.NewInt(99))

	buf := make([]byte, 32)
	_, err := codec.Encode(v, buf, 0)
	require.NoError(t, err)

	decoded, _, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(decoded))
}

func TestBigUint_Overflow(t *testing.T) {
	codec := BigUint(8)
	buf := make([]byte, 8)

	overflow := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err := codec.Encode(overflow, buf, 0)
	assert.ErrorIs(t, err, ErrNumericOverflow)

	_, err = codec.Encode(big.NewInt(-1), buf, 0)
	assert.ErrorIs(t, err, ErrNumericOverflow)

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	_, err = codec.Encode(max, buf, 0)
	assert.NoError(t, err)
}

func TestBigInt_TwosComplement(t *testing.T) {
	codec := BigInt(8)

	buf := make([]byte, 8)
	n, err := codec.Encode(big.NewInt(-1), buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 8), buf)

	signed, _, err := codec.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), signed.Int64())

	unsigned, _, err := BigUint(8).Decode(buf, 0)
	require.NoError(t, err)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	assert.Zero(t, max.Cmp(unsigned))
}

func TestBigInt_Range(t *testing.T) {
	codec := BigInt(2)
	buf := make([]byte, 2)

	for _, tc := range []struct {
		value   int64
		encoded []byte
	}{
		{-32768, []byte{0x00, 0x80}},
		{-2, []byte{0xFE, 0xFF}},
		{0, []byte{0x00, 0x00}},
		{32767, []byte{0xFF, 0x7F}},
	} {
		n, err := codec.Encode(big.NewInt(tc.value), buf, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, tc.encoded, buf)

		decoded, _, err := codec.Decode(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.value, decoded.Int64())
	}

	_, err := codec.Encode(big.NewInt(32768), buf, 0)
	assert.ErrorIs(t, err, ErrNumericOverflow)
	_, err = codec.Encode(big.NewInt(-32769), buf, 0)
	assert.ErrorIs(t, err, ErrNumericOverflow)
}
