package layout

import (
	"math/big"

	"github.com/pkg/errors"
)

// BigUint returns a codec for an unsigned little-endian integer of the
// given byte width, backed by big.Int so widths beyond 64 bits do not
// truncate. Encode fails with ErrNumericOverflow when the value does
// not fit the declared width.
func BigUint(size int) Codec[*big.Int] { return bigUintCodec{size: size} }

type bigUintCodec struct {
	size int
}

func (c bigUintCodec) Span() int           { return c.size }
func (c bigUintCodec) SpanOf(*big.Int) int { return c.size }

func (c bigUintCodec) Encode(v *big.Int, buf []byte, offset int) (int, error) {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 {
		return 0, errors.Wrapf(ErrNumericOverflow, "negative value %s in unsigned field", v)
	}
	if v.BitLen() > 8*c.size {
		return 0, errors.Wrapf(ErrNumericOverflow, "%s exceeds %d bytes", v, c.size)
	}
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	putBigLE(buf[offset:offset+c.size], v)
	return c.size, nil
}

func (c bigUintCodec) Decode(buf []byte, offset int) (*big.Int, int, error) {
	if len(buf) < offset+c.size {
		return nil, 0, ErrBufferTooShort
	}
	return getBigLE(buf[offset : offset+c.size]), c.size, nil
}

func (c bigUintCodec) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	return c.size, nil
}

// BigInt returns a codec for a signed little-endian two's-complement
// integer of the given byte width, backed by big.Int. Encode fails with
// ErrNumericOverflow when the value is outside the representable range.
func BigInt(size int) Codec[*big.Int] { return bigIntCodec{size: size} }

type bigIntCodec struct {
	size int
}

func (c bigIntCodec) Span() int           { return c.size }
func (c bigIntCodec) SpanOf(*big.Int) int { return c.size }

func (c bigIntCodec) Encode(v *big.Int, buf []byte, offset int) (int, error) {
	if v == nil {
		v = new(big.Int)
	}

	// Representable range over 8*size bits: [-2^(n-1), 2^(n-1)-1].
	bound := new(big.Int).Lsh(big.NewInt(1), uint(8*c.size-1))
	max := new(big.Int).Sub(bound, big.NewInt(1))
	min := new(big.Int).Neg(bound)
	if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
		return 0, errors.Wrapf(ErrNumericOverflow, "%s exceeds %d-byte two's complement range", v, c.size)
	}
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}

	enc := v
	if v.Sign() < 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(8*c.size))
		enc = new(big.Int).Add(modulus, v)
	}
	putBigLE(buf[offset:offset+c.size], enc)
	return c.size, nil
}

func (c bigIntCodec) Decode(buf []byte, offset int) (*big.Int, int, error) {
	if len(buf) < offset+c.size {
		return nil, 0, ErrBufferTooShort
	}
	v := getBigLE(buf[offset : offset+c.size])
	if buf[offset+c.size-1]&0x80 != 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(8*c.size))
		v.Sub(v, modulus)
	}
	return v, c.size, nil
}

func (c bigIntCodec) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	return c.size, nil
}

// putBigLE writes the non-negative value v into dst little-endian,
// zero-padding the high bytes. v must fit within len(dst) bytes.
func putBigLE(dst []byte, v *big.Int) {
	be := v.FillBytes(make([]byte, len(dst)))
	for i := range dst {
		dst[i] = be[len(be)-1-i]
	}
}

// getBigLE reads a little-endian unsigned magnitude from src.
func getBigLE(src []byte) *big.Int {
	be := make([]byte, len(src))
	for i := range src {
		be[len(src)-1-i] = src[i]
	}
	return new(big.Int).SetBytes(be)
}
