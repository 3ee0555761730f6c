package layout

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// U8 returns a codec for an unsigned 8-bit integer.
func U8() Codec[uint8] { return uintCodec[uint8]{size: 1} }

// U16 returns a codec for a little-endian unsigned 16-bit integer.
func U16() Codec[uint16] { return uintCodec[uint16]{size: 2} }

// U32 returns a codec for a little-endian unsigned 32-bit integer.
func U32() Codec[uint32] { return uintCodec[uint32]{size: 4} }

// U64 returns a codec for a little-endian unsigned 64-bit integer.
func U64() Codec[uint64] { return uintCodec[uint64]{size: 8} }

// I8 returns a codec for a signed 8-bit integer.
func I8() Codec[int8] { return intCodec[int8]{size: 1} }

// I16 returns a codec for a little-endian two's-complement 16-bit integer.
func I16() Codec[int16] { return intCodec[int16]{size: 2} }

// I32 returns a codec for a little-endian two's-complement 32-bit integer.
func I32() Codec[int32] { return intCodec[int32]{size: 4} }

// I64 returns a codec for a little-endian two's-complement 64-bit integer.
func I64() Codec[int64] { return intCodec[int64]{size: 8} }

// Enum returns a one-byte codec for byte-sized tag types, such as
// account type and stake status tags.
func Enum[T ~uint8]() Codec[T] { return uintCodec[T]{size: 1} }

type uintCodec[T constraints.Unsigned] struct {
	size int
}

func (c uintCodec[T]) Span() int    { return c.size }
func (c uintCodec[T]) SpanOf(T) int { return c.size }

func (c uintCodec[T]) Encode(v T, buf []byte, offset int) (int, error) {
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	x := uint64(v)
	for i := 0; i < c.size; i++ {
		buf[offset+i] = byte(x >> (8 * i))
	}
	return c.size, nil
}

func (c uintCodec[T]) Decode(buf []byte, offset int) (T, int, error) {
	if len(buf) < offset+c.size {
		var zero T
		return zero, 0, ErrBufferTooShort
	}
	var x uint64
	for i := 0; i < c.size; i++ {
		x |= uint64(buf[offset+i]) << (8 * i)
	}
	return T(x), c.size, nil
}

func (c uintCodec[T]) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	return c.size, nil
}

type intCodec[T constraints.Signed] struct {
	size int
}

func (c intCodec[T]) Span() int    { return c.size }
func (c intCodec[T]) SpanOf(T) int { return c.size }

func (c intCodec[T]) Encode(v T, buf []byte, offset int) (int, error) {
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	// Two's complement falls out of the unsigned reinterpretation.
	x := uint64(int64(v))
	for i := 0; i < c.size; i++ {
		buf[offset+i] = byte(x >> (8 * i))
	}
	return c.size, nil
}

func (c intCodec[T]) Decode(buf []byte, offset int) (T, int, error) {
	if len(buf) < offset+c.size {
		var zero T
		return zero, 0, ErrBufferTooShort
	}
	var x uint64
	for i := 0; i < c.size; i++ {
		x |= uint64(buf[offset+i]) << (8 * i)
	}
	if c.size < 8 && buf[offset+c.size-1]&0x80 != 0 {
		x |= ^uint64(0) << (8 * c.size)
	}
	return T(int64(x)), c.size, nil
}

func (c intCodec[T]) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	return c.size, nil
}

// Bool returns a codec for a single-byte boolean. Decode fails with
// ErrInvalidBoolean for any byte other than 0 or 1.
func Bool() Codec[bool] { return boolCodec{} }

type boolCodec struct{}

func (boolCodec) Span() int       { return 1 }
func (boolCodec) SpanOf(bool) int { return 1 }

func (boolCodec) Encode(v bool, buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	if v {
		buf[offset] = 1
	} else {
		buf[offset] = 0
	}
	return 1, nil
}

func (boolCodec) Decode(buf []byte, offset int) (bool, int, error) {
	if len(buf) < offset+1 {
		return false, 0, ErrBufferTooShort
	}
	switch buf[offset] {
	case 0:
		return false, 1, nil
	case 1:
		return true, 1, nil
	default:
		return false, 0, errors.Wrapf(ErrInvalidBoolean, "value %d", buf[offset])
	}
}

func (boolCodec) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	return 1, nil
}

// Blob returns a codec for a fixed-size byte sequence. Encode requires
// the source length to equal size exactly; it never truncates or pads.
func Blob(size int) Codec[[]byte] { return blobCodec{size: size} }

type blobCodec struct {
	size int
}

func (c blobCodec) Span() int         { return c.size }
func (c blobCodec) SpanOf([]byte) int { return c.size }

func (c blobCodec) Encode(v []byte, buf []byte, offset int) (int, error) {
	if len(v) != c.size {
		return 0, errors.Wrapf(ErrSizeMismatch, "expected %d bytes, got %d", c.size, len(v))
	}
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	copy(buf[offset:], v)
	return c.size, nil
}

func (c blobCodec) Decode(buf []byte, offset int) ([]byte, int, error) {
	if len(buf) < offset+c.size {
		return nil, 0, ErrBufferTooShort
	}
	out := make([]byte, c.size)
	copy(out, buf[offset:])
	return out, c.size, nil
}

func (c blobCodec) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+c.size {
		return 0, ErrBufferTooShort
	}
	return c.size, nil
}

// PublicKey returns a codec for a 32-byte account identifier.
func PublicKey() Codec[ed25519.PublicKey] { return publicKeyCodec{} }

type publicKeyCodec struct{}

func (publicKeyCodec) Span() int                    { return ed25519.PublicKeySize }
func (publicKeyCodec) SpanOf(ed25519.PublicKey) int { return ed25519.PublicKeySize }

func (publicKeyCodec) Encode(v ed25519.PublicKey, buf []byte, offset int) (int, error) {
	if len(v) != ed25519.PublicKeySize {
		return 0, errors.Wrapf(ErrSizeMismatch, "expected %d bytes, got %d", ed25519.PublicKeySize, len(v))
	}
	if len(buf) < offset+ed25519.PublicKeySize {
		return 0, ErrBufferTooShort
	}
	copy(buf[offset:], v)
	return ed25519.PublicKeySize, nil
}

func (publicKeyCodec) Decode(buf []byte, offset int) (ed25519.PublicKey, int, error) {
	if len(buf) < offset+ed25519.PublicKeySize {
		return nil, 0, ErrBufferTooShort
	}
	out := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(out, buf[offset:])
	return out, ed25519.PublicKeySize, nil
}

func (publicKeyCodec) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+ed25519.PublicKeySize {
		return 0, ErrBufferTooShort
	}
	return ed25519.PublicKeySize, nil
}
