package layout

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// Option returns a codec for an optional value: a one-byte discriminant
// (0 absent, 1 present) followed by the payload bytes when present. A
// nil pointer is the absent value.
func Option[T any](payload Codec[T]) Codec[*T] {
	return optionCodec[T]{payload: payload}
}

type optionCodec[T any] struct {
	payload Codec[T]
}

func (c optionCodec[T]) Span() int { return SpanVariable }

func (c optionCodec[T]) SpanOf(v *T) int {
	if v == nil {
		return 1
	}
	return 1 + c.payload.SpanOf(*v)
}

func (c optionCodec[T]) Encode(v *T, buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	if v == nil {
		buf[offset] = 0
		return 1, nil
	}
	buf[offset] = 1
	n, err := c.payload.Encode(*v, buf, offset+1)
	return 1 + n, err
}

func (c optionCodec[T]) Decode(buf []byte, offset int) (*T, int, error) {
	if len(buf) < offset+1 {
		return nil, 0, ErrBufferTooShort
	}
	switch buf[offset] {
	case 0:
		return nil, 1, nil
	case 1:
		v, n, err := c.payload.Decode(buf, offset+1)
		if err != nil {
			return nil, 1 + n, err
		}
		return &v, 1 + n, nil
	default:
		return nil, 0, errors.Wrapf(ErrInvalidOptionDiscriminant, "value %d", buf[offset])
	}
}

func (c optionCodec[T]) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	switch buf[offset] {
	case 0:
		return 1, nil
	case 1:
		n, err := c.payload.GetSpan(buf, offset+1)
		return 1 + n, err
	default:
		return 0, errors.Wrapf(ErrInvalidOptionDiscriminant, "value %d", buf[offset])
	}
}

// OptionalPublicKey returns an option codec for a 32-byte identifier
// where a nil key is the absent branch, matching how optional keys are
// represented throughout the SDK.
func OptionalPublicKey() Codec[ed25519.PublicKey] {
	return optionalPublicKeyCodec{key: PublicKey()}
}

type optionalPublicKeyCodec struct {
	key Codec[ed25519.PublicKey]
}

func (c optionalPublicKeyCodec) Span() int { return SpanVariable }

func (c optionalPublicKeyCodec) SpanOf(v ed25519.PublicKey) int {
	if len(v) == 0 {
		return 1
	}
	return 1 + ed25519.PublicKeySize
}

func (c optionalPublicKeyCodec) Encode(v ed25519.PublicKey, buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	if len(v) == 0 {
		buf[offset] = 0
		return 1, nil
	}
	buf[offset] = 1
	n, err := c.key.Encode(v, buf, offset+1)
	return 1 + n, err
}

func (c optionalPublicKeyCodec) Decode(buf []byte, offset int) (ed25519.PublicKey, int, error) {
	if len(buf) < offset+1 {
		return nil, 0, ErrBufferTooShort
	}
	switch buf[offset] {
	case 0:
		return nil, 1, nil
	case 1:
		v, n, err := c.key.Decode(buf, offset+1)
		return v, 1 + n, err
	default:
		return nil, 0, errors.Wrapf(ErrInvalidOptionDiscriminant, "value %d", buf[offset])
	}
}

func (c optionalPublicKeyCodec) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	switch buf[offset] {
	case 0:
		return 1, nil
	case 1:
		n, err := c.key.GetSpan(buf, offset+1)
		return 1 + n, err
	default:
		return 0, errors.Wrapf(ErrInvalidOptionDiscriminant, "value %d", buf[offset])
	}
}
