package layout

import "github.com/pkg/errors"

// FutureEpoch returns a codec for a value that may be scheduled to take
// effect at a later epoch. On the wire, discriminant 0 means absent
// while 1 (already active) and 2 (activating at a future epoch) both
// carry a payload and decode identically.
//
// Encode always writes discriminant 2 when a value is present; records
// produced on-chain with discriminant 1 decode fine but do not
// round-trip to the same tag byte through this codec.
func FutureEpoch[T any](payload Codec[T]) Codec[*T] {
	return futureEpochCodec[T]{payload: payload}
}

type futureEpochCodec[T any] struct {
	payload Codec[T]
}

func (c futureEpochCodec[T]) Span() int { return SpanVariable }

func (c futureEpochCodec[T]) SpanOf(v *T) int {
	if v == nil {
		return 1
	}
	return 1 + c.payload.SpanOf(*v)
}

func (c futureEpochCodec[T]) Encode(v *T, buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	if v == nil {
		buf[offset] = 0
		return 1, nil
	}
	buf[offset] = 2
	n, err := c.payload.Encode(*v, buf, offset+1)
	return 1 + n, err
}

func (c futureEpochCodec[T]) Decode(buf []byte, offset int) (*T, int, error) {
	if len(buf) < offset+1 {
		return nil, 0, ErrBufferTooShort
	}
	switch buf[offset] {
	case 0:
		return nil, 1, nil
	case 1, 2:
		v, n, err := c.payload.Decode(buf, offset+1)
		if err != nil {
			return nil, 1 + n, err
		}
		return &v, 1 + n, nil
	default:
		return nil, 0, errors.Wrapf(ErrInvalidFutureEpochDiscriminant, "value %d", buf[offset])
	}
}

func (c futureEpochCodec[T]) GetSpan(buf []byte, offset int) (int, error) {
	if len(buf) < offset+1 {
		return 0, ErrBufferTooShort
	}
	switch buf[offset] {
	case 0:
		return 1, nil
	case 1, 2:
		n, err := c.payload.GetSpan(buf, offset+1)
		return 1 + n, err
	default:
		return 0, errors.Wrapf(ErrInvalidFutureEpochDiscriminant, "value %d", buf[offset])
	}
}
