package layout

import (
	"math"

	"github.com/pkg/errors"
)

// Vector returns a codec for a variable-length sequence: an unsigned
// 32-bit little-endian element count followed by that many encoded
// elements. Wire order is the slice order.
func Vector[T any](elem Codec[T]) Codec[[]T] {
	return vectorCodec[T]{elem: elem}
}

type vectorCodec[T any] struct {
	elem Codec[T]
}

func (c vectorCodec[T]) Span() int { return SpanVariable }

func (c vectorCodec[T]) SpanOf(v []T) int {
	total := 4
	for _, e := range v {
		total += c.elem.SpanOf(e)
	}
	return total
}

func (c vectorCodec[T]) Encode(v []T, buf []byte, offset int) (int, error) {
	if uint64(len(v)) > math.MaxUint32 {
		return 0, errors.Wrapf(ErrNumericOverflow, "%d elements exceed u32 count", len(v))
	}
	total, err := U32().Encode(uint32(len(v)), buf, offset)
	if err != nil {
		return total, err
	}
	for _, e := range v {
		n, err := c.elem.Encode(e, buf, offset+total)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (c vectorCodec[T]) Decode(buf []byte, offset int) ([]T, int, error) {
	count, total, err := U32().Decode(buf, offset)
	if err != nil {
		return nil, 0, err
	}

	// For fixed-span elements the remaining buffer bounds the count
	// before anything is allocated.
	if span := c.elem.Span(); span > 0 && len(buf)-offset-total < int(count)*span {
		return nil, total, ErrBufferTooShort
	}

	out := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		e, n, err := c.elem.Decode(buf, offset+total)
		if err != nil {
			return nil, total, err
		}
		out = append(out, e)
		total += n
	}
	return out, total, nil
}

func (c vectorCodec[T]) GetSpan(buf []byte, offset int) (int, error) {
	count, total, err := U32().Decode(buf, offset)
	if err != nil {
		return 0, err
	}
	for i := uint32(0); i < count; i++ {
		n, err := c.elem.GetSpan(buf, offset+total)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
