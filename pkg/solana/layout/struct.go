package layout

import "github.com/pkg/errors"

// Field binds one named wire field of a composite record to a codec.
// Construct fields with NewField and compose them with Struct; the
// declaration order is the wire order.
type Field[S any] struct {
	name    string
	span    int
	spanOf  func(s *S) int
	encode  func(s *S, buf []byte, offset int) (int, error)
	decode  func(s *S, buf []byte, offset int) (int, error)
	getSpan func(buf []byte, offset int) (int, error)
}

// NewField binds codec to the record field selected by access. Codec
// errors are wrapped with the field name for diagnostics.
func NewField[S, T any](name string, codec Codec[T], access func(*S) *T) Field[S] {
	return Field[S]{
		name: name,
		span: codec.Span(),
		spanOf: func(s *S) int {
			return codec.SpanOf(*access(s))
		},
		encode: func(s *S, buf []byte, offset int) (int, error) {
			n, err := codec.Encode(*access(s), buf, offset)
			if err != nil {
				return n, errors.Wrap(err, name)
			}
			return n, nil
		},
		decode: func(s *S, buf []byte, offset int) (int, error) {
			v, n, err := codec.Decode(buf, offset)
			if err != nil {
				return n, errors.Wrap(err, name)
			}
			*access(s) = v
			return n, nil
		},
		getSpan: func(buf []byte, offset int) (int, error) {
			n, err := codec.GetSpan(buf, offset)
			if err != nil {
				return n, errors.Wrap(err, name)
			}
			return n, nil
		},
	}
}

// Struct returns a codec for an ordered sequence of named fields.
// Fields may themselves be composites, vectors or options; spans
// recurse through arbitrary nesting.
func Struct[S any](fields ...Field[S]) Codec[S] {
	span := 0
	for _, f := range fields {
		if f.span == SpanVariable {
			span = SpanVariable
			break
		}
		span += f.span
	}
	return structCodec[S]{fields: fields, span: span}
}

type structCodec[S any] struct {
	fields []Field[S]
	span   int
}

func (c structCodec[S]) Span() int { return c.span }

func (c structCodec[S]) SpanOf(v S) int {
	if c.span != SpanVariable {
		return c.span
	}
	var total int
	for _, f := range c.fields {
		total += f.spanOf(&v)
	}
	return total
}

func (c structCodec[S]) Encode(v S, buf []byte, offset int) (int, error) {
	var total int
	for _, f := range c.fields {
		n, err := f.encode(&v, buf, offset+total)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (c structCodec[S]) Decode(buf []byte, offset int) (S, int, error) {
	var s S
	var total int
	for _, f := range c.fields {
		n, err := f.decode(&s, buf, offset+total)
		if err != nil {
			return s, total, err
		}
		total += n
	}
	return s, total, nil
}

func (c structCodec[S]) GetSpan(buf []byte, offset int) (int, error) {
	if c.span != SpanVariable {
		if len(buf) < offset+c.span {
			return 0, ErrBufferTooShort
		}
		return c.span, nil
	}
	var total int
	for _, f := range c.fields {
		n, err := f.getSpan(buf, offset+total)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
