package layout

import "math"

// String returns a codec for an unsigned 32-bit length-prefixed UTF-8
// byte sequence, used by the token metadata instructions.
func String() Codec[string] { return stringCodec{} }

type stringCodec struct{}

func (stringCodec) Span() int { return SpanVariable }

func (stringCodec) SpanOf(v string) int { return 4 + len(v) }

func (stringCodec) Encode(v string, buf []byte, offset int) (int, error) {
	if uint64(len(v)) > math.MaxUint32 {
		return 0, ErrNumericOverflow
	}
	total, err := U32().Encode(uint32(len(v)), buf, offset)
	if err != nil {
		return total, err
	}
	if len(buf) < offset+total+len(v) {
		return total, ErrBufferTooShort
	}
	copy(buf[offset+total:], v)
	return total + len(v), nil
}

func (stringCodec) Decode(buf []byte, offset int) (string, int, error) {
	count, total, err := U32().Decode(buf, offset)
	if err != nil {
		return "", 0, err
	}
	if len(buf)-offset-total < int(count) {
		return "", total, ErrBufferTooShort
	}
	v := string(buf[offset+total : offset+total+int(count)])
	return v, total + int(count), nil
}

func (stringCodec) GetSpan(buf []byte, offset int) (int, error) {
	count, total, err := U32().Decode(buf, offset)
	if err != nil {
		return 0, err
	}
	if len(buf)-offset-total < int(count) {
		return total, ErrBufferTooShort
	}
	return total + int(count), nil
}
