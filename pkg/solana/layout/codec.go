// Package layout implements the schema-driven binary codecs used by the
// stake pool program's account and instruction formats.
//
// Every value is serialized little-endian. Codecs are immutable once
// constructed and safe for concurrent use; schemas for the on-chain
// records are built once at package init and shared.
package layout

// SpanVariable is the Span() result for codecs whose encoded size
// depends on the value (vectors, options, strings).
const SpanVariable = -1

// Codec encodes and decodes values of type T to and from a fixed wire
// format. Decoding bytes and re-encoding the result must reproduce the
// original bytes exactly, since the format has to match the on-chain
// program byte-for-byte.
type Codec[T any] interface {
	// Span returns the encoded size in bytes, or SpanVariable when the
	// size depends on the value.
	Span() int

	// SpanOf returns the encoded size of v in bytes.
	SpanOf(v T) int

	// Encode writes v at buf[offset:] and returns the number of bytes
	// written.
	Encode(v T, buf []byte, offset int) (int, error)

	// Decode reads a value from buf[offset:] and returns it along with
	// the number of bytes consumed.
	Decode(buf []byte, offset int) (T, int, error)

	// GetSpan returns the number of bytes the encoded value at
	// buf[offset:] occupies, without materializing the value. Callers
	// use it to advance past variable-span fields.
	GetSpan(buf []byte, offset int) (int, error)
}
