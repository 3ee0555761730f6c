package layout

import "github.com/pkg/errors"

var (
	// ErrBufferTooShort is returned when a decode would read past the
	// end of the supplied buffer, or an encode past the end of the
	// destination buffer.
	ErrBufferTooShort = errors.New("buffer too short")

	// ErrInvalidBoolean is returned when a boolean byte holds a value
	// other than 0 or 1.
	ErrInvalidBoolean = errors.New("invalid boolean")

	// ErrInvalidOptionDiscriminant is returned when an option tag byte
	// holds a value other than 0 or 1.
	ErrInvalidOptionDiscriminant = errors.New("invalid option discriminant")

	// ErrInvalidFutureEpochDiscriminant is returned when a future-epoch
	// tag byte holds a value other than 0, 1 or 2.
	ErrInvalidFutureEpochDiscriminant = errors.New("invalid future epoch discriminant")

	// ErrSizeMismatch is returned when a fixed-size blob encode is
	// given a source of the wrong length.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrNumericOverflow is returned when a value's magnitude cannot be
	// represented in the declared byte width.
	ErrNumericOverflow = errors.New("numeric overflow")
)
