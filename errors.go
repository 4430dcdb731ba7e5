package binbuf

import (
	"errors"

	"github.com/rawbytedev/binbuf/internal/common"
)

// Sentinel errors. Call sites wrap them with context, so compare with errors.Is.
var (
	// ErrInvalidArgument is returned for malformed constructor input such as
	// negative sizes or unsupported From sources.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedEncoding is returned for unknown encoding names.
	ErrUnsupportedEncoding = errors.New("unknown encoding")

	// ErrOutOfRange is returned when an access would read or write outside
	// the buffer, or when a value does not fit the requested width.
	ErrOutOfRange = common.ErrOutOfRange

	// ErrSizeMismatch is returned by Swap16/32/64 when the length is not a
	// multiple of the group size.
	ErrSizeMismatch = errors.New("buffer size mismatch")

	// ErrTypeMismatch is returned when a byte sequence argument is missing.
	ErrTypeMismatch = errors.New("argument must be a byte sequence")
)
