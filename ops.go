package binbuf

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/rawbytedev/binbuf/internal/common"
)

// normalizeIndex resolves a negative index from the end and clamps the
// result into [0, n].
func normalizeIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

// Subarray returns a view of bytes [start, end) sharing storage with b.
// Negative indices count from the end; start past end yields an empty view.
func (b *Buffer) Subarray(start, end int) *Buffer {
	n := b.Len()
	s := normalizeIndex(start, n)
	e := max(normalizeIndex(end, n), s)
	if b == nil {
		return &Buffer{}
	}
	return newView(b.store, b.off+s, e-s)
}

// Slice is Subarray: the result is a view, not a copy.
func (b *Buffer) Slice(start, end int) *Buffer {
	return b.Subarray(start, end)
}

// Reverse reverses b in place.
func (b *Buffer) Reverse() *Buffer {
	slices.Reverse(b.Bytes())
	return b
}

// CompareTo orders b against target, returning -1, 0 or 1.
func (b *Buffer) CompareTo(target Sequence) (int, error) {
	return Compare(b, target)
}

// CompareRange orders b[sourceStart:sourceEnd] against
// target[targetStart:targetEnd]. A start past its end selects nothing.
func (b *Buffer) CompareRange(target Sequence, targetStart, targetEnd, sourceStart, sourceEnd int) (int, error) {
	t, ok := bytesOf(target)
	if !ok {
		return 0, fmt.Errorf("%w: target", ErrTypeMismatch)
	}
	switch {
	case targetStart < 0:
		return 0, fmt.Errorf("%w: targetStart %d", ErrOutOfRange, targetStart)
	case targetEnd < 0 || targetEnd > len(t):
		return 0, fmt.Errorf("%w: targetEnd %d, target length %d", ErrOutOfRange, targetEnd, len(t))
	case sourceStart < 0:
		return 0, fmt.Errorf("%w: sourceStart %d", ErrOutOfRange, sourceStart)
	case sourceEnd < 0 || sourceEnd > b.Len():
		return 0, fmt.Errorf("%w: sourceEnd %d, length %d", ErrOutOfRange, sourceEnd, b.Len())
	}
	targetStart = min(targetStart, targetEnd)
	sourceStart = min(sourceStart, sourceEnd)
	return Compare(Raw(b.Bytes()[sourceStart:sourceEnd]), Raw(t[targetStart:targetEnd]))
}

// Equals reports whether b and other hold the same bytes.
func (b *Buffer) Equals(other Sequence) (bool, error) {
	o, ok := bytesOf(other)
	if !ok {
		return false, fmt.Errorf("%w: otherBuffer", ErrTypeMismatch)
	}
	return bytes.Equal(b.Bytes(), o), nil
}

// Copy copies b[sourceStart:sourceEnd] into target at targetStart and
// returns the number of bytes copied. sourceEnd is clamped to Len(), and
// the copy stops early when target runs out of room; neither is an error.
func (b *Buffer) Copy(target Sequence, targetStart, sourceStart, sourceEnd int) (int, error) {
	t, ok := bytesOf(target)
	if !ok {
		return 0, fmt.Errorf("%w: target", ErrTypeMismatch)
	}
	n := b.Len()
	switch {
	case targetStart < 0:
		return 0, fmt.Errorf("%w: targetStart %d", ErrOutOfRange, targetStart)
	case sourceStart < 0 || sourceStart > n:
		return 0, fmt.Errorf("%w: sourceStart %d, length %d", ErrOutOfRange, sourceStart, n)
	case sourceEnd < 0:
		return 0, fmt.Errorf("%w: sourceEnd %d", ErrOutOfRange, sourceEnd)
	}
	sourceEnd = min(sourceEnd, n)
	if targetStart >= len(t) || sourceStart >= sourceEnd {
		return 0, nil
	}
	return copy(t[targetStart:], b.Bytes()[sourceStart:sourceEnd]), nil
}

func (b *Buffer) checkFillRange(offset, end int) error {
	if offset < 0 || offset > b.Len() {
		return fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, offset, b.Len())
	}
	if end < 0 || end > b.Len() {
		return fmt.Errorf("%w: end %d, length %d", ErrOutOfRange, end, b.Len())
	}
	return nil
}

// FillByte sets every byte in [offset, end) to the low 8 bits of value.
func (b *Buffer) FillByte(value, offset, end int) (*Buffer, error) {
	if err := b.checkFillRange(offset, end); err != nil {
		return nil, err
	}
	if offset < end {
		fill := b.data[offset:end]
		for i := range fill {
			fill[i] = byte(value)
		}
	}
	return b, nil
}

// FillString decodes s and repeats it across [offset, end). An empty
// string fills with zeros.
func (b *Buffer) FillString(s string, offset, end int, encoding string) (*Buffer, error) {
	if err := b.checkFillRange(offset, end); err != nil {
		return nil, err
	}
	p, err := stringToBuffer(s, encoding)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return b.FillByte(0, offset, end)
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: fill value %q is empty once decoded as %s", ErrInvalidArgument, s, encoding)
	}
	b.tile(p, offset, end)
	return b, nil
}

// FillBytes repeats p across [offset, end).
func (b *Buffer) FillBytes(p []byte, offset, end int) (*Buffer, error) {
	if err := b.checkFillRange(offset, end); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: fill value is empty", ErrInvalidArgument)
	}
	b.tile(bytes.Clone(p), offset, end)
	return b, nil
}

func (b *Buffer) tile(p []byte, offset, end int) {
	for i := offset; i < end; i++ {
		b.data[i] = p[(i-offset)%len(p)]
	}
}

// Fill dispatches on the type of value: strings go through FillString,
// integers through FillByte, byte sequences through FillBytes.
func (b *Buffer) Fill(value any, offset, end int, encoding string) (*Buffer, error) {
	switch v := value.(type) {
	case string:
		return b.FillString(v, offset, end, encoding)
	case int:
		return b.FillByte(v, offset, end)
	case int64:
		return b.FillByte(int(v), offset, end)
	case uint8:
		return b.FillByte(int(v), offset, end)
	case []byte:
		return b.FillBytes(v, offset, end)
	case Sequence:
		p, ok := bytesOf(v)
		if !ok {
			break
		}
		return b.FillBytes(p, offset, end)
	}
	return nil, fmt.Errorf("%w: fill value of type %T", ErrInvalidArgument, value)
}

// swapGroups reverses each width-byte group of p; len(p) is a multiple of width.
func swapGroups(p []byte, width int) {
	for i := 0; i < len(p); i += width {
		slices.Reverse(p[i : i+width])
	}
}

// Swap16 swaps the byte order of every 2-byte group in place.
func (b *Buffer) Swap16() (*Buffer, error) {
	if b.Len()%common.Size16 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 16-bits", ErrSizeMismatch, b.Len())
	}
	swapGroups(b.Bytes(), common.Size16)
	return b, nil
}

// Swap32 swaps the byte order of every 4-byte group in place.
func (b *Buffer) Swap32() (*Buffer, error) {
	if b.Len()%common.Size32 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 32-bits", ErrSizeMismatch, b.Len())
	}
	swapGroups(b.Bytes(), common.Size32)
	return b, nil
}

// Swap64 swaps the byte order of every 8-byte group in place.
func (b *Buffer) Swap64() (*Buffer, error) {
	if b.Len()%common.Size64 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 64-bits", ErrSizeMismatch, b.Len())
	}
	swapGroups(b.Bytes(), common.Size64)
	return b, nil
}
