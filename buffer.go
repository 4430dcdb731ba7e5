// Package binbuf provides Buffer, a fixed-length mutable byte array with
// numeric accessors in both byte orders, text codecs, search, and views
// that share storage.
//
// A Buffer never grows or shrinks. Buffers returned by Slice and Subarray
// alias the storage of their source; mutating one mutates the other.
// Buffers are not safe for concurrent mutation.
package binbuf

import (
	"bytes"
	"fmt"
	"iter"
	"math"
	"reflect"
	"strings"
)

// MaxLength is the largest size a Buffer may be allocated with.
const MaxLength = math.MaxInt32

// inspectMaxBytes caps the bytes shown by Inspect.
const inspectMaxBytes = 50

// Sequence is implemented by anything exposing a contiguous run of bytes.
// Bytes must return the live storage, not a copy.
type Sequence interface {
	Bytes() []byte
}

// Raw adapts a plain byte slice to Sequence.
type Raw []byte

func (r Raw) Bytes() []byte { return r }

// View describes a range of existing storage. From and FromView wrap it
// without copying.
type View struct {
	Backing    []byte
	ByteOffset int
	Length     int
}

// Buffer is a fixed-length byte array. The zero value is an empty buffer.
type Buffer struct {
	store []byte // storage shared with every view
	off   int
	data  []byte // store[off : off+len : off+len]
}

func newView(store []byte, off, n int) *Buffer {
	return &Buffer{store: store, off: off, data: store[off : off+n : off+n]}
}

func wrap(p []byte) *Buffer {
	return newView(p, 0, len(p))
}

func checkSize(size int) error {
	if size < 0 || size > MaxLength {
		return fmt.Errorf("%w: size %d must be in [0, %d]", ErrInvalidArgument, size, MaxLength)
	}
	return nil
}

// Alloc returns a zero-filled buffer of size bytes.
func Alloc(size int) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return wrap(make([]byte, size)), nil
}

// AllocFill returns a buffer of size bytes filled with value, using the
// same dispatch as Fill. encoding only applies to string values.
func AllocFill(size int, value any, encoding string) (*Buffer, error) {
	b, err := Alloc(size)
	if err != nil {
		return nil, err
	}
	if _, err := b.Fill(value, 0, size, encoding); err != nil {
		return nil, err
	}
	return b, nil
}

// AllocUnsafe returns a buffer of size bytes whose contents are not
// guaranteed. This implementation zero-fills.
func AllocUnsafe(size int) (*Buffer, error) {
	return Alloc(size)
}

// IsBuffer reports whether value is a *Buffer. Plain byte slices are not.
func IsBuffer(value any) bool {
	b, ok := value.(*Buffer)
	return ok && b != nil
}

// bytesOf returns the bytes behind s, or false when s is nil.
func bytesOf(s Sequence) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	if v := reflect.ValueOf(s); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	return s.Bytes(), true
}

// Compare orders a and b lexicographically, returning -1, 0 or 1.
// A shorter sequence sorts before a longer one sharing its prefix.
func Compare(a, b Sequence) (int, error) {
	ab, ok := bytesOf(a)
	if !ok {
		return 0, fmt.Errorf("%w: first argument", ErrTypeMismatch)
	}
	bb, ok := bytesOf(b)
	if !ok {
		return 0, fmt.Errorf("%w: second argument", ErrTypeMismatch)
	}
	return bytes.Compare(ab, bb), nil
}

// From builds a buffer from a dynamically typed value. Sources are tried
// in order: the JSON form, a size, a string, a View, then anything with
// bytes or byte-valued elements. Everything else is rejected.
func From(value any, encoding string) (*Buffer, error) {
	switch v := value.(type) {
	case JSON:
		return FromJSON(v)
	case *JSON:
		if v != nil {
			return FromJSON(*v)
		}
	case map[string]any:
		if t, _ := v["type"].(string); t == jsonType {
			if data, ok := v["data"].([]any); ok {
				return fromElements(data)
			}
		}
	case int:
		return FromSize(v)
	case int32:
		return FromSize(int(v))
	case int64:
		return FromSize(int(v))
	case string:
		return FromString(v, encoding)
	case View:
		return FromView(v.Backing, v.ByteOffset, v.Length)
	case *Buffer:
		if v != nil {
			return FromSequence(v)
		}
	case []byte:
		return FromBytes(v)
	case []int:
		return FromArray(v)
	case []float64:
		return fromFloats(v), nil
	case []any:
		return fromElements(v)
	case Sequence:
		return FromSequence(v)
	}
	return nil, fmt.Errorf("%w: first argument must be a string, size, View, byte sequence, number slice or JSON form, got %T",
		ErrInvalidArgument, value)
}

// FromSize is the legacy numeric path of From; it behaves as AllocUnsafe.
func FromSize(size int) (*Buffer, error) {
	return AllocUnsafe(size)
}

// FromString decodes s with the named encoding.
func FromString(s, encoding string) (*Buffer, error) {
	p, err := stringToBuffer(s, encoding)
	if err != nil {
		return nil, err
	}
	return wrap(p), nil
}

// FromView wraps length bytes of backing starting at byteOffset without
// copying.
func FromView(backing []byte, byteOffset, length int) (*Buffer, error) {
	if byteOffset < 0 || byteOffset > len(backing) {
		return nil, fmt.Errorf("%w: byteOffset %d is outside of buffer bounds", ErrOutOfRange, byteOffset)
	}
	if length < 0 || length > len(backing)-byteOffset {
		return nil, fmt.Errorf("%w: length %d is outside of buffer bounds", ErrOutOfRange, length)
	}
	return newView(backing, byteOffset, length), nil
}

// FromBytes copies p into a new buffer.
func FromBytes(p []byte) (*Buffer, error) {
	return wrap(bytes.Clone(nonNil(p))), nil
}

// FromSequence copies the bytes of s into a new buffer.
func FromSequence(s Sequence) (*Buffer, error) {
	p, ok := bytesOf(s)
	if !ok {
		return nil, fmt.Errorf("%w: nil sequence", ErrInvalidArgument)
	}
	return FromBytes(p)
}

// FromArray copies values, keeping the low 8 bits of each element.
func FromArray(values []int) (*Buffer, error) {
	p := make([]byte, len(values))
	for i, v := range values {
		p[i] = byte(v)
	}
	return wrap(p), nil
}

func fromFloats(values []float64) *Buffer {
	p := make([]byte, len(values))
	for i, v := range values {
		p[i] = toUint8(v)
	}
	return wrap(p)
}

func fromElements(values []any) (*Buffer, error) {
	p := make([]byte, len(values))
	for i, v := range values {
		switch n := v.(type) {
		case float64:
			p[i] = toUint8(n)
		case int:
			p[i] = byte(n)
		case uint64:
			p[i] = byte(n)
		case int64:
			p[i] = byte(n)
		default:
			return nil, fmt.Errorf("%w: element %d has type %T", ErrInvalidArgument, i, v)
		}
	}
	return wrap(p), nil
}

// toUint8 applies the ToUint8 number conversion: truncate, then modulo 256.
func toUint8(v float64) byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return byte(int64(math.Mod(math.Trunc(v), 256)))
}

func nonNil(p []byte) []byte {
	if p == nil {
		return []byte{}
	}
	return p
}

// Concat joins list into a new buffer whose length is the sum of the
// input lengths.
func Concat(list []Sequence) (*Buffer, error) {
	total := 0
	for i, s := range list {
		p, ok := bytesOf(s)
		if !ok {
			return nil, fmt.Errorf("%w: list[%d] must be a byte sequence", ErrInvalidArgument, i)
		}
		total += len(p)
	}
	return ConcatLength(list, total)
}

// ConcatLength joins list into a buffer of exactly totalLength bytes,
// truncating overflow and zero-padding underflow.
func ConcatLength(list []Sequence, totalLength int) (*Buffer, error) {
	out, err := Alloc(totalLength)
	if err != nil {
		return nil, err
	}
	pos := 0
	for i, s := range list {
		p, ok := bytesOf(s)
		if !ok {
			return nil, fmt.Errorf("%w: list[%d] must be a byte sequence", ErrInvalidArgument, i)
		}
		if pos >= totalLength {
			continue
		}
		pos += copy(out.data[pos:], p)
	}
	return out, nil
}

// Len returns the fixed number of bytes in b.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns the live bytes of b. Writes to the slice mutate b.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Backing returns the whole storage b is a view of.
func (b *Buffer) Backing() []byte {
	if b == nil {
		return nil
	}
	return b.store
}

// ByteOffset returns where b starts inside Backing.
func (b *Buffer) ByteOffset() int {
	if b == nil {
		return 0
	}
	return b.off
}

// At returns the byte at index i.
func (b *Buffer) At(i int) (byte, error) {
	p := b.Bytes()
	if i < 0 || i >= len(p) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(p))
	}
	return p[i], nil
}

// Set stores v at index i.
func (b *Buffer) Set(i int, v byte) error {
	p := b.Bytes()
	if i < 0 || i >= len(p) {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(p))
	}
	p[i] = v
	return nil
}

// All yields every index and byte in order.
func (b *Buffer) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range b.Bytes() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Clone returns a copy of b that shares nothing with it.
func (b *Buffer) Clone() *Buffer {
	return wrap(bytes.Clone(nonNil(b.Bytes())))
}

// Inspect renders b as "<Buffer 48 65 6c ...>", showing at most 50 bytes.
func (b *Buffer) Inspect() string {
	p := b.Bytes()
	var sb strings.Builder
	sb.WriteString("<Buffer")
	n := min(len(p), inspectMaxBytes)
	for _, c := range p[:n] {
		fmt.Fprintf(&sb, " %02x", c)
	}
	if rest := len(p) - n; rest > 0 {
		fmt.Fprintf(&sb, " ... %d more byte", rest)
		if rest > 1 {
			sb.WriteByte('s')
		}
	}
	if len(p) == 0 {
		sb.WriteByte(' ')
	}
	sb.WriteByte('>')
	return sb.String()
}
