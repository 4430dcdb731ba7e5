package common

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrOutOfRange is returned when a fixed-width access would leave the view.
var ErrOutOfRange = errors.New("offset out of range")

// Sizes of the fixed-width kinds a View can read and write.
const (
	Size8  = 1
	Size16 = 2
	Size32 = 4
	Size64 = 8
)

// View reads and writes fixed-width numbers over a byte range with an
// explicit byte order. It never grows b; every access is bounds checked
// before anything is read or written.
type View struct {
	b []byte
}

// NewView returns a View over b. Writes through the view mutate b.
func NewView(b []byte) View {
	return View{b: b}
}

// Len returns the number of bytes covered by the view.
func (v View) Len() int {
	return len(v.b)
}

// Check reports whether width bytes starting at off lie inside the view.
func (v View) Check(off, width int) error {
	if off < 0 || width < 0 || off > len(v.b)-width {
		return ErrOutOfRange
	}
	return nil
}

func (v View) Uint8(off int) (uint8, error) {
	if err := v.Check(off, Size8); err != nil {
		return 0, err
	}
	return v.b[off], nil
}

func (v View) PutUint8(off int, x uint8) error {
	if err := v.Check(off, Size8); err != nil {
		return err
	}
	v.b[off] = x
	return nil
}

func (v View) Uint16(off int, order binary.ByteOrder) (uint16, error) {
	if err := v.Check(off, Size16); err != nil {
		return 0, err
	}
	return order.Uint16(v.b[off:]), nil
}

func (v View) PutUint16(off int, order binary.ByteOrder, x uint16) error {
	if err := v.Check(off, Size16); err != nil {
		return err
	}
	order.PutUint16(v.b[off:], x)
	return nil
}

func (v View) Uint32(off int, order binary.ByteOrder) (uint32, error) {
	if err := v.Check(off, Size32); err != nil {
		return 0, err
	}
	return order.Uint32(v.b[off:]), nil
}

func (v View) PutUint32(off int, order binary.ByteOrder, x uint32) error {
	if err := v.Check(off, Size32); err != nil {
		return err
	}
	order.PutUint32(v.b[off:], x)
	return nil
}

func (v View) Uint64(off int, order binary.ByteOrder) (uint64, error) {
	if err := v.Check(off, Size64); err != nil {
		return 0, err
	}
	return order.Uint64(v.b[off:]), nil
}

func (v View) PutUint64(off int, order binary.ByteOrder, x uint64) error {
	if err := v.Check(off, Size64); err != nil {
		return err
	}
	order.PutUint64(v.b[off:], x)
	return nil
}

// Float32 decodes IEEE-754 single precision bits at off.
func (v View) Float32(off int, order binary.ByteOrder) (float32, error) {
	bits, err := v.Uint32(off, order)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (v View) PutFloat32(off int, order binary.ByteOrder, x float32) error {
	return v.PutUint32(off, order, math.Float32bits(x))
}

// Float64 decodes IEEE-754 double precision bits at off.
func (v View) Float64(off int, order binary.ByteOrder) (float64, error) {
	bits, err := v.Uint64(off, order)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

func (v View) PutFloat64(off int, order binary.ByteOrder, x float64) error {
	return v.PutUint64(off, order, math.Float64bits(x))
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A zero count means b ended before the varint did.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
