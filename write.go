package binbuf

import (
	"encoding/binary"
	"fmt"

	"github.com/rawbytedev/binbuf/internal/common"
)

// Every Write method returns offset plus the number of bytes written, so
// calls can be chained through a cursor. Nothing is written on error.

func (b *Buffer) WriteUint8(value uint8, offset int) (int, error) {
	if err := b.view().PutUint8(offset, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size8)
	}
	return offset + common.Size8, nil
}

func (b *Buffer) WriteInt8(value int8, offset int) (int, error) {
	return b.WriteUint8(uint8(value), offset)
}

func (b *Buffer) writeUint16(value uint16, offset int, order binary.ByteOrder) (int, error) {
	if err := b.view().PutUint16(offset, order, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size16)
	}
	return offset + common.Size16, nil
}

func (b *Buffer) WriteUint16BE(value uint16, offset int) (int, error) {
	return b.writeUint16(value, offset, be)
}

func (b *Buffer) WriteUint16LE(value uint16, offset int) (int, error) {
	return b.writeUint16(value, offset, le)
}

func (b *Buffer) WriteInt16BE(value int16, offset int) (int, error) {
	return b.writeUint16(uint16(value), offset, be)
}

func (b *Buffer) WriteInt16LE(value int16, offset int) (int, error) {
	return b.writeUint16(uint16(value), offset, le)
}

func (b *Buffer) writeUint32(value uint32, offset int, order binary.ByteOrder) (int, error) {
	if err := b.view().PutUint32(offset, order, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size32)
	}
	return offset + common.Size32, nil
}

func (b *Buffer) WriteUint32BE(value uint32, offset int) (int, error) {
	return b.writeUint32(value, offset, be)
}

func (b *Buffer) WriteUint32LE(value uint32, offset int) (int, error) {
	return b.writeUint32(value, offset, le)
}

func (b *Buffer) WriteInt32BE(value int32, offset int) (int, error) {
	return b.writeUint32(uint32(value), offset, be)
}

func (b *Buffer) WriteInt32LE(value int32, offset int) (int, error) {
	return b.writeUint32(uint32(value), offset, le)
}

func (b *Buffer) writeUint64(value uint64, offset int, order binary.ByteOrder) (int, error) {
	if err := b.view().PutUint64(offset, order, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size64)
	}
	return offset + common.Size64, nil
}

func (b *Buffer) WriteBigUint64BE(value uint64, offset int) (int, error) {
	return b.writeUint64(value, offset, be)
}

func (b *Buffer) WriteBigUint64LE(value uint64, offset int) (int, error) {
	return b.writeUint64(value, offset, le)
}

func (b *Buffer) WriteBigInt64BE(value int64, offset int) (int, error) {
	return b.writeUint64(uint64(value), offset, be)
}

func (b *Buffer) WriteBigInt64LE(value int64, offset int) (int, error) {
	return b.writeUint64(uint64(value), offset, le)
}

func (b *Buffer) WriteFloat32BE(value float32, offset int) (int, error) {
	if err := b.view().PutFloat32(offset, be, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size32)
	}
	return offset + common.Size32, nil
}

func (b *Buffer) WriteFloat32LE(value float32, offset int) (int, error) {
	if err := b.view().PutFloat32(offset, le, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size32)
	}
	return offset + common.Size32, nil
}

func (b *Buffer) WriteFloat64BE(value float64, offset int) (int, error) {
	if err := b.view().PutFloat64(offset, be, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size64)
	}
	return offset + common.Size64, nil
}

func (b *Buffer) WriteFloat64LE(value float64, offset int) (int, error) {
	if err := b.view().PutFloat64(offset, le, value); err != nil {
		return 0, b.rangeErr(err, offset, common.Size64)
	}
	return offset + common.Size64, nil
}

func (b *Buffer) checkUintValue(value uint64, byteLength int) error {
	if limit := uint64(1) << (8 * byteLength); value >= limit {
		return fmt.Errorf("%w: value %d must be < %d", ErrOutOfRange, value, limit)
	}
	return nil
}

func (b *Buffer) checkIntValue(value int64, byteLength int) error {
	limit := int64(1) << (8*byteLength - 1)
	if value < -limit || value >= limit {
		return fmt.Errorf("%w: value %d must be in [%d, %d)", ErrOutOfRange, value, -limit, limit)
	}
	return nil
}

// WriteUintLE writes value as a little-endian unsigned integer of
// byteLength (1 to 6) bytes.
func (b *Buffer) WriteUintLE(value uint64, offset, byteLength int) (int, error) {
	if err := b.checkVar(offset, byteLength); err != nil {
		return 0, err
	}
	if err := b.checkUintValue(value, byteLength); err != nil {
		return 0, err
	}
	mul := uint64(1)
	for i := 0; i < byteLength; i++ {
		b.data[offset+i] = byte(value / mul % 0x100)
		mul *= 0x100
	}
	return offset + byteLength, nil
}

// WriteUintBE writes value as a big-endian unsigned integer of
// byteLength (1 to 6) bytes.
func (b *Buffer) WriteUintBE(value uint64, offset, byteLength int) (int, error) {
	if err := b.checkVar(offset, byteLength); err != nil {
		return 0, err
	}
	if err := b.checkUintValue(value, byteLength); err != nil {
		return 0, err
	}
	mul := uint64(1)
	for i := byteLength - 1; i >= 0; i-- {
		b.data[offset+i] = byte(value / mul % 0x100)
		mul *= 0x100
	}
	return offset + byteLength, nil
}

// WriteIntLE writes value as a little-endian two's-complement integer of
// byteLength (1 to 6) bytes. Negative values carry a borrow into every
// byte above the first non-zero one.
func (b *Buffer) WriteIntLE(value int64, offset, byteLength int) (int, error) {
	if err := b.checkVar(offset, byteLength); err != nil {
		return 0, err
	}
	if err := b.checkIntValue(value, byteLength); err != nil {
		return 0, err
	}
	var sub int64
	mul := int64(1)
	b.data[offset] = byte(value)
	for i := 1; i < byteLength; i++ {
		mul *= 0x100
		if value < 0 && sub == 0 && b.data[offset+i-1] != 0 {
			sub = 1
		}
		b.data[offset+i] = byte(value/mul - sub)
	}
	return offset + byteLength, nil
}

// WriteIntBE writes value as a big-endian two's-complement integer of
// byteLength (1 to 6) bytes.
func (b *Buffer) WriteIntBE(value int64, offset, byteLength int) (int, error) {
	if err := b.checkVar(offset, byteLength); err != nil {
		return 0, err
	}
	if err := b.checkIntValue(value, byteLength); err != nil {
		return 0, err
	}
	var sub int64
	mul := int64(1)
	last := offset + byteLength - 1
	b.data[last] = byte(value)
	for i := last - 1; i >= offset; i-- {
		mul *= 0x100
		if value < 0 && sub == 0 && b.data[i+1] != 0 {
			sub = 1
		}
		b.data[i] = byte(value/mul - sub)
	}
	return offset + byteLength, nil
}
