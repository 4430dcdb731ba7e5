package binbuf

import (
	"encoding/binary"
	"fmt"

	"github.com/rawbytedev/binbuf/internal/common"
)

var (
	be = binary.BigEndian
	le = binary.LittleEndian
)

// Widths accepted by the variable-width accessors.
const (
	minVarWidth = 1
	maxVarWidth = 6
)

func (b *Buffer) view() common.View {
	return common.NewView(b.Bytes())
}

func (b *Buffer) rangeErr(err error, offset, width int) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %d bytes at offset %d, length %d", err, width, offset, b.Len())
}

func (b *Buffer) ReadUint8(offset int) (uint8, error) {
	v, err := b.view().Uint8(offset)
	return v, b.rangeErr(err, offset, common.Size8)
}

func (b *Buffer) ReadInt8(offset int) (int8, error) {
	v, err := b.ReadUint8(offset)
	return int8(v), err
}

func (b *Buffer) readUint16(offset int, order binary.ByteOrder) (uint16, error) {
	v, err := b.view().Uint16(offset, order)
	return v, b.rangeErr(err, offset, common.Size16)
}

func (b *Buffer) ReadUint16BE(offset int) (uint16, error) { return b.readUint16(offset, be) }
func (b *Buffer) ReadUint16LE(offset int) (uint16, error) { return b.readUint16(offset, le) }

func (b *Buffer) ReadInt16BE(offset int) (int16, error) {
	v, err := b.readUint16(offset, be)
	return int16(v), err
}

func (b *Buffer) ReadInt16LE(offset int) (int16, error) {
	v, err := b.readUint16(offset, le)
	return int16(v), err
}

func (b *Buffer) readUint32(offset int, order binary.ByteOrder) (uint32, error) {
	v, err := b.view().Uint32(offset, order)
	return v, b.rangeErr(err, offset, common.Size32)
}

func (b *Buffer) ReadUint32BE(offset int) (uint32, error) { return b.readUint32(offset, be) }
func (b *Buffer) ReadUint32LE(offset int) (uint32, error) { return b.readUint32(offset, le) }

func (b *Buffer) ReadInt32BE(offset int) (int32, error) {
	v, err := b.readUint32(offset, be)
	return int32(v), err
}

func (b *Buffer) ReadInt32LE(offset int) (int32, error) {
	v, err := b.readUint32(offset, le)
	return int32(v), err
}

func (b *Buffer) readUint64(offset int, order binary.ByteOrder) (uint64, error) {
	v, err := b.view().Uint64(offset, order)
	return v, b.rangeErr(err, offset, common.Size64)
}

// ReadBigUint64BE reads all 64 bits of an unsigned big-endian integer.
func (b *Buffer) ReadBigUint64BE(offset int) (uint64, error) { return b.readUint64(offset, be) }
func (b *Buffer) ReadBigUint64LE(offset int) (uint64, error) { return b.readUint64(offset, le) }

// ReadBigInt64BE reads a two's-complement big-endian int64.
func (b *Buffer) ReadBigInt64BE(offset int) (int64, error) {
	v, err := b.readUint64(offset, be)
	return int64(v), err
}

func (b *Buffer) ReadBigInt64LE(offset int) (int64, error) {
	v, err := b.readUint64(offset, le)
	return int64(v), err
}

func (b *Buffer) ReadFloat32BE(offset int) (float32, error) {
	v, err := b.view().Float32(offset, be)
	return v, b.rangeErr(err, offset, common.Size32)
}

func (b *Buffer) ReadFloat32LE(offset int) (float32, error) {
	v, err := b.view().Float32(offset, le)
	return v, b.rangeErr(err, offset, common.Size32)
}

func (b *Buffer) ReadFloat64BE(offset int) (float64, error) {
	v, err := b.view().Float64(offset, be)
	return v, b.rangeErr(err, offset, common.Size64)
}

func (b *Buffer) ReadFloat64LE(offset int) (float64, error) {
	v, err := b.view().Float64(offset, le)
	return v, b.rangeErr(err, offset, common.Size64)
}

// checkVar validates a variable-width access of byteLength bytes.
func (b *Buffer) checkVar(offset, byteLength int) error {
	if byteLength < minVarWidth || byteLength > maxVarWidth {
		return fmt.Errorf("%w: byteLength %d must be in [%d, %d]", ErrOutOfRange, byteLength, minVarWidth, maxVarWidth)
	}
	return b.rangeErr(b.view().Check(offset, byteLength), offset, byteLength)
}

// ReadUintLE reads a little-endian unsigned integer of 1 to 6 bytes.
func (b *Buffer) ReadUintLE(offset, byteLength int) (uint64, error) {
	if err := b.checkVar(offset, byteLength); err != nil {
		return 0, err
	}
	var v uint64
	mul := uint64(1)
	for i := 0; i < byteLength; i++ {
		v += uint64(b.data[offset+i]) * mul
		mul *= 0x100
	}
	return v, nil
}

// ReadUintBE reads a big-endian unsigned integer of 1 to 6 bytes.
func (b *Buffer) ReadUintBE(offset, byteLength int) (uint64, error) {
	if err := b.checkVar(offset, byteLength); err != nil {
		return 0, err
	}
	var v uint64
	mul := uint64(1)
	for i := byteLength - 1; i >= 0; i-- {
		v += uint64(b.data[offset+i]) * mul
		mul *= 0x100
	}
	return v, nil
}

// signed reinterprets an unsigned byteLength-wide value as two's complement.
func signed(v uint64, byteLength int) int64 {
	bits := uint(8 * byteLength)
	if v >= 1<<(bits-1) {
		return int64(v) - int64(1)<<bits
	}
	return int64(v)
}

// ReadIntLE reads a little-endian two's-complement integer of 1 to 6 bytes.
func (b *Buffer) ReadIntLE(offset, byteLength int) (int64, error) {
	v, err := b.ReadUintLE(offset, byteLength)
	if err != nil {
		return 0, err
	}
	return signed(v, byteLength), nil
}

// ReadIntBE reads a big-endian two's-complement integer of 1 to 6 bytes.
func (b *Buffer) ReadIntBE(offset, byteLength int) (int64, error) {
	v, err := b.ReadUintBE(offset, byteLength)
	if err != nil {
		return 0, err
	}
	return signed(v, byteLength), nil
}
