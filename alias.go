package binbuf

// UInt* spellings forward to the Uint* accessors, and Float/Double to
// Float32/Float64, so code written against either naming convention works.

func (b *Buffer) ReadUInt8(offset int) (uint8, error)       { return b.ReadUint8(offset) }
func (b *Buffer) ReadUInt16BE(offset int) (uint16, error)   { return b.ReadUint16BE(offset) }
func (b *Buffer) ReadUInt16LE(offset int) (uint16, error)   { return b.ReadUint16LE(offset) }
func (b *Buffer) ReadUInt32BE(offset int) (uint32, error)   { return b.ReadUint32BE(offset) }
func (b *Buffer) ReadUInt32LE(offset int) (uint32, error)   { return b.ReadUint32LE(offset) }
func (b *Buffer) ReadBigUInt64BE(offset int) (uint64, error) { return b.ReadBigUint64BE(offset) }
func (b *Buffer) ReadBigUInt64LE(offset int) (uint64, error) { return b.ReadBigUint64LE(offset) }

func (b *Buffer) ReadUIntBE(offset, byteLength int) (uint64, error) {
	return b.ReadUintBE(offset, byteLength)
}

func (b *Buffer) ReadUIntLE(offset, byteLength int) (uint64, error) {
	return b.ReadUintLE(offset, byteLength)
}

func (b *Buffer) WriteUInt8(value uint8, offset int) (int, error) {
	return b.WriteUint8(value, offset)
}

func (b *Buffer) WriteUInt16BE(value uint16, offset int) (int, error) {
	return b.WriteUint16BE(value, offset)
}

func (b *Buffer) WriteUInt16LE(value uint16, offset int) (int, error) {
	return b.WriteUint16LE(value, offset)
}

func (b *Buffer) WriteUInt32BE(value uint32, offset int) (int, error) {
	return b.WriteUint32BE(value, offset)
}

func (b *Buffer) WriteUInt32LE(value uint32, offset int) (int, error) {
	return b.WriteUint32LE(value, offset)
}

func (b *Buffer) WriteBigUInt64BE(value uint64, offset int) (int, error) {
	return b.WriteBigUint64BE(value, offset)
}

func (b *Buffer) WriteBigUInt64LE(value uint64, offset int) (int, error) {
	return b.WriteBigUint64LE(value, offset)
}

func (b *Buffer) WriteUIntBE(value uint64, offset, byteLength int) (int, error) {
	return b.WriteUintBE(value, offset, byteLength)
}

func (b *Buffer) WriteUIntLE(value uint64, offset, byteLength int) (int, error) {
	return b.WriteUintLE(value, offset, byteLength)
}

func (b *Buffer) ReadFloatBE(offset int) (float32, error)  { return b.ReadFloat32BE(offset) }
func (b *Buffer) ReadFloatLE(offset int) (float32, error)  { return b.ReadFloat32LE(offset) }
func (b *Buffer) ReadDoubleBE(offset int) (float64, error) { return b.ReadFloat64BE(offset) }
func (b *Buffer) ReadDoubleLE(offset int) (float64, error) { return b.ReadFloat64LE(offset) }

func (b *Buffer) WriteFloatBE(value float32, offset int) (int, error) {
	return b.WriteFloat32BE(value, offset)
}

func (b *Buffer) WriteFloatLE(value float32, offset int) (int, error) {
	return b.WriteFloat32LE(value, offset)
}

func (b *Buffer) WriteDoubleBE(value float64, offset int) (int, error) {
	return b.WriteFloat64BE(value, offset)
}

func (b *Buffer) WriteDoubleLE(value float64, offset int) (int, error) {
	return b.WriteFloat64LE(value, offset)
}
