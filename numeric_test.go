package binbuf

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestBigInt64(t *testing.T) {
	b := mustFrom(t, []byte{255, 255, 255, 255, 255, 255, 255, 255})
	s, err := b.ReadBigInt64BE(0)
	require.NoError(t, err)
	require.Equal(t, int64(-1), s)
	u, err := b.ReadBigUint64BE(0)
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), u)

	_, err = b.ReadBigInt64LE(1)
	require.ErrorIs(t, err, ErrOutOfRange)

	b, err = Alloc(8)
	require.NoError(t, err)
	next, err := b.WriteBigInt64LE(-2, 0)
	require.NoError(t, err)
	require.Equal(t, 8, next)
	require.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, b.Bytes())
}

func TestDouble(t *testing.T) {
	b, err := Alloc(8)
	require.NoError(t, err)
	next, err := b.WriteDoubleBE(123.456, 0)
	require.NoError(t, err)
	require.Equal(t, 8, next)
	require.Equal(t, []byte{64, 94, 221, 47, 26, 159, 190, 119}, b.Bytes())
	v, err := b.ReadDoubleBE(0)
	require.NoError(t, err)
	require.Equal(t, 123.456, v)

	_, err = b.WriteDoubleLE(123.456, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{119, 190, 159, 26, 47, 221, 94, 64}, b.Bytes())
}

func TestFloat32(t *testing.T) {
	b, err := Alloc(4)
	require.NoError(t, err)
	_, err = b.WriteFloatBE(1.5, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x3f, 0xc0, 0, 0}, b.Bytes())

	_, err = b.WriteFloat32LE(float32(math.Inf(-1)), 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0x80, 0xff}, b.Bytes())
	v, err := b.ReadFloatLE(0)
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(v), -1))

	nan := math.Float32frombits(0x7fc00001)
	_, err = b.WriteFloat32BE(nan, 0)
	require.NoError(t, err)
	got, err := b.ReadUint32BE(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x7fc00001), got, "NaN payload is kept bit-exact")
}

func TestSignedFixedWidth(t *testing.T) {
	b := mustFrom(t, []byte{0x80, 0x00, 0xff, 0xff, 0xff, 0xfe})
	i8, err := b.ReadInt8(0)
	require.NoError(t, err)
	require.Equal(t, int8(-128), i8)
	i16, err := b.ReadInt16BE(0)
	require.NoError(t, err)
	require.Equal(t, int16(-32768), i16)
	i16, err = b.ReadInt16LE(0)
	require.NoError(t, err)
	require.Equal(t, int16(128), i16)
	i32, err := b.ReadInt32BE(2)
	require.NoError(t, err)
	require.Equal(t, int32(-2), i32)
	i32, err = b.ReadInt32LE(2)
	require.NoError(t, err)
	require.Equal(t, int32(-16777217), i32)
}

func TestWriteChaining(t *testing.T) {
	b, err := Alloc(15)
	require.NoError(t, err)
	off, err := b.WriteUint8(1, 0)
	require.NoError(t, err)
	off, err = b.WriteUint16BE(0x0203, off)
	require.NoError(t, err)
	off, err = b.WriteUint32LE(0x07060504, off)
	require.NoError(t, err)
	off, err = b.WriteBigUint64BE(0x08090a0b0c0d0e0f, off)
	require.NoError(t, err)
	require.Equal(t, 15, off)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, b.Bytes())
}

func TestFixedWidthOutOfRange(t *testing.T) {
	b := mustFrom(t, []byte{1, 2, 3, 4})
	before := append([]byte(nil), b.Bytes()...)

	_, err := b.ReadUint8(4)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.ReadUint8(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.ReadUint16LE(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.ReadUint32BE(1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.ReadFloat64BE(0)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = b.WriteUint32BE(0xffffffff, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.WriteInt16LE(-1, 3)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.WriteBigInt64BE(-1, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.WriteFloat32LE(1, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, before, b.Bytes(), "failed writes leave the buffer untouched")
}

func TestVariableWidthRead(t *testing.T) {
	b := mustFrom(t, []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab})
	u, err := b.ReadUintBE(0, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1234567890ab), u)
	u, err = b.ReadUintLE(0, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(0xab9078563412), u)
	s, err := b.ReadIntBE(0, 6)
	require.NoError(t, err)
	require.Equal(t, int64(0x1234567890ab), s)
	s, err = b.ReadIntLE(0, 6)
	require.NoError(t, err)
	require.Equal(t, int64(-0x546f87a9cbee), s)
	s, err = b.ReadIntBE(4, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-28501), s)
	s, err = b.ReadIntLE(5, 1)
	require.NoError(t, err)
	require.Equal(t, int64(-85), s)

	for _, bl := range []int{0, 7, -1} {
		_, err = b.ReadUintBE(0, bl)
		require.ErrorIs(t, err, ErrOutOfRange, "byteLength %d", bl)
	}
	_, err = b.ReadIntLE(3, 4)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.ReadUintLE(-1, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestVariableWidthWrite(t *testing.T) {
	b, err := Alloc(6)
	require.NoError(t, err)

	next, err := b.WriteUintBE(0x1234567890ab, 0, 6)
	require.NoError(t, err)
	require.Equal(t, 6, next)
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab}, b.Bytes())

	_, err = b.WriteUintLE(0x1234567890ab, 0, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{0xab, 0x90, 0x78, 0x56, 0x34, 0x12}, b.Bytes())

	_, err = b.WriteIntBE(-0x1234567890ab, 0, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{0xed, 0xcb, 0xa9, 0x87, 0x6f, 0x55}, b.Bytes())

	_, err = b.WriteIntLE(-0x1234567890ab, 0, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{0x55, 0x6f, 0x87, 0xa9, 0xcb, 0xed}, b.Bytes())

	next, err = b.WriteIntLE(-257, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 3, next)
	require.Equal(t, []byte{0xff, 0xfe}, b.Bytes()[1:3])

	_, err = b.WriteIntBE(-256, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0x00}, b.Bytes()[:2])
}

func TestVariableWidthWriteRejects(t *testing.T) {
	b, err := Alloc(6)
	require.NoError(t, err)
	cases := []struct {
		name string
		fn   func() (int, error)
	}{
		{"uint too large", func() (int, error) { return b.WriteUintBE(256, 0, 1) }},
		{"uint48 too large", func() (int, error) { return b.WriteUintLE(1<<48, 0, 6) }},
		{"int too large", func() (int, error) { return b.WriteIntBE(128, 0, 1) }},
		{"int too small", func() (int, error) { return b.WriteIntLE(-129, 0, 1) }},
		{"int48 too small", func() (int, error) { return b.WriteIntLE(-(1 << 47) - 1, 0, 6) }},
		{"byteLength zero", func() (int, error) { return b.WriteIntBE(0, 0, 0) }},
		{"byteLength seven", func() (int, error) { return b.WriteUintBE(0, 0, 7) }},
		{"past end", func() (int, error) { return b.WriteUintLE(1, 4, 3) }},
		{"negative offset", func() (int, error) { return b.WriteIntLE(1, -1, 1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.fn()
			require.ErrorIs(t, err, ErrOutOfRange)
			require.Equal(t, make([]byte, 6), b.Bytes())
		})
	}
}

func TestVariableWidthRoundTrip(t *testing.T) {
	b, err := Alloc(8)
	require.NoError(t, err)
	for bl := minVarWidth; bl <= maxVarWidth; bl++ {
		bits := uint(8 * bl)
		signedCheck := func(v int64, off uint8) bool {
			v = v << (64 - bits) >> (64 - bits)
			o := int(off) % (b.Len() - bl + 1)
			if _, err := b.WriteIntLE(v, o, bl); err != nil {
				return false
			}
			le, err := b.ReadIntLE(o, bl)
			if err != nil || le != v {
				return false
			}
			if _, err := b.WriteIntBE(v, o, bl); err != nil {
				return false
			}
			be, err := b.ReadIntBE(o, bl)
			return err == nil && be == v
		}
		require.NoError(t, quick.Check(signedCheck, nil), "signed width %d", bl)

		unsignedCheck := func(v uint64, off uint8) bool {
			v &= 1<<bits - 1
			o := int(off) % (b.Len() - bl + 1)
			if _, err := b.WriteUintLE(v, o, bl); err != nil {
				return false
			}
			le, err := b.ReadUintLE(o, bl)
			if err != nil || le != v {
				return false
			}
			if _, err := b.WriteUintBE(v, o, bl); err != nil {
				return false
			}
			be, err := b.ReadUintBE(o, bl)
			return err == nil && be == v
		}
		require.NoError(t, quick.Check(unsignedCheck, nil), "unsigned width %d", bl)
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	b, err := Alloc(16)
	require.NoError(t, err)
	condition := func(i8 int8, u16 uint16, i16 int16, u32 uint32, i32 int32, u64 uint64, i64 int64, f32 float32, f64 float64, off uint8) bool {
		o := int(off) % 8
		ok := true
		check := func(err error, same bool) {
			ok = ok && err == nil && same
		}
		_, err := b.WriteInt8(i8, o)
		r8, rerr := b.ReadInt8(o)
		check(err, rerr == nil && r8 == i8)

		for _, pair := range []struct {
			w func() (int, error)
			r func() (bool, error)
		}{
			{func() (int, error) { return b.WriteUint16BE(u16, o) }, func() (bool, error) { v, err := b.ReadUint16BE(o); return v == u16, err }},
			{func() (int, error) { return b.WriteUint16LE(u16, o) }, func() (bool, error) { v, err := b.ReadUint16LE(o); return v == u16, err }},
			{func() (int, error) { return b.WriteInt16BE(i16, o) }, func() (bool, error) { v, err := b.ReadInt16BE(o); return v == i16, err }},
			{func() (int, error) { return b.WriteInt16LE(i16, o) }, func() (bool, error) { v, err := b.ReadInt16LE(o); return v == i16, err }},
			{func() (int, error) { return b.WriteUint32BE(u32, o) }, func() (bool, error) { v, err := b.ReadUint32BE(o); return v == u32, err }},
			{func() (int, error) { return b.WriteUint32LE(u32, o) }, func() (bool, error) { v, err := b.ReadUint32LE(o); return v == u32, err }},
			{func() (int, error) { return b.WriteInt32BE(i32, o) }, func() (bool, error) { v, err := b.ReadInt32BE(o); return v == i32, err }},
			{func() (int, error) { return b.WriteInt32LE(i32, o) }, func() (bool, error) { v, err := b.ReadInt32LE(o); return v == i32, err }},
			{func() (int, error) { return b.WriteBigUint64BE(u64, o) }, func() (bool, error) { v, err := b.ReadBigUint64BE(o); return v == u64, err }},
			{func() (int, error) { return b.WriteBigUint64LE(u64, o) }, func() (bool, error) { v, err := b.ReadBigUint64LE(o); return v == u64, err }},
			{func() (int, error) { return b.WriteBigInt64BE(i64, o) }, func() (bool, error) { v, err := b.ReadBigInt64BE(o); return v == i64, err }},
			{func() (int, error) { return b.WriteBigInt64LE(i64, o) }, func() (bool, error) { v, err := b.ReadBigInt64LE(o); return v == i64, err }},
			{func() (int, error) { return b.WriteFloat32BE(f32, o) }, func() (bool, error) {
				v, err := b.ReadFloat32BE(o)
				return math.Float32bits(v) == math.Float32bits(f32), err
			}},
			{func() (int, error) { return b.WriteFloat32LE(f32, o) }, func() (bool, error) {
				v, err := b.ReadFloat32LE(o)
				return math.Float32bits(v) == math.Float32bits(f32), err
			}},
			{func() (int, error) { return b.WriteFloat64BE(f64, o) }, func() (bool, error) {
				v, err := b.ReadFloat64BE(o)
				return math.Float64bits(v) == math.Float64bits(f64), err
			}},
			{func() (int, error) { return b.WriteFloat64LE(f64, o) }, func() (bool, error) {
				v, err := b.ReadFloat64LE(o)
				return math.Float64bits(v) == math.Float64bits(f64), err
			}},
		} {
			_, werr := pair.w()
			same, rerr := pair.r()
			check(werr, rerr == nil && same)
		}
		return ok
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestUIntAliases(t *testing.T) {
	b := mustFrom(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	pairs := []struct {
		name        string
		alias, base func() (any, error)
	}{
		{"ReadUInt8", func() (any, error) { return b.ReadUInt8(1) }, func() (any, error) { return b.ReadUint8(1) }},
		{"ReadUInt16BE", func() (any, error) { return b.ReadUInt16BE(1) }, func() (any, error) { return b.ReadUint16BE(1) }},
		{"ReadUInt16LE", func() (any, error) { return b.ReadUInt16LE(1) }, func() (any, error) { return b.ReadUint16LE(1) }},
		{"ReadUInt32BE", func() (any, error) { return b.ReadUInt32BE(1) }, func() (any, error) { return b.ReadUint32BE(1) }},
		{"ReadUInt32LE", func() (any, error) { return b.ReadUInt32LE(1) }, func() (any, error) { return b.ReadUint32LE(1) }},
		{"ReadBigUInt64BE", func() (any, error) { return b.ReadBigUInt64BE(0) }, func() (any, error) { return b.ReadBigUint64BE(0) }},
		{"ReadBigUInt64LE", func() (any, error) { return b.ReadBigUInt64LE(0) }, func() (any, error) { return b.ReadBigUint64LE(0) }},
		{"ReadUIntBE", func() (any, error) { return b.ReadUIntBE(1, 5) }, func() (any, error) { return b.ReadUintBE(1, 5) }},
		{"ReadUIntLE", func() (any, error) { return b.ReadUIntLE(1, 5) }, func() (any, error) { return b.ReadUintLE(1, 5) }},
		{"ReadFloatBE", func() (any, error) { return b.ReadFloatBE(0) }, func() (any, error) { return b.ReadFloat32BE(0) }},
		{"ReadFloatLE", func() (any, error) { return b.ReadFloatLE(0) }, func() (any, error) { return b.ReadFloat32LE(0) }},
		{"ReadDoubleBE", func() (any, error) { return b.ReadDoubleBE(0) }, func() (any, error) { return b.ReadFloat64BE(0) }},
		{"ReadDoubleLE", func() (any, error) { return b.ReadDoubleLE(0) }, func() (any, error) { return b.ReadFloat64LE(0) }},
		{"ReadUInt8 range", func() (any, error) { return b.ReadUInt8(8) }, func() (any, error) { return b.ReadUint8(8) }},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			av, aerr := p.alias()
			bv, berr := p.base()
			require.Equal(t, bv, av)
			require.Equal(t, berr == nil, aerr == nil)
		})
	}

	writes := []struct {
		name        string
		alias, base func(*Buffer) (int, error)
	}{
		{"WriteUInt8", func(x *Buffer) (int, error) { return x.WriteUInt8(0xfe, 1) }, func(x *Buffer) (int, error) { return x.WriteUint8(0xfe, 1) }},
		{"WriteUInt16BE", func(x *Buffer) (int, error) { return x.WriteUInt16BE(0xfeed, 1) }, func(x *Buffer) (int, error) { return x.WriteUint16BE(0xfeed, 1) }},
		{"WriteUInt16LE", func(x *Buffer) (int, error) { return x.WriteUInt16LE(0xfeed, 1) }, func(x *Buffer) (int, error) { return x.WriteUint16LE(0xfeed, 1) }},
		{"WriteUInt32BE", func(x *Buffer) (int, error) { return x.WriteUInt32BE(0xfeedface, 1) }, func(x *Buffer) (int, error) { return x.WriteUint32BE(0xfeedface, 1) }},
		{"WriteUInt32LE", func(x *Buffer) (int, error) { return x.WriteUInt32LE(0xfeedface, 1) }, func(x *Buffer) (int, error) { return x.WriteUint32LE(0xfeedface, 1) }},
		{"WriteBigUInt64BE", func(x *Buffer) (int, error) { return x.WriteBigUInt64BE(0xfeedfacecafebeef, 0) }, func(x *Buffer) (int, error) { return x.WriteBigUint64BE(0xfeedfacecafebeef, 0) }},
		{"WriteBigUInt64LE", func(x *Buffer) (int, error) { return x.WriteBigUInt64LE(0xfeedfacecafebeef, 0) }, func(x *Buffer) (int, error) { return x.WriteBigUint64LE(0xfeedfacecafebeef, 0) }},
		{"WriteUIntBE", func(x *Buffer) (int, error) { return x.WriteUIntBE(0xfeedface, 2, 5) }, func(x *Buffer) (int, error) { return x.WriteUintBE(0xfeedface, 2, 5) }},
		{"WriteUIntLE", func(x *Buffer) (int, error) { return x.WriteUIntLE(0xfeedface, 2, 5) }, func(x *Buffer) (int, error) { return x.WriteUintLE(0xfeedface, 2, 5) }},
		{"WriteFloatBE", func(x *Buffer) (int, error) { return x.WriteFloatBE(-2.25, 3) }, func(x *Buffer) (int, error) { return x.WriteFloat32BE(-2.25, 3) }},
		{"WriteFloatLE", func(x *Buffer) (int, error) { return x.WriteFloatLE(-2.25, 3) }, func(x *Buffer) (int, error) { return x.WriteFloat32LE(-2.25, 3) }},
		{"WriteDoubleBE", func(x *Buffer) (int, error) { return x.WriteDoubleBE(-2.25, 0) }, func(x *Buffer) (int, error) { return x.WriteFloat64BE(-2.25, 0) }},
		{"WriteDoubleLE", func(x *Buffer) (int, error) { return x.WriteDoubleLE(-2.25, 0) }, func(x *Buffer) (int, error) { return x.WriteFloat64LE(-2.25, 0) }},
		{"WriteUInt16BE range", func(x *Buffer) (int, error) { return x.WriteUInt16BE(1, 7) }, func(x *Buffer) (int, error) { return x.WriteUint16BE(1, 7) }},
	}
	for _, w := range writes {
		t.Run(w.name, func(t *testing.T) {
			x, err := Alloc(8)
			require.NoError(t, err)
			y, err := Alloc(8)
			require.NoError(t, err)
			xn, xerr := w.alias(x)
			yn, yerr := w.base(y)
			require.Equal(t, yn, xn)
			require.Equal(t, yerr == nil, xerr == nil)
			require.Equal(t, y.Bytes(), x.Bytes())
		})
	}
}
