package binbuf

import (
	"strings"
	"testing"
)

func BenchmarkWriteReadFixed(b *testing.B) {
	buf, _ := Alloc(32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		off, _ := buf.WriteUint32LE(uint32(i), 0)
		off, _ = buf.WriteBigInt64BE(int64(i), off)
		_, _ = buf.WriteDoubleLE(float64(i), off)
		_, _ = buf.ReadUint32LE(0)
		_, _ = buf.ReadBigInt64BE(4)
		_, _ = buf.ReadDoubleLE(12)
	}
}

func BenchmarkWriteReadVariable(b *testing.B) {
	buf, _ := Alloc(6)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = buf.WriteIntLE(-int64(i), 0, 6)
		_, _ = buf.ReadIntLE(0, 6)
	}
}

func BenchmarkFromStringHex(b *testing.B) {
	s := strings.Repeat("deadbeef", 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = FromString(s, Hex)
	}
}

func BenchmarkToStringBase64(b *testing.B) {
	buf, _ := AllocFill(256, "binbuf", UTF8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = buf.ToString(Base64, 0, buf.Len())
	}
}

func BenchmarkIndexOf(b *testing.B) {
	buf, _ := FromString(strings.Repeat("this is a buffer ", 64)+"needle", UTF8)
	needle := []byte("needle")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = buf.IndexOf(needle, 0)
	}
}

func BenchmarkSubarray(b *testing.B) {
	buf, _ := Alloc(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = buf.Subarray(i%512, 1024)
	}
}
