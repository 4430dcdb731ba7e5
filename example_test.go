package binbuf_test

import (
	"fmt"

	"github.com/rawbytedev/binbuf"
)

func ExampleFromView() {
	packet := []byte{0xB1, 0xF5, 0x00, 0x2A, 0x01, 0x00}
	body, err := binbuf.FromView(packet, 2, 4)
	if err != nil {
		panic(err)
	}
	_, _ = body.WriteUint16LE(0xBEEF, 2)
	fmt.Printf("% x\n", packet)
	// Output: b1 f5 00 2a ef be
}

func ExampleBuffer_WriteIntBE() {
	b, _ := binbuf.Alloc(6)
	_, _ = b.WriteIntBE(-0x1234567890ab, 0, 6)
	fmt.Println(b.Inspect())
	v, _ := b.ReadIntBE(0, 6)
	fmt.Println(v)
	// Output:
	// <Buffer ed cb a9 87 6f 55>
	// -20015998341291
}

func ExampleBuffer_ToString() {
	b, _ := binbuf.FromString("aGVsbG8gd29ybGQ=", binbuf.Base64)
	s, _ := b.ToString(binbuf.UTF8, 0, 5)
	h, _ := b.ToString(binbuf.Hex, 6, b.Len())
	fmt.Println(s, h)
	// Output: hello 776f726c64
}
