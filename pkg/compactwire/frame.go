// Package compactwire frames buffers for storage or transport: a short
// header, an optionally compressed payload, and a CRC32 trailer.
//
// Data frame layout (integers little-endian):
//
//	magic(2) type(1) total(4) flags(1) codec(1) rawLen(4) payload crc(4)
//
// Error frame layout:
//
//	magic(2) type(1) total(4) code(1) msgLen(varint) msg crc(4)
//
// total counts the whole frame; the CRC covers everything after the magic.
package compactwire

import (
	"errors"
	"hash/crc32"

	"github.com/rawbytedev/binbuf"
)

const (
	Magic0 = 0xB1
	Magic1 = 0xF5
)

// Frame types.
const (
	TypeData  byte = 0x01
	TypeError byte = 0x02
)

// Data frame flags.
const (
	FlagCompressed byte = 0x01
)

const (
	preambleSize  = 3
	dataHeaderLen = preambleSize + 4 + 1 + 1 + 4
	crcSize       = 4
)

var (
	ErrNotFrame       = errors.New("compactwire: not a frame of the expected type")
	ErrShortFrame     = errors.New("compactwire: frame too short")
	ErrLengthMismatch = errors.New("compactwire: length mismatch")
	ErrCRCMismatch    = errors.New("compactwire: crc mismatch")
	ErrUnknownCodec   = errors.New("compactwire: unknown codec")
)

func writePreamble(b *binbuf.Buffer, t byte) (int, error) {
	off, err := b.WriteUint8(Magic0, 0)
	if err != nil {
		return 0, err
	}
	if off, err = b.WriteUint8(Magic1, off); err != nil {
		return 0, err
	}
	return b.WriteUint8(t, off)
}

func readPreamble(b *binbuf.Buffer, want byte) error {
	if b.Len() < preambleSize+4+crcSize {
		return ErrShortFrame
	}
	m0, _ := b.ReadUint8(0)
	m1, _ := b.ReadUint8(1)
	t, _ := b.ReadUint8(2)
	if m0 != Magic0 || m1 != Magic1 || t != want {
		return ErrNotFrame
	}
	return nil
}

// seal fills in the CRC trailer of a frame whose body is complete.
func seal(frame *binbuf.Buffer) error {
	end := frame.Len() - crcSize
	sum := crc32.ChecksumIEEE(frame.Slice(2, end).Bytes())
	_, err := frame.WriteUint32LE(sum, end)
	return err
}

// verify checks the total length field and the CRC trailer.
func verify(frame *binbuf.Buffer) error {
	total, err := frame.ReadUint32LE(preambleSize)
	if err != nil {
		return err
	}
	if int(total) != frame.Len() {
		return ErrLengthMismatch
	}
	end := frame.Len() - crcSize
	want, err := frame.ReadUint32LE(end)
	if err != nil {
		return err
	}
	if crc32.ChecksumIEEE(frame.Slice(2, end).Bytes()) != want {
		return ErrCRCMismatch
	}
	return nil
}
