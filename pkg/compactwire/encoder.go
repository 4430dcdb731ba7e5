package compactwire

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/binbuf"
	"github.com/rawbytedev/binbuf/internal/common"
)

// Options controls how data frames are written.
type Options struct {
	Codec Codec
	// ZstdLevel is used by CodecZstd; zero means zstd.SpeedDefault.
	ZstdLevel zstd.EncoderLevel
}

// DataFrame encodes and decodes buffers as data frames.
type DataFrame struct {
	Opts Options
}

// ErrorFrame carries an error code and message.
type ErrorFrame struct{}

// EncodeDataFrame frames b, compressing its bytes with the configured codec.
func (d *DataFrame) EncodeDataFrame(b *binbuf.Buffer) (*binbuf.Buffer, error) {
	level := d.Opts.ZstdLevel
	if level == 0 {
		level = zstd.SpeedDefault
	}
	payload, used, err := compress(d.Opts.Codec, level, b.Bytes())
	if err != nil {
		return nil, err
	}
	var flags byte
	if used != CodecRaw {
		flags |= FlagCompressed
	}

	frame, err := binbuf.Alloc(dataHeaderLen + len(payload) + crcSize)
	if err != nil {
		return nil, err
	}
	off, err := writePreamble(frame, TypeData)
	if err != nil {
		return nil, err
	}
	steps := []func(int) (int, error){
		func(o int) (int, error) { return frame.WriteUint32LE(uint32(frame.Len()), o) },
		func(o int) (int, error) { return frame.WriteUint8(flags, o) },
		func(o int) (int, error) { return frame.WriteUint8(byte(used), o) },
		func(o int) (int, error) { return frame.WriteUint32LE(uint32(b.Len()), o) },
	}
	for _, step := range steps {
		if off, err = step(off); err != nil {
			return nil, fmt.Errorf("compactwire: write header: %w", err)
		}
	}
	src, err := binbuf.FromView(payload, 0, len(payload))
	if err != nil {
		return nil, err
	}
	if _, err := src.Copy(frame, off, 0, src.Len()); err != nil {
		return nil, err
	}
	if err := seal(frame); err != nil {
		return nil, err
	}
	return frame, nil
}

// EncodeErrorFrame builds an error frame holding code and msg.
func (e *ErrorFrame) EncodeErrorFrame(code byte, msg string) (*binbuf.Buffer, error) {
	body := common.WriteVarUint(nil, uint64(len(msg)))
	frame, err := binbuf.Alloc(preambleSize + 4 + 1 + len(body) + len(msg) + crcSize)
	if err != nil {
		return nil, err
	}
	off, err := writePreamble(frame, TypeError)
	if err != nil {
		return nil, err
	}
	if off, err = frame.WriteUint32LE(uint32(frame.Len()), off); err != nil {
		return nil, err
	}
	if off, err = frame.WriteUint8(code, off); err != nil {
		return nil, err
	}
	off += copy(frame.Bytes()[off:], body)
	if _, err := frame.WriteText(msg, off, binbuf.UTF8); err != nil {
		return nil, err
	}
	if err := seal(frame); err != nil {
		return nil, err
	}
	return frame, nil
}
