package compactwire

import (
	"fmt"

	"github.com/rawbytedev/binbuf"
	"github.com/rawbytedev/binbuf/internal/common"
)

// DecodeDataFrame checks a data frame and returns its decompressed payload
// as a new buffer.
func (d *DataFrame) DecodeDataFrame(data []byte) (*binbuf.Buffer, error) {
	frame, err := binbuf.FromView(data, 0, len(data))
	if err != nil {
		return nil, err
	}
	if err := readPreamble(frame, TypeData); err != nil {
		return nil, err
	}
	if frame.Len() < dataHeaderLen+crcSize {
		return nil, ErrShortFrame
	}
	if err := verify(frame); err != nil {
		return nil, err
	}
	flags, _ := frame.ReadUint8(preambleSize + 4)
	codec, _ := frame.ReadUint8(preambleSize + 5)
	rawLen, _ := frame.ReadUint32LE(preambleSize + 6)
	if rawLen > binbuf.MaxLength {
		return nil, fmt.Errorf("%w: raw length %d over %d", ErrLengthMismatch, rawLen, binbuf.MaxLength)
	}

	payload := frame.Slice(dataHeaderLen, frame.Len()-crcSize).Bytes()
	if flags&FlagCompressed == 0 && Codec(codec) != CodecRaw {
		return nil, fmt.Errorf("%w: codec %d without compressed flag", ErrUnknownCodec, codec)
	}
	raw, err := decompress(Codec(codec), payload, int(rawLen))
	if err != nil {
		return nil, fmt.Errorf("compactwire: decompress %s: %w", Codec(codec), err)
	}
	if len(raw) != int(rawLen) {
		return nil, ErrLengthMismatch
	}
	return binbuf.FromBytes(raw)
}

// DecodeErrorFrame checks an error frame and returns its code and message.
func (e *ErrorFrame) DecodeErrorFrame(data []byte) (byte, string, error) {
	frame, err := binbuf.FromView(data, 0, len(data))
	if err != nil {
		return 0, "", err
	}
	if err := readPreamble(frame, TypeError); err != nil {
		return 0, "", err
	}
	if err := verify(frame); err != nil {
		return 0, "", err
	}
	code, err := frame.ReadUint8(preambleSize + 4)
	if err != nil {
		return 0, "", ErrShortFrame
	}
	start := preambleSize + 5
	end := frame.Len() - crcSize
	msgLen, n := common.ReadVarUint(frame.Slice(start, end).Bytes())
	if n == 0 || start+n+int(msgLen) != end {
		return 0, "", ErrLengthMismatch
	}
	msg, err := frame.ToString(binbuf.UTF8, start+n, end)
	if err != nil {
		return 0, "", err
	}
	return code, msg, nil
}
