package compactwire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies how a data frame payload is compressed.
type Codec byte

const (
	CodecRaw Codec = iota
	CodecZstd
	CodecS2
	CodecLZ4
)

const (
	// lz4MaxRatio bounds lz4 block expansion: one length byte adds at most
	// 255 output bytes.
	lz4MaxRatio = 255
	// zstdMaxWindow is the largest window the zstd encoder picks at any level.
	zstdMaxWindow = 8 << 20
)

var codecNames = map[string]Codec{
	"raw":  CodecRaw,
	"zstd": CodecZstd,
	"s2":   CodecS2,
	"lz4":  CodecLZ4,
}

// ParseCodec maps a codec name (raw, zstd, s2, lz4) to its Codec.
func ParseCodec(name string) (Codec, error) {
	c, ok := codecNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

func (c Codec) String() string {
	for name, v := range codecNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("codec(%d)", byte(c))
}

// compress returns the encoded payload and the codec actually used.
// Payloads lz4 cannot shrink are stored raw.
func compress(c Codec, level zstd.EncoderLevel, raw []byte) ([]byte, Codec, error) {
	switch c {
	case CodecRaw:
		return raw, CodecRaw, nil
	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
		if err != nil {
			return nil, 0, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), CodecZstd, nil
	case CodecS2:
		var out bytes.Buffer
		w := s2.NewWriter(&out, s2.WriterConcurrency(1))
		if _, err := w.Write(raw); err != nil {
			return nil, 0, err
		}
		if err := w.Close(); err != nil {
			return nil, 0, err
		}
		return out.Bytes(), CodecS2, nil
	case CodecLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, dst, nil)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 || n >= len(raw) {
			return raw, CodecRaw, nil
		}
		return dst[:n], CodecLZ4, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownCodec, byte(c))
	}
}

// decompress never allocates from rawLen alone: streamed codecs grow with
// the bytes they actually produce and lz4 is bounded by its payload.
func decompress(c Codec, payload []byte, rawLen int) ([]byte, error) {
	switch c {
	case CodecRaw:
		return payload, nil
	case CodecZstd:
		dec, err := zstd.NewReader(bytes.NewReader(payload),
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(zstdMaxWindow))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return readExactly(dec, rawLen)
	case CodecS2:
		return readExactly(s2.NewReader(bytes.NewReader(payload)), rawLen)
	case CodecLZ4:
		if rawLen > len(payload)*lz4MaxRatio {
			return nil, fmt.Errorf("%w: %d bytes cannot expand to %d", ErrLengthMismatch, len(payload), rawLen)
		}
		dst := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, err
		}
		return dst[:n], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, byte(c))
	}
}

// readExactly reads at most want+1 bytes from r and fails unless exactly
// want came out.
func readExactly(r io.Reader, want int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(want)+1))
	if err != nil {
		return nil, err
	}
	if len(out) != want {
		return nil, ErrLengthMismatch
	}
	return out, nil
}
