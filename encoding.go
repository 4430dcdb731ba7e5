package binbuf

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names understood by the text helpers. Lookups are
// case-insensitive and an empty name means UTF8.
const (
	UTF8      = "utf8"
	Hex       = "hex"
	Base64    = "base64"
	Base64URL = "base64url"
	Latin1    = "latin1"
	ASCII     = "ascii"
	UTF16LE   = "utf16le"
)

type codec struct {
	encode func(string) []byte
	decode func([]byte) string
	// whole reports how many leading bytes of p can be written without
	// splitting a character.
	whole func(p []byte, n int) int
}

var (
	utf16le  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf8Repl = unicode.UTF8
)

var codecs = map[string]codec{
	UTF8:      {encode: encodeUTF8, decode: decodeUTF8, whole: wholeUTF8},
	Hex:       {encode: decodeHex, decode: hex.EncodeToString},
	Base64:    {encode: decodeBase64, decode: base64.StdEncoding.EncodeToString},
	Base64URL: {encode: decodeBase64, decode: base64.RawURLEncoding.EncodeToString},
	Latin1:    {encode: encodeLatin1, decode: decodeLatin1},
	ASCII:     {encode: encodeLatin1, decode: decodeASCII},
	UTF16LE:   {encode: encodeUTF16LE, decode: decodeUTF16LE, whole: wholeUTF16},
}

var aliases = map[string]string{
	"":         UTF8,
	"utf-8":    UTF8,
	"binary":   Latin1,
	"ucs2":     UTF16LE,
	"ucs-2":    UTF16LE,
	"utf-16le": UTF16LE,
}

func lookupCodec(encoding string) (codec, error) {
	name := strings.ToLower(encoding)
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	c, ok := codecs[name]
	if !ok {
		return codec{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
	}
	return c, nil
}

// IsEncoding reports whether name is a supported encoding.
func IsEncoding(name string) bool {
	if name == "" {
		return false
	}
	_, err := lookupCodec(name)
	return err == nil
}

// ByteLength returns how many bytes s occupies once encoded.
func ByteLength(s, encoding string) (int, error) {
	p, err := stringToBuffer(s, encoding)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// stringToBuffer is the one place text becomes bytes.
func stringToBuffer(value, encoding string) ([]byte, error) {
	c, err := lookupCodec(encoding)
	if err != nil {
		return nil, err
	}
	return c.encode(value), nil
}

// String decodes the whole buffer as UTF-8.
func (b *Buffer) String() string {
	return decodeUTF8(b.Bytes())
}

// ToString decodes bytes [start, end) with the named encoding. start and
// end are clamped into [0, Len()] rather than rejected.
func (b *Buffer) ToString(encoding string, start, end int) (string, error) {
	c, err := lookupCodec(encoding)
	if err != nil {
		return "", err
	}
	start = max(start, 0)
	end = min(end, len(b.data))
	if start >= end {
		return "", nil
	}
	return c.decode(b.data[start:end]), nil
}

// WriteText encodes s into b at offset, using all remaining space.
func (b *Buffer) WriteText(s string, offset int, encoding string) (int, error) {
	return b.WriteTextN(s, offset, len(b.data)-offset, encoding)
}

// WriteTextN encodes s and copies at most length bytes of it into b at
// offset, returning the number of bytes written. Characters are never
// split across the end of the written range.
func (b *Buffer) WriteTextN(s string, offset, length int, encoding string) (int, error) {
	if offset < 0 || offset > len(b.data) {
		return 0, fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, offset, len(b.data))
	}
	if length < 0 {
		return 0, fmt.Errorf("%w: write length %d", ErrOutOfRange, length)
	}
	c, err := lookupCodec(encoding)
	if err != nil {
		return 0, err
	}
	p := c.encode(s)
	n := min(length, len(b.data)-offset, len(p))
	if n < len(p) && c.whole != nil {
		n = c.whole(p, n)
	}
	return copy(b.data[offset:offset+n], p), nil
}

func encodeUTF8(s string) []byte {
	return []byte(s)
}

func decodeUTF8(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}
	out, err := utf8Repl.NewDecoder().Bytes(p)
	if err != nil {
		return strings.ToValidUTF8(string(p), string(utf8.RuneError))
	}
	return string(out)
}

func wholeUTF8(p []byte, n int) int {
	for n > 0 && !utf8.RuneStart(p[n]) {
		n--
	}
	return n
}

// decodeHex keeps the longest run of valid hex pairs and drops the rest.
func decodeHex(s string) []byte {
	n := 0
	for n < len(s) && isHexDigit(s[n]) {
		n++
	}
	out, _ := hex.DecodeString(s[:n&^1])
	return nonNil(out)
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// decodeBase64 accepts both alphabets, skips characters outside them, and
// stops at the first padding character.
func decodeBase64(s string) []byte {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '=':
			i = len(s)
		case c == '-':
			clean = append(clean, '+')
		case c == '_':
			clean = append(clean, '/')
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9', c == '+', c == '/':
			clean = append(clean, c)
		}
	}
	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}
	out := make([]byte, base64.RawStdEncoding.DecodedLen(len(clean)))
	n, _ := base64.RawStdEncoding.Decode(out, clean)
	return out[:n]
}

// encodeLatin1 keeps the low byte of every UTF-16 code unit.
func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			out = append(out, byte(hi), byte(lo))
			continue
		}
		out = append(out, byte(r))
	}
	return out
}

func decodeLatin1(p []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(p)
	if err != nil {
		runes := make([]rune, len(p))
		for i, c := range p {
			runes[i] = rune(c)
		}
		return string(runes)
	}
	return string(out)
}

func decodeASCII(p []byte) string {
	out := make([]byte, len(p))
	for i, c := range p {
		out[i] = c & 0x7F
	}
	return string(out)
}

func encodeUTF16LE(s string) []byte {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		units := utf16.Encode([]rune(s))
		out = make([]byte, 2*len(units))
		for i, u := range units {
			out[2*i] = byte(u)
			out[2*i+1] = byte(u >> 8)
		}
	}
	return nonNil(out)
}

func decodeUTF16LE(p []byte) string {
	p = p[:len(p)&^1]
	out, err := utf16le.NewDecoder().Bytes(p)
	if err != nil {
		return ""
	}
	return string(out)
}

func wholeUTF16(_ []byte, n int) int {
	return n &^ 1
}
