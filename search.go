package binbuf

// indexOf scans b from byteOffset for needle. With last set it keeps
// scanning and returns the highest match. An empty needle matches at the
// (clamped) byteOffset. Negative offsets count from the end.
func (b *Buffer) indexOf(needle []byte, byteOffset int, last bool) int {
	n := b.Len()
	byteOffset = normalizeIndex(byteOffset, n)
	if len(needle) == 0 {
		return byteOffset
	}
	found := -1
	for i := byteOffset; i <= n-len(needle); i++ {
		j := 0
		for j < len(needle) && b.data[i+j] == needle[j] {
			j++
		}
		if j < len(needle) {
			continue
		}
		if !last {
			return i
		}
		found = i
	}
	return found
}

// IndexOf returns the first position at or after byteOffset where needle
// occurs, or -1.
func (b *Buffer) IndexOf(needle []byte, byteOffset int) int {
	return b.indexOf(needle, byteOffset, false)
}

// IndexOfString searches for s encoded with the named encoding.
func (b *Buffer) IndexOfString(s string, byteOffset int, encoding string) (int, error) {
	p, err := stringToBuffer(s, encoding)
	if err != nil {
		return -1, err
	}
	return b.indexOf(p, byteOffset, false), nil
}

// IndexOfByte searches for the low 8 bits of v.
func (b *Buffer) IndexOfByte(v, byteOffset int) int {
	return b.indexOf([]byte{byte(v)}, byteOffset, false)
}

// LastIndexOf returns the highest position at or after byteOffset where
// needle occurs, or -1.
func (b *Buffer) LastIndexOf(needle []byte, byteOffset int) int {
	return b.indexOf(needle, byteOffset, true)
}

func (b *Buffer) LastIndexOfString(s string, byteOffset int, encoding string) (int, error) {
	p, err := stringToBuffer(s, encoding)
	if err != nil {
		return -1, err
	}
	return b.indexOf(p, byteOffset, true), nil
}

func (b *Buffer) LastIndexOfByte(v, byteOffset int) int {
	return b.indexOf([]byte{byte(v)}, byteOffset, true)
}

// Includes reports whether IndexOf finds needle.
func (b *Buffer) Includes(needle []byte, byteOffset int) bool {
	return b.IndexOf(needle, byteOffset) != -1
}

func (b *Buffer) IncludesString(s string, byteOffset int, encoding string) (bool, error) {
	i, err := b.IndexOfString(s, byteOffset, encoding)
	return i != -1, err
}

func (b *Buffer) IncludesByte(v, byteOffset int) bool {
	return b.IndexOfByte(v, byteOffset) != -1
}
