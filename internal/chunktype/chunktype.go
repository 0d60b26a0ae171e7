package chunktype

import (
	"strings"
	"unicode/utf8"
)

// Size is the fixed width of a chunk type on the wire.
const Size = 4

// ChunkType is the 4-byte type field of a PNG chunk.
//
// The zero value holds four NUL bytes and is not valid. Values are
// comparable with == and safe to copy.
type ChunkType struct {
	b [Size]byte
}

// Parse builds a ChunkType from text. The length check is on bytes, so
// multi-byte text totalling four bytes reaches the per-byte check and fails
// there with a CharacterError.
func Parse(s string) (ChunkType, error) {
	if len(s) != Size {
		return ChunkType{}, &LengthError{Len: len(s)}
	}
	var ct ChunkType
	for i := 0; i < Size; i++ {
		if !IsValidByte(s[i]) {
			return ChunkType{}, &CharacterError{Byte: s[i], Index: i}
		}
		ct.b[i] = s[i]
	}
	return ct, nil
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string) ChunkType {
	ct, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ct
}

// FromBytes wraps raw bytes as read from a container. It never fails and
// does not validate; use IsValid to check the result.
func FromBytes(b [Size]byte) ChunkType {
	return ChunkType{b: b}
}

// Bytes returns the four raw bytes.
func (c ChunkType) Bytes() [Size]byte {
	return c.b
}

// IsValid reports whether every byte is an ASCII letter and the reserved
// bit is clear.
func (c ChunkType) IsValid() bool {
	for _, b := range c.b {
		if !IsValidByte(b) {
			return false
		}
	}
	return c.IsReservedBitValid()
}

// IsValidByte reports whether b is in A-Z (65-90) or a-z (97-122).
func IsValidByte(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}

// Equal reports whether both chunk types hold the same bytes.
func (c ChunkType) Equal(other ChunkType) bool {
	return c.b == other.b
}

// String renders the raw bytes as text. Each maximal invalid UTF-8
// subsequence is replaced by a single U+FFFD.
func (c ChunkType) String() string {
	raw := c.b[:]
	if utf8.Valid(raw) {
		return string(raw)
	}
	var sb strings.Builder
	sb.Grow(Size * utf8.UTFMax)
	for len(raw) > 0 {
		r, n := utf8.DecodeRune(raw)
		if r == utf8.RuneError && n == 1 {
			n = invalidPrefixLen(raw)
		}
		sb.WriteRune(r)
		raw = raw[n:]
	}
	return sb.String()
}

// invalidPrefixLen returns how many bytes of p, which does not start with a
// valid encoding, belong to the truncated sequence begun by p[0].
func invalidPrefixLen(p []byte) int {
	need, lo, hi := 0, byte(0x80), byte(0xbf)
	switch b := p[0]; {
	case 0xc2 <= b && b <= 0xdf:
		need = 1
	case b == 0xe0:
		need, lo = 2, 0xa0
	case b == 0xed:
		need, hi = 2, 0x9f
	case 0xe1 <= b && b <= 0xef:
		need = 2
	case b == 0xf0:
		need, lo = 3, 0x90
	case b == 0xf4:
		need, hi = 3, 0x8f
	case 0xf1 <= b && b <= 0xf3:
		need = 3
	default:
		return 1
	}
	n := 1
	for n <= need && n < len(p) {
		if p[n] < lo || p[n] > hi {
			break
		}
		n++
		lo, hi = 0x80, 0xbf
	}
	return n
}
