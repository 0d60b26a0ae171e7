package chunktype

import (
	"errors"
	"io"
)

// MarshalText emits the four bytes. Only alphabetic types have a text form.
func (c ChunkType) MarshalText() ([]byte, error) {
	for i, b := range c.b {
		if !IsValidByte(b) {
			return nil, &CharacterError{Byte: b, Index: i}
		}
	}
	out := c.b
	return out[:], nil
}

// UnmarshalText validates like Parse.
func (c *ChunkType) UnmarshalText(text []byte) error {
	ct, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

func (c ChunkType) MarshalBinary() ([]byte, error) {
	out := c.b
	return out[:], nil
}

// UnmarshalBinary keeps the bytes as-is, like FromBytes. Only the length
// is checked.
func (c *ChunkType) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return &LengthError{Len: len(data)}
	}
	copy(c.b[:], data)
	return nil
}

// Read takes the next Size bytes from r without validating them.
func Read(r io.Reader) (ChunkType, error) {
	var buf [Size]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ChunkType{}, ErrShortRead
		}
		return ChunkType{}, err
	}
	return FromBytes(buf), nil
}

func (c ChunkType) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.b[:])
	return int64(n), err
}
