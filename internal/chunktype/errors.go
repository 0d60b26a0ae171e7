package chunktype

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength    = errors.New("chunktype: invalid length")
	ErrInvalidCharacter = errors.New("chunktype: invalid character")
	ErrShortRead        = errors.New("chunktype: short read")
)

// LengthError reports input that was not exactly Size bytes long.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("chunktype: length must be %d, got %d", Size, e.Len)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// CharacterError reports the first byte outside A-Z / a-z.
type CharacterError struct {
	Byte  byte
	Index int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("chunktype: invalid character %d (%q) at index %d", e.Byte, e.Byte, e.Index)
}

func (e *CharacterError) Unwrap() error { return ErrInvalidCharacter }
