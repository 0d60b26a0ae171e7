package chunktype

// caseBit is bit 5 of each byte: clear for uppercase, set for lowercase.
const caseBit = 0x20

// Byte positions of the property bits.
const (
	ancillaryByte = 0
	privateByte   = 1
	reservedByte  = 2
	safeCopyByte  = 3
)

// Flags is a snapshot of the four property bits.
type Flags struct {
	Critical         bool `json:"critical"`
	Public           bool `json:"public"`
	ReservedBitValid bool `json:"reserved_bit_valid"`
	SafeToCopy       bool `json:"safe_to_copy"`
}

// flag reads the case bit of byte i. setMeans is the answer when the bit
// is set (lowercase); the clear state answers the opposite.
func (c ChunkType) flag(i int, setMeans bool) bool {
	if c.b[i]&caseBit != 0 {
		return setMeans
	}
	return !setMeans
}

// IsCritical: uppercase first letter. Ancillary chunks are lowercase.
func (c ChunkType) IsCritical() bool {
	return c.flag(ancillaryByte, false)
}

// IsPublic: uppercase second letter. Private chunks are lowercase.
func (c ChunkType) IsPublic() bool {
	return c.flag(privateByte, false)
}

// IsReservedBitValid: the third letter must be uppercase in conforming files.
func (c ChunkType) IsReservedBitValid() bool {
	return c.flag(reservedByte, false)
}

// IsSafeToCopy: lowercase fourth letter. Uppercase means unsafe to copy.
func (c ChunkType) IsSafeToCopy() bool {
	return c.flag(safeCopyByte, true)
}

// Flags returns all four property bits at once.
func (c ChunkType) Flags() Flags {
	return Flags{
		Critical:         c.IsCritical(),
		Public:           c.IsPublic(),
		ReservedBitValid: c.IsReservedBitValid(),
		SafeToCopy:       c.IsSafeToCopy(),
	}
}
