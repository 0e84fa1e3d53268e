package encoding

// FromBytes8 turns a []byte (as returned by a bitmap) into a uint8.
// Only the first byte is considered.
func FromBytes8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// ToBytes8 turns uint8 into []byte of len 1 (eg. 8 bits)
func ToBytes8(in uint8) []byte {
	return []byte{in}
}

// Split16 uint16 to two uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}

// ToID stores a non negative id as a uint16 where 0 means "nothing".
// Ids that do not fit are clamped.
func ToID(id int) uint16 {
	if id < 0 {
		return 0
	}
	if id >= 0xffff {
		return 0xffff
	}
	return uint16(id + 1)
}

// FromID is the inverse of ToID, returning -1 for "nothing"
func FromID(v uint16) int {
	return int(v) - 1
}
