package tile

// Shift returns a copy of data with every byte shifted left by s bits. The
// bits shifted out of the top of a byte become the low bits of the byte
// that follows it; the first byte receives zeroes and nothing wraps around
// from the last byte. Only the low 3 bits of s are used.
func Shift(data []byte, s uint) []byte {
	s &= 0x07

	out := make([]byte, len(data))
	if s == 0 {
		copy(out, data)
		return out
	}

	var carry byte
	for i, b := range data {
		out[i] = b<<s | carry
		carry = b >> (8 - s)
	}
	return out
}
