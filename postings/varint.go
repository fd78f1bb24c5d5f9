package postings

// Varints are little-endian 7-bit groups with the high bit set on every
// byte except the last. The value zero is written as the non-canonical
// pair 0x80 0x00: frames end with a bare 0x00 terminator, so no varint
// inside a frame body may consist of a lone zero byte. Two invariants
// keep the backward terminator scan in FindDoc honest: no varint body
// byte is ever 0x00, and the only varint ending in 0x00 is the zero
// escape, whose penultimate byte is always 0x80.
//
// Values are assumed to fit in 32 bits.

// maxUvarintLen is the worst case for a 32-bit value (5 groups of 7 bits).
const maxUvarintLen = 5

// putUvarint writes v into buf and returns the number of bytes written.
// buf must have room for maxUvarintLen bytes.
func putUvarint(buf []byte, v uint32) int {
	if v == 0 {
		buf[0] = 0x80
		buf[1] = 0x00
		return 2
	}
	n := 0
	for v > 0 {
		b := byte(v & 0x7f)
		v >>= 7
		if v > 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
	}
	return n
}

// appendUvarint appends the encoding of v to enc.
func appendUvarint(enc []byte, v uint32) []byte {
	var tmp [maxUvarintLen]byte
	n := putUvarint(tmp[:], v)
	return append(enc, tmp[:n]...)
}

// insertUvarint writes the encoding of v at offset at, shifting the tail
// of enc right to make room.
func insertUvarint(enc []byte, at int, v uint32) []byte {
	var tmp [maxUvarintLen]byte
	n := putUvarint(tmp[:], v)
	enc = append(enc, tmp[:n]...)
	copy(enc[at+n:], enc[at:])
	copy(enc[at:], tmp[:n])
	return enc
}

// readUvarint decodes the varint starting at index i and returns the
// value together with the index of the first byte after it. The zero
// escape decodes to zero without special handling.
func readUvarint(enc []byte, i int) (uint32, int) {
	var v uint32
	var shift uint
	for {
		b := enc[i]
		i++
		v |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i
		}
		shift += 7
	}
}
