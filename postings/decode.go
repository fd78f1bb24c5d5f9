package postings

import "fmt"

// dataStart returns the offset of the first document frame, or -1 if the
// blob is too short to hold the lookup table it declares.
func dataStart(enc []byte) int {
	if len(enc) < 1+tableHdrLen {
		return -1
	}
	end := 1 + viewLookupTable(enc[1:]).byteSize()
	if len(enc) < end {
		return -1
	}
	return end
}

// Decode expands a blob back into the flat docid/pos pair stream it was
// encoded from, in the original order.
func Decode(enc []byte) ([]uint32, error) {
	start := dataStart(enc)
	if start < 0 {
		return nil, fmt.Errorf("postings: blob of %d bytes is truncated", len(enc))
	}
	fieldBits := enc[0]
	if fieldBits < 1 || fieldBits > 8 {
		return nil, fmt.Errorf("postings: invalid field bits %d", fieldBits)
	}
	var raw []uint32
	for off := start; off < len(enc); {
		raw, off = decodeFrame(raw, enc, off, fieldBits)
	}
	return raw, nil
}
