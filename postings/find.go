package postings

import "sort"

// FindDoc returns the byte offset at which id's frame begins within enc,
// or -1 if the blob has no frame for id.
//
// The lookup table narrows the search to one bucket. Within the bucket,
// the target offset is interpolated between the bucket's first frame and
// the first frame of the next populated bucket; from the interpolated
// point the scan walks backwards to the nearest honest frame terminator
// and resumes hopping frames from there. A zero byte only terminates a
// frame when the byte before it is not 0x80: otherwise it is the tail of
// an escaped zero varint.
func FindDoc(enc []byte, id uint32) int {
	if dataStart(enc) < 0 {
		return -1
	}
	table := viewLookupTable(enc[1:])
	startOff := table.get(id)
	if startOff <= 0 {
		return -1
	}
	start := int(startOff)
	curID, _ := ReadDoc(enc, start)
	if curID == id {
		return start
	}
	if curID < id {
		if nextOff := table.next(id); nextOff > 0 {
			nextID, _ := ReadDoc(enc, int(nextOff))
			// nextID lives in a later bucket, so nextID > id and the
			// products below fit in 64 bits.
			guess := start + int(uint64(int(nextOff)-start)*uint64(id-curID)/uint64(nextID-curID))
			for t := guess; t > start; t-- {
				if enc[t] != 0x00 || enc[t-1] == 0x80 {
					continue
				}
				d, _ := ReadDoc(enc, t+1)
				if d == id {
					return t + 1
				}
				if d < id {
					start = t + 1
					break
				}
				// d > id: keep scanning backwards. Reaching start
				// abandons the interpolation entirely.
			}
		}
	}
	for off := start; off < len(enc); {
		d, next := ReadDoc(enc, off)
		if d == id {
			return off
		}
		if d > id {
			return -1
		}
		off = next
	}
	return -1
}

// AppendLookup appends to dst the postings for id found in either blob
// and sorts the appended range by (docid, pos). Which blob contributed a
// posting is intentionally not preserved. dst is untouched when neither
// blob has a frame for id.
func AppendLookup(dst []uint32, enc1, enc2 []byte, id uint32) []uint32 {
	from := len(dst)
	dst = appendDocPostings(dst, enc1, id)
	dst = appendDocPostings(dst, enc2, id)
	if len(dst) == from {
		return dst
	}
	sort.Sort(pairsByDocIDPos(dst[from:]))
	return dst
}

// Lookup is AppendLookup into a fresh slice.
func Lookup(enc1, enc2 []byte, id uint32) []uint32 {
	return AppendLookup(nil, enc1, enc2, id)
}

func appendDocPostings(dst []uint32, enc []byte, id uint32) []uint32 {
	off := FindDoc(enc, id)
	if off < 0 {
		return dst
	}
	dst, _ = decodeFrame(dst, enc, off, enc[0])
	return dst
}
