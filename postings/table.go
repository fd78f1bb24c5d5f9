package postings

import (
	"encoding/binary"
	"math/bits"
)

// tableHdrLen covers hash_bits, offset_bits and the 32-bit minimum docid.
const tableHdrLen = 6

// lookupTable is the sparse docid-to-offset table written into a blob's
// prefix. The cell for a docid is (docid - min_docid) >> offset_bits;
// populated cells hold the offset of the first frame hashing to them,
// empty buckets hold zero.
//
// A table exists in two modes: owning (allocated by the encoder, which
// may set cells and dump the finished bytes) and borrowing (a read-only
// view over an encoded blob). set and dump panic on a borrowed table.
type lookupTable struct {
	data  []byte
	owned bool
}

// newLookupTable allocates an owning table with all cells zeroed.
func newLookupTable(hashBits, offsetBits uint8, minDocID uint32) *lookupTable {
	data := make([]byte, tableHdrLen+4<<hashBits)
	data[0] = hashBits
	data[1] = offsetBits
	binary.LittleEndian.PutUint32(data[2:6], minDocID)
	return &lookupTable{data: data, owned: true}
}

// viewLookupTable interprets the prefix of buf (a blob minus its leading
// field_bits byte) as a borrowed table.
func viewLookupTable(buf []byte) lookupTable {
	return lookupTable{data: buf}
}

func (t lookupTable) offsetBits() uint8 { return t.data[1] }

func (t lookupTable) minDocID() uint32 { return binary.LittleEndian.Uint32(t.data[2:6]) }

// count is the number of cells.
func (t lookupTable) count() int { return 1 << t.data[0] }

// byteSize is the full serialized size of the table.
func (t lookupTable) byteSize() int { return tableHdrLen + 4*t.count() }

// hash returns docid's bucket, which is negative for docids below the
// table's minimum and may be past the last cell for docids above it.
func (t lookupTable) hash(docid uint32) int {
	if docid < t.minDocID() {
		return -1
	}
	return int((docid - t.minDocID()) >> t.offsetBits())
}

func (t lookupTable) cell(h int) uint32 {
	off := tableHdrLen + 4*h
	return binary.LittleEndian.Uint32(t.data[off : off+4])
}

// get returns the stored frame offset for docid's bucket, zero for an
// empty bucket, or -1 when docid hashes outside the table.
func (t lookupTable) get(docid uint32) int64 {
	h := t.hash(docid)
	if h < 0 || h >= t.count() {
		return -1
	}
	return int64(t.cell(h))
}

// next returns the offset stored in the first populated bucket strictly
// after docid's, or -1 if there is none.
func (t lookupTable) next(docid uint32) int64 {
	h := t.hash(docid)
	if h < 0 || h >= t.count() {
		return -1
	}
	for h++; h < t.count(); h++ {
		if c := t.cell(h); c != 0 {
			return int64(c)
		}
	}
	return -1
}

// set registers the frame offset for docid's bucket. The encoder writes
// each bucket at most once, so the cell being overwritten is always zero.
func (t *lookupTable) set(docid uint32, offset int) {
	if !t.owned {
		panic("postings: set on a borrowed lookup table")
	}
	h := t.hash(docid)
	if h < 0 || h >= t.count() {
		panic("postings: docid hashes outside the lookup table")
	}
	binary.LittleEndian.PutUint32(t.data[tableHdrLen+4*h:], uint32(offset))
}

// dump copies the finished table into the blob prefix reserved for it.
func (t *lookupTable) dump(dst []byte) {
	if !t.owned {
		panic("postings: dump of a borrowed lookup table")
	}
	copy(dst, t.data)
}

// deriveTableBits picks the table geometry for a stream with uniqueDocs
// distinct documents spanning docidRange ids: roughly 32 documents per
// bucket, never fewer than 16 cells, and offset_bits wide enough that the
// largest docid still hashes inside the table.
func deriveTableBits(uniqueDocs, docidRange uint32) (hashBits, offsetBits uint8) {
	hb := bits.Len32(uniqueDocs) - 5
	if hb < 4 {
		hb = 4
	}
	ob := bits.Len32(docidRange) - hb
	if ob < 0 {
		ob = 0
	}
	return uint8(hb), uint8(ob)
}

// fieldBitsFor returns the number of bits needed to hold the largest
// observed field id, at least one.
func fieldBitsFor(maxFieldID uint32) uint8 {
	fb := bits.Len32(maxFieldID)
	if fb < 1 {
		fb = 1
	}
	return uint8(fb)
}
