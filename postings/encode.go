package postings

import (
	"errors"
	"fmt"
)

// ErrNoPostings is returned by Encode for an empty input stream.
var ErrNoPostings = errors.New("postings: no postings to encode")

// Encode packs a raw posting stream into a blob. raw is interpreted as
// docid/pos pairs, sorted ascending by (docid, pos) with no duplicate
// pair; the codec trusts its input. The caller owns the returned blob.
func Encode(raw []uint32) ([]byte, error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("postings: raw stream has odd length %d", len(raw))
	}
	posts := make([]Posting, len(raw)/2)
	for i := range posts {
		posts[i] = Posting{DocID: raw[2*i], Pos: raw[2*i+1]}
	}
	return EncodePostings(posts)
}

// EncodePostings is Encode over an already-split posting slice.
func EncodePostings(posts []Posting) ([]byte, error) {
	if len(posts) == 0 {
		return nil, ErrNoPostings
	}
	uniqueDocs, maxFieldID := prescan(posts)
	minDocID := posts[0].DocID
	maxDocID := posts[len(posts)-1].DocID
	hashBits, offsetBits := deriveTableBits(uniqueDocs, maxDocID-minDocID)
	fieldBits := fieldBitsFor(maxFieldID)
	table := newLookupTable(hashBits, offsetBits, minDocID)

	// Reserve the prefix now and write the finished table over it at
	// the end, so the frames never move.
	enc := make([]byte, 1+table.byteSize(), 1+table.byteSize()+2*len(posts))
	enc[0] = fieldBits
	for i := 0; i < len(posts); {
		docid := posts[i].DocID
		if table.get(docid) == 0 {
			// First frame of this bucket wins; later docids hashing
			// here are found by scanning forward from it.
			table.set(docid, len(enc))
		}
		enc, i = appendFrame(enc, posts, i, fieldBits)
	}
	table.dump(enc[1 : 1+table.byteSize()])
	return enc, nil
}

// prescan sizes the table before any bytes are written: the number of
// distinct docids and the largest field id seen.
func prescan(posts []Posting) (uniqueDocs, maxFieldID uint32) {
	for i, p := range posts {
		if i == 0 || p.DocID != posts[i-1].DocID {
			uniqueDocs++
		}
		if f := p.FieldID(); f > maxFieldID {
			maxFieldID = f
		}
	}
	return
}
