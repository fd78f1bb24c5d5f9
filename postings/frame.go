package postings

// appendFrame encodes the run of postings sharing posts[i]'s docid onto
// enc and returns the extended blob plus the index of the first posting
// of the next document.
//
// Frame layout: varint docid, varint body size, the reordered first
// position, varint deltas for the remaining positions, one 0x00
// terminator. The body size covers everything between itself and the
// terminator, so readers can hop over a frame without decoding it.
func appendFrame(enc []byte, posts []Posting, i int, fieldBits uint8) ([]byte, int) {
	docid := posts[i].DocID
	enc = appendUvarint(enc, docid)
	sizeSlot := len(enc)
	// The field id is small and low-entropy; swapping it into the low
	// bits keeps the first-position varint short.
	first := posts[i]
	enc = appendUvarint(enc, first.InFieldPos()<<fieldBits|first.FieldID())
	prev := first.Pos
	i++
	for i < len(posts) && posts[i].DocID == docid {
		// Deltas are taken on the full packed position, not the
		// reordered form.
		enc = appendUvarint(enc, posts[i].Pos-prev)
		prev = posts[i].Pos
		i++
	}
	enc = insertUvarint(enc, sizeSlot, uint32(len(enc)-sizeSlot))
	enc = append(enc, 0x00)
	return enc, i
}

// decodeFrame expands the frame at off, appending docid/pos pairs to dst.
// Returns dst and the offset just past the frame's terminator.
func decodeFrame(dst []uint32, enc []byte, off int, fieldBits uint8) ([]uint32, int) {
	docid, idx := readUvarint(enc, off)
	var size uint32
	size, idx = readUvarint(enc, idx)
	bodyEnd := idx + int(size)
	var packed uint32
	packed, idx = readUvarint(enc, idx)
	fieldID := packed & (1<<fieldBits - 1)
	prev := fieldID<<fieldShift | packed>>fieldBits
	dst = append(dst, docid, prev)
	for idx < bodyEnd {
		var delta uint32
		delta, idx = readUvarint(enc, idx)
		prev += delta
		dst = append(dst, docid, prev)
	}
	return dst, bodyEnd + 1
}

// ReadDoc reads the docid of the frame at off without decoding its
// positions and returns the offset of the frame that follows. It is the
// cheap hop used by FindDoc and Match to walk frame to frame.
func ReadDoc(enc []byte, off int) (docid uint32, next int) {
	docid, idx := readUvarint(enc, off)
	var size uint32
	size, idx = readUvarint(enc, idx)
	return docid, idx + int(size) + 1
}
