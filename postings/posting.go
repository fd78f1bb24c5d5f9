package postings

// Posting is one occurrence of a keyword: the document it occurred in and
// the packed position of the occurrence. Pos holds the field identifier
// in its high 8 bits and the in-field position in the low 24 bits.
type Posting struct {
	DocID uint32
	Pos   uint32
}

const (
	fieldShift  = 24
	inFieldMask = 1<<fieldShift - 1
)

// FieldID returns the field identifier packed into the position.
func (p Posting) FieldID() uint32 { return p.Pos >> fieldShift }

// InFieldPos returns the in-field position.
func (p Posting) InFieldPos() uint32 { return p.Pos & inFieldMask }

// PackPos packs a field identifier and an in-field position into the 8:24
// wire form; panics if either does not fit its field.
func PackPos(fieldID, inField uint32) uint32 {
	if fieldID > 0xff {
		panic("postings: field id does not fit in 8 bits")
	}
	if inField > inFieldMask {
		panic("postings: in-field position does not fit in 24 bits")
	}
	return fieldID<<fieldShift | inField
}

// pairsByDocIDPos sorts an interleaved docid/pos stream pair-wise by
// (docid, pos), the input order of a raw posting stream.
type pairsByDocIDPos []uint32

func (p pairsByDocIDPos) Len() int { return len(p) / 2 }

func (p pairsByDocIDPos) Less(i, j int) bool {
	if p[2*i] != p[2*j] {
		return p[2*i] < p[2*j]
	}
	return p[2*i+1] < p[2*j+1]
}

func (p pairsByDocIDPos) Swap(i, j int) {
	p[2*i], p[2*j] = p[2*j], p[2*i]
	p[2*i+1], p[2*j+1] = p[2*j+1], p[2*i+1]
}
