package postings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTableBits(t *testing.T) {
	{
		// Tiny inputs bottom out at 16 cells.
		hb, ob := deriveTableBits(1, 0)
		assert.Equal(t, uint8(4), hb)
		assert.Equal(t, uint8(0), ob)
	}
	{
		// ~32 documents per bucket.
		hb, _ := deriveTableBits(10000, 1<<20)
		assert.Equal(t, uint8(9), hb)
	}
	{
		// A range that is an exact power of two must still hash inside
		// the table.
		hb, ob := deriveTableBits(20, 16)
		assert.Equal(t, uint8(4), hb)
		assert.Equal(t, uint8(1), ob)
	}

	// The largest docid always lands in the last cell or earlier.
	cases := []struct{ u, d uint32 }{
		{1, 0}, {2, 1}, {31, 30}, {32, 31}, {33, 4096},
		{1000, 999}, {1000, 1 << 16}, {10000, 1<<16 - 1},
		{100000, 1 << 24}, {1 << 20, ^uint32(0)},
	}
	for _, tc := range cases {
		hb, ob := deriveTableBits(tc.u, tc.d)
		require.Less(t, int(tc.d>>ob), 1<<hb, "u=%d d=%d", tc.u, tc.d)
	}
}

func TestFieldBitsFor(t *testing.T) {
	assert.Equal(t, uint8(1), fieldBitsFor(0))
	assert.Equal(t, uint8(1), fieldBitsFor(1))
	assert.Equal(t, uint8(2), fieldBitsFor(2))
	assert.Equal(t, uint8(2), fieldBitsFor(3))
	assert.Equal(t, uint8(3), fieldBitsFor(4))
	assert.Equal(t, uint8(8), fieldBitsFor(0xff))
}

func TestLookupTable_GetSetNext(t *testing.T) {
	table := newLookupTable(4, 2, 100)
	require.Equal(t, 16, table.count())
	require.Equal(t, tableHdrLen+64, table.byteSize())

	// Bucket 0 spans docids 100..103.
	table.set(100, 71)
	for id := uint32(100); id <= 103; id++ {
		assert.Equal(t, int64(71), table.get(id))
	}
	// Below the minimum docid there is no bucket.
	assert.Equal(t, int64(-1), table.get(99))
	assert.Equal(t, int64(-1), table.get(0))
	// Past the last cell there is no bucket either.
	assert.Equal(t, int64(-1), table.get(100+16*4))
	// An untouched bucket reads as zero.
	assert.Equal(t, int64(0), table.get(104))

	// next skips empty buckets and runs off the end.
	table.set(108, 90) // bucket 2
	assert.Equal(t, int64(90), table.next(100))
	assert.Equal(t, int64(90), table.next(104))
	assert.Equal(t, int64(-1), table.next(108))
	assert.Equal(t, int64(-1), table.next(99))
}

func TestLookupTable_ViewParity(t *testing.T) {
	owner := newLookupTable(5, 3, 1234)
	owner.set(1234, 500)
	owner.set(1234+31*8, 900)

	blob := make([]byte, 1+owner.byteSize())
	blob[0] = 2 // field_bits, opaque to the table
	owner.dump(blob[1:])

	view := viewLookupTable(blob[1:])
	require.Equal(t, owner.count(), view.count())
	require.Equal(t, owner.byteSize(), view.byteSize())
	require.Equal(t, uint32(1234), view.minDocID())
	assert.Equal(t, int64(500), view.get(1234))
	assert.Equal(t, int64(900), view.get(1234+31*8))
	assert.Equal(t, int64(900), view.next(1234))
	assert.Equal(t, int64(-1), view.next(1234+31*8))

	require.Panics(t, func() { view.set(1234, 1) })
	require.Panics(t, func() { view.dump(make([]byte, view.byteSize())) })
}

func TestLookupTable_SetOutOfRangePanics(t *testing.T) {
	table := newLookupTable(4, 0, 10)
	require.Panics(t, func() { table.set(9, 1) })
	require.Panics(t, func() { table.set(10+16, 1) })
}
