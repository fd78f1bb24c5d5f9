package postings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUvarint_ZeroEscape(t *testing.T) {
	require.Equal(t, []byte{0x80, 0x00}, appendUvarint(nil, 0))
}

func TestAppendUvarint_Fixtures(t *testing.T) {
	cases := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x80, 0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{1<<14 - 1, []byte{0xff, 0x7f}},
		{1 << 14, []byte{0x80, 0x80, 0x01}},
		{1<<21 - 1, []byte{0xff, 0xff, 0x7f}},
		{1 << 21, []byte{0x80, 0x80, 0x80, 0x01}},
		{1<<28 - 1, []byte{0xff, 0xff, 0xff, 0x7f}},
		{1 << 28, []byte{0x80, 0x80, 0x80, 0x80, 0x01}},
		{^uint32(0), []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, appendUvarint(nil, tc.v), "value %d", tc.v)
	}
}

func TestReadUvarint_RoundTrip(t *testing.T) {
	values := []uint32{
		0, 1, 2, 0x7f, 0x80, 0x81, 300, 1<<14 - 1, 1 << 14,
		1<<21 - 1, 1 << 21, 1<<24 - 1, 1 << 24, 1<<28 - 1, 1 << 28,
		^uint32(0) - 1, ^uint32(0),
	}
	for _, v := range values {
		enc := appendUvarint(nil, v)
		got, next := readUvarint(enc, 0)
		require.Equal(t, v, got)
		require.Equal(t, len(enc), next)
	}
}

func TestReadUvarint_MidStream(t *testing.T) {
	enc := appendUvarint(nil, 7)
	mark := len(enc)
	enc = appendUvarint(enc, 0)
	enc = appendUvarint(enc, 1<<20)

	v, next := readUvarint(enc, mark)
	require.Equal(t, uint32(0), v)
	v, next = readUvarint(enc, next)
	require.Equal(t, uint32(1<<20), v)
	require.Equal(t, len(enc), next)
}

func TestInsertUvarint_ShiftsTail(t *testing.T) {
	enc := []byte{0x01, 0x02, 0x03}
	enc = insertUvarint(enc, 1, 300)
	assert.Equal(t, []byte{0x01, 0xac, 0x02, 0x02, 0x03}, enc)

	enc = []byte{0x01, 0x02}
	enc = insertUvarint(enc, 2, 5)
	assert.Equal(t, []byte{0x01, 0x02, 0x05}, enc)

	enc = []byte{0x09}
	enc = insertUvarint(enc, 0, 0)
	assert.Equal(t, []byte{0x80, 0x00, 0x09}, enc)
}

// The backward terminator scan in FindDoc relies on two properties of
// every encoding: no byte of a varint body is 0x00, and the only varint
// whose last byte is 0x00 is the zero escape, whose preceding byte is
// 0x80.
func TestUvarint_TerminatorInvariants(t *testing.T) {
	check := func(v uint32) {
		enc := appendUvarint(nil, v)
		for i, b := range enc {
			if i == len(enc)-1 {
				continue
			}
			require.NotZero(t, b, "value %d has a zero continuation byte", v)
		}
		if last := enc[len(enc)-1]; last == 0x00 {
			require.Equal(t, uint32(0), v)
			require.Equal(t, byte(0x80), enc[len(enc)-2])
		}
	}
	for v := uint32(0); v < 1<<17; v++ {
		check(v)
	}
	for _, v := range []uint32{1<<24 - 1, 1 << 24, 1<<28 - 1, 1 << 28, ^uint32(0)} {
		check(v)
	}
}
