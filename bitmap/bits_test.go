package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReader(t *testing.T) {
	r := newBitReader([]byte{0x12, 0x34, 0x50}, 4)

	var got []uint8
	for {
		v, ok := r.next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 0}, got)
}

func TestBitReaderWidth1(t *testing.T) {
	r := newBitReader([]byte{0xa5}, 1)

	var got []uint8
	for {
		v, ok := r.next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []uint8{1, 0, 1, 0, 0, 1, 0, 1}, got)
}

func TestBitWriter(t *testing.T) {
	w := newBitWriter(4)
	for _, v := range []uint8{0xa, 0xb, 0xc} {
		w.write(v)
	}
	// The odd final index leaves the low nibble zero.
	assert.Equal(t, []byte{0xab, 0xc0}, w.flush())
}

func TestBitCursorSymmetry(t *testing.T) {
	for _, tt := range []struct {
		width   uint
		indices []uint8
	}{
		{1, []uint8{1, 0, 1, 1, 0, 0, 1, 0}},
		{4, []uint8{0xf, 0x0, 0x7, 0x3}},
		{8, []uint8{0x00, 0x80, 0xff}},
	} {
		w := newBitWriter(tt.width)
		for _, v := range tt.indices {
			w.write(v)
		}
		packed := w.flush()

		r := newBitReader(packed, tt.width)
		for i, want := range tt.indices {
			v, ok := r.next()
			require.True(t, ok)
			assert.Equal(t, want, v, "index %d at width %d", i, tt.width)
		}
	}
}
