package bitmap

// bitReader unpacks fixed-width palette indices packed most
// significant bits first, tracking the bits remaining in the current
// byte. width must be 1, 4 or 8.
type bitReader struct {
	width uint
	data  []byte
	pos   int
	left  uint
}

func newBitReader(data []byte, width uint) *bitReader {
	return &bitReader{width: width, data: data, left: 8}
}

// next returns the next index, or ok false once the data is
// exhausted.
func (r *bitReader) next() (uint8, bool) {
	if r.left < r.width {
		r.pos++
		r.left = 8
	}
	if r.pos >= len(r.data) {
		return 0, false
	}
	r.left -= r.width
	return r.data[r.pos] >> r.left & (1<<r.width - 1), true
}

// bitWriter is the inverse of bitReader: it packs fixed-width indices
// most significant bits first, zero-filling any unused low bits of the
// final byte.
type bitWriter struct {
	width uint
	out   []byte
	cur   byte
	left  uint
}

func newBitWriter(width uint) *bitWriter {
	return &bitWriter{width: width, left: 8}
}

func (w *bitWriter) write(v uint8) {
	w.left -= w.width
	w.cur |= v & (1<<w.width - 1) << w.left
	if w.left == 0 {
		w.out = append(w.out, w.cur)
		w.cur = 0
		w.left = 8
	}
}

// flush appends any partially filled byte and returns the packed
// bytes.
func (w *bitWriter) flush() []byte {
	if w.left < 8 {
		w.out = append(w.out, w.cur)
		w.cur = 0
		w.left = 8
	}
	return w.out
}
