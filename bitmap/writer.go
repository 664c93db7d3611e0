package bitmap

import (
	"bytes"
	"encoding/binary"
)

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) headers(b *Bitmap) error {
	if err := binary.Write(&e.buf, binary.LittleEndian, b.Header); err != nil {
		return err
	}
	return binary.Write(&e.buf, binary.LittleEndian, b.InfoHeader)
}

func (e *encoder) colorTable(t ColorTable) {
	for _, c := range t.Colors {
		e.buf.Write([]byte{c.Blue, c.Green, c.Red, c.Alpha})
	}
}

// pad zero-fills a scanline out to the next multiple of 4 bytes.
func (e *encoder) pad(rowBytes int) {
	for i := rowBytes; i < align4(rowBytes); i++ {
		e.buf.WriteByte(0)
	}
}

// indices packs one row of palette indices per scanline, most
// significant bits first. Trailing indices that do not fill a whole
// row are dropped, mirroring the decoder.
func (e *encoder) indices(b *Bitmap, width int) {
	depth := b.InfoHeader.BitDepth
	for start := 0; start+width <= len(b.Pixels.Indices); start += width {
		w := newBitWriter(uint(depth))
		for _, index := range b.Pixels.Indices[start : start+width] {
			w.write(index)
		}
		row := w.flush()
		e.buf.Write(row)
		e.pad(len(row))
	}
}

// colors writes one row of direct pixels per scanline in
// blue-green-red[-alpha] order; alpha is dropped unless the bit depth
// is 32.
func (e *encoder) colors(b *Bitmap, width int) {
	bytesPerPixel := (int(b.InfoHeader.BitDepth) + 7) / 8
	for start := 0; start+width <= len(b.Pixels.Colors); start += width {
		for _, c := range b.Pixels.Colors[start : start+width] {
			px := []byte{c.Blue, c.Green, c.Red, c.Alpha}
			e.buf.Write(px[:bytesPerPixel])
		}
		e.pad(width * bytesPerPixel)
	}
}

// Encode serializes the bitmap back to bytes. For a bitmap decoded
// from a well-formed uncompressed file the output reproduces the
// input byte for byte. Header fields are written as-is; no layout is
// recomputed.
func (b *Bitmap) Encode() ([]byte, error) {
	e := &encoder{}
	if err := e.headers(b); err != nil {
		return nil, err
	}
	e.colorTable(b.ColorTable)

	width := abs32(b.InfoHeader.Width)
	if width > 0 {
		if b.Pixels.Indexed() {
			if indexedDepth(b.InfoHeader.BitDepth) {
				e.indices(b, width)
			}
		} else {
			e.colors(b, width)
		}
	}

	return e.buf.Bytes(), nil
}
