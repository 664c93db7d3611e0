package bitmap

import (
	"encoding/binary"
	"strconv"

	"github.com/kmckinnon/bmpcat/color"
)

type decoder struct {
	data   []byte
	offset int
}

func (d *decoder) uint16() uint16 {
	v := binary.LittleEndian.Uint16(d.data[d.offset:])
	d.offset += 2
	return v
}

func (d *decoder) uint32() uint32 {
	v := binary.LittleEndian.Uint32(d.data[d.offset:])
	d.offset += 4
	return v
}

func (d *decoder) int32() int32 {
	return int32(d.uint32())
}

func (d *decoder) remaining() int {
	return len(d.data) - d.offset
}

// take consumes up to n bytes, returning fewer when the buffer runs
// out.
func (d *decoder) take(n int) []byte {
	if r := d.remaining(); r < n {
		n = r
	}
	b := d.data[d.offset : d.offset+n]
	d.offset += n
	return b
}

func (d *decoder) header() Header {
	return Header{
		Signature:  d.uint16(),
		FileSize:   d.uint32(),
		Reserved:   d.uint32(),
		DataOffset: d.uint32(),
	}
}

func (d *decoder) infoHeader() InfoHeader {
	return InfoHeader{
		Size:            d.uint32(),
		Width:           d.int32(),
		Height:          d.int32(),
		Planes:          d.uint16(),
		BitDepth:        d.uint16(),
		Compression:     d.uint32(),
		ImageSize:       d.uint32(),
		XResolution:     d.int32(),
		YResolution:     d.int32(),
		ColorsUsed:      d.uint32(),
		ImportantColors: d.uint32(),
	}
}

// colorTable parses n bytes of 4 byte blue-green-red-reserved entries.
// A short trailing entry is zero filled.
func (d *decoder) colorTable(n int) ColorTable {
	raw := d.take(n)

	at := func(i int) uint8 {
		if i >= len(raw) {
			return 0
		}
		return raw[i]
	}

	colors := make([]color.RGBA, 0, (n+colorTableEntryLen-1)/colorTableEntryLen)
	for i := 0; i < len(raw); i += colorTableEntryLen {
		colors = append(colors, color.RGBA{
			Blue:  at(i),
			Green: at(i + 1),
			Red:   at(i + 2),
			Alpha: at(i + 3),
		})
	}

	return ColorTable{Colors: colors}
}

// indices unpacks bit-packed palette indices. Index bits past the row
// width and the zero bytes padding each scanline to a 4 byte boundary
// are structural, not pixel data, and are discarded. A final scanline
// cut short by the end of the buffer is truncated, not an error.
func (d *decoder) indices(width int, depth uint16) []uint8 {
	pixelsPerByte := 8 / int(depth)
	rowBytes := (width + pixelsPerByte - 1) / pixelsPerByte
	stride := align4(rowBytes)

	// Non-nil even when empty so the pixel data still reads as
	// indexed.
	indices := []uint8{}
	for d.remaining() > 0 {
		row := d.take(stride)
		if len(row) > rowBytes {
			row = row[:rowBytes]
		}
		r := newBitReader(row, uint(depth))
		for x := 0; x < width; x++ {
			v, ok := r.next()
			if !ok {
				break
			}
			indices = append(indices, v)
		}
	}
	return indices
}

// colors reads direct blue-green-red[-alpha] pixels. For 3 byte
// pixels alpha is synthesized as fully opaque. The same scanline
// padding and end-of-buffer truncation rules as for indices apply.
func (d *decoder) colors(width int, depth uint16) []color.RGBA {
	bytesPerPixel := int(depth) / 8
	stride := align4(width * bytesPerPixel)

	var colors []color.RGBA
	for d.remaining() > 0 {
		row := d.take(stride)
		for x := 0; x < width && (x+1)*bytesPerPixel <= len(row); x++ {
			px := row[x*bytesPerPixel:]
			c := color.RGBA{
				Blue:  px[0],
				Green: px[1],
				Red:   px[2],
				Alpha: 0xff,
			}
			if bytesPerPixel == 4 {
				c.Alpha = px[3]
			}
			colors = append(colors, c)
		}
	}
	return colors
}

// Decode parses a BMP file from data. The buffer must hold at least
// the file and info headers; pixel data cut short by the end of the
// buffer yields a short final scanline rather than an error, matching
// real-world encoders that omit final padding.
func Decode(data []byte) (*Bitmap, error) {
	if len(data) < fileHeaderLen+infoHeaderLen {
		return nil, FormatError("buffer shorter than the file and info headers")
	}

	d := &decoder{data: data}
	header := d.header()
	infoHeader := d.infoHeader()

	// Everything between the headers and the data offset is the
	// color table.
	tableLen := int(header.DataOffset) - d.offset
	if tableLen < 0 {
		return nil, FormatError("data offset points inside the info header")
	}
	if tableLen > d.remaining() {
		return nil, FormatError("data offset points past the end of the buffer")
	}

	var table ColorTable
	if tableLen > 0 {
		table = d.colorTable(tableLen)
	}

	if infoHeader.Compression != 0 {
		return nil, UnsupportedError("compression " + strconv.FormatUint(uint64(infoHeader.Compression), 10))
	}

	// A zero width makes every scanline zero bytes long; any pixel
	// data then could never be consumed.
	if infoHeader.Width == 0 {
		return nil, FormatError("zero width")
	}

	width := abs32(infoHeader.Width)

	var pixels PixelData
	switch {
	case indexedDepth(infoHeader.BitDepth):
		pixels.Indices = d.indices(width, infoHeader.BitDepth)
	case infoHeader.BitDepth == 16:
		return nil, UnsupportedError("16-bit pixel data")
	case infoHeader.BitDepth == 24 || infoHeader.BitDepth == 32:
		pixels.Colors = d.colors(width, infoHeader.BitDepth)
	default:
		return nil, UnsupportedError("bit depth " + strconv.FormatUint(uint64(infoHeader.BitDepth), 10))
	}

	return &Bitmap{
		Header:     header,
		InfoHeader: infoHeader,
		ColorTable: table,
		Pixels:     pixels,
	}, nil
}
