/*
Package bitmap implements a decoder and encoder for the Windows BMP
container format, BITMAPINFOHEADER variant.

A file is a 14 byte file header, a 40 byte info header, an optional
color table of 4 byte blue-green-red-reserved entries, and scanlines of
pixel data. Bit depths 1, 4 and 8 store bit-packed indices into the
color table, most significant bits first; depths 24 and 32 store
direct colors in blue-green-red[-alpha] order. Every scanline is
padded with zero bytes to a multiple of 4. Rows are stored bottom to
top unless the height is negative, and columns left to right unless
the width is negative.
*/
package bitmap

import "github.com/kmckinnon/bmpcat/color"

const (
	// Signature is the "BM" file signature read as a little-endian
	// 16-bit value.
	Signature = 0x4d42

	fileHeaderLen      = 14
	infoHeaderLen      = 40
	colorTableEntryLen = 4
)

// FormatError reports that the input is not a valid BMP.
type FormatError string

func (e FormatError) Error() string { return "bitmap: invalid format: " + string(e) }

// UnsupportedError reports that the input uses a valid but
// unimplemented BMP feature, as opposed to being malformed.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "bitmap: unsupported feature: " + string(e) }

// Header is the BMP file header.
type Header struct {
	// Signature should always be "BM".
	Signature uint16
	// FileSize is the size of the whole file: both headers, the
	// color table and the pixel data.
	FileSize uint32
	// Reserved is unused and unchecked.
	Reserved uint32
	// DataOffset is the offset from the start of the file to the
	// pixel data.
	DataOffset uint32
}

// InfoHeader is the 40 byte BITMAPINFOHEADER.
type InfoHeader struct {
	// Size of this header; 40 for this format version.
	Size uint32
	// Width in pixels. Negative width means columns are stored
	// right to left.
	Width int32
	// Height in pixels. Negative height means rows are stored top
	// to bottom instead of the default bottom to top.
	Height int32
	// Planes is unchecked.
	Planes uint16
	// BitDepth is one of 1, 4, 8, 16, 24 or 32. Depths 1, 4 and 8
	// index the color table; 24 and 32 carry direct color data.
	// 16 is not supported.
	BitDepth uint16
	// Compression is the compression code; only 0 (uncompressed)
	// is supported.
	Compression uint32
	// ImageSize is the compressed image size; may be 0 when
	// Compression is 0.
	ImageSize uint32
	// XResolution is the horizontal resolution in pixels per
	// meter. The sign is only consulted when comparing bitmaps
	// for equivalence, never during decoding.
	XResolution int32
	// YResolution is the vertical resolution in pixels per meter.
	YResolution int32
	// ColorsUsed is the number of colors used by the bitmap.
	ColorsUsed uint32
	// ImportantColors is 0 when every color is important.
	ImportantColors uint32
}

// RowOrder is the vertical traversal order of stored scanlines.
type RowOrder int

const (
	BottomUp RowOrder = iota
	TopDown
)

// ColumnOrder is the horizontal traversal order within a scanline.
type ColumnOrder int

const (
	LeftToRight ColumnOrder = iota
	RightToLeft
)

// Orientation is the traversal order implied by the sign of the info
// header's width and height fields.
type Orientation struct {
	Rows    RowOrder
	Columns ColumnOrder
}

// Orientation derives the stored pixel traversal order from the sign
// of the width and height fields.
func (h InfoHeader) Orientation() Orientation {
	o := Orientation{Rows: BottomUp, Columns: LeftToRight}
	if h.Height < 0 {
		o.Rows = TopDown
	}
	if h.Width < 0 {
		o.Columns = RightToLeft
	}
	return o
}

// ColorTable is the ordered palette referenced by indexed pixel data.
// Order of appearance is the index.
type ColorTable struct {
	Colors []color.RGBA
}

// Color returns the table entry at index i, or ok false when the
// table has no such entry.
func (t ColorTable) Color(i int) (color.RGBA, bool) {
	if i < 0 || i >= len(t.Colors) {
		return color.RGBA{}, false
	}
	return t.Colors[i], true
}

// PixelData holds either direct colors or color table indices,
// depending on the bit depth. Exactly one of the two slices is
// populated.
type PixelData struct {
	Colors  []color.RGBA
	Indices []uint8
}

// Indexed reports whether the pixel data is palette indices rather
// than direct colors.
func (p PixelData) Indexed() bool {
	return p.Indices != nil
}

// Len returns the number of pixels.
func (p PixelData) Len() int {
	if p.Indexed() {
		return len(p.Indices)
	}
	return len(p.Colors)
}

// Bitmap is a fully decoded BMP file.
type Bitmap struct {
	Header     Header
	InfoHeader InfoHeader
	ColorTable ColorTable
	Pixels     PixelData
}

// ConvertOptions carries the parameters needed to encode a pixel grid
// as a bitmap; they cannot be inferred from pixel data alone.
type ConvertOptions struct {
	BitDepth    uint16
	Compression uint32
	XResolution int32
	YResolution int32
}

func indexedDepth(depth uint16) bool {
	switch depth {
	case 1, 4, 8:
		return true
	}
	return false
}

// align4 rounds n up to the next multiple of 4.
func align4(n int) int {
	return (n + 3) &^ 3
}

func abs32(v int32) int {
	if v < 0 {
		return int(-int64(v))
	}
	return int(v)
}
