package bitmap

import (
	"testing"

	"github.com/kmckinnon/bmpcat/color"
	"github.com/kmckinnon/bmpcat/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{Red: r, Green: g, Blue: b, Alpha: 0xff}
}

// sample24Bytes is a 4x4 24-bit file with no color table. Scanlines
// are stored bottom to top and are exactly 12 bytes wide, so no
// padding is present.
func sample24Bytes() []byte {
	return []byte{
		0x42, 0x4d, // "BM"
		0x66, 0x00, 0x00, 0x00, // file size 102
		0x00, 0x00, 0x00, 0x00, // reserved
		0x36, 0x00, 0x00, 0x00, // data offset 54
		0x28, 0x00, 0x00, 0x00, // info header size 40
		0x04, 0x00, 0x00, 0x00, // width 4
		0x04, 0x00, 0x00, 0x00, // height 4
		0x01, 0x00, // planes
		0x18, 0x00, // bit depth 24
		0x00, 0x00, 0x00, 0x00, // compression
		0x00, 0x00, 0x00, 0x00, // image size
		0xc4, 0x0e, 0x00, 0x00, // x resolution 3780
		0xc4, 0x0e, 0x00, 0x00, // y resolution 3780
		0x00, 0x00, 0x00, 0x00, // colors used
		0x00, 0x00, 0x00, 0x00, // important colors
		0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x00, 0xff, 0x00, 0x00, 0xff, 0xff,
		0xff, 0x00, 0x00, 0xff, 0x00, 0xff, 0xff, 0xff, 0x00, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x00, 0x00, 0xcc, 0x00, 0xcc, 0x00, 0x00, 0xcc, 0xcc,
		0xcc, 0x00, 0x00, 0xcc, 0x00, 0xcc, 0xcc, 0xcc, 0x00, 0xcc, 0xcc, 0xcc,
	}
}

func sample24Bitmap() *Bitmap {
	return &Bitmap{
		Header: Header{
			Signature:  Signature,
			FileSize:   102,
			DataOffset: 54,
		},
		InfoHeader: InfoHeader{
			Size:        40,
			Width:       4,
			Height:      4,
			Planes:      1,
			BitDepth:    24,
			XResolution: 3780,
			YResolution: 3780,
		},
		Pixels: PixelData{
			Colors: []color.RGBA{
				rgb(0x00, 0x00, 0x00), rgb(0xff, 0x00, 0x00), rgb(0x00, 0xff, 0x00), rgb(0xff, 0xff, 0x00),
				rgb(0x00, 0x00, 0xff), rgb(0xff, 0x00, 0xff), rgb(0x00, 0xff, 0xff), rgb(0xff, 0xff, 0xff),
				rgb(0x00, 0x00, 0x00), rgb(0xcc, 0x00, 0x00), rgb(0x00, 0xcc, 0x00), rgb(0xcc, 0xcc, 0x00),
				rgb(0x00, 0x00, 0xcc), rgb(0xcc, 0x00, 0xcc), rgb(0x00, 0xcc, 0xcc), rgb(0xcc, 0xcc, 0xcc),
			},
		},
	}
}

// sample24Image is the same picture with row 0 at the top.
func sample24Image() *image.Image {
	return image.NewPixels(4, 4, []color.RGBA{
		rgb(0x00, 0x00, 0xcc), rgb(0xcc, 0x00, 0xcc), rgb(0x00, 0xcc, 0xcc), rgb(0xcc, 0xcc, 0xcc),
		rgb(0x00, 0x00, 0x00), rgb(0xcc, 0x00, 0x00), rgb(0x00, 0xcc, 0x00), rgb(0xcc, 0xcc, 0x00),
		rgb(0x00, 0x00, 0xff), rgb(0xff, 0x00, 0xff), rgb(0x00, 0xff, 0xff), rgb(0xff, 0xff, 0xff),
		rgb(0x00, 0x00, 0x00), rgb(0xff, 0x00, 0x00), rgb(0x00, 0xff, 0x00), rgb(0xff, 0xff, 0x00),
	})
}

// sampleIndexedBytes is a 3x2 8-bit file with a two entry color table
// and one pad byte per scanline.
func sampleIndexedBytes() []byte {
	return []byte{
		0x42, 0x4d, // "BM"
		0x46, 0x00, 0x00, 0x00, // file size 70
		0x00, 0x00, 0x00, 0x00, // reserved
		0x3e, 0x00, 0x00, 0x00, // data offset 62
		0x28, 0x00, 0x00, 0x00, // info header size 40
		0x03, 0x00, 0x00, 0x00, // width 3
		0x02, 0x00, 0x00, 0x00, // height 2
		0x01, 0x00, // planes
		0x08, 0x00, // bit depth 8
		0x00, 0x00, 0x00, 0x00, // compression
		0x00, 0x00, 0x00, 0x00, // image size
		0x00, 0x00, 0x00, 0x00, // x resolution
		0x00, 0x00, 0x00, 0x00, // y resolution
		0x02, 0x00, 0x00, 0x00, // colors used
		0x00, 0x00, 0x00, 0x00, // important colors
		0x10, 0x20, 0x30, 0x00, // table entry 0
		0x40, 0x50, 0x60, 0x00, // table entry 1
		0x00, 0x01, 0x00, 0x00, // bottom row + pad
		0x01, 0x01, 0x00, 0x00, // top row + pad
	}
}

func sampleIndexedBitmap() *Bitmap {
	return &Bitmap{
		Header: Header{
			Signature:  Signature,
			FileSize:   70,
			DataOffset: 62,
		},
		InfoHeader: InfoHeader{
			Size:       40,
			Width:      3,
			Height:     2,
			Planes:     1,
			BitDepth:   8,
			ColorsUsed: 2,
		},
		ColorTable: ColorTable{
			Colors: []color.RGBA{
				{Blue: 0x10, Green: 0x20, Red: 0x30},
				{Blue: 0x40, Green: 0x50, Red: 0x60},
			},
		},
		Pixels: PixelData{
			Indices: []uint8{0, 1, 0, 1, 1, 0},
		},
	}
}

func TestOrientation(t *testing.T) {
	for _, tt := range []struct {
		width  int32
		height int32
		want   Orientation
	}{
		{4, 4, Orientation{Rows: BottomUp, Columns: LeftToRight}},
		{4, -4, Orientation{Rows: TopDown, Columns: LeftToRight}},
		{-4, 4, Orientation{Rows: BottomUp, Columns: RightToLeft}},
		{-4, -4, Orientation{Rows: TopDown, Columns: RightToLeft}},
	} {
		h := InfoHeader{Width: tt.width, Height: tt.height}
		assert.Equal(t, tt.want, h.Orientation())
	}
}

func TestColorTableColor(t *testing.T) {
	table := sampleIndexedBitmap().ColorTable

	c, ok := table.Color(1)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{Blue: 0x40, Green: 0x50, Red: 0x60}, c)

	_, ok = table.Color(2)
	assert.False(t, ok)
	_, ok = table.Color(-1)
	assert.False(t, ok)
}

func TestPixelData(t *testing.T) {
	indexed := PixelData{Indices: []uint8{0, 1}}
	assert.True(t, indexed.Indexed())
	assert.Equal(t, 2, indexed.Len())

	direct := PixelData{Colors: []color.RGBA{{}, {}, {}}}
	assert.False(t, direct.Indexed())
	assert.Equal(t, 3, direct.Len())

	empty := PixelData{Indices: []uint8{}}
	assert.True(t, empty.Indexed())
	assert.Equal(t, 0, empty.Len())
}
