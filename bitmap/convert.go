package bitmap

import (
	"errors"

	"github.com/kmckinnon/bmpcat/color"
	"github.com/kmckinnon/bmpcat/image"
)

// ErrTooManyColors is returned by FromImage when a pixel grid holds
// more distinct colors than the chosen indexed bit depth's color
// table can carry.
var ErrTooManyColors = errors.New("bitmap: too many distinct colors for bit depth")

// FromImage builds a bitmap from a pixel grid. Indexed bit depths
// build the color table in first-occurrence order, scanning rows top
// to bottom; pixel rows are stored bottom to top as the positive
// height announces. The image size header field is left 0, as
// uncompressed encoders are allowed to do.
func FromImage(m *image.Image, opts ConvertOptions) (*Bitmap, error) {
	width, height := m.Width(), m.Height()

	var (
		table  []color.RGBA
		pixels PixelData
	)

	if indexedDepth(opts.BitDepth) {
		capacity := 1 << opts.BitDepth
		lookup := make(map[uint32]uint8)

		for y := 0; y < height; y++ {
			for _, px := range m.Row(y) {
				key := px.Uint32(true)
				if _, ok := lookup[key]; !ok {
					if len(table) >= capacity {
						return nil, ErrTooManyColors
					}
					lookup[key] = uint8(len(table))
					table = append(table, px)
				}
			}
		}

		indices := make([]uint8, 0, width*height)
		for y := height - 1; y >= 0; y-- {
			for _, px := range m.Row(y) {
				indices = append(indices, lookup[px.Uint32(true)])
			}
		}
		pixels.Indices = indices
	} else {
		colors := make([]color.RGBA, 0, width*height)
		for y := height - 1; y >= 0; y-- {
			colors = append(colors, m.Row(y)...)
		}
		pixels.Colors = colors
	}

	dataOffset := uint32(fileHeaderLen + infoHeaderLen + colorTableEntryLen*len(table))
	bytesPerPixel := (int(opts.BitDepth) + 7) / 8
	imageSize := uint32(align4(width*bytesPerPixel) * height)

	return &Bitmap{
		Header: Header{
			Signature:  Signature,
			FileSize:   dataOffset + imageSize,
			Reserved:   0,
			DataOffset: dataOffset,
		},
		InfoHeader: InfoHeader{
			Size:            infoHeaderLen,
			Width:           int32(width),
			Height:          int32(height),
			Planes:          1,
			BitDepth:        opts.BitDepth,
			Compression:     opts.Compression,
			ImageSize:       0,
			XResolution:     opts.XResolution,
			YResolution:     opts.YResolution,
			ColorsUsed:      uint32(len(table)),
			ImportantColors: 0,
		},
		ColorTable: ColorTable{Colors: table},
		Pixels:     pixels,
	}, nil
}

// ToImage builds a pixel grid from the bitmap, mapping the stored
// orientation onto the grid's top-to-bottom, left-to-right
// addressing. Indexed pixels are resolved through the color table;
// an index outside the table is a decode-time defect and panics.
func (b *Bitmap) ToImage() (*image.Image, error) {
	o := b.InfoHeader.Orientation()
	width := abs32(b.InfoHeader.Width)
	height := abs32(b.InfoHeader.Height)

	pixels := make([]color.RGBA, 0, width*height)
	for r := 0; r < height; r++ {
		j := r
		if o.Rows == TopDown {
			j = height - 1 - r
		}
		for c := 0; c < width; c++ {
			i := c
			if o.Columns == RightToLeft {
				i = width - 1 - c
			}

			// Scanlines are stored bottom row first, so grid
			// row j lives height-1-j rows into the flat
			// pixel sequence.
			index := width*(height-1-j) + i

			var px color.RGBA
			if b.Pixels.Indexed() {
				px = b.ColorTable.Colors[b.Pixels.Indices[index]]
			} else {
				px = b.Pixels.Colors[index]
			}
			pixels = append(pixels, px)
		}
	}

	return image.NewPixels(width, height, pixels), nil
}
