package bitmap

import "github.com/kmckinnon/bmpcat/color"

// signsDiffer reports whether exactly one of the two values is
// negative.
func signsDiffer(a, b int32) bool {
	return (a < 0) != (b < 0)
}

// normalizedPixels resolves the bitmap's pixels to colors in a
// canonical traversal order. Rows are reversed when the height sign
// disagrees with the vertical resolution sign, and columns when the
// width sign disagrees with the horizontal resolution sign; this
// resolution-sign mirroring is a comparison aid only and plays no
// part in decoding.
func normalizedPixels(b *Bitmap) [][]color.RGBA {
	width := abs32(b.InfoHeader.Width)
	if width == 0 {
		return nil
	}

	resolve := func(index int) color.RGBA {
		if b.Pixels.Indexed() {
			c, _ := b.ColorTable.Color(int(b.Pixels.Indices[index]))
			return c
		}
		return b.Pixels.Colors[index]
	}

	count := b.Pixels.Len() / width
	rows := make([][]color.RGBA, 0, count)
	for r := 0; r < count; r++ {
		row := make([]color.RGBA, width)
		for c := 0; c < width; c++ {
			row[c] = resolve(r*width + c)
		}
		if signsDiffer(b.InfoHeader.Width, b.InfoHeader.XResolution) {
			for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		rows = append(rows, row)
	}

	if signsDiffer(b.InfoHeader.Height, b.InfoHeader.YResolution) {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	return rows
}

func sameColorSet(a, b []color.RGBA) bool {
	set := func(colors []color.RGBA) map[color.RGBA]struct{} {
		m := make(map[color.RGBA]struct{}, len(colors))
		for _, c := range colors {
			m[c] = struct{}{}
		}
		return m
	}

	sa, sb := set(a), set(b)
	if len(sa) != len(sb) {
		return false
	}
	for c := range sa {
		if _, ok := sb[c]; !ok {
			return false
		}
	}
	return true
}

func absEqual(a, b int32) bool {
	return a == b || int64(a) == -int64(b)
}

// Equivalent reports whether two bitmaps describe the same picture,
// even when their stored layouts differ: signed header fields may
// disagree in sign when mirroring cancels out, color tables are
// compared as sets, and pixels are compared after normalizing each
// bitmap's orientation.
func Equivalent(a, b *Bitmap) bool {
	if a.Header.Signature != b.Header.Signature ||
		a.Header.FileSize != b.Header.FileSize ||
		a.Header.Reserved != b.Header.Reserved ||
		a.Header.DataOffset != b.Header.DataOffset {
		return false
	}

	ah, bh := a.InfoHeader, b.InfoHeader
	if ah.Size != bh.Size ||
		ah.Planes != bh.Planes ||
		ah.BitDepth != bh.BitDepth ||
		ah.Compression != bh.Compression ||
		ah.ImageSize != bh.ImageSize {
		return false
	}
	if !absEqual(ah.Width, bh.Width) ||
		!absEqual(ah.Height, bh.Height) ||
		!absEqual(ah.XResolution, bh.XResolution) ||
		!absEqual(ah.YResolution, bh.YResolution) {
		return false
	}

	// The color table and its counts only carry meaning for
	// indexed depths.
	if indexedDepth(ah.BitDepth) {
		if ah.ColorsUsed != bh.ColorsUsed || ah.ImportantColors != bh.ImportantColors {
			return false
		}
		if !sameColorSet(a.ColorTable.Colors, b.ColorTable.Colors) {
			return false
		}
	}

	if a.Pixels.Indexed() != b.Pixels.Indexed() {
		return false
	}

	rowsA := normalizedPixels(a)
	rowsB := normalizedPixels(b)
	if len(rowsA) != len(rowsB) {
		return false
	}
	for i := range rowsA {
		if len(rowsA[i]) != len(rowsB[i]) {
			return false
		}
		for j := range rowsA[i] {
			if rowsA[i][j] != rowsB[i][j] {
				return false
			}
		}
	}

	return true
}
