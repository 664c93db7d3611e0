package bmpcat

import (
	stdimage "image"
	stdcolor "image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/kmckinnon/bmpcat/color"
	"github.com/kmckinnon/bmpcat/image"
)

// DistinctColors counts the distinct colors in a grid.
func DistinctColors(m *image.Image) int {
	seen := make(map[color.RGBA]struct{})
	for y := 0; y < m.Height(); y++ {
		for _, px := range m.Row(y) {
			seen[px] = struct{}{}
		}
	}
	return len(seen)
}

// Quantize reduces the grid to at most maxColors distinct colors with
// median cut, so it fits an indexed bit depth's color table. The
// original grid is left untouched.
func Quantize(m *image.Image, maxColors int) *image.Image {
	src := stdimage.NewNRGBA(stdimage.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x, px := range m.Row(y) {
			src.SetNRGBA(x, y, stdcolor.NRGBA{R: px.Red, G: px.Green, B: px.Blue, A: px.Alpha})
		}
	}

	q := quantize.MedianCutQuantizer{}
	palette := q.Quantize(make(stdcolor.Palette, 0, maxColors), src)

	out := image.New(m.Width(), m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := range m.Row(y) {
			r, g, b, a := palette.Convert(src.NRGBAAt(x, y)).RGBA()
			out.Set(color.RGBA{
				Red:   uint8(r >> 8),
				Green: uint8(g >> 8),
				Blue:  uint8(b >> 8),
				Alpha: uint8(a >> 8),
			}, x, y)
		}
	}
	return out
}
