/*
Package image provides the dense pixel grid exchanged between the
bitmap codec and the terminal renderer.

The grid is a flat sequence of direct colors addressed as
width*y + x, with row 0 at the top; its length always equals
width times height.
*/
package image

import "github.com/kmckinnon/bmpcat/color"

// Image is a fixed-size grid of direct colors.
type Image struct {
	width  int
	height int
	pixels []color.RGBA
}

// New returns a width by height grid of zero-valued colors.
func New(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]color.RGBA, width*height),
	}
}

// NewPixels wraps an existing pixel sequence; len(pixels) must equal
// width*height.
func NewPixels(width, height int, pixels []color.RGBA) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

func (m *Image) index(x, y int) int {
	return m.width*y + x
}

// Width returns the number of columns in the grid.
func (m *Image) Width() int {
	return m.width
}

// Height returns the number of rows in the grid.
func (m *Image) Height() int {
	return m.height
}

// Len returns the number of pixels in the grid.
func (m *Image) Len() int {
	return m.width * m.height
}

// Get returns the color at (x, y), or ok false when the coordinate
// lies outside the grid.
func (m *Image) Get(x, y int) (color.RGBA, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return color.RGBA{}, false
	}
	return m.pixels[m.index(x, y)], true
}

// Set stores c at (x, y). Bounds are not checked; callers own the
// coordinate arithmetic.
func (m *Image) Set(c color.RGBA, x, y int) {
	m.pixels[m.index(x, y)] = c
}

// Row returns one scanline as a view over the backing buffer, not a
// copy; writes through the returned slice are visible in the grid.
func (m *Image) Row(y int) []color.RGBA {
	return m.pixels[m.index(0, y):m.index(m.width, y)]
}
