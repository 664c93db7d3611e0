/*
Package terminal paints a pixel grid onto a terminal.

Each pixel becomes a short "shade" string chosen by the pixel's
opacity, colored either with a 24-bit escape sequence when the
terminal supports truecolor or with the nearest of the 16 classic ANSI
colors otherwise.
*/
package terminal

import (
	"fmt"
	"io"
	"os"

	ansi "github.com/fatih/color"
	"github.com/rivo/uniseg"

	"github.com/kmckinnon/bmpcat/color"
	"github.com/kmckinnon/bmpcat/image"
)

// DefaultShades is an opacity ramp from fully opaque to nearly
// transparent, two cells per pixel.
var DefaultShades = []string{"██", "█▓", "▓▓", "▓▒", "▒▒", "▒░", "░░", "░ "}

// Settings control how a grid is painted.
type Settings struct {
	// UseTruecolor selects 24-bit escape sequences over the
	// 16 color palette.
	UseTruecolor bool
	// Shades are the strings representing pixel opacities, most
	// opaque first.
	Shades []string
}

// cellWidth is the displayed width of one pixel: the greatest common
// divisor of the shade strings' grapheme cluster counts.
func (s *Settings) cellWidth() int {
	if len(s.Shades) == 0 {
		return 0
	}

	gcd := func(a, b int) int {
		for b > 0 {
			a, b = b, a%b
		}
		return a
	}

	width := uniseg.GraphemeClusterCount(s.Shades[0])
	for _, shade := range s.Shades[1:] {
		width = gcd(width, uniseg.GraphemeClusterCount(shade))
	}
	return width
}

// shade picks the shade string for an opacity, dividing the alpha
// range into equal bands with the most opaque shade covering the top
// band. Fully transparent pixels render as bare whitespace. The
// result is doubled up until it covers width cells.
func shade(alpha uint8, shades []string, width int) string {
	if width == 0 {
		return ""
	}

	var cell string
	if alpha == 0 {
		cell = " "
	} else {
		ratio := float64(alpha) / 255
		n := float64(len(shades))
		for i := 1; i <= len(shades); i++ {
			lower := (n - float64(i)) / n
			upper := (n - float64(i) + 1) / n
			if ratio > lower && ratio <= upper {
				cell = shades[i-1]
				break
			}
		}
	}

	for cell != "" && uniseg.GraphemeClusterCount(cell) < width {
		cell += cell
	}
	return cell
}

// ansi16 is the 16 color palette with the direct color each attribute
// approximates.
var ansi16 = []struct {
	c    color.RGBA
	attr ansi.Attribute
}{
	{color.RGBA{Red: 0x00, Green: 0x00, Blue: 0x00}, ansi.FgBlack},
	{color.RGBA{Red: 0x00, Green: 0x00, Blue: 0x80}, ansi.FgBlue},
	{color.RGBA{Red: 0x00, Green: 0x80, Blue: 0x00}, ansi.FgGreen},
	{color.RGBA{Red: 0x00, Green: 0x80, Blue: 0x80}, ansi.FgCyan},
	{color.RGBA{Red: 0x80, Green: 0x00, Blue: 0x00}, ansi.FgRed},
	{color.RGBA{Red: 0x80, Green: 0x00, Blue: 0x80}, ansi.FgMagenta},
	{color.RGBA{Red: 0x80, Green: 0x80, Blue: 0x00}, ansi.FgYellow},
	{color.RGBA{Red: 0x80, Green: 0x80, Blue: 0x80}, ansi.FgWhite},
	{color.RGBA{Red: 0x00, Green: 0x00, Blue: 0xff}, ansi.FgHiBlue},
	{color.RGBA{Red: 0x00, Green: 0xff, Blue: 0x00}, ansi.FgHiGreen},
	{color.RGBA{Red: 0x00, Green: 0xff, Blue: 0xff}, ansi.FgHiCyan},
	{color.RGBA{Red: 0xff, Green: 0x00, Blue: 0x00}, ansi.FgHiRed},
	{color.RGBA{Red: 0xff, Green: 0x00, Blue: 0xff}, ansi.FgHiMagenta},
	{color.RGBA{Red: 0xff, Green: 0xff, Blue: 0x00}, ansi.FgHiYellow},
	{color.RGBA{Red: 0xc0, Green: 0xc0, Blue: 0xc0}, ansi.FgHiBlack},
	{color.RGBA{Red: 0xff, Green: 0xff, Blue: 0xff}, ansi.FgHiWhite},
}

// nearestANSI returns the palette attribute with the smallest
// Euclidean distance to c.
func nearestANSI(c color.RGBA) ansi.Attribute {
	best := ansi16[0].attr
	bestDistance := c.DistanceEuclidean(ansi16[0].c)
	for _, candidate := range ansi16[1:] {
		if d := c.DistanceEuclidean(candidate.c); d < bestDistance {
			best, bestDistance = candidate.attr, d
		}
	}
	return best
}

// Draw paints the grid to w, one terminal line per pixel row.
func Draw(w io.Writer, m *image.Image, s *Settings) {
	width := s.cellWidth()

	fmt.Fprintln(w)
	for y := 0; y < m.Height(); y++ {
		fmt.Fprintln(w)
		for x := 0; x < m.Width(); x++ {
			px, _ := m.Get(x, y)
			cell := shade(px.Alpha, s.Shades, width)

			if px.Alpha == 0 {
				fmt.Fprint(w, cell)
				continue
			}
			if s.UseTruecolor {
				ansi.RGB(int(px.Red), int(px.Green), int(px.Blue)).Fprint(w, cell)
			} else {
				ansi.New(nearestANSI(px)).Fprint(w, cell)
			}
		}
	}
	fmt.Fprintln(w)
}

// TruecolorSupported reports whether COLORTERM advertises 24-bit
// color.
func TruecolorSupported() bool {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return true
	}
	return false
}
