package color

import (
	"errors"
	"math"
)

// Space identifies one of the color representations in this package.
type Space int

const (
	SpaceRGB Space = iota
	SpaceXYZ
	SpaceLAB
	SpaceHSV
)

func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceXYZ:
		return "XYZ"
	case SpaceLAB:
		return "LAB"
	case SpaceHSV:
		return "HSV"
	}
	return "unknown"
}

// Color is implemented by every color representation in this package.
type Color interface {
	Space() Space
}

func (RGBA) Space() Space { return SpaceRGB }
func (XYZA) Space() Space { return SpaceXYZ }
func (LABA) Space() Space { return SpaceLAB }
func (HSVA) Space() Space { return SpaceHSV }

// LABOptions carries the white point reference LAB conversions divide
// the XYZ components by.
type LABOptions struct {
	RefX float64
	RefY float64
	RefZ float64
}

// UnsupportedConversionError reports a conversion between two spaces
// for which no converter exists. The conversion graph is deliberately
// partial; an absent edge is a first-class result, not an oversight.
type UnsupportedConversionError struct {
	From Space
	To   Space
}

func (e *UnsupportedConversionError) Error() string {
	return "color: unsupported conversion from " + e.From.String() + " to " + e.To.String()
}

var errMissingLABOptions = errors.New("color: LAB conversion requires a white point reference")

// Convert translates src into the target space. Only a subset of the
// directed pairs is implemented: RGB to XYZ, RGB to LAB, RGB to HSV and
// XYZ to LAB. Every other pair, same-space pairs included, fails with
// an *UnsupportedConversionError. opts is required for LAB targets and
// ignored otherwise.
func Convert(src Color, to Space, opts *LABOptions) (Color, error) {
	switch from := src.(type) {
	case RGBA:
		switch to {
		case SpaceXYZ:
			return from.XYZ(), nil
		case SpaceLAB:
			if opts == nil {
				return nil, errMissingLABOptions
			}
			return from.LAB(*opts), nil
		case SpaceHSV:
			return from.HSV(), nil
		}
	case XYZA:
		if to == SpaceLAB {
			if opts == nil {
				return nil, errMissingLABOptions
			}
			return from.LAB(*opts), nil
		}
	}
	return nil, &UnsupportedConversionError{From: src.Space(), To: to}
}

// XYZ converts the color to CIE XYZ by linearizing each channel with
// the sRGB gamma curve and applying the linear-RGB-to-XYZ matrix.
// Alpha passes through unchanged.
func (c RGBA) XYZ() XYZA {
	adj := func(channel uint8) float64 {
		scaled := float64(channel) / 255
		if scaled > 0.04045 {
			return math.Pow((scaled+0.055)/1.055, 2.4)
		}
		return scaled / 12.92
	}

	r := adj(c.Red)
	g := adj(c.Green)
	b := adj(c.Blue)

	return XYZA{
		X:     r*0.4124 + g*0.3576 + b*0.1805,
		Y:     r*0.2126 + g*0.7152 + b*0.0722,
		Z:     r*0.0193 + g*0.1192 + b*0.9505,
		Alpha: c.Alpha,
	}
}

// LAB converts the color to CIE LAB by way of CIE XYZ.
func (c RGBA) LAB(opts LABOptions) LABA {
	return c.XYZ().LAB(opts)
}

// LAB converts the color to CIE LAB relative to the white point in
// opts. Alpha passes through unchanged.
func (c XYZA) LAB(opts LABOptions) LABA {
	adj := func(t float64) float64 {
		if t > 0.008856 {
			return math.Cbrt(t)
		}
		return 7.787*t + 16.0/116.0
	}

	x := adj(c.X / opts.RefX)
	y := adj(c.Y / opts.RefY)
	z := adj(c.Z / opts.RefZ)

	return LABA{
		L:     116*y - 16,
		A:     500 * (x - y),
		B:     200 * (y - z),
		Alpha: c.Alpha,
	}
}

// HSV converts the color to HSV. Achromatic colors get hue 0 and
// saturation 0; otherwise the hue branch is chosen by whichever channel
// holds the maximum, and the result is normalized into (-1, 1).
func (c RGBA) HSV() HSVA {
	r := float64(c.Red) / 255
	g := float64(c.Green) / 255
	b := float64(c.Blue) / 255

	min := math.Min(r, math.Min(g, b))
	max := math.Max(r, math.Max(g, b))
	delta := max - min

	if delta == 0 {
		return HSVA{H: 0, S: 0, V: max, Alpha: c.Alpha}
	}

	deltaR := ((max-r)/6 + delta/2) / delta
	deltaG := ((max-g)/6 + delta/2) / delta
	deltaB := ((max-b)/6 + delta/2) / delta

	var h float64
	switch max {
	case r:
		h = deltaB - deltaG
	case g:
		h = 1.0/3 + deltaR - deltaB
	case b:
		h = 2.0/3 + deltaG - deltaR
	}

	switch {
	case h < 0:
		h++
	case h > 0:
		h--
	}

	return HSVA{H: h, S: delta / max, V: max, Alpha: c.Alpha}
}
