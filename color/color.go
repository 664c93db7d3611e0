/*
Package color implements the color representations used by the bitmap
codec and the terminal renderer: direct 8-bit RGBA plus the
device-independent CIE XYZ, CIE LAB and HSV spaces.

Every representation carries an 8-bit alpha channel and supports
Euclidean and Manhattan distance over its three chromatic components;
alpha never contributes to distance.
*/
package color

import "math"

// RGBA is a direct color; each channel is a literal 8-bit intensity.
type RGBA struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha uint8
}

// XYZA is a color in the CIE XYZ space.
type XYZA struct {
	X     float64
	Y     float64
	Z     float64
	Alpha uint8
}

// LABA is a color in the CIE LAB space.
type LABA struct {
	L     float64
	A     float64
	B     float64
	Alpha uint8
}

// HSVA is a color in the HSV space. The hue is normalized onto the unit
// circle as a value in (-1, 1) rather than degrees.
type HSVA struct {
	H     float64
	S     float64
	V     float64
	Alpha uint8
}

func euclidean(a0, a1, a2, b0, b1, b2 float64) float64 {
	return math.Sqrt((a0-b0)*(a0-b0) + (a1-b1)*(a1-b1) + (a2-b2)*(a2-b2))
}

func manhattan(a0, a1, a2, b0, b1, b2 float64) float64 {
	return math.Abs(a0-b0) + math.Abs(a1-b1) + math.Abs(a2-b2)
}

// DistanceEuclidean returns the Euclidean distance between the red,
// green and blue channels of c and other.
func (c RGBA) DistanceEuclidean(other RGBA) float64 {
	return euclidean(float64(c.Red), float64(c.Green), float64(c.Blue),
		float64(other.Red), float64(other.Green), float64(other.Blue))
}

// DistanceManhattan returns the Manhattan distance between the red,
// green and blue channels of c and other.
func (c RGBA) DistanceManhattan(other RGBA) float64 {
	return manhattan(float64(c.Red), float64(c.Green), float64(c.Blue),
		float64(other.Red), float64(other.Green), float64(other.Blue))
}

func (c XYZA) DistanceEuclidean(other XYZA) float64 {
	return euclidean(c.X, c.Y, c.Z, other.X, other.Y, other.Z)
}

func (c XYZA) DistanceManhattan(other XYZA) float64 {
	return manhattan(c.X, c.Y, c.Z, other.X, other.Y, other.Z)
}

func (c LABA) DistanceEuclidean(other LABA) float64 {
	return euclidean(c.L, c.A, c.B, other.L, other.A, other.B)
}

func (c LABA) DistanceManhattan(other LABA) float64 {
	return manhattan(c.L, c.A, c.B, other.L, other.A, other.B)
}

func (c HSVA) DistanceEuclidean(other HSVA) float64 {
	return euclidean(c.H, c.S, c.V, other.H, other.S, other.V)
}

func (c HSVA) DistanceManhattan(other HSVA) float64 {
	return manhattan(c.H, c.S, c.V, other.H, other.S, other.V)
}

// Uint32 packs the color into a 32-bit value. With littleEndian false
// the alpha channel occupies the most significant byte, followed by
// red, green and blue; littleEndian reverses the byte order.
func (c RGBA) Uint32(littleEndian bool) uint32 {
	if littleEndian {
		return uint32(c.Alpha) |
			uint32(c.Red)<<8 |
			uint32(c.Green)<<16 |
			uint32(c.Blue)<<24
	}
	return uint32(c.Alpha)<<24 |
		uint32(c.Red)<<16 |
		uint32(c.Green)<<8 |
		uint32(c.Blue)
}

// RGBAFromUint32 is the inverse of RGBA.Uint32.
func RGBAFromUint32(v uint32, littleEndian bool) RGBA {
	if littleEndian {
		return RGBA{
			Alpha: uint8(v),
			Red:   uint8(v >> 8),
			Green: uint8(v >> 16),
			Blue:  uint8(v >> 24),
		}
	}
	return RGBA{
		Alpha: uint8(v >> 24),
		Red:   uint8(v >> 16),
		Green: uint8(v >> 8),
		Blue:  uint8(v),
	}
}
