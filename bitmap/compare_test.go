package bitmap

import (
	"testing"

	"github.com/kmckinnon/bmpcat/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two layouts of the same picture: the second stores its rows top to
// bottom under a negative height. The vertical resolution keeps its
// sign, so the sign disagreement flags the stored rows as mirrored and
// the two compare equal.
func TestEquivalentMirroredRows(t *testing.T) {
	a := sample24Bitmap()

	b := sample24Bitmap()
	b.InfoHeader.Height = -4
	rows := b.Pixels.Colors
	for i, j := 0, 3; i < j; i, j = i+1, j-1 {
		for c := 0; c < 4; c++ {
			rows[i*4+c], rows[j*4+c] = rows[j*4+c], rows[i*4+c]
		}
	}

	assert.True(t, Equivalent(a, b))
	assert.True(t, Equivalent(b, a))
}

func TestEquivalentMirroredColumns(t *testing.T) {
	a := sample24Bitmap()

	b := sample24Bitmap()
	b.InfoHeader.Width = -4
	rows := b.Pixels.Colors
	for r := 0; r < 4; r++ {
		row := rows[r*4 : r*4+4]
		for i, j := 0, 3; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}

	assert.True(t, Equivalent(a, b))
}

// A sign flip without the matching pixel mirroring is a different
// picture.
func TestNotEquivalentSignFlipAlone(t *testing.T) {
	a := sample24Bitmap()
	b := sample24Bitmap()
	b.InfoHeader.Height = -4

	assert.False(t, Equivalent(a, b))
}

// When both the height and the vertical resolution flip sign the two
// mirrorings cancel and the stored rows are read as-is.
func TestEquivalentCancelledSigns(t *testing.T) {
	a := sample24Bitmap()
	b := sample24Bitmap()
	b.InfoHeader.Height = -4
	b.InfoHeader.YResolution = -3780

	assert.True(t, Equivalent(a, b))
}

func TestNotEquivalentPixels(t *testing.T) {
	a := sample24Bitmap()
	b := sample24Bitmap()
	b.Pixels.Colors[0] = rgb(0x01, 0x02, 0x03)

	assert.False(t, Equivalent(a, b))
}

func TestNotEquivalentHeader(t *testing.T) {
	a := sample24Bitmap()
	b := sample24Bitmap()
	b.Header.FileSize++

	assert.False(t, Equivalent(a, b))
}

// Indexed bitmaps may order their color tables differently and still
// describe the same picture.
func TestEquivalentReorderedTable(t *testing.T) {
	a := sampleIndexedBitmap()

	b := sampleIndexedBitmap()
	b.ColorTable.Colors[0], b.ColorTable.Colors[1] = b.ColorTable.Colors[1], b.ColorTable.Colors[0]
	for i, v := range b.Pixels.Indices {
		b.Pixels.Indices[i] = 1 - v
	}

	assert.True(t, Equivalent(a, b))
}

func TestNotEquivalentTable(t *testing.T) {
	a := sampleIndexedBitmap()
	b := sampleIndexedBitmap()
	b.ColorTable.Colors[1] = color.RGBA{Red: 0x99}

	assert.False(t, Equivalent(a, b))
}

func TestNormalizedPixelsResolvesIndices(t *testing.T) {
	rows := normalizedPixels(sampleIndexedBitmap())
	require.Len(t, rows, 2)
	assert.Equal(t, []color.RGBA{
		{Blue: 0x10, Green: 0x20, Red: 0x30},
		{Blue: 0x40, Green: 0x50, Red: 0x60},
		{Blue: 0x10, Green: 0x20, Red: 0x30},
	}, rows[0])
}
