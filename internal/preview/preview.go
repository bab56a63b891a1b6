// Package preview turns the on/off matrix into a PNG artifact and
// recovers a matrix from an arbitrary imported image.
package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

var (
	litColor    = color.Gray{Y: 0x20}
	unlitColor  = color.Gray{Y: 0xE8}
	threshold   = uint8(0x80)
	defaultZoom = 16
)

// RenderPNG draws the glyph as a PNG, one scale×scale block per pixel,
// lit pixels dark on a light ground.
func RenderPNG(rows glyph.Rows, scale int) ([]byte, error) {
	if scale < 1 {
		scale = defaultZoom
	}
	m := glyph.RowsToMatrix(rows)

	cell := image.NewGray(image.Rect(0, 0, glyph.Width, glyph.Height))
	for y := range m {
		for x := range m[y] {
			if m[y][x] {
				cell.SetGray(x, y, litColor)
			} else {
				cell.SetGray(x, y, unlitColor)
			}
		}
	}

	out := image.NewGray(image.Rect(0, 0, glyph.Width*scale, glyph.Height*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), cell, cell.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromImage squeezes any image onto the 5x8 grid and thresholds it by
// luminance: dark cells become lit pixels, the inverse of RenderPNG.
func FromImage(i image.Image) glyph.Rows {
	small := image.NewGray(image.Rect(0, 0, glyph.Width, glyph.Height))
	draw.CatmullRom.Scale(small, small.Bounds(), i, i.Bounds(), draw.Src, nil)

	var m glyph.Matrix
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			m[y][x] = small.GrayAt(x, y).Y < threshold
		}
	}
	return glyph.MatrixToRows(m)
}
