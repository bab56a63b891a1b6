package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

func TestRenderPNGDimensions(t *testing.T) {
	data, err := RenderPNG(glyph.Rows{0x1F, 0, 0x1F, 0, 0x1F, 0, 0x1F, 0}, 8)
	if err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != glyph.Width*8 || img.Bounds().Dy() != glyph.Height*8 {
		t.Errorf("unexpected dimensions %v", img.Bounds())
	}
}

func TestFromImageRecoversRender(t *testing.T) {
	rows := glyph.Rows{0x1F, 0x11, 0x11, 0x1F, 0x01, 0x01, 0x1F, 0x00}

	data, err := RenderPNG(rows, 8)
	if err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("couldn't decode render: %v", err)
	}

	if got := FromImage(img); got != rows {
		t.Errorf("FromImage = %v, want %v", got, rows)
	}
}

func TestFromImageExactGrid(t *testing.T) {
	// A 5x8 image maps one cell per pixel; dark cells become lit.
	img := image.NewGray(image.Rect(0, 0, glyph.Width, glyph.Height))
	var want glyph.Matrix
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0x00})
				want[y][x] = true
			} else {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}

	if got := FromImage(img); got != glyph.MatrixToRows(want) {
		t.Errorf("FromImage = %v, want %v", got, glyph.MatrixToRows(want))
	}
}
