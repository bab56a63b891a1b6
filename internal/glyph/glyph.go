// Package glyph holds the canonical bitmap model for a 5x8 LCD custom
// character. The store of record is always the row-value vector; the
// boolean matrix is a derived view computed on demand.
package glyph

import "math"

const (
	// Height and Width are the fixed glyph dimensions in pixels.
	Height = 8
	Width  = 5

	// MaxRowValue is the largest valid row value (all five pixels lit).
	MaxRowValue = 31

	rowMask = 0x1F
)

// Rows is the canonical representation: one value per row, each in
// [0, MaxRowValue]. Column c of a row lives at bit (Width-1-c), so
// column 0 is the most significant of the five used bits. This matches
// the byte layout expected by HD44780 createChar.
type Rows [Height]uint8

// Matrix is the derived on/off pixel view, indexed [row][column].
type Matrix [Height][Width]bool

// RowsToMatrix expands row values into the pixel matrix.
func RowsToMatrix(r Rows) Matrix {
	var m Matrix
	for y := range r {
		for x := 0; x < Width; x++ {
			m[y][x] = (r[y]>>(Width-1-x))&1 == 1
		}
	}
	return m
}

// MatrixToRows packs the pixel matrix back into row values. It is the
// exact inverse of RowsToMatrix for any clamped row vector.
func MatrixToRows(m Matrix) Rows {
	var r Rows
	for y := range m {
		var v uint8
		for x := 0; x < Width; x++ {
			if m[y][x] {
				v |= 1 << (Width - 1 - x)
			}
		}
		r[y] = v
	}
	return r
}

// Clamp coerces an externally supplied number into a valid row value.
// Non-finite input maps to 0; anything else is truncated toward zero
// and clamped into [0, MaxRowValue]. Every boundary where numbers enter
// the row representation goes through here, so the rest of the model
// can assume valid values unconditionally.
func Clamp(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if v >= MaxRowValue {
		return MaxRowValue
	}
	return uint8(v)
}

// ClampInt is Clamp for integer boundaries.
func ClampInt(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= MaxRowValue {
		return MaxRowValue
	}
	return uint8(v)
}

// ClampRows applies Clamp to every element of an arbitrary-length
// numeric slice, truncating or zero-padding to exactly Height rows.
func ClampRows(vs []float64) Rows {
	var r Rows
	for i := 0; i < Height && i < len(vs); i++ {
		r[i] = Clamp(vs[i])
	}
	return r
}

// Invert complements every row within the five used bits.
// Applying it twice yields the original vector.
func Invert(r Rows) Rows {
	for y := range r {
		r[y] = ^r[y] & rowMask
	}
	return r
}
