// Package firmware renders an Arduino sketch for a designed character.
// Generation is pure textual substitution into one of two fixed
// skeletons; the resulting source is never validated.
package firmware

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

//go:embed skeleton_parallel.ino.tmpl
var parallelSkeleton string

//go:embed skeleton_i2c.ino.tmpl
var i2cSkeleton string

var (
	parallelTmpl = template.Must(template.New("parallel").Parse(parallelSkeleton))
	i2cTmpl      = template.Must(template.New("i2c").Parse(i2cSkeleton))
)

type skeletonData struct {
	Literals []string
}

// Literal renders one row value in the requested style: a B-prefixed
// zero-padded 5-bit binary literal, or a 0x-prefixed two-digit
// uppercase hex literal.
func Literal(v uint8, style glyph.Datatype) string {
	if style == glyph.DatatypeHex {
		return fmt.Sprintf("0x%02X", v)
	}
	return fmt.Sprintf("B%05b", v)
}

// Generate produces the sketch text for the given rows, wiring mode
// and literal style. It is deterministic: identical inputs yield
// byte-identical output. Row values are assumed already clamped.
func Generate(rows glyph.Rows, mode glyph.Interfacing, style glyph.Datatype) string {
	literals := make([]string, len(rows))
	for i, v := range rows {
		literals[i] = Literal(v, style)
	}

	t := parallelTmpl
	if mode == glyph.InterfacingI2C {
		t = i2cTmpl
	}

	var b strings.Builder
	// The skeletons are embedded constants; execution cannot fail on them.
	if err := t.Execute(&b, skeletonData{Literals: literals}); err != nil {
		panic(err)
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}
