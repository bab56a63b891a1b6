package firmware

import (
	"strings"
	"testing"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

var testRows = glyph.Rows{0x1F, 0x11, 0x11, 0x1F, 0x01, 0x01, 0x1F, 0x00}

func TestLiteral(t *testing.T) {
	cases := []struct {
		v     uint8
		style glyph.Datatype
		want  string
	}{
		{0x1F, glyph.DatatypeHex, "0x1F"},
		{0x00, glyph.DatatypeHex, "0x00"},
		{0x0A, glyph.DatatypeHex, "0x0A"},
		{0x1F, glyph.DatatypeBin, "B11111"},
		{0x00, glyph.DatatypeBin, "B00000"},
		{0x15, glyph.DatatypeBin, "B10101"},
	}
	for _, c := range cases {
		if got := Literal(c.v, c.style); got != c.want {
			t.Errorf("Literal(%#x, %v) = %q, want %q", c.v, c.style, got, c.want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(testRows, glyph.InterfacingParallel, glyph.DatatypeHex)
	b := Generate(testRows, glyph.InterfacingParallel, glyph.DatatypeHex)
	if a != b {
		t.Error("identical inputs produced different sketches")
	}
	if strings.TrimRight(a, " \t\r\n") != a {
		t.Error("sketch has trailing whitespace")
	}
}

func TestGenerateWiringModes(t *testing.T) {
	parallel := Generate(testRows, glyph.InterfacingParallel, glyph.DatatypeBin)
	i2c := Generate(testRows, glyph.InterfacingI2C, glyph.DatatypeBin)

	if !strings.Contains(parallel, "LiquidCrystal lcd(rs, en, d4, d5, d6, d7)") {
		t.Error("parallel sketch missing direct-pin constructor")
	}
	if !strings.Contains(parallel, "const int rs = 12, en = 11, d4 = 5, d5 = 4, d6 = 3, d7 = 2;") {
		t.Error("parallel sketch missing pin constants")
	}
	if !strings.Contains(parallel, "lcd.begin(16, 2)") {
		t.Error("parallel sketch missing begin call")
	}

	if !strings.Contains(i2c, "LiquidCrystal_I2C lcd(0x27, 16, 2)") {
		t.Error("i2c sketch missing bus-expander constructor")
	}
	if !strings.Contains(i2c, "lcd.init()") {
		t.Error("i2c sketch missing init call")
	}
	if strings.Contains(i2c, "const int rs") {
		t.Error("i2c sketch should not declare pin constants")
	}
}

func TestDatatypeOnlyChangesLiterals(t *testing.T) {
	hexLines := strings.Split(Generate(testRows, glyph.InterfacingParallel, glyph.DatatypeHex), "\n")
	binLines := strings.Split(Generate(testRows, glyph.InterfacingParallel, glyph.DatatypeBin), "\n")

	if len(hexLines) != len(binLines) {
		t.Fatalf("line counts differ: %v vs %v", len(hexLines), len(binLines))
	}

	differing := 0
	for i := range hexLines {
		if hexLines[i] == binLines[i] {
			continue
		}
		differing++
		if !strings.Contains(hexLines[i], "0x") || !strings.Contains(binLines[i], "B") {
			t.Errorf("non-literal line differs between styles: %q vs %q", hexLines[i], binLines[i])
		}
	}
	if differing != glyph.Height {
		t.Errorf("%v lines differ between styles, want exactly %v", differing, glyph.Height)
	}
}

func TestGenerateRendersRowsInOrder(t *testing.T) {
	out := Generate(testRows, glyph.InterfacingI2C, glyph.DatatypeHex)
	want := []string{"0x1F", "0x11", "0x11", "0x1F", "0x01", "0x01", "0x1F", "0x00"}

	start := strings.Index(out, "customChar[8]")
	if start < 0 {
		t.Fatal("sketch missing customChar array")
	}
	rest := out[start:]
	for _, lit := range want {
		i := strings.Index(rest, lit)
		if i < 0 {
			t.Fatalf("literal %q missing or out of order in:\n%s", lit, out)
		}
		rest = rest[i+len(lit):]
	}
}
