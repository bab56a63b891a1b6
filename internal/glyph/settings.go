package glyph

import "strings"

// Color is the cosmetic LCD theme. It travels with the character
// everywhere it is serialized but has no effect on generated code.
type Color string

const (
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
	ColorRed   Color = "red"
	ColorWhite Color = "white"
	ColorAmber Color = "amber"
)

// Interfacing selects which firmware skeleton is generated.
type Interfacing string

const (
	// InterfacingParallel wires the display directly to six data pins.
	InterfacingParallel Interfacing = "parallel"
	// InterfacingI2C drives the display through a bus expander backpack.
	InterfacingI2C Interfacing = "i2c"
)

// Datatype selects how row values are rendered in generated code.
type Datatype string

const (
	DatatypeBin Datatype = "bin"
	DatatypeHex Datatype = "hex"
)

// ParseColor returns the named color, or green for anything outside
// the known set. All of the settings parsers are total: decode paths
// never fail on an unknown enum value, they fall back.
func ParseColor(s string) Color {
	switch Color(strings.ToLower(s)) {
	case ColorBlue, ColorRed, ColorWhite, ColorAmber:
		return Color(strings.ToLower(s))
	default:
		return ColorGreen
	}
}

// ParseInterfacing returns the named wiring mode, defaulting to parallel.
func ParseInterfacing(s string) Interfacing {
	if Interfacing(strings.ToLower(s)) == InterfacingI2C {
		return InterfacingI2C
	}
	return InterfacingParallel
}

// ParseDatatype returns the named literal style, defaulting to binary.
func ParseDatatype(s string) Datatype {
	if Datatype(strings.ToLower(s)) == DatatypeHex {
		return DatatypeHex
	}
	return DatatypeBin
}

// Character is one glyph snapshot together with its settings, the unit
// that gets shared, persisted and exported.
type Character struct {
	Rows        Rows
	Color       Color
	Interfacing Interfacing
	Datatype    Datatype
}

// DefaultCharacter is the blank state: all pixels off, default settings.
func DefaultCharacter() Character {
	return Character{
		Color:       ColorGreen,
		Interfacing: InterfacingParallel,
		Datatype:    DatatypeBin,
	}
}
