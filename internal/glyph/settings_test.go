package glyph

import "testing"

func TestParseSettingsFallBack(t *testing.T) {
	if c := ParseColor("purple"); c != ColorGreen {
		t.Errorf("ParseColor(purple) = %v, want green", c)
	}
	if c := ParseColor("AMBER"); c != ColorAmber {
		t.Errorf("ParseColor(AMBER) = %v, want amber", c)
	}
	if i := ParseInterfacing("spi"); i != InterfacingParallel {
		t.Errorf("ParseInterfacing(spi) = %v, want parallel", i)
	}
	if i := ParseInterfacing("I2C"); i != InterfacingI2C {
		t.Errorf("ParseInterfacing(I2C) = %v, want i2c", i)
	}
	if d := ParseDatatype(""); d != DatatypeBin {
		t.Errorf("ParseDatatype(empty) = %v, want bin", d)
	}
	if d := ParseDatatype("hex"); d != DatatypeHex {
		t.Errorf("ParseDatatype(hex) = %v, want hex", d)
	}
}
