package glyph

import (
	"fmt"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	const testCaseCount = 50

	for i := range testCaseCount {
		rows := aRandomRows()
		t.Run(fmt.Sprintf("test %v: %v", i, rows), func(t *testing.T) {
			token := EncodeToken(rows)
			if len(token) != TokenLength {
				t.Fatalf("token %q has length %v", token, len(token))
			}
			back, ok := DecodeToken(token)
			if !ok {
				t.Fatalf("couldn't decode own token %q", token)
			}
			if back != rows {
				t.Errorf("token round trip changed rows: %v vs %v", rows, back)
			}
		})
	}
}

func TestEncodeTokenExample(t *testing.T) {
	rows := Rows{0x1F, 0x11, 0x11, 0x1F, 0x01, 0x01, 0x1F, 0x00}
	token := EncodeToken(rows)
	if token != "VHHV11V0" {
		t.Errorf("EncodeToken = %q, want %q", token, "VHHV11V0")
	}
	back, ok := DecodeToken(token)
	if !ok || back != rows {
		t.Errorf("DecodeToken(%q) = %v, %v", token, back, ok)
	}
}

func TestDecodeTokenCaseInsensitive(t *testing.T) {
	rows, ok := DecodeToken("vhhv11v0")
	if !ok {
		t.Fatal("lowercase token should decode")
	}
	want := Rows{0x1F, 0x11, 0x11, 0x1F, 0x01, 0x01, 0x1F, 0x00}
	if rows != want {
		t.Errorf("DecodeToken = %v, want %v", rows, want)
	}
}

func TestDecodeTokenRejects(t *testing.T) {
	bad := []string{
		"",
		"0000000",   // too short
		"000000000", // too long
		"0000000W",  // W outside alphabet
		"０0000000",  // multibyte digit changes byte length
		"0000 000",
		"!!!!!!!!",
	}
	for _, s := range bad {
		if rows, ok := DecodeToken(s); ok {
			t.Errorf("DecodeToken(%q) accepted, got %v", s, rows)
		} else if rows != (Rows{}) {
			t.Errorf("DecodeToken(%q) returned partial result %v", s, rows)
		}
	}
}
