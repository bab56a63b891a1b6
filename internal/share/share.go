// Package share moves a character through an opaque query-string
// channel: four short fields carrying the bitmap token and settings.
package share

import (
	"net/url"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

// Query field names. r is the 8-character bitmap token, the rest are
// enum names.
const (
	FieldRows        = "r"
	FieldColor       = "c"
	FieldInterfacing = "i"
	FieldDatatype    = "t"
)

// Values encodes a character into its share fields.
func Values(c glyph.Character) url.Values {
	v := url.Values{}
	v.Set(FieldRows, glyph.EncodeToken(c.Rows))
	v.Set(FieldColor, string(c.Color))
	v.Set(FieldInterfacing, string(c.Interfacing))
	v.Set(FieldDatatype, string(c.Datatype))
	return v
}

// Apply overlays recognized share fields onto the current character.
// A missing field leaves the current value in place; a malformed
// bitmap token is ignored entirely; an unknown enum name falls back to
// that enum's default. Nothing here can fail.
func Apply(v url.Values, current glyph.Character) glyph.Character {
	if rows, ok := glyph.DecodeToken(v.Get(FieldRows)); ok {
		current.Rows = rows
	}
	if s := v.Get(FieldColor); s != "" {
		current.Color = glyph.ParseColor(s)
	}
	if s := v.Get(FieldInterfacing); s != "" {
		current.Interfacing = glyph.ParseInterfacing(s)
	}
	if s := v.Get(FieldDatatype); s != "" {
		current.Datatype = glyph.ParseDatatype(s)
	}
	return current
}

// Link builds a full share URL on the given base.
func Link(base string, c glyph.Character) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?" + Values(c).Encode()
	}
	u.RawQuery = Values(c).Encode()
	return u.String()
}

// Parse extracts share fields from a link or bare query string.
func Parse(s string) url.Values {
	if u, err := url.Parse(s); err == nil && u.RawQuery != "" {
		s = u.RawQuery
	}
	v, err := url.ParseQuery(s)
	if err != nil {
		return url.Values{}
	}
	return v
}
