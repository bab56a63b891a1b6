package record

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

// ErrUnrecognizedShape is the one terminal import failure: the payload
// is neither a list export nor a single-character export. Everything
// short of that is repaired, not rejected.
var ErrUnrecognizedShape = errors.New("unrecognized import shape")

// Result is the outcome of a successful import: exactly one of Saves
// and Character is set, according to which shape was detected.
type Result struct {
	Saves     []Saved
	Character *glyph.Character
}

// Import detects which export shape the payload carries and coerces it
// into valid records. Malformed fields inside a recognized shape are
// repaired: rows are padded/truncated to eight clamped values, unknown
// enums fall back to their defaults, a missing or malformed id is
// regenerated, missing timestamps become now. A well-formed id is
// preserved as-is, duplicates included; see DESIGN.md.
func Import(data []byte) (Result, error) {
	var probe struct {
		Saves     []json.RawMessage `json:"saves"`
		Character json.RawMessage   `json:"character"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Result{}, ErrUnrecognizedShape
	}

	switch {
	case probe.Saves != nil:
		saves := make([]Saved, 0, len(probe.Saves))
		for _, raw := range probe.Saves {
			saves = append(saves, coerceSaved(raw))
		}
		return Result{Saves: saves}, nil
	case probe.Character != nil:
		c := coerceCharacter(probe.Character)
		return Result{Character: &c}, nil
	default:
		return Result{}, ErrUnrecognizedShape
	}
}

func coerceCharacter(raw json.RawMessage) glyph.Character {
	var fields map[string]any
	if json.Unmarshal(raw, &fields) != nil {
		return glyph.DefaultCharacter()
	}
	return glyph.Character{
		Rows:        coerceRows(fields["rows"]),
		Color:       glyph.ParseColor(asString(fields["color"])),
		Interfacing: glyph.ParseInterfacing(asString(fields["interfacing"])),
		Datatype:    glyph.ParseDatatype(asString(fields["datatype"])),
	}
}

func coerceSaved(raw json.RawMessage) Saved {
	var fields map[string]any
	// nil map lookups below all hit the field defaults
	_ = json.Unmarshal(raw, &fields)

	name := asString(fields["name"])
	if name == "" {
		name = "Untitled"
	}

	return Saved{
		ID:          coerceID(fields["id"]),
		Name:        name,
		Rows:        coerceRows(fields["rows"]),
		Color:       glyph.ParseColor(asString(fields["color"])),
		Interfacing: glyph.ParseInterfacing(asString(fields["interfacing"])),
		Datatype:    glyph.ParseDatatype(asString(fields["datatype"])),
		CreatedAt:   coerceTime(fields["createdAt"]),
		UpdatedAt:   coerceTime(fields["updatedAt"]),
	}
}

func coerceID(v any) string {
	if s, ok := v.(string); ok && uuid.Validate(s) == nil {
		return s
	}
	return uuid.NewString()
}

// coerceRows turns whatever was under "rows" into exactly eight
// clamped values, padding with zero rows when the input is short.
func coerceRows(v any) glyph.Rows {
	arr, ok := v.([]any)
	if !ok {
		return glyph.Rows{}
	}
	vals := make([]float64, 0, len(arr))
	for _, el := range arr {
		vals = append(vals, asNumber(el))
	}
	return glyph.ClampRows(vals)
}

func coerceTime(v any) time.Time {
	switch t := v.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case float64:
		// epoch milliseconds, the other common export format
		if t > 0 {
			return time.UnixMilli(int64(t)).UTC()
		}
	}
	return time.Now().UTC()
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	case bool:
		if n {
			return 1
		}
	}
	return 0
}
