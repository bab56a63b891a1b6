// Package record builds and parses the exported and persisted JSON
// shapes: a single character, or a list of named saves. Export is
// strict; import is deliberately permissive and coerces whatever it
// is given into valid values, failing only when neither shape can be
// recognized at all.
package record

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

// Version is the export format version stamped into every file.
const Version = 1

// Saved is one named, timestamped character in the saved list. The id
// is immutable once created; everything else changes only by explicit
// user action.
type Saved struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Rows        glyph.Rows        `json:"rows"`
	Color       glyph.Color       `json:"color"`
	Interfacing glyph.Interfacing `json:"interfacing"`
	Datatype    glyph.Datatype    `json:"datatype"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewSaved wraps a character snapshot with a fresh id and timestamps.
func NewSaved(name string, c glyph.Character) Saved {
	now := time.Now().UTC()
	return Saved{
		ID:          uuid.NewString(),
		Name:        name,
		Rows:        c.Rows,
		Color:       c.Color,
		Interfacing: c.Interfacing,
		Datatype:    c.Datatype,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Character returns the snapshot held by the record.
func (s Saved) Character() glyph.Character {
	return glyph.Character{
		Rows:        s.Rows,
		Color:       s.Color,
		Interfacing: s.Interfacing,
		Datatype:    s.Datatype,
	}
}

type characterJSON struct {
	Rows        glyph.Rows        `json:"rows"`
	Color       glyph.Color       `json:"color"`
	Interfacing glyph.Interfacing `json:"interfacing"`
	Datatype    glyph.Datatype    `json:"datatype"`
}

type singleExport struct {
	Version   int           `json:"version"`
	Character characterJSON `json:"character"`
}

type listExport struct {
	Version int     `json:"version"`
	Saves   []Saved `json:"saves"`
}

// MarshalSingle renders the single-character export shape with stable
// two-space indentation.
func MarshalSingle(c glyph.Character) ([]byte, error) {
	return json.MarshalIndent(singleExport{
		Version: Version,
		Character: characterJSON{
			Rows:        c.Rows,
			Color:       c.Color,
			Interfacing: c.Interfacing,
			Datatype:    c.Datatype,
		},
	}, "", "  ")
}

// MarshalList renders the list export shape, which is also the payload
// persisted under the store's saves key.
func MarshalList(saves []Saved) ([]byte, error) {
	if saves == nil {
		saves = []Saved{}
	}
	return json.MarshalIndent(listExport{Version: Version, Saves: saves}, "", "  ")
}
