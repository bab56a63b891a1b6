// Package history is a linear undo/redo log over bitmap snapshots.
// Snapshots are plain row-value arrays, so past and future entries are
// copied by value and can never be mutated out from under the log.
package history

import "github.com/peetj/lcd-character-creator/internal/glyph"

// History is the past/present/future triple. The zero value is not
// ready to use; construct with New.
type History struct {
	past    []glyph.Rows
	present glyph.Rows
	future  []glyph.Rows
}

// New returns a history with an all-zero present and nothing to undo.
func New() *History {
	return &History{}
}

// Present returns the current snapshot.
func (h *History) Present() glyph.Rows {
	return h.present
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Commit makes rows the new present, pushing the old present onto the
// past and discarding any redo entries. Committing a snapshot equal to
// the present is a no-op: past and future are left untouched.
func (h *History) Commit(rows glyph.Rows) {
	if rows == h.present {
		return
	}
	h.past = append(h.past, h.present)
	h.present = rows
	h.future = nil
}

// Undo steps back one snapshot, moving the present onto the redo
// stack. It reports whether a step happened.
func (h *History) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	h.future = append(h.future, h.present)
	h.present = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return true
}

// Redo reverses the most recent Undo. It reports whether a step happened.
func (h *History) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	h.past = append(h.past, h.present)
	h.present = h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	return true
}

// Reset replaces the present and drops all undo/redo entries. Load
// paths (share link, saved record, import) go through here; ordinary
// edits never do.
func (h *History) Reset(rows glyph.Rows) {
	h.past = nil
	h.present = rows
	h.future = nil
}

// SetPixel writes one cell through the matrix view and commits the
// result. Writing the value a cell already has falls out as a no-op
// commit. Out-of-range coordinates are ignored.
func (h *History) SetPixel(row, col int, on bool) {
	if row < 0 || row >= glyph.Height || col < 0 || col >= glyph.Width {
		return
	}
	m := glyph.RowsToMatrix(h.present)
	m[row][col] = on
	h.Commit(glyph.MatrixToRows(m))
}

// Clear commits a blank glyph.
func (h *History) Clear() {
	h.Commit(glyph.Rows{})
}

// Invert commits the complement of every row.
func (h *History) Invert() {
	h.Commit(glyph.Invert(h.present))
}

// Drag is one paint gesture. The paint value is chosen once, at the
// first touched cell (its toggled value), and every cell entered for
// the rest of the gesture is set to that same value. Re-entering a
// cell is idempotent.
type Drag struct {
	h     *History
	paint bool
}

// StartDrag toggles the first touched cell and returns the gesture
// carrying that cell's new value as the paint value.
func (h *History) StartDrag(row, col int) *Drag {
	m := glyph.RowsToMatrix(h.present)
	paint := true
	if row >= 0 && row < glyph.Height && col >= 0 && col < glyph.Width {
		paint = !m[row][col]
	}
	h.SetPixel(row, col, paint)
	return &Drag{h: h, paint: paint}
}

// Enter paints the cell the gesture has moved into.
func (d *Drag) Enter(row, col int) {
	d.h.SetPixel(row, col, d.paint)
}
