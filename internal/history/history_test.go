package history

import (
	"testing"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

func TestCommitUndoRedo(t *testing.T) {
	h := New()
	edited := glyph.Rows{1}

	h.Commit(edited)
	if h.Present() != edited {
		t.Fatalf("present = %v after commit", h.Present())
	}

	if !h.Undo() {
		t.Fatal("undo reported no-op after a commit")
	}
	if h.Present() != (glyph.Rows{}) {
		t.Errorf("undo didn't restore blank glyph: %v", h.Present())
	}

	if !h.Redo() {
		t.Fatal("redo reported no-op after an undo")
	}
	if h.Present() != edited {
		t.Errorf("redo didn't restore %v: %v", edited, h.Present())
	}
}

func TestUndoRedoAtBounds(t *testing.T) {
	h := New()
	if h.Undo() {
		t.Error("undo on empty history should be a no-op")
	}
	if h.Redo() {
		t.Error("redo on empty history should be a no-op")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports available steps")
	}
}

func TestCommitIdenticalIsNoOp(t *testing.T) {
	h := New()
	h.Commit(glyph.Rows{3, 1})
	h.Commit(glyph.Rows{3, 1})

	if !h.Undo() {
		t.Fatal("expected exactly one undo step")
	}
	if h.Undo() {
		t.Error("identical commit grew the past")
	}
}

func TestCommitClearsFuture(t *testing.T) {
	h := New()
	h.Commit(glyph.Rows{1})
	h.Commit(glyph.Rows{2})
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected a redo entry")
	}

	h.Commit(glyph.Rows{9})
	if h.CanRedo() {
		t.Error("commit left redo entries behind")
	}
}

func TestReset(t *testing.T) {
	h := New()
	h.Commit(glyph.Rows{1})
	h.Commit(glyph.Rows{2})
	h.Undo()

	loaded := glyph.Rows{7, 7, 7}
	h.Reset(loaded)
	if h.Present() != loaded {
		t.Errorf("present = %v after reset", h.Present())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("reset should drop all history")
	}
}

func TestSetPixel(t *testing.T) {
	h := New()
	h.SetPixel(0, 0, true)
	if h.Present() != (glyph.Rows{0b10000}) {
		t.Errorf("pixel (0,0) = %v, want column 0 as MSB", h.Present())
	}

	h.SetPixel(7, 4, true)
	want := glyph.Rows{0b10000, 0, 0, 0, 0, 0, 0, 0b00001}
	if h.Present() != want {
		t.Errorf("present = %v, want %v", h.Present(), want)
	}

	// Writing the same value again must not create an undo step.
	h.SetPixel(7, 4, true)
	h.Undo()
	if h.Present() != (glyph.Rows{0b10000}) {
		t.Errorf("redundant SetPixel created a history entry: %v", h.Present())
	}

	h.SetPixel(-1, 0, true)
	h.SetPixel(0, glyph.Width, true)
	if h.Present() != (glyph.Rows{0b10000}) {
		t.Errorf("out-of-range SetPixel changed state: %v", h.Present())
	}
}

func TestDragGesture(t *testing.T) {
	h := New()
	h.SetPixel(0, 1, true)

	// First touched cell is lit, so the gesture paints "off".
	d := h.StartDrag(0, 1)
	if h.Present() != (glyph.Rows{}) {
		t.Fatalf("drag start didn't toggle first cell: %v", h.Present())
	}

	d.Enter(0, 2) // already off, idempotent
	d.Enter(0, 1) // re-entering the start cell, idempotent
	if h.Present() != (glyph.Rows{}) {
		t.Errorf("drag painted cells with the wrong value: %v", h.Present())
	}

	// A fresh gesture on a blank cell paints "on" across the row.
	d = h.StartDrag(1, 0)
	d.Enter(1, 1)
	d.Enter(1, 1)
	d.Enter(1, 2)
	want := glyph.Rows{0, 0b11100}
	if h.Present() != want {
		t.Errorf("present = %v, want %v", h.Present(), want)
	}
}

func TestClearAndInvert(t *testing.T) {
	h := New()
	h.Commit(glyph.Rows{0b10101})
	h.Invert()
	if h.Present() != (glyph.Rows{0b01010, 31, 31, 31, 31, 31, 31, 31}) {
		t.Errorf("invert = %v", h.Present())
	}
	h.Clear()
	if h.Present() != (glyph.Rows{}) {
		t.Errorf("clear = %v", h.Present())
	}
	h.Undo()
	h.Undo()
	if h.Present() != (glyph.Rows{0b10101}) {
		t.Errorf("undo chain broken: %v", h.Present())
	}
}
