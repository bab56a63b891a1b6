// Package cli holds the interactive terminal surfaces. The editor is a
// caller of the core model: it issues discrete pixel operations against
// the history and owns no bitmap state of its own.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peetj/lcd-character-creator/internal/glyph"
	"github.com/peetj/lcd-character-creator/internal/history"
)

// Editor is the bubbletea model for interactive glyph editing.
type Editor struct {
	hist     *history.History
	char     glyph.Character
	row, col int
	// drag is non-nil while paint mode is active; moving the cursor
	// then paints cells with the gesture's value.
	drag *history.Drag
}

// NewEditor starts an editor on the given character. Opening the
// editor is a load transition, so the history starts clean.
func NewEditor(c glyph.Character) *Editor {
	h := history.New()
	h.Reset(c.Rows)
	return &Editor{hist: h, char: c}
}

// Character returns the edited character, for persisting on exit.
func (e *Editor) Character() glyph.Character {
	e.char.Rows = e.hist.Present()
	return e.char
}

func (e *Editor) Init() tea.Cmd {
	return nil
}

func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "enter":
		return e, tea.Quit
	case "up", "k":
		e.move(-1, 0)
	case "down", "j":
		e.move(1, 0)
	case "left", "h":
		e.move(0, -1)
	case "right", "l":
		e.move(0, 1)
	case " ":
		m := glyph.RowsToMatrix(e.hist.Present())
		e.hist.SetPixel(e.row, e.col, !m[e.row][e.col])
	case "v":
		if e.drag == nil {
			e.drag = e.hist.StartDrag(e.row, e.col)
		} else {
			e.drag = nil
		}
	case "esc":
		e.drag = nil
	// Anything that rewrites the board wholesale ends the gesture:
	// its paint value was chosen against a board that no longer exists.
	case "u":
		e.drag = nil
		e.hist.Undo()
	case "r":
		e.drag = nil
		e.hist.Redo()
	case "c":
		e.drag = nil
		e.hist.Clear()
	case "x":
		e.drag = nil
		e.hist.Invert()
	}
	return e, nil
}

func (e *Editor) move(dy, dx int) {
	row, col := e.row+dy, e.col+dx
	if row < 0 || row >= glyph.Height || col < 0 || col >= glyph.Width {
		return
	}
	e.row, e.col = row, col
	if e.drag != nil {
		e.drag.Enter(row, col)
	}
}

func (e *Editor) View() string {
	c := e.Character()

	status := fmt.Sprintf("token %s", glyph.EncodeToken(c.Rows))
	if e.drag != nil {
		status += "  painting"
	}
	if e.hist.CanUndo() {
		status += "  u:undo"
	}
	if e.hist.CanRedo() {
		status += "  r:redo"
	}

	help := helpStyle.Render("arrows move · space toggle · v paint · c clear · x invert · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		renderMatrix(c, e.row, e.col),
		status,
		help,
	)
}
