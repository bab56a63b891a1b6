package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/peetj/lcd-character-creator/internal/glyph"
)

// lcdPalette maps the cosmetic color setting to a terminal color for
// lit pixels. Purely presentational.
var lcdPalette = map[glyph.Color]lipgloss.Color{
	glyph.ColorGreen: lipgloss.Color("2"),
	glyph.ColorBlue:  lipgloss.Color("4"),
	glyph.ColorRed:   lipgloss.Color("1"),
	glyph.ColorWhite: lipgloss.Color("7"),
	glyph.ColorAmber: lipgloss.Color("3"),
}

const (
	litCell   = "██"
	unlitCell = "··"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	unlitStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderMatrix draws the character's pixel grid in a bordered frame.
func RenderMatrix(c glyph.Character) string {
	return renderMatrix(c, -1, -1)
}

func renderMatrix(c glyph.Character, cursorRow, cursorCol int) string {
	litStyle := lipgloss.NewStyle().Foreground(lcdPalette[c.Color])
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	m := glyph.RowsToMatrix(c.Rows)
	var rows []string
	for y := range m {
		var b strings.Builder
		for x := range m[y] {
			cell := unlitCell
			style := unlitStyle
			if m[y][x] {
				cell = litCell
				style = litStyle
			}
			if y == cursorRow && x == cursorCol {
				style = cursorStyle
			}
			b.WriteString(style.Render(cell))
		}
		rows = append(rows, b.String())
	}
	return frameStyle.Render(strings.Join(rows, "\n"))
}
