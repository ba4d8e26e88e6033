package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/axesporen/internal/core"
)

// cellStyle is the part of a cell that affects styling.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

func (cs cellStyle) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if !cs.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(cs.fg.Hex()))
	}
	if !cs.bg.IsDefault() {
		st = st.Background(lipgloss.Color(cs.bg.Hex()))
	}
	if cs.bold {
		st = st.Bold(true)
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(cs cellStyle) lipgloss.Style {
		st, ok := styles[cs]
		if !ok {
			st = cs.style()
			styles[cs] = st
		}
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
