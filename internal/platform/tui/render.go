package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to lipgloss styles.
type palette map[core.Color]lipgloss.Style

// newPalette builds a palette; a non-empty background paints every cell.
func newPalette(background string) palette {
	base := lipgloss.NewStyle()
	if background != "" {
		base = base.Background(lipgloss.Color(background))
	}
	p := palette{core.ColorDefault: base}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		p[c] = base.Foreground(lipgloss.Color(c.ANSI()))
	}
	return p
}

var (
	dayPalette   = newPalette("")
	nightPalette = newPalette("17")
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func RenderScreen(s *core.Screen, night bool) string {
	pal := dayPalette
	if night {
		pal = nightPalette
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := pal[startColor]
			if !ok {
				style = pal[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cosmeticColor maps a configured cosmetic color name to a screen color.
// Unknown names fall back to yellow.
func cosmeticColor(name string) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return core.ColorBrightYellow
}
