package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clickdash/internal/core"
)

// Fixed Click Dash palette.
const (
	colorSlate     = "#0F172A"
	colorHeader    = "#1E293B"
	colorSky       = "#38BDF8"
	colorRose      = "#FB7185"
	colorGreen     = "#4ADE80"
	colorDeepGreen = "#064E3B"
	colorMuted     = "#64748B"
	colorFrame     = "#334155"
	colorWhite     = "#F8FAFC"
)

// colorStyles maps theme roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle().Background(lipgloss.Color(colorSlate)),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorFrame)).Background(lipgloss.Color(colorSlate)),
	core.ColorScore:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorSky)).Background(lipgloss.Color(colorHeader)).Bold(true),
	core.ColorTime:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorRose)).Background(lipgloss.Color(colorHeader)).Bold(true),
	core.ColorTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorDeepGreen)).Background(lipgloss.Color(colorGreen)).Bold(true),
	core.ColorOverlay: lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite)).Background(lipgloss.Color(colorHeader)),
	core.ColorTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite)).Background(lipgloss.Color(colorHeader)).Bold(true),
	core.ColorButton:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite)).Background(lipgloss.Color(colorSky)).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).Background(lipgloss.Color(colorSlate)),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
