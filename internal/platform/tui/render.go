package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spiral/internal/core"
)

// cellStyle describes how one core.Color is drawn: an ANSI 256-color code,
// bold for the bright sphere colors and faint for the track.
type cellStyle struct {
	code  string
	bold  bool
	faint bool
}

var palette = map[core.Color]cellStyle{
	core.ColorRed:           {code: "1"},
	core.ColorGreen:         {code: "2"},
	core.ColorYellow:        {code: "3"},
	core.ColorBlue:          {code: "4"},
	core.ColorMagenta:       {code: "5"},
	core.ColorCyan:          {code: "6"},
	core.ColorWhite:         {code: "7"},
	core.ColorBrightRed:     {code: "9", bold: true},
	core.ColorBrightGreen:   {code: "10", bold: true},
	core.ColorBrightYellow:  {code: "11", bold: true},
	core.ColorBrightBlue:    {code: "12", bold: true},
	core.ColorBrightMagenta: {code: "13", bold: true},
	core.ColorBrightCyan:    {code: "14", bold: true},
	core.ColorBrightWhite:   {code: "15", bold: true},
	core.ColorOrange:        {code: "208", bold: true},
	core.ColorGray:          {code: "245", faint: true},
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, cs := range palette {
		styles[c] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.code)).
			Bold(cs.bold).
			Faint(cs.faint)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run; runs of blanks
// are written unstyled since the playfield is mostly empty.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := s.Cells(y)
		for x := 0; x < len(row); {
			start := row[x]
			blank := start.Rune == ' '

			run.Reset()
			for ; x < len(row); x++ {
				c := row[x]
				if (c.Rune == ' ') != blank || (!blank && c.Color != start.Color) {
					break
				}
				run.WriteRune(c.Rune)
			}

			if blank {
				sb.WriteString(run.String())
				continue
			}
			style, ok := colorStyles[start.Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
