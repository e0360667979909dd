package core

import (
	"fmt"
	"strings"
)

// Color identifies a sphere color. Zero is reserved for "none".
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorBlue
	ColorYellow
	ColorGreen
	ColorPurple
	ColorOrange
	ColorCyan
	ColorWhite
)

var colorNames = map[Color]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorBlue:   "blue",
	ColorYellow: "yellow",
	ColorGreen:  "green",
	ColorPurple: "purple",
	ColorOrange: "orange",
	ColorCyan:   "cyan",
	ColorWhite:  "white",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Hex returns the display color as #RRGGBB.
func (c Color) Hex() string {
	switch c {
	case ColorRed:
		return "#FF4B5C"
	case ColorBlue:
		return "#00A8FF"
	case ColorYellow:
		return "#FFC312"
	case ColorGreen:
		return "#1DD1A1"
	case ColorPurple:
		return "#A55EEA"
	case ColorOrange:
		return "#FF9F43"
	case ColorCyan:
		return "#48DBFB"
	case ColorWhite:
		return "#F5F6FA"
	default:
		return "#808080"
	}
}

// ParseColor converts a color name to a Color.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name && c != ColorNone {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", name)
}

// ParsePalette converts color names to a palette.
func ParsePalette(names []string) ([]Color, error) {
	palette := make([]Color, 0, len(names))
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// DefaultPalette is the five-color set.
func DefaultPalette() []Color {
	return []Color{ColorRed, ColorBlue, ColorYellow, ColorGreen, ColorPurple}
}
