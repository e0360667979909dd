package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ColorByName maps sphere palette names to terminal colors.
// Unknown names map to ColorDefault.
func ColorByName(name string) Color {
	switch name {
	case "red":
		return ColorBrightRed
	case "blue":
		return ColorBrightBlue
	case "yellow":
		return ColorBrightYellow
	case "green":
		return ColorBrightGreen
	case "purple":
		return ColorBrightMagenta
	case "orange":
		return ColorOrange
	case "cyan":
		return ColorBrightCyan
	case "white":
		return ColorBrightWhite
	default:
		return ColorDefault
	}
}
