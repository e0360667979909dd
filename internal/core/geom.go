// Package core provides fundamental types and utilities for the terminal game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps world units to screen cells. Terminal cells are roughly twice
// as tall as they are wide, so CellH is usually 2*CellW.
type Viewport struct {
	CellW float64 // world units per column
	CellH float64 // world units per row
	Top   int     // rows reserved above the playfield
}

// WorldSize returns the world dimensions covered by a cols x rows playfield.
func (v Viewport) WorldSize(cols, rows int) (float64, float64) {
	rows -= v.Top
	if rows < 0 {
		rows = 0
	}
	return float64(cols) * v.CellW, float64(rows) * v.CellH
}

// ToCell converts a world position to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return floor(x / v.CellW), floor(y/v.CellH) + v.Top
}

// ToWorld converts a cell to the world position of its centre.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * v.CellW, (float64(row-v.Top) + 0.5) * v.CellH
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
