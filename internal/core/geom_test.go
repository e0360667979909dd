package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 10, true},
		{"center", 12, 12, true},
		{"bottom-right inside", 14, 14, true},
		{"right edge outside", 15, 12, false},
		{"bottom edge outside", 12, 15, false},
		{"left outside", 9, 12, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{CellW: 10, CellH: 20, Top: 1}

	w, h := v.WorldSize(80, 24)
	if w != 800 || h != 460 {
		t.Errorf("WorldSize(80, 24) = %v, %v, expected 800, 460", w, h)
	}

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"origin", 0, 0, 0, 1},
		{"inside first cell", 9.9, 19.9, 0, 1},
		{"second cell", 10, 20, 1, 2},
		{"negative", -0.5, -0.5, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := v.ToCell(tc.x, tc.y)
			if col != tc.col || row != tc.row {
				t.Errorf("ToCell(%v, %v) = %d, %d, expected %d, %d", tc.x, tc.y, col, row, tc.col, tc.row)
			}
		})
	}

	x, y := v.ToWorld(3, 2)
	if x != 35 || y != 30 {
		t.Errorf("ToWorld(3, 2) = %v, %v, expected 35, 30", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
}

func TestColorByName(t *testing.T) {
	if ColorByName("red") != ColorBrightRed {
		t.Errorf("ColorByName(red) = %v, expected %v", ColorByName("red"), ColorBrightRed)
	}
	if ColorByName("mauve") != ColorDefault {
		t.Errorf("ColorByName(mauve) = %v, expected default", ColorByName("mauve"))
	}
}
