package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildPath(t *testing.T) {
	p := BuildPath(800, 600, DefaultParams().Path)
	if p == nil {
		t.Fatal("BuildPath() = nil, expected a path")
	}

	if len(p.Points) != 1001 {
		t.Errorf("len(Points) = %d, expected 1001", len(p.Points))
	}
	if len(p.Distances) != len(p.Points) {
		t.Errorf("len(Distances) = %d, expected %d", len(p.Distances), len(p.Points))
	}
	if p.Distances[0] != 0 {
		t.Errorf("Distances[0] = %v, expected 0", p.Distances[0])
	}
	for i := 1; i < len(p.Distances); i++ {
		if p.Distances[i] < p.Distances[i-1] {
			t.Fatalf("Distances not monotonic at %d: %v < %v", i, p.Distances[i], p.Distances[i-1])
		}
	}
	if p.TotalLength != p.Distances[len(p.Distances)-1] {
		t.Errorf("TotalLength = %v, expected %v", p.TotalLength, p.Distances[len(p.Distances)-1])
	}

	// Outer rim starts on the right edge inside the padding.
	first := p.Points[0]
	if !approx(first.X, 740) || !approx(first.Y, 300) {
		t.Errorf("Points[0] = %+v, expected (740, 300)", first)
	}

	// 2.5 turns end on the left of centre at 20% radius.
	goal := p.Goal()
	if math.Abs(goal.X-332) > 1e-6 || math.Abs(goal.Y-300) > 1e-6 {
		t.Errorf("Goal() = %+v, expected (332, 300)", goal)
	}

	c := p.Center()
	if c.X != 400 || c.Y != 300 {
		t.Errorf("Center() = %+v, expected (400, 300)", c)
	}
}

func TestBuildPathEmptyViewport(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"negative", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if p := BuildPath(tc.w, tc.h, DefaultParams().Path); p != nil {
				t.Errorf("BuildPath(%v, %v) = %v, expected nil", tc.w, tc.h, p)
			}
		})
	}
}

func TestPointAtEndpoints(t *testing.T) {
	p := BuildPath(800, 600, DefaultParams().Path)
	last := p.Points[len(p.Points)-1]

	tests := []struct {
		name     string
		d        float64
		expected Point
	}{
		{"negative clamps to start", -50, p.Points[0]},
		{"zero is start", 0, p.Points[0]},
		{"total is goal", p.TotalLength, last},
		{"beyond clamps to goal", p.TotalLength + 100, last},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.PointAt(tc.d)
			if got != tc.expected {
				t.Errorf("PointAt(%v) = %+v, expected %+v", tc.d, got, tc.expected)
			}
		})
	}
}

func TestPointAtSamples(t *testing.T) {
	p := BuildPath(800, 600, DefaultParams().Path)

	for _, k := range []int{1, 10, 250, 500, 999} {
		got := p.PointAt(p.Distances[k])
		want := p.Points[k]
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("PointAt(Distances[%d]) = %+v, expected %+v", k, got, want)
		}
	}
}

func TestPointAtMidpointOnSegment(t *testing.T) {
	p := BuildPath(800, 600, DefaultParams().Path)

	for _, k := range []int{0, 100, 700} {
		mid := (p.Distances[k] + p.Distances[k+1]) / 2
		got := p.PointAt(mid)
		a, b := p.Points[k], p.Points[k+1]

		if got.X < math.Min(a.X, b.X)-1e-9 || got.X > math.Max(a.X, b.X)+1e-9 ||
			got.Y < math.Min(a.Y, b.Y)-1e-9 || got.Y > math.Max(a.Y, b.Y)+1e-9 {
			t.Errorf("PointAt(mid of %d) = %+v, not between %+v and %+v", k, got, a, b)
		}
	}
}

func TestPointAtChordNeverExceedsArc(t *testing.T) {
	p := BuildPath(800, 600, DefaultParams().Path)

	for d := 0.0; d < p.TotalLength; d += 37 {
		a := p.PointAt(d)
		b := p.PointAt(d + 20)
		if a.Dist(b) > 20+1e-9 {
			t.Fatalf("chord %v exceeds arc 20 at distance %v", a.Dist(b), d)
		}
	}
}

func TestPointAtZeroLengthSegment(t *testing.T) {
	p := &Path{
		Points:      []Point{{0, 0}, {10, 0}, {10, 0}, {20, 0}},
		Distances:   []float64{0, 10, 10, 20},
		TotalLength: 20,
	}

	tests := []struct {
		d        float64
		expected Point
	}{
		{5, Point{5, 0}},
		{10, Point{10, 0}},
		{15, Point{15, 0}},
	}

	for _, tc := range tests {
		got := p.PointAt(tc.d)
		if got != tc.expected {
			t.Errorf("PointAt(%v) = %+v, expected %+v", tc.d, got, tc.expected)
		}
	}
}
