package core

import (
	"math"
	"sort"
)

// Path is a sampled track with a cumulative arc-length index.
// It is immutable once built; a resize builds a new one.
type Path struct {
	Points      []Point
	Distances   []float64
	TotalLength float64
	Width       float64
	Height      float64
}

// BuildPath generates an inward elliptical spiral centred in a width x height viewport.
// Returns nil when the viewport has no area.
func BuildPath(width, height float64, p PathParams) *Path {
	if width <= 0 || height <= 0 || p.Samples < 1 {
		return nil
	}

	w := width - p.Padding*2
	h := height - p.Padding*2
	cx, cy := width/2, height/2

	points := make([]Point, 0, p.Samples+1)
	for i := 0; i <= p.Samples; i++ {
		t := float64(i) / float64(p.Samples)
		angle := t * 2 * math.Pi * p.Loops
		shrink := 1 - t*p.Shrink
		rx := (w / 2) * shrink
		ry := (h / 2) * shrink
		points = append(points, Point{
			X: cx + math.Cos(angle)*rx,
			Y: cy + math.Sin(angle)*ry,
		})
	}

	distances := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Dist(points[i-1])
		distances[i] = total
	}

	return &Path{
		Points:      points,
		Distances:   distances,
		TotalLength: total,
		Width:       width,
		Height:      height,
	}
}

// PointAt maps an arc length to a position, clamping to the endpoints.
func (p *Path) PointAt(distance float64) Point {
	if distance <= 0 {
		return p.Points[0]
	}
	last := len(p.Points) - 1
	if distance >= p.TotalLength {
		return p.Points[last]
	}

	idx := sort.Search(len(p.Distances), func(i int) bool {
		return p.Distances[i] >= distance
	})
	if idx == 0 {
		return p.Points[0]
	}
	if idx > last {
		return p.Points[last]
	}

	d1, d2 := p.Distances[idx-1], p.Distances[idx]
	ratio := 0.0
	if d2 != d1 {
		ratio = (distance - d1) / (d2 - d1)
	}

	a, b := p.Points[idx-1], p.Points[idx]
	return Point{
		X: a.X + (b.X-a.X)*ratio,
		Y: a.Y + (b.Y-a.Y)*ratio,
	}
}

// Goal returns the final point of the track.
func (p *Path) Goal() Point {
	return p.Points[len(p.Points)-1]
}

// Center returns the viewport centre, where the launcher sits.
func (p *Path) Center() Point {
	return Point{X: p.Width / 2, Y: p.Height / 2}
}
