// Package core contains the UI-agnostic simulation of the spiral game:
// the track curve, chain physics, matching, projectile collision and the
// per-tick orchestrator. It has no terminal or storage dependencies.
package core

import "math"

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Dir returns the unit vector for angle (radians).
func Dir(angle float64) Point {
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Status is an advisory per-sphere state used by presentation.
type Status uint8

const (
	StatusActive   Status = iota
	StatusRemoving        // part of a run removed this tick
	StatusInserted        // inserted from a projectile this tick
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusRemoving:
		return "removing"
	case StatusInserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// Sphere is one element of the chain.
// Distance is arc length from the spawn end of the track.
type Sphere struct {
	ID       uint64
	Color    Color
	Distance float64
	Status   Status
}

// Projectile is a fired sphere in free flight.
type Projectile struct {
	ID    uint64
	Pos   Point
	Vel   Point
	Color Color
}

// Particle is a short-lived cosmetic effect spawned by removals.
type Particle struct {
	Pos   Point
	Vel   Point
	Life  float64
	Color Color
}
