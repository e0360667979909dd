package spiral

import (
	"math"

	"github.com/vovakirdan/spiral/internal/games/spiral/core"
)

// DefaultFireInterval is the autoplayer's ticks between shots.
const DefaultFireInterval = 20

// Autoplayer chooses shots for headless runs. Every Interval ticks it fires
// at the sphere nearest the goal that matches the loaded color, or at the
// lead sphere when no color matches.
type Autoplayer struct {
	Interval int
	wait     int
}

// Plan returns the angle to fire at and whether to fire this tick.
func (a *Autoplayer) Plan(snap *core.Snapshot) (float64, bool) {
	if snap.Phase != core.PhasePlaying || len(snap.Spheres) == 0 {
		return snap.Aim, false
	}
	if a.wait > 0 {
		a.wait--
		return snap.Aim, false
	}

	target := -1
	for i, sp := range snap.Spheres {
		if sp.Color != snap.Active {
			continue
		}
		if target < 0 || sp.Distance > snap.Spheres[target].Distance {
			target = i
		}
	}
	if target < 0 {
		target = lead(snap.Spheres)
	}

	a.wait = a.Interval
	if a.wait <= 0 {
		a.wait = DefaultFireInterval
	}
	a.wait--

	p := snap.Spheres[target].Pos
	return math.Atan2(p.Y-snap.Launcher.Y, p.X-snap.Launcher.X), true
}

func lead(spheres []core.SphereView) int {
	best := 0
	for i, sp := range spheres {
		if sp.Distance > spheres[best].Distance {
			best = i
		}
	}
	return best
}
