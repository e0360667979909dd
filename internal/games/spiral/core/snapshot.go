package core

import "math"

// SphereView is a sphere with its resolved track position.
type SphereView struct {
	ID       uint64
	Color    Color
	Distance float64
	Pos      Point
	Status   Status
}

// Snapshot is an immutable view of a session for presentation.
// Track is shared with the Path and must not be modified.
type Snapshot struct {
	Tick        uint64
	Width       float64
	Height      float64
	TotalLength float64
	Radius      float64
	Track       []Point
	Launcher    Point
	Goal        Point

	Spheres     []SphereView
	Projectiles []Projectile
	Particles   []Particle

	Aim     float64
	Active  Color
	Next    Color
	Score   int
	Level   int
	Spawned int
	Quota   int
	Speed   float64
	Phase   Phase
	Shots   int
	Cleared int
}

// Snapshot captures the current session.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		Radius:  s.params.Radius,
		Aim:     s.aim,
		Active:  s.active,
		Next:    s.next,
		Score:   s.score,
		Level:   s.level,
		Spawned: s.spawned,
		Quota:   s.params.Quota,
		Speed:   s.Speed(),
		Phase:   s.phase,
		Shots:   s.shots,
		Cleared: s.cleared,
	}

	snap.Projectiles = make([]Projectile, len(s.projectiles))
	copy(snap.Projectiles, s.projectiles)
	snap.Particles = make([]Particle, len(s.particles))
	copy(snap.Particles, s.particles)

	snap.Spheres = make([]SphereView, len(s.chain))
	for i, sp := range s.chain {
		snap.Spheres[i] = SphereView{
			ID:       sp.ID,
			Color:    sp.Color,
			Distance: sp.Distance,
			Status:   sp.Status,
		}
	}

	if s.path != nil {
		snap.Width = s.path.Width
		snap.Height = s.path.Height
		snap.TotalLength = s.path.TotalLength
		snap.Track = s.path.Points
		snap.Launcher = s.path.Center()
		snap.Goal = s.path.Goal()
		for i := range snap.Spheres {
			snap.Spheres[i].Pos = s.path.PointAt(snap.Spheres[i].Distance)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawned) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)
	h = h*31 + uint64(snap.Active)
	h = h*31 + uint64(snap.Next)
	h = h*31 + math.Float64bits(snap.Aim)

	for _, sp := range snap.Spheres {
		h = h*31 + sp.ID
		h = h*31 + uint64(sp.Color)
		h = h*31 + math.Float64bits(sp.Distance)
	}
	for _, p := range snap.Projectiles {
		h = h*31 + p.ID
		h = h*31 + math.Float64bits(p.Pos.X)
		h = h*31 + math.Float64bits(p.Pos.Y)
	}
	h = h*31 + uint64(len(snap.Particles))
	return h
}
