package core

// Save is a plain copy of a session suitable for serialization.
// The path is not stored; it is rebuilt from the viewport on restore.
type Save struct {
	Tick     uint64  `yaml:"tick"`
	Score    int     `yaml:"score"`
	Level    int     `yaml:"level"`
	Spawned  int     `yaml:"spawned"`
	Shots    int     `yaml:"shots"`
	Cleared  int     `yaml:"cleared"`
	NextID   uint64  `yaml:"next_id"`
	Aim      float64 `yaml:"aim"`
	Active   string  `yaml:"active"`
	Next     string  `yaml:"next"`
	RNGState uint64  `yaml:"rng_state,omitempty"`

	Chain       []SavedSphere     `yaml:"chain"`
	Projectiles []SavedProjectile `yaml:"projectiles,omitempty"`
}

// SavedSphere is a serialized Sphere.
type SavedSphere struct {
	ID       uint64  `yaml:"id"`
	Color    string  `yaml:"color"`
	Distance float64 `yaml:"distance"`
}

// SavedProjectile is a serialized Projectile.
type SavedProjectile struct {
	ID    uint64  `yaml:"id"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
	Color string  `yaml:"color"`
}

// Export copies the session into a Save. Particles and queued intents are dropped.
func (s *State) Export() Save {
	sv := Save{
		Tick:    s.tick,
		Score:   s.score,
		Level:   s.level,
		Spawned: s.spawned,
		Shots:   s.shots,
		Cleared: s.cleared,
		NextID:  s.nextID,
		Aim:     s.aim,
		Active:  s.active.String(),
		Next:    s.next.String(),
	}
	if rng, ok := s.src.(*SimpleRNG); ok {
		sv.RNGState = rng.State()
	}
	for _, sp := range s.chain {
		sv.Chain = append(sv.Chain, SavedSphere{ID: sp.ID, Color: sp.Color.String(), Distance: sp.Distance})
	}
	for _, p := range s.projectiles {
		sv.Projectiles = append(sv.Projectiles, SavedProjectile{
			ID: p.ID, X: p.Pos.X, Y: p.Pos.Y, VX: p.Vel.X, VY: p.Vel.Y, Color: p.Color.String(),
		})
	}
	return sv
}

// Restore replaces the session with sv. The current path is kept.
func (s *State) Restore(sv Save) error {
	active, err := ParseColor(sv.Active)
	if err != nil {
		return err
	}
	next, err := ParseColor(sv.Next)
	if err != nil {
		return err
	}

	chain := make([]Sphere, 0, len(sv.Chain))
	for _, sp := range sv.Chain {
		c, err := ParseColor(sp.Color)
		if err != nil {
			return err
		}
		chain = append(chain, Sphere{ID: sp.ID, Color: c, Distance: sp.Distance})
	}

	projectiles := make([]Projectile, 0, len(sv.Projectiles))
	for _, p := range sv.Projectiles {
		c, err := ParseColor(p.Color)
		if err != nil {
			return err
		}
		projectiles = append(projectiles, Projectile{
			ID:    p.ID,
			Pos:   Point{X: p.X, Y: p.Y},
			Vel:   Point{X: p.VX, Y: p.VY},
			Color: c,
		})
	}

	s.tick = sv.Tick
	s.score = sv.Score
	s.level = max(sv.Level, 1)
	s.spawned = sv.Spawned
	s.shots = sv.Shots
	s.cleared = sv.Cleared
	s.nextID = sv.NextID
	s.aim = sv.Aim
	s.active = active
	s.next = next
	s.chain = chain
	s.projectiles = projectiles
	s.particles = nil
	s.intents = nil
	s.phase = PhasePlaying
	if rng, ok := s.src.(*SimpleRNG); ok && sv.RNGState != 0 {
		rng.state = sv.RNGState
	}
	return nil
}
