package core

// burst spawns n particles at pos with velocities in [-spread/2, spread/2).
func burst(dst []Particle, src Source, pos Point, c Color, n int, spread float64) []Particle {
	for k := 0; k < n; k++ {
		vx := (src.Float64() - 0.5) * spread
		vy := (src.Float64() - 0.5) * spread
		dst = append(dst, Particle{
			Pos:   pos,
			Vel:   Point{X: vx, Y: vy},
			Life:  1,
			Color: c,
		})
	}
	return dst
}

// stepParticles decays and moves particles in place, dropping dead ones.
func stepParticles(ps []Particle, decay float64) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.Life -= decay
		p.Pos = p.Pos.Add(p.Vel)
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}
