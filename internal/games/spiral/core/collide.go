package core

// Side says where a projectile joins the chain relative to the struck sphere.
type Side uint8

const (
	InsertBehind Side = iota // toward the spawn end, index+1
	InsertAhead              // toward the goal, same index
)

// String returns the side name.
func (s Side) String() string {
	if s == InsertAhead {
		return "ahead"
	}
	return "behind"
}

// Hit describes the first projectile/sphere contact found in a tick.
type Hit struct {
	Projectile int // index into the projectile slice
	Index      int // index of the struck sphere
	Side       Side
}

// Detect scans projectiles in order, and for each the chain from the goal end,
// returning the first pair closer than diameter*HitFactor.
func Detect(projectiles []Projectile, chain []Sphere, path *Path, diameter float64, p CollisionParams) (Hit, bool) {
	if path == nil {
		return Hit{}, false
	}
	limit := diameter * p.HitFactor

	for pi, proj := range projectiles {
		for i, s := range chain {
			center := path.PointAt(s.Distance)
			if proj.Pos.Dist(center) >= limit {
				continue
			}

			ahead := path.PointAt(s.Distance + p.ProbeOffset)
			behind := path.PointAt(s.Distance - p.ProbeOffset)
			side := InsertBehind
			if proj.Pos.Dist(ahead) < proj.Pos.Dist(behind) {
				side = InsertAhead
			}
			return Hit{Projectile: pi, Index: i, Side: side}, true
		}
	}
	return Hit{}, false
}

// Insert places s next to the struck sphere and makes room by shifting one
// side of the chain by a diameter. It returns the new chain and the index of
// the inserted sphere, or the unchanged chain and -1 when the hit is stale.
func Insert(chain []Sphere, hit Hit, s Sphere, diameter float64) ([]Sphere, int) {
	if hit.Index < 0 || hit.Index >= len(chain) {
		return chain, -1
	}

	struck := chain[hit.Index].Distance
	at := hit.Index + 1
	if hit.Side == InsertAhead {
		at = hit.Index
		s.Distance = struck + diameter
	} else {
		s.Distance = struck - diameter
	}

	chain = append(chain, Sphere{})
	copy(chain[at+1:], chain[at:])
	chain[at] = s

	if hit.Side == InsertAhead {
		for i := 0; i < at; i++ {
			chain[i].Distance += diameter
		}
	} else {
		for i := at + 1; i < len(chain); i++ {
			chain[i].Distance -= diameter
		}
	}
	return chain, at
}
