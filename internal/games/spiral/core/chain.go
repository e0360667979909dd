package core

// Advance moves the chain one tick along the track.
//
// Only the last sphere (nearest the spawn) is driven. Every sphere ahead of it
// is either pushed to exactly one diameter in front of its follower, pulled
// back toward a same-colored follower, or left to creep forward slowly. The
// chain order is never changed.
func Advance(chain []Sphere, speed, diameter float64, p PhysicsParams) {
	if len(chain) == 0 {
		return
	}

	for i := range chain {
		if chain[i].Status == StatusInserted {
			chain[i].Status = StatusActive
		}
	}

	last := len(chain) - 1
	chain[last].Distance += speed

	for i := last - 1; i >= 0; i-- {
		ahead := &chain[i]
		behind := &chain[i+1]
		push := behind.Distance + diameter

		switch {
		case ahead.Distance < push:
			ahead.Distance = push
		case ahead.Distance > push+p.GapEpsilon:
			if ahead.Color == behind.Color {
				gap := ahead.Distance - push
				ahead.Distance -= speed*p.SuctionMultiplier + gap*p.SuctionGapFactor
				if ahead.Distance < push {
					ahead.Distance = push
				}
			} else {
				ahead.Distance += speed * p.DriftFactor
			}
		}
	}
}

// gaps returns chain[i].Distance - chain[i+1].Distance for each adjacent pair.
func gaps(chain []Sphere) []float64 {
	if len(chain) < 2 {
		return nil
	}
	out := make([]float64, len(chain)-1)
	for i := range out {
		out[i] = chain[i].Distance - chain[i+1].Distance
	}
	return out
}

// indexOf finds a sphere by ID.
func indexOf(chain []Sphere, id uint64) int {
	for i := range chain {
		if chain[i].ID == id {
			return i
		}
	}
	return -1
}
