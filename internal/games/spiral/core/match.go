package core

// MatchesAt returns the ascending indices of the contiguous same-color run
// through index, or nil when the run is shorter than minRun.
// Neighbours join the run only if they are within diameter+tolerance of the
// previously matched sphere.
func MatchesAt(chain []Sphere, index int, diameter, tolerance float64, minRun int) []int {
	if index < 0 || index >= len(chain) {
		return nil
	}

	target := chain[index].Color
	reach := diameter + tolerance

	lo := index
	for lo > 0 {
		next := chain[lo-1]
		if next.Color != target || abs(next.Distance-chain[lo].Distance) > reach {
			break
		}
		lo--
	}

	hi := index
	for hi < len(chain)-1 {
		next := chain[hi+1]
		if next.Color != target || abs(next.Distance-chain[hi].Distance) > reach {
			break
		}
		hi++
	}

	if hi-lo+1 < minRun {
		return nil
	}

	run := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		run = append(run, i)
	}
	return run
}

// removeRun deletes a contiguous ascending run of indices from the chain.
func removeRun(chain []Sphere, run []int) []Sphere {
	if len(run) == 0 {
		return chain
	}
	lo, hi := run[0], run[len(run)-1]
	return append(chain[:lo], chain[hi+1:]...)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
