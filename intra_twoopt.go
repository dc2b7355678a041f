package vrptw

// twoOptLookahead bounds how many (i,j) pairs IntraTwoOpt scans before
// committing to the best move found so far, per §4.4.
const twoOptLookahead = 30

// twoOptSmallRoute is the route length at or below which IntraTwoOpt uses
// first-improvement instead of bounded best-improvement (small routes have
// few enough pairs that a full scan is cheap and first-improvement already
// finds the same moves).
const twoOptSmallRoute = twoOptLookahead

// IntraTwoOpt applies a single 2-opt move to r: reverse segment [i,j] for
// i<j, recompute, keep if feasible and improving. Routes at or below
// twoOptSmallRoute customers use first-improvement; larger routes scan up
// to twoOptLookahead candidate pairs and commit the best of those found.
// Returns whether a move was committed.
func IntraTwoOpt(r *Route) bool {
	n := r.Len()
	if n < 3 {
		return false
	}
	baseCost := r.Cost()

	if n <= twoOptSmallRoute {
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if tryTwoOptMove(r, i, j, baseCost) {
					return true
				}
			}
		}
		return false
	}

	type candidate struct{ i, j int }
	scanned := 0
	bestDelta := -1e-6
	var best candidate
	found := false

	for i := 0; i < n-1 && scanned < twoOptLookahead; i++ {
		for j := i + 1; j < n && scanned < twoOptLookahead; j++ {
			scanned++
			if !r.ReverseSegment(i, j) {
				continue
			}
			delta := r.Cost() - baseCost
			r.ReverseSegment(i, j) // undo the probe, re-decide below
			if delta < bestDelta {
				bestDelta = delta
				best = candidate{i, j}
				found = true
			}
		}
	}
	if !found {
		return false
	}
	return r.ReverseSegment(best.i, best.j)
}

func tryTwoOptMove(r *Route, i, j int, baseCost float64) bool {
	if !r.ReverseSegment(i, j) {
		return false
	}
	if r.Cost() < baseCost-1e-6 {
		return true
	}
	r.ReverseSegment(i, j)
	return false
}
