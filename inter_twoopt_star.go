package vrptw

// twoOptStarSampleThreshold is the route length above which cut points are
// sampled rather than scanned exhaustively, per §4.5.
const twoOptStarSampleThreshold = 15

// InterRouteTwoOptStar swaps the tails of two routes at sampled (or
// exhaustive, for small routes) cut points, keeping the best feasible
// improving swap found. Returns whether a move was committed.
func InterRouteTwoOptStar(s *Solution, opts Options) bool {
	routes := s.Routes
	if len(routes) < 2 {
		return false
	}

	bestImprovement := 1e-6
	var bestA, bestB *Route
	var bestIDsA, bestIDsB []int
	found := false

	for i := 0; i < len(routes); i++ {
		for j := i + 1; j < len(routes); j++ {
			a, b := routes[i], routes[j]
			if a.Empty() || b.Empty() {
				continue
			}
			if !a.Overlaps(b, 25.0) {
				continue
			}
			oldCost := a.Cost() + b.Cost()

			cutsA := cutPoints(a.Len())
			cutsB := cutPoints(b.Len())

			idsA := a.CustomerIDs()
			idsB := b.CustomerIDs()

			for _, cutA := range cutsA {
				for _, cutB := range cutsB {
					tailA := append([]int{}, idsA[cutA:]...)
					tailB := append([]int{}, idsB[cutB:]...)

					newA := append(append([]int{}, idsA[:cutA]...), tailB...)
					newB := append(append([]int{}, idsB[:cutB]...), tailA...)

					if a.demandOf(newA) > a.capacity || b.demandOf(newB) > b.capacity {
						continue
					}

					okA := a.ReplaceCustomers(newA)
					okB := b.ReplaceCustomers(newB)
					if okA && okB {
						newCost := a.Cost() + b.Cost()
						if oldCost-newCost > bestImprovement {
							bestImprovement = oldCost - newCost
							bestA, bestB = a, b
							bestIDsA, bestIDsB = newA, newB
							found = true
						}
					}
					a.ReplaceCustomers(idsA)
					b.ReplaceCustomers(idsB)
				}
			}
		}
	}

	if !found {
		return false
	}
	bestA.ReplaceCustomers(bestIDsA)
	bestB.ReplaceCustomers(bestIDsB)
	s.Recompute(opts)
	return true
}

// cutPoints returns the tail-swap cut positions to try for a route of the
// given length: exhaustive for short routes, sampled strategic points
// (20/40/60/80%) for long ones.
func cutPoints(n int) []int {
	if n <= twoOptStarSampleThreshold {
		cuts := make([]int, 0, n)
		for i := 1; i < n; i++ {
			cuts = append(cuts, i)
		}
		return cuts
	}
	fractions := []float64{0.2, 0.4, 0.6, 0.8}
	cuts := make([]int, 0, len(fractions))
	for _, f := range fractions {
		c := int(float64(n) * f)
		if c < 1 {
			c = 1
		}
		if c >= n {
			c = n - 1
		}
		cuts = append(cuts, c)
	}
	return cuts
}
