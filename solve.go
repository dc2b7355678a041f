package vrptw

// mergeThresholds are the decreasing underfill thresholds tried by the
// optional merge passes in Solve's step 3, from 0.8 down to 0.3 (§4.5).
var mergeThresholds = []float64{0.8, 0.7, 0.6, 0.5, 0.4, 0.3}

// polishMaxCostIncrease bounds the post-driver polish pass's acceptable
// base-cost regression (§4.9 polish).
const polishMaxCostIncrease = 0.05

// Solve runs the full pipeline (§4.10): construct an initial feasible
// solution, improve it with MDS, optionally merge underfilled routes at
// decreasing thresholds, optionally polish the fleet size down further, then
// validate the coverage invariant. depot and customers must have disjoint,
// unique ids; capacity must be positive.
func Solve(depot Customer, customers []Customer, capacity int, opts Options) (*Solution, error) {
	if err := validateInput(depot, customers, capacity); err != nil {
		return nil, err
	}

	sol := ConstructInitialSolution(depot, customers, capacity, opts)
	cands := BuildCandidateLists(sol.table, depot.ID, opts)

	if err := MDS(sol, cands, opts); err != nil {
		return nil, err
	}

	for _, threshold := range mergeThresholds {
		before := sol.Snapshot()
		if InterRouteMerge(sol, threshold, opts) {
			if err := ValidateCoverage(sol); err != nil || !allRoutesFeasible(sol) {
				sol.Restore(before)
				sol.Recompute(opts)
			}
		}
	}

	PolishFleetReduction(sol, polishMaxCostIncrease, 0, opts)

	if err := ValidateCoverage(sol); err != nil {
		if opts.StrictCoverage {
			return nil, err
		}
		RepairCoverage(sol, opts)
		if err := ValidateCoverage(sol); err != nil {
			return nil, err
		}
	}

	sol.Recompute(opts)
	return sol, nil
}

// allRoutesFeasible reports whether every route in sol currently satisfies
// its own feasibility flag.
func allRoutesFeasible(sol *Solution) bool {
	for _, r := range sol.Routes {
		if !r.Feasible() {
			return false
		}
	}
	return true
}

// validateInput checks the input-shape sentinels from errors.go (§7 error
// taxonomy category 1): unparseable/malformed input never reaches the core
// in practice (the instance parser rejects it first), but Solve re-checks
// its direct contract since it can be called without going through a parser.
func validateInput(depot Customer, customers []Customer, capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if len(customers) == 0 {
		return ErrNoCustomers
	}
	seen := map[int]bool{depot.ID: true}
	for _, c := range customers {
		if seen[c.ID] {
			return ErrDuplicateCustomerID
		}
		seen[c.ID] = true
		if c.Demand < 0 {
			return ErrNegativeDemand
		}
		if c.ReadyTime > c.DueDate {
			return ErrInvalidTimeWindow
		}
	}
	return nil
}
