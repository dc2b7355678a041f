package vrptw

import (
	"math"
	"math/rand"
	"sort"
)

// MDS runs the two-phase improvement driver (§4.9) on sol in place: Phase 1
// aggressively reduces fleet size, Phase 2 refines with simulated annealing
// driven destroy/repair and targeted local search. Returns an error only if
// the coverage invariant breaks and either Options.StrictCoverage forbids the
// auto-restore path or that path cannot place every missing customer (§9
// Design Notes).
func MDS(sol *Solution, cands *CandidateLists, opts Options) error {
	rngs := newEngineRNGs(opts.Seed)

	if err := mdsPhase1(sol, cands, opts); err != nil {
		return err
	}
	if err := mdsPhase2(sol, cands, opts, rngs); err != nil {
		return err
	}
	return nil
}

// enforceCoverage runs the restoration safety net after an operator pass
// (§9 Design Notes, §4.9 "Restoration safety net"). When Options.StrictCoverage
// is true, any violation is immediately fatal. When false, RepairCoverage
// attempts the bounded auto-restore path first.
func enforceCoverage(sol *Solution, opts Options) (triggered bool, err error) {
	if err := ValidateCoverage(sol); err == nil {
		return false, nil
	}
	if opts.StrictCoverage {
		return true, ErrCoverageViolation
	}
	stillMissing := RepairCoverage(sol, opts)
	if len(stillMissing) > 0 {
		return true, ErrCoverageViolation
	}
	return true, nil
}

// mdsPhase1 implements §4.9 Phase 1: inter-route relocate, route-empty, then
// ejection chains on small routes, repeated up to fleetPassesFor(opts,n)
// outer passes or until a pass makes no change (fixed point). A restoration
// safety-net trigger ends the inner loop early.
func mdsPhase1(sol *Solution, cands *CandidateLists, opts Options) error {
	n := len(sol.table) - 1
	passes := fleetPassesFor(opts, n)

	for pass := 0; pass < passes; pass++ {
		changed := false

		for InterRouteRelocate(sol, cands, opts) {
			changed = true
		}
		if triggered, err := enforceCoverage(sol, opts); err != nil {
			return err
		} else if triggered {
			break
		}

		for InterRouteEmpty(sol, opts) {
			changed = true
		}
		if triggered, err := enforceCoverage(sol, opts); err != nil {
			return err
		} else if triggered {
			break
		}

		bySize := make([]*Route, len(sol.Routes))
		copy(bySize, sol.Routes)
		sort.SliceStable(bySize, func(i, j int) bool { return bySize[i].Len() < bySize[j].Len() })
		for _, r := range bySize {
			size := r.Len()
			if size == 0 || size > 9 {
				continue
			}
			if EjectionChain(sol, r, opts) {
				changed = true
			}
		}
		if triggered, err := enforceCoverage(sol, opts); err != nil {
			return err
		} else if triggered {
			break
		}

		if !changed {
			break
		}
	}
	return nil
}

// saOperator enumerates Phase 2's periodic inter-route operator choice.
type saOperator int

const (
	saOpTwoOptStar saOperator = iota
	saOpRelocate
	saOpCrossExchange
)

// mdsPhase2 implements §4.9 Phase 2: SA refinement with LNS destroy/repair,
// periodic inter-route operators, targeted local search on critical routes,
// lexicographic acceptance, cooling, and reheat.
func mdsPhase2(sol *Solution, cands *CandidateLists, opts Options, rngs map[streamRNG]*rand.Rand) error {
	n := len(sol.table) - 1
	maxIter := maxIterationsFor(opts, n)

	lnsRNG := rngs[streamLNSDestroy]
	acceptRNG := rngs[streamSAAcceptance]
	opRNG := rngs[streamSAOperatorPick]

	sol.Recompute(opts)
	T := opts.SAInitialTemp
	best := sol.Clone()
	bestCost := sol.TotalCost
	bestVehicles := sol.NumVehicles

	noImprovement := 0
	noBestImprovement := 0
	sinceReheat := 0

	for iter := 0; iter < maxIter; iter++ {
		prevSnapshot := sol.Snapshot()
		prevCost := sol.TotalCost
		prevVehicles := sol.NumVehicles

		lnsProb := opts.LNSProbCold
		if T > 50 {
			lnsProb = opts.LNSProbHot
		}
		if acceptRNG.Float64() < lnsProb {
			frac := opts.LNSRemovalMin + acceptRNG.Float64()*(opts.LNSRemovalMax-opts.LNSRemovalMin)
			removed := DestroyRelatedRemoval(sol, frac, lnsRNG)
			if len(removed) > 0 {
				RepairRegret2(sol, removed, opts)
			}
		}

		if iter%3 == 0 && len(sol.Routes) >= 2 {
			switch pickSAOperator(opRNG) {
			case saOpTwoOptStar:
				InterRouteTwoOptStar(sol, opts)
			case saOpRelocate:
				InterRouteRelocate(sol, cands, opts)
			case saOpCrossExchange:
				InterRouteCrossExchange(sol, opts)
			}
		}

		topN := opts.TopNCritical
		if topN <= 0 {
			topN = defaultTopNCritical
		}
		for _, r := range TopCriticalRoutes(sol, topN) {
			refineRouteLocally(r)
		}

		if triggered, err := enforceCoverage(sol, opts); err != nil {
			return err
		} else if triggered {
			sol.Restore(prevSnapshot)
			sol.Recompute(opts)
			break
		}

		sol.Recompute(opts)
		delta := sol.TotalCost - prevCost
		fleetReduced := sol.NumVehicles < prevVehicles

		accept := false
		switch {
		case fleetReduced:
			accept = true
		case delta < -0.001:
			accept = true
		default:
			accept = acceptRNG.Float64() < math.Exp(-delta/math.Max(T, 1e-9))
		}

		if !accept {
			sol.Restore(prevSnapshot)
			sol.TotalCost = prevCost
			sol.NumVehicles = prevVehicles
		}

		if sol.TotalCost < bestCost-1e-6 || sol.NumVehicles < bestVehicles {
			best = sol.Clone()
			bestCost = sol.TotalCost
			bestVehicles = sol.NumVehicles
			noBestImprovement = 0
			sinceReheat = 0
		} else {
			noBestImprovement++
			sinceReheat++
		}

		if accept && delta < -1e-9 {
			noImprovement = 0
		} else {
			noImprovement++
		}

		T = math.Max(opts.SAMinTemp, T*opts.SAAlpha)
		if sinceReheat >= opts.SAReheatAfter {
			T = opts.SAReheatTemp
			sinceReheat = 0
		}

		if noImprovement >= opts.EarlyTermination || noBestImprovement >= opts.NoBestImprovementLimit {
			break
		}
	}

	sol.Routes = best.Routes
	sol.table = best.table
	sol.TotalBaseCost = best.TotalBaseCost
	sol.TotalCost = best.TotalCost
	sol.NumVehicles = best.NumVehicles
	sol.Lambda = best.Lambda
	return nil
}

// pickSAOperator draws one of the three periodic inter-route operators per
// §4.9's probabilities (2-opt* 0.40, relocate 0.30, cross-exchange 0.30).
func pickSAOperator(rng *rand.Rand) saOperator {
	r := rng.Float64()
	switch {
	case r < 0.40:
		return saOpTwoOptStar
	case r < 0.70:
		return saOpRelocate
	default:
		return saOpCrossExchange
	}
}

// refineRouteLocally runs up to 6 first-improvement local passes over
// {2-opt, Or-opt, temporal shift, intra-relocate} on a single critical
// route, per §4.9.
func refineRouteLocally(r *Route) {
	for i := 0; i < 6; i++ {
		improved := IntraTwoOpt(r)
		improved = IntraOrOpt(r) || improved
		improved = IntraTemporalShift(r) || improved
		improved = IntraRelocate(r) || improved
		if !improved {
			break
		}
	}
}

// PolishFleetReduction implements §4.9's optional post-driver polish: try to
// eliminate the currently smallest route by best-fit redistributing its
// customers, accepting only if the resulting base cost increases by no more
// than maxCostIncreasePct (fractional, e.g. 0.05 for 5%) and feasibility
// holds. Repeats until no more routes can be eliminated under that cap, or
// len(sol.Routes) reaches targetFleetSize (0 means no target). Returns the
// number of routes eliminated.
func PolishFleetReduction(sol *Solution, maxCostIncreasePct float64, targetFleetSize int, opts Options) int {
	eliminated := 0
	for {
		if targetFleetSize > 0 && len(sol.Routes) <= targetFleetSize {
			return eliminated
		}
		var smallest *Route
		for _, r := range sol.Routes {
			if r.Empty() {
				continue
			}
			if smallest == nil || r.Len() < smallest.Len() {
				smallest = r
			}
		}
		if smallest == nil {
			return eliminated
		}

		baseCost := sol.TotalBaseCost
		snapshot := sol.Snapshot()
		if !redistributeRoute(sol, smallest) {
			sol.Restore(snapshot)
			return eliminated
		}
		sol.PruneEmptyRoutes()
		sol.Recompute(opts)

		if sol.TotalBaseCost > baseCost*(1+maxCostIncreasePct) {
			sol.Restore(snapshot)
			sol.Recompute(opts)
			return eliminated
		}
		eliminated++
	}
}

// redistributeRoute tries to best-fit place every customer of r into some
// other route; returns whether every customer found a home.
func redistributeRoute(sol *Solution, r *Route) bool {
	ids := r.CustomerIDs()
	for _, id := range ids {
		cust := r.table[id]
		bestDelta := 0.0
		var bestDst *Route
		bestPos := -1
		found := false
		for _, dst := range sol.Routes {
			if dst == r {
				continue
			}
			for pos := 0; pos <= dst.Len(); pos++ {
				delta, ok := dst.DeltaForExternal(cust, pos)
				if !ok {
					continue
				}
				if !found || delta < bestDelta {
					bestDelta, bestDst, bestPos, found = delta, dst, pos, true
				}
			}
		}
		if !found || !bestDst.Insert(id, bestPos) {
			return false
		}
		r.RemoveAt(indexOf(r.customers, id))
	}
	return true
}
