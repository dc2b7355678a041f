package vrptw

// Options configures the construction heuristic and the improvement driver.
// Zero value is not meaningful; use DefaultOptions() and override fields as
// needed.
type Options struct {
	// --- Candidate lists (§4.3) ---

	// CandidateRatio bounds k = min(MaxCandidates, max(MinCandidates, n/CandidateRatio)).
	// Default: 3 (n/3), matching spec.md's k = min(50, max(20, n/3)).
	CandidateRatio int

	// MinCandidates is the floor on k. Default: 20.
	MinCandidates int

	// MaxCandidates is the ceiling on k. Default: 50.
	MaxCandidates int

	// --- Objective (§4.2) ---

	// VehiclePenalty is λ in total_cost = total_base_cost + λ*num_vehicles.
	// Zero means "compute from the data-driven formula, clamped to
	// [3000, 5000]" (spec.md §4.2). A positive value overrides the formula.
	VehiclePenalty float64

	// --- Constructor (§4.8) ---

	// NewRouteDeterrent is added to depot->c->depot when deciding whether an
	// insertion into an existing route is cheap enough to prefer over
	// opening a new route. Default: 1000.
	NewRouteDeterrent float64

	// --- Improvement driver (§4.9) ---

	// FleetPasses bounds Phase 1's outer passes. Zero means "use the
	// size-dependent default" (80 for n>=50, else 50).
	FleetPasses int

	// MaxIterations bounds Phase 2's SA iterations. Zero means "use the
	// size-dependent default" (see DefaultOptions).
	MaxIterations int

	// TopNCritical bounds how many critical routes Phase 2 refines per
	// iteration. Default: 3 (within spec.md's 2..5 range).
	TopNCritical int

	// EarlyTermination stops Phase 2 after this many iterations without any
	// accepted improvement. Default: 40.
	EarlyTermination int

	// NoBestImprovementLimit stops Phase 2 after this many iterations
	// without a new best-known solution. Default: 25.
	NoBestImprovementLimit int

	// LNSProbHot / LNSProbCold are the probabilities of running one
	// destroy/repair pass when T > 50 and T <= 50 respectively.
	// Defaults: 0.40 / 0.20.
	LNSProbHot  float64
	LNSProbCold float64

	// LNSRemovalMin / LNSRemovalMax bound the uniform removal-fraction draw.
	// Defaults: 0.25 / 0.40.
	LNSRemovalMin float64
	LNSRemovalMax float64

	// SA schedule. Defaults: T0=100, Alpha=0.92, TMin=0.5, ReheatT=50,
	// ReheatAfter=8 consecutive non-improving iterations.
	SAInitialTemp float64
	SAAlpha       float64
	SAMinTemp     float64
	SAReheatTemp  float64
	SAReheatAfter int

	// --- Seeding ---

	// Seed drives every randomized decision. Zero selects a fixed internal
	// default seed (not time-based) so Solve is always reproducible even
	// when the caller does not set Seed explicitly.
	Seed int64

	// --- Safety net (§9 Design Notes) ---

	// StrictCoverage, when true (the default), makes a coverage-invariant
	// violation a fatal ErrCoverageViolation from Solve. When false, the
	// bounded restoration safety net (up to 3 restorations per customer)
	// attempts auto-repair first and only escalates if that also fails.
	StrictCoverage bool
}

// Default tuning constants, named so call sites read like spec.md.
const (
	defaultCandidateRatio    = 3
	defaultMinCandidates     = 20
	defaultMaxCandidates     = 50
	defaultNewRouteDeterrent = 1000.0
	defaultWaitingWeight     = 1.1
	defaultLambdaFloor       = 3000.0
	defaultLambdaCeil        = 5000.0
	defaultTopNCritical      = 3
	defaultEarlyTermination  = 40
	defaultNoBestImprovement = 25
	defaultLNSProbHot        = 0.40
	defaultLNSProbCold       = 0.20
	defaultLNSRemovalMin     = 0.25
	defaultLNSRemovalMax     = 0.40
	defaultSAInitialTemp     = 100.0
	defaultSAAlpha           = 0.92
	defaultSAMinTemp         = 0.5
	defaultSAReheatTemp      = 50.0
	defaultSAReheatAfter     = 8
	defaultSeed              = int64(1)
)

// DefaultOptions returns a fully populated Options with the defaults fixed
// by spec.md §4.3–§4.9. MaxIterations and FleetPasses are left at 0 so
// Solve can apply the size-dependent defaults once n is known.
func DefaultOptions() Options {
	return Options{
		CandidateRatio:         defaultCandidateRatio,
		MinCandidates:          defaultMinCandidates,
		MaxCandidates:          defaultMaxCandidates,
		VehiclePenalty:         0,
		NewRouteDeterrent:      defaultNewRouteDeterrent,
		FleetPasses:            0,
		MaxIterations:          0,
		TopNCritical:           defaultTopNCritical,
		EarlyTermination:       defaultEarlyTermination,
		NoBestImprovementLimit: defaultNoBestImprovement,
		LNSProbHot:             defaultLNSProbHot,
		LNSProbCold:            defaultLNSProbCold,
		LNSRemovalMin:          defaultLNSRemovalMin,
		LNSRemovalMax:          defaultLNSRemovalMax,
		SAInitialTemp:          defaultSAInitialTemp,
		SAAlpha:                defaultSAAlpha,
		SAMinTemp:              defaultSAMinTemp,
		SAReheatTemp:           defaultSAReheatTemp,
		SAReheatAfter:          defaultSAReheatAfter,
		Seed:                   0,
		StrictCoverage:         true,
	}
}

// fleetPassesFor returns the size-dependent default for Options.FleetPasses
// when the caller left it at zero.
func fleetPassesFor(opts Options, n int) int {
	if opts.FleetPasses > 0 {
		return opts.FleetPasses
	}
	if n >= 50 {
		return 80
	}
	return 50
}

// maxIterationsFor returns the size-dependent default for
// Options.MaxIterations when the caller left it at zero. The formula scales
// with instance size so small instances don't spend thousands of iterations
// refining a handful of routes.
func maxIterationsFor(opts Options, n int) int {
	if opts.MaxIterations > 0 {
		return opts.MaxIterations
	}
	iters := n * 20
	if iters < 200 {
		iters = 200
	}
	if iters > 5000 {
		iters = 5000
	}
	return iters
}
