// Package vrptw implements a metaheuristic solver for the Vehicle Routing
// Problem with Time Windows (VRPTW): a single depot, a homogeneous capacitated
// fleet, and customers with demand, service duration, and a hard time window
// [ready, due]. Solve produces a set of routes that covers every customer
// exactly once, respects capacity and time windows on every route, and
// minimizes a lexicographic objective of (fleet size, then travel distance
// plus waiting).
//
// # Pipeline
//
//	Solve(depot, customers, capacity, opts) -> Solution
//	  1. construct: Regret-k sequential insertion (construct.go)
//	  2. MDS: fleet-reduction pass, then simulated-annealing refinement (mds.go)
//	  3. optional merge passes at decreasing underfill thresholds
//	  4. optional controlled fleet-reduction polish
//	  5. coverage validation
//
// # Data model
//
// Customer is immutable. Route owns an ordered customer-id slice, a parallel
// arrival-times slice, a departure time, current load, total cost, a
// per-route distance cache, and a bounding box; it borrows the shared
// Customer table and never owns it. Solution owns all Routes.
//
// # Determinism
//
// Every randomized step (LNS seed-customer pick, SA acceptance draws) is
// driven by a *rand.Rand derived from Options.Seed via rng.go's SplitMix64
// stream derivation. Same inputs + same seed produce a bitwise-identical
// Solution across runs. There is no parallelism inside the engine; operators
// apply serially, and each either commits an atomic, feasible improvement or
// rolls back entirely.
//
// # Errors
//
// ErrCoverageViolation and the shape-validation sentinels in errors.go are
// the only errors Solve can return. Infeasible trial moves are never
// returned as errors: operators report them as (delta, feasible=false) or a
// plain bool, and the caller rolls back.
package vrptw
