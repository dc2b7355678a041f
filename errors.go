package vrptw

import "errors"

// Sentinel errors for the core engine. Do not wrap these with fmt.Errorf
// where a sentinel suffices; operators report infeasibility through typed
// return values (delta, feasible) instead of errors — see route.go.
var (
	// ErrNoCustomers indicates Solve was called with an empty customer set.
	ErrNoCustomers = errors.New("vrptw: no customers to route")

	// ErrInvalidCapacity indicates a non-positive vehicle capacity.
	ErrInvalidCapacity = errors.New("vrptw: vehicle capacity must be positive")

	// ErrDuplicateCustomerID indicates two customers (or a customer and the
	// depot) share an id.
	ErrDuplicateCustomerID = errors.New("vrptw: duplicate customer id")

	// ErrInvalidTimeWindow indicates ready_time > due_date for some customer.
	ErrInvalidTimeWindow = errors.New("vrptw: ready_time exceeds due_date")

	// ErrNegativeDemand indicates a customer with demand < 0.
	ErrNegativeDemand = errors.New("vrptw: negative demand")

	// ErrUnplaceableCustomer indicates a single customer cannot be placed
	// even alone in a fresh route (the instance itself is infeasible given
	// capacity or the depot's working-day window).
	ErrUnplaceableCustomer = errors.New("vrptw: customer cannot be placed in any route, even alone")

	// ErrCoverageViolation indicates the coverage invariant (§3 invariant 1)
	// was broken and could not be repaired by the restoration safety net.
	ErrCoverageViolation = errors.New("vrptw: coverage invariant violated")
)
