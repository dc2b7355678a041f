package vrptw

import "math"

// waitingWeight is the fixed penalty on waiting time in the cost formula
// (§4.2): cost = travel + waitingWeight*waiting. Any place computing
// "distance only" must stay consistent with this constant.
const waitingWeight = 1.1

// distKey is an ordered pair of customer ids used as a distance-cache key.
// Depot-involved distances bypass the cache entirely (see distanceBetween)
// to avoid cross-route pollution, since the depot is shared by every route.
type distKey struct{ a, b int }

// Route is a mutable, single-vehicle route: an ordered sequence of customer
// ids (depot implicit at both ends), a parallel arrival-time sequence, a
// departure time, current load, total cost, a bounding box, and a per-route
// distance cache. Route borrows its Customer table and capacity; it never
// owns them.
type Route struct {
	customers     []int
	arrivalTimes  []float64
	segmentCost   []float64 // segmentCost[i] = travel(prev,i) + waitingWeight*wait(i)
	waitTimes     []float64 // waitTimes[i] = wait at position i, tracked separately for reporting/criticality
	totalWaiting  float64
	departureTime float64
	currentLoad   int
	totalCost     float64
	feasible      bool

	depot    Customer
	table    map[int]Customer
	capacity int

	distCache map[distKey]float64

	bboxMinX, bboxMinY, bboxMaxX, bboxMaxY float64
}

// NewRoute returns an empty route ready to receive customers.
func NewRoute(depot Customer, capacity int, table map[int]Customer) *Route {
	r := &Route{
		depot:     depot,
		table:     table,
		capacity:  capacity,
		distCache: make(map[distKey]float64),
		feasible:  true,
	}
	r.updateBoundingBox()
	return r
}

// CustomerIDs returns the route's customer ids in visiting order. The
// returned slice is owned by the caller (a copy).
func (r *Route) CustomerIDs() []int {
	out := make([]int, len(r.customers))
	copy(out, r.customers)
	return out
}

// Len returns the number of customers on the route (excluding the depot).
func (r *Route) Len() int { return len(r.customers) }

// Load returns current_load.
func (r *Route) Load() int { return r.currentLoad }

// Cost returns total_cost.
func (r *Route) Cost() float64 { return r.totalCost }

// Feasible reports the feasibility flag as of the last mutation.
func (r *Route) Feasible() bool { return r.feasible }

// DepartureTime returns the route's departure_time from the depot.
func (r *Route) DepartureTime() float64 { return r.departureTime }

// ArrivalAt returns the scheduled arrival time at position i.
func (r *Route) ArrivalAt(i int) float64 { return r.arrivalTimes[i] }

// Empty reports whether the route carries no customers.
func (r *Route) Empty() bool { return len(r.customers) == 0 }

// distanceBetween returns the cached distance between a and b, bypassing
// the cache whenever either endpoint is the depot (§4.2 cache caveat).
func (r *Route) distanceBetween(a, b Customer) float64 {
	if a.ID == r.depot.ID || b.ID == r.depot.ID {
		return dist(a, b)
	}
	key := distKey{a.ID, b.ID}
	if v, ok := r.distCache[key]; ok {
		return v
	}
	v := dist(a, b)
	r.distCache[key] = v
	return v
}

// recalculateFrom recomputes arrival_times and total_cost starting at
// position k, per §4.2: t is the departure time of the previous stop (the
// route's departure_time if k==0, else arrival_times[k-1]+service_time of
// the predecessor); for each subsequent position, raw = t + dist(prev,cur),
// arrival = max(raw, ready_time(cur)), then t advances to arrival +
// service_time(cur). total_cost is the sum of every edge's segment cost
// (travel + waitingWeight*wait) plus the final leg back to the depot.
func (r *Route) recalculateFrom(k int) {
	n := len(r.customers)
	if n == 0 {
		r.totalCost = 0
		r.totalWaiting = 0
		r.feasible = true
		return
	}
	if len(r.arrivalTimes) != n {
		r.arrivalTimes = make([]float64, n)
	}
	if len(r.segmentCost) != n {
		r.segmentCost = make([]float64, n)
	}
	if len(r.waitTimes) != n {
		r.waitTimes = make([]float64, n)
	}

	var t float64
	var prev Customer
	if k <= 0 {
		t = r.departureTime
		prev = r.depot
		k = 0
	} else {
		prevCust := r.table[r.customers[k-1]]
		t = r.arrivalTimes[k-1] + prevCust.ServiceTime
		prev = prevCust
	}

	feasible := true
	for i := k; i < n; i++ {
		cust := r.table[r.customers[i]]
		travel := r.distanceBetween(prev, cust)
		raw := t + travel
		wait := math.Max(0, cust.ReadyTime-raw)
		arrival := raw + wait
		r.arrivalTimes[i] = arrival
		r.segmentCost[i] = travel + waitingWeight*wait
		r.waitTimes[i] = wait
		if arrival > cust.DueDate {
			feasible = false
		}
		t = arrival + cust.ServiceTime
		prev = cust
	}

	sum := 0.0
	waitSum := 0.0
	for idx, c := range r.segmentCost {
		sum += c
		waitSum += r.waitTimes[idx]
	}
	last := r.table[r.customers[n-1]]
	sum += r.distanceBetween(last, r.depot)
	r.totalCost = sum
	r.totalWaiting = waitSum
	r.feasible = feasible && r.currentLoad <= r.capacity
}

// TotalWaiting returns the sum of waiting time across all stops.
func (r *Route) TotalWaiting() float64 { return r.totalWaiting }

// TravelCost returns total_cost with the waiting penalty backed out, i.e.
// the pure travel-distance cost (§9: implementers may expose this for
// external comparison alongside the optimized base cost).
func (r *Route) TravelCost() float64 { return r.totalCost - waitingWeight*r.totalWaiting }

// TightCount returns the number of customers whose slack (due - arrival) is
// below the given threshold, used by the route-criticality scorer (§4.7).
func (r *Route) TightCount(threshold float64) int {
	n := 0
	for i, id := range r.customers {
		if r.table[id].DueDate-r.arrivalTimes[i] < threshold {
			n++
		}
	}
	return n
}

// AvgSlack returns the mean slack (due - arrival) across the route's stops,
// or 0 for an empty route.
func (r *Route) AvgSlack() float64 {
	if len(r.customers) == 0 {
		return 0
	}
	sum := 0.0
	for i, id := range r.customers {
		sum += r.table[id].DueDate - r.arrivalTimes[i]
	}
	return sum / float64(len(r.customers))
}

// IsFeasible performs a fresh O(n) forward scan with early exit on the
// first position whose stored arrival exceeds its due date, or on load
// exceeding capacity. Used for standalone feasibility queries (e.g. after
// restoring a snapshot) rather than piggybacking on recalculateFrom.
func (r *Route) IsFeasible() bool {
	if r.currentLoad > r.capacity {
		return false
	}
	for i, id := range r.customers {
		if r.arrivalTimes[i] > r.table[id].DueDate {
			return false
		}
	}
	return true
}

// updateBoundingBox refreshes the axis-aligned bbox over the route's
// customers; an empty route's bbox collapses to the depot's point.
func (r *Route) updateBoundingBox() {
	minX, minY, maxX, maxY := r.depot.X, r.depot.Y, r.depot.X, r.depot.Y
	if len(r.customers) > 0 {
		first := r.table[r.customers[0]]
		minX, minY, maxX, maxY = first.X, first.Y, first.X, first.Y
	}
	for _, id := range r.customers {
		c := r.table[id]
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	r.bboxMinX, r.bboxMinY, r.bboxMaxX, r.bboxMaxY = minX, minY, maxX, maxY
}

// Overlaps reports whether r's bounding box, expanded by buffer on every
// side, intersects other's bounding box.
func (r *Route) Overlaps(other *Route, buffer float64) bool {
	minX1, maxX1 := r.bboxMinX-buffer, r.bboxMaxX+buffer
	minY1, maxY1 := r.bboxMinY-buffer, r.bboxMaxY+buffer
	if maxX1 < other.bboxMinX || other.bboxMaxX < minX1 {
		return false
	}
	if maxY1 < other.bboxMinY || other.bboxMaxY < minY1 {
		return false
	}
	return true
}

// avgSpan returns the average of the bbox's width and height, used by the
// geometric pre-filters in DeltaForSegmentMove and DeltaForExternal-adjacent
// operators.
func (r *Route) avgSpan() float64 {
	return ((r.bboxMaxX - r.bboxMinX) + (r.bboxMaxY - r.bboxMinY)) / 2
}

// Insert attempts to insert customer custID at position pos: a capacity
// check, then insertion, then recompute from pos, then feasibility check;
// it rolls back (removes the customer again) on infeasibility. Returns
// whether the insertion committed.
func (r *Route) Insert(custID int, pos int) bool {
	cust := r.table[custID]
	if r.currentLoad+cust.Demand > r.capacity {
		return false
	}
	r.customers = insertInt(r.customers, pos, custID)
	r.arrivalTimes = insertFloat(r.arrivalTimes, pos, 0)
	r.segmentCost = insertFloat(r.segmentCost, pos, 0)
	r.waitTimes = insertFloat(r.waitTimes, pos, 0)
	r.currentLoad += cust.Demand

	r.recalculateFrom(pos)
	if !r.feasible {
		r.customers = removeInt(r.customers, pos)
		r.arrivalTimes = removeFloat(r.arrivalTimes, pos)
		r.segmentCost = removeFloat(r.segmentCost, pos)
		r.waitTimes = removeFloat(r.waitTimes, pos)
		r.currentLoad -= cust.Demand
		r.recalculateFrom(pos)
		return false
	}
	r.updateBoundingBox()
	return true
}

// RemoveAt removes the customer at position pos and returns its id. Removal
// can never make a Euclidean-triangle-inequality route less feasible (the
// direct leg between the surviving neighbors is never longer than the two
// legs through the removed stop), so there is no rollback path.
func (r *Route) RemoveAt(pos int) int {
	custID := r.customers[pos]
	cust := r.table[custID]
	r.customers = removeInt(r.customers, pos)
	r.arrivalTimes = removeFloat(r.arrivalTimes, pos)
	r.segmentCost = removeFloat(r.segmentCost, pos)
	r.waitTimes = removeFloat(r.waitTimes, pos)
	r.currentLoad -= cust.Demand
	r.recalculateFrom(pos)
	r.updateBoundingBox()
	return custID
}

// Swap exchanges the customers at positions i and j, recomputing from the
// earlier of the two and rolling back if the result is infeasible.
func (r *Route) Swap(i, j int) bool {
	if i == j {
		return true
	}
	r.customers[i], r.customers[j] = r.customers[j], r.customers[i]
	from := i
	if j < from {
		from = j
	}
	r.recalculateFrom(from)
	if !r.feasible {
		r.customers[i], r.customers[j] = r.customers[j], r.customers[i]
		r.recalculateFrom(from)
		return false
	}
	return true
}

// Relocate moves the customer at position `from` so that it sits just before
// the customer originally at position `to` (to == Len() appends), within the
// same route, rolling back on infeasibility. When to > from the customer
// ends up at index to-1.
func (r *Route) Relocate(from, to int) bool {
	if from == to {
		return true
	}
	custID := r.customers[from]
	r.customers = removeInt(r.customers, from)
	insertPos := to
	if to > from {
		insertPos = to - 1
	}
	r.customers = insertInt(r.customers, insertPos, custID)

	start := from
	if insertPos < start {
		start = insertPos
	}
	r.recalculateFrom(start)
	if !r.feasible {
		r.customers = removeInt(r.customers, insertPos)
		r.customers = insertInt(r.customers, from, custID)
		r.recalculateFrom(start)
		return false
	}
	return true
}

// AdjustDeparture sets departure_time and recomputes the whole schedule,
// rolling back if the new departure makes the route infeasible. Used by
// the temporal-shift intra-route operator.
func (r *Route) AdjustDeparture(t float64) bool {
	old := r.departureTime
	r.departureTime = t
	r.recalculateFrom(0)
	if !r.feasible {
		r.departureTime = old
		r.recalculateFrom(0)
		return false
	}
	return true
}

// ReverseSegment reverses customers[i:j] in place (j inclusive), recomputes
// from i, and rolls back on infeasibility. Used by the 2-opt operator.
func (r *Route) ReverseSegment(i, j int) bool {
	if i >= j {
		return true
	}
	reverseInPlace(r.customers, i, j)
	r.recalculateFrom(i)
	if !r.feasible {
		reverseInPlace(r.customers, i, j)
		r.recalculateFrom(i)
		return false
	}
	r.updateBoundingBox()
	return true
}

func reverseInPlace(s []int, i, j int) {
	for i < j {
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}

// demandOf sums the demand of the given customer ids.
func (r *Route) demandOf(ids []int) int {
	sum := 0
	for _, id := range ids {
		sum += r.table[id].Demand
	}
	return sum
}

// ReplaceCustomers overwrites the full customer sequence and load, then
// recomputes from scratch. Used by operators that reshuffle customers
// across two routes at once (2-opt*, cross-exchange), where the natural
// unit of rollback is "restore the whole sequence" rather than a single
// insert/remove. Returns whether the resulting route is feasible; callers
// are responsible for rolling back (by calling ReplaceCustomers again with
// the prior sequence) when it is not.
func (r *Route) ReplaceCustomers(ids []int) bool {
	r.customers = append([]int{}, ids...)
	r.currentLoad = r.demandOf(ids)
	r.arrivalTimes = nil
	r.segmentCost = nil
	r.waitTimes = nil
	r.recalculateFrom(0)
	r.updateBoundingBox()
	return r.feasible && r.currentLoad <= r.capacity
}

// newTrialRoute builds a scratch route sharing r's depot, table, capacity,
// departure time, and distance cache, over a replacement customer sequence.
// Used by the read-only delta routines below; never attached to a Solution.
func newTrialRoute(r *Route, customers []int, load int) *Route {
	t := &Route{
		customers:     customers,
		depot:         r.depot,
		table:         r.table,
		capacity:      r.capacity,
		departureTime: r.departureTime,
		distCache:     r.distCache,
		currentLoad:   load,
	}
	t.arrivalTimes = make([]float64, len(customers))
	t.segmentCost = make([]float64, len(customers))
	return t
}

// boundedFeasibleInsert performs the O(constant) pre-check described in
// §4.2: it simulates only the window [pos-2, pos+3) around the prospective
// insertion point and rejects early if any arrival in that window would
// exceed its due date. This is a fast-reject filter only; a full evaluation
// still follows if it passes.
func (r *Route) boundedFeasibleInsert(cust Customer, pos int) bool {
	n := len(r.customers)
	start := pos - 2
	if start < 0 {
		start = 0
	}
	end := pos + 3
	if end > n+1 {
		end = n + 1
	}

	var t float64
	var prev Customer
	if start == 0 {
		t = r.departureTime
		prev = r.depot
	} else {
		prevCust := r.table[r.customers[start-1]]
		t = r.arrivalTimes[start-1] + prevCust.ServiceTime
		prev = prevCust
	}

	for idx := start; idx < end; idx++ {
		var cur Customer
		switch {
		case idx == pos:
			cur = cust
		case idx < pos:
			cur = r.table[r.customers[idx]]
		default:
			srcIdx := idx - 1
			if srcIdx >= n {
				return true
			}
			cur = r.table[r.customers[srcIdx]]
		}
		travel := r.distanceBetween(prev, cur)
		raw := t + travel
		arrival := math.Max(raw, cur.ReadyTime)
		if arrival > cur.DueDate {
			return false
		}
		t = arrival + cur.ServiceTime
		prev = cur
	}
	return true
}

// DeltaForExternal simulates inserting an external customer at pos without
// mutating the route. It runs the bounded pre-check first and only falls
// through to a full evaluation if that passes, per §4.2.
func (r *Route) DeltaForExternal(cust Customer, pos int) (float64, bool) {
	if r.currentLoad+cust.Demand > r.capacity {
		return 0, false
	}
	n := len(r.customers)
	if pos < 0 || pos > n {
		return 0, false
	}
	if !r.boundedFeasibleInsert(cust, pos) {
		return 0, false
	}

	newCustomers := make([]int, n+1)
	copy(newCustomers[:pos], r.customers[:pos])
	newCustomers[pos] = cust.ID
	copy(newCustomers[pos+1:], r.customers[pos:])

	trial := newTrialRoute(r, newCustomers, r.currentLoad+cust.Demand)
	trial.recalculateFrom(0)
	if !trial.feasible {
		return 0, false
	}
	return trial.totalCost - r.totalCost, true
}

// DeltaForSegmentMove evaluates moving the segment [i,j) to sit before
// position insertJ within the same route (the Or-opt move), without
// mutating r. It includes the geometric pre-filter from §4.2: reject when
// the segment's centroid is farther than 3x the route's average span from
// the insertion neighbor.
func (r *Route) DeltaForSegmentMove(i, j, insertJ int) (float64, bool) {
	n := len(r.customers)
	segLen := j - i
	if segLen <= 0 || i < 0 || j > n || insertJ < 0 || insertJ > n {
		return 0, false
	}
	if insertJ >= i && insertJ <= j {
		return 0, true // no-op move
	}

	segStart := r.table[r.customers[i]]
	segEnd := r.table[r.customers[j-1]]

	var neighbor Customer
	if insertJ < i {
		if insertJ == 0 {
			neighbor = r.depot
		} else {
			neighbor = r.table[r.customers[insertJ-1]]
		}
	} else {
		if insertJ == n {
			neighbor = r.depot
		} else {
			neighbor = r.table[r.customers[insertJ-1]]
		}
	}

	avgX := (segStart.X + segEnd.X) / 2
	avgY := (segStart.Y + segEnd.Y) / 2
	distToInsert := math.Hypot(avgX-neighbor.X, avgY-neighbor.Y)
	if span := r.avgSpan(); span > 0 && distToInsert > 3.0*span {
		return 0, false
	}

	temp := make([]int, 0, n-segLen)
	temp = append(temp, r.customers[:i]...)
	temp = append(temp, r.customers[j:]...)

	actualInsert := insertJ
	if insertJ > j {
		actualInsert = insertJ - segLen
	} else if insertJ > i {
		// insertJ is inside [i,j]; already handled as no-op above.
		actualInsert = i
	}

	segment := append([]int{}, r.customers[i:j]...)
	newCustomers := make([]int, 0, n)
	newCustomers = append(newCustomers, temp[:actualInsert]...)
	newCustomers = append(newCustomers, segment...)
	newCustomers = append(newCustomers, temp[actualInsert:]...)

	trial := newTrialRoute(r, newCustomers, r.currentLoad)
	trial.recalculateFrom(0)
	if !trial.feasible {
		return 0, false
	}
	return trial.totalCost - r.totalCost, true
}

// ---- small slice helpers (no allocation tricks beyond what's needed) ----

func insertInt(s []int, pos, v int) []int {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

func removeInt(s []int, pos int) []int {
	copy(s[pos:], s[pos+1:])
	return s[:len(s)-1]
}

func insertFloat(s []float64, pos int, v float64) []float64 {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

func removeFloat(s []float64, pos int) []float64 {
	copy(s[pos:], s[pos+1:])
	return s[:len(s)-1]
}
