package vrptw

// Shared fixtures for the core-engine test files. Kept deliberately small:
// each test builds the exact instance it needs rather than reusing a large
// shared graph, so failures stay easy to localize.

// newDepot returns a depot Customer with a window wide enough to bound a
// whole working day and zero demand.
func newDepot() Customer {
	return Customer{ID: 0, X: 0, Y: 0, Demand: 0, ReadyTime: 0, DueDate: 10000, ServiceTime: 0}
}

// newCustomer is a small builder for test fixtures; service defaults to 10
// unless overridden by the caller via a direct struct literal.
func newCustomer(id int, x, y float64, demand int, ready, due float64) Customer {
	return Customer{ID: id, X: x, Y: y, Demand: demand, ReadyTime: ready, DueDate: due, ServiceTime: 10}
}

// buildTable returns a customer-id table for depot plus custs.
func buildTable(depot Customer, custs ...Customer) map[int]Customer {
	table := make(map[int]Customer, len(custs)+1)
	table[depot.ID] = depot
	for _, c := range custs {
		table[c.ID] = c
	}
	return table
}

// lineOfCustomers returns n customers spaced 10 apart on the positive
// x-axis, wide windows, demand 1 each, ids starting at 1.
func lineOfCustomers(n int) []Customer {
	out := make([]Customer, n)
	for i := 0; i < n; i++ {
		out[i] = newCustomer(i+1, float64((i+1)*10), 0, 1, 0, 10000)
	}
	return out
}
