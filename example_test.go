// Package vrptw_test demonstrates a small end-to-end solve: a depot and a
// handful of customers with tight but satisfiable time windows, routed by
// a single call to Solve.
package vrptw_test

import (
	"fmt"
	"log"

	vrptw "github.com/katalvlaran/vrptw-solver"
)

func ExampleSolve() {
	depot := vrptw.Customer{ID: 0, X: 0, Y: 0, Demand: 0, ReadyTime: 0, DueDate: 1000, ServiceTime: 0}
	customers := []vrptw.Customer{
		{ID: 1, X: 10, Y: 0, Demand: 3, ReadyTime: 0, DueDate: 200, ServiceTime: 10},
		{ID: 2, X: 20, Y: 0, Demand: 3, ReadyTime: 0, DueDate: 200, ServiceTime: 10},
		{ID: 3, X: -10, Y: 0, Demand: 3, ReadyTime: 0, DueDate: 200, ServiceTime: 10},
		{ID: 4, X: -20, Y: 0, Demand: 3, ReadyTime: 0, DueDate: 200, ServiceTime: 10},
	}

	opts := vrptw.DefaultOptions()
	opts.Seed = 1

	sol, err := vrptw.Solve(depot, customers, 10, opts)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	if err := vrptw.ValidateCoverage(sol); err != nil {
		log.Fatalf("coverage: %v", err)
	}

	report := sol.Report()
	fmt.Println(report.NumVehicles <= len(customers))

	// Output:
	// true
}
