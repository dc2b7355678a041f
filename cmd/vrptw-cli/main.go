// Command vrptw-cli solves a Solomon-format VRPTW instance and prints a
// per-route summary.
//
// Usage:
//
//	vrptw-cli <instance_file> [max_customers] [--compare] [--benchmark]
//
// Solver parameters (seed, iteration caps, vehicle penalty) can be
// overridden through a .env file or VRPTW_* environment variables; see
// package cliconfig.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	vrptw "github.com/katalvlaran/vrptw-solver"
	"github.com/katalvlaran/vrptw-solver/cliconfig"
	"github.com/katalvlaran/vrptw-solver/instance"
	"github.com/katalvlaran/vrptw-solver/obslog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		instanceFile string
		maxCustomers int
		compare      bool
		benchmark    bool
	)
	for _, arg := range args {
		switch arg {
		case "--compare":
			compare = true
		case "--benchmark":
			benchmark = true
		default:
			if instanceFile == "" {
				instanceFile = arg
				continue
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "invalid max_customers %q\n", arg)
				return 2
			}
			maxCustomers = n
		}
	}
	if instanceFile == "" {
		fmt.Fprintln(os.Stderr, "usage: vrptw-cli <instance_file> [max_customers] [--compare] [--benchmark]")
		return 2
	}

	cfg, err := cliconfig.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	log := obslog.NewLogger(&obslog.LoggerConfig{
		Level:  obslog.Level(cfg.Log.Level),
		Format: cfg.Log.Format,
	})

	inst, err := instance.LoadSubset(instanceFile, maxCustomers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	opts := cfg.Solver.Options()

	runs := 1
	if benchmark && cfg.Solver.BenchmarkRuns > 1 {
		runs = cfg.Solver.BenchmarkRuns
	}

	var (
		sol      *vrptw.Solution
		times    []time.Duration
		lastTime time.Duration
	)
	for i := 0; i < runs; i++ {
		start := time.Now()
		sol, err = vrptw.Solve(inst.Depot, inst.Customers, inst.Capacity, opts)
		lastTime = time.Since(start)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		times = append(times, lastTime)
	}

	log.LogSolve(inst.Name, len(inst.Customers), sol.NumVehicles, sol.TotalBaseCost, lastTime)
	printSummary(inst, sol, lastTime)

	if benchmark {
		printBenchmark(times)
	}
	if compare {
		fmt.Println("baseline comparison not available in this build")
	}
	return 0
}

func printSummary(inst *instance.Instance, sol *vrptw.Solution, solveTime time.Duration) {
	rep := sol.Report()
	fmt.Printf("instance:   %s (%d customers, capacity %d)\n",
		inst.Name, len(inst.Customers), inst.Capacity)
	fmt.Printf("vehicles:   %d\n", rep.NumVehicles)
	fmt.Printf("base cost:  %.2f (travel %.2f + weighted waiting)\n",
		rep.TotalBaseCost, rep.TravelCost)
	fmt.Printf("waiting:    %.2f\n", rep.TotalWaiting)
	fmt.Printf("solve time: %s\n", solveTime.Round(time.Millisecond))
	fmt.Println()
	for _, r := range rep.Routes {
		fmt.Printf("  route %2d: %2d stops  load %3d/%d (%.0f%%)  cost %8.2f  wait %7.2f  %v\n",
			r.Index+1, len(r.CustomerIDs), r.Load, r.Capacity,
			100*r.LoadFactor, r.Cost, r.Waiting, r.CustomerIDs)
	}
}

func printBenchmark(times []time.Duration) {
	min, sum := times[0], time.Duration(0)
	for _, d := range times {
		if d < min {
			min = d
		}
		sum += d
	}
	fmt.Printf("\nbenchmark:  %d runs  min %s  mean %s\n",
		len(times), min.Round(time.Millisecond),
		(sum / time.Duration(len(times))).Round(time.Millisecond))
}
