package httpapi

import (
	"math"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	vrptw "github.com/katalvlaran/vrptw-solver"
	"github.com/katalvlaran/vrptw-solver/instance"
)

// SolveRequest is the POST /api/solve body.
type SolveRequest struct {
	InstanceFile string `json:"instance_file" binding:"required"`
	MaxCustomers int    `json:"max_customers"`
}

// SolveResponse is the POST /api/solve success body (spec'd exchange shape;
// baseline is omitted — comparison with third-party solvers is not part of
// this build).
type SolveResponse struct {
	Success      bool              `json:"success"`
	InstanceName string            `json:"instance_name"`
	TotalCost    float64           `json:"total_cost"`
	NumVehicles  int               `json:"num_vehicles"`
	SolveTime    float64           `json:"solve_time"`
	Feasible     bool              `json:"feasible"`
	Routes       []RoutePayload    `json:"routes"`
	Depot        CustomerPayload   `json:"depot"`
	Customers    []CustomerPayload `json:"customers"`
}

// RoutePayload renders one route for the frontend.
type RoutePayload struct {
	RouteID      int           `json:"route_id"`
	Customers    []StopPayload `json:"customers"`
	Cost         float64       `json:"cost"`
	Load         int           `json:"load"`
	NumCustomers int           `json:"num_customers"`
}

// StopPayload is one visited customer, carrying the leg distance to the
// next stop (or back to the depot from the last stop).
type StopPayload struct {
	ID             int     `json:"id"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Demand         int     `json:"demand"`
	DistanceToNext float64 `json:"distance_to_next"`
}

// CustomerPayload is the raw customer data for visualization.
type CustomerPayload struct {
	ID          int     `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Demand      int     `json:"demand"`
	ReadyTime   float64 `json:"ready_time"`
	DueDate     float64 `json:"due_date"`
	ServiceTime float64 `json:"service_time"`
}

// handleSolve loads the requested instance, solves it, and renders the
// routes.
func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err)
		return
	}

	inst, err := instance.LoadSubset(s.resolvePath(req.InstanceFile), req.MaxCustomers)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	sol, err := vrptw.Solve(inst.Depot, inst.Customers, inst.Capacity, s.opts)
	solveTime := time.Since(start)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}

	s.log.LogSolve(inst.Name, len(inst.Customers), sol.NumVehicles, sol.TotalBaseCost, solveTime)
	c.JSON(http.StatusOK, buildSolveResponse(inst, sol, solveTime))
}

// handleListInstances lists the instance files available under dataDir.
func (s *Server) handleListInstances(c *gin.Context) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	c.JSON(http.StatusOK, gin.H{"instances": names})
}

// resolvePath maps a request's instance_file onto dataDir. Only the base
// name is honored, so requests cannot escape the data directory.
func (s *Server) resolvePath(name string) string {
	return filepath.Join(s.dataDir, filepath.Base(name))
}

func buildSolveResponse(inst *instance.Instance, sol *vrptw.Solution, solveTime time.Duration) SolveResponse {
	rep := sol.Report()

	feasible := true
	for _, r := range sol.Routes {
		if !r.Feasible() {
			feasible = false
			break
		}
	}

	byID := make(map[int]vrptw.Customer, len(inst.Customers)+1)
	byID[inst.Depot.ID] = inst.Depot
	for _, cust := range inst.Customers {
		byID[cust.ID] = cust
	}

	routes := make([]RoutePayload, 0, len(rep.Routes))
	for _, rr := range rep.Routes {
		stops := make([]StopPayload, 0, len(rr.CustomerIDs))
		for i, id := range rr.CustomerIDs {
			cust := byID[id]
			next := inst.Depot
			if i+1 < len(rr.CustomerIDs) {
				next = byID[rr.CustomerIDs[i+1]]
			}
			stops = append(stops, StopPayload{
				ID:             cust.ID,
				X:              cust.X,
				Y:              cust.Y,
				Demand:         cust.Demand,
				DistanceToNext: legDistance(cust, next),
			})
		}
		routes = append(routes, RoutePayload{
			RouteID:      rr.Index + 1,
			Customers:    stops,
			Cost:         rr.Cost,
			Load:         rr.Load,
			NumCustomers: len(rr.CustomerIDs),
		})
	}

	customers := make([]CustomerPayload, 0, len(inst.Customers))
	for _, cust := range inst.Customers {
		customers = append(customers, customerPayload(cust))
	}

	return SolveResponse{
		Success:      true,
		InstanceName: inst.Name,
		TotalCost:    rep.TotalBaseCost,
		NumVehicles:  rep.NumVehicles,
		SolveTime:    solveTime.Seconds(),
		Feasible:     feasible,
		Routes:       routes,
		Depot:        customerPayload(inst.Depot),
		Customers:    customers,
	}
}

func customerPayload(c vrptw.Customer) CustomerPayload {
	return CustomerPayload{
		ID:          c.ID,
		X:           c.X,
		Y:           c.Y,
		Demand:      c.Demand,
		ReadyTime:   c.ReadyTime,
		DueDate:     c.DueDate,
		ServiceTime: c.ServiceTime,
	}
}

func legDistance(a, b vrptw.Customer) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
