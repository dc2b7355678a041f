// Package instance loads Solomon-format VRPTW benchmark files.
//
// The format is plain text: a header section containing the token VEHICLE
// followed (two lines later) by two integers — fleet size and vehicle
// capacity — then a section whose header contains the token CUST, whose
// data rows each carry 7 whitespace-separated integers: id, x, y, demand,
// ready_time, due_date, service_time. The first data row is the depot.
// Blank lines, short rows, and trailing junk are tolerated and skipped.
//
// The parser performs the input-shape validation the solver core never
// sees: negative demand, ready_time > due_date, and duplicate ids are
// rejected here.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	vrptw "github.com/katalvlaran/vrptw-solver"
)

// Sentinel errors for malformed instance files.
var (
	// ErrNoVehicleSection indicates the VEHICLE header (fleet size and
	// capacity) was not found.
	ErrNoVehicleSection = errors.New("instance: no VEHICLE section")

	// ErrNoCustomerSection indicates no line containing the CUST token was
	// found after the vehicle section.
	ErrNoCustomerSection = errors.New("instance: no customer section")

	// ErrNoDepot indicates the customer section held no parseable data row.
	ErrNoDepot = errors.New("instance: no depot row")

	// ErrDuplicateID indicates two data rows share a customer id.
	ErrDuplicateID = errors.New("instance: duplicate customer id")

	// ErrNegativeDemand indicates a customer row with demand < 0.
	ErrNegativeDemand = errors.New("instance: negative demand")

	// ErrInvalidWindow indicates a customer row with ready_time > due_date.
	ErrInvalidWindow = errors.New("instance: ready_time exceeds due_date")
)

// Instance is one parsed Solomon benchmark: the depot, the customers, and
// the fleet parameters. Name is the file's base name without extension.
type Instance struct {
	Name      string
	Depot     vrptw.Customer
	Customers []vrptw.Customer
	FleetSize int
	Capacity  int
}

// Load parses the Solomon file at path.
func Load(path string) (*Instance, error) {
	return LoadSubset(path, 0)
}

// LoadSubset parses the Solomon file at path, keeping only the first
// maxCustomers customer rows (after the depot). maxCustomers <= 0 keeps
// every row.
func LoadSubset(path string, maxCustomers int) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := Parse(f, maxCustomers)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	inst.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return inst, nil
}

// Parse reads a Solomon-format instance from r. maxCustomers <= 0 keeps
// every customer row.
func Parse(r io.Reader, maxCustomers int) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fleetSize, capacity, err := scanVehicleSection(sc)
	if err != nil {
		return nil, err
	}

	// Advance to the customer header, then past it.
	found := false
	for sc.Scan() {
		if strings.Contains(sc.Text(), "CUST") {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoCustomerSection
	}

	inst := &Instance{FleetSize: fleetSize, Capacity: capacity}
	seen := make(map[int]bool)
	haveDepot := false

	for sc.Scan() {
		cust, ok := parseCustomerRow(sc.Text())
		if !ok {
			continue
		}
		if seen[cust.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, cust.ID)
		}
		seen[cust.ID] = true
		if cust.Demand < 0 {
			return nil, fmt.Errorf("%w: customer %d", ErrNegativeDemand, cust.ID)
		}
		if cust.ReadyTime > cust.DueDate {
			return nil, fmt.Errorf("%w: customer %d", ErrInvalidWindow, cust.ID)
		}

		if !haveDepot {
			inst.Depot = cust
			haveDepot = true
			continue
		}
		inst.Customers = append(inst.Customers, cust)
		if maxCustomers > 0 && len(inst.Customers) >= maxCustomers {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}
	if !haveDepot {
		return nil, ErrNoDepot
	}
	return inst, nil
}

// scanVehicleSection advances sc to the VEHICLE token, skips its column
// header, and reads the fleet-size / capacity pair from the next line
// carrying two integers.
func scanVehicleSection(sc *bufio.Scanner) (fleetSize, capacity int, err error) {
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "VEHICLE" {
			continue
		}
		for sc.Scan() {
			parts := strings.Fields(sc.Text())
			if len(parts) < 2 {
				continue
			}
			n, err1 := strconv.Atoi(parts[0])
			c, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				continue
			}
			return n, c, nil
		}
		break
	}
	return 0, 0, ErrNoVehicleSection
}

// parseCustomerRow parses one data row. Rows with fewer than 7 fields or
// non-numeric fields are skipped, matching the tolerant behavior the
// benchmark suite's trailing comment lines require.
func parseCustomerRow(line string) (vrptw.Customer, bool) {
	parts := strings.Fields(line)
	if len(parts) < 7 {
		return vrptw.Customer{}, false
	}
	vals := make([]float64, 7)
	for i := 0; i < 7; i++ {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return vrptw.Customer{}, false
		}
		vals[i] = v
	}
	return vrptw.Customer{
		ID:          int(vals[0]),
		X:           vals[1],
		Y:           vals[2],
		Demand:      int(vals[3]),
		ReadyTime:   vals[4],
		DueDate:     vals[5],
		ServiceTime: vals[6],
	}, true
}
