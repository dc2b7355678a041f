package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions_Fields(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, defaultCandidateRatio, opts.CandidateRatio)
	assert.Equal(t, defaultMinCandidates, opts.MinCandidates)
	assert.Equal(t, defaultMaxCandidates, opts.MaxCandidates)
	assert.Equal(t, 0.0, opts.VehiclePenalty)
	assert.True(t, opts.StrictCoverage)
}

func TestFleetPassesFor_SizeDependentDefault(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 50, fleetPassesFor(opts, 10))
	assert.Equal(t, 80, fleetPassesFor(opts, 50))
	assert.Equal(t, 80, fleetPassesFor(opts, 200))
}

func TestFleetPassesFor_ExplicitOverride(t *testing.T) {
	opts := DefaultOptions()
	opts.FleetPasses = 7
	assert.Equal(t, 7, fleetPassesFor(opts, 200))
}

func TestMaxIterationsFor_ClampedRange(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 200, maxIterationsFor(opts, 1))
	assert.Equal(t, 5000, maxIterationsFor(opts, 10000))
	assert.Equal(t, 400, maxIterationsFor(opts, 20))
}

func TestMaxIterationsFor_ExplicitOverride(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIterations = 42
	assert.Equal(t, 42, maxIterationsFor(opts, 20))
}
