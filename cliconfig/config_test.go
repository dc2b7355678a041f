package cliconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vrptw "github.com/katalvlaran/vrptw-solver"
	"github.com/katalvlaran/vrptw-solver/cliconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := cliconfig.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "data", cfg.Server.DataDir)
	assert.Equal(t, 1, cfg.Solver.BenchmarkRuns)
	assert.Equal(t, "info", cfg.Log.Level)

	// With no overrides set, Options() must be exactly the engine defaults.
	assert.Equal(t, vrptw.DefaultOptions(), cfg.Solver.Options())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VRPTW_SEED", "99")
	t.Setenv("VRPTW_MAX_ITERATIONS", "123")
	t.Setenv("VRPTW_SERVER_PORT", "9090")

	cfg, err := cliconfig.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())

	opts := cfg.Solver.Options()
	assert.Equal(t, int64(99), opts.Seed)
	assert.Equal(t, 123, opts.MaxIterations)

	// Untouched knobs keep their engine defaults.
	def := vrptw.DefaultOptions()
	assert.Equal(t, def.CandidateRatio, opts.CandidateRatio)
	assert.Equal(t, def.TopNCritical, opts.TopNCritical)
}

func TestSolverOptions_ZeroMeansDefault(t *testing.T) {
	s := cliconfig.Solver{}
	assert.Equal(t, vrptw.DefaultOptions(), s.Options())

	s = cliconfig.Solver{VehiclePenalty: 4000, TopNCritical: 5}
	opts := s.Options()
	assert.Equal(t, 4000.0, opts.VehiclePenalty)
	assert.Equal(t, 5, opts.TopNCritical)
}
