// Package cliconfig loads operator-facing configuration for the CLI harness
// and the HTTP façade from a .env file and environment variables. Solver
// defaults always come from vrptw.DefaultOptions(); configuration only
// overrides what the operator explicitly sets.
package cliconfig

import (
	"fmt"

	"github.com/spf13/viper"

	vrptw "github.com/katalvlaran/vrptw-solver"
)

// Config holds all configuration for the CLI and server.
type Config struct {
	Server Server
	Solver Solver
	Log    Log
}

// Server holds HTTP façade settings.
type Server struct {
	Host    string `mapstructure:"VRPTW_SERVER_HOST"`
	Port    int    `mapstructure:"VRPTW_SERVER_PORT"`
	DataDir string `mapstructure:"VRPTW_DATA_DIR"`
}

// Solver holds solver-parameter overrides. Zero values mean "use the engine
// default" for every field, matching vrptw.Options semantics.
type Solver struct {
	CandidateRatio int     `mapstructure:"VRPTW_CANDIDATE_RATIO"`
	MinCandidates  int     `mapstructure:"VRPTW_MIN_CANDIDATES"`
	MaxIterations  int     `mapstructure:"VRPTW_MAX_ITERATIONS"`
	TopNCritical   int     `mapstructure:"VRPTW_TOP_N_CRITICAL"`
	Seed           int64   `mapstructure:"VRPTW_SEED"`
	VehiclePenalty float64 `mapstructure:"VRPTW_VEHICLE_PENALTY"`
	BenchmarkRuns  int     `mapstructure:"VRPTW_BENCHMARK_RUNS"`
}

// Log holds logger settings.
type Log struct {
	Level  string `mapstructure:"VRPTW_LOG_LEVEL"`
	Format string `mapstructure:"VRPTW_LOG_FORMAT"`
}

// Addr returns the HTTP listen address in host:port format.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Options builds a vrptw.Options from the engine defaults with the
// operator's non-zero overrides applied on top.
func (s *Solver) Options() vrptw.Options {
	opts := vrptw.DefaultOptions()
	if s.CandidateRatio > 0 {
		opts.CandidateRatio = s.CandidateRatio
	}
	if s.MinCandidates > 0 {
		opts.MinCandidates = s.MinCandidates
	}
	if s.MaxIterations > 0 {
		opts.MaxIterations = s.MaxIterations
	}
	if s.TopNCritical > 0 {
		opts.TopNCritical = s.TopNCritical
	}
	if s.Seed != 0 {
		opts.Seed = s.Seed
	}
	if s.VehiclePenalty > 0 {
		opts.VehiclePenalty = s.VehiclePenalty
	}
	return opts
}

// Load reads configuration from a .env file in the working directory (if
// present) and from environment variables.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("VRPTW_SERVER_HOST", "0.0.0.0")
	viper.SetDefault("VRPTW_SERVER_PORT", 8080)
	viper.SetDefault("VRPTW_DATA_DIR", "data")

	viper.SetDefault("VRPTW_CANDIDATE_RATIO", 0)
	viper.SetDefault("VRPTW_MIN_CANDIDATES", 0)
	viper.SetDefault("VRPTW_MAX_ITERATIONS", 0)
	viper.SetDefault("VRPTW_TOP_N_CRITICAL", 0)
	viper.SetDefault("VRPTW_SEED", 0)
	viper.SetDefault("VRPTW_VEHICLE_PENALTY", 0.0)
	viper.SetDefault("VRPTW_BENCHMARK_RUNS", 1)

	viper.SetDefault("VRPTW_LOG_LEVEL", "info")
	viper.SetDefault("VRPTW_LOG_FORMAT", "text")

	// Missing .env is fine; env vars alone then drive the overrides.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: Server{
			Host:    viper.GetString("VRPTW_SERVER_HOST"),
			Port:    viper.GetInt("VRPTW_SERVER_PORT"),
			DataDir: viper.GetString("VRPTW_DATA_DIR"),
		},
		Solver: Solver{
			CandidateRatio: viper.GetInt("VRPTW_CANDIDATE_RATIO"),
			MinCandidates:  viper.GetInt("VRPTW_MIN_CANDIDATES"),
			MaxIterations:  viper.GetInt("VRPTW_MAX_ITERATIONS"),
			TopNCritical:   viper.GetInt("VRPTW_TOP_N_CRITICAL"),
			Seed:           viper.GetInt64("VRPTW_SEED"),
			VehiclePenalty: viper.GetFloat64("VRPTW_VEHICLE_PENALTY"),
			BenchmarkRuns:  viper.GetInt("VRPTW_BENCHMARK_RUNS"),
		},
		Log: Log{
			Level:  viper.GetString("VRPTW_LOG_LEVEL"),
			Format: viper.GetString("VRPTW_LOG_FORMAT"),
		},
	}
	return cfg, nil
}
